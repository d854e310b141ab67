package render

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/iconpress/pkg/cache"
	"github.com/matzehuels/iconpress/pkg/errors"
	"github.com/matzehuels/iconpress/pkg/observability"
	"github.com/matzehuels/iconpress/pkg/placement"
	"github.com/matzehuels/iconpress/pkg/render/sink"
)

// Stage renders tasks and delivers the PNGs to a sink.
//
// A Stage holds no per-run state; it may be reused across runs.
type Stage struct {
	Decoder Decoder
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger

	// Workers bounds parallel renders. Values below 1 mean 1.
	Workers int
}

// NewStage creates a stage. A nil cache disables caching and a nil logger
// discards output.
func NewStage(d Decoder, c cache.Cache, logger *log.Logger) *Stage {
	if d == nil {
		d = SVGDecoder{}
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Stage{
		Decoder: d,
		Cache:   c,
		Keyer:   cache.NewDefaultKeyer(),
		Logger:  logger,
		Workers: 1,
	}
}

// Run renders every task and writes the results to out.
// Per-task failures are recorded in the report; the returned error is
// non-nil only for failures that abort the whole run.
func (s *Stage) Run(ctx context.Context, tasks []Task, out sink.Sink) (*Report, error) {
	report := &Report{Outcomes: make([]Outcome, len(tasks))}
	collisions := outputCollisions(tasks)

	if s.Workers <= 1 {
		for i, t := range tasks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err, ok := collisions[i]; ok {
				report.Outcomes[i] = s.skip(ctx, t, err)
				continue
			}
			o, err := s.process(ctx, t, out)
			if err != nil {
				return nil, err
			}
			report.Outcomes[i] = o
		}
		return report, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Workers)
	for i, t := range tasks {
		if err, ok := collisions[i]; ok {
			report.Outcomes[i] = s.skip(ctx, t, err)
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o, err := s.process(gctx, t, out)
			if err != nil {
				return err
			}
			report.Outcomes[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Prefer the caller's cancellation over derived errors.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	return report, nil
}

// process renders one task. Only fatal errors are returned.
func (s *Stage) process(ctx context.Context, t Task, out sink.Sink) (Outcome, error) {
	hooks := observability.Pipeline()
	hooks.OnIconStart(ctx, t.Path)
	start := time.Now()

	o := Outcome{Task: t}
	data, cached, err := s.Render(ctx, t)
	if err == nil {
		o.Cached = cached
		o.Output, err = out.Write(ctx, t.Rel, data)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				hooks.OnIconComplete(ctx, t.Path, false, time.Since(start), ctxErr)
				return o, ctxErr
			}
			err = errors.Wrap(errors.ErrCodeEncode, err, "write %s", t.Rel)
		}
	}
	o.Duration = time.Since(start)
	hooks.OnIconComplete(ctx, t.Path, o.Cached, o.Duration, err)

	if err != nil {
		if errors.IsFatal(err) {
			return o, err
		}
		o.Err = err
		s.Logger.Warn("skipped icon", "path", t.Path, "err", errors.UserMessage(err))
		return o, nil
	}

	s.Logger.Debug("rendered icon",
		"path", t.Path,
		"output", o.Output,
		"cached", o.Cached,
		"duration", o.Duration.Round(time.Microsecond))
	return o, nil
}

// skip records t as failed with err without rendering it.
func (s *Stage) skip(ctx context.Context, t Task, err error) Outcome {
	hooks := observability.Pipeline()
	hooks.OnIconStart(ctx, t.Path)
	hooks.OnIconComplete(ctx, t.Path, false, 0, err)
	s.Logger.Warn("skipped icon", "path", t.Path, "err", errors.UserMessage(err))
	return Outcome{Task: t, Err: err}
}

// outputCollisions maps the index of every task whose output name was
// already claimed by an earlier task to an ENCODE error. Names are compared
// case-insensitively.
func outputCollisions(tasks []Task) map[int]error {
	owners := make(map[string]string, len(tasks))
	collisions := make(map[int]error)
	for i, t := range tasks {
		name := sink.OutputName(t.Rel)
		key := strings.ToLower(name)
		if owner, ok := owners[key]; ok {
			collisions[i] = errors.New(errors.ErrCodeEncode,
				"output %s already written by %s", name, owner)
			continue
		}
		owners[key] = t.Rel
	}
	return collisions
}

// Render produces the PNG bytes for t, consulting the cache first.
// The bool result reports a cache hit.
func (s *Stage) Render(ctx context.Context, t Task) ([]byte, bool, error) {
	src, err := os.ReadFile(t.Path)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeDecode, err, "read %s", t.Path)
	}

	key := s.Keyer.ArtifactKey(cache.Hash(src), cache.ArtifactKeyOpts{
		Size:  t.Config.Size,
		Scale: t.Config.Scale,
		Align: string(t.Config.Align),
	})
	if data, hit, err := s.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	data, err := s.Rasterize(t.Path, src, t.Config)
	if err != nil {
		return nil, false, err
	}

	if err := s.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		s.Logger.Debug("cache write failed", "path", t.Path, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}

// Rasterize decodes src and renders it onto a fresh canvas as PNG.
// name identifies the source in error messages.
func (s *Stage) Rasterize(name string, src []byte, cfg Config) ([]byte, error) {
	canvas, err := NewCanvas(cfg.Size)
	if err != nil {
		return nil, err
	}

	img, err := s.Decoder.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decode %s", name)
	}

	w, h := img.Size()
	rect, err := placement.Resolve(w, h, cfg.Size, cfg.Align, cfg.Scale)
	if err != nil {
		if errors.Is(err, errors.ErrCodeInvalidConfig) && cfg.Validate() == nil {
			// Settings are fine, so the icon's own size was rejected.
			return nil, errors.New(errors.ErrCodeDecode, "decode %s: %s", name, errors.UserMessage(err))
		}
		return nil, err
	}
	img.Draw(canvas, rect)

	data, err := EncodePNG(canvas)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode %s", name)
	}
	return data, nil
}
