package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/iconpress/pkg/cache"
	"github.com/matzehuels/iconpress/pkg/icon"
	"github.com/matzehuels/iconpress/pkg/observability"
	"github.com/matzehuels/iconpress/pkg/render"
	"github.com/matzehuels/iconpress/pkg/walk"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Decoder render.Decoder
	Logger  *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		Decoder: render.SVGDecoder{},
		Logger:  logger,
	}
}

// Execute runs the complete walk → filter → render pipeline.
//
// Icons that fail to decode or encode are reported in Result.Report and do
// not make Execute fail.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1+2: Walk and filter
	walkStart := time.Now()
	files, icons, err := r.discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Icons = icons
	result.Stats.Files = files
	result.Stats.Icons = len(icons)
	result.Stats.WalkTime = time.Since(walkStart)

	r.Logger.Info("discovered icons",
		"root", opts.Root,
		"files", files,
		"icons", len(icons),
		"duration", result.Stats.WalkTime)

	// Stage 3: Render
	out, dir := opts.output()
	result.OutDir = dir

	stage := render.NewStage(r.decoder(opts), r.Cache, r.Logger)
	stage.Keyer = r.Keyer
	if opts.Strict {
		// Lenient renders must not satisfy strict runs.
		stage.Keyer = cache.NewScopedKeyer(r.Keyer, "strict:")
	}
	stage.Workers = opts.Workers

	renderStart := time.Now()
	report, err := stage.Run(ctx, Tasks(opts, icons), out)
	if err != nil {
		return nil, err
	}
	result.Report = report
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.Rendered = report.Rendered()
	result.Stats.Cached = report.Cached()
	result.Stats.Failed = len(report.Failures())

	r.Logger.Info("rendered icons",
		"rendered", result.Stats.Rendered,
		"cached", result.Stats.Cached,
		"failed", result.Stats.Failed,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// decoder returns the runner's decoder, switched to strict mode when
// opts.Strict is set and the decoder supports it.
func (r *Runner) decoder(opts Options) render.Decoder {
	if d, ok := r.Decoder.(render.SVGDecoder); ok && opts.Strict {
		d.Strict = true
		return d
	}
	return r.Decoder
}

// Discover walks opts.Root and returns the icon paths in walk order.
func (r *Runner) Discover(ctx context.Context, opts Options) ([]string, error) {
	if err := opts.ValidateForWalk(); err != nil {
		return nil, err
	}
	_, icons, err := r.discover(ctx, opts)
	return icons, err
}

func (r *Runner) discover(ctx context.Context, opts Options) (int, []string, error) {
	hooks := observability.Pipeline()
	hooks.OnWalkStart(ctx, opts.Root, opts.Recursive)
	start := time.Now()

	files, err := walk.Walk(opts.Root, opts.Recursive)
	if err != nil {
		hooks.OnWalkComplete(ctx, opts.Root, 0, 0, time.Since(start), err)
		return 0, nil, err
	}
	icons := icon.Filter(files)
	hooks.OnWalkComplete(ctx, opts.Root, len(files), len(icons), time.Since(start), nil)

	for _, p := range icons {
		r.Logger.Debug("found icon", "path", p)
	}
	return len(files), icons, nil
}

// Tasks builds one render task per icon. opts must already be validated.
func Tasks(opts Options, icons []string) []render.Task {
	cfg := opts.RenderConfig()
	tasks := make([]render.Task, len(icons))
	for i, p := range icons {
		tasks[i] = render.Task{Path: p, Rel: walk.Rel(opts.Root, p), Config: cfg}
	}
	return tasks
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		if err := r.Cache.Close(); err != nil {
			return fmt.Errorf("close cache: %w", err)
		}
	}
	return nil
}
