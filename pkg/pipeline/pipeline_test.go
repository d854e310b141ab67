package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/iconpress/pkg/cache"
	"github.com/matzehuels/iconpress/pkg/errors"
	"github.com/matzehuels/iconpress/pkg/placement"
	"github.com/matzehuels/iconpress/pkg/render/sink"
)

const square = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"><path d="M0 0 H32 V32 H0 Z" fill="#000"/></svg>`

func makeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

// scenarioTree holds two icons at the top level, one non-icon and one icon
// in a subdirectory.
func scenarioTree(t *testing.T) string {
	return makeTree(t, map[string]string{
		"a.svg":     square,
		"b.SVG":     square,
		"c.png":     "not an icon",
		"sub/d.svg": square,
	})
}

func TestOptionsDefaults(t *testing.T) {
	root := t.TempDir()
	opts := Options{Root: root}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}

	if opts.Size != DefaultSize {
		t.Errorf("Size should be %d, got %d", DefaultSize, opts.Size)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale should be %v, got %v", DefaultScale, opts.Scale)
	}
	if opts.Align != string(placement.AlignAuto) {
		t.Errorf("Align should be auto, got %q", opts.Align)
	}
	if opts.Workers != DefaultWorkers {
		t.Errorf("Workers should be %d, got %d", DefaultWorkers, opts.Workers)
	}
	if want := filepath.Join(root, DefaultOutDir); opts.Out != want {
		t.Errorf("Out should be %q, got %q", want, opts.Out)
	}
	if opts.Logger == nil {
		t.Error("Logger should be set")
	}
}

func TestOptionsDefaultRoot(t *testing.T) {
	opts := Options{DryRun: true}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if opts.Root != DefaultRoot {
		t.Errorf("Root should be %q, got %q", DefaultRoot, opts.Root)
	}
}

func TestOptionsIdempotent(t *testing.T) {
	opts := Options{Root: t.TempDir(), Align: "TOP-LEFT"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	first := opts.RenderConfig()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.RenderConfig() != first {
		t.Errorf("second call changed config: %+v vs %+v", opts.RenderConfig(), first)
	}
	if first.Align != placement.AlignTopLeft {
		t.Errorf("Align = %q, want top-left", first.Align)
	}
}

func TestOptionsValidation(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.txt")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"missing root", Options{Root: filepath.Join(root, "nope")}, errors.ErrCodeInvalidPath},
		{"root is a file", Options{Root: file}, errors.ErrCodeInvalidPath},
		{"bad align", Options{Root: root, Align: "middle"}, errors.ErrCodeInvalidConfig},
		{"negative scale", Options{Root: root, Scale: -1}, errors.ErrCodeInvalidConfig},
		{"negative size", Options{Root: root, Size: -8}, errors.ErrCodeInvalidConfig},
		{"huge size", Options{Root: root, Size: 1 << 20}, errors.ErrCodeInvalidConfig},
		{"negative workers", Options{Root: root, Workers: -2}, errors.ErrCodeInvalidConfig},
		{"out is a file", Options{Root: root, Out: file}, errors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want code %s", err, tt.code)
			}
			if !errors.IsFatal(err) {
				t.Errorf("configuration error should be fatal: %v", err)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	root := scenarioTree(t)
	r := NewRunner(nil, nil, nil)

	tests := []struct {
		name      string
		recursive bool
		want      []string
	}{
		{"flat", false, []string{"a.svg", "b.SVG"}},
		{"recursive", true, []string{"a.svg", "b.SVG", "sub/d.svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icons, err := r.Discover(context.Background(), Options{Root: root, Recursive: tt.recursive})
			if err != nil {
				t.Fatalf("Discover() error: %v", err)
			}
			if len(icons) != len(tt.want) {
				t.Fatalf("Discover() = %v, want %v", icons, tt.want)
			}
			for i, w := range tt.want {
				if want := filepath.Join(root, filepath.FromSlash(w)); icons[i] != want {
					t.Errorf("icons[%d] = %q, want %q", i, icons[i], want)
				}
			}
		})
	}
}

func TestExecuteWritesMirroredTree(t *testing.T) {
	root := scenarioTree(t)
	r := NewRunner(nil, nil, nil)

	result, err := r.Execute(context.Background(), Options{Root: root, Recursive: true, Size: 32})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Stats.Files != 4 || result.Stats.Icons != 3 {
		t.Errorf("Stats = %+v, want 4 files / 3 icons", result.Stats)
	}
	if result.Stats.Rendered != 3 || result.Stats.Failed != 0 {
		t.Errorf("Stats = %+v, want 3 rendered / 0 failed", result.Stats)
	}
	if want := filepath.Join(root, "png"); result.OutDir != want {
		t.Errorf("OutDir = %q, want %q", result.OutDir, want)
	}
	for _, name := range []string{"a.png", "b.png", "sub/d.png"} {
		if _, err := os.Stat(filepath.Join(root, "png", filepath.FromSlash(name))); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "png", "c.png")); !os.IsNotExist(err) {
		t.Error("non-icon files must not be rendered")
	}
}

func TestExecuteContinuesAfterFailures(t *testing.T) {
	root := makeTree(t, map[string]string{
		"a.svg": "<svg",
		"b.svg": square,
		"c.svg": "plain text",
	})
	mem := sink.NewMemorySink()
	r := NewRunner(nil, nil, nil)

	result, err := r.Execute(context.Background(), Options{Root: root, Sink: mem, Size: 16})
	if err != nil {
		t.Fatalf("Execute() should succeed with per-icon failures, got %v", err)
	}
	if result.Stats.Failed != 2 || result.Stats.Rendered != 1 {
		t.Errorf("Stats = %+v, want 1 rendered / 2 failed", result.Stats)
	}
	outs := mem.Outputs()
	if len(outs) != 1 || outs[0].Name != "b.png" {
		t.Errorf("outputs = %+v, want [b.png]", outs)
	}
	for _, f := range result.Report.Failures() {
		if !errors.Is(f.Err, errors.ErrCodeDecode) {
			t.Errorf("%s: error code = %s, want DECODE", f.Task.Rel, errors.GetCode(f.Err))
		}
	}
}

func TestExecuteDryRun(t *testing.T) {
	root := scenarioTree(t)
	r := NewRunner(nil, nil, nil)

	result, err := r.Execute(context.Background(), Options{Root: root, DryRun: true, Size: 16})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Stats.Rendered != 2 {
		t.Errorf("Rendered = %d, want 2", result.Stats.Rendered)
	}
	if result.OutDir != "" {
		t.Errorf("dry run OutDir = %q, want empty", result.OutDir)
	}
	if _, err := os.Stat(filepath.Join(root, "png")); !os.IsNotExist(err) {
		t.Error("dry run must not create the output directory")
	}
}

func TestExecuteEmptyRoot(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	result, err := r.Execute(context.Background(), Options{Root: t.TempDir(), DryRun: true})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Stats.Icons != 0 || len(result.Report.Outcomes) != 0 {
		t.Errorf("empty root should yield no work, got %+v", result.Stats)
	}
}

func TestExecuteUsesCache(t *testing.T) {
	root := scenarioTree(t)
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, cache.NewScopedKeyer(cache.NewDefaultKeyer(), "test"), nil)
	defer r.Close()

	opts := Options{Root: root, DryRun: true, Size: 16}
	if _, err := r.Execute(context.Background(), opts); err != nil {
		t.Fatal(err)
	}
	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if result.Stats.Cached != 2 {
		t.Errorf("Cached = %d, want 2", result.Stats.Cached)
	}
}

func TestTasks(t *testing.T) {
	root := scenarioTree(t)
	opts := Options{Root: root, Size: 64, Scale: 2, DryRun: true}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}

	tasks := Tasks(opts, []string{filepath.Join(root, "sub", "d.svg")})
	if len(tasks) != 1 {
		t.Fatalf("len(tasks) = %d, want 1", len(tasks))
	}
	if want := filepath.Join("sub", "d.svg"); tasks[0].Rel != want {
		t.Errorf("Rel = %q, want %q", tasks[0].Rel, want)
	}
	cfg := tasks[0].Config
	if cfg.Size != 64 || cfg.Scale != 2 || cfg.Align != placement.AlignAuto {
		t.Errorf("Config = %+v", cfg)
	}
}

func TestExecuteOutputCollision(t *testing.T) {
	root := makeTree(t, map[string]string{
		"a.svg": `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 8 8"><path d="M0 0 H8 V8 H0 Z" fill="#f00"/></svg>`,
		"a.SVG": `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 8 8"><path d="M0 0 H8 V8 H0 Z" fill="#00f"/></svg>`,
	})
	r := NewRunner(nil, nil, nil)

	result, err := r.Execute(context.Background(), Options{Root: root, Size: 8})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Stats.Icons != 2 || result.Stats.Rendered != 1 || result.Stats.Failed != 1 {
		t.Errorf("Stats = %+v, want 2 icons / 1 rendered / 1 failed", result.Stats)
	}

	// os.ReadDir sorts by name, so a.SVG is listed before a.svg.
	failures := result.Report.Failures()
	if len(failures) != 1 || failures[0].Task.Rel != "a.svg" {
		t.Fatalf("Failures() = %+v, want [a.svg]", failures)
	}
	if !errors.Is(failures[0].Err, errors.ErrCodeEncode) {
		t.Errorf("failure code = %s, want ENCODE", errors.GetCode(failures[0].Err))
	}

	entries, err := os.ReadDir(filepath.Join(root, "png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "a.png" {
		t.Errorf("output dir holds %v, want [a.png]", entries)
	}
}

func TestExecuteStrict(t *testing.T) {
	root := makeTree(t, map[string]string{
		"odd.svg": `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 8 8"><blink/><path d="M0 0 H8 V8 H0 Z"/></svg>`,
	})
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)

	lenient, err := r.Execute(context.Background(), Options{Root: root, DryRun: true, Size: 8})
	if err != nil {
		t.Fatal(err)
	}
	if lenient.Stats.Rendered != 1 {
		t.Fatalf("lenient Rendered = %d, want 1", lenient.Stats.Rendered)
	}

	// The lenient render is cached; strict mode must still reject the icon.
	strict, err := r.Execute(context.Background(), Options{Root: root, DryRun: true, Size: 8, Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	if strict.Stats.Failed != 1 || strict.Stats.Cached != 0 {
		t.Errorf("strict Stats = %+v, want 1 failed / 0 cached", strict.Stats)
	}
}
