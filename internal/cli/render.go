package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/iconpress/pkg/errors"
	"github.com/matzehuels/iconpress/pkg/observability"
	"github.com/matzehuels/iconpress/pkg/pipeline"
	"github.com/matzehuels/iconpress/pkg/placement"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	recursive bool    // descend into subdirectories
	open      bool    // open the output directory when done
	align     string  // placement of the icon on the canvas
	scale     float64 // multiplier applied to each icon's intrinsic size
	size      int     // canvas side in pixels
	out       string  // output directory (default <root>/png)
	workers   int     // parallel renders
	noCache   bool    // bypass the render cache
	dryRun    bool    // render without writing
	strict    bool    // fail icons with unsupported SVG elements
}

// defaultRenderOpts returns the flag defaults.
func defaultRenderOpts() renderOpts {
	return renderOpts{
		align:   string(placement.DefaultAlign),
		scale:   pipeline.DefaultScale,
		size:    pipeline.DefaultSize,
		workers: pipeline.DefaultWorkers,
	}
}

// validate rejects flag values the pipeline would otherwise treat as unset.
func (o renderOpts) validate() error {
	if err := errors.ValidatePositive("scale", o.scale); err != nil {
		return err
	}
	if o.size <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "size must be positive, got %d", o.size)
	}
	if o.workers <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must be positive, got %d", o.workers)
	}
	_, err := placement.ParseAlign(o.align)
	return err
}

// pipelineOptions converts the flags into pipeline options for root.
func (o renderOpts) pipelineOptions(root string) pipeline.Options {
	return pipeline.Options{
		Root:      root,
		Recursive: o.recursive,
		Size:      o.size,
		Scale:     o.scale,
		Align:     o.align,
		Workers:   o.workers,
		Out:       o.out,
		DryRun:    o.dryRun,
		Strict:    o.strict,
	}
}

// renderCommand creates the command that rasterizes the icons under a
// directory. It is used as the root command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := defaultRenderOpts()

	cmd := &cobra.Command{
		Use:   "iconpress [dir]",
		Short: "Rasterize SVG icons to square PNGs",
		Long: `iconpress scans a directory for SVG icons and renders each one onto a
square PNG canvas. Output files mirror the source tree under <dir>/png.

Icons that cannot be decoded are reported and skipped; the run still
succeeds.

A directory named like a subcommand (cache, completion) must be given as
a path, e.g. "iconpress ./cache".`,
		Example: `  iconpress                       # icons in the current directory
  iconpress ./assets -r -s 64     # recurse, 64px canvases
  iconpress . --align top-left --scale 2 --open
  iconpress ./cache               # a directory named "cache"`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := pipeline.DefaultRoot
			if len(args) > 0 {
				root = args[0]
			}
			if err := opts.validate(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), root, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.recursive, "recursive", "r", false, "descend into subdirectories")
	f.BoolVarP(&opts.open, "open", "o", false, "open the output directory when done")
	f.StringVar(&opts.align, "align", opts.align, "icon placement: "+alignNames())
	f.Float64Var(&opts.scale, "scale", opts.scale, "scale factor applied to each icon")
	f.IntVarP(&opts.size, "size", "s", opts.size, "canvas side in pixels")
	f.StringVar(&opts.out, "out", "", "output directory (default <dir>/png)")
	f.IntVarP(&opts.workers, "workers", "j", opts.workers, "number of icons rendered in parallel")
	f.BoolVar(&opts.noCache, "no-cache", false, "render every icon even if cached")
	f.BoolVar(&opts.dryRun, "dry-run", false, "render without writing any files")
	f.BoolVar(&opts.strict, "strict", false, "skip icons that use SVG elements the renderer cannot draw")

	_ = cmd.RegisterFlagCompletionFunc("align", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return alignValues(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.MarkFlagDirname("out")

	return cmd
}

func alignValues() []string {
	names := make([]string, len(placement.Aligns))
	for i, a := range placement.Aligns {
		names[i] = string(a)
	}
	return names
}

func alignNames() string {
	return strings.Join(alignValues(), ", ")
}

// runRender executes the pipeline and prints a summary.
func (c *CLI) runRender(ctx context.Context, root string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := opts.pipelineOptions(root)
	popts.Logger = logger
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	var spinner *Spinner
	if spinnerEnabled(c.verbose()) {
		spinner = newSpinnerWithContext(ctx, "Scanning...")
		observability.SetPipelineHooks(newSpinnerHooks(spinner))
		defer observability.Reset()
		spinner.Start()
	}

	result, err := runner.Execute(ctx, popts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	printSummary(result, opts.dryRun)
	prog.done(fmt.Sprintf("Processed %s", plural(result.Stats.Icons, "icon")))

	if opts.open && result.OutDir != "" && result.Stats.Rendered > 0 {
		if err := openDir(result.OutDir); err != nil {
			logger.Warn("could not open output directory", "dir", result.OutDir, "err", err)
		}
	}
	return nil
}

// printSummary prints the outcome of a run: the stats line, every failure
// with its reason, and where the output went.
func printSummary(result *pipeline.Result, dryRun bool) {
	s := result.Stats
	switch {
	case s.Icons == 0:
		printWarning("No icons found")
		return
	case s.Failed == 0:
		printSuccess("Rendered %s", plural(s.Rendered, "icon"))
	default:
		printWarning("Rendered %d of %s", s.Rendered, plural(s.Icons, "icon"))
	}
	fmt.Println(formatStats(s.Icons, s.Cached, s.Failed, s.WalkTime+s.RenderTime))

	for _, f := range result.Report.Failures() {
		printError("%s: %s", f.Task.Rel, errors.UserMessage(f.Err))
	}

	if dryRun {
		printInfo("Dry run, nothing written")
		printNextStep("Write the PNGs", "rerun without --dry-run")
		return
	}
	if result.OutDir != "" && s.Rendered > 0 {
		printFile(result.OutDir)
	}
}
