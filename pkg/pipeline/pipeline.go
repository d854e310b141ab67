// Package pipeline provides the core icon pipeline for iconpress.
//
// This package implements the complete walk → filter → render pipeline used
// by the CLI. By centralizing this logic, option defaults and error handling
// stay identical for every entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Walk: List the files under the root directory
//  2. Filter: Keep the paths with an .svg extension
//  3. Render: Rasterize each icon onto a square PNG canvas
//
// Discovery can be run on its own, for example to list icons without
// rendering them.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Root:      "./icons",
//	    Recursive: true,
//	    Size:      128,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range result.Report.Failures() {
//	    fmt.Println(f.Task.Path, f.Err)
//	}
package pipeline

import (
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/iconpress/pkg/errors"
	"github.com/matzehuels/iconpress/pkg/placement"
	"github.com/matzehuels/iconpress/pkg/render"
	"github.com/matzehuels/iconpress/pkg/render/sink"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultRoot is the directory scanned when none is given.
	DefaultRoot = "."

	// DefaultSize is the default canvas side in pixels.
	DefaultSize = 256

	// DefaultScale leaves icons at their intrinsic size.
	DefaultScale = 1.0

	// DefaultWorkers renders one icon at a time.
	DefaultWorkers = 1

	// DefaultOutDir is the output directory name, relative to the root.
	DefaultOutDir = "png"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
//
// Zero values select the defaults. Negative numbers are rejected.
type Options struct {
	// Walk options
	Root      string
	Recursive bool

	// Render options
	Size    int
	Scale   float64
	Align   string
	Workers int
	Strict  bool // reject SVG elements the rasterizer cannot draw

	// Output options
	Out    string    // output directory; defaults to <Root>/png
	DryRun bool      // render without writing
	Sink   sink.Sink // overrides Out and DryRun when set

	Logger *log.Logger

	align     placement.Align
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Icons are the discovered icon paths in walk order.
	Icons []string

	// Report holds one outcome per icon, in the same order.
	Report *render.Report

	// OutDir is where the PNGs were written. Empty for dry runs and
	// custom sinks.
	OutDir string

	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Files      int // files seen by the walker
	Icons      int
	Rendered   int
	Cached     int
	Failed     int
	WalkTime   time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForWalk(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForWalk checks the root and sets walk defaults.
func (o *Options) ValidateForWalk() error {
	if o.Root == "" {
		o.Root = DefaultRoot
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return errors.ValidateRoot(o.Root)
}

// ValidateForRender checks the render settings and sets their defaults.
func (o *Options) ValidateForRender() error {
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must be positive, got %d", o.Workers)
	}

	align, err := placement.ParseAlign(o.Align)
	if err != nil {
		return err
	}
	o.align = align
	o.Align = string(align)

	if err := o.RenderConfig().Validate(); err != nil {
		return err
	}

	if o.Sink == nil && !o.DryRun {
		if o.Out == "" {
			o.Out = filepath.Join(o.Root, DefaultOutDir)
		}
		return errors.ValidateOutputDir(o.Out)
	}
	return nil
}

// RenderConfig returns the settings shared by every render task.
func (o *Options) RenderConfig() render.Config {
	return render.Config{
		Size:  o.Size,
		Scale: o.Scale,
		Align: o.align,
	}
}

// output returns the sink for this run and the directory it writes to.
func (o *Options) output() (sink.Sink, string) {
	switch {
	case o.Sink != nil:
		return o.Sink, ""
	case o.DryRun:
		return sink.Discard, ""
	default:
		return sink.NewFileSink(o.Out), o.Out
	}
}
