// Package render rasterizes SVG icons onto square PNG canvases.
//
// # Overview
//
// A [Stage] turns a list of [Task] values into PNG files:
//
//  1. Read the SVG source of the task
//  2. Decode it with a [Decoder] (by default [SVGDecoder], backed by oksvg)
//  3. Allocate a transparent canvas of the configured size ([NewCanvas])
//  4. Resolve the destination rectangle with [placement.Resolve]
//  5. Draw the icon into that rectangle, clipped to the canvas
//  6. Encode the canvas as PNG and hand it to a [sink.Sink]
//
// Rendered PNGs are cached by source hash and settings when the stage has
// a cache attached.
//
// # Failures
//
// A task whose source cannot be read or decoded, or whose output cannot be
// encoded or written, is recorded in the [Report] and the run continues.
// Configuration failures (an invalid canvas size or scale) and context
// cancellation abort [Stage.Run] because they affect every task.
//
// # Concurrency
//
// With Workers greater than one, tasks are rendered in parallel on an
// errgroup. Each task owns its canvas and file handles. The report keeps
// task order regardless of completion order.
//
//	stage := render.NewStage(render.SVGDecoder{}, nil, logger)
//	stage.Workers = 4
//	report, err := stage.Run(ctx, tasks, sink.NewFileSink("png"))
//
// [placement.Resolve]: github.com/matzehuels/iconpress/pkg/placement.Resolve
// [sink.Sink]: github.com/matzehuels/iconpress/pkg/render/sink.Sink
package render
