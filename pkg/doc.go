// Package pkg provides the core libraries for iconpress.
//
// # Overview
//
// iconpress turns a directory of SVG icons into square PNGs of a fixed
// size. The pkg directory is organized into these areas:
//
//  1. [walk] and [icon] - Discovery (list files, keep the .svg ones)
//  2. [placement] - Where an icon lands on the canvas
//  3. [render] - Decoding, rasterization and PNG encoding
//  4. [render/sink] - Where the PNGs go
//  5. [pipeline] - Orchestration (walk → filter → render)
//  6. [cache], [errors], [observability], [buildinfo] - Infrastructure
//
// # Architecture
//
// The typical data flow through iconpress:
//
//	Root directory
//	      ↓
//	 [walk] package (file paths, depth-first)
//	      ↓
//	 [icon] package (.svg filter)
//	      ↓
//	 [render] package (decode → place → draw → encode, cached)
//	      ↓
//	 [render/sink] package (mirrored PNG tree)
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Root:      "./icons",
//	    Recursive: true,
//	    Size:      64,
//	    Align:     "center",
//	})
//
// Icons that fail to decode are listed in result.Report; they never abort
// the run.
package pkg
