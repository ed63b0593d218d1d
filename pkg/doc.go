// Package pkg provides the core libraries for tokenpress sheet generation.
//
// # Overview
//
// Tokenpress turns front/back token artwork into print-and-fold sheets: each
// token is composited into a double-sided image joined at a fold line, the
// composites are packed onto fixed-size pages, and the pages are written as
// a PDF document or PNG previews. The pkg directory is organized into:
//
//  1. [token] - Token compositing (faces, backgrounds, borders, cut marks)
//  2. [layout] - Page packing (size buckets, row wrapping, page caps)
//  3. [sink] - Page canvases (PDF document, PNG sheets)
//  4. [pipeline] - Orchestration (arrange, render, draw)
//  5. [config] - YAML/TOML config loading and validation
//
// # Architecture
//
// The typical data flow through tokenpress:
//
//	Config file (YAML/TOML)
//	         ↓
//	    [config] package (token specs + page geometry)
//	         ↓
//	    [layout] package (placements across pages)
//	         ↓
//	    [token] package (composite raster per instance)
//	         ↓
//	    [sink] package (PDF document / PNG sheets)
//
// # Quick Start
//
// Render a config into a PDF:
//
//	import (
//	    "context"
//
//	    "github.com/matzehuels/tokenpress/pkg/config"
//	    "github.com/matzehuels/tokenpress/pkg/pipeline"
//	    "github.com/matzehuels/tokenpress/pkg/sink"
//	)
//
//	// 1. Load and validate the config
//	cfg, _ := config.Load("tokens.yaml")
//
//	// 2. Build the page sink
//	geom := cfg.Geometry()
//	pdf := sink.NewPDF(geom.PageWidth, geom.PageHeight)
//
//	// 3. Run the pipeline
//	runner := pipeline.NewRunner(nil, nil)
//	result, _ := runner.Execute(context.Background(), cfg.Specs(), geom, pdf)
//
//	// 4. Write the document
//	_ = pdf.WriteFile("tokens.pdf")
//
// # Main Packages
//
// [token] - The compositor: loads and caches source images, resizes faces to
// their physical size at the requested DPI, applies cyclic backgrounds and
// border colors, flips the back face so it reads correctly after folding,
// and marks the canvas corners with cut guides.
//
// [layout] - The packing engine: expands copies into instances, groups them
// by quantized physical size, and places them row by row with page wrapping
// and an optional page cap. Placements use bottom-left-origin page
// coordinates in points.
//
// [sink] - Page canvases sharing one drawing contract: a gopdf-backed PDF
// document and an in-memory PNG sheet renderer for previews.
//
// [pipeline] - The runner used by every front end: arranges specs, renders
// each placement, forwards bitmaps to the sink page by page, and reports
// stage timings plus truncation.
//
// [config] - File loading with YAML and TOML decoding, scalar-or-sequence
// color and path fields, named page sizes, defaults, and validation.
//
// # Supporting Packages
//
// [errors] - Structured error codes shared across packages.
//
// [observability] - Hook registry for layout and render progress events,
// used by the CLI progress display.
//
// [units] - Point, inch, and pixel conversions.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//	go test -run Example        # Examples only
//
// [token]: https://pkg.go.dev/github.com/matzehuels/tokenpress/pkg/token
// [layout]: https://pkg.go.dev/github.com/matzehuels/tokenpress/pkg/layout
// [sink]: https://pkg.go.dev/github.com/matzehuels/tokenpress/pkg/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tokenpress/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/tokenpress/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/tokenpress/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/tokenpress/pkg/observability
// [units]: https://pkg.go.dev/github.com/matzehuels/tokenpress/pkg/units
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/tokenpress/pkg/buildinfo
package pkg
