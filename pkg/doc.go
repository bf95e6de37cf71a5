// Package pkg provides the core libraries for Treemosaic treemap visualization.
//
// # Overview
//
// Treemosaic turns weighted item lists into squarified treemaps where each
// item's rectangle area is proportional to its magnitude. The pkg directory
// is organized into five main areas:
//
//  1. [treemap] - The layout engine (preparation, squarified layout, grid fallback)
//  2. [scale] - Diverging color scales for signed values
//  3. [sink] - Output formats (SVG, JSON)
//  4. [input] - Item file loading and boundary validation (TOML, JSON)
//  5. [pipeline] - Orchestration (prepare → layout → render)
//
// # Architecture
//
// The typical data flow through Treemosaic:
//
//	Item file (TOML/JSON)
//	         ↓
//	    [input] package (decode, validate, normalize payloads)
//	         ↓
//	    [treemap] package (rank and clamp, then tile the container)
//	         ↓
//	    [sink] package (SVG or JSON artifact)
//
// # Quick Start
//
// Prepare items and render a treemap:
//
//	import (
//	    "github.com/treemosaic/treemosaic/pkg/scale"
//	    "github.com/treemosaic/treemosaic/pkg/sink"
//	    "github.com/treemosaic/treemosaic/pkg/treemap"
//	)
//
//	// 1. Rank and clamp the raw items
//	ranked, colorMin, colorMax := treemap.Prepare(items, treemap.PrepareOptions{Limit: 12})
//
//	// 2. Compute the layout
//	rects, _ := treemap.Layout(ranked, 800, 600, treemap.DefaultLayoutOptions())
//
//	// 3. Render to SVG
//	svg := sink.RenderSVG(rects, 800, 600, sink.WithColorScale(scale.New(colorMin, colorMax)))
//
// # Main Packages
//
// [treemap] - The core engine. Prepare handles ranking, inversion, limits,
// and clamping; Layout squarifies the prepared items into a container,
// falling back to a uniform grid for near-equal values.
//
// [scale] - Diverging loss/neutral/gain color scale anchored at zero.
//
// [sink] - Artifact renderers. SVG with optional labels and gradients, and
// a JSON interchange document for external tooling.
//
// [input] - Item file loading. Decodes TOML and JSON documents, validates
// at the boundary, and normalizes legacy history payloads.
//
// [pipeline] - Complete visualization pipeline (prepare → layout → render)
// used by the CLI. Ensures consistent behavior across entry points.
//
// [errors] - Structured errors with machine-readable codes and the boundary
// validation helpers.
//
// [observability] - Optional instrumentation hooks for pipeline stages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/treemap/...  # Specific package
//	go test -run Example       # Examples only
//
// [treemap]: https://pkg.go.dev/github.com/treemosaic/treemosaic/pkg/treemap
// [scale]: https://pkg.go.dev/github.com/treemosaic/treemosaic/pkg/scale
// [sink]: https://pkg.go.dev/github.com/treemosaic/treemosaic/pkg/sink
// [input]: https://pkg.go.dev/github.com/treemosaic/treemosaic/pkg/input
// [pipeline]: https://pkg.go.dev/github.com/treemosaic/treemosaic/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/treemosaic/treemosaic/pkg/errors
// [observability]: https://pkg.go.dev/github.com/treemosaic/treemosaic/pkg/observability
package pkg
