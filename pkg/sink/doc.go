// Package sink renders computed treemap layouts to output formats.
//
// Sinks consume the rectangles produced by the layout engine and are the
// only place where presentation concerns (colors, labels, gradients) live;
// the engine itself never depends on them. Two formats are provided:
//
//   - [RenderSVG] produces a standalone SVG document.
//   - [RenderJSON] produces a pretty-printed interchange document for
//     external tooling or round-trip rendering.
//
// Both follow the same shape: a render function taking the rectangle list,
// the container size, and functional options.
package sink
