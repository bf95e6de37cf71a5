// Package treemap computes squarified treemap layouts: given a list of
// weighted items and a container size, it produces one rectangle per item
// whose area is proportional to the item's magnitude, with aspect ratios
// kept close to square for readability.
//
// # Overview
//
// The package has two independent, composable stages:
//
//  1. [Prepare] turns raw signed values into ranked, clamped size magnitudes
//     and reports the color-value range needed for color scaling.
//  2. [Layout] consumes items and a container size and tiles the container
//     with non-overlapping rectangles, using either the squarified
//     subdivision algorithm or a uniform grid fallback for near-equal
//     weights.
//
// Layout accepts any item list meeting the [Item] contract, not only the
// output of Prepare.
//
// # Basic Usage
//
//	items := []treemap.Item{
//	    {EntityID: "sensor.solar", Label: "Solar", Value: 420, SizeValue: 420, SortValue: 420, ColorValue: 420},
//	    {EntityID: "sensor.grid", Label: "Grid", Value: -180, SizeValue: 180, SortValue: -180, ColorValue: -180},
//	}
//	ranked, colorMin, colorMax := treemap.Prepare(items, treemap.PrepareOptions{})
//	rects, rows := treemap.Layout(ranked, 800, 600, treemap.DefaultLayoutOptions())
//
// Each output [Rect] carries its item's fields unmodified, including the
// opaque Payload, so downstream renderers can attach charts or labels
// without the engine ever inspecting them.
//
// # Determinism
//
// Both stages are pure, synchronous, and deterministic: identical inputs
// yield bit-identical outputs. The only generated state, identifiers for
// visual sub-resources, is produced by a caller-supplied [IDSource] and is
// not part of the layout contract.
package treemap
