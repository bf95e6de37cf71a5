package treemap

import "slices"

// invertedFloorRatio is the fraction of the inverted maximum used to floor
// inverted size values, preventing zero-area items when the largest raw
// value maps to the smallest rectangle.
const invertedFloorRatio = 0.10

// defaultFloorRatio is the fraction of the observed maximum used as the
// size floor when PrepareOptions.SizeMin is unset.
const defaultFloorRatio = 0.15

// Prepare normalizes raw items into ranked, clamped size magnitudes ready
// for [Layout], and reports the color-value range needed for color scaling.
//
// The color range is always taken from the items as given: inversion and
// clamping affect sizing only, never the color scale. The returned slice is
// a copy; the input is not modified.
//
// Empty input yields an empty slice and a zero color range.
func Prepare(items []Item, opts PrepareOptions) (ranked []Item, colorMin, colorMax float64) {
	if len(items) == 0 {
		return nil, 0, 0
	}

	ranked = make([]Item, len(items))
	copy(ranked, items)

	colorMin, colorMax = ranked[0].ColorValue, ranked[0].ColorValue
	sizeMin, sizeMax := ranked[0].SizeValue, ranked[0].SizeValue
	for _, it := range ranked[1:] {
		if it.ColorValue < colorMin {
			colorMin = it.ColorValue
		}
		if it.ColorValue > colorMax {
			colorMax = it.ColorValue
		}
		if it.SizeValue < sizeMin {
			sizeMin = it.SizeValue
		}
		if it.SizeValue > sizeMax {
			sizeMax = it.SizeValue
		}
	}

	if opts.Inverse {
		invert(ranked, sizeMin, sizeMax)
	}

	// Rank largest-first, decide survivorship, then orient the survivors.
	// Reversing after the cut keeps Limit independent of display direction.
	sortSelection(ranked)
	if opts.Limit > 0 && opts.Limit < len(ranked) {
		ranked = ranked[:opts.Limit]
	}
	if opts.Inverse != opts.Ascending {
		slices.Reverse(ranked)
	}

	clamp(ranked, opts.SizeMin, opts.SizeMax)

	return ranked, colorMin, colorMax
}

// invert flips sizing so the smallest raw value gets the largest rectangle.
// Sort values are negated in step so display order stays consistent with
// the new sizing. A floor of invertedFloorRatio times the inverted maximum
// prevents the former maximum from collapsing to zero area.
func invert(items []Item, sizeMin, sizeMax float64) {
	span := sizeMax + sizeMin
	for i := range items {
		items[i].SizeValue = span - items[i].SizeValue
		items[i].SortValue = -items[i].SortValue
	}

	invertedMax := span - sizeMin
	floor := invertedFloorRatio * invertedMax
	for i := range items {
		if items[i].SizeValue < floor {
			items[i].SizeValue = floor
		}
	}
}

// clamp applies the optional SizeMax cap, then floors every item at
// sizeMinOpt or, when unset, at defaultFloorRatio of the observed maximum.
// The observed maximum is never taken below 1 so downstream normalization
// cannot divide by zero.
func clamp(items []Item, sizeMinOpt, sizeMaxOpt float64) {
	if sizeMaxOpt > 0 {
		for i := range items {
			if items[i].SizeValue > sizeMaxOpt {
				items[i].SizeValue = sizeMaxOpt
			}
		}
	}

	currentMax := 1.0
	for _, it := range items {
		if it.SizeValue > currentMax {
			currentMax = it.SizeValue
		}
	}

	floor := sizeMinOpt
	if floor <= 0 {
		floor = defaultFloorRatio * currentMax
	}
	for i := range items {
		if items[i].SizeValue < floor {
			items[i].SizeValue = floor
		}
	}
}
