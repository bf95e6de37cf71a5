package treemap

import "math"

// forceFillThreshold is the number of remaining items at or below which the
// current row absorbs the rest unconditionally, avoiding single-item
// trailing rows with extreme aspect ratios.
const forceFillThreshold = 3

// equalSpreadThreshold is the relative value spread below which near-equal
// magnitudes fall back to the uniform grid, where squarify would degenerate.
const equalSpreadThreshold = 0.01

// Layout tiles a width-by-height container with one rectangle per item,
// each rectangle's area proportional to the item's size magnitude. It
// returns the rectangles and the number of distinct layout rows.
//
// Area allocation uses SizeValue, so inversion and min/max clamping applied
// by [Prepare] carry through to the geometry. Unprepared callers seed
// SizeValue with abs(Value), which makes areas proportional to the raw
// values directly. Path selection (degenerate and near-equal checks) reads
// the raw Value.
//
// Empty input, or input where every Value is zero, yields no rectangles.
// NaN magnitudes are treated as zero and excluded. The function is pure:
// identical inputs produce bit-identical output.
func Layout(items []Item, width, height float64, opts LayoutOptions) ([]Rect, int) {
	if len(items) == 0 || allZeroValues(items) {
		return nil, 0
	}
	if opts.EqualSize || nearEqual(items) {
		return gridLayout(items, width, height, opts)
	}
	return squarify(items, width, height, opts)
}

// allZeroValues reports whether every item's raw value is zero (NaN counts
// as zero).
func allZeroValues(items []Item) bool {
	for _, it := range items {
		if absOrZero(it.Value) > 0 {
			return false
		}
	}
	return true
}

// nearEqual reports whether at least two items carry non-zero abs(Value)
// whose relative spread is below equalSpreadThreshold.
func nearEqual(items []Item) bool {
	var min, max float64
	n := 0
	for _, it := range items {
		v := absOrZero(it.Value)
		if v == 0 {
			continue
		}
		if n == 0 || v < min {
			min = v
		}
		if n == 0 || v > max {
			max = v
		}
		n++
	}
	return n >= 2 && (max-min)/max < equalSpreadThreshold
}

// absOrZero returns abs(v) with NaN mapped to zero.
func absOrZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Abs(v)
}

func squarify(items []Item, width, height float64, opts LayoutOptions) ([]Rect, int) {
	area := width * height

	maxSize := 0.0
	for _, it := range items {
		if v := absOrZero(it.SizeValue); v > maxSize {
			maxSize = v
		}
	}

	entries := make([]weighted, 0, len(items))
	sum := 0.0
	for _, it := range items {
		v := absOrZero(it.SizeValue)
		if opts.CompressRange && maxSize > 0 {
			// Range compression: sqrt keeps small values visibly larger
			// than a linear scale would, while the maximum is unchanged.
			v = math.Sqrt(v/maxSize) * maxSize
		}
		if v <= 0 {
			continue
		}
		entries = append(entries, weighted{item: it, area: v})
		sum += v
	}
	if len(entries) == 0 {
		return nil, 0
	}

	for i := range entries {
		entries[i].area = entries[i].area / sum * area
	}

	sortLayout(entries, opts.SortBy)

	rects := placeRows(entries, width, height)
	if opts.Ascending {
		mirror(rects, width, height)
	}
	return rects, countRows(rects)
}

// placeRows runs the squarified subdivision: rows are grown greedily while
// the worst aspect ratio does not increase, then laid edge-to-edge along
// the shorter side of the remaining sub-container, which shrinks by the
// row's thickness.
func placeRows(entries []weighted, width, height float64) []Rect {
	rects := make([]Rect, 0, len(entries))

	cx, cy := 0.0, 0.0
	cw, ch := width, height

	i := 0
	for i < len(entries) && cw > 0 && ch > 0 {
		// vertical means rows stack top to bottom: the row spans the full
		// remaining width and consumes height.
		vertical := cw < ch
		side := ch
		if vertical {
			side = cw
		}

		r := newRow(side)
		r.push(entries[i])
		i++
		for i < len(entries) {
			if len(entries)-i <= forceFillThreshold {
				r.push(entries[i])
				i++
				continue
			}
			if r.worstWith(entries[i]) > r.worst() {
				break
			}
			r.push(entries[i])
			i++
		}

		thickness := r.sum / side
		offset := 0.0
		for _, m := range r.members {
			length := m.area / thickness
			if vertical {
				rects = append(rects, Rect{Item: m.item, X: cx + offset, Y: cy, Width: length, Height: thickness})
			} else {
				rects = append(rects, Rect{Item: m.item, X: cx, Y: cy + offset, Width: thickness, Height: length})
			}
			offset += length
		}

		if vertical {
			cy += thickness
			ch -= thickness
		} else {
			cx += thickness
			cw -= thickness
		}
	}

	return rects
}

// mirror reflects every rectangle through the container center and
// re-translates the set so the minimum x and y are exactly zero. Sizes are
// untouched; the placement algorithm is never re-run.
func mirror(rects []Rect, width, height float64) {
	if len(rects) == 0 {
		return
	}
	for i := range rects {
		rects[i].X = width - rects[i].X - rects[i].Width
		rects[i].Y = height - rects[i].Y - rects[i].Height
	}

	minX, minY := rects[0].X, rects[0].Y
	for _, r := range rects[1:] {
		if r.X < minX {
			minX = r.X
		}
		if r.Y < minY {
			minY = r.Y
		}
	}
	for i := range rects {
		rects[i].X -= minX
		rects[i].Y -= minY
	}
}

// countRows counts distinct row start-y coordinates, rounded to two decimal
// places to absorb floating-point noise.
func countRows(rects []Rect) int {
	seen := make(map[float64]struct{}, len(rects))
	for _, r := range rects {
		seen[math.Round(r.Y*100)/100] = struct{}{}
	}
	return len(seen)
}
