package treemap

import "math"

// gridLayout places items row-major on a uniform grid. It is the fallback
// for near-equal weights, where squarified subdivision degenerates into
// long slivers.
//
// The grid aims for cells near the container's aspect ratio, then trims
// rows and columns that would stay entirely empty.
func gridLayout(items []Item, width, height float64, opts LayoutOptions) ([]Rect, int) {
	ordered := displayOrder(items, opts.SortBy, opts.Ascending)
	n := len(ordered)

	cols := int(math.Ceil(math.Sqrt(float64(n) * width / height)))
	if cols < 1 {
		cols = 1
	}
	rows := (n + cols - 1) / cols
	for rows > 1 && (rows-1)*cols >= n {
		rows--
	}
	for cols > 1 && rows*(cols-1) >= n {
		cols--
	}

	cellW := width / float64(cols)
	cellH := height / float64(rows)

	rects := make([]Rect, 0, n)
	for i, it := range ordered {
		rects = append(rects, Rect{
			Item:   it,
			X:      float64(i%cols) * cellW,
			Y:      float64(i/cols) * cellH,
			Width:  cellW,
			Height: cellH,
		})
	}
	return rects, rows
}
