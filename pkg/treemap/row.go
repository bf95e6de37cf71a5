package treemap

// weighted pairs an item with its target rectangle area in container
// coordinate units.
type weighted struct {
	item Item
	area float64
}

// row accumulates the areas of the strip currently being laid out against a
// fixed side length.
type row struct {
	members  []weighted
	side     float64
	sum      float64
	min, max float64
}

func newRow(side float64) *row {
	return &row{side: side}
}

func (r *row) push(w weighted) {
	r.members = append(r.members, w)
	r.sum += w.area
	if len(r.members) == 1 || w.area < r.min {
		r.min = w.area
	}
	if len(r.members) == 1 || w.area > r.max {
		r.max = w.area
	}
}

// worst returns the worst aspect ratio in the row: the higher of the
// largest member's stretch and the smallest member's squash relative to a
// perfect square. 1.0 is a perfect square; lower is better.
func (r *row) worst() float64 {
	return worstRatio(r.side, r.sum, r.min, r.max)
}

// worstWith returns the worst aspect ratio the row would have after adding
// w, without mutating the row.
func (r *row) worstWith(w weighted) float64 {
	sum := r.sum + w.area
	min, max := r.min, r.max
	if len(r.members) == 0 || w.area < min {
		min = w.area
	}
	if len(r.members) == 0 || w.area > max {
		max = w.area
	}
	return worstRatio(r.side, sum, min, max)
}

// worstRatio evaluates max(L²·max/S², S²/(L²·min)) for a row of areas
// summing to S with extremes min and max against side length L.
func worstRatio(side, sum, min, max float64) float64 {
	l2 := side * side
	s2 := sum * sum
	stretch := l2 * max / s2
	squash := s2 / (l2 * min)
	if stretch > squash {
		return stretch
	}
	return squash
}
