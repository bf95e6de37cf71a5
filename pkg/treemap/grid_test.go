package treemap

import "testing"

func TestLayoutNearEqualTriggersGrid(t *testing.T) {
	// Spread (100.5 - 99.6) / 100.5 is below 1%, so the uniform grid takes
	// over: every cell has identical size.
	items := []Item{sized("a", 100), sized("b", 100.5), sized("c", 99.6)}

	rects, rows := Layout(items, 100, 100, DefaultLayoutOptions())

	if len(rects) != 3 {
		t.Fatalf("got %d rects, want 3", len(rects))
	}
	if rows != 2 {
		t.Errorf("rows = %d, want 2", rows)
	}
	for _, r := range rects {
		if r.Width != 50 || r.Height != 50 {
			t.Errorf("%s: cell %vx%v, want 50x50", r.EntityID, r.Width, r.Height)
		}
	}
}

func TestLayoutSpreadValuesStaySquarified(t *testing.T) {
	// A 40% spread must not fall back to the grid: areas differ.
	items := []Item{sized("a", 100), sized("b", 80), sized("c", 60)}

	rects, _ := Layout(items, 100, 100, DefaultLayoutOptions())

	byID := rectsByID(rects)
	if byID["a"].Area() == byID["c"].Area() {
		t.Error("areas equal; grid fallback fired for a 40% spread")
	}
	if byID["a"].Area() <= byID["b"].Area() || byID["b"].Area() <= byID["c"].Area() {
		t.Errorf("areas not ordered by value: %v, %v, %v",
			byID["a"].Area(), byID["b"].Area(), byID["c"].Area())
	}
}

func TestGridEqualSizeForced(t *testing.T) {
	items := []Item{sized("a", 5), sized("b", 1)}

	opts := DefaultLayoutOptions()
	opts.EqualSize = true
	rects, rows := Layout(items, 100, 100, opts)

	if len(rects) != 2 || rows != 1 {
		t.Fatalf("got %d rects, %d rows, want 2, 1", len(rects), rows)
	}
	for _, r := range rects {
		if r.Width != 50 || r.Height != 100 {
			t.Errorf("%s: cell %vx%v, want 50x100", r.EntityID, r.Width, r.Height)
		}
	}
}

func TestGridTrimsEmptyColumns(t *testing.T) {
	// Six items in a 200x100 container start at ceil(sqrt(12)) = 4
	// columns, but 4 columns over 2 rows leave a full column empty, so the
	// grid settles at 3x2.
	items := make([]Item, 6)
	for i := range items {
		items[i] = sized(string(rune('a'+i)), 10)
	}

	opts := DefaultLayoutOptions()
	opts.EqualSize = true
	rects, rows := Layout(items, 200, 100, opts)

	if rows != 2 {
		t.Errorf("rows = %d, want 2", rows)
	}
	for _, r := range rects {
		if !closeTo(r.Width, 200.0/3, 1e-9) || r.Height != 50 {
			t.Errorf("%s: cell %vx%v, want %vx50", r.EntityID, r.Width, r.Height, 200.0/3)
		}
	}
}

func TestGridPlacementRowMajor(t *testing.T) {
	items := []Item{sized("a", 30), sized("b", 20), sized("c", 10)}

	opts := DefaultLayoutOptions()
	opts.EqualSize = true
	rects, _ := Layout(items, 100, 100, opts)

	// Value sort puts the largest first; 2 columns by 2 rows.
	wantPos := map[string][2]float64{
		"a": {0, 0},
		"b": {50, 0},
		"c": {0, 50},
	}
	for _, r := range rects {
		want := wantPos[r.EntityID]
		if r.X != want[0] || r.Y != want[1] {
			t.Errorf("%s at (%v, %v), want (%v, %v)", r.EntityID, r.X, r.Y, want[0], want[1])
		}
	}
}

func TestGridAscendingReversesOrderNotCells(t *testing.T) {
	items := []Item{sized("a", 30), sized("b", 20), sized("c", 10)}

	opts := DefaultLayoutOptions()
	opts.EqualSize = true
	opts.Ascending = true
	rects, _ := Layout(items, 100, 100, opts)

	// The smallest item now occupies the first cell; the cells themselves
	// are not mirrored.
	wantPos := map[string][2]float64{
		"c": {0, 0},
		"b": {50, 0},
		"a": {0, 50},
	}
	for _, r := range rects {
		want := wantPos[r.EntityID]
		if r.X != want[0] || r.Y != want[1] {
			t.Errorf("%s at (%v, %v), want (%v, %v)", r.EntityID, r.X, r.Y, want[0], want[1])
		}
	}
}

func TestGridKeepsZeroValuedItems(t *testing.T) {
	// The grid places every item, including zero-valued ones, as long as
	// at least one item is non-zero.
	items := []Item{sized("a", 5), sized("b", 0), sized("c", 0)}

	opts := DefaultLayoutOptions()
	opts.EqualSize = true
	rects, _ := Layout(items, 100, 100, opts)

	if len(rects) != 3 {
		t.Errorf("got %d rects, want 3", len(rects))
	}
}
