package tui

import (
	"testing"

	"github.com/treemosaic/treemosaic/pkg/treemap"
)

func TestCellBlocksCoverGrid(t *testing.T) {
	rects := []treemap.Rect{
		{Item: treemap.Item{EntityID: "a"}, X: 0, Y: 0, Width: 60, Height: 40},
		{Item: treemap.Item{EntityID: "b"}, X: 60, Y: 0, Width: 40, Height: 40},
	}

	blocks := cellBlocks(rects, 100, 40, 80, 20)
	if len(blocks) != 2 {
		t.Fatalf("blocks = %d, want 2", len(blocks))
	}

	a, b := blocks[0], blocks[1]
	if a.X != 0 || a.Width != 48 || a.Height != 20 {
		t.Errorf("a = %+v, want X=0 Width=48 Height=20", a)
	}
	if b.X != 48 || b.Width != 32 {
		t.Errorf("b = %+v, want X=48 Width=32", b)
	}
	if a.X+a.Width != b.X {
		t.Error("neighbors do not share an edge")
	}
	if b.X+b.Width != 80 {
		t.Error("grid not fully covered")
	}
}

func TestCellBlocksDegenerate(t *testing.T) {
	rects := []treemap.Rect{{Width: 10, Height: 10}}
	if got := cellBlocks(rects, 0, 10, 5, 5); got != nil {
		t.Errorf("zero width should yield nil, got %v", got)
	}
	if got := cellBlocks(rects, 10, 10, 0, 5); got != nil {
		t.Errorf("zero cols should yield nil, got %v", got)
	}
}

func TestSnapClamps(t *testing.T) {
	tests := []struct {
		frac  float64
		cells int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 10},
		{0.5, 10, 5},
		{-0.1, 10, 0},
		{1.2, 10, 10},
	}
	for _, tt := range tests {
		if got := snap(tt.frac, tt.cells); got != tt.want {
			t.Errorf("snap(%v, %d) = %d, want %d", tt.frac, tt.cells, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Solar", 10, "Solar"},
		{"Solar", 5, "Solar"},
		{"Solar Array", 6, "Solar…"},
		{"Solar", 1, "S"},
		{"Solar", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
