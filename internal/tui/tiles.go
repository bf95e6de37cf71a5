package tui

import (
	"math"

	"github.com/samber/lo"

	"github.com/treemosaic/treemosaic/pkg/treemap"
)

// Block is a tile mapped onto the character cell grid.
type Block struct {
	Rect treemap.Rect

	X, Y          int
	Width, Height int
}

// cellBlocks projects the computed rectangles onto a cols × rows character
// grid. Edges are snapped independently so neighboring blocks share edges
// and the grid stays gap-free despite rounding.
func cellBlocks(rects []treemap.Rect, width, height float64, cols, rows int) []Block {
	if width <= 0 || height <= 0 || cols < 1 || rows < 1 {
		return nil
	}

	return lo.Map(rects, func(r treemap.Rect, _ int) Block {
		x0 := snap(r.X/width, cols)
		x1 := snap(r.Right()/width, cols)
		y0 := snap(r.Y/height, rows)
		y1 := snap(r.Bottom()/height, rows)
		return Block{
			Rect:   r,
			X:      x0,
			Y:      y0,
			Width:  x1 - x0,
			Height: y1 - y0,
		}
	})
}

// snap converts a 0..1 fraction into a cell index, clamped to the grid.
func snap(frac float64, cells int) int {
	i := int(math.Round(frac * float64(cells)))
	if i < 0 {
		return 0
	}
	if i > cells {
		return cells
	}
	return i
}

// truncate shortens a label to fit the given width.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
