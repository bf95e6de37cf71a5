package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treemosaic/treemosaic/pkg/scale"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleHint   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleStatus = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)

	borderColor   = lipgloss.Color("#1c1e22")
	selectedColor = lipgloss.Color("#ffffff")
)

// renderGrid draws the blocks into a cols × rows cell grid and renders it
// line by line.
func (m Model) renderGrid(cols, rows int) string {
	grid := make([][]rune, rows)
	styles := make([][]lipgloss.Style, rows)
	for y := range grid {
		grid[y] = make([]rune, cols)
		styles[y] = make([]lipgloss.Style, cols)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	for i, block := range m.blocks {
		m.drawBlock(grid, styles, block, i == m.selected, cols, rows)
	}

	var lines []string
	for y := 0; y < rows; y++ {
		var line strings.Builder
		for x := 0; x < cols; x++ {
			line.WriteString(styles[y][x].Render(string(grid[y][x])))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// drawBlock fills one block's cells with its color, draws its border, and
// writes its label when there is room.
func (m Model) drawBlock(grid [][]rune, styles [][]lipgloss.Style, block Block, selected bool, gridW, gridH int) {
	if block.Width < 1 || block.Height < 1 {
		return
	}

	base := m.colors.At(block.Rect.ColorValue)
	bg := lipgloss.Color(base.Hex())
	fg := lipgloss.Color(labelColor(base).Hex())

	fill := lipgloss.NewStyle().Background(bg).Foreground(fg)
	border := lipgloss.NewStyle().Background(bg).Foreground(borderColor)
	if selected {
		border = border.Foreground(selectedColor).Bold(true)
	}

	for y := block.Y; y < block.Y+block.Height && y < gridH; y++ {
		for x := block.X; x < block.X+block.Width && x < gridW; x++ {
			grid[y][x] = ' '
			styles[y][x] = fill
		}
	}

	drawBorder(grid, styles, block, border, gridW, gridH)

	if block.Width > 4 && block.Height > 2 {
		name := block.Rect.Label
		if name == "" {
			name = block.Rect.EntityID
		}
		label := truncate(name, block.Width-4)
		for i, ch := range label {
			x := block.X + 2 + i
			if x < gridW && x < block.X+block.Width-2 && block.Y+1 < gridH {
				grid[block.Y+1][x] = ch
				styles[block.Y+1][x] = fill
			}
		}
	}
}

// drawBorder outlines a block with box-drawing characters.
func drawBorder(grid [][]rune, styles [][]lipgloss.Style, block Block, style lipgloss.Style, gridW, gridH int) {
	set := func(x, y int, ch rune) {
		if x >= 0 && x < gridW && y >= 0 && y < gridH {
			grid[y][x] = ch
			styles[y][x] = style
		}
	}

	right := block.X + block.Width - 1
	bottom := block.Y + block.Height - 1

	for x := block.X; x <= right; x++ {
		set(x, block.Y, '─')
		set(x, bottom, '─')
	}
	for y := block.Y; y <= bottom; y++ {
		set(block.X, y, '│')
		set(right, y, '│')
	}
	set(block.X, block.Y, '┌')
	set(right, block.Y, '┐')
	set(block.X, bottom, '└')
	set(right, bottom, '┘')
}

// labelColor picks a readable foreground for a tile background.
func labelColor(c scale.Color) scale.Color {
	// Perceived luminance, ITU-R BT.601 weights.
	lum := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if lum > 150 {
		return scale.Color{R: 0x1c, G: 0x1e, B: 0x22}
	}
	return scale.Color{R: 0xff, G: 0xff, B: 0xff}
}
