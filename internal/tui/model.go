// Package tui implements the interactive terminal treemap preview.
//
// The model re-runs the full prepare and layout flow on every terminal
// resize and option toggle, drawing the resulting tiles as colored
// character cells. Arrow keys move the selection between adjacent tiles.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treemosaic/treemosaic/pkg/scale"
	"github.com/treemosaic/treemosaic/pkg/treemap"
)

// chromeHeight is the number of lines reserved above and below the grid
// for the title, hints, and status line.
const chromeHeight = 4

// Model is the bubbletea model for the treemap preview.
type Model struct {
	items   []treemap.Item
	prepare treemap.PrepareOptions
	layout  treemap.LayoutOptions

	colors   scale.Diverging
	blocks   []Block
	rowCount int
	selected int

	width  int
	height int
}

// New creates a preview model for the given items and options. The layout
// is computed on the first WindowSizeMsg, which bubbletea always delivers
// on startup.
func New(items []treemap.Item, prepare treemap.PrepareOptions, layout treemap.LayoutOptions) Model {
	return Model{
		items:    items,
		prepare:  prepare,
		layout:   layout,
		selected: -1,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveSelection(0, -1)
		case "down", "j":
			m.moveSelection(0, 1)
		case "left", "h":
			m.moveSelection(-1, 0)
		case "right", "l":
			m.moveSelection(1, 0)
		case "i":
			m.prepare.Inverse = !m.prepare.Inverse
			m.relayout()
		case "a":
			m.prepare.Ascending = !m.prepare.Ascending
			m.layout.Ascending = !m.layout.Ascending
			m.relayout()
		case "e":
			m.layout.EqualSize = !m.layout.EqualSize
			m.relayout()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
	}
	return m, nil
}

// relayout recomputes the tile grid for the current terminal size and
// options.
func (m *Model) relayout() {
	cols, rows := m.gridSize()
	if cols < 1 || rows < 1 {
		m.blocks = nil
		return
	}

	ranked, colorMin, colorMax := treemap.Prepare(m.items, m.prepare)
	m.colors = scale.New(colorMin, colorMax)

	// Terminal cells are roughly twice as tall as wide; laying out in a
	// virtual space with doubled row height keeps the tiles visually square.
	w, h := float64(cols), float64(rows*2)
	rects, rowCount := treemap.Layout(ranked, w, h, m.layout)
	m.rowCount = rowCount
	m.blocks = cellBlocks(rects, w, h, cols, rows)

	if m.selected >= len(m.blocks) {
		m.selected = len(m.blocks) - 1
	}
	if m.selected < 0 && len(m.blocks) > 0 {
		m.selected = 0
	}
}

// gridSize returns the drawable cell grid dimensions.
func (m Model) gridSize() (cols, rows int) {
	return m.width, m.height - chromeHeight
}

// moveSelection moves the selection to the nearest block in the given
// direction, measured center to center.
func (m *Model) moveSelection(dx, dy int) {
	if len(m.blocks) == 0 {
		return
	}
	if m.selected < 0 {
		m.selected = 0
		return
	}

	cur := m.blocks[m.selected]
	cx := cur.X + cur.Width/2
	cy := cur.Y + cur.Height/2

	best := -1
	bestDist := -1
	for i, b := range m.blocks {
		if i == m.selected {
			continue
		}
		bx := b.X + b.Width/2
		by := b.Y + b.Height/2

		if dx > 0 && bx <= cx {
			continue
		}
		if dx < 0 && bx >= cx {
			continue
		}
		if dy > 0 && by <= cy {
			continue
		}
		if dy < 0 && by >= cy {
			continue
		}

		dist := abs(bx-cx) + abs(by-cy)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	if best >= 0 {
		m.selected = best
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Treemosaic"))
	b.WriteString("\n")
	b.WriteString(styleHint.Render("↑/↓/←/→ select  i invert  a ascending  e equal size  q quit"))
	b.WriteString("\n")

	cols, rows := m.gridSize()
	if cols < 1 || rows < 1 || len(m.blocks) == 0 {
		b.WriteString(styleHint.Render("no tiles to show"))
		return b.String()
	}

	b.WriteString(m.renderGrid(cols, rows))
	b.WriteString("\n")
	b.WriteString(m.statusLine())

	return b.String()
}

// statusLine describes the selected tile and the layout shape.
func (m Model) statusLine() string {
	shape := fmt.Sprintf("%d tiles · %d rows", len(m.blocks), m.rowCount)
	if m.selected < 0 || m.selected >= len(m.blocks) {
		return styleHint.Render(shape)
	}

	r := m.blocks[m.selected].Rect
	name := r.Label
	if name == "" {
		name = r.EntityID
	}
	return styleStatus.Render(fmt.Sprintf("%s  %.2f", name, r.Value)) +
		styleHint.Render("  ·  "+shape)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
