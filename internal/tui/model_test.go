package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treemosaic/treemosaic/pkg/treemap"
)

func previewItems() []treemap.Item {
	return []treemap.Item{
		{EntityID: "sensor.solar", Label: "Solar", Value: 10, SizeValue: 10, SortValue: 10, ColorValue: 10},
		{EntityID: "sensor.grid", Label: "Grid", Value: -5, SizeValue: 5, SortValue: -5, ColorValue: -5},
		{EntityID: "sensor.battery", Label: "Battery", Value: 1, SizeValue: 1, SortValue: 1, ColorValue: 1},
	}
}

func sized(m Model, w, h int) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

func TestModelLayoutOnResize(t *testing.T) {
	m := New(previewItems(), treemap.PrepareOptions{}, treemap.DefaultLayoutOptions())
	if len(m.blocks) != 0 {
		t.Fatal("blocks computed before first resize")
	}

	m = sized(m, 80, 24)
	if len(m.blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(m.blocks))
	}
	if m.selected != 0 {
		t.Errorf("selected = %d, want 0", m.selected)
	}

	// Shrinking to nothing clears the grid.
	m = sized(m, 80, chromeHeight)
	if len(m.blocks) != 0 {
		t.Errorf("blocks = %d after shrink, want 0", len(m.blocks))
	}
}

func TestModelQuitKeys(t *testing.T) {
	m := sized(New(previewItems(), treemap.PrepareOptions{}, treemap.DefaultLayoutOptions()), 80, 24)

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("q did not quit")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Error("esc did not quit")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("ctrl+c did not quit")
	}
}

func TestModelToggleRelayout(t *testing.T) {
	m := sized(New(previewItems(), treemap.PrepareOptions{}, treemap.DefaultLayoutOptions()), 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	m = next.(Model)
	if !m.layout.EqualSize {
		t.Error("e did not toggle equal size")
	}
	if len(m.blocks) != 3 {
		t.Errorf("blocks = %d after toggle, want 3", len(m.blocks))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	m = next.(Model)
	if !m.prepare.Inverse {
		t.Error("i did not toggle inversion")
	}
}

func TestModelViewShowsLabels(t *testing.T) {
	m := sized(New(previewItems(), treemap.PrepareOptions{}, treemap.DefaultLayoutOptions()), 80, 24)

	view := m.View()
	if !strings.Contains(view, "Solar") {
		t.Error("view missing largest tile label")
	}
	if !strings.Contains(view, "3 tiles") {
		t.Error("view missing status line")
	}
}
