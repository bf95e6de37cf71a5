package sink

import (
	"encoding/json"

	"github.com/treemosaic/treemosaic/pkg/treemap"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	rowCount      int
	hasColorRange bool
	colorMin      float64
	colorMax      float64
}

// WithRowCount records the layout's row count in the JSON output.
func WithRowCount(n int) JSONOption {
	return func(r *jsonRenderer) { r.rowCount = n }
}

// WithColorRange records the color-scale range reported by preparation,
// enabling consumers to reproduce tile coloring.
func WithColorRange(min, max float64) JSONOption {
	return func(r *jsonRenderer) {
		r.hasColorRange = true
		r.colorMin = min
		r.colorMax = max
	}
}

type jsonOutput struct {
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	RowCount int        `json:"row_count,omitempty"`
	ColorMin *float64   `json:"color_min,omitempty"`
	ColorMax *float64   `json:"color_max,omitempty"`
	Tiles    []jsonTile `json:"tiles"`
}

type jsonTile struct {
	EntityID   string  `json:"entity_id,omitempty"`
	Label      string  `json:"label,omitempty"`
	Icon       string  `json:"icon,omitempty"`
	Category   string  `json:"category,omitempty"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Value      float64 `json:"value"`
	SizeValue  float64 `json:"size_value"`
	ColorValue float64 `json:"color_value"`
}

// RenderJSON exports the layout as a pretty-printed JSON document, the
// interchange format for external visualization tooling. It returns an
// error only if marshaling fails, which cannot happen for well-formed
// layouts, and never modifies rects.
func RenderJSON(rects []treemap.Rect, width, height float64, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:    width,
		Height:   height,
		RowCount: r.rowCount,
		Tiles:    make([]jsonTile, 0, len(rects)),
	}
	if r.hasColorRange {
		out.ColorMin = &r.colorMin
		out.ColorMax = &r.colorMax
	}

	for _, rect := range rects {
		out.Tiles = append(out.Tiles, jsonTile{
			EntityID:   rect.EntityID,
			Label:      rect.Label,
			Icon:       rect.Icon,
			Category:   rect.Category,
			X:          rect.X,
			Y:          rect.Y,
			Width:      rect.Width,
			Height:     rect.Height,
			Value:      rect.Value,
			SizeValue:  rect.SizeValue,
			ColorValue: rect.ColorValue,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}
