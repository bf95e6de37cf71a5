package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/treemosaic/treemosaic/pkg/scale"
	"github.com/treemosaic/treemosaic/pkg/treemap"
)

// defaultFill is used when no color scale is configured.
const defaultFill = "#3a3f47"

// strokeColor separates adjacent tiles.
const strokeColor = "#1c1e22"

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	colors    *scale.Diverging
	labels    bool
	gradients bool
	ids       treemap.IDSource
}

// WithColorScale fills tiles from the diverging scale, keyed by each
// item's ColorValue. Without this every tile uses a neutral fill.
func WithColorScale(d scale.Diverging) SVGOption {
	return func(r *svgRenderer) { r.colors = &d }
}

// WithLabels draws each item's label in the top-left corner of its tile.
func WithLabels() SVGOption {
	return func(r *svgRenderer) { r.labels = true }
}

// WithGradients fills tiles with a vertical gradient instead of a flat
// color. Gradient definitions need unique element ids, drawn from the
// renderer's IDSource.
func WithGradients() SVGOption {
	return func(r *svgRenderer) { r.gradients = true }
}

// WithIDSource sets the generator for gradient element ids. Defaults to a
// fresh sequential source per render, which keeps output deterministic.
func WithIDSource(ids treemap.IDSource) SVGOption {
	return func(r *svgRenderer) { r.ids = ids }
}

// RenderSVG renders the layout as a standalone SVG document. It does not
// modify rects and is safe to call concurrently as long as a shared
// IDSource is not passed in.
func RenderSVG(rects []treemap.Rect, width, height float64, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.ids == nil {
		r.ids = treemap.NewSequentialIDs()
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	fills := r.renderDefs(&buf, rects)

	for i, rect := range rects {
		fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			rect.X, rect.Y, rect.Width, rect.Height, fills[i], strokeColor)
	}

	if r.labels {
		for _, rect := range rects {
			if rect.Label == "" {
				continue
			}
			fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-size="12" fill="#ffffff">%s</text>`+"\n",
				rect.X+4, rect.Y+14, escapeText(rect.Label))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderDefs writes gradient definitions when enabled and returns the fill
// attribute value for each rectangle.
func (r *svgRenderer) renderDefs(buf *bytes.Buffer, rects []treemap.Rect) []string {
	fills := make([]string, len(rects))
	for i, rect := range rects {
		fills[i] = defaultFill
		if r.colors != nil {
			fills[i] = r.colors.At(rect.ColorValue).Hex()
		}
	}
	if !r.gradients {
		return fills
	}

	buf.WriteString("  <defs>\n")
	for i, rect := range rects {
		base := scale.Neutral
		if r.colors != nil {
			base = r.colors.At(rect.ColorValue)
		}
		id := r.ids.Next("tile-grad")
		fmt.Fprintf(buf, `    <linearGradient id="%s" x1="0" y1="0" x2="0" y2="1"><stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/></linearGradient>`+"\n",
			id, base.Hex(), base.Darken(0.25).Hex())
		fills[i] = fmt.Sprintf("url(#%s)", id)
	}
	buf.WriteString("  </defs>\n")
	return fills
}

// escapeText escapes the XML special characters in label text.
func escapeText(s string) string {
	return xmlEscaper.Replace(s)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)
