// Package scale maps signed color values onto a diverging color ramp.
//
// The treemap engine reports the min/max of the items' color values; this
// package turns an individual value into a display color: losses shade
// toward red, gains toward green, with a neutral midpoint at zero. The
// scale is presentation-only and independent of sizing, so renderers can
// color rectangles without touching layout state.
package scale

import "fmt"

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as a #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Darken blends the color toward black by t in [0, 1].
func (c Color) Darken(t float64) Color {
	return lerp(c, Color{}, t)
}

// Default palette: soft red for losses, dark neutral, green for gains.
var (
	Loss    = Color{R: 0xdc, G: 0x5c, B: 0x5c}
	Neutral = Color{R: 0x3a, G: 0x3f, B: 0x47}
	Gain    = Color{R: 0x4c, G: 0xaf, B: 0x6e}
)

// Diverging is a two-sided linear color scale anchored at zero. Values at
// or below Min map to the loss color, values at or above Max to the gain
// color, and zero to neutral. When the range sits entirely on one side of
// zero, the scale degrades to a single-sided ramp over that range.
type Diverging struct {
	Min, Max float64

	// LossColor, NeutralColor, and GainColor override the default palette
	// when non-zero.
	LossColor    Color
	NeutralColor Color
	GainColor    Color
}

// New returns a diverging scale over [min, max] with the default palette.
func New(min, max float64) Diverging {
	return Diverging{
		Min:          min,
		Max:          max,
		LossColor:    Loss,
		NeutralColor: Neutral,
		GainColor:    Gain,
	}
}

// At returns the color for v. Values outside [Min, Max] are clamped.
func (d Diverging) At(v float64) Color {
	loss, neutral, gain := d.palette()

	switch {
	case d.Min >= d.Max:
		return neutral
	case v <= d.Min:
		if d.Min >= 0 {
			return neutral
		}
		return loss
	case v >= d.Max:
		if d.Max <= 0 {
			return neutral
		}
		return gain
	}

	// One-sided ranges ramp from neutral; two-sided ranges anchor the
	// neutral color at zero.
	switch {
	case d.Min >= 0:
		return lerp(neutral, gain, (v-d.Min)/(d.Max-d.Min))
	case d.Max <= 0:
		return lerp(loss, neutral, (v-d.Min)/(d.Max-d.Min))
	case v < 0:
		return lerp(loss, neutral, (v-d.Min)/(0-d.Min))
	default:
		return lerp(neutral, gain, v/d.Max)
	}
}

// palette returns the configured colors, falling back to the defaults for
// zero values so the zero-value Diverging remains usable.
func (d Diverging) palette() (loss, neutral, gain Color) {
	loss, neutral, gain = d.LossColor, d.NeutralColor, d.GainColor
	zero := Color{}
	if loss == zero {
		loss = Loss
	}
	if neutral == zero {
		neutral = Neutral
	}
	if gain == zero {
		gain = Gain
	}
	return loss, neutral, gain
}

// lerp interpolates between two colors in RGB space. t is clamped to
// [0, 1].
func lerp(a, b Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Color{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t + 0.5),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t + 0.5),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t + 0.5),
	}
}
