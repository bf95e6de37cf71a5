package scale

import "testing"

func TestHex(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "black", color: Color{}, want: "#000000"},
		{name: "white", color: Color{R: 255, G: 255, B: 255}, want: "#ffffff"},
		{name: "loss", color: Loss, want: "#dc5c5c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDivergingEndpoints(t *testing.T) {
	d := New(-100, 100)

	if got := d.At(-100); got != Loss {
		t.Errorf("At(Min) = %v, want loss color", got)
	}
	if got := d.At(100); got != Gain {
		t.Errorf("At(Max) = %v, want gain color", got)
	}
	if got := d.At(0); got != Neutral {
		t.Errorf("At(0) = %v, want neutral color", got)
	}
}

func TestDivergingClamps(t *testing.T) {
	d := New(-10, 10)

	if got := d.At(-1000); got != Loss {
		t.Errorf("At(-1000) = %v, want loss color", got)
	}
	if got := d.At(1000); got != Gain {
		t.Errorf("At(1000) = %v, want gain color", got)
	}
}

func TestDivergingOneSided(t *testing.T) {
	t.Run("all positive ramps from neutral", func(t *testing.T) {
		d := New(10, 100)
		if got := d.At(10); got != Neutral {
			t.Errorf("At(Min) = %v, want neutral", got)
		}
		if got := d.At(100); got != Gain {
			t.Errorf("At(Max) = %v, want gain", got)
		}
	})

	t.Run("all negative ramps to neutral", func(t *testing.T) {
		d := New(-100, -10)
		if got := d.At(-100); got != Loss {
			t.Errorf("At(Min) = %v, want loss", got)
		}
		if got := d.At(-10); got != Neutral {
			t.Errorf("At(Max) = %v, want neutral", got)
		}
	})
}

func TestDivergingDegenerateRange(t *testing.T) {
	d := New(5, 5)
	if got := d.At(5); got != Neutral {
		t.Errorf("At on empty range = %v, want neutral", got)
	}
}

func TestDivergingZeroValueUsesDefaults(t *testing.T) {
	var d Diverging
	d.Min, d.Max = -1, 1
	if got := d.At(1); got != Gain {
		t.Errorf("zero-value scale At(Max) = %v, want default gain", got)
	}
}

func TestDarken(t *testing.T) {
	c := Color{R: 100, G: 200, B: 50}
	got := c.Darken(0.5)
	want := Color{R: 50, G: 100, B: 25}
	if got != want {
		t.Errorf("Darken(0.5) = %v, want %v", got, want)
	}
	if c.Darken(0) != c {
		t.Error("Darken(0) changed the color")
	}
}

func TestLerpMidpoint(t *testing.T) {
	a := Color{R: 0, G: 0, B: 0}
	b := Color{R: 200, G: 100, B: 50}
	got := lerp(a, b, 0.5)
	want := Color{R: 100, G: 50, B: 25}
	if got != want {
		t.Errorf("lerp midpoint = %v, want %v", got, want)
	}
}
