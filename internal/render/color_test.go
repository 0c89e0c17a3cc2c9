package render

import (
	"image/color"
	"testing"
)

func TestHueWrapsAtRed(t *testing.T) {
	want := color.RGBA{R: 255, A: 255}
	if got := HSVToRGB(0, 1, 1); got != want {
		t.Fatalf("HSVToRGB(0,1,1) = %v, want %v", got, want)
	}
	if got := HSVToRGB(360, 1, 1); got != want {
		t.Fatalf("HSVToRGB(360,1,1) = %v, want %v", got, want)
	}
}

func TestNegativeHueWrapsUpward(t *testing.T) {
	if got, want := HSVToRGB(-60, 1, 1), HSVToRGB(300, 1, 1); got != want {
		t.Fatalf("HSVToRGB(-60,1,1) = %v, want %v", got, want)
	}
}

func TestPrimaryHues(t *testing.T) {
	cases := []struct {
		hue  float64
		want color.RGBA
	}{
		{0, color.RGBA{R: 255, A: 255}},
		{120, color.RGBA{G: 255, A: 255}},
		{240, color.RGBA{B: 255, A: 255}},
		{180, color.RGBA{G: 255, B: 255, A: 255}},
	}
	for _, c := range cases {
		if got := HSVToRGB(c.hue, 1, 1); got != c.want {
			t.Errorf("HSVToRGB(%v,1,1) = %v, want %v", c.hue, got, c.want)
		}
	}
}

func TestHueSweepIsContinuous(t *testing.T) {
	absDiff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			d = -d
		}
		return d
	}
	prev := HSVToRGB(0, 1, 1)
	for h := 0.5; h <= 360; h += 0.5 {
		cur := HSVToRGB(h, 1, 1)
		if absDiff(cur.R, prev.R) > 4 || absDiff(cur.G, prev.G) > 4 || absDiff(cur.B, prev.B) > 4 {
			t.Fatalf("discontinuity at hue %v: %v -> %v", h, prev, cur)
		}
		prev = cur
	}
}

func TestSaturationValueClamped(t *testing.T) {
	if got, want := HSVToRGB(120, 2, 5), HSVToRGB(120, 1, 1); got != want {
		t.Fatalf("over-range s/v = %v, want %v", got, want)
	}
	if got, want := HSVToRGB(120, -1, -1), (color.RGBA{A: 255}); got != want {
		t.Fatalf("under-range s/v = %v, want %v", got, want)
	}
}
