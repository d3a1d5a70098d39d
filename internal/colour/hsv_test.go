package colour

import (
	"math"
	"testing"
)

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name   string
		colour RGB
		wantH  float64
		wantS  float64
		wantV  float64
	}{
		{name: "black", colour: RGB{R: 0, G: 0, B: 0}, wantH: 0, wantS: 0, wantV: 0},
		{name: "white", colour: RGB{R: 255, G: 255, B: 255}, wantH: 0, wantS: 0, wantV: 1},
		{name: "red", colour: RGB{R: 255, G: 0, B: 0}, wantH: 0, wantS: 1, wantV: 1},
		{name: "green", colour: RGB{R: 0, G: 255, B: 0}, wantH: 120, wantS: 1, wantV: 1},
		{name: "blue", colour: RGB{R: 0, G: 0, B: 255}, wantH: 240, wantS: 1, wantV: 1},
		{name: "mid grey", colour: RGB{R: 128, G: 128, B: 128}, wantH: 0, wantS: 0, wantV: 128.0 / 255.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := RGBToHSV(tt.colour)
			if math.Abs(h-tt.wantH) > 1e-9 || math.Abs(s-tt.wantS) > 1e-9 || math.Abs(v-tt.wantV) > 1e-9 {
				t.Errorf("RGBToHSV(%v) = (%g, %g, %g), want (%g, %g, %g)",
					tt.colour, h, s, v, tt.wantH, tt.wantS, tt.wantV)
			}
		})
	}
}

func TestHSVRoundTrip(t *testing.T) {
	colours := []RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 255, G: 0, B: 0},
		{R: 40, G: 40, B: 40},
		{R: 245, G: 245, B: 245},
		{R: 158, G: 13, B: 67},
	}

	for _, c := range colours {
		h, s, v := RGBToHSV(c)
		got := HSVToRGB(h, s, v)
		// Rounding through float space may shift a component by one.
		if abs(got.R-c.R) > 1 || abs(got.G-c.G) > 1 || abs(got.B-c.B) > 1 {
			t.Errorf("HSV round trip of %v = %v", c, got)
		}
	}
}

func TestIsVibrantAndVisible(t *testing.T) {
	tests := []struct {
		name   string
		colour RGB
		want   bool
	}{
		{name: "saturated and bright", colour: RGB{R: 255, G: 0, B: 0}, want: true},
		{name: "saturated but near-black", colour: RGB{R: 40, G: 2, B: 2}, want: false},
		{name: "bright but washed out", colour: RGB{R: 240, G: 240, B: 240}, want: false},
		{name: "black", colour: RGB{R: 0, G: 0, B: 0}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVibrantAndVisible(tt.colour); got != tt.want {
				t.Errorf("IsVibrantAndVisible(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
