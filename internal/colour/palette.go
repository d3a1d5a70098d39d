// Package colour provides colour extraction, WCAG contrast math and palette
// role selection for album-art theming.
package colour

import (
	"fmt"
)

// RGB represents a colour in RGB format. Components use full ints rather
// than uint8 so out-of-range values can be detected and rejected at palette
// construction instead of silently wrapping.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Valid reports whether all components are in [0, 255].
func (rgb RGB) Valid() bool {
	for _, c := range []int{rgb.R, rgb.G, rgb.B} {
		if c < 0 || c > 255 {
			return false
		}
	}
	return true
}

// ValidationError reports a palette role whose colour has a component
// outside [0, 255].
type ValidationError struct {
	Role   string
	Colour RGB
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s colour %s has components outside [0, 255]", e.Role, e.Colour)
}

// ColorPalette is a completed set of theming roles extracted from album art.
// A palette is immutable once constructed; callers must not modify it.
type ColorPalette struct {
	Primary    RGB `json:"primary"`
	Secondary  RGB `json:"secondary"`
	Background RGB `json:"background"`
	Foreground RGB `json:"foreground"`
	Accent     RGB `json:"accent"`

	// ContrastRatioBGFG is the realized WCAG contrast ratio between
	// Background and Foreground. Informational: a value below 4.5 is
	// permitted but logged by the selector.
	ContrastRatioBGFG float64 `json:"contrast_ratio_bg_fg"`

	// SourceFingerprint is the opaque caller-supplied key identifying the
	// input that produced this palette. It doubles as the cache key.
	SourceFingerprint string `json:"source_fingerprint"`
}

// NewColorPalette assembles a palette after validating every role colour.
// An out-of-range component yields a ValidationError and no palette.
func NewColorPalette(primary, secondary, background, foreground, accent RGB, ratio float64, fingerprint string) (*ColorPalette, error) {
	roles := []struct {
		name   string
		colour RGB
	}{
		{"primary", primary},
		{"secondary", secondary},
		{"background", background},
		{"foreground", foreground},
		{"accent", accent},
	}
	for _, role := range roles {
		if !role.colour.Valid() {
			return nil, &ValidationError{Role: role.name, Colour: role.colour}
		}
	}

	return &ColorPalette{
		Primary:           primary,
		Secondary:         secondary,
		Background:        background,
		Foreground:        foreground,
		Accent:            accent,
		ContrastRatioBGFG: ratio,
		SourceFingerprint: fingerprint,
	}, nil
}

// DefaultPalette returns the static fallback palette applied when extraction
// fails: a near-black background with an off-white foreground and wine/steel
// accents.
func DefaultPalette() *ColorPalette {
	background := RGB{R: 0x04, G: 0x04, B: 0x0a}
	foreground := RGB{R: 0xf0, G: 0xf0, B: 0xf0}
	return &ColorPalette{
		Primary:           RGB{R: 0x9e, G: 0x0d, B: 0x43},
		Secondary:         RGB{R: 0x30, G: 0x5b, B: 0x82},
		Background:        background,
		Foreground:        foreground,
		Accent:            RGB{R: 0x9e, G: 0x0d, B: 0x43},
		ContrastRatioBGFG: ContrastRatio(background, foreground),
		SourceFingerprint: "default",
	}
}
