package colour

import "math"

// MinContrastAA is the WCAG AA minimum contrast ratio for normal text.
const MinContrastAA = 4.5

// Fallback foregrounds used when iterative adjustment cannot reach the
// requested contrast ratio.
var (
	fallbackDarkForeground  = RGB{R: 40, G: 40, B: 40}
	fallbackLightForeground = RGB{R: 245, G: 245, B: 245}
)

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies sRGB gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum
// contrast (black vs white). WCAG AA requires 4.5:1 for normal text.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// AdjustForContrast nudges a foreground/background pair toward the minimum
// contrast ratio. The foreground's HSV value is raised in steps of 0.05 for
// up to 20 iterations; if the threshold is still unreachable the foreground
// is replaced with a fixed default chosen by background lightness. The
// background is never modified. This function always returns a usable pair;
// the realized ratio is the caller's to report.
func AdjustForContrast(fg, bg RGB, minRatio float64) (RGB, RGB) {
	if ContrastRatio(fg, bg) >= minRatio {
		return fg, bg
	}

	h, s, v := RGBToHSV(fg)
	for i := 0; i < 20; i++ {
		v = math.Min(1.0, v+0.05)
		adjusted := HSVToRGB(h, s, v)
		if ContrastRatio(adjusted, bg) >= minRatio {
			return adjusted, bg
		}
	}

	// Lightening ran out of headroom. Fall back to a default foreground
	// on the opposite end of the lightness scale from the background.
	if Value(bg) > 0.5 {
		return fallbackDarkForeground, bg
	}
	return fallbackLightForeground, bg
}
