package colour

import "math"

// RGBToHSV converts an RGB colour to HSV colour space.
// Returns hue (0-360), saturation (0-1), value (0-1).
func RGBToHSV(rgb RGB) (h, s, v float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	v = maxVal

	if maxVal == 0 {
		return 0, 0, 0
	}
	s = delta / maxVal

	if delta == 0 {
		return 0, s, v
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60
	return h, s, v
}

// HSVToRGB converts an HSV colour to RGB colour space.
// h is hue (0-360), s is saturation (0-1), v is value (0-1).
func HSVToRGB(h, s, v float64) RGB {
	if s == 0 {
		// Achromatic (grey).
		c := int(math.Round(v * 255))
		return RGB{R: c, G: c, B: c}
	}

	// Normalize hue to [0, 360).
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}

	sector := h / 60
	i := math.Floor(sector)
	f := sector - i

	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGB{
		R: int(math.Round(r * 255)),
		G: int(math.Round(g * 255)),
		B: int(math.Round(b * 255)),
	}
}

// Saturation returns the HSV saturation of a colour (0-1).
func Saturation(rgb RGB) float64 {
	_, s, _ := RGBToHSV(rgb)
	return s
}

// Value returns the HSV value (lightness) of a colour (0-1).
func Value(rgb RGB) float64 {
	_, _, v := RGBToHSV(rgb)
	return v
}

// IsVibrantAndVisible reports whether a colour has both enough saturation
// and enough lightness to work as an accent. Near-black colours can carry
// high saturation while still rendering as black, so both thresholds apply.
func IsVibrantAndVisible(rgb RGB) bool {
	_, s, v := RGBToHSV(rgb)
	return s > 0.2 && v > 0.2
}
