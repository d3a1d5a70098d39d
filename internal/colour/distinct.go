package colour

import "math"

// Default tuning for the distinct-colour filter.
const (
	DefaultMaxDistinct = 8
	DefaultMinDistance = 30.0
)

// Distance returns the Euclidean distance between two colours in RGB space.
func Distance(c1, c2 RGB) float64 {
	dr := float64(c1.R - c2.R)
	dg := float64(c1.G - c2.G)
	db := float64(c1.B - c2.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// FilterDistinct prunes a colour sequence to at most maxCount visually
// distinct colours. The first input colour seeds the result; each following
// colour is accepted only when its distance to every accepted colour
// exceeds minDistance. If the greedy pass yields fewer than maxCount
// colours, remaining unused input colours pad the result (skipping exact
// duplicates) until maxCount is reached or input runs out.
func FilterDistinct(colours []RGB, maxCount int, minDistance float64) []RGB {
	if len(colours) == 0 {
		return nil
	}

	distinct := []RGB{colours[0]}
	for _, c := range colours[1:] {
		if len(distinct) >= maxCount {
			break
		}
		accepted := true
		for _, existing := range distinct {
			if Distance(c, existing) <= minDistance {
				accepted = false
				break
			}
		}
		if accepted {
			distinct = append(distinct, c)
		}
	}

	// Pad with remaining colours when the greedy pass came up short.
	for _, c := range colours {
		if len(distinct) >= maxCount {
			break
		}
		if !containsColour(distinct, c) {
			distinct = append(distinct, c)
		}
	}

	return distinct
}

// Darkest returns the colour with the lowest HSV value. Ties keep the
// earliest input colour.
func Darkest(colours []RGB) RGB {
	darkest := colours[0]
	for _, c := range colours[1:] {
		if Value(c) < Value(darkest) {
			darkest = c
		}
	}
	return darkest
}

// Lightest returns the colour with the highest HSV value. Ties keep the
// earliest input colour.
func Lightest(colours []RGB) RGB {
	lightest := colours[0]
	for _, c := range colours[1:] {
		if Value(c) > Value(lightest) {
			lightest = c
		}
	}
	return lightest
}

func containsColour(colours []RGB, c RGB) bool {
	for _, existing := range colours {
		if existing == c {
			return true
		}
	}
	return false
}
