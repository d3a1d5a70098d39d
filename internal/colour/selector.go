package colour

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-hclog"
)

// SelectorConfig holds tuning for palette role selection.
type SelectorConfig struct {
	// MaxDistinct bounds the distinct-colour filter output.
	MaxDistinct int

	// MinDistance is the Euclidean RGB distance below which two colours
	// are considered indistinct.
	MinDistance float64

	// MinContrastRatio is the WCAG contrast ratio enforced between
	// background and foreground.
	MinContrastRatio float64
}

// DefaultSelectorConfig returns the default selector configuration.
func DefaultSelectorConfig() SelectorConfig {
	return SelectorConfig{
		MaxDistinct:      DefaultMaxDistinct,
		MinDistance:      DefaultMinDistance,
		MinContrastRatio: MinContrastAA,
	}
}

// Validate validates the selector configuration.
func (c SelectorConfig) Validate() error {
	if c.MaxDistinct < 1 {
		return fmt.Errorf("max distinct colours must be at least 1, got %d", c.MaxDistinct)
	}
	if c.MinDistance < 0 {
		return fmt.Errorf("min colour distance cannot be negative, got %g", c.MinDistance)
	}
	if c.MinContrastRatio < 1 || c.MinContrastRatio > 21 {
		return fmt.Errorf("min contrast ratio must be in [1, 21], got %g", c.MinContrastRatio)
	}
	return nil
}

// SelectPalette assigns the five theming roles from a quantized colour
// sequence. The true darkest and lightest input colours are preserved
// through distinctness filtering because background and foreground must
// come from the real extremes, not whatever the greedy filter kept.
func SelectPalette(colours []RGB, fingerprint string, cfg SelectorConfig, logger hclog.Logger) (*ColorPalette, error) {
	if len(colours) == 0 {
		return nil, fmt.Errorf("no colours to select from")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid selector configuration: %w", err)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	darkest := Darkest(colours)
	lightest := Lightest(colours)

	filtered := FilterDistinct(colours, cfg.MaxDistinct, cfg.MinDistance)
	if !containsColour(filtered, darkest) {
		filtered = append([]RGB{darkest}, filtered...)
	}
	if !containsColour(filtered, lightest) {
		filtered = append(filtered, lightest)
	}

	byValue := make([]RGB, len(filtered))
	copy(byValue, filtered)
	sort.SliceStable(byValue, func(i, j int) bool {
		return Value(byValue[i]) < Value(byValue[j])
	})

	background := byValue[0]
	foreground := byValue[len(byValue)-1]

	foreground, background = AdjustForContrast(foreground, background, cfg.MinContrastRatio)
	ratio := ContrastRatio(foreground, background)
	if ratio < cfg.MinContrastRatio {
		logger.Warn("contrast ratio below WCAG AA after adjustment",
			"ratio", fmt.Sprintf("%.2f", ratio),
			"minimum", cfg.MinContrastRatio,
			"background", background.Hex(),
			"foreground", foreground.Hex())
	}

	bySaturation := make([]RGB, len(filtered))
	copy(bySaturation, filtered)
	sort.SliceStable(bySaturation, func(i, j int) bool {
		return Saturation(bySaturation[i]) > Saturation(bySaturation[j])
	})

	vibrant := make([]RGB, 0, len(bySaturation))
	for _, c := range bySaturation {
		if IsVibrantAndVisible(c) {
			vibrant = append(vibrant, c)
		}
	}

	// Accent roles come from the vibrant set; a fully washed-out or
	// near-black image falls back to raw saturation order.
	candidates := vibrant
	if len(candidates) == 0 {
		candidates = bySaturation
	}

	primary := pickRole(candidates, 0, background)
	secondary := pickRole(vibrant, 1, background)
	if secondary == nil {
		secondary = primary
	}
	accent := pickRole(vibrant, 2, background)
	if accent == nil {
		accent = primary
	}

	return NewColorPalette(*primary, *secondary, background, foreground, *accent, ratio, fingerprint)
}

// pickRole selects the candidate at idx, skipping forward one slot when it
// collides with the background. Returns nil when no candidate exists at idx.
func pickRole(candidates []RGB, idx int, background RGB) *RGB {
	if idx >= len(candidates) {
		return nil
	}
	chosen := candidates[idx]
	if chosen == background && idx+1 < len(candidates) {
		chosen = candidates[idx+1]
	}
	return &chosen
}
