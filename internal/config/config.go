// Package config holds the runtime configuration for palette extraction
// and caching. Configuration is supplied by the caller and never
// persisted.
package config

import (
	"fmt"

	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/colour"
	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/palettecache"
)

// Config collects the tunables of the extraction pipeline and the palette
// cache.
type Config struct {
	// CacheCapacity bounds the palette cache.
	CacheCapacity int

	// MinContrastRatio is the WCAG threshold enforced between background
	// and foreground.
	MinContrastRatio float64

	// ColorCount is the number of dominant colours requested from the
	// quantizer.
	ColorCount int

	// MaxDistinct bounds the distinct-colour filter output.
	MaxDistinct int

	// MinDistance is the Euclidean RGB distance below which two colours
	// are considered indistinct.
	MinDistance float64
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		CacheCapacity:    palettecache.DefaultCapacity,
		MinContrastRatio: colour.MinContrastAA,
		ColorCount:       colour.DefaultColorCount,
		MaxDistinct:      colour.DefaultMaxDistinct,
		MinDistance:      colour.DefaultMinDistance,
	}
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.CacheCapacity < 1 {
		return fmt.Errorf("cache capacity must be at least 1, got %d", c.CacheCapacity)
	}
	if c.ColorCount < 1 || c.ColorCount > 256 {
		return fmt.Errorf("colour count must be in [1, 256], got %d", c.ColorCount)
	}
	return c.Selector().Validate()
}

// Selector returns the selector configuration slice of the config.
func (c Config) Selector() colour.SelectorConfig {
	return colour.SelectorConfig{
		MaxDistinct:      c.MaxDistinct,
		MinDistance:      c.MinDistance,
		MinContrastRatio: c.MinContrastRatio,
	}
}
