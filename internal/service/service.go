// Package service exposes the public entry points for palette extraction:
// a blocking call and a non-blocking call that delivers its result back on
// a caller-designated execution context.
package service

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/colour"
	imageio "github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/image"
)

// Scheduler delivers completion callbacks on the execution context the
// caller expects results on, typically a single-threaded event loop. The
// extraction worker never invokes callbacks directly.
type Scheduler interface {
	Schedule(fn func())
}

// Options configures a Service.
type Options struct {
	// Loader supplies decoded images. Defaults to a SmartLoader handling
	// both local paths and HTTP(S) URLs.
	Loader imageio.Loader

	// Quantizer reduces images to dominant colours. Defaults to median
	// cut.
	Quantizer colour.Quantizer

	// ColorCount is the number of dominant colours requested from the
	// quantizer. Defaults to colour.DefaultColorCount.
	ColorCount int

	// Selector tunes distinctness filtering and contrast enforcement.
	Selector colour.SelectorConfig

	// Scheduler receives async completion callbacks. Required for
	// ExtractAsync.
	Scheduler Scheduler

	// Logger receives diagnostics. Defaults to a null logger.
	Logger hclog.Logger
}

// Service runs the extraction pipeline. The pipeline itself is pure and
// synchronous; Service adds failure recovery and the async wrapper.
type Service struct {
	loader     imageio.Loader
	quantizer  colour.Quantizer
	colorCount int
	selector   colour.SelectorConfig
	scheduler  Scheduler
	logger     hclog.Logger
}

// New creates an extraction service, filling in defaults for any options
// left zero.
func New(opts Options) *Service {
	if opts.Loader == nil {
		opts.Loader = imageio.NewSmartLoader()
	}
	if opts.Quantizer == nil {
		opts.Quantizer = colour.NewMedianCutQuantizer()
	}
	if opts.ColorCount == 0 {
		opts.ColorCount = colour.DefaultColorCount
	}
	if opts.Selector == (colour.SelectorConfig{}) {
		opts.Selector = colour.DefaultSelectorConfig()
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	return &Service{
		loader:     opts.Loader,
		quantizer:  opts.Quantizer,
		colorCount: opts.ColorCount,
		selector:   opts.Selector,
		scheduler:  opts.Scheduler,
		logger:     opts.Logger,
	}
}

// Extract runs the full pipeline synchronously: decode, quantize, filter,
// select roles, enforce contrast. Failures of any kind are recovered and
// returned as (nil, err); the error wraps the originating failure kind so
// callers can distinguish a missing source from a corrupt one.
func (s *Service) Extract(path, fingerprint string) (palette *colour.ColorPalette, err error) {
	// The pipeline is pure computation, but image decoding runs on
	// attacker-supplied bytes; a panic must surface as "no palette", not
	// crash the host.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic during extraction", "path", path, "panic", r)
			palette = nil
			err = fmt.Errorf("extraction panicked: %v", r)
		}
	}()

	img, err := s.loader.Load(path)
	if err != nil {
		s.logger.Error("failed to load album art", "path", path, "error", err)
		return nil, err
	}

	colours, err := s.quantizer.Quantize(img, s.colorCount)
	if err != nil {
		s.logger.Error("failed to quantize album art", "path", path, "error", err)
		return nil, err
	}

	palette, err = colour.SelectPalette(colours, fingerprint, s.selector, s.logger)
	if err != nil {
		s.logger.Error("failed to select palette", "path", path, "error", err)
		return nil, err
	}

	s.logger.Debug("palette extracted",
		"path", path,
		"fingerprint", fingerprint,
		"background", palette.Background.Hex(),
		"foreground", palette.Foreground.Hex(),
		"contrast", fmt.Sprintf("%.2f", palette.ContrastRatioBGFG))
	return palette, nil
}

// ExtractAsync runs Extract on a worker goroutine and delivers the result
// through the configured Scheduler. On failure the callback receives nil;
// callers fall back to the default palette. Exactly one extraction is
// submitted per call: deduplicating concurrent requests for the same
// fingerprint is the caller's job (consult the cache first). Cancellation
// mid-extraction is not supported; discard unwanted results.
func (s *Service) ExtractAsync(path, fingerprint string, callback func(*colour.ColorPalette)) {
	if s.scheduler == nil {
		panic("service: ExtractAsync requires a Scheduler")
	}
	go func() {
		palette, err := s.Extract(path, fingerprint)
		if err != nil {
			s.logger.Warn("extraction failed, no palette produced", "path", path, "error", err)
			palette = nil
		}
		s.scheduler.Schedule(func() {
			callback(palette)
		})
	}()
}
