package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/colour"
	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/config"
	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/service"
)

var (
	// Extract command flags
	extractFormat      string
	extractOutput      string
	extractAlbum       string
	extractArtist      string
	extractColours     int
	extractMinContrast float64
	extractShowPreview bool
	extractFallback    bool
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a theming palette from an album-art image",
	Long: `Extract a five-role colour palette from an album-art image.

The image is downsampled to a fixed working resolution, quantized to its
dominant colours, pruned to a visually distinct subset, and the roles are
assigned with WCAG AA contrast enforced between background and foreground.

Supported image formats: JPEG, PNG, GIF, WebP. The image argument may be a
local path or an HTTP(S) URL.

Examples:
  # Extract a palette and print the roles
  rhythmhue extract cover.jpg

  # Extract with terminal colour swatches
  rhythmhue extract --preview cover.jpg

  # Output as JSON, keyed by album/artist metadata
  rhythmhue extract -f json --album "Hounds of Love" --artist "Kate Bush" cover.jpg

  # Fall back to the static default palette when extraction fails
  rhythmhue extract --fallback cover.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "roles", "output format (roles, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().StringVar(&extractAlbum, "album", "", "album name used for the palette fingerprint")
	extractCmd.Flags().StringVar(&extractArtist, "artist", "", "artist name used for the palette fingerprint")
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", colour.DefaultColorCount, "number of dominant colours to quantize (1-256)")
	extractCmd.Flags().Float64Var(&extractMinContrast, "min-contrast", colour.MinContrastAA, "minimum WCAG contrast ratio between background and foreground")
	extractCmd.Flags().BoolVar(&extractShowPreview, "preview", false, "show colour swatches in the terminal")
	extractCmd.Flags().BoolVar(&extractFallback, "fallback", false, "emit the static default palette when extraction fails")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	cfg.ColorCount = extractColours
	cfg.MinContrastRatio = extractMinContrast
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cmd)
	svc := service.New(service.Options{
		ColorCount: cfg.ColorCount,
		Selector:   cfg.Selector(),
		Logger:     logger,
	})

	fingerprint := service.Fingerprint(extractAlbum, extractArtist)
	palette, err := svc.Extract(args[0], fingerprint)
	if err != nil {
		if !extractFallback {
			return fmt.Errorf("failed to extract palette: %w", err)
		}
		logger.Warn("extraction failed, using default palette", "error", err)
		palette = colour.DefaultPalette()
	}

	output, err := renderPalette(palette, extractFormat, extractShowPreview && isTerminal())
	if err != nil {
		return err
	}

	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, []byte(output), 0o644); err != nil { // #nosec G306 - Palette output is not sensitive
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}

// isTerminal reports whether stdout is attached to a terminal, gating the
// ANSI swatch preview.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
