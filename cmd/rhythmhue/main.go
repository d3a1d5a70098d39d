// Rhythmhue derives UI colour palettes from album-art images.
//
// It extracts a WCAG-AA-compliant five-role palette (primary, secondary,
// accent, background, foreground) from cover art and caches completed
// palettes by album/artist fingerprint.
package main

import (
	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/cli"
)

func main() {
	cli.Execute()
}
