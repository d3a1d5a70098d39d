package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/colour"
)

// renderPalette formats a palette for CLI output.
func renderPalette(p *colour.ColorPalette, format string, preview bool) (string, error) {
	switch format {
	case "roles":
		return renderRoles(p, preview), nil
	case "json":
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal palette: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid formats: roles, json)", format)
	}
}

// renderRoles prints one line per palette role, optionally with an ANSI
// 24-bit colour swatch.
func renderRoles(p *colour.ColorPalette, preview bool) string {
	roles := []struct {
		name   string
		colour colour.RGB
	}{
		{"background", p.Background},
		{"foreground", p.Foreground},
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"accent", p.Accent},
	}

	var b strings.Builder
	for _, role := range roles {
		if preview {
			b.WriteString(swatch(role.colour))
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%-10s %s  %s\n", role.name, role.colour.Hex(), role.colour)
	}
	fmt.Fprintf(&b, "%-10s %.2f:1\n", "contrast", p.ContrastRatioBGFG)
	return b.String()
}

// swatch renders a colour block using a 24-bit ANSI background escape.
func swatch(c colour.RGB) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm    \x1b[0m", c.R, c.G, c.B)
}
