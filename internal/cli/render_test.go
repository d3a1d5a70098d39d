package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/colour"
)

func TestRenderPaletteRoles(t *testing.T) {
	p := colour.DefaultPalette()

	got, err := renderPalette(p, "roles", false)
	if err != nil {
		t.Fatalf("renderPalette failed: %v", err)
	}

	for _, want := range []string{"background", "foreground", "primary", "secondary", "accent", "#04040a", "#f0f0f0"} {
		if !strings.Contains(got, want) {
			t.Errorf("roles output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\x1b[") {
		t.Error("roles output contains ANSI escapes without preview enabled")
	}
}

func TestRenderPaletteRolesPreview(t *testing.T) {
	got, err := renderPalette(colour.DefaultPalette(), "roles", true)
	if err != nil {
		t.Fatalf("renderPalette failed: %v", err)
	}
	if !strings.Contains(got, "\x1b[48;2;") {
		t.Error("preview output missing ANSI background swatches")
	}
}

func TestRenderPaletteJSON(t *testing.T) {
	p := colour.DefaultPalette()

	got, err := renderPalette(p, "json", false)
	if err != nil {
		t.Fatalf("renderPalette failed: %v", err)
	}

	var decoded colour.ColorPalette
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("json output does not decode: %v", err)
	}
	if decoded.Background != p.Background || decoded.SourceFingerprint != p.SourceFingerprint {
		t.Errorf("decoded palette = %+v, want %+v", decoded, p)
	}
}

func TestRenderPaletteUnknownFormat(t *testing.T) {
	if _, err := renderPalette(colour.DefaultPalette(), "yaml", false); err == nil {
		t.Error("renderPalette accepted an unknown format")
	}
}
