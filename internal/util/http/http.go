// Package http provides a small helper for fetching remote cover art.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/version"
)

const (
	// userAgentName is the application name used in the User-Agent header.
	userAgentName = "rhythmhue"

	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// maxBodySize caps the response size. Cover art beyond this is either
	// not an image or not worth decoding.
	maxBodySize = 32 << 20
)

// Fetch retrieves the content of a URL with a bounded timeout.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	client := &http.Client{Timeout: DefaultTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", fmt.Sprintf("%s/%s", userAgentName, version.Version))

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
