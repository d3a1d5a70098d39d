// Package image provides utilities for locating and decoding album-art
// images.
package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format

	httputil "github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/util/http"
)

// Failure kinds surfaced by loaders. Callers distinguish a missing source
// from a corrupt one with errors.Is.
var (
	// ErrSourceNotFound indicates the image source does not exist.
	ErrSourceNotFound = errors.New("image source not found")

	// ErrDecodeFailure indicates the image exists but cannot be decoded.
	ErrDecodeFailure = errors.New("image decode failure")
)

// Loader handles loading images from a source path or URL.
type Loader interface {
	// Load loads and decodes an image from the given path.
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
// Supported formats: JPEG, PNG, GIF, WebP.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty: %w", ErrSourceNotFound)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceNotFound, path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w (format: %s): %v", ErrDecodeFailure, format, err)
	}

	return img, nil
}

// SmartLoader loads images from both local files and HTTP(S) URLs. Remote
// album art is common when cover URLs come from a metadata provider.
type SmartLoader struct {
	fileLoader *FileLoader
}

// NewSmartLoader creates a new SmartLoader instance.
func NewSmartLoader() *SmartLoader {
	return &SmartLoader{
		fileLoader: NewFileLoader(),
	}
}

// Load loads an image from either a local file path or HTTP(S) URL.
func (l *SmartLoader) Load(path string) (image.Image, error) {
	if isURL(path) {
		return l.loadFromURL(path)
	}
	return l.fileLoader.Load(path)
}

// loadFromURL fetches and decodes an image from an HTTP(S) URL.
func (l *SmartLoader) loadFromURL(url string) (image.Image, error) {
	data, err := httputil.Fetch(context.Background(), url)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", ErrSourceNotFound, url, err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w (format: %s): %v", ErrDecodeFailure, format, err)
	}

	return img, nil
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// CoverArtNames lists the conventional cover-art filenames, in lookup
// order.
var CoverArtNames = []string{
	"cover.jpg", "cover.png",
	"folder.jpg", "folder.png",
	"album.jpg", "album.png",
	"front.jpg", "front.png",
}

// FindCoverArt looks for a conventionally named cover-art file in a
// directory. Returns ErrSourceNotFound when no candidate exists.
func FindCoverArt(dir string) (string, error) {
	for _, name := range CoverArtNames {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		return candidate, nil
	}
	return "", fmt.Errorf("%w: no cover art in %s", ErrSourceNotFound, dir)
}

// SupportedImageExtensions returns the decodable image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

// isImageFile checks if a file has a supported image extension.
func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// ScanDirectoryForImages scans a directory and returns all image files.
// It does not recurse into subdirectories, but follows symlinks.
func ScanDirectoryForImages(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, dirPath)
		}
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var imageFiles []string
	for _, entry := range entries {
		fullPath := filepath.Join(dirPath, entry.Name())

		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			continue
		}
		if isImageFile(entry.Name()) {
			imageFiles = append(imageFiles, fullPath)
		}
	}

	return imageFiles, nil
}
