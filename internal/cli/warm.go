package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/colour"
	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/config"
	imageio "github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/image"
	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/palettecache"
	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/service"
)

var (
	// Warm command flags
	warmJobs     int
	warmCapacity int
)

// warmCmd represents the warm command.
var warmCmd = &cobra.Command{
	Use:   "warm <music-dir>",
	Short: "Pre-extract palettes for a music library's cover art",
	Long: `Walk a music library, locate conventionally named cover art
(cover/folder/album/front with .jpg or .png) in each album directory, and
extract a palette for every cover found.

Extraction runs on a bounded pool of workers. Completed palettes are
loaded into an LRU cache keyed by the album/artist fingerprint and the
cache statistics are reported, mirroring what a player session would see
after playing through the library.

Examples:
  # Warm with defaults (4 workers)
  rhythmhue warm ~/Music

  # Use 8 workers and a larger cache
  rhythmhue warm --jobs 8 --cache-capacity 256 ~/Music`,
	Args: cobra.ExactArgs(1),
	RunE: runWarm,
}

func init() {
	warmCmd.Flags().IntVarP(&warmJobs, "jobs", "j", 4, "number of concurrent extraction workers")
	warmCmd.Flags().IntVar(&warmCapacity, "cache-capacity", palettecache.DefaultCapacity, "palette cache capacity")
}

// album pairs a located cover with the metadata its fingerprint derives
// from. Libraries conventionally lay out artist/album/cover.jpg, so the
// two enclosing directory names stand in for tags.
type album struct {
	coverPath string
	album     string
	artist    string
}

// runWarm executes the warm command.
func runWarm(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	cfg.CacheCapacity = warmCapacity
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if warmJobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", warmJobs)
	}

	albums, err := findAlbums(args[0])
	if err != nil {
		return err
	}
	if len(albums) == 0 {
		return fmt.Errorf("no cover art found under %s", args[0])
	}

	logger := newLogger(cmd)
	svc := service.New(service.Options{
		ColorCount: cfg.ColorCount,
		Selector:   cfg.Selector(),
		Logger:     logger,
	})

	cache, err := palettecache.New(cfg.CacheCapacity, logger)
	if err != nil {
		return fmt.Errorf("failed to create palette cache: %w", err)
	}

	// Workers fill their own result slots; the cache stays single-owner
	// and is only touched after Wait.
	fingerprints := make([]string, len(albums))
	palettes := make([]*paletteResult, len(albums))

	g := new(errgroup.Group)
	g.SetLimit(warmJobs)
	for i, a := range albums {
		i, a := i, a
		g.Go(func() error {
			fingerprints[i] = service.Fingerprint(a.album, a.artist)
			p, err := svc.Extract(a.coverPath, fingerprints[i])
			palettes[i] = &paletteResult{album: a, palette: p, err: err}
			return nil
		})
	}
	// Workers never return errors; failures are counted per album.
	_ = g.Wait()

	extracted, failed := 0, 0
	for i, r := range palettes {
		if r.err != nil {
			failed++
			logger.Warn("cover extraction failed", "cover", r.album.coverPath, "error", r.err)
			continue
		}
		extracted++
		cache.Put(fingerprints[i], r.palette)
		fmt.Fprintf(cmd.OutOrStdout(), "%s / %s: bg %s fg %s primary %s (%.2f:1)\n",
			r.album.artist, r.album.album,
			r.palette.Background.Hex(), r.palette.Foreground.Hex(), r.palette.Primary.Hex(),
			r.palette.ContrastRatioBGFG)
	}

	stats := cache.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "\nwarmed %d palette(s), %d failure(s); cache %d/%d\n",
		extracted, failed, stats.Size, stats.Capacity)
	return nil
}

// paletteResult carries one album's extraction outcome out of the worker
// pool.
type paletteResult struct {
	album   album
	palette *colour.ColorPalette
	err     error
}

// findAlbums walks a music library collecting directories that contain
// cover art.
func findAlbums(root string) ([]album, error) {
	var albums []album
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		cover, err := imageio.FindCoverArt(path)
		if err != nil {
			return nil // no cover here, keep walking
		}
		albums = append(albums, album{
			coverPath: cover,
			album:     filepath.Base(path),
			artist:    filepath.Base(filepath.Dir(path)),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk music library: %w", err)
	}
	return albums, nil
}
