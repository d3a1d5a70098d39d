package service

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/colour"
	imageio "github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/image"
	"github.com/BOTbkcd/rhythmbox-dynamic-theme/internal/palettecache"
)

// writeTestCover writes a solid-colour PNG into dir and returns its path.
func writeTestCover(t *testing.T, dir, name string, c color.RGBA) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 150, 150))
	for y := 0; y < 150; y++ {
		for x := 0; x < 150; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test cover: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test cover: %v", err)
	}
	return path
}

func TestExtractUniformRedCover(t *testing.T) {
	path := writeTestCover(t, t.TempDir(), "cover.png", color.RGBA{R: 255, A: 255})
	svc := New(Options{})

	p, err := svc.Extract(path, "fp-red")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	red := colour.RGB{R: 255, G: 0, B: 0}
	if p.Background != red {
		t.Errorf("background = %v, want red", p.Background)
	}
	if p.Primary != red && p.Primary != (colour.RGB{R: 40, G: 40, B: 40}) && p.Primary != (colour.RGB{R: 245, G: 245, B: 245}) {
		t.Errorf("primary = %v, want red or a contrast fallback", p.Primary)
	}
	if p.SourceFingerprint != "fp-red" {
		t.Errorf("fingerprint = %q, want %q", p.SourceFingerprint, "fp-red")
	}
}

func TestExtractMissingSource(t *testing.T) {
	svc := New(Options{})

	p, err := svc.Extract(filepath.Join(t.TempDir(), "nope.png"), "fp")
	if p != nil {
		t.Error("Extract returned a palette for a missing file")
	}
	if !errors.Is(err, imageio.ErrSourceNotFound) {
		t.Errorf("error = %v, want ErrSourceNotFound", err)
	}
}

func TestExtractUndecodableSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write broken file: %v", err)
	}
	svc := New(Options{})

	p, err := svc.Extract(path, "fp")
	if p != nil {
		t.Error("Extract returned a palette for an undecodable file")
	}
	if !errors.Is(err, imageio.ErrDecodeFailure) {
		t.Errorf("error = %v, want ErrDecodeFailure", err)
	}
}

func TestExtractAsyncDeliversOnLoop(t *testing.T) {
	path := writeTestCover(t, t.TempDir(), "cover.png", color.RGBA{G: 180, B: 40, A: 255})

	loop := NewLoop()
	go loop.Run()
	defer loop.Stop()

	svc := New(Options{Scheduler: loop})

	done := make(chan *colour.ColorPalette, 1)
	svc.ExtractAsync(path, "fp-async", func(p *colour.ColorPalette) {
		done <- p
	})

	select {
	case p := <-done:
		if p == nil {
			t.Fatal("callback received nil palette for a valid cover")
		}
		if p.SourceFingerprint != "fp-async" {
			t.Errorf("fingerprint = %q, want %q", p.SourceFingerprint, "fp-async")
		}
	case <-time.After(10 * time.Second):
		t.Fatal("callback was never delivered")
	}
}

func TestExtractAsyncDeliversNilOnFailure(t *testing.T) {
	loop := NewLoop()
	go loop.Run()
	defer loop.Stop()

	svc := New(Options{Scheduler: loop})

	done := make(chan *colour.ColorPalette, 1)
	svc.ExtractAsync(filepath.Join(t.TempDir(), "missing.png"), "fp", func(p *colour.ColorPalette) {
		done <- p
	})

	select {
	case p := <-done:
		if p != nil {
			t.Errorf("callback received %+v for a missing file, want nil", p)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("callback was never delivered")
	}
}

func TestExtractThenCacheRoundTrip(t *testing.T) {
	// Extract once, put once: the second lookup must hit and the cache
	// must stay at size 1.
	path := writeTestCover(t, t.TempDir(), "cover.png", color.RGBA{R: 30, G: 60, B: 190, A: 255})
	svc := New(Options{})

	cache, err := palettecache.New(16, nil)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	key := Fingerprint("Hounds of Love", "Kate Bush")
	if _, ok := cache.Get(key); ok {
		t.Fatal("unexpected cache hit before extraction")
	}

	p, err := svc.Extract(path, key)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	cache.Put(key, p)

	got, ok := cache.Get(key)
	if !ok {
		t.Fatal("cache miss after Put")
	}
	if got != p {
		t.Error("cache returned a different palette than was stored")
	}
	if cache.Len() != 1 {
		t.Errorf("cache size = %d, want 1", cache.Len())
	}

	stats := cache.Stats()
	if stats.Requests != 2 || stats.Hits != 1 {
		t.Errorf("stats = %+v, want 2 requests and 1 hit", stats)
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("Hounds of Love", "Kate Bush")
	b := Fingerprint("Hounds of Love", "Kate Bush")
	if a != b {
		t.Errorf("Fingerprint is not deterministic: %q vs %q", a, b)
	}
	if len(a) != 32 {
		t.Errorf("Fingerprint length = %d, want 32 hex characters", len(a))
	}

	if Fingerprint("Hounds of Love", "Kate Bush") == Fingerprint("The Dreaming", "Kate Bush") {
		t.Error("different albums share a fingerprint")
	}

	if Fingerprint("", "") != Fingerprint("unknown", "unknown") {
		t.Error("empty metadata should collapse to the unknown fingerprint")
	}
}

func TestLoopRunsTasksInOrder(t *testing.T) {
	loop := NewLoop()
	go loop.Run()
	defer loop.Stop()

	results := make(chan int, 3)
	for i := 1; i <= 3; i++ {
		i := i
		loop.Schedule(func() { results <- i })
	}

	for want := 1; want <= 3; want++ {
		select {
		case got := <-results:
			if got != want {
				t.Fatalf("task order: got %d, want %d", got, want)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("scheduled task never ran")
		}
	}
}

func TestLoopStopUnblocksSchedule(t *testing.T) {
	loop := NewLoop()
	loop.Stop()
	loop.Stop() // idempotent

	// With the loop stopped and nothing draining tasks, Schedule must
	// still return promptly instead of blocking the caller.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 256; i++ {
			loop.Schedule(func() {})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Schedule blocked after Stop")
	}
}
