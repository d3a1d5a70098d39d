package colour

import (
	"fmt"
	"image"
	"sort"

	xdraw "golang.org/x/image/draw"
)

// Quantizer defines the interface for colour quantization algorithms.
type Quantizer interface {
	// Quantize reduces an image to at most count dominant colours.
	// Output is ordered by descending pixel population and is
	// deterministic for identical input pixels.
	Quantize(img image.Image, count int) ([]RGB, error)
}

const (
	// workingSize is the fixed resolution images are downsampled to before
	// quantization. Album art detail beyond this adds cost, not colours.
	workingSize = 150

	// DefaultColorCount is the default number of dominant colours to
	// extract from an image.
	DefaultColorCount = 15
)

// MedianCutQuantizer implements colour quantization using median cut.
// Unlike k-means it involves no random initialization, so repeated runs on
// the same pixels always yield the same palette.
type MedianCutQuantizer struct{}

// NewMedianCutQuantizer creates a new MedianCutQuantizer.
func NewMedianCutQuantizer() *MedianCutQuantizer {
	return &MedianCutQuantizer{}
}

// Quantize extracts up to count dominant colours from an image.
func (q *MedianCutQuantizer) Quantize(img image.Image, count int) ([]RGB, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, fmt.Errorf("colour count too large: %d (maximum: 256)", count)
	}

	pixels := downsample(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	boxes := medianCut(pixels, count)

	colours := make([]RGB, len(boxes))
	for i, b := range boxes {
		colours[i] = b.average()
	}
	return colours, nil
}

// downsample resizes an image to the fixed working resolution and returns
// its pixels. CatmullRom is a fixed-kernel resampler, so the result is
// deterministic for identical source pixels.
func downsample(img image.Image) []RGB {
	dst := image.NewRGBA(image.Rect(0, 0, workingSize, workingSize))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	pixels := make([]RGB, 0, workingSize*workingSize)
	for y := 0; y < workingSize; y++ {
		for x := 0; x < workingSize; x++ {
			offset := dst.PixOffset(x, y)
			pixels = append(pixels, RGB{
				R: int(dst.Pix[offset]),
				G: int(dst.Pix[offset+1]),
				B: int(dst.Pix[offset+2]),
			})
		}
	}
	return pixels
}

// box is a region of colour space holding a set of pixels.
type box struct {
	pixels []RGB
}

// channelRanges returns the spread of each channel across the box.
func (b *box) channelRanges() (rRange, gRange, bRange int) {
	minR, maxR := 255, 0
	minG, maxG := 255, 0
	minB, maxB := 255, 0
	for _, p := range b.pixels {
		minR, maxR = min(minR, p.R), max(maxR, p.R)
		minG, maxG = min(minG, p.G), max(maxG, p.G)
		minB, maxB = min(minB, p.B), max(maxB, p.B)
	}
	return maxR - minR, maxG - minG, maxB - minB
}

// widestRange returns the size of the box's widest channel spread.
func (b *box) widestRange() int {
	r, g, bl := b.channelRanges()
	return max(r, max(g, bl))
}

// split divides the box at the median of its widest channel.
func (b *box) split() (*box, *box) {
	rRange, gRange, bRange := b.channelRanges()

	// Sort along the widest channel, with full-colour tie-breaks so the
	// split point never depends on incidental input order.
	sort.Slice(b.pixels, func(i, j int) bool {
		a, c := b.pixels[i], b.pixels[j]
		switch {
		case rRange >= gRange && rRange >= bRange:
			if a.R != c.R {
				return a.R < c.R
			}
		case gRange >= bRange:
			if a.G != c.G {
				return a.G < c.G
			}
		default:
			if a.B != c.B {
				return a.B < c.B
			}
		}
		return packRGB(a) < packRGB(c)
	})

	mid := len(b.pixels) / 2
	return &box{pixels: b.pixels[:mid]}, &box{pixels: b.pixels[mid:]}
}

// average returns the mean colour of the box.
func (b *box) average() RGB {
	var sumR, sumG, sumB int
	for _, p := range b.pixels {
		sumR += p.R
		sumG += p.G
		sumB += p.B
	}
	n := len(b.pixels)
	return RGB{R: sumR / n, G: sumG / n, B: sumB / n}
}

// packRGB packs a colour into a single comparable int.
func packRGB(c RGB) int {
	return c.R<<16 | c.G<<8 | c.B
}

// medianCut repeatedly splits the most populous splittable box until count
// boxes exist or no box spans more than one colour.
func medianCut(pixels []RGB, count int) []*box {
	work := make([]RGB, len(pixels))
	copy(work, pixels)
	boxes := []*box{{pixels: work}}

	for len(boxes) < count {
		// Pick the largest box that still spans a colour range.
		splitIdx := -1
		for i, b := range boxes {
			if b.widestRange() == 0 || len(b.pixels) < 2 {
				continue
			}
			if splitIdx == -1 || len(b.pixels) > len(boxes[splitIdx].pixels) {
				splitIdx = i
			}
		}
		if splitIdx == -1 {
			break
		}

		lo, hi := boxes[splitIdx].split()
		boxes[splitIdx] = lo
		boxes = append(boxes, hi)
	}

	// Order by population, descending, with packed-colour tie-breaks for
	// run-to-run stability.
	sort.SliceStable(boxes, func(i, j int) bool {
		if len(boxes[i].pixels) != len(boxes[j].pixels) {
			return len(boxes[i].pixels) > len(boxes[j].pixels)
		}
		return packRGB(boxes[i].average()) < packRGB(boxes[j].average())
	})
	return boxes
}
