package asciiart

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
)

// Preview bounds used when a Session is created without explicit limits.
const (
	DefaultPreviewWidth  = 800
	DefaultPreviewHeight = 600
)

// Downscale bounds img to maxWidth x maxHeight for the preview path. Images
// already within bounds are returned as is; larger ones are shrunk, never
// enlarged.
//
// The clamp runs in two passes using the source aspect ratio: width first,
// then height if it still overflows. An image that is both too wide and too
// tall therefore ends up with its width derived from the clamped height,
// which can differ by a pixel from a single min-ratio fit.
func Downscale(img image.Image, maxWidth, maxHeight int) (image.Image, error) {
	if err := checkImage(img); err != nil {
		return nil, err
	}
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("%w: preview bounds must be positive, got %dx%d", ErrInvalidParameter, maxWidth, maxHeight)
	}

	b := img.Bounds()
	w, h := downscaleSize(b.Dx(), b.Dy(), maxWidth, maxHeight)
	if w == b.Dx() && h == b.Dy() {
		return img, nil
	}

	return resize.Resize(uint(w), uint(h), img, resize.Bicubic), nil
}

// downscaleSize computes the target size of Downscale.
func downscaleSize(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	aspect := float64(height) / float64(width)
	if width > maxWidth {
		width = maxWidth
		height = int(float64(width) * aspect)
	}
	if height > maxHeight {
		height = maxHeight
		width = int(float64(height) / aspect)
	}

	return max(width, 1), max(height, 1)
}
