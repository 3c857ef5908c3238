package asciiart

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads an image from r and normalises it to opaque NRGBA.
func Decode(r io.Reader) (*image.NRGBA, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: reader cannot be nil", ErrIO)
	}
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image: %w", ErrInvalidImage, err)
	}
	if err := checkImage(img); err != nil {
		return nil, err
	}
	return toNRGBA(img), nil
}

// Load opens and decodes the image at path.
func Load(path string) (*image.NRGBA, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrIO)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file: %w", ErrIO, err)
	}
	defer f.Close()

	return Decode(f)
}
