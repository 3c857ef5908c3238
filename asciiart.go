package asciiart

import (
	"fmt"
	"image"
	"io"
	"os"
)

// Image is a one-shot conversion with a fluent API for configuration. It
// always converts the full resolution image; use a Session for the
// interactive preview path.
type Image struct {
	source image.Image
	reader io.Reader
	path   string

	// Configuration
	params Params
	width  int
	ramp   Ramp
}

// New creates a new Image from an image.Image
func New(img image.Image) *Image {
	if img == nil {
		return nil
	}
	return &Image{
		source: img,
		params: DefaultParams(),
		width:  DefaultOutputWidth,
		ramp:   DefaultRamp,
	}
}

// Open creates a new Image from a file path. The file is read on first use.
func Open(path string) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrIO)
	}
	return &Image{
		path:   path,
		params: DefaultParams(),
		width:  DefaultOutputWidth,
		ramp:   DefaultRamp,
	}, nil
}

// From creates a new Image from an io.Reader
func From(r io.Reader) *Image {
	if r == nil {
		return nil
	}
	return &Image{
		reader: r,
		params: DefaultParams(),
		width:  DefaultOutputWidth,
		ramp:   DefaultRamp,
	}
}

// Width sets the output width in characters. Invalid widths are reported by
// Render.
func (i *Image) Width(w int) *Image {
	i.width = w
	return i
}

// Saturation sets the color enhancement factor.
func (i *Image) Saturation(f float64) *Image {
	i.params.Saturation = f
	return i
}

// Contrast sets the contrast enhancement factor.
func (i *Image) Contrast(f float64) *Image {
	i.params.Contrast = f
	return i
}

// Brightness sets the brightness enhancement factor.
func (i *Image) Brightness(f float64) *Image {
	i.params.Brightness = f
	return i
}

// Invert toggles channel inversion.
func (i *Image) Invert(v bool) *Image {
	i.params.Invert = v
	return i
}

// Params replaces all adjustment settings at once.
func (i *Image) Params(p Params) *Image {
	i.params = p
	return i
}

// Ramp sets the character ramp.
func (i *Image) Ramp(r Ramp) *Image {
	i.ramp = r
	return i
}

// Info describes the source image and configuration.
func (i *Image) Info() string {
	img, err := i.loadImage()
	if err != nil {
		return fmt.Sprintf("<unloaded: %v>", err)
	}
	b := img.Bounds()
	return fmt.Sprintf("%dx%d width=%d %s", b.Dx(), b.Dy(), i.width, i.params)
}

// Adjusted returns the adjusted full resolution image.
func (i *Image) Adjusted() (*image.NRGBA, error) {
	img, err := i.loadImage()
	if err != nil {
		return nil, err
	}
	return Adjust(img, i.params)
}

// Grid adjusts and quantizes the image.
func (i *Image) Grid() (*Grid, error) {
	adjusted, err := i.Adjusted()
	if err != nil {
		return nil, err
	}
	q := NewQuantizer()
	q.Ramp = i.ramp
	return q.Quantize(adjusted, i.width)
}

// Render returns the ASCII text without a trailing newline.
func (i *Image) Render() (string, error) {
	grid, err := i.Grid()
	if err != nil {
		return "", err
	}
	return grid.String(), nil
}

// Print writes the ASCII text to stdout.
func (i *Image) Print() error {
	grid, err := i.Grid()
	if err != nil {
		return err
	}
	if _, err := grid.WriteTo(os.Stdout); err != nil {
		return fmt.Errorf("%w: failed to write output: %w", ErrIO, err)
	}
	return nil
}

// WriteHTML writes the HTML export page to w.
func (i *Image) WriteHTML(w io.Writer) error {
	grid, err := i.Grid()
	if err != nil {
		return err
	}
	return WriteHTML(w, grid.Text())
}

// SaveHTML writes the HTML export page to path and returns the path written.
func (i *Image) SaveHTML(path string) (string, error) {
	grid, err := i.Grid()
	if err != nil {
		return "", err
	}
	return SaveHTML(path, grid.Text())
}

// Copy places the ASCII text on the clipboard.
func (i *Image) Copy() error {
	grid, err := i.Grid()
	if err != nil {
		return err
	}
	return CopyToClipboard(grid.Text())
}

// loadImage loads the image from the configured source
func (i *Image) loadImage() (image.Image, error) {
	if i.source != nil {
		return i.source, nil
	}

	if i.path != "" {
		img, err := Load(i.path)
		if err != nil {
			return nil, err
		}
		i.source = img
		return img, nil
	}

	if i.reader != nil {
		img, err := Decode(i.reader)
		if err != nil {
			return nil, err
		}
		i.source = img
		return img, nil
	}

	return nil, fmt.Errorf("%w: no image source configured", ErrInvalidImage)
}

// Convenience functions for quick conversion

// Convert converts an image with default settings
func Convert(img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("%w: image cannot be nil", ErrInvalidImage)
	}
	return New(img).Render()
}

// ConvertFile converts an image file with default settings
func ConvertFile(path string) (string, error) {
	img, err := Open(path)
	if err != nil {
		return "", err
	}
	return img.Render()
}

// PrintFile prints an image file with default settings
func PrintFile(path string) error {
	img, err := Open(path)
	if err != nil {
		return err
	}
	return img.Print()
}
