package asciiart

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/term"
)

// Protocol selects how a preview image is drawn in the terminal.
type Protocol int

const (
	Unsupported Protocol = iota
	Auto
	ASCII
	Halfblocks
	Sixel
)

func (p Protocol) String() string {
	switch p {
	case Auto:
		return "auto"
	case ASCII:
		return "ascii"
	case Halfblocks:
		return "halfblocks"
	case Sixel:
		return "sixel"
	default:
		return "unsupported"
	}
}

// ParseProtocol parses a protocol name as accepted by --protocol.
func ParseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "ascii", "text":
		return ASCII, nil
	case "halfblocks", "blocks":
		return Halfblocks, nil
	case "sixel":
		return Sixel, nil
	default:
		return Unsupported, fmt.Errorf("%w: unknown protocol %q", ErrInvalidParameter, s)
	}
}

// Renderer draws a preview image as a terminal string.
type Renderer interface {
	// Render generates the output for displaying the image
	Render(img image.Image, opts RenderOptions) (string, error)

	// Protocol returns the protocol type
	Protocol() Protocol
}

// RenderOptions sizes a preview in character cells. Zero width and height
// fit the current terminal.
type RenderOptions struct {
	Width  int
	Height int
	Dither bool

	// Ramp is used by the ASCII renderer; empty means DefaultRamp.
	Ramp Ramp
	// SixelColors bounds the sixel palette; zero means 256.
	SixelColors int
}

// GetRenderer returns a renderer for the specified protocol
func GetRenderer(protocol Protocol) (Renderer, error) {
	switch protocol {
	case Auto:
		detected := DetectProtocol()
		if detected == Unsupported || detected == Auto {
			return nil, fmt.Errorf("no supported terminal protocol detected")
		}
		return GetRenderer(detected)
	case ASCII:
		return &ASCIIRenderer{}, nil
	case Halfblocks:
		return &HalfblocksRenderer{}, nil
	case Sixel:
		return &SixelRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported protocol: %s", protocol)
	}
}

// RenderPreview renders img with the given protocol.
func RenderPreview(img image.Image, protocol Protocol, opts RenderOptions) (string, error) {
	if err := checkImage(img); err != nil {
		return "", err
	}
	r, err := GetRenderer(protocol)
	if err != nil {
		return "", err
	}
	return r.Render(img, opts)
}

// PrintPreview renders img and writes it to w.
func PrintPreview(w io.Writer, img image.Image, protocol Protocol, opts RenderOptions) error {
	out, err := RenderPreview(img, protocol, opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return fmt.Errorf("%w: failed to write preview: %w", ErrIO, err)
	}
	return nil
}

// ASCIIRenderer draws the preview with the quantizer itself.
type ASCIIRenderer struct{}

// Protocol returns the protocol type
func (r *ASCIIRenderer) Protocol() Protocol {
	return ASCII
}

// Render quantizes img to the requested width.
func (r *ASCIIRenderer) Render(img image.Image, opts RenderOptions) (string, error) {
	width, _ := cellSize(opts)
	q := NewQuantizer()
	if opts.Ramp != "" {
		q.Ramp = opts.Ramp
	}
	grid, err := q.Quantize(img, width)
	if err != nil {
		return "", err
	}
	return grid.String(), nil
}

// cellSize resolves the target size in cells, falling back to the terminal
// size and then to 80x24.
func cellSize(opts RenderOptions) (int, int) {
	if opts.Width > 0 || opts.Height > 0 {
		return opts.Width, opts.Height
	}
	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 && height > 0 {
		return width, height
	}
	return 80, 24
}

// fitCells computes the largest size in cells that keeps the aspect ratio of
// a srcW x srcH image inside width x height cells, where one cell holds
// cellAspect vertical pixels per horizontal pixel.
func fitCells(srcW, srcH, width, height int, cellAspect float64) (int, int) {
	if width <= 0 && height <= 0 {
		return 0, 0
	}
	effectiveHeight := float64(height) * cellAspect

	ratio := float64(width) / float64(srcW)
	if height > 0 {
		ratioH := effectiveHeight / float64(srcH)
		if width <= 0 || ratioH < ratio {
			ratio = ratioH
		}
	}

	w := max(int(float64(srcW)*ratio), 1)
	h := max(int(float64(srcH)*ratio/cellAspect), 1)
	return w, h
}

// resizePixels scales img to exactly w x h pixels.
func resizePixels(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}

	interp := resize.NearestNeighbor
	// For downscaling large images, use a smoother filter
	if b.Dx()*b.Dy() > w*h*4 {
		interp = resize.Bilinear
	}
	return resize.Resize(uint(w), uint(h), img, interp)
}

// inTmux checks if we're running inside tmux
func inTmux() bool {
	return os.Getenv("TMUX") != "" || os.Getenv("TERM_PROGRAM") == "tmux"
}

// wrapTmuxPassthrough wraps an escape sequence for tmux passthrough if needed
func wrapTmuxPassthrough(output string) string {
	if inTmux() {
		// All ESC characters in the sequence must be doubled
		return "\x1bPtmux;\x1b" + strings.ReplaceAll(output, "\x1b", "\x1b\x1b") + "\x1b\\"
	}
	return output
}
