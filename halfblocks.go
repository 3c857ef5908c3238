package asciiart

import (
	"image"

	"github.com/charmbracelet/x/mosaic"
)

// HalfblocksRenderer draws the preview with Unicode half blocks via mosaic.
// Each cell carries two vertical pixels.
type HalfblocksRenderer struct {
	lastWidth  int // Track last rendered width in character cells
	lastHeight int // Track last rendered height in character cells
}

// Protocol returns the protocol type
func (r *HalfblocksRenderer) Protocol() Protocol {
	return Halfblocks
}

// Render fits img inside the requested cells, keeping its aspect ratio.
func (r *HalfblocksRenderer) Render(img image.Image, opts RenderOptions) (string, error) {
	if err := checkImage(img); err != nil {
		return "", err
	}

	width, height := cellSize(opts)
	b := img.Bounds()
	width, height = fitCells(b.Dx(), b.Dy(), width, height, 2.0)

	m := mosaic.New().Width(width).Height(height).Dither(opts.Dither)
	r.lastWidth = width
	r.lastHeight = height

	return m.Render(img), nil
}

// Size returns the cell size of the last render.
func (r *HalfblocksRenderer) Size() (width, height int) {
	return r.lastWidth, r.lastHeight
}
