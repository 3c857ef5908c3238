package asciiart

import (
	"bytes"
	"fmt"
	"image"

	"github.com/makeworld-the-better-one/dither/v2"
	"github.com/mattn/go-sixel"
	"github.com/soniakeys/quant/median"
)

// SixelRenderer draws the preview as a DEC sixel graphic.
type SixelRenderer struct {
	lastHeight int // Track last rendered height in lines
}

// Protocol returns the protocol type
func (r *SixelRenderer) Protocol() Protocol {
	return Sixel
}

// Render fits img to the requested cells, converts cells to pixels using the
// terminal font size and encodes the result.
func (r *SixelRenderer) Render(img image.Image, opts RenderOptions) (string, error) {
	if err := checkImage(img); err != nil {
		return "", err
	}

	fontW, fontH := fontSize()
	width, height := cellSize(opts)
	b := img.Bounds()
	width, height = fitCells(b.Dx(), b.Dy(), width, height, float64(fontH)/float64(fontW))

	processed := resizePixels(img, width*fontW, height*fontH)

	colors := opts.SixelColors
	if colors <= 0 || colors > 256 {
		colors = 256
	}
	if opts.Dither {
		processed = optimizedPalette(processed, colors)
	}

	var buf bytes.Buffer
	enc := sixel.NewEncoder(&buf)
	enc.Colors = colors
	// already dithered against an optimized palette
	enc.Dither = false
	if err := enc.Encode(processed); err != nil {
		return "", fmt.Errorf("failed to encode sixel: %w", err)
	}
	if buf.Len() == 0 {
		return "", fmt.Errorf("sixel encoding produced empty output")
	}

	r.lastHeight = height
	return wrapTmuxPassthrough(buf.String()), nil
}

// optimizedPalette reduces img to a median cut palette with Stucki dithering.
func optimizedPalette(img image.Image, size int) image.Image {
	palette := median.Quantizer(size).Palette(img).ColorPalette()

	ditherer := dither.NewDitherer(palette)
	ditherer.Matrix = dither.Stucki
	if out := ditherer.Dither(img); out != nil {
		return out
	}
	return img
}

// fontSize returns the cell size in pixels assumed for the current terminal.
func fontSize() (width, height int) {
	switch {
	case termProgram() == "vscode":
		return 7, 14
	case termProgram() == "WezTerm":
		return 8, 18
	case termProgram() == "Alacritty":
		return 7, 15
	default:
		return 8, 16
	}
}
