package asciiart

import (
	"fmt"
	"image"
	"io"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// MaxSample is the largest intensity of the 8-bit sample domain.
const MaxSample = 255

// CellAspect compensates for monospace cells being about twice as tall as
// they are wide.
const CellAspect = 0.5

// DefaultRamp orders characters from lightest to densest.
const DefaultRamp Ramp = " .:-=+*#%@"

// Ramp is an ordered set of characters mapped onto increasing intensity.
type Ramp string

// Index maps intensity p in [0, MaxSample] onto a ramp position using floor
// division. Out of range values are clamped.
func (r Ramp) Index(p int) int {
	return rampIndex(p, len([]rune(r)))
}

func rampIndex(p, n int) int {
	if n == 0 {
		return 0
	}
	i := p * (n - 1) / MaxSample
	return min(max(i, 0), n-1)
}

// Char returns the ramp character for intensity p.
func (r Ramp) Char(p int) rune {
	return []rune(r)[r.Index(p)]
}

// Quantizer converts images into character grids.
type Quantizer struct {
	Ramp       Ramp
	CellAspect float64
	// Scaler resamples the grayscale image; defaults to Catmull-Rom.
	Scaler xdraw.Scaler
}

// NewQuantizer returns a Quantizer using the default ramp.
func NewQuantizer() *Quantizer {
	return &Quantizer{
		Ramp:       DefaultRamp,
		CellAspect: CellAspect,
		Scaler:     xdraw.CatmullRom,
	}
}

// Quantize converts img into a grid width characters wide using the default
// ramp.
func Quantize(img image.Image, width int) (*Grid, error) {
	return NewQuantizer().Quantize(img, width)
}

// OutputHeight returns the number of rows produced for a source of srcW x srcH
// at the given output width.
func (q *Quantizer) OutputHeight(width, srcW, srcH int) int {
	return int(float64(width) * (float64(srcH) / float64(srcW)) * q.CellAspect)
}

// Quantize converts img into a grid. The image is reduced to luma, resampled
// to width x OutputHeight samples and each sample mapped through the ramp.
func (q *Quantizer) Quantize(img image.Image, width int) (*Grid, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: output width must be positive, got %d", ErrInvalidParameter, width)
	}
	if err := checkImage(img); err != nil {
		return nil, err
	}
	ramp := []rune(q.Ramp)
	if len(ramp) == 0 {
		return nil, fmt.Errorf("%w: ramp cannot be empty", ErrInvalidParameter)
	}

	b := img.Bounds()
	height := q.OutputHeight(width, b.Dx(), b.Dy())
	if height <= 0 {
		return nil, fmt.Errorf("%w: output width %d yields no rows for a %dx%d image", ErrInvalidParameter, width, b.Dx(), b.Dy())
	}

	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(gray, gray.Bounds(), img, b.Min, xdraw.Src)

	sampled := gray
	if width != b.Dx() || height != b.Dy() {
		scaler := q.Scaler
		if scaler == nil {
			scaler = xdraw.CatmullRom
		}
		sampled = image.NewGray(image.Rect(0, 0, width, height))
		scaler.Scale(sampled, sampled.Bounds(), gray, gray.Bounds(), xdraw.Src, nil)
	}

	grid := newGrid(width, height)
	for y := 0; y < height; y++ {
		row := sampled.Pix[y*sampled.Stride : y*sampled.Stride+width]
		for x, p := range row {
			grid.cells[y*width+x] = ramp[rampIndex(int(p), len(ramp))]
		}
	}

	return grid, nil
}

// Grid is a row-major block of characters produced by a Quantizer.
type Grid struct {
	Width  int
	Height int
	cells  []rune
}

func newGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]rune, width*height),
	}
}

// At returns the character at column x, row y.
func (g *Grid) At(x, y int) rune {
	return g.cells[y*g.Width+x]
}

// Row returns row y as a string.
func (g *Grid) Row(y int) string {
	return string(g.cells[y*g.Width : (y+1)*g.Width])
}

// Rows returns every row, top to bottom.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	return rows
}

// String joins the rows with newlines. There is no trailing newline.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Text is the exported form of the grid: String plus one trailing newline.
// This is what the clipboard and HTML export receive.
func (g *Grid) Text() string {
	return g.String() + "\n"
}

// WriteTo writes Text to w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.Text())
	return int64(n), err
}
