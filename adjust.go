package asciiart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/gift"
	"gonum.org/v1/gonum/stat"
)

// Adjust applies saturation, contrast and brightness in that order, then
// inverts the RGB channels if p.Invert is set. The source image is never
// modified; the result is always a fresh *image.NRGBA with opaque alpha.
func Adjust(img image.Image, p Params) (*image.NRGBA, error) {
	if err := checkImage(img); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := toNRGBA(img)

	if p.Saturation != 1 {
		out = applyFilters(out, saturationFilter(float32(p.Saturation)))
	}
	if p.Contrast != 1 {
		// contrast pivots around the mean of the already saturated image
		out = applyFilters(out, contrastFilter(float32(p.Contrast), meanLuminance(out)))
	}

	var filters []gift.Filter
	if p.Brightness != 1 {
		filters = append(filters, brightnessFilter(float32(p.Brightness)))
	}
	if p.Invert {
		filters = append(filters, gift.Invert())
	}
	if len(filters) > 0 {
		out = applyFilters(out, filters...)
	}

	return out, nil
}

// applyFilters runs a gift pipeline and returns the filtered copy.
func applyFilters(src *image.NRGBA, filters ...gift.Filter) *image.NRGBA {
	g := gift.New(filters...)
	dst := image.NewNRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst
}

// blend moves v from base by factor f: f=0 yields base, f=1 yields v.
func blend(base, v, f float32) float32 {
	return clamp01(base + f*(v-base))
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// luma uses the ITU-R 601-2 weights, same as color.GrayModel.
func luma(r, g, b float32) float32 {
	return 0.299*r + 0.587*g + 0.114*b
}

func saturationFilter(f float32) gift.Filter {
	return gift.ColorFunc(func(r0, g0, b0, a0 float32) (r, g, b, a float32) {
		l := luma(r0, g0, b0)
		return blend(l, r0, f), blend(l, g0, f), blend(l, b0, f), a0
	})
}

func contrastFilter(f, mean float32) gift.Filter {
	return gift.ColorFunc(func(r0, g0, b0, a0 float32) (r, g, b, a float32) {
		return blend(mean, r0, f), blend(mean, g0, f), blend(mean, b0, f), a0
	})
}

func brightnessFilter(f float32) gift.Filter {
	return gift.ColorFunc(func(r0, g0, b0, a0 float32) (r, g, b, a float32) {
		return blend(0, r0, f), blend(0, g0, f), blend(0, b0, f), a0
	})
}

// meanLuminance returns the mean 8-bit gray level of img rounded to the
// nearest integer, scaled to [0,1].
func meanLuminance(img *image.NRGBA) float32 {
	var hist [MaxSample + 1]float64
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hist[color.GrayModel.Convert(img.NRGBAAt(x, y)).(color.Gray).Y]++
		}
	}

	levels := make([]float64, len(hist))
	for i := range levels {
		levels[i] = float64(i)
	}
	mean := int(stat.Mean(levels, hist[:]) + 0.5)
	return float32(mean) / MaxSample
}

// checkImage rejects nil and zero-area images.
func checkImage(img image.Image) error {
	if img == nil {
		return fmt.Errorf("%w: image cannot be nil", ErrInvalidImage)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("%w: image has no pixels (%dx%d)", ErrInvalidImage, b.Dx(), b.Dy())
	}
	return nil
}

// toNRGBA copies img into an NRGBA anchored at the origin with alpha dropped,
// matching an RGB view of the source.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}
