package asciiart

import (
	"fmt"
	"math"
)

// Adjustment factor range exposed by the editor sliders.
const (
	MinFactor  = 0.5
	MaxFactor  = 2.0
	FactorStep = 0.1
)

// Params holds the enhancement factors applied by Adjust. A factor of 1.0
// leaves the corresponding property unchanged.
type Params struct {
	Saturation float64
	Contrast   float64
	Brightness float64
	Invert     bool
}

// DefaultParams returns the identity adjustment.
func DefaultParams() Params {
	return Params{Saturation: 1, Contrast: 1, Brightness: 1}
}

// IsIdentity reports whether p leaves an image unchanged.
func (p Params) IsIdentity() bool {
	return p.Saturation == 1 && p.Contrast == 1 && p.Brightness == 1 && !p.Invert
}

// Validate checks that every factor is a finite value >= 0.
func (p Params) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"saturation", p.Saturation},
		{"contrast", p.Contrast},
		{"brightness", p.Brightness},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("%w: %s factor must be a finite value >= 0, got %v", ErrInvalidParameter, f.name, f.value)
		}
	}
	return nil
}

// String renders p the way the editor status line shows it.
func (p Params) String() string {
	return fmt.Sprintf("saturation=%.1f contrast=%.1f brightness=%.1f invert=%t",
		p.Saturation, p.Contrast, p.Brightness, p.Invert)
}

// StepFactor moves a factor by delta slider steps, snapping to the step grid
// and clamping to [MinFactor, MaxFactor].
func StepFactor(value float64, delta int) float64 {
	v := math.Round(value/FactorStep)*FactorStep + float64(delta)*FactorStep
	v = math.Round(v*10) / 10
	return math.Min(MaxFactor, math.Max(MinFactor, v))
}
