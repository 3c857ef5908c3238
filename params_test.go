package asciiart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{name: "defaults", params: DefaultParams(), wantErr: false},
		{name: "zeros", params: Params{}, wantErr: false},
		{name: "beyond slider range", params: Params{Saturation: 5, Contrast: 3, Brightness: 10}, wantErr: false},
		{name: "negative", params: Params{Saturation: 1, Contrast: -1, Brightness: 1}, wantErr: true},
		{name: "NaN", params: Params{Saturation: math.NaN(), Contrast: 1, Brightness: 1}, wantErr: true},
		{name: "infinite", params: Params{Saturation: 1, Contrast: 1, Brightness: math.Inf(-1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParameter)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParamsIsIdentity(t *testing.T) {
	assert.True(t, DefaultParams().IsIdentity())
	assert.False(t, Params{Saturation: 1, Contrast: 1, Brightness: 1, Invert: true}.IsIdentity())
	assert.False(t, Params{Saturation: 1.1, Contrast: 1, Brightness: 1}.IsIdentity())
}

func TestStepFactor(t *testing.T) {
	tests := []struct {
		value float64
		delta int
		want  float64
	}{
		{value: 1.0, delta: 1, want: 1.1},
		{value: 1.0, delta: -1, want: 0.9},
		{value: 1.9, delta: 1, want: 2.0},
		{value: 2.0, delta: 1, want: 2.0},
		{value: 0.5, delta: -1, want: 0.5},
		{value: 0.1, delta: 0, want: 0.5},
		{value: 3.0, delta: -1, want: 2.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, StepFactor(tt.value, tt.delta), 1e-9, "StepFactor(%v, %d)", tt.value, tt.delta)
	}
}
