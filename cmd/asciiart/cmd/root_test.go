package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blacktop/go-asciiart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, width, height int, c color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	path := filepath.Join(t.TempDir(), "input.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(o *options)
		wantErr bool
	}{
		{name: "defaults", modify: func(o *options) {}},
		{name: "zero width", modify: func(o *options) { o.width = 0 }, wantErr: true},
		{name: "negative preview", modify: func(o *options) { o.maxHeight = -1 }, wantErr: true},
		{name: "empty ramp", modify: func(o *options) { o.ramp = "" }, wantErr: true},
		{name: "bad protocol", modify: func(o *options) { o.protocol = "kitty" }, wantErr: true},
		{name: "negative contrast", modify: func(o *options) { o.contrast = -0.5 }, wantErr: true},
		{name: "strong saturation", modify: func(o *options) { o.saturation = 3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.modify(&o)
			err := o.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, asciiart.ErrInvalidParameter)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRun(t *testing.T) {
	path := writePNG(t, 40, 40, color.RGBA{255, 255, 255, 255})

	o := defaultOptions()
	o.width = 20

	var out bytes.Buffer
	require.NoError(t, run(o, path, &out))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 10)
	for _, line := range lines {
		assert.Equal(t, strings.Repeat("@", 20), line)
	}
}

func TestRunInvertAndHTML(t *testing.T) {
	path := writePNG(t, 40, 40, color.RGBA{255, 255, 255, 255})
	htmlPath := filepath.Join(t.TempDir(), "art")

	o := defaultOptions()
	o.width = 4
	o.invert = true
	o.htmlPath = htmlPath

	var out bytes.Buffer
	require.NoError(t, run(o, path, &out))
	assert.Equal(t, "    \n    \n", out.String())

	data, err := os.ReadFile(htmlPath + ".html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<pre>    \n    \n</pre>")
}

func TestRunPreview(t *testing.T) {
	path := writePNG(t, 40, 40, color.RGBA{0, 0, 0, 255})

	o := defaultOptions()
	o.width = 4
	o.preview = true
	o.protocol = "ascii"

	var out bytes.Buffer
	require.NoError(t, run(o, path, &out))
	assert.True(t, strings.HasSuffix(out.String(), "    \n    \n"))
}

func TestRunErrors(t *testing.T) {
	o := defaultOptions()
	o.width = -1
	assert.ErrorIs(t, run(o, "unused.png", &bytes.Buffer{}), asciiart.ErrInvalidParameter)

	err := run(defaultOptions(), filepath.Join(t.TempDir(), "missing.png"), &bytes.Buffer{})
	assert.ErrorIs(t, err, asciiart.ErrIO)
}
