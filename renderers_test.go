package asciiart

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProtocol(t *testing.T) {
	tests := []struct {
		input   string
		want    Protocol
		wantErr bool
	}{
		{input: "", want: Auto},
		{input: "auto", want: Auto},
		{input: "ASCII", want: ASCII},
		{input: "text", want: ASCII},
		{input: " halfblocks ", want: Halfblocks},
		{input: "blocks", want: Halfblocks},
		{input: "sixel", want: Sixel},
		{input: "kitty", want: Unsupported, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseProtocol(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParameter)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProtocolString(t *testing.T) {
	assert.Equal(t, "auto", Auto.String())
	assert.Equal(t, "ascii", ASCII.String())
	assert.Equal(t, "halfblocks", Halfblocks.String())
	assert.Equal(t, "sixel", Sixel.String())
	assert.Equal(t, "unsupported", Unsupported.String())
}

func TestGetRenderer(t *testing.T) {
	tests := []struct {
		protocol Protocol
		wantErr  bool
	}{
		{protocol: ASCII},
		{protocol: Halfblocks},
		{protocol: Sixel},
		{protocol: Unsupported, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.protocol.String(), func(t *testing.T) {
			r, err := GetRenderer(tt.protocol)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.protocol, r.Protocol())
		})
	}
}

func TestGetRendererAuto(t *testing.T) {
	t.Setenv(ProtocolEnv, "halfblocks")

	r, err := GetRenderer(Auto)
	require.NoError(t, err)
	assert.Equal(t, Halfblocks, r.Protocol())
}

func TestFitCells(t *testing.T) {
	tests := []struct {
		name             string
		srcW, srcH       int
		width, height    int
		wantW, wantH     int
	}{
		{name: "square fills", srcW: 100, srcH: 100, width: 40, height: 20, wantW: 40, wantH: 20},
		{name: "wide limited by width", srcW: 200, srcH: 100, width: 40, height: 40, wantW: 40, wantH: 10},
		{name: "tall limited by height", srcW: 100, srcH: 200, width: 40, height: 10, wantW: 10, wantH: 10},
		{name: "width only", srcW: 100, srcH: 50, width: 20, height: 0, wantW: 20, wantH: 5},
		{name: "nothing requested", srcW: 100, srcH: 50, width: 0, height: 0, wantW: 0, wantH: 0},
		{name: "floor of one", srcW: 1000, srcH: 1, width: 10, height: 10, wantW: 10, wantH: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitCells(tt.srcW, tt.srcH, tt.width, tt.height, 2.0)
			assert.Equal(t, tt.wantW, w, "width")
			assert.Equal(t, tt.wantH, h, "height")
		})
	}
}

func TestASCIIRenderer(t *testing.T) {
	img := createTestImage(80, 40)

	r := &ASCIIRenderer{}
	out, err := r.Render(img, RenderOptions{Width: 20})
	require.NoError(t, err)

	grid, err := Quantize(img, 20)
	require.NoError(t, err)
	assert.Equal(t, grid.String(), out)

	out, err = r.Render(createUniformImage(10, 10, color.RGBA{255, 255, 255, 255}), RenderOptions{Width: 4, Ramp: "xy"})
	require.NoError(t, err)
	assert.Equal(t, "yyyy\nyyyy", out)
}

func TestHalfblocksRenderer(t *testing.T) {
	r := &HalfblocksRenderer{}
	out, err := r.Render(createTestImage(40, 40), RenderOptions{Width: 10, Height: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	w, h := r.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)

	_, err = r.Render(nil, RenderOptions{Width: 10})
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestSixelRenderer(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM_PROGRAM", "")

	r := &SixelRenderer{}
	for _, dither := range []bool{false, true} {
		out, err := r.Render(createTestImage(32, 32), RenderOptions{Width: 4, Height: 4, Dither: dither, SixelColors: 16})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "\x1bP"), "sixel output should start with DCS")
		assert.True(t, strings.HasSuffix(out, "\x1b\\"), "sixel output should end with ST")
	}
}

func TestWrapTmuxPassthrough(t *testing.T) {
	t.Setenv("TERM_PROGRAM", "")

	t.Setenv("TMUX", "")
	assert.Equal(t, "\x1bPq\x1b\\", wrapTmuxPassthrough("\x1bPq\x1b\\"))

	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")
	assert.Equal(t, "\x1bPtmux;\x1b\x1bPq\x1b\x1b\\\x1b\\", wrapTmuxPassthrough("\x1bPq\x1b\\"))
}

func TestPrintPreview(t *testing.T) {
	var buf bytes.Buffer
	err := PrintPreview(&buf, createUniformImage(10, 10, color.RGBA{0, 0, 0, 255}), ASCII, RenderOptions{Width: 2})
	require.NoError(t, err)
	assert.Equal(t, "  \n", buf.String())

	err = PrintPreview(&buf, nil, ASCII, RenderOptions{Width: 2})
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestResizePixels(t *testing.T) {
	img := createTestImage(40, 20)
	assert.True(t, resizePixels(img, 40, 20) == img)

	out := resizePixels(img, 10, 5)
	assert.Equal(t, 10, out.Bounds().Dx())
	assert.Equal(t, 5, out.Bounds().Dy())
}
