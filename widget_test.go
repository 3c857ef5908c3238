package asciiart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewWidget(t *testing.T) {
	w := NewPreviewWidget()

	_, err := w.Render()
	assert.ErrorIs(t, err, ErrInvalidImage)

	img := createTestImage(40, 40)
	w.SetImage(img)

	// no size yet
	out, err := w.Render()
	require.NoError(t, err)
	assert.Empty(t, out)

	w.SetSize(10, 10)
	width, height := w.GetSize()
	assert.Equal(t, 10, width)
	assert.Equal(t, 10, height)

	first, err := w.Render()
	require.NoError(t, err)
	assert.NotEmpty(t, first)
	assert.False(t, w.needsUpdate)

	// unchanged inputs keep the cached output
	w.SetImage(img).SetSize(10, 10).SetProtocol(Halfblocks)
	assert.False(t, w.needsUpdate)

	w.SetProtocol(ASCII)
	assert.True(t, w.needsUpdate)
	ascii, err := w.Render()
	require.NoError(t, err)
	assert.NotEqual(t, first, ascii)

	w.Update()
	assert.True(t, w.needsUpdate)
}

func TestPreviewWidgetDither(t *testing.T) {
	w := NewPreviewWidget().SetImage(createTestImage(20, 20)).SetSize(5, 5)
	_, err := w.Render()
	require.NoError(t, err)

	w.SetDither(true)
	assert.True(t, w.needsUpdate)
	out, err := w.Render()
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
