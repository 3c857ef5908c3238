package asciiart

import (
	"fmt"
	"image"
)

// PreviewWidget renders a preview image for TUI frameworks and caches the
// output until the image, size or protocol changes.
type PreviewWidget struct {
	image       image.Image
	width       int
	height      int
	protocol    Protocol
	dither      bool
	rendered    string
	needsUpdate bool
}

// NewPreviewWidget creates a widget drawing with halfblocks, the only
// protocol that composes with a text layout.
func NewPreviewWidget() *PreviewWidget {
	return &PreviewWidget{
		protocol:    Halfblocks,
		needsUpdate: true,
	}
}

// SetImage replaces the displayed image.
func (w *PreviewWidget) SetImage(img image.Image) *PreviewWidget {
	if w.image != img {
		w.image = img
		w.needsUpdate = true
	}
	return w
}

// SetSize sets the widget dimensions in character cells
func (w *PreviewWidget) SetSize(width, height int) *PreviewWidget {
	if w.width != width || w.height != height {
		w.width = width
		w.height = height
		w.needsUpdate = true
	}
	return w
}

// SetProtocol sets the rendering protocol to use
func (w *PreviewWidget) SetProtocol(protocol Protocol) *PreviewWidget {
	if w.protocol != protocol {
		w.protocol = protocol
		w.needsUpdate = true
	}
	return w
}

// SetDither toggles dithering.
func (w *PreviewWidget) SetDither(d bool) *PreviewWidget {
	if w.dither != d {
		w.dither = d
		w.needsUpdate = true
	}
	return w
}

// GetSize returns the current widget dimensions
func (w *PreviewWidget) GetSize() (width, height int) {
	return w.width, w.height
}

// Render returns the string representation of the image for the TUI
func (w *PreviewWidget) Render() (string, error) {
	if !w.needsUpdate && w.rendered != "" {
		return w.rendered, nil
	}
	if w.image == nil {
		return "", fmt.Errorf("%w: no preview image", ErrInvalidImage)
	}
	if w.width <= 0 || w.height <= 0 {
		return "", nil
	}

	output, err := RenderPreview(w.image, w.protocol, RenderOptions{
		Width:  w.width,
		Height: w.height,
		Dither: w.dither,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render preview widget: %w", err)
	}

	w.rendered = output
	w.needsUpdate = false

	return output, nil
}

// Update forces the widget to re-render on next Render() call
func (w *PreviewWidget) Update() {
	w.needsUpdate = true
}
