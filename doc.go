/*
Package asciiart converts raster images into ASCII art.

The conversion runs in three steps:

  - Adjust applies saturation, contrast and brightness factors (1.0 is the
    identity) followed by an optional inversion.
  - Downscale bounds the image for interactive previews (800x600 by default)
    without ever enlarging it.
  - Quantize reduces the image to luma, resamples it to the requested width
    with half as many rows per column as the source aspect ratio suggests,
    and maps each sample onto the ramp " .:-=+*#%@".

Basic Usage:

	// Simple one-liner
	text, err := asciiart.ConvertFile("image.png")
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(text)

Fluent API:

	img, err := asciiart.Open("image.png")
	if err != nil {
	    log.Fatal(err)
	}

	text, err := img.
	    Width(120).
	    Saturation(1.2).
	    Contrast(1.5).
	    Invert(true).
	    Render()

Interactive Sessions:

	s := asciiart.NewSession(asciiart.WithOutputWidth(160))
	if err := s.Open("image.png"); err != nil {
	    log.Fatal(err)
	}

	// every change recomputes the preview image and the text
	frame, err := s.SetParams(asciiart.Params{Saturation: 1, Contrast: 1.3, Brightness: 0.9})
	fmt.Println(frame.Grid)

	// export re-quantizes the full resolution adjusted image
	path, err := s.SaveHTML("art.html")

Previews:

	// draw the adjusted preview with the best protocol for the terminal
	err = asciiart.PrintPreview(os.Stdout, frame.Preview, asciiart.Auto, asciiart.RenderOptions{Width: 60})

All errors wrap one of ErrInvalidImage, ErrInvalidParameter or ErrIO and can
be matched with errors.Is.
*/
package asciiart
