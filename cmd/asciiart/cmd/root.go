/*
Copyright © 2024 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/blacktop/go-asciiart"
	"github.com/spf13/cobra"
)

// options collects the flag values shared by every command.
type options struct {
	width      int
	saturation float64
	contrast   float64
	brightness float64
	invert     bool
	ramp       string
	maxWidth   int
	maxHeight  int
	protocol   string
	htmlPath   string
	copy       bool
	preview    bool
}

var (
	verbose bool
	opts    = defaultOptions()
)

func defaultOptions() options {
	return options{
		width:      asciiart.DefaultOutputWidth,
		saturation: 1,
		contrast:   1,
		brightness: 1,
		ramp:       string(asciiart.DefaultRamp),
		maxWidth:   asciiart.DefaultPreviewWidth,
		maxHeight:  asciiart.DefaultPreviewHeight,
		protocol:   "auto",
	}
}

func init() {
	log.SetHandler(clihander.Default)

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "V", false, "Enable verbose logging")
	flags.IntVarP(&opts.width, "width", "w", opts.width, "Output width in characters")
	flags.Float64VarP(&opts.saturation, "saturation", "s", opts.saturation, "Saturation factor (1.0 = unchanged)")
	flags.Float64VarP(&opts.contrast, "contrast", "k", opts.contrast, "Contrast factor (1.0 = unchanged)")
	flags.Float64VarP(&opts.brightness, "brightness", "b", opts.brightness, "Brightness factor (1.0 = unchanged)")
	flags.BoolVarP(&opts.invert, "invert", "i", false, "Invert colors")
	flags.StringVar(&opts.ramp, "ramp", opts.ramp, "Characters from lightest to densest")
	flags.IntVar(&opts.maxWidth, "max-width", opts.maxWidth, "Maximum preview width in pixels")
	flags.IntVar(&opts.maxHeight, "max-height", opts.maxHeight, "Maximum preview height in pixels")
	flags.StringVar(&opts.protocol, "protocol", opts.protocol, "Preview protocol (auto, ascii, halfblocks, sixel)")
	flags.StringVarP(&opts.htmlPath, "html", "o", "", "Save the ASCII art as an HTML page")

	rootCmd.Flags().BoolVarP(&opts.copy, "copy", "c", false, "Copy the ASCII art to the clipboard")
	rootCmd.Flags().BoolVarP(&opts.preview, "preview", "p", false, "Show the adjusted preview image first")

	rootCmd.AddCommand(editCmd)
}

// validate checks every flag before any work is done.
func (o options) validate() error {
	if o.width <= 0 {
		return fmt.Errorf("%w: --width must be positive, got %d", asciiart.ErrInvalidParameter, o.width)
	}
	if o.maxWidth <= 0 || o.maxHeight <= 0 {
		return fmt.Errorf("%w: preview bounds must be positive, got %dx%d", asciiart.ErrInvalidParameter, o.maxWidth, o.maxHeight)
	}
	if o.ramp == "" {
		return fmt.Errorf("%w: --ramp cannot be empty", asciiart.ErrInvalidParameter)
	}
	if _, err := asciiart.ParseProtocol(o.protocol); err != nil {
		return err
	}
	return o.params().Validate()
}

func (o options) params() asciiart.Params {
	return asciiart.Params{
		Saturation: o.saturation,
		Contrast:   o.contrast,
		Brightness: o.brightness,
		Invert:     o.invert,
	}
}

// newSession builds a session from the flags and loads path into it.
func (o options) newSession(path string) (*asciiart.Session, error) {
	s := asciiart.NewSession(
		asciiart.WithOutputWidth(o.width),
		asciiart.WithPreviewBounds(o.maxWidth, o.maxHeight),
		asciiart.WithRamp(asciiart.Ramp(o.ramp)),
		asciiart.WithParams(o.params()),
	)
	if err := s.Open(path); err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return s, nil
}

// run converts the image at path and writes the text to out.
func run(o options, path string, out io.Writer) error {
	if err := o.validate(); err != nil {
		return err
	}

	s, err := o.newSession(path)
	if err != nil {
		return err
	}
	b := s.Source().Bounds()
	log.Debugf("Image Info: %dx%d %s", b.Dx(), b.Dy(), s.Params())

	if o.preview {
		protocol, _ := asciiart.ParseProtocol(o.protocol)
		if protocol == asciiart.Auto {
			protocol = asciiart.DetectProtocol()
		}
		log.Debugf("Preview protocol: %s", protocol)

		frame, err := s.Render()
		if err != nil {
			return fmt.Errorf("failed to render preview: %w", err)
		}
		if err := asciiart.PrintPreview(out, frame.Preview, protocol, asciiart.RenderOptions{}); err != nil {
			return fmt.Errorf("failed to display preview: %w", err)
		}
	}

	start := time.Now()
	grid, err := s.Export()
	if err != nil {
		return fmt.Errorf("failed to convert image: %w", err)
	}
	log.Debugf("Converted to %dx%d characters in %s", grid.Width, grid.Height, time.Since(start))

	if _, err := grid.WriteTo(out); err != nil {
		return fmt.Errorf("%w: failed to write output: %w", asciiart.ErrIO, err)
	}

	if o.htmlPath != "" {
		saved, err := asciiart.SaveHTML(o.htmlPath, grid.Text())
		if err != nil {
			return err
		}
		log.Infof("Saved HTML to %s", saved)
	}

	if o.copy {
		if err := asciiart.CopyToClipboard(grid.Text()); err != nil {
			return err
		}
		log.Info("Copied ASCII art to clipboard")
	}

	return nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "asciiart <image>",
	Short: "Convert images to ASCII art.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		if err := run(opts, args[0], cmd.OutOrStdout()); err != nil {
			log.Fatalf("Failed to convert image: %v", err)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
