package asciiart

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
)

var htmlTemplate = template.Must(template.New("ascii").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>ASCII Art</title>
    <style>
        body {
            font-family: "Courier New", Courier, monospace;
            background-color: black;
            color: white;
            white-space: pre;
            margin: 0;
            padding: 20px;
        }
    </style>
</head>
<body>
    <pre>{{.}}</pre>
</body>
</html>
`))

// WriteHTML wraps text in a monospace <pre> page and writes it to w.
func WriteHTML(w io.Writer, text string) error {
	if err := htmlTemplate.Execute(w, text); err != nil {
		return fmt.Errorf("%w: failed to write html: %w", ErrIO, err)
	}
	return nil
}

// HTMLPath appends the .html extension when path has none.
func HTMLPath(path string) string {
	if filepath.Ext(path) == "" {
		return path + ".html"
	}
	return path
}

// SaveHTML writes the HTML page for text to path (see HTMLPath) and returns
// the path actually written.
func SaveHTML(path, text string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: path cannot be empty", ErrIO)
	}
	path = HTMLPath(path)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create file: %w", ErrIO, err)
	}
	if err := WriteHTML(f, text); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: failed to close file: %w", ErrIO, err)
	}
	return path, nil
}
