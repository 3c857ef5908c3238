package asciiart

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// ClipboardSupported reports whether a system clipboard utility was found.
func ClipboardSupported() bool {
	return !clipboard.Unsupported
}

// CopyToClipboard places text on the system clipboard.
func CopyToClipboard(text string) error {
	if err := clipboardWrite(text); err != nil {
		return fmt.Errorf("%w: failed to copy to clipboard: %w", ErrIO, err)
	}
	return nil
}
