package asciiart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := clipboardWrite
	clipboardWrite = fn
	t.Cleanup(func() { clipboardWrite = orig })
}

func TestCopyToClipboard(t *testing.T) {
	var got string
	stubClipboard(t, func(text string) error {
		got = text
		return nil
	})

	require.NoError(t, CopyToClipboard("@@\n"))
	assert.Equal(t, "@@\n", got)
}

func TestCopyToClipboardError(t *testing.T) {
	cause := errors.New("xclip not found")
	stubClipboard(t, func(string) error { return cause })

	err := CopyToClipboard("x")
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, cause)
}
