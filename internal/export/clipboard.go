package export

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/ivlev/slidenotes/internal/deck"
)

var errNoClipboard = errors.New("no clipboard utility available")

// clipboardWriter is replaced in tests; the real clipboard needs a display.
var clipboardWriter = func(text string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(text)
}

// CopyToClipboard places the clipboard rendering of slides on the system clipboard.
func CopyToClipboard(slides []deck.Slide) error {
	if err := clipboardWriter(Document(slides, Clipboard)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
