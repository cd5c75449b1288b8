package bubble_adapter

import (
	"errors"

	"github.com/atotto/clipboard"
)

var ErrClipboardUnsupported = errors.New("system clipboard unsupported")

// SystemClipboard implements core.Clipboard on top of the OS clipboard.
type SystemClipboard struct{}

func (c *SystemClipboard) Write(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

func (c *SystemClipboard) Read() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}
	return clipboard.ReadAll()
}
