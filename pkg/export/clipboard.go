// Package export hands a generated document to the outside world: the
// system clipboard, a file on disk, and a short acknowledgement for the
// user.
package export

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard receives text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}

// MemoryClipboard keeps the last written text. Useful where no system
// clipboard exists.
type MemoryClipboard struct {
	Text string
}

// WriteAll stores text.
func (m *MemoryClipboard) WriteAll(text string) error {
	m.Text = text
	return nil
}
