package system

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/tabfind/internal/core/ports/driven"
)

// Ensure Clipboard implements driven.Clipboard.
var _ driven.Clipboard = (*Clipboard)(nil)

// ErrClipboardUnsupported is returned when no clipboard utility is installed.
var ErrClipboardUnsupported = errors.New("clipboard unsupported on this system")

// Clipboard writes to the system clipboard.
type Clipboard struct{}

// NewClipboard creates a system clipboard adapter.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Copy replaces the clipboard contents with text.
func (c *Clipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
