// Package clipboard backs copy-line and paste. It uses the system clipboard
// when one is reachable and keeps an in-process copy otherwise.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/hyperion-editor/hyperion/internal/logger"
)

type Clipboard struct {
	text   string
	system bool
	read   func() (string, error)
	write  func(string) error
}

// New returns a clipboard wired to the system clipboard when supported.
func New() *Clipboard {
	return &Clipboard{
		system: !clipboard.Unsupported,
		read:   clipboard.ReadAll,
		write:  clipboard.WriteAll,
	}
}

// NewMemory returns a clipboard that never leaves the process.
func NewMemory() *Clipboard {
	return &Clipboard{}
}

// Copy stores text. A failing system clipboard is dropped for the rest of
// the session.
func (c *Clipboard) Copy(text string) {
	c.text = text
	if !c.system {
		return
	}
	if err := c.write(text); err != nil {
		logger.Warn("system clipboard write failed", "err", err)
		c.system = false
	}
}

// Paste returns the clipboard text.
func (c *Clipboard) Paste() string {
	if !c.system {
		return c.text
	}
	text, err := c.read()
	if err != nil {
		logger.Warn("system clipboard read failed", "err", err)
		c.system = false
		return c.text
	}
	return text
}

// System reports whether the system clipboard is in use.
func (c *Clipboard) System() bool { return c.system }
