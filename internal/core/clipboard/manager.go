// Package clipboard provides copy and paste between the buffer and either
// the system clipboard or an in-process register.
package clipboard

import (
	"fmt"

	sysclip "github.com/atotto/clipboard"
	"github.com/bethropolis/wordpad/internal/logger"
)

// Manager holds the clipboard register.
type Manager struct {
	useSystem bool
	register  string

	// System clipboard access, replaceable in tests.
	readSystem  func() (string, error)
	writeSystem func(string) error
}

// NewManager creates a clipboard manager. With useSystem set, copies go to
// the system clipboard as well as the internal register, and pastes prefer
// the system clipboard. When the system clipboard is unavailable
// (no xclip/xsel/wl-clipboard, headless session) the register is used.
func NewManager(useSystem bool) *Manager {
	return &Manager{
		useSystem:   useSystem && !sysclip.Unsupported,
		readSystem:  sysclip.ReadAll,
		writeSystem: sysclip.WriteAll,
	}
}

// UsesSystem reports whether the system clipboard is in use.
func (m *Manager) UsesSystem() bool {
	return m.useSystem
}

// Copy stores text in the clipboard. A failed system write is returned after
// the internal register has been updated, so a following Paste still works.
func (m *Manager) Copy(text string) error {
	m.register = text
	logger.DebugTagf("clipboard", "Clipboard: copied %d bytes", len(text))

	if !m.useSystem {
		return nil
	}
	if err := m.writeSystem(text); err != nil {
		logger.Warnf("Clipboard: system clipboard write failed, kept internal copy: %v", err)
		return fmt.Errorf("system clipboard write: %w", err)
	}
	return nil
}

// Paste returns the clipboard text. ok is false when there is nothing to paste.
func (m *Manager) Paste() (text string, ok bool) {
	if m.useSystem {
		sys, err := m.readSystem()
		if err == nil && sys != "" {
			return sys, true
		}
		if err != nil {
			logger.Warnf("Clipboard: system clipboard read failed, using internal copy: %v", err)
		}
	}
	if m.register == "" {
		return "", false
	}
	return m.register, true
}
