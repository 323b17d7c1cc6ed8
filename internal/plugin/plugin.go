// Package plugin defines the extension points of the editor: a plugin gets
// an EditorAPI at startup and may subscribe to events, register commands
// and run work on the event loop.
package plugin

import (
	"github.com/bethropolis/wordpad/internal/core/text"
	"github.com/bethropolis/wordpad/internal/event"
)

// CommandFunc is a command registered by a plugin. It runs on the event loop.
type CommandFunc func(args []string) error

// EditorAPI is what plugins may do with the editor. Unless noted, methods
// must be called on the event loop: from Initialize, an event handler, a
// command, or a function passed to RunOnLoop.
type EditorAPI interface {
	// Text returns the current buffer.
	Text() string
	// Stats summarises the current buffer.
	Stats() text.Stats

	SubscribeEvent(eventType event.Type, handler event.Handler)
	RegisterCommand(name string, cmd CommandFunc) error

	// Save starts an export of the current buffer.
	Save() error

	SetStatusMessage(format string, args ...interface{})

	// RunOnLoop schedules fn on the event loop. Safe from any goroutine.
	RunOnLoop(fn func()) error
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
