// Package session is the editing session: it owns the history store and
// presentation settings, and turns user requests into recorded buffer
// states and exports.
//
// A Session is driven from a single event loop and is not safe for
// concurrent use. The only work it starts off that loop is an export job,
// which gets its own copy of the buffer.
package session

import (
	"errors"

	"github.com/bethropolis/wordpad/internal/core/clipboard"
	"github.com/bethropolis/wordpad/internal/core/history"
	"github.com/bethropolis/wordpad/internal/core/text"
	"github.com/bethropolis/wordpad/internal/event"
	"github.com/bethropolis/wordpad/internal/export"
	"github.com/bethropolis/wordpad/internal/logger"
	"github.com/bethropolis/wordpad/internal/presentation"
)

// ErrNoExporter is returned by Save when the session was built without one.
var ErrNoExporter = errors.New("session: no exporter configured")

// Buffer change sources reported in event.BufferModifiedData.
const (
	SourceInput = "input"
	SourceErase = "erase"
	SourceUpper = "upper"
	SourceLower = "lower"
	SourcePaste = "paste"
)

// Options wires a Session to its collaborators. A nil History selects
// history.DefaultOptions. Other zero values get defaults too: default
// presentation settings, an in-process clipboard and a private event
// manager. A nil Exporter disables Save.
type Options struct {
	History   *history.Options
	Settings  presentation.Settings
	Clipboard *clipboard.Manager
	Exporter  *export.Exporter
	Events    *event.Manager
}

// Session is one editor session.
type Session struct {
	store     *history.Store
	settings  presentation.Settings
	clipboard *clipboard.Manager
	exporter  *export.Exporter
	events    *event.Manager
}

// New creates a session with an empty buffer.
func New(opts Options) *Session {
	hist := history.DefaultOptions()
	if opts.History != nil {
		hist = *opts.History
	}
	s := &Session{
		store:     history.NewStoreWithOptions(hist),
		settings:  opts.Settings.Normalize(),
		clipboard: opts.Clipboard,
		exporter:  opts.Exporter,
		events:    opts.Events,
	}
	if s.clipboard == nil {
		s.clipboard = clipboard.NewManager(false)
	}
	if s.events == nil {
		s.events = event.NewManager()
	}
	return s
}

// Events returns the session's event manager.
func (s *Session) Events() *event.Manager {
	return s.events
}

// Text returns the current buffer.
func (s *Session) Text() string {
	return s.store.Current()
}

// History exposes the underlying store for inspection.
func (s *Session) History() *history.Store {
	return s.store
}

// record stores buf if it differs from the current buffer and reports
// whether anything changed.
func (s *Session) record(buf, source string) bool {
	if buf == s.store.Current() {
		return false
	}
	s.store.Record(buf)
	logger.DebugTagf("session", "Session: buffer changed by %s (%d bytes)", source, len(buf))
	s.events.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Source: source, Text: buf})
	return true
}

// SetText records a buffer edited directly by the user. Unchanged input is
// ignored.
func (s *Session) SetText(buf string) bool {
	return s.record(buf, SourceInput)
}

// Apply runs a whole-buffer transform and records the result.
func (s *Session) Apply(source string, transform text.Transform) bool {
	return s.record(transform(s.store.Current()), source)
}

// Erase clears the buffer. The cleared state is not an undo checkpoint.
func (s *Session) Erase() bool {
	return s.Apply(SourceErase, text.Erase)
}

// ToUpper upper-cases the buffer.
func (s *Session) ToUpper() bool {
	return s.Apply(SourceUpper, text.ToUpper)
}

// ToLower lower-cases the buffer.
func (s *Session) ToLower() bool {
	return s.Apply(SourceLower, text.ToLower)
}

// Undo steps back through history.
func (s *Session) Undo() bool {
	if !s.store.Undo() {
		return false
	}
	s.dispatchHistory("undo")
	return true
}

// Redo steps forward through history.
func (s *Session) Redo() bool {
	if !s.store.Redo() {
		return false
	}
	s.dispatchHistory("redo")
	return true
}

func (s *Session) dispatchHistory(direction string) {
	s.events.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
		Direction: direction,
		Text:      s.store.Current(),
		CanUndo:   s.store.CanUndo(),
		CanRedo:   s.store.CanRedo(),
	})
}

// CanUndo reports whether Undo is available.
func (s *Session) CanUndo() bool { return s.store.CanUndo() }

// CanRedo reports whether Redo is available.
func (s *Session) CanRedo() bool { return s.store.CanRedo() }

// WordCount counts the words of the current buffer.
func (s *Session) WordCount() int {
	return text.WordCount(s.store.Current())
}

// Stats summarises the current buffer.
func (s *Session) Stats() text.Stats {
	return text.Count(s.store.Current())
}
