// Package history provides snapshot-based undo/redo for a text buffer.
package history

import "github.com/bethropolis/wordpad/internal/logger"

// DefaultMaxHistory caps the number of snapshots kept on the undo stack.
const DefaultMaxHistory = 100

// Options configures a Store.
type Options struct {
	// MaxEntries caps the undo stack; the oldest snapshots are evicted first.
	// Zero or negative selects DefaultMaxHistory.
	MaxEntries int
	// ClearRedoOnRecord discards pending redo snapshots when a non-empty
	// buffer is recorded.
	ClearRedoOnRecord bool
}

// DefaultOptions returns the options used by NewStore.
func DefaultOptions() Options {
	return Options{
		MaxEntries:        DefaultMaxHistory,
		ClearRedoOnRecord: true,
	}
}

// Store keeps a linear history of buffer snapshots.
//
// The first snapshot on the undo stack is the floor: Undo never steps past
// it. Empty buffers are never recorded as snapshots, so erasing text is only
// reversible through the snapshot taken before the erase.
//
// A Store is owned by a single editor session and is not safe for
// concurrent use.
type Store struct {
	undo []string
	// redo holds the nearest redo snapshot at the end of the slice.
	redo    []string
	current string
	opts    Options
}

// NewStore creates an empty store with DefaultOptions.
func NewStore() *Store {
	return NewStoreWithOptions(DefaultOptions())
}

// NewStoreWithOptions creates an empty store.
func NewStoreWithOptions(opts Options) *Store {
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultMaxHistory
	}
	return &Store{
		undo: make([]string, 0, 16),
		opts: opts,
	}
}

// Record makes buffer the current value and, unless it is empty, appends it
// to the undo stack.
func (s *Store) Record(buffer string) {
	s.current = buffer
	if buffer == "" {
		logger.DebugTagf("history", "History: empty buffer not recorded. Undo: %d, Redo: %d", len(s.undo), len(s.redo))
		return
	}

	s.pushUndo(buffer)
	if s.opts.ClearRedoOnRecord && len(s.redo) > 0 {
		s.redo = s.redo[:0]
	}

	logger.DebugTagf("history", "History: recorded snapshot (%d bytes). Undo: %d, Redo: %d", len(buffer), len(s.undo), len(s.redo))
}

// pushUndo appends snap to the undo stack, evicting the oldest snapshots
// beyond MaxEntries.
func (s *Store) pushUndo(snap string) {
	s.undo = append(s.undo, snap)
	if len(s.undo) > s.opts.MaxEntries {
		s.undo = s.undo[len(s.undo)-s.opts.MaxEntries:]
	}
}

// Undo steps back to the previous snapshot. It reports false and leaves the
// store untouched when fewer than two snapshots exist.
func (s *Store) Undo() bool {
	if len(s.undo) <= 1 {
		logger.DebugTagf("history", "History: nothing to undo.")
		return false
	}

	s.redo = append(s.redo, s.current)
	s.undo = s.undo[:len(s.undo)-1]
	s.current = s.undo[len(s.undo)-1]

	logger.DebugTagf("history", "History: undo. Undo: %d, Redo: %d", len(s.undo), len(s.redo))
	return true
}

// Redo re-applies the nearest undone snapshot. It reports false and leaves
// the store untouched when nothing is pending.
func (s *Store) Redo() bool {
	if len(s.redo) == 0 {
		logger.DebugTagf("history", "History: nothing to redo.")
		return false
	}

	next := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.pushUndo(s.current)
	s.current = next

	logger.DebugTagf("history", "History: redo. Undo: %d, Redo: %d", len(s.undo), len(s.redo))
	return true
}

// Current returns the buffer currently shown to the user.
func (s *Store) Current() string {
	return s.current
}

// CanUndo reports whether Undo would change state.
func (s *Store) CanUndo() bool {
	return len(s.undo) > 1
}

// CanRedo reports whether Redo would change state.
func (s *Store) CanRedo() bool {
	return len(s.redo) > 0
}

// UndoStack returns a copy of the undo stack, oldest first.
func (s *Store) UndoStack() []string {
	out := make([]string, len(s.undo))
	copy(out, s.undo)
	return out
}

// RedoStack returns a copy of the redo stack, nearest first.
func (s *Store) RedoStack() []string {
	out := make([]string, len(s.redo))
	for i, snap := range s.redo {
		out[len(s.redo)-1-i] = snap
	}
	return out
}

// Clear resets the store to its empty state.
func (s *Store) Clear() {
	s.undo = s.undo[:0]
	s.redo = s.redo[:0]
	s.current = ""
	logger.DebugTagf("history", "History: cleared.")
}
