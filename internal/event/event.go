// Package event is a small synchronous publish/subscribe bus.
package event

import "github.com/bethropolis/wordpad/internal/presentation"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Editing
	TypeBufferModified // buffer content changed through input or a transform
	TypeHistoryChanged // undo or redo moved through history

	// Presentation
	TypeSettingsChanged

	// Export
	TypeExportStarted
	TypeExportFinished

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

var typeNames = map[Type]string{
	TypeUnknown:         "Unknown",
	TypeBufferModified:  "BufferModified",
	TypeHistoryChanged:  "HistoryChanged",
	TypeSettingsChanged: "SettingsChanged",
	TypeExportStarted:   "ExportStarted",
	TypeExportFinished:  "ExportFinished",
	TypeAppReady:        "AppReady",
	TypeAppQuit:         "AppQuit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData describes a buffer change.
type BufferModifiedData struct {
	Source string // "input", "erase", "upper", "lower", "paste"
	Text   string
}

// HistoryChangedData describes a step through history.
type HistoryChangedData struct {
	Direction string // "undo" or "redo"
	Text      string
	CanUndo   bool
	CanRedo   bool
}

// SettingsChangedData carries the new presentation settings.
type SettingsChangedData struct {
	Settings presentation.Settings
}

// ExportStartedData identifies a started export.
type ExportStartedData struct {
	JobID    string
	Filename string
}

// ExportFinishedData reports the outcome of an export.
type ExportFinishedData struct {
	JobID string
	Path  string
	Err   error
}
