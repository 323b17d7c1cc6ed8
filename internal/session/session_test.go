package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/wordpad/internal/core/clipboard"
	"github.com/bethropolis/wordpad/internal/core/history"
	"github.com/bethropolis/wordpad/internal/event"
	"github.com/bethropolis/wordpad/internal/export"
	"github.com/bethropolis/wordpad/internal/presentation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects every event dispatched on a manager.
type recorder struct {
	events []event.Event
}

func newRecorder(m *event.Manager) *recorder {
	r := &recorder{}
	for _, typ := range []event.Type{
		event.TypeBufferModified,
		event.TypeHistoryChanged,
		event.TypeSettingsChanged,
		event.TypeExportStarted,
		event.TypeExportFinished,
	} {
		m.Subscribe(typ, func(e event.Event) bool {
			r.events = append(r.events, e)
			return false
		})
	}
	return r
}

func (r *recorder) types() []event.Type {
	out := make([]event.Type, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func TestTypingUndoRedo(t *testing.T) {
	s := New(Options{})
	rec := newRecorder(s.Events())

	assert.True(t, s.SetText("Hello"))
	assert.True(t, s.SetText("Hello World"))
	assert.False(t, s.SetText("Hello World"), "unchanged input is ignored")

	require.True(t, s.Undo())
	assert.Equal(t, "Hello", s.Text())
	assert.False(t, s.Undo())
	assert.Equal(t, "Hello", s.Text())
	require.True(t, s.Redo())
	assert.Equal(t, "Hello World", s.Text())

	assert.Equal(t, []event.Type{
		event.TypeBufferModified,
		event.TypeBufferModified,
		event.TypeHistoryChanged,
		event.TypeHistoryChanged,
	}, rec.types())

	last := rec.events[3].Data.(event.HistoryChangedData)
	assert.Equal(t, "redo", last.Direction)
	assert.Equal(t, "Hello World", last.Text)
	assert.True(t, last.CanUndo)
	assert.False(t, last.CanRedo)
}

func TestTransforms(t *testing.T) {
	s := New(Options{})
	s.SetText("Mixed Case")

	assert.True(t, s.ToUpper())
	assert.Equal(t, "MIXED CASE", s.Text())
	assert.False(t, s.ToUpper(), "already upper case")

	assert.True(t, s.ToLower())
	assert.Equal(t, "mixed case", s.Text())

	assert.Equal(t, []string{"Mixed Case", "MIXED CASE", "mixed case"}, s.History().UndoStack())
}

func TestEraseIsUndoneToPreviousSnapshot(t *testing.T) {
	s := New(Options{})
	s.SetText("draft one")
	s.SetText("draft two")

	assert.True(t, s.Erase())
	assert.Equal(t, "", s.Text())
	assert.Equal(t, 0, s.WordCount())
	assert.Len(t, s.History().UndoStack(), 2)

	require.True(t, s.Undo())
	assert.Equal(t, "draft one", s.Text())
}

func TestRedoPolicyFromOptions(t *testing.T) {
	keep := New(Options{History: &history.Options{MaxEntries: 10, ClearRedoOnRecord: false}})
	keep.SetText("a")
	keep.SetText("ab")
	keep.Undo()
	keep.SetText("ac")
	assert.True(t, keep.CanRedo())

	zero := New(Options{History: &history.Options{}})
	zero.SetText("a")
	zero.SetText("ab")
	zero.Undo()
	zero.SetText("ac")
	assert.True(t, zero.CanRedo(), "an explicit zero value keeps redo")

	clear := New(Options{})
	clear.SetText("a")
	clear.SetText("ab")
	clear.Undo()
	clear.SetText("ac")
	assert.False(t, clear.CanRedo())
}

func TestWordCountAndStats(t *testing.T) {
	s := New(Options{})
	s.SetText("  one two\nthree ")
	assert.Equal(t, 3, s.WordCount())
	assert.Equal(t, 2, s.Stats().Lines)
}

func TestSettings(t *testing.T) {
	s := New(Options{Settings: presentation.Settings{FontSize: 12, FontFamily: "Lato"}})
	rec := newRecorder(s.Events())

	assert.Equal(t, 12, s.Settings().FontSize)
	assert.Equal(t, presentation.DefaultFontColor, s.Settings().FontColor)

	s.AdjustFontSize(-20)
	assert.Equal(t, 1, s.Settings().FontSize)

	s.CycleFontFamily()
	assert.Equal(t, "Montserrat", s.Settings().FontFamily)

	s.SetSettings(s.Settings())
	assert.Len(t, rec.events, 2, "unchanged settings dispatch nothing")
	assert.Equal(t, "Montserrat", rec.events[1].Data.(event.SettingsChangedData).Settings.FontFamily)
}

func TestCopyPaste(t *testing.T) {
	s := New(Options{Clipboard: clipboard.NewManager(false)})

	_, ok := s.Paste(0)
	assert.False(t, ok)

	s.SetText("héllo")
	require.NoError(t, s.Copy())

	end, ok := s.Paste(2)
	require.True(t, ok)
	assert.Equal(t, "héhéllollo", s.Text())
	assert.Equal(t, 7, end)

	end, ok = s.Paste(100)
	require.True(t, ok)
	assert.Equal(t, "héhéllollohéllo", s.Text())
	assert.Equal(t, 15, end)
}

func TestSaveWithoutExporter(t *testing.T) {
	_, err := New(Options{}).Save(context.Background())
	assert.ErrorIs(t, err, ErrNoExporter)
}

func TestSaveAndFinishExport(t *testing.T) {
	dir := t.TempDir()
	exp, err := export.NewExporter(export.DocxEncoder{}, export.FileDeliverer{Dir: dir}, "")
	require.NoError(t, err)

	s := New(Options{Exporter: exp})
	rec := newRecorder(s.Events())
	s.SetText("export me")

	job, err := s.Save(context.Background())
	require.NoError(t, err)
	res := job.Wait()
	require.NoError(t, res.Err)
	s.FinishExport(res)

	assert.FileExists(t, filepath.Join(dir, export.DefaultFilename))
	assert.Equal(t, []event.Type{
		event.TypeBufferModified,
		event.TypeExportStarted,
		event.TypeExportFinished,
	}, rec.types())

	started := rec.events[1].Data.(event.ExportStartedData)
	finished := rec.events[2].Data.(event.ExportFinishedData)
	assert.Equal(t, job.ID.String(), started.JobID)
	assert.Equal(t, export.DefaultFilename, started.Filename)
	assert.Equal(t, started.JobID, finished.JobID)
	assert.NoError(t, finished.Err)
}

func TestFinishExportCarriesError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	// The export dir is a regular file, so delivery fails.
	exp, err := export.NewExporter(export.DocxEncoder{}, export.FileDeliverer{Dir: blocker}, "")
	require.NoError(t, err)

	s := New(Options{Exporter: exp})
	rec := newRecorder(s.Events())

	job, err := s.Save(context.Background())
	require.NoError(t, err)
	s.FinishExport(job.Wait())

	finished := rec.events[len(rec.events)-1].Data.(event.ExportFinishedData)
	assert.Error(t, finished.Err)
	assert.Empty(t, finished.Path)
}
