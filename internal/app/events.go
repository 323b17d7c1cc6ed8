package app

import (
	"path/filepath"

	"github.com/bethropolis/wordpad/internal/event"
	"github.com/bethropolis/wordpad/internal/logger"
	"github.com/bethropolis/wordpad/internal/statusbar"
)

// handleBufferModified refreshes the statistics after any recorded change.
func (a *App) handleBufferModified(e event.Event) bool {
	a.refreshStatus()
	return false
}

// handleHistoryChanged keeps the cursor inside the restored buffer.
func (a *App) handleHistoryChanged(e event.Event) bool {
	data, ok := e.Data.(event.HistoryChangedData)
	if !ok {
		logger.Warnf("App: HistoryChanged event with unexpected data type: %T", e.Data)
		return false
	}
	a.textArea.Clamp(data.Text)
	a.refreshStatus()
	return false
}

func (a *App) handleSettingsChanged(e event.Event) bool {
	data, ok := e.Data.(event.SettingsChangedData)
	if !ok {
		return false
	}
	a.statusBar.SetConfig(statusbar.DefaultConfig(data.Settings.ChromeStyle(), a.messageTimeout))
	a.statusBar.SetTemporaryMessage("%s", data.Settings)
	return false
}

func (a *App) handleExportStarted(e event.Event) bool {
	if data, ok := e.Data.(event.ExportStartedData); ok {
		a.statusBar.SetTemporaryMessage("Exporting %s...", data.Filename)
	}
	return false
}

func (a *App) handleExportFinished(e event.Event) bool {
	data, ok := e.Data.(event.ExportFinishedData)
	if !ok {
		return false
	}
	if data.Err != nil {
		a.statusBar.SetErrorMessage("Export failed: %v", data.Err)
		return false
	}
	a.statusBar.SetTemporaryMessage("Saved %s", filepath.Base(data.Path))
	return false
}

// refreshStatus pushes buffer statistics and history depth to the status bar.
func (a *App) refreshStatus() {
	a.statusBar.SetStats(a.session.Stats())
	undo := len(a.session.History().UndoStack()) - 1
	if undo < 0 {
		undo = 0
	}
	a.statusBar.SetHistory(undo, len(a.session.History().RedoStack()))
}
