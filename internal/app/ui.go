package app

import (
	"github.com/bethropolis/wordpad/internal/logger"
	"github.com/bethropolis/wordpad/internal/tui"
)

// toolbarItems mirrors the actions the current state allows.
func (a *App) toolbarItems() []tui.ToolbarItem {
	hasText := a.session.Text() != ""
	return []tui.ToolbarItem{
		{Label: "^Z Undo", Enabled: a.session.CanUndo()},
		{Label: "^Y Redo", Enabled: a.session.CanRedo()},
		{Label: "^E Erase", Enabled: hasText},
		{Label: "^U Upper", Enabled: hasText},
		{Label: "^L Lower", Enabled: hasText},
		{Label: "^K Copy", Enabled: hasText},
		{Label: "^V Paste", Enabled: true},
		{Label: "^S Save", Enabled: true},
		{Label: "^P Cmd", Enabled: true},
	}
}

// draw redraws the toolbar, the text surface and the status line.
func (a *App) draw() {
	screen := a.tuiManager.Screen()
	width, height := a.tuiManager.Size()
	settings := a.session.Settings()

	logger.DebugTagf("draw", "draw: screen %dx%d, %s", width, height, settings)

	screen.Clear()
	tui.DrawToolbar(screen, 0, width, a.toolbarItems(), settings.String(), settings.ChromeStyle())
	if textHeight := height - 2; textHeight > 0 {
		a.textArea.Draw(screen, a.session.Text(), 0, 1, width, textHeight, settings.TextStyle())
	}
	if height > 1 {
		a.statusBar.Draw(screen, height-1, width)
	}
	a.tuiManager.Show()
}
