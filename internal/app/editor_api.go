package app

import (
	"github.com/bethropolis/wordpad/internal/core/text"
	"github.com/bethropolis/wordpad/internal/event"
	"github.com/bethropolis/wordpad/internal/plugin"
	"github.com/gdamore/tcell/v2"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// appEditorAPI is the EditorAPI handed to plugins.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

func (api *appEditorAPI) Text() string {
	return api.app.session.Text()
}

func (api *appEditorAPI) Stats() text.Stats {
	return api.app.session.Stats()
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.session.Events().Subscribe(eventType, handler)
}

func (api *appEditorAPI) RegisterCommand(name string, cmd plugin.CommandFunc) error {
	return api.app.registerCommand(name, cmd)
}

func (api *appEditorAPI) Save() error {
	return api.app.save()
}

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
}

// loopFuncEvent runs a function on the event loop.
type loopFuncEvent struct {
	tcell.EventTime
	fn func()
}

func (api *appEditorAPI) RunOnLoop(fn func()) error {
	ev := &loopFuncEvent{fn: fn}
	ev.SetEventNow()
	return api.app.tuiManager.PostEvent(ev)
}
