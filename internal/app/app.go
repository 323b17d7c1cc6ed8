// Package app runs the editor: it owns the screen, the session and the
// widgets, and drives them from a single tcell event loop.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/wordpad/internal/event"
	"github.com/bethropolis/wordpad/internal/export"
	"github.com/bethropolis/wordpad/internal/input"
	"github.com/bethropolis/wordpad/internal/logger"
	"github.com/bethropolis/wordpad/internal/plugin"
	"github.com/bethropolis/wordpad/internal/session"
	"github.com/bethropolis/wordpad/internal/statusbar"
	"github.com/bethropolis/wordpad/internal/tui"
	"github.com/bethropolis/wordpad/plugins/wordcount"
	"github.com/gdamore/tcell/v2"
)

// WelcomeMessage is shown on the status line at startup.
const WelcomeMessage = "Ctrl+S Export | Ctrl+P Command | Ctrl+Z Undo | Ctrl+Y Redo | Esc Quit"

// Options configures a new App.
type Options struct {
	Session        *session.Session
	Screen         tcell.Screen // nil opens the terminal
	ExportName     string       // shown on the status line
	MessageTimeout time.Duration

	// AutosaveInterval enables periodic exports when positive.
	AutosaveInterval time.Duration
}

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager     *tui.TUI
	session        *session.Session
	textArea       tui.TextArea
	statusBar      *statusbar.StatusBar
	inputProcessor *input.InputProcessor
	messageTimeout time.Duration

	pluginManager *plugin.Manager
	editorAPI     plugin.EditorAPI
	commands      map[string]plugin.CommandFunc

	// cmdLine is the command being typed while cmdActive.
	cmdLine   []rune
	cmdActive bool

	ctx    context.Context
	cancel context.CancelFunc
	jobs   sync.WaitGroup
	quit   bool
}

// exportDoneEvent carries a finished export back onto the event loop.
type exportDoneEvent struct {
	tcell.EventTime
	result export.Result
}

func newExportDoneEvent(res export.Result) *exportDoneEvent {
	ev := &exportDoneEvent{result: res}
	ev.SetEventNow()
	return ev
}

// New creates and initializes a new application instance.
func New(opts Options) (*App, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("app: session is required")
	}

	var (
		tuiManager *tui.TUI
		err        error
	)
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen)
	} else {
		tuiManager, err = tui.New()
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	a := &App{
		tuiManager:     tuiManager,
		session:        opts.Session,
		inputProcessor: input.NewInputProcessor(),
		messageTimeout: opts.MessageTimeout,
		pluginManager:  plugin.NewManager(),
		commands:       make(map[string]plugin.CommandFunc),
	}
	a.ctx, a.cancel = context.WithCancel(context.Background())
	a.statusBar = statusbar.New(statusbar.DefaultConfig(a.session.Settings().ChromeStyle(), a.messageTimeout))
	a.statusBar.SetFileName(opts.ExportName)

	events := a.session.Events()
	events.Subscribe(event.TypeBufferModified, a.handleBufferModified)
	events.Subscribe(event.TypeHistoryChanged, a.handleHistoryChanged)
	events.Subscribe(event.TypeSettingsChanged, a.handleSettingsChanged)
	events.Subscribe(event.TypeExportStarted, a.handleExportStarted)
	events.Subscribe(event.TypeExportFinished, a.handleExportFinished)

	a.registerAppCommands()
	a.editorAPI = newEditorAPI(a)
	if err := registerPlugins(a.pluginManager, opts.AutosaveInterval); err != nil {
		logger.Warnf("App: %v", err)
	}
	a.pluginManager.InitializePlugins(a.editorAPI)

	a.refreshStatus()
	return a, nil
}

// Run starts the event loop and blocks until the user quits or ctx is
// cancelled. Exports still running on exit are cancelled and awaited.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	go func() {
		select {
		case <-ctx.Done():
			if err := a.tuiManager.PostEvent(tcell.NewEventInterrupt(ctx.Err())); err != nil {
				logger.Warnf("App: failed to post interrupt: %v", err)
			}
		case <-a.ctx.Done():
		}
	}()

	a.session.Events().Dispatch(event.TypeAppReady, nil)
	a.statusBar.SetTemporaryMessage(WelcomeMessage)
	a.draw()

	for !a.quit {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			break
		}
		if a.handleEvent(ev) {
			a.draw()
		}
	}

	a.session.Events().Dispatch(event.TypeAppQuit, nil)
	logger.Infof("Exiting application.")
	return nil
}

// close stops the plugins, cancels and awaits running exports, then
// releases the screen.
func (a *App) close() {
	a.pluginManager.ShutdownPlugins()
	a.cancel()
	a.jobs.Wait()
	a.tuiManager.Close()
}

// handleEvent processes one tcell event and reports whether a redraw is needed.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		return true
	case *tcell.EventKey:
		if a.cmdActive {
			return a.handleCommandKey(ev)
		}
		return a.handleKey(ev)
	case *exportDoneEvent:
		a.session.FinishExport(ev.result)
		return true
	case *loopFuncEvent:
		ev.fn()
		return true
	case *tcell.EventInterrupt:
		logger.Debugf("App: interrupted: %v", ev.Data())
		a.quit = true
	}
	return false
}

// handleKey applies the action bound to ev.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	ae := a.inputProcessor.ProcessEvent(ev)
	text := a.session.Text()
	width, _ := a.tuiManager.Size()

	switch ae.Action {
	case input.ActionQuit:
		a.quit = true
		return false
	case input.ActionSave:
		if err := a.save(); err != nil {
			a.statusBar.SetErrorMessage("Export unavailable: %v", err)
		}
	case input.ActionWordCount:
		a.executeCommand(wordcount.CommandName)
	case input.ActionCommand:
		a.openCommandLine()

	case input.ActionUndo:
		if !a.session.Undo() {
			a.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionRedo:
		if !a.session.Redo() {
			a.statusBar.SetTemporaryMessage("Nothing to redo")
		}
	case input.ActionErase:
		a.session.Erase()
		a.textArea.Cursor = 0
	case input.ActionUpperCase:
		a.session.ToUpper()
		a.textArea.Clamp(a.session.Text())
	case input.ActionLowerCase:
		a.session.ToLower()
		a.textArea.Clamp(a.session.Text())

	case input.ActionCopy:
		if err := a.session.Copy(); err != nil {
			a.statusBar.SetErrorMessage("Copy failed: %v", err)
		} else {
			a.statusBar.SetTemporaryMessage("Copied %d characters", a.session.Stats().Characters)
		}
	case input.ActionPaste:
		cursor, ok := a.session.Paste(a.textArea.Cursor)
		if !ok {
			a.statusBar.SetTemporaryMessage("Clipboard is empty")
		}
		a.textArea.Cursor = cursor

	case input.ActionFontSmaller:
		a.session.AdjustFontSize(-1)
	case input.ActionFontLarger:
		a.session.AdjustFontSize(1)
	case input.ActionNextFontFamily:
		a.session.CycleFontFamily()

	case input.ActionMoveUp:
		a.textArea.MoveVertical(text, width, -1)
	case input.ActionMoveDown:
		a.textArea.MoveVertical(text, width, 1)
	case input.ActionMoveLeft:
		a.textArea.MoveLeft(text)
	case input.ActionMoveRight:
		a.textArea.MoveRight(text)
	case input.ActionMoveHome:
		a.textArea.MoveHome(text, width)
	case input.ActionMoveEnd:
		a.textArea.MoveEnd(text, width)

	case input.ActionInsertRune:
		a.session.SetText(a.textArea.Insert(text, string(ae.Rune)))
	case input.ActionInsertNewLine:
		a.session.SetText(a.textArea.Insert(text, "\n"))
	case input.ActionDeleteCharBackward:
		a.session.SetText(a.textArea.Backspace(text))
	case input.ActionDeleteCharForward:
		a.session.SetText(a.textArea.DeleteForward(text))

	default:
		return false
	}
	return true
}

// save starts an export and hands its result back to the event loop.
func (a *App) save() error {
	job, err := a.session.Save(a.ctx)
	if err != nil {
		return err
	}
	a.jobs.Add(1)
	go func() {
		defer a.jobs.Done()
		res := job.Wait()
		if err := a.tuiManager.PostEvent(newExportDoneEvent(res)); err != nil {
			logger.Errorf("App: dropped result of export %s: %v", res.JobID, err)
		}
	}()
	return nil
}
