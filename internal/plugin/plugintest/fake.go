// Package plugintest provides an in-memory EditorAPI for plugin tests.
package plugintest

import (
	"fmt"
	"sync"

	"github.com/bethropolis/wordpad/internal/core/text"
	"github.com/bethropolis/wordpad/internal/event"
	"github.com/bethropolis/wordpad/internal/plugin"
)

var _ plugin.EditorAPI = (*FakeAPI)(nil)

// FakeAPI records what plugins do. Functions passed to RunOnLoop are queued
// until the test calls RunPending, which stands in for the event loop.
type FakeAPI struct {
	Buffer   string
	Events   *event.Manager
	Commands map[string]plugin.CommandFunc
	Messages []string
	Saves    int
	SaveErr  error

	mu      sync.Mutex
	pending []func()
}

// New creates a FakeAPI with its own event manager.
func New() *FakeAPI {
	return &FakeAPI{
		Events:   event.NewManager(),
		Commands: make(map[string]plugin.CommandFunc),
	}
}

func (f *FakeAPI) Text() string      { return f.Buffer }
func (f *FakeAPI) Stats() text.Stats { return text.Count(f.Buffer) }

func (f *FakeAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	f.Events.Subscribe(eventType, handler)
}

func (f *FakeAPI) RegisterCommand(name string, cmd plugin.CommandFunc) error {
	if _, exists := f.Commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	f.Commands[name] = cmd
	return nil
}

func (f *FakeAPI) Save() error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.Saves++
	f.Events.Dispatch(event.TypeExportStarted, event.ExportStartedData{})
	return nil
}

func (f *FakeAPI) SetStatusMessage(format string, args ...interface{}) {
	f.Messages = append(f.Messages, fmt.Sprintf(format, args...))
}

func (f *FakeAPI) RunOnLoop(fn func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, fn)
	return nil
}

// Pending returns how many functions wait for RunPending.
func (f *FakeAPI) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending)
}

// RunPending runs the queued functions in order.
func (f *FakeAPI) RunPending() {
	f.mu.Lock()
	fns := f.pending
	f.pending = nil
	f.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
