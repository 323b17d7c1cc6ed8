package autosave

import (
	"sync"
	"time"

	"github.com/bethropolis/wordpad/internal/event"
	"github.com/bethropolis/wordpad/internal/logger"
	"github.com/bethropolis/wordpad/internal/plugin"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

// AutoSave exports the buffer periodically while it has changes that were
// not exported yet.
type AutoSave struct {
	api      plugin.EditorAPI
	interval time.Duration

	// dirty is only touched on the event loop.
	dirty bool

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates the plugin. A non-positive interval leaves it disabled.
func New(interval time.Duration) *AutoSave {
	return &AutoSave{interval: interval}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Enabled reports whether the saver runs.
func (p *AutoSave) Enabled() bool {
	return p.interval > 0
}

// Initialize tracks buffer changes and starts the saver loop if enabled.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	logger.Infof("%s initialized. Enabled: %v, Interval: %v", p.Name(), p.Enabled(), p.interval)
	if !p.Enabled() {
		return nil
	}

	markDirty := func(event.Event) bool {
		p.dirty = true
		return false
	}
	api.SubscribeEvent(event.TypeBufferModified, markDirty)
	api.SubscribeEvent(event.TypeHistoryChanged, markDirty)
	api.SubscribeEvent(event.TypeExportStarted, func(event.Event) bool {
		p.dirty = false
		return false
	})
	api.SubscribeEvent(event.TypeExportFinished, func(e event.Event) bool {
		if data, ok := e.Data.(event.ExportFinishedData); ok && data.Err != nil {
			p.dirty = true
		}
		return false
	})

	p.stopChan = make(chan struct{})
	p.wg.Add(1)
	go p.saverLoop()
	return nil
}

// Shutdown signals the saver goroutine to stop and waits for it.
func (p *AutoSave) Shutdown() error {
	if p.stopChan != nil {
		close(p.stopChan)
		p.wg.Wait()
		p.stopChan = nil
		logger.Debugf("%s: Saver goroutine stopped.", p.Name())
	}
	return nil
}

func (p *AutoSave) saverLoop() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.api.RunOnLoop(p.saveIfModified); err != nil {
				logger.Warnf("%s: could not schedule save: %v", p.Name(), err)
			}
		case <-p.stopChan:
			return
		}
	}
}

// saveIfModified runs on the event loop.
func (p *AutoSave) saveIfModified() {
	if !p.dirty {
		logger.DebugTagf("autosave", "%s: Buffer not modified, skipping auto-save.", p.Name())
		return
	}
	logger.Infof("%s: Auto-saving modified buffer", p.Name())
	if err := p.api.Save(); err != nil {
		logger.Errorf("%s: Auto-save failed: %v", p.Name(), err)
	}
}
