package app

import (
	"fmt"
	"time"

	"github.com/bethropolis/wordpad/internal/logger"
	"github.com/bethropolis/wordpad/internal/plugin"
	"github.com/bethropolis/wordpad/plugins/autosave"
	"github.com/bethropolis/wordpad/plugins/wordcount"
)

// registerPlugins registers the built-in plugins with the manager.
func registerPlugins(pm *plugin.Manager, autosaveInterval time.Duration) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	plugins := []plugin.Plugin{
		wordcount.New(),
		autosave.New(autosaveInterval),
	}

	var finalErr error
	for _, p := range plugins {
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err)
			logger.Errorf("%v", wrappedErr)
			if finalErr == nil {
				finalErr = wrappedErr
			}
		}
	}
	return finalErr
}
