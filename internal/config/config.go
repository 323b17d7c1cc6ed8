// Package config loads the editor configuration from defaults, an optional
// TOML file and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/wordpad/internal/core/history"
	"github.com/bethropolis/wordpad/internal/export"
	"github.com/bethropolis/wordpad/internal/logger"
	"github.com/bethropolis/wordpad/internal/presentation"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config `toml:"logger"`
	Editor  EditorConfig  `toml:"editor"`
	History HistoryConfig `toml:"history"`
	Export  ExportConfig  `toml:"export"`
}

// EditorConfig holds the presentation defaults and editing behaviour.
type EditorConfig struct {
	FontSize        int    `toml:"font_size"`
	FontColor       string `toml:"font_color"`
	BackgroundColor string `toml:"background_color"`
	FontFamily      string `toml:"font_family"`
	SystemClipboard bool   `toml:"system_clipboard"`
}

// HistoryConfig tunes the undo/redo store.
type HistoryConfig struct {
	MaxEntries        int  `toml:"max_entries"`
	ClearRedoOnRecord bool `toml:"clear_redo_on_record"`
}

// ExportConfig controls where exported documents go.
type ExportConfig struct {
	Dir      string `toml:"dir"`
	Filename string `toml:"filename"`

	// AutosaveInterval re-exports a changed buffer periodically; 0 disables.
	AutosaveInterval time.Duration `toml:"autosave_interval"`
}

// NewDefaultConfig creates a Config with default values.
func NewDefaultConfig() *Config {
	p := presentation.Default()
	h := history.DefaultOptions()
	lc := logger.NewConfig()
	lc.LogFilePath = DefaultLogFileName
	return &Config{
		Logger: lc,
		Editor: EditorConfig{
			FontSize:        p.FontSize,
			FontColor:       p.FontColor,
			BackgroundColor: p.BackgroundColor,
			FontFamily:      p.FontFamily,
			SystemClipboard: SystemClipboard,
		},
		History: HistoryConfig{
			MaxEntries:        h.MaxEntries,
			ClearRedoOnRecord: h.ClearRedoOnRecord,
		},
		Export: ExportConfig{
			Dir:      DefaultExportDir,
			Filename: export.DefaultFilename,
		},
	}
}

// Presentation returns the editor's presentation settings.
func (c *Config) Presentation() presentation.Settings {
	return presentation.Settings{
		FontSize:        c.Editor.FontSize,
		FontColor:       c.Editor.FontColor,
		BackgroundColor: c.Editor.BackgroundColor,
		FontFamily:      c.Editor.FontFamily,
	}
}

// HistoryOptions returns the options for the history store.
func (c *Config) HistoryOptions() history.Options {
	return history.Options{
		MaxEntries:        c.History.MaxEntries,
		ClearRedoOnRecord: c.History.ClearRedoOnRecord,
	}
}

// DefaultPath returns the config file location under the user config dir,
// or "" when that directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath on top of cfg. A missing file is not an
// error. Unknown keys are returned so the caller can warn once logging is up.
func loadFromFile(filePath string, cfg *Config) ([]string, error) {
	if _, err := os.Stat(filePath); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}

	var undecoded []string
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate resets invalid values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	p := c.Presentation().Normalize()
	c.Editor.FontSize = p.FontSize
	c.Editor.FontColor = p.FontColor
	c.Editor.BackgroundColor = p.BackgroundColor
	c.Editor.FontFamily = p.FontFamily

	if c.History.MaxEntries <= 0 {
		c.History.MaxEntries = defaults.History.MaxEntries
	}

	if c.Export.Dir == "" {
		c.Export.Dir = defaults.Export.Dir
	}
	if export.ValidateFilename(c.Export.Filename) != nil {
		c.Export.Filename = defaults.Export.Filename
	}
	if c.Export.AutosaveInterval < 0 {
		c.Export.AutosaveInterval = 0
	}

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Result is what Load produced besides the config itself.
type Result struct {
	Path      string   // config file consulted, "" if none
	Undecoded []string // unrecognised keys in the file
}

// Load builds the configuration: defaults, then the TOML file at
// configFilePath (DefaultPath when empty), then flag overrides, then
// validation. A parse error is returned together with a usable config built
// from defaults and flags.
func Load(configFilePath string, flags *Flags) (*Config, Result, error) {
	cfg := NewDefaultConfig()
	res := Result{Path: configFilePath}
	if res.Path == "" {
		res.Path = DefaultPath()
	}

	var loadErr error
	if res.Path != "" {
		fileCfg := NewDefaultConfig()
		undecoded, err := loadFromFile(res.Path, fileCfg)
		if err != nil {
			loadErr = err
		} else {
			cfg = fileCfg
			res.Undecoded = undecoded
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, res, loadErr
}
