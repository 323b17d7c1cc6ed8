package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bethropolis/wordpad/internal/presentation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func newFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("wordpad", flag.ContinueOnError)
	f := NewFlags(fs)
	_, err := f.Parse(args)
	require.NoError(t, err)
	return f
}

func TestDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, presentation.Default(), cfg.Presentation())
	assert.Equal(t, 100, cfg.History.MaxEntries)
	assert.True(t, cfg.History.ClearRedoOnRecord)
	assert.Equal(t, "word.docx", cfg.Export.Filename)
	assert.Equal(t, DefaultLogFileName, cfg.Logger.LogFilePath)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, res, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Undecoded)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[logger]
level = "debug"
disabled_tags = ["event"]

[editor]
font_size = 20
font_color = "#FF0000"
font_family = "georgia"

[history]
max_entries = 5
clear_redo_on_record = false

[export]
dir = "/tmp/exports"
filename = "notes.docx"
autosave_interval = "90s"

[editor.unknown]
key = 1
`)
	cfg, res, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, res.Path)
	assert.NotEmpty(t, res.Undecoded)

	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"event"}, cfg.Logger.DisabledTags)
	assert.Equal(t, 20, cfg.Editor.FontSize)
	assert.Equal(t, "#ff0000", cfg.Editor.FontColor)
	assert.Equal(t, "#ffffff", cfg.Editor.BackgroundColor, "unset keys keep defaults")
	assert.Equal(t, "Georgia", cfg.Editor.FontFamily)
	assert.Equal(t, 5, cfg.History.MaxEntries)
	assert.False(t, cfg.History.ClearRedoOnRecord)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
	assert.Equal(t, "notes.docx", cfg.Export.Filename)
	assert.Equal(t, 90*time.Second, cfg.Export.AutosaveInterval)
}

func TestLoadInvalidValuesResetToDefaults(t *testing.T) {
	path := writeConfig(t, `
[editor]
font_size = -3
font_color = "red"
font_family = "Wingdings"

[history]
max_entries = 0

[export]
filename = "../escape.docx"
`)
	cfg, _, err := Load(path, nil)
	require.NoError(t, err)

	def := NewDefaultConfig()
	assert.Equal(t, def.Editor.FontSize, cfg.Editor.FontSize)
	assert.Equal(t, def.Editor.FontColor, cfg.Editor.FontColor)
	assert.Equal(t, def.Editor.FontFamily, cfg.Editor.FontFamily)
	assert.Equal(t, def.History.MaxEntries, cfg.History.MaxEntries)
	assert.Equal(t, def.Export.Filename, cfg.Export.Filename)
}

func TestLoadParseErrorStillReturnsConfig(t *testing.T) {
	path := writeConfig(t, "[editor\nfont_size = ")
	cfg, _, err := Load(path, newFlags(t, "-font-size", "30"))
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 30, cfg.Editor.FontSize)
}

func TestFlagOverrides(t *testing.T) {
	path := writeConfig(t, `
[editor]
font_size = 20
`)
	flags := newFlags(t,
		"-font-size", "24",
		"-background", "#000",
		"-keep-redo",
		"-history-max", "7",
		"-export-dir", "out",
		"-autosave", "2m",
		"-loglevel", "warn",
		"-log-tags", "history, export",
		"notes.txt",
	)
	cfg, _, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.Editor.FontSize)
	assert.Equal(t, "#000000", cfg.Editor.BackgroundColor)
	assert.False(t, cfg.History.ClearRedoOnRecord)
	assert.Equal(t, 7, cfg.History.MaxEntries)
	assert.Equal(t, "out", cfg.Export.Dir)
	assert.Equal(t, 2*time.Minute, cfg.Export.AutosaveInterval)
	assert.Equal(t, "warn", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"history", "export"}, cfg.Logger.EnabledTags)
}

func TestUnsetFlagsDoNotOverride(t *testing.T) {
	path := writeConfig(t, `
[editor]
system_clipboard = true
`)
	cfg, _, err := Load(path, newFlags(t))
	require.NoError(t, err)
	assert.True(t, cfg.Editor.SystemClipboard)
}

func TestHistoryOptions(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.History.MaxEntries = 9
	cfg.History.ClearRedoOnRecord = false

	opts := cfg.HistoryOptions()
	assert.Equal(t, 9, opts.MaxEntries)
	assert.False(t, opts.ClearRedoOnRecord)
}

func TestSplitCommaList(t *testing.T) {
	assert.Nil(t, splitCommaList(""))
	assert.Equal(t, []string{"a", "b"}, splitCommaList(" a, ,b "))
}
