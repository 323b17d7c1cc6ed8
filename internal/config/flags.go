package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// Flags holds values parsed from command-line flags. Overrides are applied
// only for flags that were set on the command line.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	FontSize        *int
	FontColor       *string
	BackgroundColor *string
	FontFamily      *string
	SystemClipboard *bool
	HistoryMax      *int
	KeepRedo        *bool
	ExportDir       *string
	ExportName      *string
	Autosave        *time.Duration
}

// NewFlags defines the flags on fs.
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default <user config dir>/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error)")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr)")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of log tags to enable")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of log tags to disable")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to log")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to silence")
	f.FontSize = fs.Int("font-size", 0, "Font size in px")
	f.FontColor = fs.String("font-color", "", "Font color (#rrggbb)")
	f.BackgroundColor = fs.String("background", "", "Background color (#rrggbb)")
	f.FontFamily = fs.String("font-family", "", "Font family")
	f.SystemClipboard = fs.Bool("system-clipboard", false, "Use the system clipboard")
	f.HistoryMax = fs.Int("history-max", 0, "Maximum number of undo snapshots")
	f.KeepRedo = fs.Bool("keep-redo", false, "Keep redo history when typing after an undo")
	f.ExportDir = fs.String("export-dir", "", "Directory exported documents are written to")
	f.ExportName = fs.String("export-name", "", "Filename of exported documents")
	f.Autosave = fs.Duration("autosave", 0, "Export a changed buffer at this interval (0 disables)")
	return f
}

// Parse parses args and returns the remaining non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides updates cfg with the flags that were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "font-size":
			if *f.FontSize > 0 {
				cfg.Editor.FontSize = *f.FontSize
			}
		case "font-color":
			cfg.Editor.FontColor = *f.FontColor
		case "background":
			cfg.Editor.BackgroundColor = *f.BackgroundColor
		case "font-family":
			cfg.Editor.FontFamily = *f.FontFamily
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "history-max":
			if *f.HistoryMax > 0 {
				cfg.History.MaxEntries = *f.HistoryMax
			}
		case "keep-redo":
			cfg.History.ClearRedoOnRecord = !*f.KeepRedo
		case "export-dir":
			cfg.Export.Dir = *f.ExportDir
		case "export-name":
			cfg.Export.Filename = *f.ExportName
		case "autosave":
			cfg.Export.AutosaveInterval = *f.Autosave
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
