package main

import (
	"context"
	"flag"
	"fmt"
	stlog "log" // standard log for fatal errors before the logger is ready
	"os"
	"os/signal"
	"syscall"

	"github.com/bethropolis/wordpad/internal/app"
	"github.com/bethropolis/wordpad/internal/config"
	"github.com/bethropolis/wordpad/internal/core/clipboard"
	"github.com/bethropolis/wordpad/internal/export"
	"github.com/bethropolis/wordpad/internal/logger"
	"github.com/bethropolis/wordpad/internal/session"
)

var version = "dev"

func main() {
	flags := config.NewFlags(flag.CommandLine)
	if _, err := flags.Parse(os.Args[1:]); err != nil {
		stlog.Fatalf("Failed to parse flags: %v", err)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	cfg, res, cfgErr := config.Load(*flags.ConfigFilePath, flags)

	logOut, closeLog, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
	}
	defer closeLog()
	logger.Init(cfg.Logger, logOut)

	logger.Infof("Starting %s %s...", config.AppName, version)
	if cfgErr != nil {
		logger.Warnf("Config: %v (continuing with defaults and flags)", cfgErr)
	}
	if len(res.Undecoded) > 0 {
		logger.Warnf("Config: unknown keys in '%s': %v", res.Path, res.Undecoded)
	}
	logger.Debugf("Config: file=%s export=%s/%s", res.Path, cfg.Export.Dir, cfg.Export.Filename)

	exporter, err := export.NewExporter(export.DocxEncoder{}, export.FileDeliverer{Dir: cfg.Export.Dir}, cfg.Export.Filename)
	if err != nil {
		logger.Errorf("Error creating exporter: %v", err)
		os.Exit(1)
	}

	clip := clipboard.NewManager(cfg.Editor.SystemClipboard)
	if cfg.Editor.SystemClipboard && !clip.UsesSystem() {
		logger.Warnf("System clipboard unavailable, using internal register")
	}

	hist := cfg.HistoryOptions()
	sess := session.New(session.Options{
		History:   &hist,
		Settings:  cfg.Presentation(),
		Clipboard: clip,
		Exporter:  exporter,
	})

	wordpad, err := app.New(app.Options{
		Session:          sess,
		ExportName:       exporter.Filename(),
		MessageTimeout:   config.MessageTimeout,
		AutosaveInterval: cfg.Export.AutosaveInterval,
	})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := wordpad.Run(ctx); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}
