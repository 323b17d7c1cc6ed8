package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/wordpad/internal/logger"
	"github.com/bethropolis/wordpad/internal/plugin"
	"github.com/bethropolis/wordpad/internal/presentation"
	"github.com/gdamore/tcell/v2"
)

// registerCommand adds a named command. Names are unique.
func (a *App) registerCommand(name string, cmd plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := a.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	a.commands[name] = cmd
	logger.DebugTagf("plugin", "App: registered command '%s'", name)
	return nil
}

// executeCommand runs a registered command and reports failures on the
// status line.
func (a *App) executeCommand(name string, args ...string) {
	cmd, ok := a.commands[name]
	if !ok {
		a.statusBar.SetErrorMessage("Unknown command: %s", name)
		return
	}
	if err := cmd(args); err != nil {
		logger.Warnf("App: command '%s' failed: %v", name, err)
		a.statusBar.SetErrorMessage("%s: %v", name, err)
	}
}

// runCommandLine splits line on whitespace and runs it as a command.
func (a *App) runCommandLine(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	logger.DebugTagf("plugin", "App: command line %q", line)
	a.executeCommand(fields[0], fields[1:]...)
}

func (a *App) openCommandLine() {
	a.cmdActive = true
	a.cmdLine = a.cmdLine[:0]
	a.statusBar.SetCommandLine("")
}

func (a *App) closeCommandLine() {
	a.cmdActive = false
	a.statusBar.ClearCommandLine()
}

// handleCommandKey edits the command line. Enter runs it and Esc drops it.
func (a *App) handleCommandKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.closeCommandLine()
	case tcell.KeyEnter:
		line := string(a.cmdLine)
		a.closeCommandLine()
		a.runCommandLine(line)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.cmdLine) == 0 {
			a.closeCommandLine()
			break
		}
		a.cmdLine = a.cmdLine[:len(a.cmdLine)-1]
		a.statusBar.SetCommandLine(string(a.cmdLine))
	case tcell.KeyRune:
		a.cmdLine = append(a.cmdLine, ev.Rune())
		a.statusBar.SetCommandLine(string(a.cmdLine))
	default:
		return false
	}
	return true
}

// fontCommand shows the presentation settings, or changes one of them:
//
//	font size N
//	font color #rrggbb
//	font bg #rrggbb
//	font family NAME
func (a *App) fontCommand(args []string) error {
	if len(args) == 0 {
		a.statusBar.SetTemporaryMessage("%s", a.session.Settings())
		return nil
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: font size|color|bg|family VALUE")
	}

	p := a.session.Settings()
	value := strings.Join(args[1:], " ")
	switch strings.ToLower(args[0]) {
	case "size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid size %q", value)
		}
		p = p.WithFontSize(n)
	case "color", "fg":
		c, err := presentation.ParseColor(value)
		if err != nil {
			return err
		}
		p.FontColor = c.Hex()
	case "bg", "background":
		c, err := presentation.ParseColor(value)
		if err != nil {
			return err
		}
		p.BackgroundColor = c.Hex()
	case "family":
		if !presentation.IsFontFamily(value) {
			return fmt.Errorf("unknown font family %q", value)
		}
		p.FontFamily = value
	default:
		return fmt.Errorf("unknown setting %q", args[0])
	}

	a.session.SetSettings(p)
	a.statusBar.SetTemporaryMessage("%s", a.session.Settings())
	return nil
}

// registerAppCommands registers the built-in commands.
func (a *App) registerAppCommands() {
	builtins := map[string]plugin.CommandFunc{
		"save": func([]string) error { return a.save() },
		"font": a.fontCommand,
	}
	for name, cmd := range builtins {
		if err := a.registerCommand(name, cmd); err != nil {
			logger.Warnf("Failed to register '%s' command: %v", name, err)
		}
	}
}
