// Package statusbar draws the bottom line: buffer statistics, history
// availability and short-lived messages such as export results.
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/wordpad/internal/core/text"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleMessage   tcell.Style
	StyleError     tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig derives the bar's styles from the chrome style of the
// current presentation settings.
func DefaultConfig(chrome tcell.Style, timeout time.Duration) Config {
	return Config{
		StyleDefault:   chrome,
		StyleMessage:   chrome.Bold(true),
		StyleError:     chrome.Bold(true).Foreground(tcell.ColorRed),
		MessageTimeout: timeout,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	fileName string
	stats    text.Stats
	undo     int
	redo     int

	message     string
	messageErr  bool
	messageTime time.Time

	// commandLine replaces every other text while a command is typed.
	commandLine    string
	commandLineSet bool

	now func() time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetConfig replaces the styles, e.g. after the colors changed.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// SetFileName sets the export target shown on the left.
func (sb *StatusBar) SetFileName(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.fileName = name
}

// SetStats updates the buffer statistics.
func (sb *StatusBar) SetStats(stats text.Stats) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.stats = stats
}

// SetHistory updates the number of undo and redo steps available.
func (sb *StatusBar) SetHistory(undo, redo int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.undo = undo
	sb.redo = redo
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.setMessage(false, format, args...)
}

// SetErrorMessage displays a message in the error style.
func (sb *StatusBar) SetErrorMessage(format string, args ...interface{}) {
	sb.setMessage(true, format, args...)
}

func (sb *StatusBar) setMessage(isErr bool, format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.message = fmt.Sprintf(format, args...)
	sb.messageErr = isErr
	sb.messageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.message = ""
	sb.messageTime = time.Time{}
}

// SetCommandLine shows the command being typed, prefixed with ':'.
func (sb *StatusBar) SetCommandLine(cmd string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.commandLine = cmd
	sb.commandLineSet = true
}

// ClearCommandLine goes back to statistics and messages.
func (sb *StatusBar) ClearCommandLine() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.commandLine = ""
	sb.commandLineSet = false
}

// Text returns the line the bar would draw now, along with its style.
func (sb *StatusBar) Text() (string, tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.commandLineSet {
		return ":" + sb.commandLine, sb.config.StyleDefault
	}

	if !sb.messageTime.IsZero() {
		if sb.now().Sub(sb.messageTime) <= sb.config.MessageTimeout {
			if sb.messageErr {
				return sb.message, sb.config.StyleError
			}
			return sb.message, sb.config.StyleMessage
		}
		sb.message = ""
		sb.messageTime = time.Time{}
	}
	return sb.defaultText(), sb.config.StyleDefault
}

func (sb *StatusBar) defaultText() string {
	name := sb.fileName
	if name == "" {
		name = "[No Name]"
	}
	return fmt.Sprintf("%s -- Words: %d, Chars: %d, Lines: %d -- Undo: %d, Redo: %d",
		name, sb.stats.Words, sb.stats.Characters, sb.stats.Lines, sb.undo, sb.redo)
}

// Draw renders the status bar on row y.
func (sb *StatusBar) Draw(screen tcell.Screen, y, width int) {
	if width <= 0 {
		return
	}
	line, style := sb.Text()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(line)
	x := 0
	for gr.Next() {
		w := gr.Width()
		if x+w > width {
			break
		}
		runes := gr.Runes()
		var comb []rune
		if len(runes) > 1 {
			comb = runes[1:]
		}
		screen.SetContent(x, y, runes[0], comb, style)
		x += w
	}
}
