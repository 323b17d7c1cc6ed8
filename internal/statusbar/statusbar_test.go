package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/wordpad/internal/core/text"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBar(now *time.Time) *StatusBar {
	sb := New(DefaultConfig(tcell.StyleDefault.Reverse(true), 4*time.Second))
	sb.now = func() time.Time { return *now }
	return sb
}

func TestDefaultText(t *testing.T) {
	now := time.Now()
	sb := newBar(&now)
	sb.SetFileName("word.docx")
	sb.SetStats(text.Count("hello world\nagain"))
	sb.SetHistory(2, 1)

	line, style := sb.Text()
	assert.Equal(t, "word.docx -- Words: 3, Chars: 17, Lines: 2 -- Undo: 2, Redo: 1", line)
	assert.Equal(t, sb.config.StyleDefault, style)
}

func TestNoName(t *testing.T) {
	now := time.Now()
	line, _ := newBar(&now).Text()
	assert.True(t, strings.HasPrefix(line, "[No Name]"))
}

func TestTemporaryMessageExpires(t *testing.T) {
	now := time.Now()
	sb := newBar(&now)
	sb.SetTemporaryMessage("Saved %s", "word.docx")

	line, style := sb.Text()
	assert.Equal(t, "Saved word.docx", line)
	assert.Equal(t, sb.config.StyleMessage, style)

	now = now.Add(5 * time.Second)
	line, _ = sb.Text()
	assert.NotEqual(t, "Saved word.docx", line)
}

func TestErrorMessageStyle(t *testing.T) {
	now := time.Now()
	sb := newBar(&now)
	sb.SetErrorMessage("Export failed")

	line, style := sb.Text()
	assert.Equal(t, "Export failed", line)
	assert.Equal(t, sb.config.StyleError, style)

	sb.ResetTemporaryMessage()
	_, style = sb.Text()
	assert.Equal(t, sb.config.StyleDefault, style)
}

func TestDrawClipsToWidth(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(12, 2)

	now := time.Now()
	sb := newBar(&now)
	sb.SetTemporaryMessage("a long message that does not fit")
	sb.Draw(s, 1, 12)
	s.Show()

	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteString(string(cells[w+x].Runes))
	}
	assert.Equal(t, "a long messa", b.String())
}

func TestCommandLineOverridesMessages(t *testing.T) {
	now := time.Now()
	sb := newBar(&now)
	sb.SetErrorMessage("boom")

	sb.SetCommandLine("font bg")
	line, style := sb.Text()
	assert.Equal(t, ":font bg", line)
	assert.Equal(t, sb.config.StyleDefault, style)

	sb.ClearCommandLine()
	line, _ = sb.Text()
	assert.Equal(t, "boom", line)
}
