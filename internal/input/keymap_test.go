package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionEvent{Action: ActionInsertRune, Rune: 'x'}},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModShift), ActionEvent{Action: ActionInsertRune, Rune: 'X'}},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), ActionEvent{Action: ActionUnknown}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionEvent{Action: ActionInsertRune, Rune: '\t'}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionEvent{Action: ActionInsertNewLine}},
		{"undo", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), ActionEvent{Action: ActionUndo}},
		{"redo", tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl), ActionEvent{Action: ActionRedo}},
		{"erase", tcell.NewEventKey(tcell.KeyCtrlE, 0, tcell.ModCtrl), ActionEvent{Action: ActionErase}},
		{"upper", tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModCtrl), ActionEvent{Action: ActionUpperCase}},
		{"lower", tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModCtrl), ActionEvent{Action: ActionLowerCase}},
		{"word count", tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl), ActionEvent{Action: ActionWordCount}},
		{"save", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), ActionEvent{Action: ActionSave}},
		{"command line", tcell.NewEventKey(tcell.KeyCtrlP, 0, tcell.ModCtrl), ActionEvent{Action: ActionCommand}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteCharBackward}},
		{"font larger", tcell.NewEventKey(tcell.KeyF3, 0, tcell.ModNone), ActionEvent{Action: ActionFontLarger}},
		{"unbound", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), ActionEvent{Action: ActionUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev))
		})
	}
}

func TestBind(t *testing.T) {
	p := NewInputProcessor()
	p.Bind(tcell.KeyF12, ActionSave)
	assert.Equal(t, ActionSave, p.ProcessEvent(tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone)).Action)
}
