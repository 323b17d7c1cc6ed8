// Package input translates terminal key events into editor actions.
package input

// Action is a command or operation to be performed by the editor.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit
	ActionSave
	ActionCommand // open the command line

	// History and whole-buffer transforms
	ActionUndo
	ActionRedo
	ActionErase
	ActionUpperCase
	ActionLowerCase

	// Statistics
	ActionWordCount

	// Clipboard
	ActionCopy
	ActionPaste

	// Presentation
	ActionFontSmaller
	ActionFontLarger
	ActionNextFontFamily

	// Cursor movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd

	// Text entry
	ActionInsertRune
	ActionInsertNewLine
	ActionDeleteCharForward
	ActionDeleteCharBackward
)

// ActionEvent is a decoded key event.
type ActionEvent struct {
	Action Action
	Rune   rune // set for ActionInsertRune
}
