package input

// Action represents an operation to be performed by the editor.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown   Action = iota // Default/invalid action
	ActionQuit                    // Refuses while the buffer has unsaved changes
	ActionForceQuit               // Quit without checking modified status
	ActionSave

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line

	// --- Text Manipulation ---
	ActionInsertRune         // Requires Rune argument
	ActionInsertNewLine      // Enter
	ActionDeleteCharForward  // Delete key
	ActionDeleteCharBackward // Backspace key
	ActionCopyLine
	ActionPaste

	// --- History ---
	ActionUndo
	ActionRedo
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionQuit:               "Quit",
	ActionForceQuit:          "ForceQuit",
	ActionSave:               "Save",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMovePageUp:         "MovePageUp",
	ActionMovePageDown:       "MovePageDown",
	ActionMoveHome:           "MoveHome",
	ActionMoveEnd:            "MoveEnd",
	ActionInsertRune:         "InsertRune",
	ActionInsertNewLine:      "InsertNewLine",
	ActionDeleteCharForward:  "DeleteCharForward",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionCopyLine:           "CopyLine",
	ActionPaste:              "Paste",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ActionEvent is a decoded key press. Rune is set for ActionInsertRune.
type ActionEvent struct {
	Action Action
	Rune   rune
}
