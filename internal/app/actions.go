package app

import (
	"github.com/bethropolis/actionpad/internal/input"
	"github.com/bethropolis/actionpad/internal/logger"
)

// handleAction executes an editor action and reports whether the screen
// needs a redraw.
func (a *App) handleAction(actionEvent input.ActionEvent) bool {
	logger.DebugTagf("input", "App: action %s", actionEvent.Action)

	if actionEvent.Action != input.ActionQuit {
		a.forceQuitPending = false
	}

	switch actionEvent.Action {
	case input.ActionQuit:
		if a.editor.GetBuffer().IsModified() && !a.forceQuitPending {
			a.statusBar.SetTemporaryMessage("Unsaved changes! Press ESC again or Ctrl+Q to force quit.")
			a.forceQuitPending = true
			return true
		}
		a.signalQuit()
		return false
	case input.ActionForceQuit:
		a.signalQuit()
		return false

	case input.ActionSave:
		if err := a.editor.Save(); err != nil {
			a.statusBar.SetTemporaryMessage("Save FAILED: %v", err)
		} else {
			a.statusBar.SetTemporaryMessage("Buffer saved to %s", a.editor.GetBuffer().FilePath())
		}

	case input.ActionMoveUp:
		a.editor.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		a.editor.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		a.editor.MoveCursor(0, -1)
	case input.ActionMoveRight:
		a.editor.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		a.editor.PageMove(-1)
	case input.ActionMovePageDown:
		a.editor.PageMove(1)
	case input.ActionMoveHome:
		a.editor.MoveHome()
	case input.ActionMoveEnd:
		a.editor.MoveEnd()

	case input.ActionInsertRune:
		a.reportEditError("Insert", a.editor.InsertRune(actionEvent.Rune))
	case input.ActionInsertNewLine:
		a.reportEditError("Newline", a.editor.InsertNewLine())
	case input.ActionDeleteCharBackward:
		a.reportEditError("Delete", a.editor.DeleteBackward())
	case input.ActionDeleteCharForward:
		a.reportEditError("Delete", a.editor.DeleteForward())

	case input.ActionCopyLine:
		if err := a.editor.CopyLine(); err != nil {
			a.reportEditError("Copy", err)
		} else {
			a.statusBar.SetTemporaryMessage("Line copied")
		}
	case input.ActionPaste:
		pasted, err := a.editor.Paste()
		switch {
		case err != nil:
			a.reportEditError("Paste", err)
		case !pasted:
			a.statusBar.SetTemporaryMessage("Clipboard empty")
		}

	case input.ActionUndo:
		undone, err := a.editor.Undo()
		switch {
		case err != nil:
			a.reportEditError("Undo", err)
		case !undone:
			a.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionRedo:
		redone, err := a.editor.Redo()
		switch {
		case err != nil:
			a.reportEditError("Redo", err)
		case !redone:
			a.statusBar.SetTemporaryMessage("Nothing to redo")
		}

	default:
		return false
	}
	return true
}

func (a *App) reportEditError(op string, err error) {
	if err == nil {
		return
	}
	logger.Errorf("App: %s failed: %v", op, err)
	a.statusBar.SetTemporaryMessage("%s failed: %v", op, err)
}
