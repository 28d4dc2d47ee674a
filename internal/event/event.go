package event

import (
	"github.com/bethropolis/actionpad/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Buffer and cursor
	TypeBufferModified // buffer content changed through an edit, undo or redo
	TypeBufferLoaded
	TypeBufferSaved
	TypeCursorMoved

	// TypeHistoryChanged fires after every record, undo, redo or clear.
	TypeHistoryChanged

	TypeKeyPressed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

// String names the type for log output.
func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeBufferLoaded:
		return "BufferLoaded"
	case TypeBufferSaved:
		return "BufferSaved"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeHistoryChanged:
		return "HistoryChanged"
	case TypeKeyPressed:
		return "KeyPressed"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData carries the cursor position after the change.
type BufferModifiedData struct {
	Cursor types.Position
}

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData contains info about the saved buffer.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// HistoryChangedData reports which history operation ran and the resulting
// stack depths.
type HistoryChangedData struct {
	Op        string // "record", "undo", "redo" or "clear"
	UndoCount int
	RedoCount int
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

type AppQuitData struct{}

type AppReadyData struct{}
