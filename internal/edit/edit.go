// Package edit implements history actions that change buffer text.
package edit

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/actionpad/internal/buffer"
	"github.com/bethropolis/actionpad/internal/history"
	"github.com/bethropolis/actionpad/internal/types"
)

// Target is what edit actions operate on.
type Target interface {
	GetBuffer() buffer.Buffer
	SetCursor(types.Position)
}

// EndOf returns the position just after text when inserted at pos.
func EndOf(pos types.Position, text []byte) types.Position {
	numLines := bytes.Count(text, []byte("\n"))
	if numLines == 0 {
		return types.Position{Line: pos.Line, Col: pos.Col + utf8.RuneCount(text)}
	}
	lastLine := text[bytes.LastIndexByte(text, '\n')+1:]
	return types.Position{Line: pos.Line + numLines, Col: utf8.RuneCount(lastLine)}
}

// InsertText inserts Text at Pos.
type InsertText struct {
	target       Target
	Pos          types.Position
	Text         []byte
	CursorBefore types.Position
}

// NewInsertText creates an insert action. cursorBefore is restored on revert.
func NewInsertText(target Target, pos types.Position, text []byte, cursorBefore types.Position) *InsertText {
	return &InsertText{
		target:       target,
		Pos:          pos,
		Text:         append([]byte(nil), text...),
		CursorBefore: cursorBefore,
	}
}

// Apply inserts the text and leaves the cursor after it.
func (a *InsertText) Apply() error {
	if err := a.target.GetBuffer().Insert(a.Pos, a.Text); err != nil {
		return fmt.Errorf("insert at %v: %w", a.Pos, err)
	}
	a.target.SetCursor(EndOf(a.Pos, a.Text))
	return nil
}

// Revert removes the inserted text and restores the cursor.
func (a *InsertText) Revert() error {
	if err := a.target.GetBuffer().Delete(a.Pos, EndOf(a.Pos, a.Text)); err != nil {
		return fmt.Errorf("undo insert at %v: %w", a.Pos, err)
	}
	a.target.SetCursor(a.CursorBefore)
	return nil
}

func (a *InsertText) String() string {
	switch string(a.Text) {
	case "\n":
		return "Insert newline"
	case "\t":
		return "Insert tab"
	}
	if n := utf8.RuneCount(a.Text); n > 20 {
		return fmt.Sprintf("Insert %d characters", n)
	}
	return fmt.Sprintf("Insert %q", a.Text)
}

// DeleteText removes the range [Start, End).
type DeleteText struct {
	target       Target
	Start        types.Position
	End          types.Position
	CursorBefore types.Position
	deleted      []byte
}

// NewDeleteText creates a delete action. cursorBefore is restored on revert.
func NewDeleteText(target Target, start, end types.Position, cursorBefore types.Position) *DeleteText {
	start, end = types.Ordered(start, end)
	return &DeleteText{
		target:       target,
		Start:        start,
		End:          end,
		CursorBefore: cursorBefore,
	}
}

// Apply captures the text in the range, deletes it and leaves the cursor
// at the start of the range.
func (a *DeleteText) Apply() error {
	buf := a.target.GetBuffer()
	text, err := buf.TextRange(a.Start, a.End)
	if err != nil {
		return fmt.Errorf("read range %v-%v: %w", a.Start, a.End, err)
	}
	if err := buf.Delete(a.Start, a.End); err != nil {
		return fmt.Errorf("delete range %v-%v: %w", a.Start, a.End, err)
	}
	a.deleted = text
	a.target.SetCursor(a.Start)
	return nil
}

// Revert re-inserts the deleted text and restores the cursor.
func (a *DeleteText) Revert() error {
	if err := a.target.GetBuffer().Insert(a.Start, a.deleted); err != nil {
		return fmt.Errorf("undo delete at %v: %w", a.Start, err)
	}
	a.target.SetCursor(a.CursorBefore)
	return nil
}

// Deleted returns the text removed by the last Apply.
func (a *DeleteText) Deleted() []byte {
	return a.deleted
}

func (a *DeleteText) String() string {
	if n := utf8.RuneCount(a.deleted); n != 1 {
		return fmt.Sprintf("Delete %d characters", n)
	}
	return "Delete"
}

var (
	_ history.Action = (*InsertText)(nil)
	_ history.Action = (*DeleteText)(nil)
)
