package core

import (
	"unicode/utf8"

	"github.com/bethropolis/actionpad/internal/edit"
	"github.com/bethropolis/actionpad/internal/event"
	"github.com/bethropolis/actionpad/internal/history"
	"github.com/bethropolis/actionpad/internal/logger"
	"github.com/bethropolis/actionpad/internal/types"
	"github.com/bethropolis/actionpad/internal/utils"
)

// record hands a to the history and announces the buffer change.
func (e *Editor) record(a history.Action) error {
	err := e.history.Record(a)
	e.bufferModified()
	return err
}

func (e *Editor) bufferModified() {
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Cursor: e.Cursor})
	}
}

// InsertRune inserts r at the cursor.
func (e *Editor) InsertRune(r rune) error {
	if r == '\n' {
		return e.InsertNewLine()
	}
	runeBytes := make([]byte, utf8.RuneLen(r))
	utf8.EncodeRune(runeBytes, r)
	return e.InsertText(runeBytes)
}

// InsertText inserts text at the cursor as one undo step.
func (e *Editor) InsertText(text []byte) error {
	if len(text) == 0 {
		return nil
	}
	return e.record(edit.NewInsertText(e, e.Cursor, text, e.Cursor))
}

// InsertNewLine splits the line at the cursor. With auto-indent the new
// line repeats the current line's leading whitespace; newline and indent
// undo together.
func (e *Editor) InsertNewLine() error {
	cursor := e.Cursor
	newline := edit.NewInsertText(e, cursor, []byte("\n"), cursor)
	if !e.autoIndent {
		return e.record(newline)
	}

	line, err := e.buffer.Line(cursor.Line)
	if err != nil {
		return e.record(newline)
	}
	indent := utils.LeadingWhitespace(line[:utils.RuneIndexToByteOffset(line, min(cursor.Col, utf8.RuneCount(line)))])
	if len(indent) == 0 {
		return e.record(newline)
	}

	batch := history.NewBatch("Insert newline",
		newline,
		edit.NewInsertText(e, types.Position{Line: cursor.Line + 1}, indent, cursor),
	)
	return e.record(batch)
}

// DeleteBackward deletes the rune before the cursor, joining with the
// previous line at column 0.
func (e *Editor) DeleteBackward() error {
	start := e.Cursor
	switch {
	case start.Col > 0:
		start.Col--
	case start.Line > 0:
		start.Line--
		start.Col = e.lineLen(start.Line)
	default:
		return nil
	}
	return e.record(edit.NewDeleteText(e, start, e.Cursor, e.Cursor))
}

// DeleteForward deletes the rune under the cursor, joining with the next
// line at end of line.
func (e *Editor) DeleteForward() error {
	end := e.Cursor
	switch {
	case end.Col < e.lineLen(end.Line):
		end.Col++
	case end.Line < e.buffer.LineCount()-1:
		end.Line++
		end.Col = 0
	default:
		return nil
	}
	return e.record(edit.NewDeleteText(e, e.Cursor, end, e.Cursor))
}

// CopyLine copies the current line, with a trailing newline, to the
// clipboard.
func (e *Editor) CopyLine() error {
	line, err := e.buffer.Line(e.Cursor.Line)
	if err != nil {
		return err
	}
	text := make([]byte, 0, len(line)+1)
	text = append(text, line...)
	text = append(text, '\n')
	e.clipboard.Write(text)
	logger.Debugf("Editor: Copied %d bytes", len(text))
	return nil
}

// Paste inserts the clipboard contents at the cursor. It reports false when
// the clipboard is empty.
func (e *Editor) Paste() (bool, error) {
	text, err := e.clipboard.Read()
	if err != nil {
		return false, err
	}
	if len(text) == 0 {
		return false, nil
	}
	if err := e.InsertText(text); err != nil {
		return false, err
	}
	logger.Debugf("Editor: Pasted %d bytes", len(text))
	return true, nil
}

// Undo reverts the most recent edit.
func (e *Editor) Undo() (bool, error) {
	undone, err := e.history.Undo()
	if undone {
		e.bufferModified()
	}
	return undone, err
}

// Redo reapplies the most recently undone edit.
func (e *Editor) Redo() (bool, error) {
	redone, err := e.history.Redo()
	if redone {
		e.bufferModified()
	}
	return redone, err
}
