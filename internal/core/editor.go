// Package core holds the editor state and turns user intents into recorded
// history actions.
package core

import (
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/actionpad/internal/buffer"
	"github.com/bethropolis/actionpad/internal/clipboard"
	"github.com/bethropolis/actionpad/internal/event"
	"github.com/bethropolis/actionpad/internal/history"
	"github.com/bethropolis/actionpad/internal/logger"
	"github.com/bethropolis/actionpad/internal/types"
	"github.com/bethropolis/actionpad/internal/utils"
)

// Options configures an Editor.
type Options struct {
	ScrollOff  int
	TabWidth   int
	AutoIndent bool
	History    history.Options
	Clipboard  *clipboard.Register
}

// Editor owns the buffer, cursor, viewport and undo history.
type Editor struct {
	buffer     buffer.Buffer
	Cursor     types.Position
	ViewportY  int // top visible line
	ViewportX  int // leftmost visible screen column, tabs expanded
	viewWidth  int // including the line-number gutter
	viewHeight int // excluding the status bar
	ScrollOff  int
	tabWidth   int
	autoIndent bool

	history      *history.Manager
	clipboard    *clipboard.Register
	eventManager *event.Manager
}

// NewEditor creates an editor over buf.
func NewEditor(buf buffer.Buffer, opts Options) *Editor {
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.New(false)
	}
	return &Editor{
		buffer:     buf,
		ScrollOff:  opts.ScrollOff,
		tabWidth:   opts.TabWidth,
		autoIndent: opts.AutoIndent,
		history:    history.NewManager(opts.History),
		clipboard:  clip,
	}
}

// SetEventManager sets the bus used for buffer, cursor and history events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
	e.history.SetEventManager(mgr)
}

// GetBuffer returns the edited buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// GetHistory returns the undo/redo manager.
func (e *Editor) GetHistory() *history.Manager {
	return e.history
}

// Lines returns the buffer lines for drawing.
func (e *Editor) Lines() [][]byte {
	return e.buffer.Lines()
}

func (e *Editor) GetCursor() types.Position {
	return e.Cursor
}

// SetCursor clamps pos into the buffer, moves the cursor there and scrolls
// it into view.
func (e *Editor) SetCursor(pos types.Position) {
	lineCount := e.buffer.LineCount()
	if pos.Line >= lineCount {
		pos.Line = lineCount - 1
	}
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if n := e.lineLen(pos.Line); pos.Col > n {
		pos.Col = n
	}

	moved := pos != e.Cursor
	e.Cursor = pos
	e.ScrollToCursor()
	if moved && e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: pos})
	}
}

// lineLen is the rune count of a line, 0 for an invalid index.
func (e *Editor) lineLen(line int) int {
	b, err := e.buffer.Line(line)
	if err != nil {
		return 0
	}
	return utf8.RuneCount(b)
}

// MoveCursor moves the cursor by the given delta.
func (e *Editor) MoveCursor(deltaLine, deltaCol int) {
	pos := e.Cursor
	pos.Line += deltaLine
	pos.Col += deltaCol
	if deltaCol < 0 && pos.Col < 0 && pos.Line > 0 && deltaLine == 0 {
		pos.Line--
		pos.Col = e.lineLen(pos.Line)
	} else if deltaCol > 0 && pos.Col > e.lineLen(pos.Line) && pos.Line < e.buffer.LineCount()-1 && deltaLine == 0 {
		pos.Line++
		pos.Col = 0
	}
	e.SetCursor(pos)
}

// PageMove moves the cursor by whole screens.
func (e *Editor) PageMove(deltaPages int) {
	if e.viewHeight <= 0 {
		return
	}
	e.MoveCursor(deltaPages*e.viewHeight, 0)
}

// MoveHome moves to the start of the line.
func (e *Editor) MoveHome() {
	e.SetCursor(types.Position{Line: e.Cursor.Line})
}

// MoveEnd moves to the end of the line.
func (e *Editor) MoveEnd() {
	e.SetCursor(types.Position{Line: e.Cursor.Line, Col: e.lineLen(e.Cursor.Line)})
}

// SetViewSize updates the terminal size. height includes the status bar.
func (e *Editor) SetViewSize(width, height int) {
	e.viewWidth = width
	e.viewHeight = height - 1
	if e.viewHeight < 1 {
		e.viewHeight = 1
	}
	e.ScrollToCursor()
}

// GetViewport returns the top line and leftmost column on screen.
func (e *Editor) GetViewport() (int, int) {
	return e.ViewportY, e.ViewportX
}

// ScrollToCursor adjusts the viewport so the cursor stays visible with
// ScrollOff lines of context.
func (e *Editor) ScrollToCursor() {
	if e.viewHeight <= 0 || e.viewWidth <= 0 {
		return
	}

	scrollOff := e.ScrollOff
	if scrollOff*2 >= e.viewHeight {
		scrollOff = (e.viewHeight - 1) / 2
	}

	if e.Cursor.Line < e.ViewportY+scrollOff {
		e.ViewportY = e.Cursor.Line - scrollOff
	} else if e.Cursor.Line >= e.ViewportY+e.viewHeight-scrollOff {
		e.ViewportY = e.Cursor.Line - e.viewHeight + scrollOff + 1
	}
	// Don't scroll past the last line.
	if maxTop := e.buffer.LineCount() - e.viewHeight; e.ViewportY > maxTop {
		e.ViewportY = maxTop
	}
	if e.ViewportY < 0 {
		e.ViewportY = 0
	}

	// Horizontal scroll works in screen columns of the text area, so wide
	// characters and tabs count by their drawn width.
	gutter, _ := utils.GutterWidth(e.buffer.LineCount(), e.viewWidth)
	textWidth := e.viewWidth - gutter
	visualCol := 0
	if line, err := e.buffer.Line(e.Cursor.Line); err == nil {
		visualCol = utils.VisualColumn(line, e.Cursor.Col, e.tabWidth)
	}
	if visualCol < e.ViewportX {
		e.ViewportX = visualCol
	} else if visualCol >= e.ViewportX+textWidth {
		e.ViewportX = visualCol - textWidth + 1
	}
}

// Load replaces the buffer contents from a file and forgets the history.
func (e *Editor) Load(filePath string) error {
	if err := e.buffer.Load(filePath); err != nil {
		return err
	}
	e.history.Clear()
	e.SetCursor(types.Position{})
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: filePath})
	}
	return nil
}

// Save writes the buffer to its file.
func (e *Editor) Save() error {
	if err := e.buffer.Save(""); err != nil {
		logger.Errorf("Editor: Save failed: %v", err)
		return fmt.Errorf("save failed: %w", err)
	}
	logger.Infof("Editor: Saved %s", e.buffer.FilePath())
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: e.buffer.FilePath()})
	}
	return nil
}
