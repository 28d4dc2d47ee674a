package tui

import (
	"fmt"

	"github.com/bethropolis/actionpad/internal/config"
	"github.com/bethropolis/actionpad/internal/logger"
	"github.com/bethropolis/actionpad/internal/types"
	"github.com/bethropolis/actionpad/internal/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Styles are the colors used for the text area.
type Styles struct {
	Default    tcell.Style
	LineNumber tcell.Style
}

// DefaultStyles returns the built-in color scheme.
func DefaultStyles() Styles {
	return Styles{
		Default:    tcell.StyleDefault,
		LineNumber: tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

// View is the editor state the drawing code reads.
type View interface {
	Lines() [][]byte
	GetCursor() types.Position
	GetViewport() (int, int)
}

// DrawBuffer draws the visible portion of the buffer above the status bar.
// viewX in the viewport is a visual column, not a rune index.
func (t *TUI) DrawBuffer(view View, tabWidth int) {
	width, height := t.Size()
	viewY, viewX := view.GetViewport()
	viewHeight := height - config.StatusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	lines := view.Lines()
	gutter, maxDigits := utils.GutterWidth(len(lines), width)
	textAreaWidth := width - gutter
	cursorLine := view.GetCursor().Line

	for screenY := 0; screenY < viewHeight; screenY++ {
		bufferLineIdx := screenY + viewY

		// --- A: Fill the entire line with the default style ---
		for fillX := 0; fillX < width; fillX++ {
			t.screen.SetContent(fillX, screenY, ' ', nil, t.styles.Default)
		}

		if bufferLineIdx >= len(lines) {
			continue // Below buffer content, background already drawn
		}

		// --- B: Line number gutter, right-aligned ---
		if gutter > 0 {
			style := t.styles.LineNumber
			if bufferLineIdx == cursorLine {
				style = style.Bold(true) // Highlight current line number
			}
			for i, r := range fmt.Sprintf("%*d", maxDigits, bufferLineIdx+1) {
				t.screen.SetContent(i, screenY, r, nil, style)
			}
		}

		// --- C: Buffer text, one grapheme cluster at a time ---
		gr := uniseg.NewGraphemes(string(lines[bufferLineIdx]))
		currentVisualX := 0
		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := gr.Width()
			isTab := clusterRunes[0] == '\t'
			if isTab {
				clusterWidth = utils.TabStop(currentVisualX, tabWidth)
			}

			// Screen X relative to the horizontal scroll, offset by the gutter
			screenX := currentVisualX - viewX + gutter
			if currentVisualX+clusterWidth > viewX && screenX >= gutter && screenX < width {
				if isTab {
					// Expand to the next tab stop
					for i := 0; i < clusterWidth && screenX+i < width; i++ {
						t.screen.SetContent(screenX+i, screenY, ' ', nil, t.styles.Default)
					}
				} else {
					// Let tcell render the cluster; combining runes ride along
					t.screen.SetContent(screenX, screenY, clusterRunes[0], clusterRunes[1:], t.styles.Default)
				}
			}

			currentVisualX += clusterWidth
			if currentVisualX >= viewX+textAreaWidth {
				break // Past the right edge of the text area
			}
		}
	}
}

// DrawCursor positions the terminal cursor, hiding it when it is off screen.
func (t *TUI) DrawCursor(view View, tabWidth int) {
	cursor := view.GetCursor()
	viewY, viewX := view.GetViewport()
	width, height := t.Size()
	lines := view.Lines()
	gutter, _ := utils.GutterWidth(len(lines), width)

	cursorVisualCol := 0
	if cursor.Line >= 0 && cursor.Line < len(lines) {
		cursorVisualCol = utils.VisualColumn(lines[cursor.Line], cursor.Col, tabWidth)
	} else {
		logger.Debugf("DrawCursor: cursor line %d outside buffer", cursor.Line)
	}

	screenX := cursorVisualCol - viewX + gutter
	screenY := cursor.Line - viewY
	viewHeight := height - config.StatusBarHeight

	// Never place the cursor inside the gutter or on the status bar
	if screenX < gutter || screenX >= width || screenY < 0 || screenY >= viewHeight {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}
