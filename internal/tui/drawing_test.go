package tui

import (
	"strings"
	"testing"

	"github.com/bethropolis/actionpad/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	lines  []string
	cursor types.Position
	top    int
	left   int
}

func (v *fakeView) Lines() [][]byte {
	out := make([][]byte, len(v.lines))
	for i, l := range v.lines {
		out[i] = []byte(l)
	}
	return out
}

func (v *fakeView) GetCursor() types.Position { return v.cursor }
func (v *fakeView) GetViewport() (int, int)   { return v.top, v.left }

func newTestTUI(t *testing.T, width, height int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	tui, err := NewWithScreen(s)
	require.NoError(t, err)
	t.Cleanup(tui.Close)
	s.SetSize(width, height)
	return tui, s
}

func row(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteString(string(cells[y*w+x].Runes))
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDrawBuffer(t *testing.T) {
	tui, s := newTestTUI(t, 20, 4)
	view := &fakeView{lines: []string{"hello", "\tx", "世界"}}

	tui.DrawBuffer(view, 4)
	tui.Show()

	assert.Equal(t, "1 hello", row(s, 0))
	assert.Equal(t, "2     x", row(s, 1))
	assert.True(t, strings.HasPrefix(row(s, 2), "3 世"))
	assert.Equal(t, "", row(s, 3)) // status bar row untouched
}

func TestDrawBuffer_Scrolled(t *testing.T) {
	tui, s := newTestTUI(t, 20, 3)
	view := &fakeView{lines: []string{"a", "b", "c"}, top: 1}

	tui.DrawBuffer(view, 4)
	tui.Show()

	assert.Equal(t, "2 b", row(s, 0))
	assert.Equal(t, "3 c", row(s, 1))
}

func TestDrawCursor(t *testing.T) {
	tui, s := newTestTUI(t, 20, 4)
	view := &fakeView{lines: []string{"\tab"}, cursor: types.Position{Line: 0, Col: 2}}

	tui.DrawCursor(view, 4)
	tui.Show()

	x, y, visible := s.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 2+5, x) // gutter + tab + 'a'
	assert.Equal(t, 0, y)
}

func TestDrawCursor_HiddenOffScreen(t *testing.T) {
	tui, s := newTestTUI(t, 20, 3)
	view := &fakeView{lines: []string{"a", "b", "c"}, cursor: types.Position{Line: 2}}

	tui.DrawCursor(view, 4)
	tui.Show()

	_, _, visible := s.GetCursor()
	assert.False(t, visible)
}
