package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/actionpad/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_Default(t *testing.T) {
	sb := New(DefaultConfig())
	text, isMessage := sb.Text()
	assert.False(t, isMessage)
	assert.Equal(t, "[No Name] -- Line: 1, Col: 1 -- undo 0 / redo 0", text)

	sb.SetFileInfo("notes.txt", true)
	sb.SetCursorInfo(types.Position{Line: 4, Col: 2})
	sb.SetHistoryInfo(3, 1)
	text, _ = sb.Text()
	assert.Equal(t, "notes.txt [Modified] -- Line: 5, Col: 3 -- undo 3 / redo 1", text)
}

func TestText_TemporaryMessageExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sb := New(DefaultConfig())
	sb.now = func() time.Time { return now }

	sb.SetTemporaryMessage("Saved %s", "a.txt")
	text, isMessage := sb.Text()
	assert.True(t, isMessage)
	assert.Equal(t, "Saved a.txt", text)

	now = now.Add(5 * time.Second)
	text, isMessage = sb.Text()
	assert.False(t, isMessage)
	assert.True(t, strings.HasPrefix(text, "[No Name]"))
}

func TestText_Reset(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetTemporaryMessage("hello")
	sb.ResetTemporaryMessage()
	_, isMessage := sb.Text()
	assert.False(t, isMessage)
}

func rowText(t *testing.T, s tcell.SimulationScreen, y, width int) string {
	t.Helper()
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteString(string(cells[y*w+x].Runes))
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDraw(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(60, 3)

	sb := New(DefaultConfig())
	sb.SetFileInfo("a.txt", false)
	sb.SetHistoryInfo(2, 0)
	sb.Draw(s, 60, 3)
	s.Show()

	assert.Equal(t, "a.txt -- Line: 1, Col: 1 -- undo 2 / redo 0", rowText(t, s, 2, 60))
}

func TestDraw_Truncates(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(9, 1)

	sb := New(DefaultConfig())
	sb.Draw(s, 9, 1)
	s.Show()

	assert.Equal(t, "[No Name]", rowText(t, s, 0, 9))
}
