package edit

import (
	"testing"

	"github.com/bethropolis/actionpad/internal/buffer"
	"github.com/bethropolis/actionpad/internal/history"
	"github.com/bethropolis/actionpad/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	buf    *buffer.SliceBuffer
	cursor types.Position
}

func (f *fakeTarget) GetBuffer() buffer.Buffer     { return f.buf }
func (f *fakeTarget) SetCursor(pos types.Position) { f.cursor = pos }

func newTarget(text string) *fakeTarget {
	return &fakeTarget{buf: buffer.NewSliceBufferFromString(text)}
}

func pos(line, col int) types.Position {
	return types.Position{Line: line, Col: col}
}

func TestEndOf(t *testing.T) {
	assert.Equal(t, pos(0, 7), EndOf(pos(0, 4), []byte("abc")))
	assert.Equal(t, pos(1, 0), EndOf(pos(0, 4), []byte("\n")))
	assert.Equal(t, pos(4, 2), EndOf(pos(2, 9), []byte("x\ny\nzé")))
}

func TestInsertText_ApplyRevert(t *testing.T) {
	target := newTarget("hello world")
	a := NewInsertText(target, pos(0, 5), []byte(",\nnew"), pos(0, 5))

	require.NoError(t, a.Apply())
	assert.Equal(t, "hello,\nnew world", string(target.buf.Bytes()))
	assert.Equal(t, pos(1, 3), target.cursor)

	require.NoError(t, a.Revert())
	assert.Equal(t, "hello world", string(target.buf.Bytes()))
	assert.Equal(t, pos(0, 5), target.cursor)

	require.NoError(t, a.Apply())
	assert.Equal(t, "hello,\nnew world", string(target.buf.Bytes()))
}

func TestInsertText_CopiesText(t *testing.T) {
	target := newTarget("")
	text := []byte("abc")
	a := NewInsertText(target, pos(0, 0), text, pos(0, 0))
	text[0] = 'X'

	require.NoError(t, a.Apply())
	assert.Equal(t, "abc", string(target.buf.Bytes()))
}

func TestDeleteText_ApplyRevert(t *testing.T) {
	target := newTarget("one\ntwo\nthree")
	a := NewDeleteText(target, pos(2, 2), pos(0, 1), pos(2, 2))
	assert.Equal(t, pos(0, 1), a.Start)

	require.NoError(t, a.Apply())
	assert.Equal(t, "oree", string(target.buf.Bytes()))
	assert.Equal(t, "ne\ntwo\nth", string(a.Deleted()))
	assert.Equal(t, pos(0, 1), target.cursor)

	require.NoError(t, a.Revert())
	assert.Equal(t, "one\ntwo\nthree", string(target.buf.Bytes()))
	assert.Equal(t, pos(2, 2), target.cursor)
}

func TestActions_ThroughHistory(t *testing.T) {
	target := newTarget("")
	m := history.NewManager(history.Options{})

	require.NoError(t, m.Record(NewInsertText(target, pos(0, 0), []byte("ab"), pos(0, 0))))
	require.NoError(t, m.Record(NewInsertText(target, pos(0, 2), []byte("c"), pos(0, 2))))
	require.NoError(t, m.Record(NewDeleteText(target, pos(0, 0), pos(0, 1), pos(0, 3))))
	assert.Equal(t, "bc", string(target.buf.Bytes()))

	for _, want := range []string{"abc", "ab", ""} {
		_, err := m.Undo()
		require.NoError(t, err)
		assert.Equal(t, want, string(target.buf.Bytes()))
	}

	for _, want := range []string{"ab", "abc", "bc"} {
		_, err := m.Redo()
		require.NoError(t, err)
		assert.Equal(t, want, string(target.buf.Bytes()))
	}
	assert.Equal(t, pos(0, 0), target.cursor)
}

func TestStrings(t *testing.T) {
	target := newTarget("abc")
	assert.Equal(t, "Insert newline", NewInsertText(target, pos(0, 0), []byte("\n"), pos(0, 0)).String())
	assert.Equal(t, `Insert "x"`, NewInsertText(target, pos(0, 0), []byte("x"), pos(0, 0)).String())

	d := NewDeleteText(target, pos(0, 0), pos(0, 1), pos(0, 1))
	require.NoError(t, d.Apply())
	assert.Equal(t, "Delete", d.String())
}
