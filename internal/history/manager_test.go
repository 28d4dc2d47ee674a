package history

import (
	"errors"
	"testing"

	"github.com/bethropolis/actionpad/internal/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// journal records every apply/revert call in order.
type journal struct {
	calls []string
}

type stubAction struct {
	name      string
	j         *journal
	applyErr  error
	revertErr error
}

func (a *stubAction) Apply() error {
	a.j.calls = append(a.j.calls, "apply("+a.name+")")
	return a.applyErr
}

func (a *stubAction) Revert() error {
	a.j.calls = append(a.j.calls, "revert("+a.name+")")
	return a.revertErr
}

func (a *stubAction) String() string { return a.name }

// counter is an action with an observable effect.
type counter struct {
	value *int
	delta int
}

func (c *counter) Apply() error  { *c.value += c.delta; return nil }
func (c *counter) Revert() error { *c.value -= c.delta; return nil }

func names(actions []Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.(*stubAction).name)
	}
	return out
}

func newActions(j *journal, ids ...string) map[string]*stubAction {
	out := make(map[string]*stubAction, len(ids))
	for _, id := range ids {
		out[id] = &stubAction{name: id, j: j}
	}
	return out
}

func TestManager_RecordAppliesAndLeavesFuture(t *testing.T) {
	j := &journal{}
	m := NewManager(Options{PreserveFuture: true})
	a := newActions(j, "A", "B")

	require.NoError(t, m.Record(a["A"]))
	assert.Equal(t, []string{"apply(A)"}, j.calls)
	assert.Equal(t, []string{"A"}, names(m.history))
	assert.Empty(t, m.future)

	_, err := m.Undo()
	require.NoError(t, err)
	require.NoError(t, m.Record(a["B"]))
	assert.Equal(t, []string{"B"}, names(m.history))
	assert.Equal(t, []string{"A"}, names(m.future))
}

func TestManager_UndoIsReverseOfRecordOrder(t *testing.T) {
	j := &journal{}
	m := NewManager(Options{})
	ids := []string{"a1", "a2", "a3", "a4", "a5"}
	actions := newActions(j, ids...)
	for _, id := range ids {
		require.NoError(t, m.Record(actions[id]))
	}
	j.calls = nil

	for range ids {
		undone, err := m.Undo()
		require.NoError(t, err)
		assert.True(t, undone)
	}
	assert.Equal(t, []string{"revert(a5)", "revert(a4)", "revert(a3)", "revert(a2)", "revert(a1)"}, j.calls)
	assert.Empty(t, m.history)
	assert.Equal(t, []string{"a5", "a4", "a3", "a2", "a1"}, names(m.future))
}

func TestManager_UndoThenRedoRestoresState(t *testing.T) {
	value := 0
	m := NewManager(Options{})
	require.NoError(t, m.Record(&counter{value: &value, delta: 2}))
	require.NoError(t, m.Record(&counter{value: &value, delta: 5}))
	require.Equal(t, 7, value)

	historyBefore := append([]Action(nil), m.history...)
	futureBefore := len(m.future)

	_, err := m.Undo()
	require.NoError(t, err)
	assert.Equal(t, 2, value)

	_, err = m.Redo()
	require.NoError(t, err)
	assert.Equal(t, 7, value)
	assert.Equal(t, historyBefore, m.history)
	assert.Len(t, m.future, futureBefore)
}

func TestManager_EmptyStacksAreNoOps(t *testing.T) {
	j := &journal{}
	m := NewManager(Options{})

	undone, err := m.Undo()
	assert.NoError(t, err)
	assert.False(t, undone)

	redone, err := m.Redo()
	assert.NoError(t, err)
	assert.False(t, redone)

	assert.Empty(t, j.calls)
	assert.False(t, m.CanUndo())
	assert.False(t, m.CanRedo())
}

func TestManager_Scenario(t *testing.T) {
	j := &journal{}
	m := NewManager(Options{PreserveFuture: true})
	a := newActions(j, "A", "B", "C", "D")

	require.NoError(t, m.Record(a["A"]))
	require.NoError(t, m.Record(a["B"]))
	require.NoError(t, m.Record(a["C"]))
	assert.Equal(t, []string{"A", "B", "C"}, names(m.history))
	assert.Empty(t, m.future)

	j.calls = nil
	_, err := m.Undo()
	require.NoError(t, err)
	assert.Equal(t, []string{"revert(C)"}, j.calls)
	assert.Equal(t, []string{"A", "B"}, names(m.history))
	assert.Equal(t, []string{"C"}, names(m.future))

	j.calls = nil
	_, err = m.Undo()
	require.NoError(t, err)
	assert.Equal(t, []string{"revert(B)"}, j.calls)
	assert.Equal(t, []string{"A"}, names(m.history))
	assert.Equal(t, []string{"C", "B"}, names(m.future))

	j.calls = nil
	_, err = m.Redo()
	require.NoError(t, err)
	assert.Equal(t, []string{"apply(B)"}, j.calls)
	assert.Equal(t, []string{"A", "B"}, names(m.history))
	assert.Equal(t, []string{"C"}, names(m.future))

	require.NoError(t, m.Record(a["D"]))
	assert.Equal(t, []string{"A", "B", "D"}, names(m.history))
	assert.Equal(t, []string{"C"}, names(m.future))
}

func TestManager_RecordClearsFutureByDefault(t *testing.T) {
	j := &journal{}
	m := NewManager(Options{})
	a := newActions(j, "A", "B", "C")

	require.NoError(t, m.Record(a["A"]))
	require.NoError(t, m.Record(a["B"]))
	_, err := m.Undo()
	require.NoError(t, err)
	require.True(t, m.CanRedo())

	require.NoError(t, m.Record(a["C"]))
	assert.False(t, m.CanRedo())
	assert.Equal(t, []string{"A", "C"}, names(m.history))

	j.calls = nil
	redone, err := m.Redo()
	assert.NoError(t, err)
	assert.False(t, redone)
	assert.Empty(t, j.calls)
}

func TestManager_StacksStayDisjoint(t *testing.T) {
	j := &journal{}
	m := NewManager(Options{PreserveFuture: true})
	a := newActions(j, "A", "B", "C")
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, m.Record(a[id]))
	}

	steps := []func() (bool, error){m.Undo, m.Undo, m.Redo, m.Undo, m.Undo, m.Redo, m.Redo, m.Redo}
	for _, step := range steps {
		_, err := step()
		require.NoError(t, err)

		seen := map[string]int{}
		for _, n := range names(m.history) {
			seen[n]++
		}
		for _, n := range names(m.future) {
			seen[n]++
		}
		assert.Len(t, seen, 3)
		for n, c := range seen {
			assert.Equal(t, 1, c, "action %s tracked %d times", n, c)
		}
	}
}

func TestManager_MaxHistoryEvictsOldest(t *testing.T) {
	j := &journal{}
	m := NewManager(Options{MaxHistory: 2})
	a := newActions(j, "A", "B", "C")

	require.NoError(t, m.Record(a["A"]))
	require.NoError(t, m.Record(a["B"]))
	require.NoError(t, m.Record(a["C"]))
	assert.Equal(t, []string{"B", "C"}, names(m.history))
	assert.Equal(t, 2, m.UndoCount())
}

func TestManager_ActionErrorsPropagateButStacksMove(t *testing.T) {
	j := &journal{}
	boom := errors.New("boom")
	m := NewManager(Options{})
	bad := &stubAction{name: "bad", j: j, revertErr: boom}

	require.NoError(t, m.Record(bad))

	undone, err := m.Undo()
	assert.True(t, undone)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, m.history)
	assert.Equal(t, []string{"bad"}, names(m.future))

	bad.applyErr = boom
	redone, err := m.Redo()
	assert.True(t, redone)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"bad"}, names(m.history))
	assert.Empty(t, m.future)
}

func TestManager_RecordKeepsActionWhenApplyFails(t *testing.T) {
	j := &journal{}
	boom := errors.New("boom")
	m := NewManager(Options{})

	err := m.Record(&stubAction{name: "bad", j: j, applyErr: boom})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, m.UndoCount())
}

func TestManager_Counts(t *testing.T) {
	j := &journal{}
	m := NewManager(Options{})
	a := newActions(j, "A", "B")
	require.NoError(t, m.Record(a["A"]))
	require.NoError(t, m.Record(a["B"]))
	_, err := m.Undo()
	require.NoError(t, err)

	assert.True(t, m.CanUndo())
	assert.True(t, m.CanRedo())
	assert.Equal(t, 1, m.UndoCount())
	assert.Equal(t, 1, m.RedoCount())

	m.Clear()
	assert.Zero(t, m.UndoCount())
	assert.Zero(t, m.RedoCount())
}

func TestManager_DispatchesHistoryChanged(t *testing.T) {
	j := &journal{}
	events := event.NewManager()
	var got []event.HistoryChangedData
	events.Subscribe(event.TypeHistoryChanged, func(e event.Event) bool {
		got = append(got, e.Data.(event.HistoryChangedData))
		return false
	})

	m := NewManager(Options{})
	m.SetEventManager(events)
	a := newActions(j, "A")

	require.NoError(t, m.Record(a["A"]))
	_, err := m.Undo()
	require.NoError(t, err)
	_, err = m.Redo()
	require.NoError(t, err)
	m.Clear()

	assert.Equal(t, []event.HistoryChangedData{
		{Op: OpRecord, UndoCount: 1, RedoCount: 0},
		{Op: OpUndo, UndoCount: 0, RedoCount: 1},
		{Op: OpRedo, UndoCount: 1, RedoCount: 0},
		{Op: OpClear, UndoCount: 0, RedoCount: 0},
	}, got)
}

// reentrant queries the manager from inside Apply and Revert.
type reentrant struct {
	m        *Manager
	canUndos []bool
}

func (r *reentrant) Apply() error {
	r.canUndos = append(r.canUndos, r.m.CanUndo())
	return nil
}

func (r *reentrant) Revert() error {
	r.canUndos = append(r.canUndos, r.m.CanUndo())
	return nil
}

func TestManager_ActionsRunWithoutLock(t *testing.T) {
	m := NewManager(Options{})
	r := &reentrant{m: m}

	require.NoError(t, m.Record(r))
	_, err := m.Undo()
	require.NoError(t, err)

	assert.Equal(t, []bool{true, false}, r.canUndos)
}
