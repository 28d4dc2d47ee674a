// Package history provides undo/redo over reversible actions.
//
// A Manager keeps two stacks: history holds actions that are applied and may
// be undone, future holds actions that were undone and may be redone. Record
// pushes onto history and applies, Undo moves the newest history entry to
// future after reverting it, Redo moves the newest future entry back after
// applying it. Both directions are strictly last-in-first-out.
package history

import (
	"fmt"
	"sync"

	"github.com/bethropolis/actionpad/internal/event"
	"github.com/bethropolis/actionpad/internal/logger"
)

// Operation names reported in event.HistoryChangedData.
const (
	OpRecord = "record"
	OpUndo   = "undo"
	OpRedo   = "redo"
	OpClear  = "clear"
)

// Options tune a Manager.
type Options struct {
	// MaxHistory bounds the undo stack; the oldest entries are evicted first.
	// Zero or negative means unbounded.
	MaxHistory int

	// PreserveFuture keeps the redo stack when a new action is recorded.
	// By default recording clears it, so a redo can never reapply an action
	// whose preconditions were invalidated by a newer edit.
	PreserveFuture bool
}

// Manager handles the undo/redo stacks.
//
// The mutex only guards the stacks. Actions are applied and reverted with it
// released, so an action may call CanUndo and friends. Callers that drive
// Record, Undo and Redo from several goroutines must serialize them.
type Manager struct {
	mu       sync.Mutex
	history  []Action // applied, oldest first
	future   []Action // undone, oldest undone first
	opts     Options
	eventMgr *event.Manager
}

// NewManager creates a history manager.
func NewManager(opts Options) *Manager {
	if opts.MaxHistory < 0 {
		opts.MaxHistory = 0
	}
	return &Manager{opts: opts}
}

// SetEventManager makes the manager dispatch event.TypeHistoryChanged after
// every operation. A nil manager disables notification.
func (m *Manager) SetEventManager(mgr *event.Manager) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventMgr = mgr
}

// Record pushes a onto the undo stack and then applies it.
//
// If Apply fails the action stays recorded and the error is returned; the
// caller decides whether to undo it.
func (m *Manager) Record(a Action) error {
	m.mu.Lock()
	m.history = append(m.history, a)
	if !m.opts.PreserveFuture {
		m.future = nil
	}
	if m.opts.MaxHistory > 0 && len(m.history) > m.opts.MaxHistory {
		excess := len(m.history) - m.opts.MaxHistory
		// Zero the evicted slots so the actions can be collected.
		clear(m.history[:excess])
		m.history = m.history[excess:]
		logger.DebugTagf("history", "History: Evicted %d oldest action(s)", excess)
	}
	m.mu.Unlock()

	err := a.Apply()
	m.notify(OpRecord)
	if err != nil {
		logger.Errorf("History: Error applying recorded action: %v", err)
		return fmt.Errorf("record failed: %w", err)
	}
	logger.DebugTagf("history", "History: Recorded %v", describe(a))
	return nil
}

// Undo reverts the most recently applied action and moves it to the redo
// stack. It reports false, with no error, when there is nothing to undo.
//
// A Revert error is returned, but the action has still been moved.
func (m *Manager) Undo() (bool, error) {
	m.mu.Lock()
	if len(m.history) == 0 {
		m.mu.Unlock()
		logger.DebugTagf("history", "History: Nothing to undo.")
		return false, nil
	}
	last := len(m.history) - 1
	a := m.history[last]
	m.history[last] = nil
	m.history = m.history[:last]
	m.mu.Unlock()

	err := a.Revert()

	m.mu.Lock()
	m.future = append(m.future, a)
	m.mu.Unlock()

	m.notify(OpUndo)
	if err != nil {
		logger.Errorf("History: Error undoing %v: %v", describe(a), err)
		return true, fmt.Errorf("undo failed: %w", err)
	}
	logger.DebugTagf("history", "History: Undid %v", describe(a))
	return true, nil
}

// Redo reapplies the most recently undone action and moves it back to the
// undo stack. It reports false, with no error, when there is nothing to redo.
//
// An Apply error is returned, but the action has still been moved.
func (m *Manager) Redo() (bool, error) {
	m.mu.Lock()
	if len(m.future) == 0 {
		m.mu.Unlock()
		logger.DebugTagf("history", "History: Nothing to redo.")
		return false, nil
	}
	last := len(m.future) - 1
	a := m.future[last]
	m.future[last] = nil
	m.future = m.future[:last]
	m.mu.Unlock()

	err := a.Apply()

	m.mu.Lock()
	m.history = append(m.history, a)
	m.mu.Unlock()

	m.notify(OpRedo)
	if err != nil {
		logger.Errorf("History: Error redoing %v: %v", describe(a), err)
		return true, fmt.Errorf("redo failed: %w", err)
	}
	logger.DebugTagf("history", "History: Redid %v", describe(a))
	return true, nil
}

// Clear drops both stacks. Call this when a new file is loaded.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.history = nil
	m.future = nil
	m.mu.Unlock()
	m.notify(OpClear)
	logger.DebugTagf("history", "History: Cleared.")
}

// CanUndo returns true if there are actions that can be undone.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.history) > 0
}

// CanRedo returns true if there are actions that can be redone.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.future) > 0
}

// UndoCount returns the depth of the undo stack.
func (m *Manager) UndoCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.history)
}

// RedoCount returns the depth of the redo stack.
func (m *Manager) RedoCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.future)
}

func (m *Manager) notify(op string) {
	m.mu.Lock()
	mgr := m.eventMgr
	data := event.HistoryChangedData{
		Op:        op,
		UndoCount: len(m.history),
		RedoCount: len(m.future),
	}
	m.mu.Unlock()

	if mgr != nil {
		mgr.Dispatch(event.TypeHistoryChanged, data)
	}
}

func describe(a Action) string {
	if s, ok := a.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", a)
}
