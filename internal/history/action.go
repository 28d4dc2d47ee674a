package history

import (
	"errors"
	"fmt"
)

// Action is a reversible unit of work.
//
// Revert must undo exactly the effect of the most recent Apply, and an Apply
// that follows a Revert must reproduce the original forward effect. Actions
// carry whatever payload they need (old text, cursor positions) to make that
// hold.
type Action interface {
	Apply() error
	Revert() error
}

// Batch groups several actions into one undo unit.
type Batch struct {
	Name    string
	Actions []Action

	// applied counts the leading steps the last Apply left in effect.
	applied int
}

// NewBatch creates a batch from the given actions.
func NewBatch(name string, actions ...Action) *Batch {
	return &Batch{Name: name, Actions: actions}
}

// Add appends an action to the batch.
func (b *Batch) Add(a Action) {
	b.Actions = append(b.Actions, a)
}

// Apply runs every step in order. If a step fails, the steps already applied
// are reverted before the error is returned, leaving nothing in effect.
// Rollback failures are joined into the returned error.
func (b *Batch) Apply() error {
	b.applied = 0
	for i, a := range b.Actions {
		if err := a.Apply(); err != nil {
			errs := []error{fmt.Errorf("batch '%s' step %d: %w", b.Name, i, err)}
			for j := i - 1; j >= 0; j-- {
				if rerr := b.Actions[j].Revert(); rerr != nil {
					errs = append(errs, fmt.Errorf("batch '%s' rollback step %d: %w", b.Name, j, rerr))
					// Steps 0..j are still in effect.
					b.applied = j + 1
					return errors.Join(errs...)
				}
			}
			return errors.Join(errs...)
		}
		b.applied = i + 1
	}
	return nil
}

// Revert reverts, in reverse order, the steps the last Apply left in effect.
// After a rolled-back Apply there is nothing to revert.
func (b *Batch) Revert() error {
	for i := b.applied - 1; i >= 0; i-- {
		if err := b.Actions[i].Revert(); err != nil {
			b.applied = i + 1 // step i may still be in effect
			return fmt.Errorf("revert batch '%s' step %d: %w", b.Name, i, err)
		}
	}
	b.applied = 0
	return nil
}

// String describes the batch for log output.
func (b *Batch) String() string {
	if b.Name != "" {
		return b.Name
	}
	return fmt.Sprintf("%d actions", len(b.Actions))
}
