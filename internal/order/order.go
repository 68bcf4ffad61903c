// Package order implements drag-and-drop reordering for any ordered slice.
//
// A gesture is three calls on a Drag: Begin(source) when the pointer picks
// an element up, Over(target) while it hovers, Drop(target, length) when it
// is released. Drop decides whether a move happens; Move performs it.
package order

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/glitterpage/internal/common"
)

// Move returns a copy of s with the element at from removed and reinserted
// at index to of the shortened slice. Moving 0 to 2 in [A B C] yields
// [B C A]. s is never modified. Both indices must lie in [0, len(s)).
func Move[T any](s []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(s) {
		return nil, fmt.Errorf("move from %d in %d elements: %w", from, len(s), common.ErrIndexOutOfRange)
	}
	if to < 0 || to >= len(s) {
		return nil, fmt.Errorf("move to %d in %d elements: %w", to, len(s), common.ErrIndexOutOfRange)
	}

	out := slices.Clone(s)
	if from == to {
		return out, nil
	}
	moved := out[from]
	out = slices.Delete(out, from, from+1)
	out = slices.Insert(out, to, moved)
	return out, nil
}

// Drag holds the source index of an in-progress gesture. The zero value is idle.
type Drag struct {
	index  int
	active bool
}

// Begin records source as the dragged index. It has no other effect.
func (d *Drag) Begin(source int) {
	d.index = source
	d.active = true
}

// Over is the hover hook. It never changes state and always permits a drop
// so the host does not show its "drop not allowed" feedback.
func (d *Drag) Over(int) bool {
	return true
}

// Active returns the dragged index, if any.
func (d *Drag) Active() (int, bool) {
	return d.index, d.active
}

// Reset abandons the gesture.
func (d *Drag) Reset() {
	*d = Drag{}
}

// Drop ends the gesture over target in a sequence of length elements.
//
// It returns the source index and ok == true when a move should be applied.
// With no active drag, or target equal to the source, it returns ok == false
// and leaves the state untouched. When either index no longer fits the
// sequence (an element was deleted mid-gesture) the gesture is cleared and
// ErrIndexOutOfRange is returned.
func (d *Drag) Drop(target, length int) (from int, ok bool, err error) {
	if !d.active {
		return 0, false, common.ErrNoActiveDrag
	}
	if target == d.index {
		return 0, false, nil
	}

	from = d.index
	if from < 0 || from >= length || target < 0 || target >= length {
		d.Reset()
		return 0, false, fmt.Errorf("drop %d onto %d in %d elements: %w", from, target, length, common.ErrIndexOutOfRange)
	}

	d.Reset()
	return from, true, nil
}
