package memento

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Get for indices outside [0, Len()).
var ErrIndexOutOfRange = errors.New("memento: index out of range")

// History stores snapshots in insertion order. It never constructs,
// inspects, or alters snapshot contents; it is purely a container.
// Duplicates are allowed and there is no capacity bound.
type History struct {
	snapshots []*Snapshot
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Add appends s to the end of the history.
func (h *History) Add(s *Snapshot) {
	h.snapshots = append(h.snapshots, s)
}

// Get returns the snapshot stored at the given zero-based index. The
// returned value is the stored reference itself, not a copy.
func (h *History) Get(index int) (*Snapshot, error) {
	if index < 0 || index >= len(h.snapshots) {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(h.snapshots))
	}
	return h.snapshots[index], nil
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}
