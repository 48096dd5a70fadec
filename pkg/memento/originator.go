package memento

import "errors"

// ErrNilSnapshot is returned by Restore when given a nil snapshot.
var ErrNilSnapshot = errors.New("memento: nil snapshot")

// Originator owns a single mutable state value. It can capture the
// current value into a Snapshot and overwrite the value from a
// previously captured one.
type Originator struct {
	state string
}

// NewOriginator creates an originator with empty state.
func NewOriginator() *Originator {
	return &Originator{}
}

// SetState replaces the current state with value. Any value is
// accepted, including the empty string.
func (o *Originator) SetState(value string) {
	o.state = value
}

// GetState returns the state as currently held.
func (o *Originator) GetState() string {
	return o.state
}

// Save captures the current state in a new Snapshot. The originator
// itself is not modified.
func (o *Originator) Save() *Snapshot {
	return &Snapshot{state: o.state}
}

// Restore overwrites the current state with the value captured in s.
// The state is left untouched when s is nil.
func (o *Originator) Restore(s *Snapshot) error {
	if s == nil {
		return ErrNilSnapshot
	}
	o.state = s.state
	return nil
}
