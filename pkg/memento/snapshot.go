package memento

// Snapshot is an immutable capture of an Originator's state at the
// moment Save was called.
//
// Snapshots are opaque handles: the captured value is reachable only
// through State, and nothing can change it after creation. Only
// Originator.Save constructs snapshots; History treats them as sealed
// boxes.
type Snapshot struct {
	state string
}

// State returns the value captured when the snapshot was created.
func (s *Snapshot) State() string {
	return s.state
}
