package scenario

import (
	"fmt"
	"io"

	"github.com/entrhq/memento/pkg/memento"
)

// Run executes the scenario against a fresh originator and history,
// writing the state observed after each restore to w, one line per
// restore. Out-of-range restore indices surface the history's error
// wrapped with the step position.
func Run(s *Scenario, w io.Writer) error {
	if err := s.Validate(); err != nil {
		return err
	}

	originator := memento.NewOriginator()
	history := memento.NewHistory()

	for i, step := range s.Steps {
		switch step.Op {
		case OpSet:
			originator.SetState(step.Value)
		case OpSave:
			history.Add(originator.Save())
		case OpRestore:
			snap, err := history.Get(step.Index)
			if err != nil {
				return fmt.Errorf("scenario: step %d: %w", i, err)
			}
			if err := originator.Restore(snap); err != nil {
				return fmt.Errorf("scenario: step %d: %w", i, err)
			}
			fmt.Fprintln(w, originator.GetState())
		}
	}
	return nil
}
