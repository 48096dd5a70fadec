package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Step operations understood by the runner.
const (
	OpSet     = "set"     // replace the originator's state with Value
	OpSave    = "save"    // capture the current state and append it to the history
	OpRestore = "restore" // restore the snapshot at Index and print the state
)

// Step is a single scripted action.
type Step struct {
	Op    string `yaml:"op"`
	Value string `yaml:"value,omitempty"`
	Index int    `yaml:"index,omitempty"`
}

// Scenario is an ordered script of set/save/restore steps.
type Scenario struct {
	Name  string `yaml:"name,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Default returns the canonical two-state walkthrough: set State1,
// save, set State2, save, then restore both saved snapshots in order.
func Default() *Scenario {
	return &Scenario{
		Name: "two-state walkthrough",
		Steps: []Step{
			{Op: OpSet, Value: "State1"},
			{Op: OpSave},
			{Op: OpSet, Value: "State2"},
			{Op: OpSave},
			{Op: OpRestore, Index: 0},
			{Op: OpRestore, Index: 1},
		},
	}
}

// Load reads a scenario from a YAML file and validates it.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	s := &Scenario{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that every step names a known operation and that
// restore indices are non-negative. Empty set values are allowed; the
// originator accepts any value.
func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New("scenario: no steps")
	}

	for i, step := range s.Steps {
		switch step.Op {
		case OpSet, OpSave:
		case OpRestore:
			if step.Index < 0 {
				return fmt.Errorf("scenario: step %d: negative restore index %d", i, step.Index)
			}
		default:
			return fmt.Errorf("scenario: step %d: unknown op %q", i, step.Op)
		}
	}
	return nil
}
