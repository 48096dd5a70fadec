// Package scenario describes and runs scripted walkthroughs of the
// memento types for the demo driver.
//
// A scenario is an ordered list of steps over a fresh Originator and
// History: set a state value, save the current state into the history,
// or restore a previously saved snapshot by position. The state
// observed after each restore is written to the runner's output.
// Scenarios can be loaded from YAML files or built in code; Default
// returns the canonical two-state walkthrough.
//
// Scenarios are demo scripts only. Snapshots themselves never leave
// memory and are never serialized.
package scenario
