// Package workflow holds the approval and lifecycle rules of every stateful
// record. Transitions are pure: they take the actor, the loaded record and
// the current time, mutate the record in place and report whether anything
// changed. Persisting the change atomically is the caller's job.
package workflow

import (
	"fmt"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
)

// Machine is a directed graph of allowed status changes.
type Machine[S ~string] struct {
	name  string
	edges map[S][]S
}

func NewMachine[S ~string](name string, edges map[S][]S) Machine[S] {
	return Machine[S]{name: name, edges: edges}
}

func (m Machine[S]) CanTransition(from, to S) bool {
	for _, next := range m.edges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no edge leaves the status.
func (m Machine[S]) IsTerminal(status S) bool {
	return len(m.edges[status]) == 0
}

// Check returns ErrInvalidState when the edge does not exist.
func (m Machine[S]) Check(from, to S) error {
	if !m.CanTransition(from, to) {
		return fmt.Errorf("%w: %s cannot move from %s to %s", echo_errors.ErrInvalidState, m.name, from, to)
	}
	return nil
}

// Result describes an attempted transition for auditing and events.
type Result struct {
	Entity string `json:"entity"`
	ID     uint   `json:"id"`
	From   string `json:"from"`
	To     string `json:"to"`
	Action string `json:"action"`
}
