// Package graph provides visualization and interchange formats for automata.
package graph

// State represents a state in the graph.
type State struct {
	// StateName is the name of the state.
	StateName string

	// NodeName is the name used for the node in the graph.
	NodeName string

	// Final is true for accepting states.
	Final bool

	// Leaving are the transitions leaving this state.
	Leaving []*Transition

	// Arriving are the transitions arriving at this state.
	Arriving []*Transition
}

// Transition represents a transition in the graph.
type Transition struct {
	// Description is the transition label, possibly empty.
	Description string

	// SourceState is the source state of the transition.
	SourceState *State

	// DestinationState is the destination state of the transition.
	DestinationState *State

	// Guard is the guard reference of the transition.
	Guard string
}

// IsLoop returns true if the transition leads back to its source.
func (t *Transition) IsLoop() bool {
	return t.SourceState == t.DestinationState
}
