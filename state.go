package automata

import (
	"cmp"
	"iter"
	"slices"
	"strings"
)

// ErrorStateName is how ErrorState renders. It cannot be used as a state name.
const ErrorStateName = "<error>"

// State identifies a state of an automaton: either a user state, known by its
// name, or the absorbing ErrorState, which is never a graph vertex.
type State struct {
	name    string
	isError bool
}

// ErrorState is the sink entered when no transition accepts a symbol.
var ErrorState = State{isError: true}

// UserState returns the state with the given vertex name.
func UserState(name string) State {
	return State{name: name}
}

// Name returns the vertex name, or an empty string for ErrorState.
func (s State) Name() string {
	return s.name
}

// IsError reports whether s is ErrorState.
func (s State) IsError() bool {
	return s.isError
}

func (s State) String() string {
	if s.isError {
		return ErrorStateName
	}
	return s.name
}

func compareStates(a, b State) int {
	if a.isError != b.isError {
		if a.isError {
			return 1
		}
		return -1
	}
	return cmp.Compare(a.name, b.name)
}

// validStateName rejects the names reserved for the error state.
func validStateName(name string) error {
	switch name {
	case "":
		return newArgumentError("name", "state name cannot be empty")
	case ErrorStateName:
		return newArgumentError("name", "state name '%s' is reserved for the error state", ErrorStateName)
	}
	return nil
}

// StateSet is a read-only, ordered view of a set of states. States are sorted
// by name, so the first member is stable.
type StateSet struct {
	states []State
}

func newStateSet(states []State) StateSet {
	sorted := slices.Clone(states)
	slices.SortFunc(sorted, compareStates)
	return StateSet{states: slices.Compact(sorted)}
}

// Len returns the number of states in the set.
func (s StateSet) Len() int {
	return len(s.states)
}

// Contains reports whether state is a member.
func (s StateSet) Contains(state State) bool {
	_, found := slices.BinarySearchFunc(s.states, state, compareStates)
	return found
}

// First returns the smallest member, or ErrorState when the set is empty.
func (s StateSet) First() State {
	if len(s.states) == 0 {
		return ErrorState
	}
	return s.states[0]
}

// All iterates the members in order.
func (s StateSet) All() iter.Seq[State] {
	return slices.Values(s.states)
}

// Slice returns a copy of the members.
func (s StateSet) Slice() []State {
	return slices.Clone(s.states)
}

// Names returns the member names in order.
func (s StateSet) Names() []string {
	names := make([]string, len(s.states))
	for i, st := range s.states {
		names[i] = st.String()
	}
	return names
}

func (s StateSet) String() string {
	return "{" + strings.Join(s.Names(), ", ") + "}"
}
