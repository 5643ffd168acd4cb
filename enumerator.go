package automata

// Mode determines how an enumerator treats several transitions accepting the same symbol.
type Mode int

const (
	// Deterministic tracks a single current state and reports an
	// *AmbiguousTransitionError when more than one transition matches.
	// This is the mode used by Consume.
	Deterministic Mode = iota

	// Nondeterministic tracks the set of all reachable states and follows
	// every matching transition.
	Nondeterministic
)

func (m Mode) String() string {
	switch m {
	case Deterministic:
		return "deterministic"
	case Nondeterministic:
		return "nondeterministic"
	default:
		return "unknown"
	}
}

// ParseMode parses the textual form returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "deterministic", "dfa":
		return Deterministic, nil
	case "nondeterministic", "nfa":
		return Nondeterministic, nil
	default:
		return 0, newArgumentError("mode", "unknown enumeration mode '%s'", s)
	}
}

// Enumerator is a cursor over the current position of a traversal.
//
// Once a step finds no matching transition the enumerator enters the error
// cursor: CurrentState returns ErrorState and every later Step returns false.
//
// Enumerators read the automaton's graph directly; changing the automaton
// between steps is visible to the traversal.
type Enumerator[A any] interface {
	// Step consumes one symbol and reports whether a transition was taken.
	// Errors are returned for ambiguous deterministic transitions and for
	// failing hooks; in both cases the cursor is left unchanged.
	Step(symbol A) (bool, error)

	// CurrentState returns the first state of the cursor.
	CurrentState() State

	// CurrentStates returns the whole cursor.
	CurrentStates() StateSet

	// InError reports whether the enumerator is in the error cursor.
	InError() bool

	// Mode returns the traversal mode.
	Mode() Mode
}

// DeterministicEnumerator follows exactly one transition per symbol.
type DeterministicEnumerator[A any] struct {
	graph   StateGraph[A]
	current State
}

func newDeterministicEnumerator[A any](graph StateGraph[A], start string) *DeterministicEnumerator[A] {
	return &DeterministicEnumerator[A]{graph: graph, current: UserState(start)}
}

// Step implements Enumerator.
func (e *DeterministicEnumerator[A]) Step(symbol A) (bool, error) {
	if e.current.IsError() {
		return false, nil
	}

	var match *Transition[A]
	for _, t := range e.graph.OutEdges(e.current.name) {
		if !t.Accepts(symbol) {
			continue
		}
		if match != nil {
			return false, &AmbiguousTransitionError{State: e.current, Symbol: symbol}
		}
		match = t
	}

	if match == nil {
		e.current = ErrorState
		return false, nil
	}

	if err := match.Fire(symbol); err != nil {
		return false, err
	}
	e.current = UserState(match.target)
	return true, nil
}

// CurrentState implements Enumerator.
func (e *DeterministicEnumerator[A]) CurrentState() State {
	return e.current
}

// CurrentStates implements Enumerator.
func (e *DeterministicEnumerator[A]) CurrentStates() StateSet {
	return StateSet{states: []State{e.current}}
}

// InError implements Enumerator.
func (e *DeterministicEnumerator[A]) InError() bool {
	return e.current.IsError()
}

// Mode implements Enumerator.
func (e *DeterministicEnumerator[A]) Mode() Mode {
	return Deterministic
}

// NondeterministicEnumerator simulates nondeterminism by tracking every
// reachable state. The set of successors is computed on each step and never cached.
type NondeterministicEnumerator[A any] struct {
	graph   StateGraph[A]
	current StateSet
}

func newNondeterministicEnumerator[A any](graph StateGraph[A], start string) *NondeterministicEnumerator[A] {
	return &NondeterministicEnumerator[A]{
		graph:   graph,
		current: StateSet{states: []State{UserState(start)}},
	}
}

// Step implements Enumerator.
func (e *NondeterministicEnumerator[A]) Step(symbol A) (bool, error) {
	if e.InError() {
		return false, nil
	}

	var matched []*Transition[A]
	for state := range e.current.All() {
		for _, t := range e.graph.OutEdges(state.name) {
			if t.Accepts(symbol) {
				matched = append(matched, t)
			}
		}
	}

	if len(matched) == 0 {
		e.current = StateSet{states: []State{ErrorState}}
		return false, nil
	}

	// Every matched edge fires, even when another edge reaches the same target.
	targets := make([]State, 0, len(matched))
	for _, t := range matched {
		if err := t.Fire(symbol); err != nil {
			return false, err
		}
		targets = append(targets, UserState(t.target))
	}
	e.current = newStateSet(targets)
	return true, nil
}

// CurrentState implements Enumerator.
func (e *NondeterministicEnumerator[A]) CurrentState() State {
	return e.current.First()
}

// CurrentStates implements Enumerator.
func (e *NondeterministicEnumerator[A]) CurrentStates() StateSet {
	return e.current
}

// InError implements Enumerator.
func (e *NondeterministicEnumerator[A]) InError() bool {
	return e.current.First().IsError()
}

// Mode implements Enumerator.
func (e *NondeterministicEnumerator[A]) Mode() Mode {
	return Nondeterministic
}
