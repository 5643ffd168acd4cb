package automata

import (
	"fmt"
	"slices"
)

// FiniteStateMachine is a mutable finite automaton over the alphabet A. It owns
// a state graph, an optional start state and a set of final states.
//
// The final states are always a subset of the graph's vertices: removing a
// vertex, through the automaton or directly on the graph, also unmarks it as
// final and clears it as start state.
type FiniteStateMachine[A any] struct {
	// graph stores states and transitions.
	graph StateGraph[A]

	// finalStates contains the accepting states.
	finalStates map[string]struct{}

	// startState is the state consumption begins in; empty when unset.
	startState string

	logger Logger
}

// New creates an empty automaton.
func New[A any](opts ...Option[A]) *FiniteStateMachine[A] {
	m := &FiniteStateMachine[A]{
		finalStates: make(map[string]struct{}),
		logger:      discardLogger,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.graph == nil {
		m.graph = NewMultigraph[A]()
	}
	m.graph.OnVertexRemoved(m.vertexRemoved)
	return m
}

// vertexRemoved keeps start and final bookkeeping consistent with the graph.
func (m *FiniteStateMachine[A]) vertexRemoved(name string) {
	delete(m.finalStates, name)
	if m.startState == name {
		m.startState = ""
	}
	m.logger.Debug("state removed", "state", name)
}

// Graph returns the underlying state graph.
func (m *FiniteStateMachine[A]) Graph() StateGraph[A] {
	return m.graph
}

// AddState adds a state and reports whether it was newly added.
func (m *FiniteStateMachine[A]) AddState(name string) (bool, error) {
	if err := validStateName(name); err != nil {
		return false, err
	}
	added := m.graph.AddVertex(name)
	if added {
		m.logger.Debug("state added", "state", name)
	}
	return added, nil
}

// AddStates adds several states and returns how many were newly added. If
// any name is reserved, no state is added.
func (m *FiniteStateMachine[A]) AddStates(names ...string) (int, error) {
	for _, name := range names {
		if err := validStateName(name); err != nil {
			return 0, err
		}
	}
	added := 0
	for _, name := range names {
		if m.graph.AddVertex(name) {
			added++
		}
	}
	m.logger.Debug("states added", "requested", len(names), "added", added)
	return added, nil
}

// RemoveState removes a state with its transitions and reports whether it existed.
func (m *FiniteStateMachine[A]) RemoveState(name string) bool {
	return m.graph.RemoveVertex(name)
}

// HasState reports whether name is a state of the automaton. Vertices with a
// reserved name are never states.
func (m *FiniteStateMachine[A]) HasState(name string) bool {
	return validStateName(name) == nil && m.graph.HasVertex(name)
}

// States returns the state names in graph order.
func (m *FiniteStateMachine[A]) States() []string {
	return slices.DeleteFunc(m.graph.Vertices(), func(name string) bool {
		return validStateName(name) != nil
	})
}

// AddTransition adds t. Both endpoints must already be states.
func (m *FiniteStateMachine[A]) AddTransition(t *Transition[A]) error {
	if t == nil {
		return newArgumentError("transition", "transition cannot be nil")
	}
	if !m.HasState(t.source) {
		return newArgumentError("transition", "source state '%s' does not exist", t.source)
	}
	if !m.HasState(t.target) {
		return newArgumentError("transition", "target state '%s' does not exist", t.target)
	}
	if !m.graph.AddEdge(t) {
		return newArgumentError("transition", "transition %v has already been added", t)
	}
	m.logger.Debug("transition added", "source", t.source, "target", t.target, "guard", t.guard.Ref())
	return nil
}

// RemoveTransition removes the first transition equal to t and reports whether one was found.
func (m *FiniteStateMachine[A]) RemoveTransition(t *Transition[A]) bool {
	return m.graph.RemoveEdge(t)
}

// Transitions returns all transitions in graph order.
func (m *FiniteStateMachine[A]) Transitions() []*Transition[A] {
	return m.graph.Edges()
}

// SetFinalState marks a state as final. Marking it again is a no-op.
func (m *FiniteStateMachine[A]) SetFinalState(name string) error {
	if !m.HasState(name) {
		return newArgumentError("name", "state '%s' does not exist and cannot be final", name)
	}
	m.finalStates[name] = struct{}{}
	return nil
}

// SetFinalStates marks several states as final. If any of them is not a
// state, nothing is marked.
func (m *FiniteStateMachine[A]) SetFinalStates(names ...string) error {
	for _, name := range names {
		if !m.HasState(name) {
			return newArgumentError("names", "state '%s' does not exist and cannot be final", name)
		}
	}
	for _, name := range names {
		m.finalStates[name] = struct{}{}
	}
	return nil
}

// ClearFinalState unmarks a final state and reports whether it was final.
func (m *FiniteStateMachine[A]) ClearFinalState(name string) bool {
	if _, ok := m.finalStates[name]; !ok {
		return false
	}
	delete(m.finalStates, name)
	return true
}

// ClearFinalStates unmarks several final states and returns how many were final.
func (m *FiniteStateMachine[A]) ClearFinalStates(names ...string) int {
	cleared := 0
	for _, name := range names {
		if m.ClearFinalState(name) {
			cleared++
		}
	}
	return cleared
}

// IsFinalState reports whether name is a final state.
func (m *FiniteStateMachine[A]) IsFinalState(name string) bool {
	_, ok := m.finalStates[name]
	return ok
}

// FinalStates returns the final states in sorted order.
func (m *FiniteStateMachine[A]) FinalStates() []string {
	names := make([]string, 0, len(m.finalStates))
	for name := range m.finalStates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// StartState returns the start state and whether one is set.
func (m *FiniteStateMachine[A]) StartState() (string, bool) {
	return m.startState, m.startState != ""
}

// SetStartState sets the start state, which must be an existing state.
func (m *FiniteStateMachine[A]) SetStartState(name string) error {
	if !m.HasState(name) {
		return newArgumentError("name", "state '%s' does not exist and cannot be the start state", name)
	}
	m.startState = name
	return nil
}

// ClearStartState unsets the start state.
func (m *FiniteStateMachine[A]) ClearStartState() {
	m.startState = ""
}

// CreateEnumerator returns an enumerator positioned at start.
func (m *FiniteStateMachine[A]) CreateEnumerator(start string, mode Mode) (Enumerator[A], error) {
	if !m.HasState(start) {
		return nil, newArgumentError("start", "state '%s' does not exist", start)
	}
	switch mode {
	case Deterministic:
		return newDeterministicEnumerator(m.graph, start), nil
	case Nondeterministic:
		return newNondeterministicEnumerator(m.graph, start), nil
	default:
		return nil, newArgumentError("mode", "unknown enumeration mode %d", int(mode))
	}
}

// ResolveGuard resolves ref with r. If r cannot resolve it, the returned guard
// never accepts and keeps ref as its reference.
func (m *FiniteStateMachine[A]) ResolveGuard(r GuardResolver[A], ref string) *Guard[A] {
	if r != nil {
		g, err := r.ResolveGuard(ref)
		if err == nil && g != nil {
			return g
		}
		m.logger.Warn("guard reference could not be resolved, substituting a guard that never accepts",
			"guard", ref, "error", err)
	}
	return Never[A](ref)
}

// Info returns a detached description of the automaton for introspection.
func (m *FiniteStateMachine[A]) Info() *Info {
	vertices := m.States()
	states := make([]StateInfo, len(vertices))
	for i, name := range vertices {
		states[i] = StateInfo{
			Name:  name,
			Final: m.IsFinalState(name),
			Start: name == m.startState,
		}
	}

	edges := m.graph.Edges()
	transitions := make([]TransitionInfo, 0, len(edges))
	for _, t := range edges {
		if !m.HasState(t.source) || !m.HasState(t.target) {
			continue
		}
		transitions = append(transitions, TransitionInfo{
			Source:        t.source,
			Target:        t.target,
			Description:   t.Description,
			Guard:         t.guard.Ref(),
			GuardResolved: t.guard.Resolved(),
			Hooks:         len(t.hooks),
		})
	}

	return &Info{
		States:       states,
		Transitions:  transitions,
		StartState:   m.startState,
		AlphabetType: fmt.Sprintf("%T", *new(A)),
	}
}

// String returns a string representation of the automaton.
func (m *FiniteStateMachine[A]) String() string {
	return fmt.Sprintf("FiniteStateMachine { States = %d, Start = %q, Final = %v }",
		len(m.States()), m.startState, m.FinalStates())
}
