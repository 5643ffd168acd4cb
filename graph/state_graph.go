package graph

import (
	"sort"
	"strings"

	"github.com/atlekbai/automata"
)

// StateGraph generates a symbolic representation of the graph structure.
type StateGraph struct {
	// InitialState is the start state, or nil.
	InitialState *State

	// States contains all states in the graph, indexed by state name.
	States map[string]*State

	// Transitions contains all transitions in the graph.
	Transitions []*Transition
}

// NewStateGraph creates a new state graph from automaton info.
func NewStateGraph(info *automata.Info) *StateGraph {
	sg := &StateGraph{
		States: make(map[string]*State, len(info.States)),
	}

	for _, s := range info.States {
		sg.States[s.Name] = &State{
			StateName: s.Name,
			NodeName:  s.Name,
			Final:     s.Final,
		}
	}

	for _, t := range info.Transitions {
		from, okFrom := sg.States[t.Source]
		to, okTo := sg.States[t.Target]
		if !okFrom || !okTo {
			continue
		}
		trans := &Transition{
			Description:      t.Description,
			SourceState:      from,
			DestinationState: to,
			Guard:            t.Guard,
		}
		sg.Transitions = append(sg.Transitions, trans)
		from.Leaving = append(from.Leaving, trans)
		to.Arriving = append(to.Arriving, trans)
	}

	if info.HasStartState() {
		sg.InitialState = sg.States[info.StartState]
	}

	return sg
}

// ToGraph converts the graph to a string using the specified style.
func (sg *StateGraph) ToGraph(style Style) string {
	var sb strings.Builder

	sb.WriteString(style.GetPrefix())

	for _, name := range sg.getSortedStateNames() {
		sb.WriteString(style.FormatOneState(sg.States[name]))
	}

	lines := style.FormatAllTransitions(sg.getSortedTransitions())
	for _, line := range lines {
		sb.WriteString("\n")
		sb.WriteString(line)
	}

	for _, name := range sg.getSortedStateNames() {
		if state := sg.States[name]; state.Final {
			sb.WriteString(style.FormatFinalState(state))
		}
	}

	sb.WriteString(style.GetInitialTransition(sg.InitialState))

	return sb.String()
}

// getSortedStateNames returns state names in sorted order for deterministic output.
func (sg *StateGraph) getSortedStateNames() []string {
	names := make([]string, 0, len(sg.States))
	for name := range sg.States {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// getSortedTransitions returns transitions sorted by source state, then
// destination state, then guard, then description.
func (sg *StateGraph) getSortedTransitions() []*Transition {
	sorted := make([]*Transition, len(sg.Transitions))
	copy(sorted, sg.Transitions)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i], sorted[j]
		if ti.SourceState.StateName != tj.SourceState.StateName {
			return ti.SourceState.StateName < tj.SourceState.StateName
		}
		if ti.DestinationState.StateName != tj.DestinationState.StateName {
			return ti.DestinationState.StateName < tj.DestinationState.StateName
		}
		if ti.Guard != tj.Guard {
			return ti.Guard < tj.Guard
		}
		return ti.Description < tj.Description
	})
	return sorted
}
