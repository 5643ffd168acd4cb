// Package looplabfsm builds automata from github.com/looplab/fsm event tables.
//
// The resulting automaton reads event names: each (source, event) pair of the
// table becomes a transition whose guard accepts exactly that event name.
package looplabfsm

import (
	"fmt"

	"github.com/looplab/fsm"

	"github.com/atlekbai/automata"
	"github.com/atlekbai/automata/guards"
)

// FromEvents converts an event table into an automaton starting in initial.
// finals are marked as final states.
//
// looplab/fsm lets a later EventDesc override an earlier one for the same
// source state and event; FromEvents rejects such tables because the
// automaton would become nondeterministic.
func FromEvents(initial string, events fsm.Events, finals ...string) (*automata.FiniteStateMachine[string], error) {
	m := automata.New[string]()

	if _, err := m.AddState(initial); err != nil {
		return nil, err
	}

	eventGuards := make(map[string]*automata.Guard[string])
	seen := make(map[[2]string]string)

	for _, e := range events {
		g, ok := eventGuards[e.Name]
		if !ok {
			g = guards.Word(e.Name)
			eventGuards[e.Name] = g
		}
		if _, err := m.AddState(e.Dst); err != nil {
			return nil, fmt.Errorf("event %q: %w", e.Name, err)
		}
		for _, src := range e.Src {
			key := [2]string{src, e.Name}
			if dst, dup := seen[key]; dup {
				return nil, fmt.Errorf("event %q from state %q is defined twice (to %q and %q)", e.Name, src, dst, e.Dst)
			}
			seen[key] = e.Dst

			if _, err := m.AddState(src); err != nil {
				return nil, fmt.Errorf("event %q: %w", e.Name, err)
			}
			if err := m.AddTransition(automata.NewDescribedTransition(src, e.Dst, g, e.Name)); err != nil {
				return nil, err
			}
		}
	}

	if err := m.SetStartState(initial); err != nil {
		return nil, err
	}
	if err := m.SetFinalStates(finals...); err != nil {
		return nil, err
	}
	return m, nil
}

// FromFSM converts the event table used to build f and starts the automaton
// in f's current state.
func FromFSM(f *fsm.FSM, events fsm.Events, finals ...string) (*automata.FiniteStateMachine[string], error) {
	return FromEvents(f.Current(), events, finals...)
}
