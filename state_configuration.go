package automata

// StateConfiguration provides a fluent interface for configuring a state.
// The first failing call is remembered and returned by Err; later calls
// are skipped.
type StateConfiguration[A any] struct {
	machine *FiniteStateMachine[A]
	state   string
	err     error
}

// Configure begins configuration of a state, adding it if needed.
func (m *FiniteStateMachine[A]) Configure(state string) *StateConfiguration[A] {
	sc := &StateConfiguration[A]{machine: m, state: state}
	_, sc.err = m.AddState(state)
	return sc
}

// State returns the state being configured.
func (sc *StateConfiguration[A]) State() string {
	return sc.state
}

// Err returns the first error encountered during configuration.
func (sc *StateConfiguration[A]) Err() error {
	return sc.err
}

// Permit adds a transition to target, guarded by guard. The target state is
// added if it does not exist.
func (sc *StateConfiguration[A]) Permit(guard *Guard[A], target string) *StateConfiguration[A] {
	return sc.PermitDescribed(guard, target, "")
}

// PermitDescribed is Permit with a transition description.
func (sc *StateConfiguration[A]) PermitDescribed(guard *Guard[A], target, description string) *StateConfiguration[A] {
	sc.PermitTransition(NewDescribedTransition(sc.state, target, guard, description))
	return sc
}

// PermitReentry adds a transition from the state back to itself.
func (sc *StateConfiguration[A]) PermitReentry(guard *Guard[A]) *StateConfiguration[A] {
	return sc.Permit(guard, sc.state)
}

// PermitTransition adds t, which must leave the configured state.
func (sc *StateConfiguration[A]) PermitTransition(t *Transition[A]) *StateConfiguration[A] {
	if sc.err != nil {
		return sc
	}
	if t == nil || t.source != sc.state {
		sc.err = newArgumentError("transition", "transition must leave state '%s'", sc.state)
		return sc
	}
	if _, err := sc.machine.AddState(t.target); err != nil {
		sc.err = err
		return sc
	}
	sc.err = sc.machine.AddTransition(t)
	return sc
}

// Final marks the state as final.
func (sc *StateConfiguration[A]) Final() *StateConfiguration[A] {
	if sc.err == nil {
		sc.err = sc.machine.SetFinalState(sc.state)
	}
	return sc
}

// Initial makes the state the start state.
func (sc *StateConfiguration[A]) Initial() *StateConfiguration[A] {
	if sc.err == nil {
		sc.err = sc.machine.SetStartState(sc.state)
	}
	return sc
}
