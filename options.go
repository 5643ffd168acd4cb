package automata

// Option configures an automaton during construction.
type Option[A any] func(*FiniteStateMachine[A])

// WithGraph stores states and transitions in g instead of a new Multigraph.
// Vertices already present in g become states of the automaton, except those
// with a reserved name (the empty string and ErrorStateName), which the
// automaton ignores.
func WithGraph[A any](g StateGraph[A]) Option[A] {
	return func(m *FiniteStateMachine[A]) {
		if g != nil {
			m.graph = g
		}
	}
}

// WithLogger sets the logger used for diagnostics. Nil loggers are ignored.
func WithLogger[A any](logger Logger) Option[A] {
	return func(m *FiniteStateMachine[A]) {
		if logger != nil {
			m.logger = logger
		}
	}
}
