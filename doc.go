// Package automata provides a generic, graph-backed finite automaton engine for Go.
//
// An automaton is a mutable set of named states connected by guarded
// transitions over an arbitrary alphabet type. It supports:
//
//   - Generic alphabets (runes, bytes, event names, structs)
//   - Guard predicates evaluated per symbol
//   - Ordered, unsubscribable on-fire hooks per transition
//   - Start and final state bookkeeping kept consistent with the graph
//   - Deterministic and nondeterministic traversal
//   - Whole-sequence consumption from lazy iterators
//   - Introspection for graph rendering and definition export
//
// # Basic Usage
//
// Create an automaton and add states:
//
//	fsm := automata.New[rune]()
//	fsm.AddStates("even", "odd")
//
// Connect states with guarded transitions:
//
//	fsm.AddTransition(automata.NewTransition("even", "odd", automata.Equals('0')))
//	fsm.AddTransition(automata.NewTransition("odd", "even", automata.Equals('0')))
//
// Mark start and final states, then consume input:
//
//	fsm.SetStartState("even")
//	fsm.SetFinalState("even")
//	res, err := fsm.ConsumeSlice('0', '0')
//
// # Traversal
//
// Enumerators step through the automaton one symbol at a time:
//
//	en, err := fsm.CreateEnumerator("even", automata.Nondeterministic)
//	ok, err := en.Step('0')
//
// A deterministic enumerator reports an *AmbiguousTransitionError when more
// than one transition accepts a symbol. A failed lookup is not an error: the
// enumerator moves to ErrorState and every later step returns false.
//
// # Graph Generation
//
// Export to DOT, Mermaid or GraphML:
//
//	import "github.com/atlekbai/automata/graph"
//	dot := graph.UmlDotGraph(fsm.Info())
//
// Automata are not safe for concurrent mutation. Callers serialize access.
package automata
