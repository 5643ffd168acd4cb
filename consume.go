package automata

import (
	"fmt"
	"iter"
	"slices"
)

// ConsumptionResult reports the outcome of consuming a symbol sequence.
type ConsumptionResult[A any] struct {
	accepted   bool
	lastSymbol A
	consumed   uint64
	lastStates StateSet
}

// Accepted reports whether consumption ended in a final state.
func (r *ConsumptionResult[A]) Accepted() bool {
	return r.accepted
}

// LastSymbol returns the last symbol processed, including a rejected one.
// It is the zero value when the input was empty.
func (r *ConsumptionResult[A]) LastSymbol() A {
	return r.lastSymbol
}

// SymbolsConsumed returns how many symbols were processed, including a rejected one.
func (r *ConsumptionResult[A]) SymbolsConsumed() uint64 {
	return r.consumed
}

// LastState returns the first state reached.
func (r *ConsumptionResult[A]) LastState() State {
	return r.lastStates.First()
}

// LastStates returns every state reached.
func (r *ConsumptionResult[A]) LastStates() StateSet {
	return r.lastStates
}

func (r *ConsumptionResult[A]) String() string {
	return fmt.Sprintf("ConsumptionResult { Accepted = %t, Consumed = %d, LastSymbol = %v, LastStates = %v }",
		r.accepted, r.consumed, r.lastSymbol, r.lastStates)
}

// Consume runs symbols through a deterministic enumerator rooted at the start
// state. Symbols are pulled in order until the sequence ends or a symbol is
// rejected; a rejected symbol still counts as consumed.
func (m *FiniteStateMachine[A]) Consume(symbols iter.Seq[A]) (*ConsumptionResult[A], error) {
	return m.ConsumeWith(Deterministic, symbols)
}

// ConsumeSlice is Consume over a slice.
func (m *FiniteStateMachine[A]) ConsumeSlice(symbols ...A) (*ConsumptionResult[A], error) {
	return m.Consume(slices.Values(symbols))
}

// ConsumeWith is Consume with a chosen traversal mode. In nondeterministic
// mode the input is accepted if any reached state is final.
func (m *FiniteStateMachine[A]) ConsumeWith(mode Mode, symbols iter.Seq[A]) (*ConsumptionResult[A], error) {
	start, ok := m.StartState()
	if !ok {
		return nil, &MissingStartStateError{}
	}
	en, err := m.CreateEnumerator(start, mode)
	if err != nil {
		return nil, err
	}

	result := &ConsumptionResult[A]{}
	for symbol := range symbols {
		result.consumed++
		result.lastSymbol = symbol
		moved, err := en.Step(symbol)
		if err != nil {
			return nil, err
		}
		if !moved {
			m.logger.Debug("symbol rejected",
				"symbol", symbol, "position", result.consumed, "mode", mode.String())
			break
		}
	}

	result.lastStates = en.CurrentStates()
	for state := range result.lastStates.All() {
		if !state.IsError() && m.IsFinalState(state.name) {
			result.accepted = true
			break
		}
	}
	return result, nil
}
