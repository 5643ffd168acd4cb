package automata_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atlekbai/automata"
	"github.com/atlekbai/automata/guards"
)

// newModThree builds an automaton accepting strings whose length is divisible
// by three. State "mod3=k" means k more symbols are needed to reach a multiple
// of three.
func newModThree(t *testing.T) *automata.FiniteStateMachine[rune] {
	t.Helper()
	fsm := automata.New[rune]()
	always := automata.Always[rune]()
	require.NoError(t, fsm.Configure("0").Initial().Final().Permit(always, "mod3=2").Err())
	require.NoError(t, fsm.Configure("mod3=2").Permit(always, "mod3=1").Err())
	require.NoError(t, fsm.Configure("mod3=1").Permit(always, "0").Err())
	return fsm
}

// newEvenZeros builds an automaton accepting binary strings with an even number of zeros.
func newEvenZeros(t *testing.T) *automata.FiniteStateMachine[rune] {
	t.Helper()
	fsm := automata.New[rune]()
	zero, one := guards.Rune('0'), guards.Rune('1')
	require.NoError(t, fsm.Configure("even").Initial().Final().
		Permit(zero, "odd").
		PermitReentry(one).Err())
	require.NoError(t, fsm.Configure("odd").
		Permit(zero, "even").
		PermitReentry(one).Err())
	return fsm
}

// newOverlapping builds a nondeterministic automaton whose start state has
// three transitions accepting 'a'.
func newOverlapping(t *testing.T) *automata.FiniteStateMachine[rune] {
	t.Helper()
	fsm := automata.New[rune]()
	require.NoError(t, fsm.Configure("s").Initial().
		Permit(guards.Rune('a'), "q2").
		Permit(guards.RuneRange('a', 'c'), "q1").
		Permit(guards.RuneIn("ab"), "q3").
		Permit(guards.Rune('b'), "q1").Err())
	require.NoError(t, fsm.Configure("q1").Final().Permit(guards.Rune('a'), "q1").Err())
	require.NoError(t, fsm.Configure("q2").Permit(guards.Rune('b'), "q3").Err())
	require.NoError(t, fsm.Configure("q3").Permit(guards.Rune('c'), "q1").Err())
	return fsm
}
