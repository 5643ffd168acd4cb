package guards_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlekbai/automata"
	"github.com/atlekbai/automata/guards"
)

func TestRuneGuards(t *testing.T) {
	tests := []struct {
		name    string
		guard   *automata.Guard[rune]
		ref     string
		accepts string
		rejects string
	}{
		{name: "rune", guard: guards.Rune('0'), ref: "eq:0", accepts: "0", rejects: "1a"},
		{name: "set", guard: guards.RuneIn("01"), ref: "in:01", accepts: "01", rejects: "2a"},
		{name: "range", guard: guards.RuneRange('a', 'f'), ref: "range:a-f", accepts: "acf", rejects: "gz0"},
		{name: "not", guard: guards.Not(guards.Rune('0')), ref: "not:eq:0", accepts: "1a", rejects: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ref, tt.guard.Ref())
			for _, r := range tt.accepts {
				assert.True(t, tt.guard.Accepts(r), "%q", r)
			}
			for _, r := range tt.rejects {
				assert.False(t, tt.guard.Accepts(r), "%q", r)
			}
		})
	}
}

func TestWordGuards(t *testing.T) {
	coin := guards.Word("coin")
	assert.Equal(t, "eq:coin", coin.Ref())
	assert.True(t, coin.Accepts("coin"))
	assert.False(t, coin.Accepts("push"))

	either := guards.WordIn("coin", "push")
	assert.Equal(t, "in:coin,push", either.Ref())
	assert.True(t, either.Accepts("push"))
	assert.False(t, either.Accepts("kick"))
}

func TestRunes(t *testing.T) {
	assert.Equal(t, []rune("héllo"), slices.Collect(guards.Runes("héllo")))
	assert.Empty(t, slices.Collect(guards.Runes("")))

	var first []rune
	for r := range guards.Runes("abc") {
		first = append(first, r)
		break
	}
	assert.Equal(t, []rune{'a'}, first)
}

func TestRuneResolver(t *testing.T) {
	r := guards.NewRuneResolver()

	tests := []struct {
		ref     string
		accepts string
		rejects string
	}{
		{ref: "any", accepts: "a0 ", rejects: ""},
		{ref: "never", accepts: "", rejects: "a0 "},
		{ref: "eq:x", accepts: "x", rejects: "y"},
		{ref: "eq:é", accepts: "é", rejects: "e"},
		{ref: "in:01", accepts: "01", rejects: "2"},
		{ref: "range:0-9", accepts: "059", rejects: "a"},
		{ref: "not:in:01", accepts: "2a", rejects: "01"},
		{ref: "not:not:eq:1", accepts: "1", rejects: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			g, err := r.ResolveGuard(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.ref, g.Ref())
			assert.True(t, g.Resolved())
			for _, s := range tt.accepts {
				assert.True(t, g.Accepts(s), "%q", s)
			}
			for _, s := range tt.rejects {
				assert.False(t, g.Accepts(s), "%q", s)
			}
		})
	}
}

func TestRuneResolver_Invalid(t *testing.T) {
	r := guards.NewRuneResolver()
	for _, ref := range []string{"", "eq:", "eq:ab", "range:9-0", "range:0", "vowel", "not:vowel"} {
		_, err := r.ResolveGuard(ref)
		assert.ErrorIs(t, err, automata.ErrUnknownGuard, "ref %q", ref)
	}
}

func TestResolver_CachesAndPrefersRegistered(t *testing.T) {
	vowel := automata.NewGuard("vowel", func(r rune) bool { return r == 'a' || r == 'e' })
	zero := guards.Rune('0')
	r := guards.NewRuneResolver(vowel)
	require.NoError(t, r.Register(zero))

	g, err := r.ResolveGuard("vowel")
	require.NoError(t, err)
	assert.Same(t, vowel, g)

	g, err = r.ResolveGuard("eq:0")
	require.NoError(t, err)
	assert.Same(t, zero, g, "registered guards win over parsed references")

	first, err := r.ResolveGuard("in:ab")
	require.NoError(t, err)
	second, err := r.ResolveGuard("in:ab")
	require.NoError(t, err)
	assert.Same(t, first, second)

	assert.ErrorIs(t, r.Register(automata.NewGuard("vowel", func(rune) bool { return false })), automata.ErrInvalidArgument)
}

func TestWordResolver(t *testing.T) {
	r := guards.NewWordResolver()

	g, err := r.ResolveGuard("eq:coin")
	require.NoError(t, err)
	assert.True(t, g.Accepts("coin"))
	assert.False(t, g.Accepts("push"))

	g, err = r.ResolveGuard("in:coin,push")
	require.NoError(t, err)
	assert.True(t, g.Accepts("push"))
	assert.False(t, g.Accepts("kick"))

	g, err = r.ResolveGuard("not:eq:coin")
	require.NoError(t, err)
	assert.True(t, g.Accepts("push"))

	_, err = r.ResolveGuard("range:a-z")
	assert.ErrorIs(t, err, automata.ErrUnknownGuard)
}

func TestResolver_WithAutomaton(t *testing.T) {
	fsm := automata.New[rune]()
	require.NoError(t, fsm.Configure("s").Initial().Err())
	require.NoError(t, fsm.Configure("t").Final().Err())

	r := guards.NewRuneResolver()
	require.NoError(t, fsm.AddTransition(automata.NewTransition("s", "t", fsm.ResolveGuard(r, "range:0-9"))))
	require.NoError(t, fsm.AddTransition(automata.NewTransition("s", "t", fsm.ResolveGuard(r, "bogus"))))

	res, err := fsm.Consume(guards.Runes("7"))
	require.NoError(t, err)
	assert.True(t, res.Accepted())

	info := fsm.Info()
	require.Len(t, info.Transitions, 2)
	assert.Equal(t, "bogus", info.Transitions[1].Guard)
	assert.False(t, info.Transitions[1].GuardResolved)
}
