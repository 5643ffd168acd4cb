package automata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atlekbai/automata"
	"github.com/atlekbai/automata/guards"
)

func TestMultigraph(t *testing.T) {
	g := automata.NewMultigraph[rune]()
	var _ automata.StateGraph[rune] = g

	assert.True(t, g.AddVertex("a"))
	assert.True(t, g.AddVertex("b"))
	assert.False(t, g.AddVertex("a"))
	assert.Equal(t, []string{"a", "b"}, g.Vertices())

	ab := automata.NewTransition("a", "b", guards.Rune('x'))
	ab2 := automata.NewTransition("a", "b", guards.Rune('y'))
	ba := automata.NewTransition("b", "a", guards.Rune('x'))
	assert.True(t, g.AddEdge(ab))
	assert.True(t, g.AddEdge(ab2))
	assert.True(t, g.AddEdge(ba))
	assert.False(t, g.AddEdge(ab))
	assert.False(t, g.AddEdge(automata.NewTransition("a", "c", guards.Rune('x'))))

	assert.Equal(t, []*automata.Transition[rune]{ab, ab2}, g.OutEdges("a"))
	assert.Equal(t, []*automata.Transition[rune]{ab, ab2, ba}, g.Edges())

	assert.True(t, g.RemoveEdge(ab2))
	assert.False(t, g.RemoveEdge(ab2))
	assert.Equal(t, []*automata.Transition[rune]{ab}, g.OutEdges("a"))
}

func TestMultigraph_RemoveVertex(t *testing.T) {
	g := automata.NewMultigraph[rune]()
	g.AddVertex("a")
	g.AddVertex("b")
	g.AddEdge(automata.NewTransition("a", "b", guards.Rune('x')))
	g.AddEdge(automata.NewTransition("b", "a", guards.Rune('x')))
	g.AddEdge(automata.NewTransition("a", "a", guards.Rune('y')))

	var removed []string
	g.OnVertexRemoved(func(name string) { removed = append(removed, name) })

	assert.True(t, g.RemoveVertex("b"))
	assert.False(t, g.RemoveVertex("b"))

	assert.Equal(t, []string{"b"}, removed, "listeners fire once per actual removal")
	assert.False(t, g.HasVertex("b"))
	assert.Len(t, g.Edges(), 1)
	assert.Empty(t, g.OutEdges("b"))
}

func TestMultigraph_RefusesReservedNames(t *testing.T) {
	g := automata.NewMultigraph[rune]()
	assert.False(t, g.AddVertex(automata.ErrorStateName))
	assert.False(t, g.AddVertex(""))
	assert.Empty(t, g.Vertices())

	fsm := automata.New(automata.WithGraph[rune](g))
	assert.False(t, fsm.Graph().AddVertex(automata.ErrorStateName))
	assert.False(t, fsm.HasState(automata.ErrorStateName))
	assert.Empty(t, fsm.States())
	assert.ErrorIs(t, fsm.SetStartState(automata.ErrorStateName), automata.ErrInvalidArgument)
}

// reservedGraph admits any vertex name, reserved ones included.
type reservedGraph struct {
	*automata.Multigraph[rune]
	extra []string
}

func (g *reservedGraph) AddVertex(name string) bool {
	if name == automata.ErrorStateName {
		g.extra = append(g.extra, name)
		return true
	}
	return g.Multigraph.AddVertex(name)
}

func (g *reservedGraph) HasVertex(name string) bool {
	return (name == automata.ErrorStateName && len(g.extra) > 0) || g.Multigraph.HasVertex(name)
}

func (g *reservedGraph) Vertices() []string {
	return append(g.Multigraph.Vertices(), g.extra...)
}

func TestWithGraph_IgnoresReservedVertices(t *testing.T) {
	g := &reservedGraph{Multigraph: automata.NewMultigraph[rune]()}
	fsm := automata.New(automata.WithGraph[rune](g))
	_, err := fsm.AddState("a")
	assert.NoError(t, err)
	assert.True(t, fsm.Graph().AddVertex(automata.ErrorStateName))

	assert.True(t, g.HasVertex(automata.ErrorStateName))
	assert.False(t, fsm.HasState(automata.ErrorStateName))
	assert.Equal(t, []string{"a"}, fsm.States())
	assert.Equal(t, []string{"a"}, fsm.Info().StateNames())
	assert.ErrorIs(t, fsm.SetFinalState(automata.ErrorStateName), automata.ErrInvalidArgument)
	_, err = fsm.CreateEnumerator(automata.ErrorStateName, automata.Deterministic)
	assert.ErrorIs(t, err, automata.ErrInvalidArgument)
}
