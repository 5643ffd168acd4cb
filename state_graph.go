package automata

import "slices"

// StateGraph is the directed multigraph an automaton stores its states and
// transitions in. Vertices are state names; edges are transitions. Parallel
// edges between the same pair of states are allowed.
type StateGraph[A any] interface {
	// AddVertex adds a vertex and reports whether it was newly added.
	AddVertex(name string) bool

	// RemoveVertex removes a vertex with its incident edges and reports whether
	// it was present. Listeners registered with OnVertexRemoved are notified
	// synchronously after removal.
	RemoveVertex(name string) bool

	// HasVertex reports whether the vertex exists.
	HasVertex(name string) bool

	// Vertices returns all vertices.
	Vertices() []string

	// AddEdge adds an edge. It returns false if an endpoint is missing or the
	// same edge was already added.
	AddEdge(t *Transition[A]) bool

	// RemoveEdge removes the first edge equal to t and reports whether one was found.
	RemoveEdge(t *Transition[A]) bool

	// OutEdges returns the edges leaving a vertex. Callers must not modify the result.
	OutEdges(name string) []*Transition[A]

	// Edges returns all edges.
	Edges() []*Transition[A]

	// OnVertexRemoved registers a listener invoked when a vertex is removed.
	OnVertexRemoved(listener func(name string))
}

// Multigraph is the default in-memory StateGraph. Vertices and edges keep
// insertion order.
type Multigraph[A any] struct {
	vertices  []string
	out       map[string][]*Transition[A]
	listeners []func(string)
}

// NewMultigraph creates an empty multigraph.
func NewMultigraph[A any]() *Multigraph[A] {
	return &Multigraph[A]{
		out: make(map[string][]*Transition[A]),
	}
}

// AddVertex implements StateGraph. Reserved state names are refused.
func (g *Multigraph[A]) AddVertex(name string) bool {
	if validStateName(name) != nil {
		return false
	}
	if _, exists := g.out[name]; exists {
		return false
	}
	g.vertices = append(g.vertices, name)
	g.out[name] = nil
	return true
}

// RemoveVertex implements StateGraph.
func (g *Multigraph[A]) RemoveVertex(name string) bool {
	if _, exists := g.out[name]; !exists {
		return false
	}
	delete(g.out, name)
	g.vertices = slices.DeleteFunc(g.vertices, func(v string) bool { return v == name })

	// Drop edges arriving at the removed vertex.
	for v, edges := range g.out {
		g.out[v] = slices.DeleteFunc(edges, func(t *Transition[A]) bool { return t.target == name })
	}

	for _, listener := range slices.Clone(g.listeners) {
		listener(name)
	}
	return true
}

// HasVertex implements StateGraph.
func (g *Multigraph[A]) HasVertex(name string) bool {
	_, exists := g.out[name]
	return exists
}

// Vertices implements StateGraph.
func (g *Multigraph[A]) Vertices() []string {
	return slices.Clone(g.vertices)
}

// AddEdge implements StateGraph.
func (g *Multigraph[A]) AddEdge(t *Transition[A]) bool {
	if t == nil || !g.HasVertex(t.source) || !g.HasVertex(t.target) {
		return false
	}
	if slices.Contains(g.out[t.source], t) {
		return false
	}
	g.out[t.source] = append(g.out[t.source], t)
	return true
}

// RemoveEdge implements StateGraph.
func (g *Multigraph[A]) RemoveEdge(t *Transition[A]) bool {
	if t == nil {
		return false
	}
	edges := g.out[t.source]
	i := slices.Index(edges, t)
	if i < 0 {
		i = slices.IndexFunc(edges, t.Equal)
	}
	if i < 0 {
		return false
	}
	g.out[t.source] = slices.Delete(edges, i, i+1)
	return true
}

// OutEdges implements StateGraph.
func (g *Multigraph[A]) OutEdges(name string) []*Transition[A] {
	return g.out[name]
}

// Edges implements StateGraph.
func (g *Multigraph[A]) Edges() []*Transition[A] {
	var edges []*Transition[A]
	for _, v := range g.vertices {
		edges = append(edges, g.out[v]...)
	}
	return edges
}

// OnVertexRemoved implements StateGraph.
func (g *Multigraph[A]) OnVertexRemoved(listener func(name string)) {
	g.listeners = append(g.listeners, listener)
}
