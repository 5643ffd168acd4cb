package graph_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlekbai/automata/definition"
	"github.com/atlekbai/automata/graph"
	"github.com/atlekbai/automata/guards"
)

func TestGraphML_RoundTrip(t *testing.T) {
	sm := newEvenZeros(t)

	var buf bytes.Buffer
	require.NoError(t, graph.WriteGraphML(&buf, sm.Info()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<graph id="G" edgedefault="directed">`)
	assert.Contains(t, out, `<data key="start">even</data>`)
	assert.Contains(t, out, `<data key="final">true</data>`)
	assert.Contains(t, out, `<edge id="e0" source="even" target="odd">`)

	d, err := graph.ReadGraphML(&buf)
	require.NoError(t, err)
	assert.Equal(t, definition.Capture(sm.Info()), d)

	rebuilt, err := definition.Build[rune](d, guards.NewRuneResolver())
	require.NoError(t, err)
	assert.Equal(t, sm.Info(), rebuilt.Info())
}

func TestReadGraphML_ForeignKeys(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
  <key id="d0" for="graph" attr.name="start" attr.type="string"/>
  <key id="d1" for="node" attr.name="final" attr.type="boolean"/>
  <key id="d2" for="edge" attr.name="guard" attr.type="string"/>
  <key id="d3" for="edge" attr.name="weight" attr.type="double"/>
  <graph edgedefault="directed">
    <data key="d0">a</data>
    <node id="a"/>
    <node id="b"><data key="d1">1</data></node>
    <edge source="a" target="b"><data key="d2">range:0-9</data><data key="d3">0.5</data></edge>
    <edge source="b" target="a"/>
  </graph>
</graphml>`

	d, err := graph.ReadGraphML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "a", d.Start)
	assert.Equal(t, []string{"a", "b"}, d.States)
	assert.Equal(t, []string{"b"}, d.Final)
	assert.Equal(t, []definition.Transition{
		{From: "a", To: "b", Guard: "range:0-9"},
		{From: "b", To: "a", Guard: "never"},
	}, d.Transitions)
}

func TestReadGraphML_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not xml", doc: "digraph {}"},
		{name: "bad final", doc: `<graphml><key id="f" for="node" attr.name="final"/><graph><node id="a"><data key="f">maybe</data></node></graph></graphml>`},
		{name: "start without nodes", doc: `<graphml><key id="s" for="graph" attr.name="start"/><graph><data key="s">a</data></graph></graphml>`},
		{name: "dangling edge", doc: `<graphml><graph><node id="a"/><edge source="a" target="b"/></graph></graphml>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := graph.ReadGraphML(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}
