package graph

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/atlekbai/automata"
	"github.com/atlekbai/automata/definition"
)

const graphMLNamespace = "http://graphml.graphdrawing.org/xmlns"

// GraphML attribute names understood by ReadGraphML.
const (
	AttrFinal       = "final"
	AttrStart       = "start"
	AttrGuard       = "guard"
	AttrDescription = "description"
)

type graphMLDocument struct {
	XMLName xml.Name     `xml:"graphml"`
	XMLNS   string       `xml:"xmlns,attr,omitempty"`
	Keys    []graphMLKey `xml:"key"`
	Graph   graphMLGraph `xml:"graph"`
}

type graphMLKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type graphMLGraph struct {
	ID          string        `xml:"id,attr,omitempty"`
	EdgeDefault string        `xml:"edgedefault,attr"`
	Data        []graphMLData `xml:"data"`
	Nodes       []graphMLNode `xml:"node"`
	Edges       []graphMLEdge `xml:"edge"`
}

type graphMLNode struct {
	ID   string        `xml:"id,attr"`
	Data []graphMLData `xml:"data"`
}

type graphMLEdge struct {
	ID     string        `xml:"id,attr,omitempty"`
	Source string        `xml:"source,attr"`
	Target string        `xml:"target,attr"`
	Data   []graphMLData `xml:"data"`
}

type graphMLData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// WriteGraphML writes the automaton described by info as GraphML. Guards are
// written as their textual references.
func WriteGraphML(w io.Writer, info *automata.Info) error {
	doc := graphMLDocument{
		XMLNS: graphMLNamespace,
		Keys: []graphMLKey{
			{ID: AttrStart, For: "graph", AttrName: AttrStart, AttrType: "string"},
			{ID: AttrFinal, For: "node", AttrName: AttrFinal, AttrType: "boolean"},
			{ID: AttrGuard, For: "edge", AttrName: AttrGuard, AttrType: "string"},
			{ID: AttrDescription, For: "edge", AttrName: AttrDescription, AttrType: "string"},
		},
		Graph: graphMLGraph{ID: "G", EdgeDefault: "directed"},
	}

	if info.HasStartState() {
		doc.Graph.Data = append(doc.Graph.Data, graphMLData{Key: AttrStart, Value: info.StartState})
	}
	for _, s := range info.States {
		node := graphMLNode{ID: s.Name}
		if s.Final {
			node.Data = append(node.Data, graphMLData{Key: AttrFinal, Value: "true"})
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, node)
	}
	for i, t := range info.Transitions {
		edge := graphMLEdge{
			ID:     "e" + strconv.Itoa(i),
			Source: t.Source,
			Target: t.Target,
			Data:   []graphMLData{{Key: AttrGuard, Value: t.Guard}},
		}
		if t.Description != "" {
			edge.Data = append(edge.Data, graphMLData{Key: AttrDescription, Value: t.Description})
		}
		doc.Graph.Edges = append(doc.Graph.Edges, edge)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode graphml: %w", err)
	}
	return enc.Close()
}

// ReadGraphML parses GraphML into a definition. Data keys are matched by
// their attr.name, so documents written by other tools are accepted as long as
// they use the same attribute names. Edges without a guard get the "never" guard.
func ReadGraphML(r io.Reader) (*definition.Definition, error) {
	var doc graphMLDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode graphml: %w", err)
	}

	names := make(map[string]string, len(doc.Keys))
	for _, k := range doc.Keys {
		names[k.ID] = k.AttrName
	}
	lookup := func(data []graphMLData, attr string) (string, bool) {
		for _, d := range data {
			if names[d.Key] == attr {
				return d.Value, true
			}
		}
		return "", false
	}

	def := &definition.Definition{}
	if start, ok := lookup(doc.Graph.Data, AttrStart); ok {
		def.Start = start
	}
	for _, n := range doc.Graph.Nodes {
		def.States = append(def.States, n.ID)
		if v, ok := lookup(n.Data, AttrFinal); ok {
			final, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("node %q: invalid %s value %q", n.ID, AttrFinal, v)
			}
			if final {
				def.Final = append(def.Final, n.ID)
			}
		}
	}
	for _, e := range doc.Graph.Edges {
		t := definition.Transition{From: e.Source, To: e.Target, Guard: "never"}
		if guard, ok := lookup(e.Data, AttrGuard); ok && guard != "" {
			t.Guard = guard
		}
		if desc, ok := lookup(e.Data, AttrDescription); ok {
			t.Description = desc
		}
		def.Transitions = append(def.Transitions, t)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}
