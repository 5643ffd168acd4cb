package graph

import (
	"fmt"
	"strings"

	"github.com/atlekbai/automata"
)

// UmlDotGraphStyle generates DOT graphs in basic UML style.
type UmlDotGraphStyle struct{}

// NewUmlDotGraphStyle creates a new UML DOT graph style.
func NewUmlDotGraphStyle() *UmlDotGraphStyle {
	return &UmlDotGraphStyle{}
}

// GetPrefix returns the text that starts a new DOT graph.
func (s *UmlDotGraphStyle) GetPrefix() string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("compound=true;\n")
	sb.WriteString("node [shape=Mrecord]\n")
	sb.WriteString("rankdir=\"LR\"\n")
	return sb.String()
}

// FormatOneState formats a single state. Final states get a double border.
func (s *UmlDotGraphStyle) FormatOneState(state *State) string {
	escapedName := EscapeLabel(state.StateName)
	if state.Final {
		return fmt.Sprintf("\"%s\" [label=\"%s\", peripheries=2];\n", escapedName, escapedName)
	}
	return fmt.Sprintf("\"%s\" [label=\"%s\"];\n", escapedName, escapedName)
}

// FormatFinalState returns nothing: DOT marks final states on the node itself.
func (s *UmlDotGraphStyle) FormatFinalState(_ *State) string {
	return ""
}

// FormatAllTransitions formats all transitions.
func (s *UmlDotGraphStyle) FormatAllTransitions(transitions []*Transition) []string {
	return FormatTransitions(s, transitions)
}

// FormatOneTransition formats a single transition.
func (s *UmlDotGraphStyle) FormatOneTransition(sourceNodeName, description, destinationNodeName, guard string) string {
	return formatOneLine(sourceNodeName, destinationNodeName, transitionLabel(description, guard))
}

// GetInitialTransition returns the text for the initial state transition.
func (s *UmlDotGraphStyle) GetInitialTransition(initialState *State) string {
	if initialState == nil {
		return "\n}"
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(" init [label=\"\", shape=point];")
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(" init -> \"%s\"[style = \"solid\"]", EscapeLabel(initialState.NodeName)))
	sb.WriteString("\n")
	sb.WriteString("}")

	return sb.String()
}

// formatOneLine formats a single transition line.
func formatOneLine(fromNodeName, toNodeName, label string) string {
	return fmt.Sprintf("\"%s\" -> \"%s\" [style=\"solid\", label=\"%s\"];",
		EscapeLabel(fromNodeName), EscapeLabel(toNodeName), EscapeLabel(label))
}

// EscapeLabel escapes special characters in a label.
func EscapeLabel(label string) string {
	label = strings.ReplaceAll(label, "\\", "\\\\")
	label = strings.ReplaceAll(label, "\"", "\\\"")
	return label
}

// UmlDotGraph generates a UML DOT graph from automaton info.
func UmlDotGraph(info *automata.Info) string {
	graph := NewStateGraph(info)
	return graph.ToGraph(NewUmlDotGraphStyle())
}
