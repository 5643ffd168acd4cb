package graph

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/atlekbai/automata"
)

// MermaidGraphDirection specifies the direction of the Mermaid graph.
type MermaidGraphDirection int

const (
	// TopToBottom flows from top to bottom.
	TopToBottom MermaidGraphDirection = iota
	// BottomToTop flows from bottom to top.
	BottomToTop
	// LeftToRight flows from left to right.
	LeftToRight
	// RightToLeft flows from right to left.
	RightToLeft
)

// MermaidGraphStyle generates Mermaid graphs.
type MermaidGraphStyle struct {
	graph               *StateGraph
	direction           *MermaidGraphDirection
	stateMap            map[string]*State
	stateMapInitialized bool
}

// NewMermaidGraphStyle creates a new Mermaid graph style.
func NewMermaidGraphStyle(graph *StateGraph, direction *MermaidGraphDirection) *MermaidGraphStyle {
	return &MermaidGraphStyle{
		graph:     graph,
		direction: direction,
		stateMap:  make(map[string]*State),
	}
}

// GetPrefix returns the text that starts a new Mermaid graph.
func (s *MermaidGraphStyle) GetPrefix() string {
	s.buildSanitizedNamedStateMap()

	var sb strings.Builder
	sb.WriteString("stateDiagram-v2")

	if s.direction != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("\tdirection %s", getDirectionCode(*s.direction)))
	}

	// Aliases for states whose names had to be sanitized.
	aliases := make([]string, 0, len(s.stateMap))
	for sanitizedName, state := range s.stateMap {
		if sanitizedName != state.StateName {
			aliases = append(aliases, sanitizedName)
		}
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("\t%s : %s", alias, s.stateMap[alias].StateName))
	}

	return sb.String()
}

// FormatOneState formats a single state (Mermaid doesn't need explicit state definitions).
func (s *MermaidGraphStyle) FormatOneState(_ *State) string {
	return ""
}

// FormatFinalState links a final state to the end marker.
func (s *MermaidGraphStyle) FormatFinalState(state *State) string {
	return fmt.Sprintf("\n\t%s --> [*]", s.getSanitizedStateName(state.StateName))
}

// FormatAllTransitions formats all transitions.
func (s *MermaidGraphStyle) FormatAllTransitions(transitions []*Transition) []string {
	return FormatTransitions(s, transitions)
}

// FormatOneTransition formats a single transition.
func (s *MermaidGraphStyle) FormatOneTransition(sourceNodeName, description, destinationNodeName, guard string) string {
	sanitizedSource := s.getSanitizedStateName(sourceNodeName)
	sanitizedDest := s.getSanitizedStateName(destinationNodeName)

	return fmt.Sprintf("\t%s --> %s : %s", sanitizedSource, sanitizedDest, transitionLabel(description, guard))
}

// GetInitialTransition returns the text for the initial state transition.
func (s *MermaidGraphStyle) GetInitialTransition(initialState *State) string {
	if initialState == nil {
		return ""
	}

	return fmt.Sprintf("\n[*] --> %s", s.getSanitizedStateName(initialState.StateName))
}

// buildSanitizedNamedStateMap builds a map of sanitized state names to states.
func (s *MermaidGraphStyle) buildSanitizedNamedStateMap() {
	if s.stateMapInitialized {
		return
	}

	uniqueAliases := make(map[string]bool)

	for _, name := range s.graph.getSortedStateNames() {
		state := s.graph.States[name]
		sanitizedName := sanitizeStateName(state.StateName)

		if sanitizedName != state.StateName {
			count := 1
			tempName := sanitizedName
			for uniqueAliases[tempName] || s.graph.States[tempName] != nil {
				tempName = fmt.Sprintf("%s_%d", sanitizedName, count)
				count++
			}
			sanitizedName = tempName
			uniqueAliases[sanitizedName] = true
		}

		s.stateMap[sanitizedName] = state
	}

	s.stateMapInitialized = true
}

// getSanitizedStateName returns the sanitized name for a state.
func (s *MermaidGraphStyle) getSanitizedStateName(stateName string) string {
	for sanitizedName, state := range s.stateMap {
		if state.StateName == stateName {
			return sanitizedName
		}
	}
	return stateName
}

// sanitizeStateName removes characters that would cause invalid Mermaid graphs.
func sanitizeStateName(name string) string {
	var result strings.Builder
	for _, c := range name {
		if !unicode.IsSpace(c) && c != ':' && c != '-' && c != '=' {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// getDirectionCode returns the Mermaid direction code.
func getDirectionCode(direction MermaidGraphDirection) string {
	switch direction {
	case TopToBottom:
		return "TB"
	case BottomToTop:
		return "BT"
	case LeftToRight:
		return "LR"
	case RightToLeft:
		return "RL"
	default:
		return "TB"
	}
}

// MermaidGraph generates a Mermaid graph from automaton info.
func MermaidGraph(info *automata.Info, direction *MermaidGraphDirection) string {
	graph := NewStateGraph(info)
	return graph.ToGraph(NewMermaidGraphStyle(graph, direction))
}
