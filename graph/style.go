package graph

// Style defines the interface for formatting state graphs.
type Style interface {
	// GetPrefix returns the text that starts a new graph.
	GetPrefix() string

	// GetInitialTransition returns the text for the start state marker and
	// anything that closes the graph. initialState may be nil.
	GetInitialTransition(initialState *State) string

	// FormatOneState formats a single state.
	FormatOneState(state *State) string

	// FormatFinalState formats the accepting marker of a final state.
	FormatFinalState(state *State) string

	// FormatAllTransitions formats all transitions.
	FormatAllTransitions(transitions []*Transition) []string

	// FormatOneTransition formats a single transition.
	FormatOneTransition(sourceNodeName, description, destinationNodeName, guard string) string
}

// FormatTransitions is a helper that formats all transitions using the given style.
func FormatTransitions(style Style, transitions []*Transition) []string {
	var lines []string

	for _, transit := range transitions {
		if transit.SourceState == nil || transit.DestinationState == nil {
			continue
		}
		line := style.FormatOneTransition(
			transit.SourceState.NodeName,
			transit.Description,
			transit.DestinationState.NodeName,
			transit.Guard,
		)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// transitionLabel joins a description and a guard reference as "description [guard]".
func transitionLabel(description, guard string) string {
	switch {
	case description == "":
		return "[" + guard + "]"
	case guard == "":
		return description
	default:
		return description + " [" + guard + "]"
	}
}
