package automata

import (
	"fmt"
	"reflect"
	"runtime"
	"slices"
	"strings"
)

// InvocationInfo describes a function attached to an automaton, such as a guard predicate.
type InvocationInfo struct {
	// MethodName is the name of the function.
	MethodName string
	// description is the user-specified description (can be empty).
	description string
}

// DefaultFunctionDescription is the text returned for compiler-generated functions
// where the caller has not specified a description.
var DefaultFunctionDescription = "Function"

// NullString is the string representation of a null value.
const NullString = "<null>"

// NewInvocationInfo creates a new InvocationInfo.
func NewInvocationInfo(methodName, description string) InvocationInfo {
	return InvocationInfo{
		MethodName:  methodName,
		description: description,
	}
}

// CreateInvocationInfo creates InvocationInfo from a function and description.
func CreateInvocationInfo(fn any, description string) InvocationInfo {
	return NewInvocationInfo(getFunctionName(fn), description)
}

// Description returns the description of the function.
// Returns:
// 1. The user-specified description, if any
// 2. Otherwise, if the function name is compiler-generated, returns DefaultFunctionDescription
// 3. Otherwise, the function name
func (i InvocationInfo) Description() string {
	if i.description != "" {
		return i.description
	}
	if i.MethodName == "" {
		return NullString
	}
	if strings.Contains(i.MethodName, "func") || strings.Contains(i.MethodName, ".") {
		return DefaultFunctionDescription
	}
	return i.MethodName
}

// getFunctionName returns the name of a function.
func getFunctionName(fn any) string {
	if fn == nil {
		return ""
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

// Info exposes the states, transitions, start and final states of an automaton.
// It is a detached copy: later mutation of the automaton does not change it.
type Info struct {
	// States lists every vertex in graph order.
	States []StateInfo

	// Transitions lists every edge in graph order.
	Transitions []TransitionInfo

	// StartState is the configured start state, or empty.
	StartState string

	// AlphabetType is a string representation of the alphabet type.
	AlphabetType string
}

// StateInfo describes one state.
type StateInfo struct {
	// Name is the vertex name.
	Name string

	// Final is true if the state is accepting.
	Final bool

	// Start is true if the state is the start state.
	Start bool
}

// TransitionInfo describes one transition.
type TransitionInfo struct {
	Source      string
	Target      string
	Description string

	// Guard is the textual guard reference.
	Guard string

	// GuardResolved is false if the guard is a placeholder for an unresolvable reference.
	GuardResolved bool

	// Hooks is the number of attached hooks.
	Hooks int
}

// HasStartState reports whether a start state was configured.
func (i *Info) HasStartState() bool {
	return i.StartState != ""
}

// IsFinalState reports whether name is a final state.
func (i *Info) IsFinalState(name string) bool {
	for _, s := range i.States {
		if s.Name == name {
			return s.Final
		}
	}
	return false
}

// FinalStates returns the final state names in sorted order.
func (i *Info) FinalStates() []string {
	var finals []string
	for _, s := range i.States {
		if s.Final {
			finals = append(finals, s.Name)
		}
	}
	slices.Sort(finals)
	return finals
}

// StateNames returns the state names in graph order.
func (i *Info) StateNames() []string {
	names := make([]string, len(i.States))
	for k, s := range i.States {
		names[k] = s.Name
	}
	return names
}

func (i *Info) String() string {
	return fmt.Sprintf("Automaton { States = %d, Transitions = %d, Start = %q }",
		len(i.States), len(i.Transitions), i.StartState)
}
