// Package definition describes automata declaratively so they can be loaded
// from YAML files, exchanged as snapshots and rebuilt with a guard resolver.
package definition

import (
	"errors"
	"fmt"
	"slices"

	"github.com/atlekbai/automata"
)

// ErrInvalidDefinition is wrapped by every validation failure.
var ErrInvalidDefinition = errors.New("invalid automaton definition")

// Definition is the serializable form of an automaton. Guards are kept as
// textual references.
type Definition struct {
	// Name is an optional label for the automaton.
	Name string `yaml:"name,omitempty" mapstructure:"name" codec:"name,omitempty"`

	// Start is the start state, if any.
	Start string `yaml:"start,omitempty" mapstructure:"start" codec:"start,omitempty"`

	// Final lists the final states.
	Final []string `yaml:"final,omitempty" mapstructure:"final" codec:"final,omitempty"`

	// States lists every state.
	States []string `yaml:"states" mapstructure:"states" codec:"states"`

	// Transitions lists every transition.
	Transitions []Transition `yaml:"transitions,omitempty" mapstructure:"transitions" codec:"transitions,omitempty"`
}

// Transition describes one guarded edge.
type Transition struct {
	From        string `yaml:"from" mapstructure:"from" codec:"from"`
	To          string `yaml:"to" mapstructure:"to" codec:"to"`
	Guard       string `yaml:"guard" mapstructure:"guard" codec:"guard"`
	Description string `yaml:"description,omitempty" mapstructure:"description" codec:"description,omitempty"`
}

// Validate checks that every referenced state is declared and every
// transition names a guard. A definition without states describes the empty
// automaton and is valid as long as nothing else is set.
func (d *Definition) Validate() error {
	if len(d.States) == 0 && (d.Start != "" || len(d.Final) > 0 || len(d.Transitions) > 0) {
		return fmt.Errorf("%w: no states declared", ErrInvalidDefinition)
	}
	declared := make(map[string]struct{}, len(d.States))
	for _, s := range d.States {
		if s == "" || s == automata.ErrorStateName {
			return fmt.Errorf("%w: state name %q is reserved", ErrInvalidDefinition, s)
		}
		declared[s] = struct{}{}
	}

	check := func(what, name string) error {
		if _, ok := declared[name]; !ok {
			return fmt.Errorf("%w: %s %q is not a declared state", ErrInvalidDefinition, what, name)
		}
		return nil
	}

	if d.Start != "" {
		if err := check("start state", d.Start); err != nil {
			return err
		}
	}
	for _, f := range d.Final {
		if err := check("final state", f); err != nil {
			return err
		}
	}
	for i, t := range d.Transitions {
		if err := check(fmt.Sprintf("transitions[%d].from", i), t.From); err != nil {
			return err
		}
		if err := check(fmt.Sprintf("transitions[%d].to", i), t.To); err != nil {
			return err
		}
		if t.Guard == "" {
			return fmt.Errorf("%w: transitions[%d] has no guard", ErrInvalidDefinition, i)
		}
	}
	return nil
}

// Build creates an automaton from d. Guard references are resolved with
// resolver; references it cannot resolve become guards that never accept.
func Build[A any](d *Definition, resolver automata.GuardResolver[A], opts ...automata.Option[A]) (*automata.FiniteStateMachine[A], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	m := automata.New(opts...)
	if _, err := m.AddStates(d.States...); err != nil {
		return nil, err
	}

	guards := make(map[string]*automata.Guard[A])
	for i, t := range d.Transitions {
		g, ok := guards[t.Guard]
		if !ok {
			g = m.ResolveGuard(resolver, t.Guard)
			guards[t.Guard] = g
		}
		if err := m.AddTransition(automata.NewDescribedTransition(t.From, t.To, g, t.Description)); err != nil {
			return nil, fmt.Errorf("transitions[%d]: %w", i, err)
		}
	}

	if err := m.SetFinalStates(d.Final...); err != nil {
		return nil, err
	}
	if d.Start != "" {
		if err := m.SetStartState(d.Start); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Capture returns the definition of the automaton described by info.
func Capture(info *automata.Info) *Definition {
	d := &Definition{
		Start:  info.StartState,
		Final:  info.FinalStates(),
		States: info.StateNames(),
	}
	for _, t := range info.Transitions {
		d.Transitions = append(d.Transitions, Transition{
			From:        t.Source,
			To:          t.Target,
			Guard:       t.Guard,
			Description: t.Description,
		})
	}
	return d
}

// GuardRefs returns the distinct guard references used by d, sorted.
func (d *Definition) GuardRefs() []string {
	var refs []string
	for _, t := range d.Transitions {
		refs = append(refs, t.Guard)
	}
	slices.Sort(refs)
	return slices.Compact(refs)
}
