package automata

import "slices"

// Hook is invoked when its transition is chosen by a traversal step. It
// receives the source state of the transition and the symbol that triggered
// it. A non-nil error aborts the step.
type Hook[A any] func(source string, symbol A) error

// Subscription identifies an attached hook so it can be detached again.
type Subscription uint64

type hookEntry[A any] struct {
	id   Subscription
	hook Hook[A]
}

// Transition is a guarded edge between two named states.
//
// Source, target and guard are fixed at construction. Description and the
// hook list are mutable.
type Transition[A any] struct {
	source string
	target string
	guard  *Guard[A]

	// Description is an optional human-readable label.
	Description string

	hooks  []hookEntry[A]
	nextID Subscription
}

// NewTransition creates a new transition. A nil guard accepts every symbol.
func NewTransition[A any](source, target string, guard *Guard[A]) *Transition[A] {
	return &Transition[A]{
		source: source,
		target: target,
		guard:  guard,
	}
}

// NewDescribedTransition creates a new transition with a description.
func NewDescribedTransition[A any](source, target string, guard *Guard[A], description string) *Transition[A] {
	t := NewTransition(source, target, guard)
	t.Description = description
	return t
}

// Source returns the state transitioned from.
func (t *Transition[A]) Source() string {
	return t.source
}

// Target returns the state transitioned to.
func (t *Transition[A]) Target() string {
	return t.target
}

// Guard returns the guard of the transition.
func (t *Transition[A]) Guard() *Guard[A] {
	return t.guard
}

// Accepts evaluates the guard against symbol.
func (t *Transition[A]) Accepts(symbol A) bool {
	return t.guard.Accepts(symbol)
}

// IsLoop returns true if the transition leads back to its source.
func (t *Transition[A]) IsLoop() bool {
	return t.source == t.target
}

// Subscribe attaches hook after the already attached ones.
func (t *Transition[A]) Subscribe(hook Hook[A]) Subscription {
	t.nextID++
	t.hooks = append(t.hooks, hookEntry[A]{id: t.nextID, hook: hook})
	return t.nextID
}

// Unsubscribe detaches the hook identified by sub. It returns false if the
// hook was not attached.
func (t *Transition[A]) Unsubscribe(sub Subscription) bool {
	for i, h := range t.hooks {
		if h.id == sub {
			t.hooks = slices.Delete(t.hooks, i, i+1)
			return true
		}
	}
	return false
}

// HookCount returns the number of attached hooks.
func (t *Transition[A]) HookCount() int {
	return len(t.hooks)
}

// Fire invokes the attached hooks in attachment order and stops at the first error.
func (t *Transition[A]) Fire(symbol A) error {
	for _, h := range slices.Clone(t.hooks) {
		if err := h.hook(t.source, symbol); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether t and other have the same endpoints, the same guard
// and the same description. Attached hooks do not take part in equality.
func (t *Transition[A]) Equal(other *Transition[A]) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.source == other.source &&
		t.target == other.target &&
		t.guard == other.guard &&
		t.Description == other.Description
}

func (t *Transition[A]) String() string {
	label := t.guard.Ref()
	if t.Description != "" {
		label = t.Description + " [" + label + "]"
	}
	return t.source + " -> " + t.target + " : " + label
}
