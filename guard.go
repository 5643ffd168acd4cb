package automata

import (
	"fmt"
	"slices"
	"strings"
)

// Guard is a named predicate deciding whether a transition may fire for a symbol.
// Guards must be pure: traversal may evaluate them speculatively on several
// leaving transitions before committing to a move.
//
// Guards are compared by identity. The reference returned by Ref is what
// serializers preserve in place of the predicate itself.
type Guard[A any] struct {
	// predicate returns true if the symbol is accepted.
	predicate func(A) bool

	// info describes the guard for introspection.
	info InvocationInfo

	// resolved is false for placeholders created when a reference could not be resolved.
	resolved bool
}

// NewGuard creates a guard with the given reference. When ref is empty, the
// reference is derived from the predicate's function name.
func NewGuard[A any](ref string, predicate func(A) bool) *Guard[A] {
	return &Guard[A]{
		predicate: predicate,
		info:      CreateInvocationInfo(predicate, ref),
		resolved:  true,
	}
}

// Always returns a guard that accepts every symbol.
func Always[A any]() *Guard[A] {
	return NewGuard("any", func(A) bool { return true })
}

// Never returns a guard that rejects every symbol. It keeps ref, so an
// automaton imported with an unresolvable guard reference exports it unchanged.
func Never[A any](ref string) *Guard[A] {
	if ref == "" {
		ref = "never"
	}
	return &Guard[A]{
		predicate: func(A) bool { return false },
		info:      NewInvocationInfo("", ref),
	}
}

// Equals returns a guard that accepts exactly symbol.
func Equals[A comparable](symbol A) *Guard[A] {
	return NewGuard("eq:"+symbolRef(symbol), func(s A) bool { return s == symbol })
}

// OneOf returns a guard that accepts any of symbols.
func OneOf[A comparable](symbols ...A) *Guard[A] {
	set := slices.Clone(symbols)
	var ref strings.Builder
	for i, s := range set {
		if _, isRune := any(s).(rune); !isRune && i > 0 {
			ref.WriteString(",")
		}
		ref.WriteString(symbolRef(s))
	}
	return NewGuard("in:"+ref.String(), func(s A) bool { return slices.Contains(set, s) })
}

// symbolRef formats a symbol for a guard reference. Runes render as characters.
func symbolRef(symbol any) string {
	if r, ok := symbol.(rune); ok {
		return string(r)
	}
	return fmt.Sprintf("%v", symbol)
}

// Accepts returns true if the guard admits symbol. A nil guard admits everything.
func (g *Guard[A]) Accepts(symbol A) bool {
	if g == nil || g.predicate == nil {
		return true
	}
	return g.predicate(symbol)
}

// Ref returns the textual reference of the guard.
func (g *Guard[A]) Ref() string {
	if g == nil {
		return "any"
	}
	return g.info.Description()
}

// Resolved is false for guards substituted for an unresolvable reference.
func (g *Guard[A]) Resolved() bool {
	return g == nil || g.resolved
}

func (g *Guard[A]) String() string {
	return g.Ref()
}

// GuardResolver turns textual guard references back into guards.
type GuardResolver[A any] interface {
	ResolveGuard(ref string) (*Guard[A], error)
}

// GuardResolverFunc adapts a function to GuardResolver.
type GuardResolverFunc[A any] func(ref string) (*Guard[A], error)

// ResolveGuard calls f(ref).
func (f GuardResolverFunc[A]) ResolveGuard(ref string) (*Guard[A], error) {
	return f(ref)
}

// GuardRegistry resolves references against a fixed set of guards.
type GuardRegistry[A any] struct {
	guards map[string]*Guard[A]
}

// NewGuardRegistry creates a registry holding guards.
func NewGuardRegistry[A any](guards ...*Guard[A]) *GuardRegistry[A] {
	r := &GuardRegistry[A]{guards: make(map[string]*Guard[A], len(guards))}
	for _, g := range guards {
		r.guards[g.Ref()] = g
	}
	return r
}

// Register adds g under its reference. Registering a different guard under a
// taken reference fails.
func (r *GuardRegistry[A]) Register(g *Guard[A]) error {
	if g == nil {
		return newArgumentError("guard", "guard cannot be nil")
	}
	if existing, ok := r.guards[g.Ref()]; ok && existing != g {
		return newArgumentError("guard", "guard reference '%s' is already registered", g.Ref())
	}
	r.guards[g.Ref()] = g
	return nil
}

// ResolveGuard returns the guard registered under ref.
func (r *GuardRegistry[A]) ResolveGuard(ref string) (*Guard[A], error) {
	if g, ok := r.guards[ref]; ok {
		return g, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGuard, ref)
}

// Refs returns the registered references in sorted order.
func (r *GuardRegistry[A]) Refs() []string {
	refs := make([]string, 0, len(r.guards))
	for ref := range r.guards {
		refs = append(refs, ref)
	}
	slices.Sort(refs)
	return refs
}
