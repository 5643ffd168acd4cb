// Package guards provides reusable guards for rune and string alphabets and
// resolvers that rebuild them from their textual references.
//
// Reference syntax:
//
//	any            every symbol
//	never          no symbol
//	eq:<symbol>    exactly <symbol>
//	in:<symbols>   any rune of <symbols> (runes) or any comma separated word (strings)
//	range:<a>-<b>  any rune between <a> and <b> inclusive
//	not:<ref>      negation of <ref>
package guards

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/atlekbai/automata"
)

const (
	refAny   = "any"
	refNever = "never"

	prefixEq    = "eq:"
	prefixIn    = "in:"
	prefixRange = "range:"
	prefixNot   = "not:"
)

// Rune returns a guard accepting exactly r.
func Rune(r rune) *automata.Guard[rune] {
	return automata.NewGuard(prefixEq+string(r), func(s rune) bool { return s == r })
}

// RuneIn returns a guard accepting any rune of set.
func RuneIn(set string) *automata.Guard[rune] {
	return automata.NewGuard(prefixIn+set, func(s rune) bool { return strings.ContainsRune(set, s) })
}

// RuneRange returns a guard accepting runes between lo and hi inclusive.
func RuneRange(lo, hi rune) *automata.Guard[rune] {
	ref := fmt.Sprintf("%s%c-%c", prefixRange, lo, hi)
	return automata.NewGuard(ref, func(s rune) bool { return s >= lo && s <= hi })
}

// Word returns a guard accepting exactly w.
func Word(w string) *automata.Guard[string] {
	return automata.NewGuard(prefixEq+w, func(s string) bool { return s == w })
}

// WordIn returns a guard accepting any of words.
func WordIn(words ...string) *automata.Guard[string] {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return automata.NewGuard(prefixIn+strings.Join(words, ","), func(s string) bool {
		_, ok := set[s]
		return ok
	})
}

// Not returns a guard accepting what g rejects.
func Not[A any](g *automata.Guard[A]) *automata.Guard[A] {
	return automata.NewGuard(prefixNot+g.Ref(), func(s A) bool { return !g.Accepts(s) })
}

// Runes iterates the runes of s lazily.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// Resolver rebuilds guards from references. Registered guards take precedence
// over parsed references. Resolved guards are cached, so equal references
// resolve to the same guard.
type Resolver[A any] struct {
	registry *automata.GuardRegistry[A]
	cache    map[string]*automata.Guard[A]
	parse    func(ref string) (func(A) bool, error)
}

// NewRuneResolver returns a resolver for rune alphabets.
func NewRuneResolver(registered ...*automata.Guard[rune]) *Resolver[rune] {
	return newResolver(parseRune, registered)
}

// NewWordResolver returns a resolver for string alphabets.
func NewWordResolver(registered ...*automata.Guard[string]) *Resolver[string] {
	return newResolver(parseWord, registered)
}

func newResolver[A any](parse func(string) (func(A) bool, error), registered []*automata.Guard[A]) *Resolver[A] {
	return &Resolver[A]{
		registry: automata.NewGuardRegistry(registered...),
		cache:    make(map[string]*automata.Guard[A]),
		parse:    parse,
	}
}

// Register adds a named guard.
func (r *Resolver[A]) Register(g *automata.Guard[A]) error {
	return r.registry.Register(g)
}

// ResolveGuard implements automata.GuardResolver.
func (r *Resolver[A]) ResolveGuard(ref string) (*automata.Guard[A], error) {
	if g, err := r.registry.ResolveGuard(ref); err == nil {
		return g, nil
	}
	if g, ok := r.cache[ref]; ok {
		return g, nil
	}
	predicate, err := r.parseRef(ref)
	if err != nil {
		return nil, err
	}
	g := automata.NewGuard(ref, predicate)
	r.cache[ref] = g
	return g, nil
}

func (r *Resolver[A]) parseRef(ref string) (func(A) bool, error) {
	switch {
	case ref == refAny:
		return func(A) bool { return true }, nil
	case ref == refNever:
		return func(A) bool { return false }, nil
	case strings.HasPrefix(ref, prefixNot):
		inner, err := r.ResolveGuard(strings.TrimPrefix(ref, prefixNot))
		if err != nil {
			return nil, err
		}
		return func(s A) bool { return !inner.Accepts(s) }, nil
	default:
		return r.parse(ref)
	}
}

func parseRune(ref string) (func(rune) bool, error) {
	switch {
	case strings.HasPrefix(ref, prefixEq):
		arg := strings.TrimPrefix(ref, prefixEq)
		if utf8.RuneCountInString(arg) != 1 {
			return nil, fmt.Errorf("%w: %q must name exactly one rune", automata.ErrUnknownGuard, ref)
		}
		want, _ := utf8.DecodeRuneInString(arg)
		return func(s rune) bool { return s == want }, nil
	case strings.HasPrefix(ref, prefixIn):
		set := strings.TrimPrefix(ref, prefixIn)
		return func(s rune) bool { return strings.ContainsRune(set, s) }, nil
	case strings.HasPrefix(ref, prefixRange):
		bounds := []rune(strings.TrimPrefix(ref, prefixRange))
		if len(bounds) != 3 || bounds[1] != '-' || bounds[0] > bounds[2] {
			return nil, fmt.Errorf("%w: %q is not a valid rune range", automata.ErrUnknownGuard, ref)
		}
		lo, hi := bounds[0], bounds[2]
		return func(s rune) bool { return s >= lo && s <= hi }, nil
	default:
		return nil, fmt.Errorf("%w: %q", automata.ErrUnknownGuard, ref)
	}
}

func parseWord(ref string) (func(string) bool, error) {
	switch {
	case strings.HasPrefix(ref, prefixEq):
		want := strings.TrimPrefix(ref, prefixEq)
		return func(s string) bool { return s == want }, nil
	case strings.HasPrefix(ref, prefixIn):
		words := strings.Split(strings.TrimPrefix(ref, prefixIn), ",")
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[w] = struct{}{}
		}
		return func(s string) bool {
			_, ok := set[s]
			return ok
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", automata.ErrUnknownGuard, ref)
	}
}
