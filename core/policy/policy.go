// Package policy holds the exception policy table: word pairs whose swap is
// either always suppressed (skip) or allowed only in certain neighbouring
// contexts (conditional on a named rule).
//
// Pairs are unordered and case-insensitive, so an entry for practice/practise
// governs conversion in both directions.
package policy

import (
	"strings"
)

// Action is the policy outcome for a word pair.
type Action int

const (
	// None means the pair has no policy; the swap is allowed.
	None Action = iota
	// Skip means the swap is never performed.
	Skip
	// Conditional means the swap depends on the context rule in Result.Rule.
	Conditional
)

func (a Action) String() string {
	switch a {
	case Skip:
		return "skip"
	case Conditional:
		return "conditional"
	default:
		return "none"
	}
}

// Result is the classification of an (original, candidate) pair. Rule is
// only set for Conditional.
type Result struct {
	Action Action
	Rule   string
}

// ContextRule decides whether a conditional swap is allowed given the
// lowercased neighbouring words. An absent neighbour is "".
type ContextRule func(prev, next string) bool

type pair struct {
	a, b string
}

// Table is an immutable exception policy table. The zero value is not
// usable; build one with Load, New or Default.
type Table struct {
	origin      string
	entries     []Entry
	skip        map[pair]struct{}
	conditional map[pair]string
	rules       map[string]ContextRule
}

// Option configures a Table at load time.
type Option func(*Table)

// WithRule registers a context rule under name, replacing any built-in rule
// of the same name.
func WithRule(name string, rule ContextRule) Option {
	return func(t *Table) {
		t.rules[strings.ToLower(name)] = rule
	}
}

func newTable(origin string, opts []Option) *Table {
	t := &Table{
		origin:      origin,
		skip:        make(map[pair]struct{}),
		conditional: make(map[pair]string),
		rules:       make(map[string]ContextRule, len(builtinRules)),
	}
	for name, rule := range builtinRules {
		t.rules[name] = rule
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Classify looks up the policy for swapping original with candidate. Both
// orientations of the pair are checked, and skip entries take precedence
// over conditional ones.
func (t *Table) Classify(original, candidate string) Result {
	key := pair{strings.ToLower(original), strings.ToLower(candidate)}
	reverse := pair{key.b, key.a}

	if _, ok := t.skip[key]; ok {
		return Result{Action: Skip}
	}
	if _, ok := t.skip[reverse]; ok {
		return Result{Action: Skip}
	}
	if rule, ok := t.conditional[key]; ok {
		return Result{Action: Conditional, Rule: rule}
	}
	if rule, ok := t.conditional[reverse]; ok {
		return Result{Action: Conditional, Rule: rule}
	}
	return Result{Action: None}
}

// AllowConditional evaluates the named context rule. Unknown rules deny.
func (t *Table) AllowConditional(rule, prev, next string) bool {
	fn, ok := t.rules[strings.ToLower(rule)]
	if !ok {
		return false
	}
	return fn(strings.ToLower(prev), strings.ToLower(next))
}

// Allow reports whether original may be replaced by candidate given the
// neighbouring words.
func (t *Table) Allow(original, candidate, prev, next string) bool {
	res := t.Classify(original, candidate)
	switch res.Action {
	case Skip:
		return false
	case Conditional:
		return t.AllowConditional(res.Rule, prev, next)
	default:
		return true
	}
}

// HasRule reports whether a context rule is registered under name.
func (t *Table) HasRule(name string) bool {
	_, ok := t.rules[strings.ToLower(name)]
	return ok
}

// Len returns the number of skip and conditional pairs.
func (t *Table) Len() (skip, conditional int) {
	return len(t.skip), len(t.conditional)
}

// Origin returns the source label the table was loaded from.
func (t *Table) Origin() string {
	return t.origin
}
