// Package convert rewrites whole texts from one English variant to another.
//
// A Converter tokenizes the text once, converts each unprotected word with
// the rule engine, gates every change through the exception policy table
// using the neighbouring words, and reassembles the text with whitespace and
// punctuation untouched.
package convert

import (
	"sort"
	"strings"
	"sync"

	"github.com/FocuswithJustin/EnglishVariant/core/policy"
	"github.com/FocuswithJustin/EnglishVariant/core/rules"
	"github.com/FocuswithJustin/EnglishVariant/core/tokenize"
	"github.com/FocuswithJustin/EnglishVariant/core/variant"
)

// Options selects the conversion direction and mode.
type Options struct {
	Source variant.Variant
	Target variant.Variant
	Mode   variant.Mode
}

// DefaultOptions converts en_US to en_GB, spelling only.
func DefaultOptions() Options {
	return Options{Source: variant.EnUS, Target: variant.EnGB, Mode: variant.SpellingOnly}
}

// Validate reports the first unsupported option.
func (o Options) Validate() error {
	return variant.Check(o.Source, o.Target, o.Mode)
}

// Converter combines a rule engine with an exception policy table. It holds
// no per-call state and is safe for concurrent use.
type Converter struct {
	engine *rules.Engine
	policy *policy.Table
}

// New returns a converter over engine and table.
func New(engine *rules.Engine, table *policy.Table) *Converter {
	return &Converter{engine: engine, policy: table}
}

// Convert returns text in the target variant.
func (c *Converter) Convert(text string, opts Options) (string, error) {
	out, _, err := c.ConvertWithStats(text, opts)
	return out, err
}

// ConvertWithStats returns text in the target variant together with
// statistics for this call. Invalid options fail before any work is done.
func (c *Converter) ConvertWithStats(text string, opts Options) (string, *Stats, error) {
	if err := opts.Validate(); err != nil {
		return "", nil, err
	}

	tokens := tokenize.Tokenize(text)
	nextWords := nextWordIndex(tokens)
	swaps := make(map[swapKey]int)
	stats := &Stats{Swaps: []Swap{}}

	var out strings.Builder
	out.Grow(len(text))

	prev := ""
	for i, tok := range tokens {
		if !tok.IsWord {
			out.WriteString(tok.Text)
			continue
		}

		stats.TotalTokens++
		if tok.IsProtected {
			stats.ProtectedTokens++
			out.WriteString(tok.Text)
			prev = strings.ToLower(tok.Text)
			continue
		}

		converted, err := c.engine.ConvertToken(tok.Text, opts.Source, opts.Target, opts.Mode)
		if err != nil {
			return "", nil, err
		}
		if converted != tok.Text {
			next := ""
			if j := nextWords[i]; j >= 0 {
				next = strings.ToLower(tokens[j].Text)
			}
			if c.policy.Allow(tok.Text, converted, prev, next) {
				stats.ConvertedTokens++
				swaps[swapKey{strings.ToLower(tok.Text), strings.ToLower(converted)}]++
			} else {
				converted = tok.Text
			}
		}
		out.WriteString(converted)
		prev = strings.ToLower(tok.Text)
	}

	for k, n := range swaps {
		stats.Swaps = append(stats.Swaps, Swap{Source: k.source, Target: k.target, Count: n})
	}
	sort.Slice(stats.Swaps, func(i, j int) bool {
		a, b := stats.Swaps[i], stats.Swaps[j]
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		return a.Target < b.Target
	})
	return out.String(), stats, nil
}

type swapKey struct {
	source, target string
}

// nextWordIndex maps each token index to the index of the following word
// token, or -1 when there is none.
func nextWordIndex(tokens []tokenize.Token) []int {
	next := make([]int, len(tokens))
	following := -1
	for i := len(tokens) - 1; i >= 0; i-- {
		next[i] = following
		if tokens[i].IsWord {
			following = i
		}
	}
	return next
}

var (
	defaultOnce      sync.Once
	defaultConverter *Converter
)

// Default returns the process-wide converter over the embedded data set.
func Default() *Converter {
	defaultOnce.Do(func() {
		defaultConverter = New(rules.Default(), policy.Default())
	})
	return defaultConverter
}

// Convert converts text with the default converter.
func Convert(text string, opts Options) (string, error) {
	return Default().Convert(text, opts)
}

// ConvertWithStats converts text with the default converter and returns the
// call's statistics.
func ConvertWithStats(text string, opts Options) (string, *Stats, error) {
	return Default().ConvertWithStats(text, opts)
}
