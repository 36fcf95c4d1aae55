package crosswalk

import (
	"strings"

	"github.com/FocuswithJustin/EnglishVariant/core/variant"
)

// Kind separates pure spelling pairs from whole-word lexical choices.
type Kind string

const (
	// SpellingOnly rows differ only in spelling (color/colour).
	SpellingOnly Kind = "spelling_only"
	// LexicalChoice rows use a different word (truck/lorry).
	LexicalChoice Kind = "lexical_choice"
)

// Kinds lists the table kinds in load order. Lexical rows are ingested after
// spelling rows so they win when both map the same word.
var Kinds = []Kind{SpellingOnly, LexicalChoice}

// Valid reports whether k is a known table kind.
func (k Kind) Valid() bool {
	return k == SpellingOnly || k == LexicalChoice
}

// Row maps a lemma to its spelling in each variant. A variant without an
// entry has an empty spelling.
type Row struct {
	VariantID string
	Lemma     string
	Type      Kind
	Spellings map[variant.Variant]string
	Notes     string
	Source    string
}

// Get returns the spelling for v, or "" when the row has none.
func (r Row) Get(v variant.Variant) string {
	return r.Spellings[v]
}

// Valid reports whether the row satisfies the crosswalk invariants: at least
// one variant spelling, and for spelling rows both en_US and en_GB present and
// different ignoring case.
func (r Row) Valid() bool {
	present := false
	for _, v := range variant.All {
		if r.Spellings[v] != "" {
			present = true
			break
		}
	}
	if !present {
		return false
	}
	if r.Type == SpellingOnly {
		us, gb := r.Spellings[variant.EnUS], r.Spellings[variant.EnGB]
		if us == "" || gb == "" || strings.EqualFold(us, gb) {
			return false
		}
	}
	return true
}
