// Package variant defines the regional English variant codes and conversion
// modes understood by the converter.
package variant

import (
	"strings"

	"github.com/FocuswithJustin/EnglishVariant/core/errors"
)

// Variant is a regional English spelling convention, e.g. "en_GB".
type Variant string

const (
	EnUS Variant = "en_US"
	EnGB Variant = "en_GB"
	EnAU Variant = "en_AU"
	EnCA Variant = "en_CA"
)

// All lists the supported variants in crosswalk column order.
var All = []Variant{EnUS, EnGB, EnAU, EnCA}

// Valid reports whether v is a supported variant code.
func (v Variant) Valid() bool {
	switch v {
	case EnUS, EnGB, EnAU, EnCA:
		return true
	}
	return false
}

func (v Variant) String() string { return string(v) }

// Parse converts a variant code into a Variant. Codes are case-sensitive,
// matching the crosswalk column headers.
func Parse(s string) (Variant, error) {
	v := Variant(strings.TrimSpace(s))
	if !v.Valid() {
		return "", errors.NewValidation("variant", s, "expected one of "+joinVariants())
	}
	return v, nil
}

// Mode selects which crosswalk tables participate in a conversion.
type Mode string

const (
	// SpellingOnly applies spelling differences only (color/colour).
	SpellingOnly Mode = "spelling_only"
	// SpellingAndLexical also swaps whole words (truck/lorry).
	SpellingAndLexical Mode = "spelling_and_lexical"
)

// Modes lists the supported modes.
var Modes = []Mode{SpellingOnly, SpellingAndLexical}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	return m == SpellingOnly || m == SpellingAndLexical
}

func (m Mode) String() string { return string(m) }

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.TrimSpace(s))
	if !m.Valid() {
		return "", errors.NewValidation("mode", s, "expected spelling_only or spelling_and_lexical")
	}
	return m, nil
}

// Check validates a conversion triple, naming the first offending argument.
func Check(source, target Variant, mode Mode) error {
	if !source.Valid() {
		return errors.NewValidation("source", string(source), "unsupported variant")
	}
	if !target.Valid() {
		return errors.NewValidation("target", string(target), "unsupported variant")
	}
	if !mode.Valid() {
		return errors.NewValidation("mode", string(mode), "unsupported mode")
	}
	return nil
}

func joinVariants() string {
	names := make([]string, len(All))
	for i, v := range All {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
