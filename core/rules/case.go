package rules

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case is the capitalisation pattern of a word.
type Case int

const (
	// Mixed is anything that is not Upper, Lower or Title ("cOLOR").
	Mixed Case = iota
	// Upper is all uppercase ("COLOR").
	Upper
	// Lower is all lowercase ("color").
	Lower
	// Title is an uppercase first letter followed by lowercase ("Color").
	Title
)

func (c Case) String() string {
	switch c {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	case Title:
		return "title"
	default:
		return "mixed"
	}
}

// DetectCase classifies the capitalisation of s.
func DetectCase(s string) Case {
	if isUpper(s) {
		return Upper
	}
	if isLower(s) {
		return Lower
	}
	first, size := utf8.DecodeRuneInString(s)
	if unicode.IsUpper(first) && isLower(s[size:]) {
		return Title
	}
	return Mixed
}

// Apply renders s in the case pattern c. Mixed returns s unchanged.
func (c Case) Apply(s string) string {
	switch c {
	case Upper:
		return cases.Upper(language.English).String(s)
	case Lower:
		return cases.Lower(language.English).String(s)
	case Title:
		first, size := utf8.DecodeRuneInString(s)
		if size == 0 {
			return s
		}
		return cases.Upper(language.English).String(string(first)) + cases.Lower(language.English).String(s[size:])
	default:
		return s
	}
}

// isUpper reports whether s has a cased letter and no lowercase ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// isLower reports whether s has a cased letter and no uppercase ones.
func isLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}
