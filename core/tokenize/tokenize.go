// Package tokenize splits text into alternating word and separator chunks
// and flags word chunks that must never be converted.
//
// Tokenization is lossless: Join(Tokenize(s)) == s for every s.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is one chunk of the input. Word tokens are maximal runs of letters;
// everything between them is a separator token.
type Token struct {
	Text        string
	IsWord      bool
	IsProtected bool
}

var (
	wordMarkers     = []string{"http://", "https://", "ftp://", "www."}
	previousMarkers = []string{"://", "@", "#"}
)

// Tokenize partitions text into tokens. A word token is protected when it
// looks like part of a URL, handle or hashtag, or like an acronym or
// mixed-case identifier. Letters are Unicode letters, so "café" is one word.
func Tokenize(text string) []Token {
	chunks := split(text)
	if len(chunks) == 0 {
		return nil
	}
	tokens := make([]Token, len(chunks))
	for i, chunk := range chunks {
		if !isLetter(chunk) {
			tokens[i] = Token{Text: chunk}
			continue
		}
		var prev, next string
		if i > 0 {
			prev = chunks[i-1]
		}
		if i+1 < len(chunks) {
			next = chunks[i+1]
		}
		tokens[i] = Token{Text: chunk, IsWord: true, IsProtected: protected(chunk, prev, next)}
	}
	return tokens
}

// Join reassembles tokens into text.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

// split cuts text into maximal runs of letters and of non-letters.
func split(text string) []string {
	var chunks []string
	start := 0
	var inWord bool
	for i, r := range text {
		letter := unicode.IsLetter(r)
		if i == 0 {
			inWord = letter
			continue
		}
		if letter != inWord {
			chunks = append(chunks, text[start:i])
			start = i
			inWord = letter
		}
	}
	if start < len(text) {
		chunks = append(chunks, text[start:])
	}
	return chunks
}

func isLetter(chunk string) bool {
	r, _ := utf8.DecodeRuneInString(chunk)
	return unicode.IsLetter(r)
}

func protected(chunk, prev, next string) bool {
	lower := strings.ToLower(chunk)
	for _, m := range wordMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}

	first, size := utf8.DecodeRuneInString(chunk)
	if unicode.IsUpper(first) && !allLower(chunk[size:]) {
		return true
	}

	trimmed := strings.TrimSpace(prev)
	for _, m := range previousMarkers {
		if strings.HasSuffix(trimmed, m) {
			return true
		}
	}

	return strings.HasPrefix(next, "@")
}

// allLower reports whether s has at least one cased letter and no upper or
// title case letters. The empty string is not all-lowercase, so a lone
// capital such as "I" counts as an acronym.
func allLower(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r), unicode.IsTitle(r):
			return false
		case unicode.IsLower(r):
			cased = true
		}
	}
	return cased
}
