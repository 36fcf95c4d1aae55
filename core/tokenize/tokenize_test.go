package tokenize

import (
	"testing"
)

func TestTokenizeLossless(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"1234 -- 5678!",
		"Color and organize the theater program.",
		"Visit https://example.com or email support@example.com for color info.",
		"tabs\tand\nnewlines\r\n",
		"café naïve résumé",
		"émigré—über 日本語 text",
		"trailing punctuation...",
	}
	for _, in := range inputs {
		if got := Join(Tokenize(in)); got != in {
			t.Errorf("Join(Tokenize(%q)) = %q", in, got)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if tokens := Tokenize(""); len(tokens) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty", tokens)
	}
}

func TestTokenizeNoLetters(t *testing.T) {
	tokens := Tokenize("42, 17!")
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}
	if tokens[0].IsWord {
		t.Error("letter-free input should not produce word tokens")
	}
}

func TestTokenizeAlternates(t *testing.T) {
	tokens := Tokenize("Hello, world!")
	want := []Token{
		{Text: "Hello", IsWord: true},
		{Text: ", "},
		{Text: "world", IsWord: true},
		{Text: "!"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, tokens[i], want[i])
		}
	}
}

func TestTokenizeDigitsSplitWords(t *testing.T) {
	tokens := Tokenize("mp3player")
	if len(tokens) != 3 || tokens[0].Text != "mp" || tokens[1].Text != "3" || tokens[2].Text != "player" {
		t.Errorf("unexpected split: %+v", tokens)
	}
}

func TestProtection(t *testing.T) {
	tests := []struct {
		name string
		text string
		word string
		want bool
	}{
		{"plain lowercase", "the color", "color", false},
		{"leading capital", "Color me", "Color", false},
		{"acronym", "in CODE mode", "CODE", true},
		{"mixed interior", "at McDonald today", "McDonald", true},
		{"single capital", "I think", "I", true},
		{"url host after scheme", "https://example.com", "example", true},
		{"url scheme word", "https://example.com", "https", false},
		{"url tld", "https://example.com", "com", false},
		{"email local part", "support@example.com", "support", true},
		{"email domain", "support@example.com", "example", true},
		{"handle", "ping @color now", "color", true},
		{"hashtag", "Color #channel output", "channel", true},
		{"hashtag with space", "issue # color", "color", true},
		{"at with space before word", "color @ home", "color", false},
		{"lowercase start mixed", "the cOLOR", "cOLOR", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := false
			for _, tok := range Tokenize(tt.text) {
				if !tok.IsWord || tok.Text != tt.word {
					continue
				}
				found = true
				if tok.IsProtected != tt.want {
					t.Errorf("%q in %q: IsProtected = %v, want %v", tt.word, tt.text, tok.IsProtected, tt.want)
				}
				break
			}
			if !found {
				t.Fatalf("word %q not found in %q", tt.word, tt.text)
			}
		})
	}
}

func TestAllLower(t *testing.T) {
	tests := map[string]bool{
		"":        false,
		"olor":    true,
		"OLOR":    false,
		"cDonald": false,
		"ïve":     true,
	}
	for in, want := range tests {
		if got := allLower(in); got != want {
			t.Errorf("allLower(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSeparatorsNeverProtected(t *testing.T) {
	for _, tok := range Tokenize("@#:// www. CODE") {
		if !tok.IsWord && tok.IsProtected {
			t.Errorf("separator %q marked protected", tok.Text)
		}
	}
}

func TestUnicodeLettersFormOneWord(t *testing.T) {
	tokens := Tokenize("café naïve")
	if len(tokens) != 3 {
		t.Fatalf("Tokenize() = %+v, want 3 tokens", tokens)
	}
	if tokens[0].Text != "café" || !tokens[0].IsWord {
		t.Errorf("first token = %+v, want word café", tokens[0])
	}
	if tokens[2].Text != "naïve" || !tokens[2].IsWord {
		t.Errorf("last token = %+v, want word naïve", tokens[2])
	}
}
