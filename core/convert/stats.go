package convert

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Swap counts how often one word was replaced by another in a call.
type Swap struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Count  int    `json:"count"`
}

// Stats summarises a single conversion call. Swaps are sorted by source,
// then target.
type Stats struct {
	TotalTokens     int    `json:"total_tokens"`
	ConvertedTokens int    `json:"converted_tokens"`
	ProtectedTokens int    `json:"protected_tokens"`
	Swaps           []Swap `json:"swaps"`
}

// Table renders the stats as a human-readable report.
func (s *Stats) Table() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total word tokens: %d\n", s.TotalTokens)
	fmt.Fprintf(&b, "Converted tokens: %d\n", s.ConvertedTokens)
	fmt.Fprintf(&b, "Protected tokens: %d\n", s.ProtectedTokens)
	b.WriteString("\n")
	if len(s.Swaps) == 0 {
		b.WriteString("No swaps recorded.")
		return b.String()
	}

	width := 0
	for _, sw := range s.Swaps {
		width = max(width, utf8.RuneCountInString(sw.Source))
	}
	b.WriteString("Swaps:")
	for _, sw := range s.Swaps {
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(sw.Source))
		fmt.Fprintf(&b, "\n  %s%s → %s (%d)", sw.Source, pad, sw.Target, sw.Count)
	}
	return b.String()
}

// JSON renders the stats as indented JSON.
func (s *Stats) JSON() (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
