package rules

import (
	"sync"
	"testing"

	"github.com/FocuswithJustin/EnglishVariant/core/crosswalk"
	"github.com/FocuswithJustin/EnglishVariant/core/errors"
	"github.com/FocuswithJustin/EnglishVariant/core/variant"
)

func row(kind crosswalk.Kind, us, gb, au, ca string) crosswalk.Row {
	return crosswalk.Row{
		Type: kind,
		Spellings: map[variant.Variant]string{
			variant.EnUS: us, variant.EnGB: gb, variant.EnAU: au, variant.EnCA: ca,
		},
	}
}

func testEngine() *Engine {
	return NewEngine(crosswalk.NewStore("test", []crosswalk.Row{
		row(crosswalk.SpellingOnly, "color", "colour", "colour", "colour"),
		row(crosswalk.SpellingOnly, "organize", "organise", "organise", "organize"),
		row(crosswalk.SpellingOnly, "program", "programme", "program", "program"),
		row(crosswalk.SpellingOnly, "tire", "tyre", "tyre", ""),
		row(crosswalk.LexicalChoice, "truck", "lorry", "truck", "truck"),
		row(crosswalk.LexicalChoice, "tire", "wheel", "", ""),
	}))
}

func TestDetectCase(t *testing.T) {
	tests := map[string]Case{
		"color":  Lower,
		"COLOR":  Upper,
		"Color":  Title,
		"C":      Upper,
		"cOLOR":  Mixed,
		"McWord": Mixed,
		"":       Mixed,
		"Élan":   Title,
	}
	for in, want := range tests {
		if got := DetectCase(in); got != want {
			t.Errorf("DetectCase(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestCaseApply(t *testing.T) {
	tests := []struct {
		c    Case
		in   string
		want string
	}{
		{Upper, "colour", "COLOUR"},
		{Lower, "COLOUR", "colour"},
		{Title, "colour", "Colour"},
		{Title, "cOLOUR", "Colour"},
		{Title, "", ""},
		{Mixed, "colour", "colour"},
		{Title, "émigré", "Émigré"},
	}
	for _, tt := range tests {
		if got := tt.c.Apply(tt.in); got != tt.want {
			t.Errorf("%s.Apply(%q) = %q, want %q", tt.c, tt.in, got, tt.want)
		}
	}
}

func TestConvertToken(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name           string
		token          string
		source, target variant.Variant
		mode           variant.Mode
		want           string
	}{
		{"title case", "Color", variant.EnUS, variant.EnGB, variant.SpellingOnly, "Colour"},
		{"upper case", "COLOR", variant.EnUS, variant.EnGB, variant.SpellingOnly, "COLOUR"},
		{"reverse direction", "colour", variant.EnGB, variant.EnUS, variant.SpellingOnly, "color"},
		{"mixed case uses table casing", "cOLOR", variant.EnUS, variant.EnGB, variant.SpellingOnly, "colour"},
		{"unknown word", "Python", variant.EnUS, variant.EnGB, variant.SpellingOnly, "Python"},
		{"identity", "color", variant.EnUS, variant.EnUS, variant.SpellingAndLexical, "color"},
		{"empty token", "", variant.EnUS, variant.EnGB, variant.SpellingOnly, ""},
		{"canadian keeps z", "organize", variant.EnUS, variant.EnCA, variant.SpellingOnly, "organize"},
		{"australian program", "programme", variant.EnGB, variant.EnAU, variant.SpellingOnly, "program"},
		{"missing target cell", "tire", variant.EnUS, variant.EnCA, variant.SpellingOnly, "tire"},
		{"lexical ignored in spelling mode", "truck", variant.EnUS, variant.EnGB, variant.SpellingOnly, "truck"},
		{"lexical applied", "Truck", variant.EnUS, variant.EnGB, variant.SpellingAndLexical, "Lorry"},
		{"lexical overlays spelling", "tire", variant.EnUS, variant.EnGB, variant.SpellingAndLexical, "wheel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.ConvertToken(tt.token, tt.source, tt.target, tt.mode)
			if err != nil {
				t.Fatalf("ConvertToken: %v", err)
			}
			if got != tt.want {
				t.Errorf("ConvertToken(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestConvertTokenInvalidArguments(t *testing.T) {
	e := testEngine()
	tests := []struct {
		name           string
		source, target variant.Variant
		mode           variant.Mode
		field          string
	}{
		{"bad source", "en_NZ", variant.EnGB, variant.SpellingOnly, "source"},
		{"bad target", variant.EnUS, "en-gb", variant.SpellingOnly, "target"},
		{"bad mode", variant.EnUS, variant.EnGB, "lexical_only", "mode"},
		{"bad mode on identity", variant.EnUS, variant.EnUS, "", "mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.ConvertToken("color", tt.source, tt.target, tt.mode)
			if !errors.Is(err, errors.ErrInvalidInput) {
				t.Fatalf("error = %v, want ErrInvalidInput", err)
			}
			var verr *errors.ValidationError
			if !errors.As(err, &verr) || verr.Field != tt.field {
				t.Errorf("error field = %+v, want %s", verr, tt.field)
			}
		})
	}
}

func TestMappingCached(t *testing.T) {
	e := testEngine()
	first := e.Mapping(variant.EnUS, variant.EnGB, variant.SpellingOnly)
	second := e.Mapping(variant.EnUS, variant.EnGB, variant.SpellingOnly)
	first["sentinel"] = "value"
	if second["sentinel"] != "value" {
		t.Error("second lookup should return the cached mapping")
	}
	if len(e.Mapping(variant.EnGB, variant.EnGB, variant.SpellingOnly)) != 0 {
		t.Error("identity mapping should be empty")
	}
}

func TestMappingConcurrent(t *testing.T) {
	e := testEngine()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, src := range variant.All {
				for _, dst := range variant.All {
					for _, mode := range variant.Modes {
						if _, err := e.ConvertToken("Color", src, dst, mode); err != nil {
							t.Error(err)
						}
					}
				}
			}
		}()
	}
	wg.Wait()
	if got := e.mappings.Len(); got != cacheSize {
		t.Errorf("cached mappings = %d, want %d", got, cacheSize)
	}
}

func TestDefaultEngine(t *testing.T) {
	tests := []struct {
		token          string
		source, target variant.Variant
		want           string
	}{
		{"Color", variant.EnUS, variant.EnGB, "Colour"},
		{"COLOR", variant.EnUS, variant.EnGB, "COLOUR"},
		{"colour", variant.EnGB, variant.EnUS, "color"},
		{"Python", variant.EnUS, variant.EnGB, "Python"},
	}
	for _, tt := range tests {
		got, err := ConvertToken(tt.token, tt.source, tt.target, variant.SpellingOnly)
		if err != nil {
			t.Fatalf("ConvertToken(%q): %v", tt.token, err)
		}
		if got != tt.want {
			t.Errorf("ConvertToken(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
	if Default().Store() != crosswalk.Default() {
		t.Error("default engine should read the default crosswalk store")
	}
}
