package policy

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/EnglishVariant/core/errors"
)

// expression is the grammar of the policy column:
//
//	skip
//	conditional:<rule>
//
// Any non-blank text after the colon is taken as the rule name, so a
// misspelled rule still yields a conditional entry that denies the swap.
type expression struct {
	Skip bool    `parser:"  @\"skip\""`
	Rule *string `parser:"| \"conditional\" \":\" @(Ident | Colon | Other)+"`
}

var policyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-z_][a-z0-9_]*`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Other", Pattern: `[^\sa-z_:]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var policyParser = participle.MustBuild[expression](
	participle.Lexer(policyLexer),
	participle.Elide("Whitespace"),
)

// ParsePolicy parses a policy cell. Input is matched case-insensitively and
// the rule name is returned lowercased.
func ParsePolicy(s string) (Result, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return Result{}, errors.NewParse("policy", "", "empty policy")
	}
	expr, err := policyParser.ParseString("", normalized)
	if err != nil {
		return Result{}, &errors.ParseError{Format: "policy", Message: err.Error(), Err: errors.Wrapf(errors.ErrInvalidInput, "policy %q", s)}
	}
	switch {
	case expr.Skip:
		return Result{Action: Skip}, nil
	case expr.Rule != nil:
		return Result{Action: Conditional, Rule: *expr.Rule}, nil
	default:
		return Result{}, errors.NewParse("policy", "", "unrecognized policy "+normalized)
	}
}

// String renders r in the policy column syntax; None renders empty.
func (r Result) String() string {
	switch r.Action {
	case Skip:
		return "skip"
	case Conditional:
		return "conditional:" + r.Rule
	default:
		return ""
	}
}
