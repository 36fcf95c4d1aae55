package policy

// CheckNoun is the context rule for check/cheque: the banking noun reading
// is assumed after a determiner or possessive ("a check", "my checks") or
// before a banking word ("check book", "check number").
func CheckNoun(prev, next string) bool {
	if _, ok := determiners[prev]; ok {
		return true
	}
	_, ok := bankingNouns[next]
	return ok
}

var builtinRules = map[string]ContextRule{
	"check_noun": CheckNoun,
}

var determiners = set(
	"a", "an", "the", "this", "that", "these", "those",
	"my", "your", "his", "her", "its", "our", "their",
	"another", "any", "each", "every",
)

var bankingNouns = set(
	"book", "books", "account", "accounts", "payment", "payments",
	"deposit", "deposits", "number", "numbers", "stub", "stubs",
	"cheque", "cheques", "checkbook", "checkbooks",
)

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
