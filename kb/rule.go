package kb

import (
	"fmt"
	"strings"
)

// ParseRule parses the textual rule syntax: "A" asserts a fact, "A->B" and
// "A,B->C" assert rules with one and two body literals. Whitespace is
// insignificant. The parsed body is sorted and deduplicated.
func ParseRule(text string) (Rule, error) {
	s := strings.ReplaceAll(text, " ", "")
	if s == "" {
		return Rule{}, fmt.Errorf("invalid rule %q: empty", text)
	}
	if !strings.Contains(s, "->") {
		if err := ValidateLiteral(s); err != nil {
			return Rule{}, fmt.Errorf("invalid rule %q: %w", text, err)
		}
		return Rule{Head: s}, nil
	}
	parts := strings.Split(s, "->")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("invalid rule %q: exactly one '->' expected", text)
	}
	if parts[0] == "" {
		return Rule{}, fmt.Errorf("invalid rule %q: empty body, assert the fact as %q instead", text, parts[1])
	}
	if err := ValidateLiteral(parts[1]); err != nil {
		return Rule{}, fmt.Errorf("invalid rule head in %q: %w", text, err)
	}
	body := strings.Split(parts[0], ",")
	for _, name := range body {
		if err := ValidateLiteral(name); err != nil {
			return Rule{}, fmt.Errorf("invalid rule body in %q: %w", text, err)
		}
	}
	return Rule{Body: normalizeBody(body), Head: parts[1]}, nil
}
