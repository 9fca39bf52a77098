package kb

import (
	"fmt"

	"github.com/tadeaspaule/logic-toolkit/logic"
)

// A NonDefiniteClauseError reports a CNF clause that cannot be read as a
// definite rule because it does not contain exactly one positive literal.
type NonDefiniteClauseError struct {
	Clause logic.Clause
}

func (e *NonDefiniteClauseError) Error() string {
	return fmt.Sprintf("clause %s is not a definite clause: exactly one positive literal is required", e.Clause)
}

// Extract converts every clause of a CNF formula into a definite rule: the
// clause's single positive literal becomes the head and its negated
// literals, with the negations stripped, become the body. The input must
// already be in conjunctive normal form (see logic.ToCNF); a formula of a
// different shape fails with logic.ErrNotCNF.
//
// A clause without exactly one positive literal has no definite-rule
// reading, and extraction fails with a *NonDefiniteClauseError naming it
// rather than skipping it silently.
func Extract(f logic.Formula) ([]Rule, error) {
	clauses, err := logic.Clauses(f)
	if err != nil {
		return nil, err
	}
	rules := make([]Rule, 0, len(clauses))
	for _, clause := range clauses {
		rule, err := clauseRule(clause)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func clauseRule(clause logic.Clause) (Rule, error) {
	var heads, body []string
	for _, l := range clause {
		if l.Negated {
			body = append(body, l.Name)
		} else {
			heads = append(heads, l.Name)
		}
	}
	if len(heads) != 1 {
		return Rule{}, &NonDefiniteClauseError{Clause: clause}
	}
	return Rule{Body: normalizeBody(body), Head: heads[0]}, nil
}
