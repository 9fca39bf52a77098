// Package kb implements knowledge bases of definite (Horn) rules and
// answers ground queries over them by forward chaining.
//
// A definite rule reads "the conjunction of the body literals implies the
// head literal"; a rule with an empty body is a fact. Rules are asserted
// directly, parsed from the textual "A,B->C" syntax, or extracted from a
// CNF formula. Queries make the closed-world assumption: a literal that is
// not derivable from the rules is false.
package kb

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// ErrInvalidLiteral reports a literal name that is not a single uppercase
// letter.
var ErrInvalidLiteral = errors.New("literal names are single uppercase letters")

// ValidateLiteral checks that name is a valid literal name.
func ValidateLiteral(name string) error {
	if len(name) != 1 || name[0] < 'A' || name[0] > 'Z' {
		return fmt.Errorf("%w: got %q", ErrInvalidLiteral, name)
	}
	return nil
}

// A Rule is a definite rule: the conjunction of the body literals implies
// the head literal. An empty body makes the rule a fact.
type Rule struct {
	Body []string
	Head string
}

// IsFact reports whether the rule has an empty body.
func (r Rule) IsFact() bool { return len(r.Body) == 0 }

// String renders the rule in the assertion syntax, "A,B -> C", or "-> C"
// for a fact.
func (r Rule) String() string {
	if r.IsFact() {
		return "-> " + r.Head
	}
	return strings.Join(r.Body, ",") + " -> " + r.Head
}

// A KnowledgeBase is a collection of definite rules. It is built up by
// assertion or extraction and then queried read-only. Assertions mutate
// the knowledge base in place and are not safe for concurrent writers
// without external synchronization; queries do not mutate it.
type KnowledgeBase struct {
	rules []Rule
	log   *zap.Logger
}

// An Option configures a knowledge base.
type Option func(*KnowledgeBase)

// WithLogger makes the knowledge base trace assertions and query
// derivations on the given logger at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(kb *KnowledgeBase) { kb.log = log }
}

// New returns an empty knowledge base.
func New(opts ...Option) *KnowledgeBase {
	kb := &KnowledgeBase{log: zap.NewNop()}
	for _, opt := range opts {
		opt(kb)
	}
	return kb
}

// Assert adds the rule body -> head. The body is copied, sorted and
// deduplicated. Every name must be a valid literal name.
func (kb *KnowledgeBase) Assert(body []string, head string) error {
	if err := ValidateLiteral(head); err != nil {
		return err
	}
	for _, name := range body {
		if err := ValidateLiteral(name); err != nil {
			return err
		}
	}
	rule := Rule{Body: normalizeBody(body), Head: head}
	kb.rules = append(kb.rules, rule)
	kb.log.Debug("rule asserted", zap.String("rule", rule.String()))
	return nil
}

// AssertFact adds head as a fact.
func (kb *KnowledgeBase) AssertFact(head string) error {
	return kb.Assert(nil, head)
}

// Add asserts already-built rules, validating each.
func (kb *KnowledgeBase) Add(rules ...Rule) error {
	for _, r := range rules {
		if err := kb.Assert(r.Body, r.Head); err != nil {
			return err
		}
	}
	return nil
}

// Rules returns a copy of the rule set, in assertion order.
func (kb *KnowledgeBase) Rules() []Rule {
	out := make([]Rule, len(kb.rules))
	for i, r := range kb.rules {
		out[i] = Rule{Body: append([]string(nil), r.Body...), Head: r.Head}
	}
	return out
}

// Len returns the number of rules.
func (kb *KnowledgeBase) Len() int { return len(kb.rules) }

// Clear removes every rule.
func (kb *KnowledgeBase) Clear() {
	kb.rules = nil
	kb.log.Debug("knowledge base cleared")
}

// Query reports whether the given literal is entailed by the rule set.
// It forward-chains to a fixed point: starting from the facts, every pass
// fires each rule whose whole body is already known true, adding its head,
// until a pass derives nothing new or the queried literal turns up. The
// literal universe is finite and the known set only grows, so the loop
// terminates. A literal not derivable at the fixed point is reported false:
// the knowledge base makes the closed-world assumption.
func (kb *KnowledgeBase) Query(name string) bool {
	known := make(map[string]bool)
	for _, r := range kb.rules {
		if r.IsFact() && !known[r.Head] {
			known[r.Head] = true
			kb.log.Debug("known fact", zap.String("literal", r.Head))
		}
	}
	for !known[name] {
		derived := false
		for _, r := range kb.rules {
			if known[r.Head] || !bodyKnown(r.Body, known) {
				continue
			}
			known[r.Head] = true
			derived = true
			kb.log.Debug("derived literal",
				zap.String("literal", r.Head),
				zap.String("rule", r.String()))
		}
		if !derived {
			break
		}
	}
	result := known[name]
	kb.log.Debug("query answered", zap.String("literal", name), zap.Bool("result", result))
	return result
}

func bodyKnown(body []string, known map[string]bool) bool {
	for _, name := range body {
		if !known[name] {
			return false
		}
	}
	return true
}

func normalizeBody(body []string) []string {
	if len(body) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(body))
	out := make([]string, 0, len(body))
	for _, name := range body {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
