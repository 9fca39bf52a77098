package logic

import (
	"fmt"
	"strings"
)

// ToCNF returns a conjunctive normal form of f: a conjunction of clauses,
// each clause a disjunction of possibly negated literals. The result is
// logically equivalent to f under every interpretation. The conversion
// eliminates implications, pushes negations down to the literals and then
// distributes disjunction over conjunction until no subformula violates the
// target shape. Converting an already-normalized formula yields an
// equivalent formula again.
func ToCNF(f Formula) Formula {
	return cnfRec(f.nnf())
}

// ToDNF returns a disjunctive normal form of f: a disjunction of terms,
// each term a conjunction of possibly negated literals. It mirrors ToCNF
// with the dual distribution law.
func ToDNF(f Formula) Formula {
	return dnfRec(f.nnf())
}

func cnfRec(f Formula) Formula {
	switch f := f.(type) {
	case lit:
		return f
	case and:
		return and{cnfRec(f[0]), cnfRec(f[1])}
	case or:
		return distributeOr(cnfRec(f[0]), cnfRec(f[1]))
	default:
		panic("invalid NNF formula")
	}
}

// distributeOr applies the distribution law (or over and) until neither
// operand is a conjunction. Both operands must already be in CNF, so the
// recursion bottoms out on clauses.
func distributeOr(f1, f2 Formula) Formula {
	if a, ok := f1.(and); ok {
		return and{distributeOr(a[0], f2), distributeOr(a[1], f2)}
	}
	if a, ok := f2.(and); ok {
		return and{distributeOr(f1, a[0]), distributeOr(f1, a[1])}
	}
	return or{f1, f2}
}

func dnfRec(f Formula) Formula {
	switch f := f.(type) {
	case lit:
		return f
	case or:
		return or{dnfRec(f[0]), dnfRec(f[1])}
	case and:
		return distributeAnd(dnfRec(f[0]), dnfRec(f[1]))
	default:
		panic("invalid NNF formula")
	}
}

func distributeAnd(f1, f2 Formula) Formula {
	if o, ok := f1.(or); ok {
		return or{distributeAnd(o[0], f2), distributeAnd(o[1], f2)}
	}
	if o, ok := f2.(or); ok {
		return or{distributeAnd(f1, o[0]), distributeAnd(f1, o[1])}
	}
	return and{f1, f2}
}

// A Lit is a possibly negated literal inside a clause or term.
type Lit struct {
	Name    string
	Negated bool
}

func (l Lit) String() string {
	if l.Negated {
		return "!" + l.Name
	}
	return l.Name
}

// A Clause is a disjunction of literals, one conjunct of a CNF formula.
type Clause []Lit

func (c Clause) String() string {
	strs := make([]string, len(c))
	for i, l := range c {
		strs[i] = l.String()
	}
	return strings.Join(strs, "v")
}

// A Term is a conjunction of literals, one disjunct of a DNF formula.
type Term []Lit

func (t Term) String() string {
	strs := make([]string, len(t))
	for i, l := range t {
		strs[i] = l.String()
	}
	return strings.Join(strs, "a")
}

// Clauses flattens a CNF-shaped formula into its ordered collection of
// clauses. It fails with ErrNotCNF when f does not have the
// conjunction-of-disjunctions shape.
func Clauses(f Formula) ([]Clause, error) {
	var clauses []Clause
	if err := collectClauses(f, &clauses); err != nil {
		return nil, err
	}
	return clauses, nil
}

func collectClauses(f Formula, clauses *[]Clause) error {
	if a, ok := f.(and); ok {
		if err := collectClauses(a[0], clauses); err != nil {
			return err
		}
		return collectClauses(a[1], clauses)
	}
	clause, err := flattenClause(f)
	if err != nil {
		return err
	}
	*clauses = append(*clauses, clause)
	return nil
}

func flattenClause(f Formula) (Clause, error) {
	switch f := f.(type) {
	case variable:
		return Clause{{Name: string(f)}}, nil
	case lit:
		return Clause{{Name: f.name, Negated: f.negated}}, nil
	case not:
		v, ok := f[0].(variable)
		if !ok {
			return nil, fmt.Errorf("%w: negation of %s", ErrNotCNF, f[0])
		}
		return Clause{{Name: string(v), Negated: true}}, nil
	case or:
		left, err := flattenClause(f[0])
		if err != nil {
			return nil, err
		}
		right, err := flattenClause(f[1])
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	default:
		return nil, fmt.Errorf("%w: unexpected subformula %s", ErrNotCNF, f)
	}
}

// Terms flattens a DNF-shaped formula into its ordered collection of terms.
// It fails with ErrNotDNF when f does not have the
// disjunction-of-conjunctions shape.
func Terms(f Formula) ([]Term, error) {
	var terms []Term
	if err := collectTerms(f, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

func collectTerms(f Formula, terms *[]Term) error {
	if o, ok := f.(or); ok {
		if err := collectTerms(o[0], terms); err != nil {
			return err
		}
		return collectTerms(o[1], terms)
	}
	term, err := flattenTerm(f)
	if err != nil {
		return err
	}
	*terms = append(*terms, term)
	return nil
}

func flattenTerm(f Formula) (Term, error) {
	switch f := f.(type) {
	case variable:
		return Term{{Name: string(f)}}, nil
	case lit:
		return Term{{Name: f.name, Negated: f.negated}}, nil
	case not:
		v, ok := f[0].(variable)
		if !ok {
			return nil, fmt.Errorf("%w: negation of %s", ErrNotDNF, f[0])
		}
		return Term{{Name: string(v), Negated: true}}, nil
	case and:
		left, err := flattenTerm(f[0])
		if err != nil {
			return nil, err
		}
		right, err := flattenTerm(f[1])
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	default:
		return nil, fmt.Errorf("%w: unexpected subformula %s", ErrNotDNF, f)
	}
}
