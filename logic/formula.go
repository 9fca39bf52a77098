package logic

// An Interpretation assigns a truth value to literal names. Evaluation
// requires it to be total over the literals of the formula at hand.
type Interpretation map[string]bool

// A Formula is a propositional formula, not necessarily in any normal form.
// Formulas are immutable: every transformation builds a new tree.
type Formula interface {
	// nnf returns an equivalent formula in negation normal form:
	// implications are eliminated and negation applies only to literals.
	nnf() Formula
	eval(model Interpretation) (bool, error)
	collectLiterals(names map[string]struct{})
	String() string
}

// Operator precedence, loosest to tightest. Used when rendering a formula
// back to its textual notation with a minimal set of parentheses.
const (
	precImplies = iota + 1
	precOr
	precAnd
	precNot
	precLeaf
)

func precedence(f Formula) int {
	switch f.(type) {
	case variable, lit:
		return precLeaf
	case not:
		return precNot
	case and:
		return precAnd
	case or:
		return precOr
	case implies:
		return precImplies
	}
	panic("invalid formula type")
}

// render writes f, parenthesized when its connective binds looser than the
// surrounding one.
func render(f Formula, parent int) string {
	if precedence(f) < parent {
		return "(" + f.String() + ")"
	}
	return f.String()
}

// Var returns the formula made of the single literal name.
// Literal names are single uppercase letters.
func Var(name string) Formula {
	return variable(name)
}

type variable string

func (v variable) nnf() Formula { return lit{name: string(v)} }

func (v variable) String() string { return string(v) }

func (v variable) eval(model Interpretation) (bool, error) {
	b, ok := model[string(v)]
	if !ok {
		return false, &UnboundLiteralError{Name: string(v)}
	}
	return b, nil
}

func (v variable) collectLiterals(names map[string]struct{}) {
	names[string(v)] = struct{}{}
}

// lit is a possibly negated literal, the leaf form used once a formula is
// in negation normal form.
type lit struct {
	name    string
	negated bool
}

func (l lit) nnf() Formula { return l }

func (l lit) String() string {
	if l.negated {
		return "!" + l.name
	}
	return l.name
}

func (l lit) eval(model Interpretation) (bool, error) {
	b, ok := model[l.name]
	if !ok {
		return false, &UnboundLiteralError{Name: l.name}
	}
	if l.negated {
		return !b, nil
	}
	return b, nil
}

func (l lit) collectLiterals(names map[string]struct{}) {
	names[l.name] = struct{}{}
}

// Not negates the given subformula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) nnf() Formula {
	switch f := n[0].(type) {
	case variable:
		return lit{name: string(f), negated: true}
	case lit:
		f.negated = !f.negated
		return f
	case not:
		return f[0].nnf()
	case and:
		return or{not{f[0]}, not{f[1]}}.nnf()
	case or:
		return and{not{f[0]}, not{f[1]}}.nnf()
	case implies:
		return not{or{not{f[0]}, f[1]}}.nnf()
	default:
		panic("invalid formula type")
	}
}

func (n not) String() string {
	return "!" + render(n[0], precNot)
}

func (n not) eval(model Interpretation) (bool, error) {
	b, err := n[0].eval(model)
	if err != nil {
		return false, err
	}
	return !b, nil
}

func (n not) collectLiterals(names map[string]struct{}) {
	n[0].collectLiterals(names)
}

// And returns the conjunction of the two given subformulas.
func And(f1, f2 Formula) Formula {
	return and{f1, f2}
}

type and [2]Formula

func (a and) nnf() Formula { return and{a[0].nnf(), a[1].nnf()} }

func (a and) String() string {
	return render(a[0], precAnd) + "a" + render(a[1], precAnd)
}

func (a and) eval(model Interpretation) (bool, error) {
	b1, err := a[0].eval(model)
	if err != nil {
		return false, err
	}
	b2, err := a[1].eval(model)
	if err != nil {
		return false, err
	}
	return b1 && b2, nil
}

func (a and) collectLiterals(names map[string]struct{}) {
	a[0].collectLiterals(names)
	a[1].collectLiterals(names)
}

// Or returns the disjunction of the two given subformulas.
func Or(f1, f2 Formula) Formula {
	return or{f1, f2}
}

type or [2]Formula

func (o or) nnf() Formula { return or{o[0].nnf(), o[1].nnf()} }

func (o or) String() string {
	return render(o[0], precOr) + "v" + render(o[1], precOr)
}

func (o or) eval(model Interpretation) (bool, error) {
	b1, err := o[0].eval(model)
	if err != nil {
		return false, err
	}
	b2, err := o[1].eval(model)
	if err != nil {
		return false, err
	}
	return b1 || b2, nil
}

func (o or) collectLiterals(names map[string]struct{}) {
	o[0].collectLiterals(names)
	o[1].collectLiterals(names)
}

// Implies returns the implication of the second subformula by the first.
func Implies(f1, f2 Formula) Formula {
	return implies{f1, f2}
}

type implies [2]Formula

func (m implies) nnf() Formula {
	return or{not{m[0]}, m[1]}.nnf()
}

func (m implies) String() string {
	// Right-associative: the left side needs parentheses when it is
	// itself an implication.
	return render(m[0], precImplies+1) + "->" + render(m[1], precImplies)
}

func (m implies) eval(model Interpretation) (bool, error) {
	b1, err := m[0].eval(model)
	if err != nil {
		return false, err
	}
	b2, err := m[1].eval(model)
	if err != nil {
		return false, err
	}
	return !b1 || b2, nil
}

func (m implies) collectLiterals(names map[string]struct{}) {
	m[0].collectLiterals(names)
	m[1].collectLiterals(names)
}
