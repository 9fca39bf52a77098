package logic

import "sort"

// Eval returns the truth value of f under the given interpretation.
// The interpretation must bind every literal occurring in f; a missing
// binding yields an *UnboundLiteralError.
func Eval(f Formula, model Interpretation) (bool, error) {
	return f.eval(model)
}

// Literals returns the distinct literal names occurring in f, sorted.
func Literals(f Formula) []string {
	set := make(map[string]struct{})
	f.collectLiterals(set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// forEachInterpretation calls fn with every interpretation over f's
// literals and the truth value of f under it. Interpretations are visited
// in lexicographic order of the name-sorted assignment, false before true,
// so derived results are deterministic. All 2^n interpretations over the
// formula's n literals are visited: callers bound n.
func forEachInterpretation(f Formula, fn func(model Interpretation, value bool)) {
	names := Literals(f)
	n := len(names)
	for mask := 0; mask < 1<<n; mask++ {
		model := make(Interpretation, n)
		for i, name := range names {
			model[name] = mask&(1<<(n-1-i)) != 0
		}
		value, err := f.eval(model)
		if err != nil {
			// The interpretation is total by construction.
			panic(err)
		}
		fn(model, value)
	}
}

// IsTautology reports whether f evaluates to true under every
// interpretation of its literals.
func IsTautology(f Formula) bool {
	taut := true
	forEachInterpretation(f, func(_ Interpretation, value bool) {
		taut = taut && value
	})
	return taut
}

// IsContradiction reports whether f evaluates to false under every
// interpretation of its literals.
func IsContradiction(f Formula) bool {
	return !IsSatisfiable(f)
}

// IsSatisfiable reports whether at least one interpretation makes f true.
func IsSatisfiable(f Formula) bool {
	sat := false
	forEachInterpretation(f, func(_ Interpretation, value bool) {
		sat = sat || value
	})
	return sat
}

// TrueInterpretations returns the interpretations under which f evaluates
// to true, possibly none. The ordering is the enumeration order described
// on forEachInterpretation.
func TrueInterpretations(f Formula) []Interpretation {
	var models []Interpretation
	forEachInterpretation(f, func(model Interpretation, value bool) {
		if value {
			models = append(models, model)
		}
	})
	return models
}
