// Package logic offers facilities to build, parse and reason about
// propositional formulas.
//
// A Formula is an immutable tree of literals, negations, conjunctions,
// disjunctions and implications. Formulas are written in a compact infix
// notation: single uppercase letters are literals, "a" is a conjunction,
// "v" a disjunction, "->" a right-associative implication and "!" a
// negation. Parentheses group subformulas. For instance:
//
//	Av!B
//	(AaB)->C
//	!(AvB)a(C->D)
//
// The package converts formulas to conjunctive or disjunctive normal form
// using the usual rewriting steps (implication elimination, De Morgan's
// laws, distribution), and answers semantic questions - tautology,
// contradiction, satisfiability, the set of satisfying interpretations -
// by exhaustively enumerating every interpretation of the formula's
// literals. The enumeration visits all 2^n interpretations over n distinct
// literals; it is meant for small formulas, and callers are responsible
// for bounding the literal count. It is deliberately not a SAT solver.
//
// A seeded random formula generator is included for testing.
package logic
