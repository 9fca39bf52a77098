package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		f    Formula
		want string
	}{
		{"literal", Var("A"), "A"},
		{"negated literal", Not(Var("B")), "!B"},
		{"conjunction", And(Var("A"), Var("B")), "AaB"},
		{"disjunction", Or(Var("A"), Not(Var("B"))), "Av!B"},
		{"implication", Implies(Var("A"), Var("B")), "A->B"},
		{"precedence needs no parens", Or(And(Var("A"), Var("B")), Var("C")), "AaBvC"},
		{"parens around looser child", And(Or(Var("A"), Var("B")), Var("C")), "(AvB)aC"},
		{"negated compound", Not(Or(Var("A"), Var("B"))), "!(AvB)"},
		{"nested implication left", Implies(Implies(Var("A"), Var("B")), Var("C")), "(A->B)->C"},
		{"nested implication right", Implies(Var("A"), Implies(Var("B"), Var("C"))), "A->B->C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.String())
		})
	}
}

// Rendering and parsing are mutually inverse up to the printed form.
func TestStringParseRoundTrip(t *testing.T) {
	g, err := NewGenerator([]string{"A", "B", "C", "D"}, 7)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		f := g.Generate(4)
		parsed, err := Parse(f.String())
		require.NoError(t, err, "rendering of %s must parse back", f)
		assert.Equal(t, f.String(), parsed.String())
	}
}

func TestEval(t *testing.T) {
	f, err := Parse("(AvB)a!C->D")
	require.NoError(t, err)
	tests := []struct {
		model Interpretation
		want  bool
	}{
		{Interpretation{"A": true, "B": false, "C": false, "D": true}, true},
		{Interpretation{"A": true, "B": false, "C": false, "D": false}, false},
		{Interpretation{"A": false, "B": false, "C": false, "D": false}, true},
		{Interpretation{"A": true, "B": true, "C": true, "D": false}, true},
	}
	for _, tt := range tests {
		got, err := Eval(f, tt.model)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "model %v", tt.model)
	}
}

func TestEvalUnboundLiteral(t *testing.T) {
	f, err := Parse("AaB")
	require.NoError(t, err)
	_, err = Eval(f, Interpretation{"A": true})
	require.Error(t, err)
	var uerr *UnboundLiteralError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "B", uerr.Name)
}

func TestLiterals(t *testing.T) {
	f, err := Parse("(BvA)a!CvB->A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, Literals(f))
}
