package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tadeaspaule/logic-toolkit/logic"
)

func mustCNF(t *testing.T, input string) logic.Formula {
	t.Helper()
	f, err := logic.Parse(input)
	require.NoError(t, err)
	return logic.ToCNF(f)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		input string
		want  []Rule
	}{
		{"A->B", []Rule{{Body: []string{"A"}, Head: "B"}}},
		{"A", []Rule{{Head: "A"}}},
		{"(A->B)a(B->C)", []Rule{
			{Body: []string{"A"}, Head: "B"},
			{Body: []string{"B"}, Head: "C"},
		}},
		{"AaB->C", []Rule{{Body: []string{"A", "B"}, Head: "C"}}},
		{"Aa(B->C)", []Rule{
			{Head: "A"},
			{Body: []string{"B"}, Head: "C"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rules, err := Extract(mustCNF(t, tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, rules)
		})
	}
}

func TestExtractNonDefiniteClause(t *testing.T) {
	// Two positive literals in one clause, then none at all.
	for _, input := range []string{"AvB", "(A->B)a(CvD)", "!Av!B"} {
		t.Run(input, func(t *testing.T) {
			_, err := Extract(mustCNF(t, input))
			require.Error(t, err)
			var nderr *NonDefiniteClauseError
			assert.ErrorAs(t, err, &nderr)
		})
	}
}

func TestExtractRequiresCNF(t *testing.T) {
	f, err := logic.Parse("A->B")
	require.NoError(t, err)
	_, err = Extract(f) // not converted: still an implication tree
	assert.ErrorIs(t, err, logic.ErrNotCNF)
}

func TestExtractedRulesAnswerQueries(t *testing.T) {
	rules, err := Extract(mustCNF(t, "Aa(A->B)a(AaB->C)"))
	require.NoError(t, err)
	base := New()
	require.NoError(t, base.Add(rules...))
	assert.True(t, base.Query("C"))
	assert.False(t, base.Query("D"))
}
