package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// depth measures tree depth counting a literal, negated or not, as zero.
func depth(f Formula) int {
	switch f := f.(type) {
	case variable, lit:
		return 0
	case not:
		if _, ok := f[0].(variable); ok {
			return 0
		}
		return 1 + depth(f[0])
	case and:
		return 1 + max(depth(f[0]), depth(f[1]))
	case or:
		return 1 + max(depth(f[0]), depth(f[1]))
	case implies:
		return 1 + max(depth(f[0]), depth(f[1]))
	}
	panic("invalid formula type")
}

func TestGenerateDepthZero(t *testing.T) {
	g, err := NewGenerator([]string{"A", "B"}, 1)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		f := g.Generate(0)
		assert.Zero(t, depth(f), "got compound formula %s", f)
	}
}

func TestGenerateDepthBound(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g, err := NewGenerator([]string{"A", "B", "C"}, seed)
		require.NoError(t, err)
		for maxDepth := 0; maxDepth <= 4; maxDepth++ {
			f := g.Generate(maxDepth)
			assert.LessOrEqual(t, depth(f), maxDepth, "seed %d depth %d: %s", seed, maxDepth, f)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := NewGenerator([]string{"B", "A", "C"}, 99)
	require.NoError(t, err)
	second, err := NewGenerator([]string{"A", "C", "B"}, 99)
	require.NoError(t, err)
	for i := 0; i < 25; i++ {
		assert.Equal(t, first.Generate(5).String(), second.Generate(5).String())
	}
}

func TestGeneratePoolOnly(t *testing.T) {
	pool := []string{"X", "Y"}
	g, err := NewGenerator(pool, 3)
	require.NoError(t, err)
	for i := 0; i < 25; i++ {
		for _, name := range Literals(g.Generate(4)) {
			assert.Contains(t, pool, name)
		}
	}
}

func TestGenerateWeights(t *testing.T) {
	g, err := NewGenerator([]string{"A", "B"}, 5)
	require.NoError(t, err)
	// With only conjunction enabled, no other binary connective can
	// appear in the rendered formula.
	g.SetWeights(Weights{And: 1})
	for i := 0; i < 25; i++ {
		s := g.Generate(4).String()
		assert.NotContains(t, s, "v")
		assert.NotContains(t, s, "->")
	}
}

func TestNewGeneratorEmptyPool(t *testing.T) {
	_, err := NewGenerator(nil, 1)
	assert.Error(t, err)
}

func TestRandomParses(t *testing.T) {
	f, err := Random([]string{"A", "B", "C"}, 3, 123)
	require.NoError(t, err)
	_, err = Parse(f.String())
	assert.NoError(t, err)
}
