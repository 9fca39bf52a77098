package logic

import (
	"errors"
	"math/rand"
	"sort"
)

// Weights controls how often the generator picks each connective for an
// internal node. A zero weight disables the connective; if every weight is
// zero the generator only produces leaves.
type Weights struct {
	Not     int
	And     int
	Or      int
	Implies int
}

// DefaultWeights picks every connective with the same probability.
func DefaultWeights() Weights {
	return Weights{Not: 1, And: 1, Or: 1, Implies: 1}
}

// A Generator produces random well-formed formulas over a fixed literal
// pool. Generation is reproducible: the same seed, pool and weights yield
// the same sequence of formulas.
type Generator struct {
	pool    []string
	weights Weights
	rng     *rand.Rand
}

// NewGenerator returns a generator over the given literal pool, seeded with
// seed and using the default connective weights. The pool must not be
// empty; its order does not matter.
func NewGenerator(pool []string, seed int64) (*Generator, error) {
	if len(pool) == 0 {
		return nil, errors.New("empty literal pool")
	}
	p := make([]string, len(pool))
	copy(p, pool)
	sort.Strings(p)
	return &Generator{
		pool:    p,
		weights: DefaultWeights(),
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// SetWeights replaces the connective weights used for internal nodes.
func (g *Generator) SetWeights(w Weights) {
	g.weights = w
}

// Generate returns a random formula with tree depth at most maxDepth.
// At depth 0 the result is a single literal or its negation; above that,
// the chance of stopping early on a leaf grows as the depth bound nears.
func (g *Generator) Generate(maxDepth int) Formula {
	if maxDepth <= 0 || g.rng.Intn(maxDepth+1) == 0 {
		return g.leaf()
	}
	w := g.weights
	total := w.Not + w.And + w.Or + w.Implies
	if total <= 0 {
		return g.leaf()
	}
	pick := g.rng.Intn(total)
	switch {
	case pick < w.Not:
		return Not(g.Generate(maxDepth - 1))
	case pick < w.Not+w.And:
		return And(g.Generate(maxDepth-1), g.Generate(maxDepth-1))
	case pick < w.Not+w.And+w.Or:
		return Or(g.Generate(maxDepth-1), g.Generate(maxDepth-1))
	default:
		return Implies(g.Generate(maxDepth-1), g.Generate(maxDepth-1))
	}
}

func (g *Generator) leaf() Formula {
	v := Var(g.pool[g.rng.Intn(len(g.pool))])
	if g.rng.Intn(2) == 0 {
		return Not(v)
	}
	return v
}

// Random returns a single random formula over the given pool using the
// default weights. It is shorthand for NewGenerator followed by Generate.
func Random(pool []string, maxDepth int, seed int64) (Formula, error) {
	g, err := NewGenerator(pool, seed)
	if err != nil {
		return nil, err
	}
	return g.Generate(maxDepth), nil
}
