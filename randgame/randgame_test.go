package randgame

import (
	"testing"

	"github.com/fixsolve/fixsolve/local"
	"github.com/stretchr/testify/require"
)

func TestGenerateProducesConfiguredShape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1

	lts := Generate(cfg)
	require.Len(t, lts.Transitions, cfg.States)
	for _, edges := range lts.Transitions {
		require.LessOrEqual(t, len(edges), cfg.TransitionsPerState)
		for _, e := range edges {
			require.GreaterOrEqual(t, e.Label, 0)
			require.Less(t, e.Label, cfg.Labels)
			require.GreaterOrEqual(t, e.Target, 0)
			require.Less(t, e.Target, cfg.States)
		}
	}
}

func TestGenerateIsDeterministicForAGivenSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42

	a := Generate(cfg)
	b := Generate(cfg)
	require.Equal(t, a.Transitions, b.Transitions)
}

func TestBisimilarityOfAStateWithItself(t *testing.T) {
	lts := &Lts{Transitions: [][]Transition{
		{{Label: 0, Target: 1}},
		{{Label: 1, Target: 0}},
	}}

	q := Bisimilarity(lts, lts)
	require.True(t, local.Solve(q.BasisFor(0, 0), 0, q.Sys))
}

func TestBisimilarityDistinguishesDifferentBranchingDegree(t *testing.T) {
	lhs := &Lts{Transitions: [][]Transition{
		{{Label: 0, Target: 1}},
		{},
	}}
	rhs := &Lts{Transitions: [][]Transition{
		{},
	}}

	q := Bisimilarity(lhs, rhs)
	require.False(t, local.Solve(q.BasisFor(0, 0), 0, q.Sys))
}
