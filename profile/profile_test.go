package profile

import (
	"testing"

	"github.com/fixsolve/fixsolve/formula"
	"github.com/stretchr/testify/require"
)

// staticRelevance is a fixture GetRelevance over a fixed priority table.
type staticRelevance map[NodeID]int

func (s staticRelevance) RelevanceOf(n NodeID) Relevance {
	return Relevance{Priority: s[n], Node: n}
}

func (s staticRelevance) RewardOf(n NodeID) Reward {
	return s.RelevanceOf(n).Reward()
}

func TestRelevancePlayerParity(t *testing.T) {
	require.Equal(t, formula.P0, Relevance{Priority: 2}.Player())
	require.Equal(t, formula.P1, Relevance{Priority: 3}.Player())
}

func TestRewardBandOrdering(t *testing.T) {
	p1 := Relevance{Priority: 7, Node: 1}.Reward()
	neutral := Neutral
	p0 := Relevance{Priority: 2, Node: 2}.Reward()

	require.Negative(t, p1.Compare(neutral))
	require.Negative(t, neutral.Compare(p0))
	require.Positive(t, p0.Compare(p1))
}

func TestP1RewardOrderIsReversed(t *testing.T) {
	low := Relevance{Priority: 1, Node: 0}.Reward()
	high := Relevance{Priority: 3, Node: 0}.Reward()
	// higher priority favouring P1 is worse for P0, hence compares less
	require.Negative(t, high.Compare(low))
}

func TestPlayProfileCompareMostRelevantDominates(t *testing.T) {
	gr := staticRelevance{0: 2, 1: 4}
	a := PlayProfile{MostRelevant: 0}
	b := PlayProfile{MostRelevant: 1}
	require.Negative(t, a.Compare(b, gr))
}

func TestPlayProfileCompareCountBeforeFavoursShorterForP0(t *testing.T) {
	gr := staticRelevance{0: 2}
	shorter := PlayProfile{MostRelevant: 0, CountBefore: 1}
	longer := PlayProfile{MostRelevant: 0, CountBefore: 5}
	// priority 2 is even, favours P0: shorter path compares greater (better)
	require.Positive(t, shorter.Compare(longer, gr))
}

func TestPlayProfileCompareCountBeforeFavoursLongerForP1(t *testing.T) {
	gr := staticRelevance{0: 3}
	shorter := PlayProfile{MostRelevant: 0, CountBefore: 1}
	longer := PlayProfile{MostRelevant: 0, CountBefore: 5}
	// priority 3 is odd, favours P1: longer path compares greater (better)
	require.Negative(t, shorter.Compare(longer, gr))
}
