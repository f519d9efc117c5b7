package profile

import "github.com/fixsolve/fixsolve/formula"

// PlayProfile summarizes the cycle a node's optimal play eventually
// settles into: the single most relevant node on that cycle, the nodes
// of even higher relevance visited on the way there (most relevant
// first), and how many nodes were visited before reaching it.
type PlayProfile struct {
	MostRelevant   NodeID
	RelevantBefore []NodeID
	CountBefore    int
}

// Winning reports which player wins the play this profile describes:
// whichever player the most relevant node's priority favours.
func (p PlayProfile) Winning(gr GetRelevance) formula.Player {
	return gr.RelevanceOf(p.MostRelevant).Player()
}

func (p PlayProfile) rewardsBefore(gr GetRelevance) []Reward {
	out := make([]Reward, len(p.RelevantBefore)+1)
	for i, n := range p.RelevantBefore {
		out[i] = gr.RewardOf(n)
	}
	out[len(p.RelevantBefore)] = Neutral
	return out
}

// CompareCycle compares just the cycle the two profiles settle into: the
// reward of the most relevant node, then the rewards visited before it
// (most relevant first, each sequence padded with a trailing Neutral so
// different lengths still compare consistently). It ignores CountBefore,
// the distance to the cycle, which is meaningless when both profiles
// describe the very cycle currently being evaluated.
func (p PlayProfile) CompareCycle(o PlayProfile, gr GetRelevance) int {
	if c := gr.RewardOf(p.MostRelevant).Compare(gr.RewardOf(o.MostRelevant)); c != 0 {
		return c
	}

	pb, ob := p.rewardsBefore(gr), o.rewardsBefore(gr)
	n := len(pb)
	if len(ob) < n {
		n = len(ob)
	}
	for i := 0; i < n; i++ {
		if c := pb[i].Compare(ob[i]); c != 0 {
			return c
		}
	}
	return intCompare(len(pb), len(ob))
}

// Compare implements the three-tier lexicographic order used for
// strategy improvement: CompareCycle, then the path length to the cycle
// — shorter is better for Player 0, longer is better for Player 1.
func (p PlayProfile) Compare(o PlayProfile, gr GetRelevance) int {
	if c := p.CompareCycle(o, gr); c != 0 {
		return c
	}

	cmpCount := intCompare(p.CountBefore, o.CountBefore)
	if p.Winning(gr) == formula.P0 {
		return -cmpCount
	}
	return cmpCount
}

// CompareFrom compares the profiles of two successor candidates n1, n2
// in the context of exploring n0's successors: when n0 is itself the
// most relevant node of its own profile (it sits on the cycle being
// evaluated), CountBefore doesn't meaningfully separate them, so only
// the cycle is compared.
func CompareFrom(profiles []PlayProfile, n0, n1, n2 NodeID, gr GetRelevance) int {
	if profiles[n0].MostRelevant == n0 {
		return profiles[n1].CompareCycle(profiles[n2], gr)
	}
	return profiles[n1].Compare(profiles[n2], gr)
}
