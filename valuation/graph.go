package valuation

import (
	"github.com/fixsolve/fixsolve/arena"
	"github.com/fixsolve/fixsolve/profile"
)

// graph is the arena as seen through one fixed GameStrategy: a Player 0
// node's only successor is the one the strategy currently picks, while a
// Player 1 node keeps every successor the arena actually recorded.
type graph struct {
	a *arena.Arena
	s *arena.GameStrategy
}

func (g *graph) PredecessorsOf(n profile.NodeID) []profile.NodeID {
	return g.s.PredecessorsOf(n, g.a)
}

func (g *graph) SuccessorsOf(n profile.NodeID) []profile.NodeID {
	return g.s.SuccessorsOf(n, g.a)
}

func (g *graph) RelevanceOf(n profile.NodeID) profile.Relevance { return g.a.RelevanceOf(n) }
func (g *graph) RewardOf(n profile.NodeID) profile.Reward       { return g.a.RewardOf(n) }
func (g *graph) NodeCount() int                                 { return g.a.NodeCount() }
func (g *graph) NodesSortedByReward() []profile.NodeID          { return g.a.NodesSortedByReward() }

func filterOutEvaluated(nodes []profile.NodeID, evaluated nodeSet) []profile.NodeID {
	out := nodes[:0:0]
	for _, n := range nodes {
		if !evaluated.contains(n) {
			out = append(out, n)
		}
	}
	return out
}
