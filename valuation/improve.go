package valuation

import (
	"github.com/fixsolve/fixsolve/arena"
	"github.com/fixsolve/fixsolve/profile"
)

// Improve compares every Player 0 node's current strategy successor
// against its other successors under the given profiles, switching to a
// strictly better one wherever found. Reports whether anything changed;
// run Improve again (after revaluating) until it reports false to reach a
// fixed point.
func Improve(a *arena.Arena, strategy *arena.GameStrategy, profiles []profile.PlayProfile) bool {
	g := &graph{a: a, s: strategy}
	improved := false

	strategy.UpdateEach(a, func(n0, n1 profile.NodeID) profile.NodeID {
		best := n1
		// The unrestricted arena successors, not the single strategy
		// pick UpdateEach is in the middle of replacing.
		for _, n2 := range a.SuccessorsOf(n0) {
			if profile.CompareFrom(profiles, n0, best, n2, g) < 0 {
				best = n2
				improved = true
			}
		}
		return best
	})

	return improved
}
