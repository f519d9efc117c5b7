package local

import (
	"sort"

	"github.com/fixsolve/fixsolve/arena"
	"github.com/fixsolve/fixsolve/profile"
)

// UpdateWinningSets folds every node whose play profile disagrees with
// its owner (it is definitely lost for whoever controls it, with no
// unexplored edge left that could still change that) into the arena's
// permanent win/loss sets, propagating the consequence to predecessors.
func UpdateWinningSets(a *arena.Arena, profiles []profile.PlayProfile, finalStrategy []profile.NodeID, strategy *arena.GameStrategy) {
	for _, n := range definitelyLosingSet(a, profiles, finalStrategy) {
		switch k := a.Resolve(n); k.Tag {
		case arena.KindP0:
			if a.P0Win(k.P0) == arena.Unknown {
				a.SetP0Losing(k.P0, strategy, finalStrategy)
			}
		case arena.KindP1:
			if a.P1Win(k.P1) == arena.Unknown {
				a.SetP1Losing(k.P1, strategy, finalStrategy)
			}
		}
	}
}

// definitelyLosingSet finds every node that the current play profiles
// say is lost for its owner and that cannot escape that verdict by
// exploring a still-unexplored edge: starting from the full set of
// profile-determined losers, it walks outward from every node that is
// still incomplete (and so might yet discover a winning move) along the
// inverse of the opponent's optimal strategy, removing from the losing
// set every node that inherits the chance to escape.
func definitelyLosingSet(a *arena.Arena, profiles []profile.PlayProfile, finalStrategy []profile.NodeID) []profile.NodeID {
	inverseStrategy := make([][]profile.NodeID, len(finalStrategy))
	for n, m := range finalStrategy {
		inverseStrategy[int(m)] = append(inverseStrategy[int(m)], profile.NodeID(n))
	}

	losing := make(map[profile.NodeID]struct{}, len(profiles))
	for n, p := range profiles {
		if a.PlayerOf(profile.NodeID(n)) != p.Winning(a) {
			losing[profile.NodeID(n)] = struct{}{}
		}
	}

	var queue []profile.NodeID
	for _, p0 := range a.P0Incomplete() {
		n := a.P0NodeID(p0)
		if _, ok := losing[n]; ok {
			delete(losing, n)
			queue = append(queue, n)
		}
	}
	for _, p1 := range a.P1Incomplete() {
		n := a.P1NodeID(p1)
		if _, ok := losing[n]; ok {
			delete(losing, n)
			queue = append(queue, n)
		}
	}

	for len(queue) > 0 {
		n := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, p := range inverseStrategy[int(n)] {
			for _, pp := range a.PredecessorsOf(p) {
				if _, ok := losing[pp]; ok {
					delete(losing, pp)
					queue = append(queue, pp)
				}
			}
		}
	}

	out := make([]profile.NodeID, 0, len(losing))
	for n := range losing {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
