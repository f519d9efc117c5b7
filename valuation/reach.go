// Package valuation implements hierarchical play-profile valuation and
// strategy improvement over an arena.Arena restricted to an
// arena.GameStrategy: computing, for every node, the cycle its optimal
// play eventually settles into, and improving Player 0's strategy until
// no node's profile can be bettered.
package valuation

import "github.com/fixsolve/fixsolve/profile"

// nodeSet is a set of profile.NodeID with no particular iteration order
// requirement; only membership matters here.
type nodeSet map[profile.NodeID]struct{}

func (s nodeSet) contains(n profile.NodeID) bool {
	_, ok := s[n]
	return ok
}

func (s nodeSet) insert(n profile.NodeID) bool {
	if _, ok := s[n]; ok {
		return false
	}
	s[n] = struct{}{}
	return true
}

// reacher is reusable scratch space for depth-first reachability
// searches: its stack is reused across calls, while each call returns a
// freshly allocated result set.
type reacher struct {
	stack []profile.NodeID
	set   nodeSet
}

func newReacher() *reacher {
	return &reacher{set: make(nodeSet)}
}

// reach returns the set of nodes reachable from start by repeatedly
// following explore, start included.
func (r *reacher) reach(start profile.NodeID, explore func(profile.NodeID) []profile.NodeID) nodeSet {
	r.stack = r.stack[:0]
	r.set = make(nodeSet)
	r.stack = append(r.stack, start)
	r.set[start] = struct{}{}

	for len(r.stack) > 0 {
		node := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
		for _, next := range explore(node) {
			if r.set.insert(next) {
				r.stack = append(r.stack, next)
			}
		}
	}
	return r.set
}

// reach is the one-shot form used where no scratch space is kept across
// calls.
func reach(start profile.NodeID, explore func(profile.NodeID) []profile.NodeID) nodeSet {
	return newReacher().reach(start, explore)
}
