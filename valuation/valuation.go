package valuation

import (
	"container/list"
	"sort"

	"github.com/fixsolve/fixsolve/arena"
	"github.com/fixsolve/fixsolve/formula"
	"github.com/fixsolve/fixsolve/profile"
)

// Valuate computes, for every node in a restricted to the given strategy,
// the play profile its optimal play settles into, plus the strategy edge
// every node (Player 0 and Player 1 alike) actually takes in that play.
// Both results are indexed by profile.NodeID.
func Valuate(a *arena.Arena, strategy *arena.GameStrategy) ([]profile.PlayProfile, []profile.NodeID) {
	g := &graph{a: a, s: strategy}

	n := g.NodeCount()
	evaluated := make(nodeSet, n)
	profiles := make([]profile.PlayProfile, n)
	finalStrategy := make([]profile.NodeID, n)
	for i := range finalStrategy {
		finalStrategy[i] = profile.NodeID(-1)
	}

	for _, w := range g.NodesSortedByReward() {
		if evaluated.contains(w) {
			continue
		}

		predsOf := func(n profile.NodeID) []profile.NodeID {
			return filterOutEvaluated(g.PredecessorsOf(n), evaluated)
		}
		succsOf := func(n profile.NodeID) []profile.NodeID {
			return filterOutEvaluated(g.SuccessorsOf(n), evaluated)
		}

		wRel := g.RelevanceOf(w)
		reachSet := reach(w, func(u profile.NodeID) []profile.NodeID {
			var out []profile.NodeID
			for _, v := range predsOf(u) {
				if g.RelevanceOf(v).Compare(wRel) <= 0 {
					out = append(out, v)
				}
			}
			return out
		})

		canLoop := false
		for _, v := range succsOf(w) {
			if reachSet.contains(v) {
				canLoop = true
				break
			}
		}
		if !canLoop {
			continue
		}

		kSet := reach(w, predsOf)

		subevaluation(g, w, kSet, profiles, finalStrategy)

		for v := range kSet {
			evaluated[v] = struct{}{}
		}
	}

	return profiles, finalStrategy
}

func subevaluation(g *graph, w profile.NodeID, kSet nodeSet, profiles []profile.PlayProfile, finalStrategy []profile.NodeID) {
	kNodes := make([]profile.NodeID, 0, len(kSet))
	for v := range kSet {
		kNodes = append(kNodes, v)
	}
	sort.Slice(kNodes, func(i, j int) bool {
		return g.RelevanceOf(kNodes[i]).Compare(g.RelevanceOf(kNodes[j])) < 0
	})

	rg := newRestrictedGraph(g, kNodes, kSet)
	wRelevance := rg.relevanceOf(w)

	for _, v := range kNodes {
		profiles[v].MostRelevant = w
	}

	r := newReacher()

	for i := len(kNodes) - 1; i >= 0; i-- {
		u := kNodes[i]
		if rg.relevanceOf(u).Compare(wRelevance) <= 0 {
			break
		}

		if len(rg.predecessorsOf(u)) == 0 {
			profiles[u].RelevantBefore = append(profiles[u].RelevantBefore, u)
			continue
		}

		if rg.relevanceOf(u).Player() == formula.P0 {
			preventPaths(rg, w, u, profiles, r)
		} else {
			forcePaths(rg, w, u, profiles, r)
		}
	}

	if rg.relevanceOf(w).Player() == formula.P0 {
		setMaximalDistances(rg, w, profiles, finalStrategy)
	} else {
		setMinimalDistances(rg, w, profiles, finalStrategy)
	}
}

// preventPaths keeps any path that can avoid u from going through it: it
// finds every node that can reach w without passing through u, records u
// as relevant-before for every node NOT in that set (their only route now
// passes through u), then removes every edge from that set, and from u,
// into the rest of K, so those nodes can no longer be routed through u.
func preventPaths(g *restrictedGraph, w, u profile.NodeID, profiles []profile.PlayProfile, r *reacher) {
	uSet := r.reach(w, func(n profile.NodeID) []profile.NodeID {
		var out []profile.NodeID
		for _, v := range g.predecessorsOf(n) {
			if v != u {
				out = append(out, v)
			}
		}
		return out
	})

	for _, v := range g.kNodes {
		if !uSet.contains(v) {
			profiles[v].RelevantBefore = append(profiles[v].RelevantBefore, u)
		}
	}

	for v := range union(uSet, u) {
		for _, next := range g.allSuccessorsOf(v) {
			if !uSet.contains(next) {
				g.removeEdge(v, next)
			}
		}
	}
}

func union(s nodeSet, extra profile.NodeID) nodeSet {
	out := make(nodeSet, len(s)+1)
	for v := range s {
		out[v] = struct{}{}
	}
	out[extra] = struct{}{}
	return out
}

// forcePaths makes any path that can go through u do so: it records u as
// relevant-before for every node that can reach u without going through
// w, then removes edges that would let those nodes avoid u.
func forcePaths(g *restrictedGraph, w, u profile.NodeID, profiles []profile.PlayProfile, r *reacher) {
	uSet := r.reach(u, func(n profile.NodeID) []profile.NodeID {
		var out []profile.NodeID
		for _, v := range g.predecessorsOf(n) {
			if v != w {
				out = append(out, v)
			}
		}
		return out
	})

	for v := range uSet {
		profiles[v].RelevantBefore = append(profiles[v].RelevantBefore, u)
	}

	for v := range uSet {
		if v == u {
			continue
		}
		for _, next := range g.allSuccessorsOf(v) {
			if !uSet.contains(next) {
				g.removeEdge(v, next)
			}
		}
	}
}

type bfsEntry struct {
	node profile.NodeID
	succ profile.NodeID
	dist int
}

// setMaximalDistances assigns the longest path to w to every node in the
// restricted graph, favouring Player 0: it processes a node only once
// every one of its successors has already been assigned a distance
// (reverse topological order on a DAG of removed self-loops).
func setMaximalDistances(g *restrictedGraph, w profile.NodeID, profiles []profile.PlayProfile, finalStrategy []profile.NodeID) {
	remaining := make(map[profile.NodeID]int, len(g.kNodes))
	for _, v := range g.kNodes {
		remaining[v] = g.successorsCountOf(v)
	}

	queue := list.New()
	wSucc := g.successorsOf(w)[0]
	queue.PushBack(bfsEntry{w, wSucc, 0})

	for queue.Len() > 0 {
		e := queue.Remove(queue.Front()).(bfsEntry)
		profiles[e.node].CountBefore = e.dist
		finalStrategy[e.node] = e.succ

		for _, u := range g.predecessorsOf(e.node) {
			if u == w {
				continue
			}
			remaining[u]--
			if remaining[u] == 0 {
				queue.PushBack(bfsEntry{u, e.node, e.dist + 1})
			}
		}
	}
}

// setMinimalDistances assigns the shortest path to w, favouring Player 1:
// an ordinary backward BFS from w.
func setMinimalDistances(g *restrictedGraph, w profile.NodeID, profiles []profile.PlayProfile, finalStrategy []profile.NodeID) {
	seen := make(nodeSet)

	queue := list.New()
	wSucc := g.successorsOf(w)[0]
	queue.PushBack(bfsEntry{w, wSucc, 0})

	for queue.Len() > 0 {
		e := queue.Remove(queue.Front()).(bfsEntry)
		if !seen.insert(e.node) {
			continue
		}
		profiles[e.node].CountBefore = e.dist
		finalStrategy[e.node] = e.succ

		for _, u := range g.predecessorsOf(e.node) {
			queue.PushBack(bfsEntry{u, e.node, e.dist + 1})
		}
	}
}
