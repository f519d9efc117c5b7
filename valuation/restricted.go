package valuation

import "github.com/fixsolve/fixsolve/profile"

type edge struct {
	from, to profile.NodeID
}

// restrictedGraph views graph through a fixed node set k (for subevaluation
// of one cycle) with individual edges removed on the fly as preventPaths
// and forcePaths decide a path must, or must not, go through a node.
type restrictedGraph struct {
	base   *graph
	kNodes []profile.NodeID
	kSet   nodeSet

	removedEdges          map[edge]struct{}
	removedSuccessorsCount map[profile.NodeID]int
}

func newRestrictedGraph(base *graph, kNodes []profile.NodeID, kSet nodeSet) *restrictedGraph {
	return &restrictedGraph{
		base:                   base,
		kNodes:                 kNodes,
		kSet:                   kSet,
		removedEdges:           make(map[edge]struct{}),
		removedSuccessorsCount: make(map[profile.NodeID]int),
	}
}

func (g *restrictedGraph) predecessorsOf(v profile.NodeID) []profile.NodeID {
	var out []profile.NodeID
	for _, u := range g.base.PredecessorsOf(v) {
		if !g.kSet.contains(u) {
			continue
		}
		if _, removed := g.removedEdges[edge{u, v}]; removed {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (g *restrictedGraph) successorsOf(v profile.NodeID) []profile.NodeID {
	var out []profile.NodeID
	for _, u := range g.base.SuccessorsOf(v) {
		if !g.kSet.contains(u) {
			continue
		}
		if _, removed := g.removedEdges[edge{v, u}]; removed {
			continue
		}
		out = append(out, u)
	}
	return out
}

func (g *restrictedGraph) successorsCountOf(v profile.NodeID) int {
	count := 0
	for _, u := range g.base.SuccessorsOf(v) {
		if g.kSet.contains(u) {
			count++
		}
	}
	return count - g.removedSuccessorsCount[v]
}

func (g *restrictedGraph) allSuccessorsOf(v profile.NodeID) []profile.NodeID {
	return g.base.SuccessorsOf(v)
}

func (g *restrictedGraph) removeEdge(v, u profile.NodeID) {
	if !g.kSet.contains(u) {
		return
	}
	e := edge{v, u}
	if _, already := g.removedEdges[e]; already {
		return
	}
	g.removedEdges[e] = struct{}{}
	g.removedSuccessorsCount[v]++
}

func (g *restrictedGraph) relevanceOf(v profile.NodeID) profile.Relevance {
	return g.base.RelevanceOf(v)
}
