package local

import (
	"github.com/fixsolve/fixsolve/arena"
	"github.com/fixsolve/fixsolve/formula"
	"github.com/fixsolve/fixsolve/moves"
	"github.com/fixsolve/fixsolve/profile"
)

// Expand grows the arena from whichever incomplete node belongs to the
// player currently losing at the root, one move at a time, until it has
// explored at least exploreGoal nodes and found at least one strategy
// improvement. Returns whether the arena is now fully expanded (every
// reachable node decided or folded into a cycle) with nothing left to
// improve.
func Expand(a *arena.Arena, profiles *[]profile.PlayProfile, finalStrategy *[]profile.NodeID, strategy *arena.GameStrategy, exploreGoal int) bool {
	explored := 0
	improved := false

	for explored < exploreGoal || !improved {
		initNode := a.P0NodeID(arena.InitP0)
		var start profile.NodeID
		haveStart := false
		if (*profiles)[initNode].Winning(a) == formula.P0 {
			if incomplete := a.P1Incomplete(); len(incomplete) > 0 {
				start = a.P1NodeID(incomplete[len(incomplete)-1])
				haveStart = true
			}
		} else {
			if incomplete := a.P0Incomplete(); len(incomplete) > 0 {
				start = a.P0NodeID(incomplete[len(incomplete)-1])
				haveStart = true
			}
		}
		if !haveStart {
			return !improved
		}

		next, ok := expandOne(start, a, strategy)
		if !ok {
			continue
		}
		startNext := next.node

		var expanded []profile.NodeID
		var stop profile.NodeID
		for {
			n := next.node
			if !next.isNew {
				stop = n
				break
			}
			expanded = append(expanded, n)
			next, ok = expandOne(n, a, strategy)
			if !ok {
				panic("local: expandOne must always succeed for a freshly inserted node")
			}
			*finalStrategy = append(*finalStrategy, next.node)
			explored++
		}

		updateProfiles(stop, expanded, a, profiles)

		player := a.PlayerOf(start)
		ord := profile.CompareFrom(*profiles, start, (*finalStrategy)[int(start)], startNext, a)
		betterFound := (ord < 0 && player == formula.P0) || (ord > 0 && player == formula.P1)
		if betterFound {
			if k := a.Resolve(start); k.Tag == arena.KindP0 {
				p1 := resolveP1(a, startNext)
				strategy.Update(k.P0, p1)
			}
			(*finalStrategy)[int(start)] = startNext
			improved = true
		}
	}

	return false
}

func resolveP1(a *arena.Arena, n profile.NodeID) arena.NodeP1ID {
	switch a.Resolve(n).Tag {
	case arena.KindL1:
		return arena.L1Sink()
	case arena.KindW1:
		return arena.W1Sink()
	default:
		return a.Resolve(n).ExpectP1()
	}
}

type insertedNode struct {
	node  profile.NodeID
	isNew bool
}

// expandOne explores one more move out of n, returning the node it leads
// to next. A false second result means n had nothing new to offer this
// round (it keeps whatever edges it already had); try a different start
// node.
func expandOne(n profile.NodeID, a *arena.Arena, strategy *arena.GameStrategy) (insertedNode, bool) {
	switch k := a.Resolve(n); k.Tag {
	case arena.KindP0:
		p0 := k.P0
		a.P0Moves(p0).Simplify(func(p moves.P0Pos) moves.Assumption {
			id, ok := a.LookupP0(p)
			if !ok {
				return moves.AssumptionUnknown
			}
			switch a.P0Win(id) {
			case arena.Win0:
				return moves.AssumptionWin
			case arena.Win1:
				return moves.AssumptionLose
			default:
				return moves.AssumptionUnknown
			}
		})

		pos, ok := a.P0Moves(p0).Next()
		if !ok {
			a.RemoveP0Incomplete(p0)
			if a.P0SuccessorCount(p0) == 0 {
				a.MarkP0SuccessorsExhausted(p0, strategy)
				return insertedNode{node: arena.W1, isNew: false}, true
			}
			return insertedNode{}, false
		}

		p1, isNew := a.InsertP1(pos)
		a.InsertP0ToP1Edge(p0, p1)
		strategy.TryAdd(p0, p1)
		return insertedNode{node: a.P1NodeID(p1), isNew: isNew}, true

	default: // KindP1
		p1 := k.P1
		var pos moves.P0Pos
		found := false
		for {
			candidate, ok := a.P1Moves(p1).Next()
			if !ok {
				break
			}
			id, known := a.LookupP0(candidate)
			if !known || a.P0Win(id) != arena.Win0 {
				pos = candidate
				found = true
				break
			}
		}

		if !found {
			a.RemoveP1Incomplete(p1)
			if a.P1SuccessorCount(p1) == 0 {
				a.MarkP1SuccessorsExhausted(p1)
				return insertedNode{node: arena.W0, isNew: false}, true
			}
			return insertedNode{}, false
		}

		p0, isNew := a.InsertP0(pos)
		a.InsertP1ToP0Edge(p1, p0)
		return insertedNode{node: a.P0NodeID(p0), isNew: isNew}, true
	}
}

// updateProfiles incrementally folds the newly expanded chain of nodes
// (expanded, in discovery order, leading to stop) into profiles: either
// stop is an already-evaluated node the chain now feeds into, or it
// closes a cycle back on itself within expanded.
func updateProfiles(stop profile.NodeID, expanded []profile.NodeID, a *arena.Arena, profiles *[]profile.PlayProfile) {
	stopIsExpanded := int(stop) >= len(*profiles)

	grown := make([]profile.PlayProfile, a.NodeCount())
	copy(grown, *profiles)
	*profiles = grown

	updated := func(n, next profile.NodeID) profile.PlayProfile {
		p := (*profiles)[next]
		nRel := a.RelevanceOf(n)
		if nRel.Compare(a.RelevanceOf(p.MostRelevant)) > 0 {
			pos := 0
			for pos < len(p.RelevantBefore) && a.RelevanceOf(p.RelevantBefore[pos]).Compare(nRel) > 0 {
				pos++
			}
			before := append([]profile.NodeID(nil), p.RelevantBefore[:pos]...)
			before = append(before, n)
			before = append(before, p.RelevantBefore[pos:]...)
			p.RelevantBefore = before
		}
		p.CountBefore++
		return p
	}

	if stopIsExpanded {
		cycleStart := -1
		for i, n := range expanded {
			if n == stop {
				cycleStart = i
				break
			}
		}

		mostRelevant := expanded[cycleStart]
		mostRelevantIndex := cycleStart
		for i := cycleStart + 1; i < len(expanded); i++ {
			if a.RelevanceOf(expanded[i]).Compare(a.RelevanceOf(mostRelevant)) > 0 {
				mostRelevant = expanded[i]
				mostRelevantIndex = i
			}
		}

		(*profiles)[mostRelevant] = profile.PlayProfile{MostRelevant: mostRelevant}

		next := mostRelevant
		for i := mostRelevantIndex - 1; i >= 0; i-- {
			n := expanded[i]
			(*profiles)[n] = updated(n, next)
			next = n
		}

		next = stop
		for i := len(expanded) - 1; i > mostRelevantIndex; i-- {
			n := expanded[i]
			(*profiles)[n].MostRelevant = mostRelevant
			(*profiles)[n].CountBefore = (*profiles)[next].CountBefore + 1
			next = n
		}
	} else {
		next := stop
		for i := len(expanded) - 1; i >= 0; i-- {
			n := expanded[i]
			(*profiles)[n] = updated(n, next)
			next = n
		}
	}
}
