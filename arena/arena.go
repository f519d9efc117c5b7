package arena

import (
	"github.com/fixsolve/fixsolve/formula"
	"github.com/fixsolve/fixsolve/moves"
	"github.com/fixsolve/fixsolve/profile"
)

// System is what the arena needs from the equation system being solved:
// the formula oracle plus the fixpoint type and count of its variables.
// formula.EqSystem and the fixture oracles both satisfy it.
type System interface {
	moves.Oracle
	FixTypeOf(v formula.VarID) formula.FixType
	VarCount() int
}

// Arena is the parity game built on the fly for one query: the four
// sentinels, every Player 0 / Player 1 position discovered while
// exploring moves, and the edges between them.
type Arena struct {
	sys   System
	p0    *p0Data
	p1    *p1Data
	nodes []NodeKind

	// varToP0 groups Player 0 nodes by the variable they evaluate,
	// each inner slice sorted by insertion (hence NodeP0ID) order, used
	// by NodesSortedByReward.
	varToP0 [][]NodeP0ID

	// lastSimplified holds, per Player 0 node, the epoch last stored with
	// SetLastSimplified (0 until then). The arena itself never reads it.
	lastSimplified []int
}

// New builds an Arena with the four sentinels and a single Player 0 node
// for the initial position.
func New(init moves.P0Pos, sys System) *Arena {
	a := &Arena{
		sys: sys,
		p0:  newP0Data(),
		p1:  newP1Data(),
		nodes: []NodeKind{
			{Tag: KindW0}, {Tag: KindL0}, {Tag: KindW1}, {Tag: KindL1},
		},
		varToP0: make([][]NodeP0ID, sys.VarCount()),
	}
	a.InsertP0(init)
	return a
}

// Resolve returns what n resolves to.
func (a *Arena) Resolve(n NodeID) NodeKind {
	return a.nodes[int(n)]
}

// PlayerOf reports which player owns node n.
func (a *Arena) PlayerOf(n NodeID) formula.Player {
	switch a.Resolve(n).Tag {
	case KindL0, KindW0, KindP0:
		return formula.P0
	default:
		return formula.P1
	}
}

// RelevanceOf implements profile.GetRelevance: it assigns the priority
// every node carries in the reduction to a parity game.
func (a *Arena) RelevanceOf(n NodeID) profile.Relevance {
	var priority int
	switch k := a.Resolve(n); k.Tag {
	case KindL0, KindW1:
		// High priority (higher than any P0 node), in favour of P1.
		priority = 2*a.sys.VarCount() + 1
	case KindW0, KindL1:
		// High priority (higher than any P0 node), in favour of P0.
		priority = 2*a.sys.VarCount() + 2
	case KindP0:
		v := a.p0.pos[int(k.P0)].V
		fixType := a.sys.FixTypeOf(v)
		priority = 2 * int(v)
		if fixType == formula.Max {
			priority += 2
		} else {
			priority += 1
		}
	case KindP1:
		priority = 0
	}
	return profile.Relevance{Priority: priority, Node: n}
}

// RewardOf implements profile.GetRelevance.
func (a *Arena) RewardOf(n NodeID) profile.Reward {
	return a.RelevanceOf(n).Reward()
}

// NodeCount is the total number of nodes in the arena, sentinels
// included.
func (a *Arena) NodeCount() int {
	return len(a.nodes)
}

// SuccessorsOf returns n's successors in the reduced parity game.
// Sentinels only ever point at other sentinels; a Player 0/1 node with a
// recorded winner points at the sentinel for that winner, and one with no
// explored successors yet counts as a loss for its owner (the move
// iterator has nothing more to offer).
func (a *Arena) SuccessorsOf(n NodeID) []NodeID {
	switch k := a.Resolve(n); k.Tag {
	case KindL0:
		return []NodeID{W1}
	case KindL1:
		return []NodeID{W0}
	case KindW0:
		return []NodeID{L1}
	case KindW1:
		return []NodeID{L0}
	case KindP0:
		p0 := k.P0
		switch a.p0.win[int(p0)] {
		case Win0:
			return []NodeID{L1}
		case Win1:
			return []NodeID{W1}
		default:
			succs := a.p0.succs[int(p0)].Sorted()
			if len(succs) == 0 {
				return []NodeID{W1}
			}
			out := make([]NodeID, len(succs))
			for i, p1 := range succs {
				out[i] = a.p1.ids[p1]
			}
			return out
		}
	default: // KindP1
		p1 := k.P1
		switch a.p1.win[int(p1)] {
		case Win0:
			return []NodeID{W0}
		case Win1:
			return []NodeID{L0}
		default:
			succs := a.p1.succs[int(p1)].Sorted()
			if len(succs) == 0 {
				return []NodeID{W0}
			}
			out := make([]NodeID, len(succs))
			for i, p0 := range succs {
				out[i] = a.p0.ids[p0]
			}
			return out
		}
	}
}

// PredecessorsOf returns n's predecessors in the reduced parity game.
func (a *Arena) PredecessorsOf(n NodeID) []NodeID {
	switch k := a.Resolve(n); k.Tag {
	case KindL0:
		out := a.mapP1(a.p1.w1.Sorted())
		return append(out, W1)
	case KindL1:
		out := a.mapP0(a.p0.w0.Sorted())
		return append(out, W0)
	case KindW0:
		out := a.mapP1(a.p1.w0.Sorted())
		return append(out, L1)
	case KindW1:
		out := a.mapP0(a.p0.w1.Sorted())
		return append(out, L0)
	case KindP0:
		return a.mapP1(a.p0.preds[int(k.P0)].Sorted())
	default:
		return a.mapP0(a.p1.preds[int(k.P1)].Sorted())
	}
}

func (a *Arena) mapP0(ids []int) []NodeID {
	out := make([]NodeID, len(ids))
	for i, id := range ids {
		out[i] = a.p0.ids[id]
	}
	return out
}

func (a *Arena) mapP1(ids []int) []NodeID {
	out := make([]NodeID, len(ids))
	for i, id := range ids {
		out[i] = a.p1.ids[id]
	}
	return out
}

// NodesSortedByReward lists every node in increasing reward order: the
// order the hierarchical valuation algorithm processes them in.
func (a *Arena) NodesSortedByReward() []NodeID {
	var out []NodeID
	out = append(out, W1, L0)

	// P0 nodes for Min-fixpoint variables have odd relevance >= 1 and
	// are listed by decreasing NodeID (matching decreasing insertion
	// order within the variable, reflecting the least fixed point's
	// outer-to-inner evaluation order).
	var minP0 []NodeP0ID
	for v := a.sys.VarCount() - 1; v >= 0; v-- {
		if a.sys.FixTypeOf(formula.VarID(v)) != formula.Min {
			continue
		}
		for i := len(a.varToP0[v]) - 1; i >= 0; i-- {
			minP0 = append(minP0, a.varToP0[v][i])
		}
	}
	for _, n := range minP0 {
		out = append(out, a.p0.ids[int(n)])
	}

	for i := range a.p1.ids {
		out = append(out, a.p1.ids[i])
	}

	var maxP0 []NodeP0ID
	for v := 0; v < a.sys.VarCount(); v++ {
		if a.sys.FixTypeOf(formula.VarID(v)) != formula.Max {
			continue
		}
		maxP0 = append(maxP0, a.varToP0[v]...)
	}
	for _, n := range maxP0 {
		out = append(out, a.p0.ids[int(n)])
	}

	out = append(out, W0, L1)
	return out
}

// InsertP0 deduplicates pos into a Player 0 node, creating one (and its
// move iterator, predecessor/successor sets and slot in the global node
// table) if it wasn't seen before. Returns the node and whether it is new.
func (a *Arena) InsertP0(pos moves.P0Pos) (NodeP0ID, bool) {
	if id, ok := a.p0.posIndex[pos]; ok {
		return id, false
	}
	id := NodeP0ID(len(a.p0.pos))
	a.p0.posIndex[pos] = id
	a.p0.pos = append(a.p0.pos, pos)

	global := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, NodeKind{Tag: KindP0, P0: id})

	a.p0.ids = append(a.p0.ids, global)
	a.p0.moveIter = append(a.p0.moveIter, pos.Moves(a.sys))
	a.p0.preds = append(a.p0.preds, newIntSet())
	a.p0.succs = append(a.p0.succs, newIntSet())
	a.p0.incomplete.Insert(int(id))
	a.p0.win = append(a.p0.win, Unknown)

	a.varToP0[int(pos.V)] = append(a.varToP0[int(pos.V)], id)
	a.lastSimplified = append(a.lastSimplified, 0)

	return id, true
}

// InsertP1 is InsertP0's Player 1 counterpart.
func (a *Arena) InsertP1(pos moves.P1Pos) (NodeP1ID, bool) {
	key := pos.Key()
	if id, ok := a.p1.posIndex[key]; ok {
		return id, false
	}
	id := NodeP1ID(len(a.p1.pos))
	a.p1.posIndex[key] = id
	a.p1.pos = append(a.p1.pos, pos)

	global := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, NodeKind{Tag: KindP1, P1: id})

	a.p1.ids = append(a.p1.ids, global)
	a.p1.moveIter = append(a.p1.moveIter, pos.Moves())
	a.p1.preds = append(a.p1.preds, newIntSet())
	a.p1.succs = append(a.p1.succs, newIntSet())
	a.p1.incomplete.Insert(int(id))
	a.p1.win = append(a.p1.win, Unknown)

	return id, true
}

// InsertP1ToP0Edge records a move from a Player 1 position to a Player 0
// position.
func (a *Arena) InsertP1ToP0Edge(pred NodeP1ID, succ NodeP0ID) {
	a.p0.preds[int(succ)].Insert(int(pred))
	a.p1.succs[int(pred)].Insert(int(succ))
}

// InsertP0ToP1Edge records a move from a Player 0 position to a Player 1
// position.
func (a *Arena) InsertP0ToP1Edge(pred NodeP0ID, succ NodeP1ID) {
	a.p1.preds[int(succ)].Insert(int(pred))
	a.p0.succs[int(pred)].Insert(int(succ))
}

// P0Count is the number of Player 0 positions discovered so far.
func (a *Arena) P0Count() int { return len(a.p0.pos) }

// P1Count is the number of Player 1 positions discovered so far.
func (a *Arena) P1Count() int { return len(a.p1.pos) }

// RemoveP0Incomplete marks a Player 0 node as having no more unexplored
// edges to offer.
func (a *Arena) RemoveP0Incomplete(p0 NodeP0ID) { a.p0.incomplete.Remove(int(p0)) }

// RemoveP1Incomplete is RemoveP0Incomplete's Player 1 counterpart.
func (a *Arena) RemoveP1Incomplete(p1 NodeP1ID) { a.p1.incomplete.Remove(int(p1)) }

// P0SuccessorCount is how many Player 1 nodes a Player 0 node currently
// points to.
func (a *Arena) P0SuccessorCount(p0 NodeP0ID) int { return a.p0.succs[int(p0)].Len() }

// P1SuccessorCount is P0SuccessorCount's Player 1 counterpart.
func (a *Arena) P1SuccessorCount(p1 NodeP1ID) int { return a.p1.succs[int(p1)].Len() }

// MarkP0SuccessorsExhausted records that p0's move iterator ran out with
// no successors ever recorded, so it points directly at the W1 sentinel.
// This only updates bookkeeping sets; the definitive win/loss
// determination still happens through SetP0Losing/winning propagation.
func (a *Arena) MarkP0SuccessorsExhausted(p0 NodeP0ID, strategy *GameStrategy) {
	a.p0.w1.Insert(int(p0))
	strategy.TryAdd(p0, w1Sink)
}

// MarkP1SuccessorsExhausted is MarkP0SuccessorsExhausted's Player 1
// counterpart; Player 1 has no GameStrategy entry to rewire.
func (a *Arena) MarkP1SuccessorsExhausted(p1 NodeP1ID) {
	a.p1.w0.Insert(int(p1))
}

// W1Sink and L1Sink are the two strategy successors standing in for a
// direct edge to the W1/L1 sentinel, for callers outside the arena
// package that need to hand one to GameStrategy.Update/TryAdd.
func W1Sink() NodeP1ID { return w1Sink }
func L1Sink() NodeP1ID { return l1Sink }

// LookupP0 returns the Player 0 node for pos without inserting it,
// reporting whether it has been discovered yet.
func (a *Arena) LookupP0(pos moves.P0Pos) (NodeP0ID, bool) {
	id, ok := a.p0.posIndex[pos]
	return id, ok
}

// P0PosOf returns the position a Player 0 node stands for.
func (a *Arena) P0PosOf(id NodeP0ID) moves.P0Pos { return a.p0.pos[int(id)] }

// P1PosOf returns the position a Player 1 node stands for.
func (a *Arena) P1PosOf(id NodeP1ID) moves.P1Pos { return a.p1.pos[int(id)] }

// P0NodeID returns the global NodeID a Player 0 node resolves to.
func (a *Arena) P0NodeID(id NodeP0ID) NodeID { return a.p0.ids[int(id)] }

// P1NodeID returns the global NodeID a Player 1 node resolves to.
func (a *Arena) P1NodeID(id NodeP1ID) NodeID { return a.p1.ids[int(id)] }

// P0Incomplete lists, in ascending order, the Player 0 nodes that still
// have unexplored edges.
func (a *Arena) P0Incomplete() []NodeP0ID {
	raw := a.p0.incomplete.Sorted()
	out := make([]NodeP0ID, len(raw))
	for i, v := range raw {
		out[i] = NodeP0ID(v)
	}
	return out
}

// P1Incomplete is P0Incomplete's Player 1 counterpart.
func (a *Arena) P1Incomplete() []NodeP1ID {
	raw := a.p1.incomplete.Sorted()
	out := make([]NodeP1ID, len(raw))
	for i, v := range raw {
		out[i] = NodeP1ID(v)
	}
	return out
}

// P0Moves returns the move iterator for a Player 0 node.
func (a *Arena) P0Moves(id NodeP0ID) *moves.P0Moves { return a.p0.moveIter[int(id)] }

// P1Moves returns the move iterator for a Player 1 node.
func (a *Arena) P1Moves(id NodeP1ID) *moves.P1Moves { return a.p1.moveIter[int(id)] }

// P0Win returns what the arena has proven about a Player 0 node.
func (a *Arena) P0Win(id NodeP0ID) WinState { return a.p0.win[int(id)] }

// P1Win returns what the arena has proven about a Player 1 node.
func (a *Arena) P1Win(id NodeP1ID) WinState { return a.p1.win[int(id)] }

// LastSimplified returns the epoch last stored for a Player 0 node with
// SetLastSimplified, or 0 if none was stored.
func (a *Arena) LastSimplified(id NodeP0ID) int { return a.lastSimplified[int(id)] }

// SetLastSimplified updates the bookkeeping LastSimplified reports.
func (a *Arena) SetLastSimplified(id NodeP0ID, epoch int) { a.lastSimplified[int(id)] = epoch }

// SimplificationEpoch is the total size of the arena's win/loss sets,
// which only ever grow, so the value never decreases.
func (a *Arena) SimplificationEpoch() int {
	return a.p0.w0.Len() + a.p0.w1.Len() + a.p1.w0.Len() + a.p1.w1.Len()
}
