package arena

import "github.com/fixsolve/fixsolve/formula"

// GameStrategy records Player 0's current choice of successor for every
// Player 0 node, plus the inverse mapping needed to find, for a given
// Player 1 node (or the W1/L1 sentinels), which Player 0 nodes currently
// point at it. w1Sink/l1Sink stand in for a direct edge to the W1/L1
// sentinel.
type GameStrategy struct {
	direct     []NodeP1ID // NodeP0ID -> chosen successor
	inverse    []intSet   // NodeP1ID -> set of NodeP0ID choosing it
	inverseW1  intSet
	inverseL1  intSet
}

// NewGameStrategy builds an empty strategy.
func NewGameStrategy() *GameStrategy {
	return &GameStrategy{
		inverseW1: newIntSet(),
		inverseL1: newIntSet(),
	}
}

// Get returns the successor currently chosen for p0.
func (s *GameStrategy) Get(p0 NodeP0ID) NodeP1ID {
	return s.direct[int(p0)]
}

// TryAdd records a first choice for p0, extending the direct/inverse
// tables as needed. It is a no-op if p0 already has a recorded choice.
func (s *GameStrategy) TryAdd(p0 NodeP0ID, p1 NodeP1ID) {
	for int(p1) >= 0 && int(p1) >= len(s.inverse) {
		s.inverse = append(s.inverse, newIntSet())
	}
	if int(p0) == len(s.direct) {
		s.direct = append(s.direct, p1)
		s.addInverse(p0, p1)
	}
}

// Update replaces p0's chosen successor with p1, fixing up the inverse
// tables.
func (s *GameStrategy) Update(p0 NodeP0ID, p1 NodeP1ID) {
	s.removeInverse(p0, s.direct[int(p0)])
	s.direct[int(p0)] = p1
	s.addInverse(p0, p1)
}

func (s *GameStrategy) addInverse(p0 NodeP0ID, p1 NodeP1ID) {
	switch p1 {
	case w1Sink:
		s.inverseW1.Insert(int(p0))
	case l1Sink:
		s.inverseL1.Insert(int(p0))
	default:
		s.inverse[int(p1)].Insert(int(p0))
	}
}

func (s *GameStrategy) removeInverse(p0 NodeP0ID, p1 NodeP1ID) {
	switch p1 {
	case w1Sink:
		s.inverseW1.Remove(int(p0))
	case l1Sink:
		s.inverseL1.Remove(int(p0))
	default:
		s.inverse[int(p1)].Remove(int(p0))
	}
}

// InverseOf returns, in ascending order, the Player 0 nodes currently
// choosing p1 as their successor.
func (s *GameStrategy) InverseOf(p1 NodeP1ID) []NodeP0ID {
	var raw []int
	switch p1 {
	case w1Sink:
		raw = s.inverseW1.Sorted()
	case l1Sink:
		raw = s.inverseL1.Sorted()
	default:
		raw = s.inverse[int(p1)].Sorted()
	}
	out := make([]NodeP0ID, len(raw))
	for i, v := range raw {
		out[i] = NodeP0ID(v)
	}
	return out
}

func p1ToNode(p1 NodeP1ID, a *Arena) NodeID {
	switch p1 {
	case w1Sink:
		return W1
	case l1Sink:
		return L1
	default:
		return a.p1.ids[int(p1)]
	}
}

// GetDirect returns the single successor Player 0's current strategy
// picks for a Player 0 node (or sentinel).
func (s *GameStrategy) GetDirect(n NodeID, a *Arena) NodeID {
	switch k := a.Resolve(n); k.Tag {
	case KindL0:
		return W1
	case KindW0:
		return L1
	case KindP0:
		return p1ToNode(s.direct[int(k.P0)], a)
	default:
		panic("arena: GetDirect called on a non-Player-0 node")
	}
}

// GetInverse returns every Player 0 node currently choosing n as its
// strategy successor.
func (s *GameStrategy) GetInverse(n NodeID, a *Arena) []NodeID {
	switch k := a.Resolve(n); k.Tag {
	case KindL1:
		return append(a.mapP0(s.inverseL1.Sorted()), W0)
	case KindW1:
		return append(a.mapP0(s.inverseW1.Sorted()), L0)
	case KindP1:
		return a.mapP0(s.inverse[int(k.P1)].Sorted())
	default:
		panic("arena: GetInverse called on a non-Player-1 node")
	}
}

// PredecessorsOf returns n's predecessors in the graph restricted to the
// current strategy: for a Player 0 node, every actual predecessor (it has
// no choice in how it's reached); for a Player 1 node, only the Player 0
// nodes whose strategy currently points here.
func (s *GameStrategy) PredecessorsOf(n NodeID, a *Arena) []NodeID {
	if a.PlayerOf(n) == formula.P0 {
		return a.PredecessorsOf(n)
	}
	return s.GetInverse(n, a)
}

// SuccessorsOf returns n's successors in the graph restricted to the
// current strategy: a Player 0 node's single chosen successor, or a
// Player 1 node's full, unrestricted successor set.
func (s *GameStrategy) SuccessorsOf(n NodeID, a *Arena) []NodeID {
	if a.PlayerOf(n) == formula.P0 {
		return []NodeID{s.GetDirect(n, a)}
	}
	return a.SuccessorsOf(n)
}

// UpdateEach calls f once per recorded Player 0 strategy edge with its
// current successor, replacing the edge if f returns a different node.
func (s *GameStrategy) UpdateEach(a *Arena, f func(n0, n1 NodeID) NodeID) {
	for p0 := 0; p0 < len(s.direct); p0++ {
		p1 := s.direct[p0]
		n1 := p1ToNode(p1, a)
		n0 := a.p0.ids[p0]

		nn1 := f(n0, n1)
		if nn1 == n1 {
			continue
		}

		s.removeInverse(NodeP0ID(p0), p1)

		var newP1 NodeP1ID
		switch k := a.Resolve(nn1); k.Tag {
		case KindL1:
			newP1 = l1Sink
		case KindW1:
			newP1 = w1Sink
		case KindP1:
			newP1 = k.P1
		default:
			panic("arena: strategy successor resolved to a Player 0 node")
		}

		s.direct[p0] = newP1
		s.addInverse(NodeP0ID(p0), newP1)
	}
}

// Iter lists every edge the current strategy commits to: one per Player 0
// node plus the two sentinel edges L0->W1 and W0->L1.
func (s *GameStrategy) Iter(a *Arena) [][2]NodeID {
	out := make([][2]NodeID, 0, len(s.direct)+2)
	for p0, p1 := range s.direct {
		out = append(out, [2]NodeID{a.p0.ids[p0], p1ToNode(p1, a)})
	}
	out = append(out, [2]NodeID{L0, W1}, [2]NodeID{W0, L1})
	return out
}
