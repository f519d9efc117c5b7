// Package arena holds the parity game built on the fly while a query is
// resolved: the four sentinel positions every arena starts with, the
// Player 0 and Player 1 positions discovered while exploring moves, and
// the edges between them.
package arena

import (
	"fmt"

	"github.com/fixsolve/fixsolve/profile"
)

// NodeID is the coordinate space shared with the profile and valuation
// packages. The four sentinels always occupy the first four values, in
// this order, so a freshly built Arena's node list starts [W0, L0, W1, L1].
type NodeID = profile.NodeID

const (
	W0 NodeID = iota
	L0
	W1
	L1
	firstReal
)

func nodeString(n NodeID) string {
	switch n {
	case W0:
		return "W0"
	case L0:
		return "L0"
	case W1:
		return "W1"
	case L1:
		return "L1"
	default:
		return fmt.Sprintf("n%d", int(n))
	}
}

// NodeP0ID indexes into the arena's Player 0 node tables.
type NodeP0ID int

// InitP0 is always the first Player 0 node inserted: the query's initial
// position.
const InitP0 NodeP0ID = 0

// NodeP1ID indexes into the arena's Player 1 node tables. The two
// out-of-band values w1Sink/l1Sink stand in for a strategy edge that
// points directly at the W1/L1 sentinel without an intervening Player 1
// node, matching a direct edge recorded by GameStrategy.
type NodeP1ID int

const (
	w1Sink NodeP1ID = -1
	l1Sink NodeP1ID = -2
)

// NodeKindTag tags which of the six shapes a NodeID resolves to.
type NodeKindTag uint8

const (
	KindW0 NodeKindTag = iota
	KindL0
	KindW1
	KindL1
	KindP0
	KindP1
)

// NodeKind is what a NodeID resolves to: one of the four sentinels, or a
// Player 0 / Player 1 position.
type NodeKind struct {
	Tag NodeKindTag
	P0  NodeP0ID // valid when Tag == KindP0
	P1  NodeP1ID // valid when Tag == KindP1
}

// ExpectP0 panics unless the node is a Player 0 position.
func (k NodeKind) ExpectP0() NodeP0ID {
	if k.Tag != KindP0 {
		panic("arena: node is not a Player 0 position")
	}
	return k.P0
}

// ExpectP1 panics unless the node is a Player 1 position.
func (k NodeKind) ExpectP1() NodeP1ID {
	if k.Tag != KindP1 {
		panic("arena: node is not a Player 1 position")
	}
	return k.P1
}

// WinState is what the arena has proven about a node so far.
type WinState uint8

const (
	Unknown WinState = iota
	Win0
	Win1
)
