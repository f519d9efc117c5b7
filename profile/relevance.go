package profile

import "github.com/fixsolve/fixsolve/formula"

// Relevance ranks a node by the priority the arena assigned it, breaking
// ties by node identity so the ranking is a total order.
type Relevance struct {
	Priority int
	Node     NodeID
}

// Player reports which player the priority favours: even priorities
// favour Player 0, odd priorities favour Player 1.
func (r Relevance) Player() formula.Player {
	if r.Priority%2 == 0 {
		return formula.P0
	}
	return formula.P1
}

// Reward wraps r with the band appropriate to the player it favours, so
// Rewards from different nodes can be compared on one lexicographic
// scale.
func (r Relevance) Reward() Reward {
	if r.Player() == formula.P0 {
		return Reward{Kind: RewardP0, Rel: r}
	}
	return Reward{Kind: RewardP1, Rel: r}
}

// Compare implements the lexicographic order (priority, then node).
func (r Relevance) Compare(o Relevance) int {
	if r.Priority != o.Priority {
		return intCompare(r.Priority, o.Priority)
	}
	return intCompare(int(r.Node), int(o.Node))
}

func intCompare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// RewardKind tags the three bands a Reward falls into. Declaration order
// matters: a P1 reward always compares less than Neutral, which always
// compares less than a P0 reward.
type RewardKind uint8

const (
	RewardP1 RewardKind = iota
	RewardNeutral
	RewardP0
)

// Reward is a Relevance signed by the player it favours. Two Rewards
// compare by RewardKind first; within RewardP1 the Relevance order is
// reversed (a higher priority is worse for Player 0, hence "less"); within
// RewardP0 it is not.
type Reward struct {
	Kind RewardKind
	Rel  Relevance
}

// Neutral is the reward used to pad a play profile's prefix so sequences
// of different length still compare consistently; it sits strictly
// between every P1 and every P0 reward.
var Neutral = Reward{Kind: RewardNeutral}

// Compare implements the total order over Reward described above.
func (r Reward) Compare(o Reward) int {
	if r.Kind != o.Kind {
		return intCompare(int(r.Kind), int(o.Kind))
	}
	switch r.Kind {
	case RewardP1:
		return -r.Rel.Compare(o.Rel)
	case RewardP0:
		return r.Rel.Compare(o.Rel)
	default:
		return 0
	}
}

// GetRelevance exposes per-node relevance, the one piece of information
// the hierarchical valuation and strategy-improvement algorithms need
// from the arena.
type GetRelevance interface {
	RelevanceOf(n NodeID) Relevance
	RewardOf(n NodeID) Reward
}
