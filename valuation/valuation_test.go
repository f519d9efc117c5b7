package valuation

import (
	"testing"

	"github.com/fixsolve/fixsolve/arena"
	"github.com/fixsolve/fixsolve/formula"
	"github.com/fixsolve/fixsolve/moves"
	"github.com/stretchr/testify/require"
)

type tableSystem struct {
	formulas map[moves.P0Pos]formula.Formula
	fixTypes []formula.FixType
}

func (s *tableSystem) Get(b formula.BasisID, v formula.VarID) formula.Formula {
	return s.formulas[moves.P0Pos{B: b, V: v}]
}
func (s *tableSystem) FixTypeOf(v formula.VarID) formula.FixType { return s.fixTypes[v] }
func (s *tableSystem) VarCount() int                             { return len(s.fixTypes) }

// buildSelfLoop wires a one-node arena whose sole Player 0 position loops
// back to itself through a single Player 1 position: X = X.
func buildSelfLoop(t *testing.T, fixType formula.FixType) (*arena.Arena, *arena.GameStrategy) {
	sys := &tableSystem{
		formulas: map[moves.P0Pos]formula.Formula{{B: 0, V: 0}: formula.Atom(0, 0)},
		fixTypes: []formula.FixType{fixType},
	}
	a := arena.New(moves.P0Pos{B: 0, V: 0}, sys)

	p0 := arena.InitP0
	p1pos, ok := a.P0Moves(p0).Next()
	require.True(t, ok)
	p1, _ := a.InsertP1(p1pos)
	a.InsertP0ToP1Edge(p0, p1)

	p0next, ok := a.P1Moves(p1).Next()
	require.True(t, ok)
	backP0, _ := a.InsertP0(p0next)
	require.Equal(t, p0, backP0)
	a.InsertP1ToP0Edge(p1, backP0)

	strategy := arena.NewGameStrategy()
	strategy.TryAdd(p0, p1)
	return a, strategy
}

func TestValuateMaxFixpointSelfLoopIsWonByPlayer0(t *testing.T) {
	a, strategy := buildSelfLoop(t, formula.Max)
	profiles, _ := Valuate(a, strategy)

	nodeID := a.P0NodeID(arena.InitP0)
	require.Equal(t, formula.P0, profiles[nodeID].Winning(a))
}

func TestValuateMinFixpointSelfLoopIsWonByPlayer1(t *testing.T) {
	a, strategy := buildSelfLoop(t, formula.Min)
	profiles, _ := Valuate(a, strategy)

	nodeID := a.P0NodeID(arena.InitP0)
	require.Equal(t, formula.P1, profiles[nodeID].Winning(a))
}

func TestImproveReportsNoChangeOnceAtFixedPoint(t *testing.T) {
	a, strategy := buildSelfLoop(t, formula.Max)
	profiles, _ := Valuate(a, strategy)
	// a single self-loop has only one successor choice, so there is
	// nothing to improve regardless of the profile found.
	require.False(t, Improve(a, strategy, profiles))
}
