package arena

import (
	"testing"

	"github.com/fixsolve/fixsolve/formula"
	"github.com/fixsolve/fixsolve/moves"
	"github.com/stretchr/testify/require"
)

// tableSystem is a minimal fixture System: a fixed formula per (basis,
// var) and a fixed fixpoint type per var.
type tableSystem struct {
	formulas map[moves.P0Pos]formula.Formula
	fixTypes []formula.FixType
}

func (s *tableSystem) Get(b formula.BasisID, v formula.VarID) formula.Formula {
	return s.formulas[moves.P0Pos{B: b, V: v}]
}

func (s *tableSystem) FixTypeOf(v formula.VarID) formula.FixType { return s.fixTypes[v] }
func (s *tableSystem) VarCount() int                             { return len(s.fixTypes) }

func TestNewArenaHasSentinelsAndInit(t *testing.T) {
	sys := &tableSystem{
		formulas: map[moves.P0Pos]formula.Formula{{B: 0, V: 0}: formula.True()},
		fixTypes: []formula.FixType{formula.Max},
	}
	a := New(moves.P0Pos{B: 0, V: 0}, sys)

	require.Equal(t, 5, a.NodeCount())
	require.Equal(t, KindW0, a.Resolve(W0).Tag)
	require.Equal(t, KindL0, a.Resolve(L0).Tag)
	require.Equal(t, KindW1, a.Resolve(W1).Tag)
	require.Equal(t, KindL1, a.Resolve(L1).Tag)
	require.Equal(t, 1, a.P0Count())
	require.Equal(t, formula.P0, a.PlayerOf(a.P0NodeID(InitP0)))
}

func TestInsertP0Dedups(t *testing.T) {
	sys := &tableSystem{
		formulas: map[moves.P0Pos]formula.Formula{{B: 0, V: 0}: formula.True()},
		fixTypes: []formula.FixType{formula.Max},
	}
	a := New(moves.P0Pos{B: 0, V: 0}, sys)
	id, isNew := a.InsertP0(moves.P0Pos{B: 0, V: 0})
	require.False(t, isNew)
	require.Equal(t, InitP0, id)
}

func TestSentinelSuccessorsAndPredecessors(t *testing.T) {
	sys := &tableSystem{
		formulas: map[moves.P0Pos]formula.Formula{{B: 0, V: 0}: formula.True()},
		fixTypes: []formula.FixType{formula.Max},
	}
	a := New(moves.P0Pos{B: 0, V: 0}, sys)

	require.Equal(t, []NodeID{L1}, a.SuccessorsOf(W0))
	require.Equal(t, []NodeID{W1}, a.SuccessorsOf(L0))
	require.Equal(t, []NodeID{L0}, a.SuccessorsOf(W1))
	require.Equal(t, []NodeID{W0}, a.SuccessorsOf(L1))

	require.Equal(t, []NodeID{L1}, a.PredecessorsOf(W0))
	require.Equal(t, []NodeID{W1}, a.PredecessorsOf(L0))
	require.Equal(t, []NodeID{L0}, a.PredecessorsOf(W1))
	require.Equal(t, []NodeID{W0}, a.PredecessorsOf(L1))
}

func TestPlayer0NodeWithNoSuccessorsLosesToW1(t *testing.T) {
	sys := &tableSystem{
		formulas: map[moves.P0Pos]formula.Formula{{B: 0, V: 0}: formula.False()},
		fixTypes: []formula.FixType{formula.Max},
	}
	a := New(moves.P0Pos{B: 0, V: 0}, sys)
	require.Equal(t, []NodeID{W1}, a.SuccessorsOf(a.P0NodeID(InitP0)))
}

func TestInsertEdgesWireSuccessorsAndPredecessors(t *testing.T) {
	sys := &tableSystem{
		formulas: map[moves.P0Pos]formula.Formula{
			{B: 0, V: 0}: formula.Atom(1, 1),
			{B: 1, V: 1}: formula.True(),
		},
		fixTypes: []formula.FixType{formula.Max, formula.Max},
	}
	a := New(moves.P0Pos{B: 0, V: 0}, sys)
	p1, _ := a.InsertP1(moves.NewP1Pos([]moves.P0Pos{{B: 1, V: 1}}))
	a.InsertP0ToP1Edge(InitP0, p1)

	p0Next, _ := a.InsertP0(moves.P0Pos{B: 1, V: 1})
	a.InsertP1ToP0Edge(p1, p0Next)

	succs := a.SuccessorsOf(a.P0NodeID(InitP0))
	require.Equal(t, []NodeID{a.P1NodeID(p1)}, succs)

	preds := a.PredecessorsOf(a.P1NodeID(p1))
	require.Equal(t, []NodeID{a.P0NodeID(InitP0)}, preds)

	succs2 := a.SuccessorsOf(a.P1NodeID(p1))
	require.Equal(t, []NodeID{a.P0NodeID(p0Next)}, succs2)
}

func TestRelevanceOfSentinelsAndPlayer0(t *testing.T) {
	sys := &tableSystem{
		formulas: map[moves.P0Pos]formula.Formula{{B: 0, V: 0}: formula.True(), {B: 0, V: 1}: formula.True()},
		fixTypes: []formula.FixType{formula.Max, formula.Min},
	}
	a := New(moves.P0Pos{B: 0, V: 0}, sys)

	require.Equal(t, 2*2+2, a.RelevanceOf(W0).Priority)
	require.Equal(t, 2*2+1, a.RelevanceOf(L0).Priority)
	require.Equal(t, 2*2+1, a.RelevanceOf(W1).Priority)
	require.Equal(t, 2*2+2, a.RelevanceOf(L1).Priority)

	// var 0 is Max: priority 2*0+2 = 2
	require.Equal(t, 2, a.RelevanceOf(a.P0NodeID(InitP0)).Priority)

	p0min, _ := a.InsertP0(moves.P0Pos{B: 0, V: 1})
	// var 1 is Min: priority 2*1+1 = 3
	require.Equal(t, 3, a.RelevanceOf(a.P0NodeID(p0min)).Priority)
}

func TestSetP0LosingRewiresToW1Sentinel(t *testing.T) {
	sys := &tableSystem{
		formulas: map[moves.P0Pos]formula.Formula{
			{B: 0, V: 0}: formula.Atom(1, 1),
			{B: 1, V: 1}: formula.True(),
		},
		fixTypes: []formula.FixType{formula.Max, formula.Max},
	}
	a := New(moves.P0Pos{B: 0, V: 0}, sys)
	p1, _ := a.InsertP1(moves.NewP1Pos([]moves.P0Pos{{B: 1, V: 1}}))
	a.InsertP0ToP1Edge(InitP0, p1)

	strategy := NewGameStrategy()
	strategy.TryAdd(InitP0, NodeP1ID(p1))
	final := make([]NodeID, a.NodeCount())

	a.SetP0Losing(InitP0, strategy, final)

	require.Equal(t, Win1, a.P0Win(InitP0))
	require.Equal(t, W1, final[int(a.P0NodeID(InitP0))])
	require.Equal(t, w1Sink, strategy.Get(InitP0))
	require.Equal(t, 0, a.p0.succs[int(InitP0)].Len())
}
