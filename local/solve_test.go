package local

import (
	"errors"
	"testing"

	"github.com/fixsolve/fixsolve/arena"
	"github.com/fixsolve/fixsolve/formula"
	"github.com/fixsolve/fixsolve/moves"
	"github.com/stretchr/testify/require"
)

var (
	errFirst  = errors.New("first closer failed")
	errSecond = errors.New("second closer failed")
)

// tableSystem is a fixture oracle backed by a fixed table of formulas,
// one per (basis, variable) pair, used for hand-constructed scenarios
// that don't need a real equation-system composer.
type tableSystem struct {
	formulas map[moves.P0Pos]formula.Formula
	fixTypes []formula.FixType
}

func (s *tableSystem) Get(b formula.BasisID, v formula.VarID) formula.Formula {
	f, ok := s.formulas[moves.P0Pos{B: b, V: v}]
	if !ok {
		return formula.False()
	}
	return f
}
func (s *tableSystem) FixTypeOf(v formula.VarID) formula.FixType { return s.fixTypes[v] }
func (s *tableSystem) VarCount() int                             { return len(s.fixTypes) }

func TestSolveFalseFormulaIsImmediatelyLost(t *testing.T) {
	sys := &tableSystem{
		formulas: map[moves.P0Pos]formula.Formula{{B: 0, V: 0}: formula.False()},
		fixTypes: []formula.FixType{formula.Max},
	}
	require.False(t, Solve(0, 0, sys))
}

func TestSolveTrueFormulaIsImmediatelyWon(t *testing.T) {
	sys := &tableSystem{
		formulas: map[moves.P0Pos]formula.Formula{{B: 0, V: 0}: formula.True()},
		fixTypes: []formula.FixType{formula.Max},
	}
	require.True(t, Solve(0, 0, sys))
}

// TestSolveTwoStateSafetyLoop checks X = atom(0,0) & atom(1,0) at both
// basis elements 0 and 1, a greatest fixpoint whose only cycles run
// through X itself: X holds everywhere.
func TestSolveTwoStateSafetyLoop(t *testing.T) {
	sys := &tableSystem{
		formulas: map[moves.P0Pos]formula.Formula{
			{B: 0, V: 0}: formula.And(formula.Atom(0, 0), formula.Atom(1, 0)),
			{B: 1, V: 0}: formula.And(formula.Atom(0, 0), formula.Atom(1, 0)),
		},
		fixTypes: []formula.FixType{formula.Max},
	}
	require.True(t, Solve(0, 0, sys))
}

// TestSolveUnsatisfiableLeastFixpoint checks X = X under a least
// fixpoint, which no finite unfolding ever satisfies.
func TestSolveUnsatisfiableLeastFixpoint(t *testing.T) {
	sys := &tableSystem{
		formulas: map[moves.P0Pos]formula.Formula{{B: 0, V: 0}: formula.Atom(0, 0)},
		fixTypes: []formula.FixType{formula.Min},
	}
	require.False(t, Solve(0, 0, sys))
}

func TestSessionProfileReportsExploredNodes(t *testing.T) {
	sys := &tableSystem{
		formulas: map[moves.P0Pos]formula.Formula{{B: 0, V: 0}: formula.True()},
		fixTypes: []formula.FixType{formula.Max},
	}
	s := NewSession(moves.P0Pos{B: 0, V: 0}, sys)
	won := s.Solve()
	require.True(t, won)

	_, ok := s.Profile(-1)
	require.False(t, ok, "negative node ids are never valid")

	_, ok = s.Profile(s.Arena().P0NodeID(arena.InitP0))
	require.True(t, ok, "the initial node is always explored")

	require.NoError(t, s.Close())
}

// closerFunc adapts a plain func into an io.Closer, for registering
// fakes that either succeed or fail without opening a real resource.
type closerFunc func() error

func (c closerFunc) Close() error { return c() }

func TestSessionCloseAggregatesEveryCloserError(t *testing.T) {
	sys := &tableSystem{
		formulas: map[moves.P0Pos]formula.Formula{{B: 0, V: 0}: formula.True()},
		fixTypes: []formula.FixType{formula.Max},
	}
	s := NewSession(moves.P0Pos{B: 0, V: 0}, sys)
	require.True(t, s.Solve())

	closed := 0
	s.AddCloser(closerFunc(func() error { closed++; return nil }))
	s.AddCloser(closerFunc(func() error { return errFirst }))
	s.AddCloser(closerFunc(func() error { return errSecond }))

	err := s.Close()
	require.Error(t, err)
	require.Equal(t, 1, closed)
	require.Contains(t, err.Error(), errFirst.Error())
	require.Contains(t, err.Error(), errSecond.Error())
}
