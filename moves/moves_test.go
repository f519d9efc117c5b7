package moves

import (
	"testing"

	"github.com/fixsolve/fixsolve/formula"
	"github.com/stretchr/testify/require"
)

// atom builds a test formula atom with basis == var, mirroring the test
// helper macro used against this iterator upstream.
func atom(i int) formula.Formula {
	return formula.Atom(formula.BasisID(i), formula.VarID(i))
}

func drainP1(moves *P0Moves) []P1Pos {
	var out []P1Pos
	for {
		p, ok := moves.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

func basesOf(p P1Pos) []int {
	out := make([]int, len(p.Moves))
	for i, m := range p.Moves {
		out[i] = int(m.B)
	}
	return out
}

func TestP0MovesEnumeratesAllCombinations(t *testing.T) {
	// 0 | ((1|2) & (3|4|5) & (6|7))
	f := formula.Or(
		atom(0),
		formula.And(
			formula.Or(atom(1), atom(2)),
			formula.Or(atom(3), atom(4), atom(5)),
			formula.Or(atom(6), atom(7)),
		),
	)
	moves := NewP0Moves(f)
	got := drainP1(moves)
	require.True(t, moves.IsExhausted())

	// one move for the bare atom, 2*3*2 = 12 for the conjunction
	require.Len(t, got, 13)
}

func TestP0MovesSimplifyWinDropsWinningAtom(t *testing.T) {
	// (1|2) & (3|4)
	f := formula.And(formula.Or(atom(1), atom(2)), formula.Or(atom(3), atom(4)))
	moves := NewP0Moves(f)
	_, ok := moves.Next()
	require.True(t, ok)

	moves.Simplify(func(p P0Pos) Assumption {
		if p.B == 1 {
			return AssumptionWin
		}
		return AssumptionUnknown
	})

	rest := drainP1(moves)
	for _, p := range rest {
		require.NotContains(t, basesOf(p), 1)
	}
}

func TestP0MovesSimplifyLoseExhaustsOnWrap(t *testing.T) {
	f := formula.And(formula.Or(atom(1), atom(2)), formula.Or(atom(3), atom(4)))
	moves := NewP0Moves(f)
	_, ok := moves.Next()
	require.True(t, ok)

	moves.Simplify(func(p P0Pos) Assumption {
		if p.B == 3 {
			return AssumptionLose
		}
		return AssumptionUnknown
	})

	for {
		p, ok := moves.Next()
		if !ok {
			break
		}
		require.NotContains(t, basesOf(p), 3)
	}
}

func TestP0MovesFalseFormulaIsExhausted(t *testing.T) {
	moves := NewP0Moves(formula.False())
	require.True(t, moves.IsExhausted())
	_, ok := moves.Next()
	require.False(t, ok)
}

func TestP0MovesTrueFormulaYieldsOneEmptyMove(t *testing.T) {
	moves := NewP0Moves(formula.True())
	p, ok := moves.Next()
	require.True(t, ok)
	require.Empty(t, p.Moves)
	_, ok = moves.Next()
	require.False(t, ok)
}

func TestP1PosCanonicalizesOrder(t *testing.T) {
	a := NewP1Pos([]P0Pos{{B: 2, V: 0}, {B: 1, V: 0}, {B: 1, V: 0}})
	b := NewP1Pos([]P0Pos{{B: 1, V: 0}, {B: 2, V: 0}})
	require.Equal(t, a.Key(), b.Key())
}

func TestP1MovesIteratesMembers(t *testing.T) {
	pos := NewP1Pos([]P0Pos{{B: 3, V: 0}, {B: 1, V: 0}})
	it := pos.Moves()
	first, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, formula.BasisID(1), first.B)
	require.False(t, it.IsExhausted())
	_, ok = it.Next()
	require.True(t, ok)
	require.True(t, it.IsExhausted())
}
