package fixsolve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSolveAlwaysTrueAtomIsWon checks the trivial equation system
// max X = true, which Player 0 wins immediately regardless of basis.
func TestSolveAlwaysTrueAtomIsWon(t *testing.T) {
	eqs := EquationSystem{{FixType: Max, Expr: ExprTop()}}
	sys := NewEqSystem(eqs, NewFunFormulas())
	require.True(t, Solve(0, 0, sys))
}

// TestSolveSelfReferentialMaxIsWon checks max X = X, a pure safety game
// that loops forever: won by Player 0.
func TestSolveSelfReferentialMaxIsWon(t *testing.T) {
	eqs := EquationSystem{{FixType: Max, Expr: ExprVar(0)}}
	sys := NewEqSystem(eqs, NewFunFormulas())
	require.True(t, Solve(0, 0, sys))
}

// TestSolveSelfReferentialMinIsLost checks min X = X, the dual game:
// Player 0 can never make progress so loses.
func TestSolveSelfReferentialMinIsLost(t *testing.T) {
	eqs := EquationSystem{{FixType: Min, Expr: ExprVar(0)}}
	sys := NewEqSystem(eqs, NewFunFormulas())
	require.False(t, Solve(0, 0, sys))
}

func TestSessionProfileHook(t *testing.T) {
	eqs := EquationSystem{{FixType: Max, Expr: ExprTop()}}
	sys := NewEqSystem(eqs, NewFunFormulas())
	s := NewSession(0, 0, sys)
	require.True(t, s.Run())

	// Node 4 is the initial position, numbered right after the four
	// sentinels.
	_, ok := s.Profile(4)
	require.True(t, ok)

	require.NoError(t, s.Close())
}
