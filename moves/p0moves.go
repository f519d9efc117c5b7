package moves

import "github.com/fixsolve/fixsolve/formula"

// P0Moves enumerates the P1Pos choices a P0Pos offers, one combination at
// a time, in a fixed but otherwise arbitrary order. Call Simplify after
// learning which basis elements are winning or losing for Player 0 to
// prune moves that no longer matter; this can shrink, but never grows,
// what Next still has to offer.
type P0Moves struct {
	inner     formulaIter
	exhausted bool
}

// NewP0Moves builds the iterator for a single Formula (the result of one
// oracle lookup).
func NewP0Moves(f formula.Formula) *P0Moves {
	return &P0Moves{
		inner:     newFormulaIter(f),
		exhausted: isFormulaFalse(f),
	}
}

// Simplify folds in an assumption about every basis element mentioned by
// the underlying formula, pruning the positions that are now decided. If
// the assumptions make the whole formula winning, the iterator collapses
// to a single empty move; if they make it losing (or the cursor wrapped
// all the way around while being reset), it is exhausted. Otherwise the
// remaining moves are pruned in place.
func (m *P0Moves) Simplify(assume func(P0Pos) Assumption) {
	a, st := m.inner.simplify(false, assume)
	switch {
	case a == AssumptionWin:
		m.inner = formulaIter{kind: iterAnd}
	case a == AssumptionLose || st == statusReset:
		m.exhausted = true
	}
}

// IsExhausted reports whether Next has nothing left to offer.
func (m *P0Moves) IsExhausted() bool {
	return m.exhausted
}

// Next returns the next P1Pos combination, or false once exhausted.
func (m *P0Moves) Next() (P1Pos, bool) {
	if m.exhausted {
		return P1Pos{}, false
	}
	cur := m.inner.current()
	if !m.inner.advance() {
		m.exhausted = true
	}
	return P1Pos{Moves: cur}, true
}
