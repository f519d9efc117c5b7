package moves

import (
	"sort"

	"github.com/fixsolve/fixsolve/formula"
)

// P0Pos is a Player 0 position: a basis element paired with the equation
// variable being evaluated there.
type P0Pos struct {
	B formula.BasisID
	V formula.VarID
}

// Oracle supplies the propositional formula a variable evaluates to at a
// given basis element. formula.EqSystem and the fixture oracles both
// satisfy it.
type Oracle interface {
	Get(b formula.BasisID, v formula.VarID) formula.Formula
}

// Moves builds the move iterator for this position from the oracle's
// formula.
func (p P0Pos) Moves(o Oracle) *P0Moves {
	return NewP0Moves(o.Get(p.B, p.V))
}

// P1Pos is a Player 1 position: a sorted, deduplicated set of the P0Pos
// choices Player 0 committed to in one move. Two P1Pos built from the
// same set of positions, regardless of original order, compare equal.
type P1Pos struct {
	Moves []P0Pos
}

// NewP1Pos sorts and deduplicates moves into canonical form.
func NewP1Pos(moves []P0Pos) P1Pos {
	out := append([]P0Pos(nil), moves...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].V != out[j].V {
			return out[i].V < out[j].V
		}
		return out[i].B < out[j].B
	})
	out = dedupP0Pos(out)
	return P1Pos{Moves: out}
}

func dedupP0Pos(sorted []P0Pos) []P0Pos {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, p := range sorted[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// Key returns a canonical, comparable representation of the position,
// suitable for interning in a map.
func (p P1Pos) Key() string {
	buf := make([]byte, 0, len(p.Moves)*8)
	for _, m := range p.Moves {
		buf = appendInt(buf, int(m.B))
		buf = append(buf, ',')
		buf = appendInt(buf, int(m.V))
		buf = append(buf, ';')
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	if neg {
		buf = append(buf, '-')
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// Moves returns an iterator over the P0Pos choices in this position.
func (p P1Pos) Moves() *P1Moves {
	return &P1Moves{moves: p.Moves}
}

// P1Moves iterates the P0Pos members of a P1Pos in order.
type P1Moves struct {
	moves []P0Pos
	index int
}

// Next returns the next member, or false once exhausted.
func (m *P1Moves) Next() (P0Pos, bool) {
	if m.index >= len(m.moves) {
		return P0Pos{}, false
	}
	p := m.moves[m.index]
	m.index++
	return p, true
}

// IsExhausted reports whether every member has been returned.
func (m *P1Moves) IsExhausted() bool {
	return m.index >= len(m.moves)
}
