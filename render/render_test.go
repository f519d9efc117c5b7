package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixsolve/fixsolve/arena"
	"github.com/fixsolve/fixsolve/formula"
	"github.com/fixsolve/fixsolve/moves"
	"github.com/fixsolve/fixsolve/valuation"
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

func TestDefaultConfigIsValid(t *testing.T) {
	require.True(t, DefaultConfig().IsValid())
}

func TestWriteDotProducesGraphvizText(t *testing.T) {
	a, strategy := solvedArena(t)

	var buf bytes.Buffer
	require.NoError(t, WriteDot(a, strategy, &buf))
	require.True(t, strings.Contains(buf.String(), "digraph"))
}

func TestWritePngProducesAPngStream(t *testing.T) {
	a, _ := solvedArena(t)

	var buf bytes.Buffer
	require.NoError(t, WritePng(DefaultConfig(), a, &buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

// solvedArena wires a one-node arena whose sole Player 0 position loops
// back to itself through a single Player 1 position (X = X), giving
// WriteDot/WritePng a small but non-trivial arena with both Player 0 and
// Player 1 nodes to render.
func solvedArena(t *testing.T) (*arena.Arena, *arena.GameStrategy) {
	t.Helper()
	sys := &tableSystem{
		formulas: map[moves.P0Pos]formula.Formula{{B: 0, V: 0}: formula.Atom(0, 0)},
		fixTypes: []formula.FixType{formula.Max},
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
	a.InsertP1ToP0Edge(p1, backP0)

	strategy := arena.NewGameStrategy()
	strategy.TryAdd(p0, p1)

	profiles, _ := valuation.Valuate(a, strategy)
	for valuation.Improve(a, strategy, profiles) {
		profiles, _ = valuation.Valuate(a, strategy)
	}
	return a, strategy
}
