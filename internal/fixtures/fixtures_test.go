package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixsolve/fixsolve/formula"
	"github.com/fixsolve/fixsolve/local"
	"github.com/fixsolve/fixsolve/randgame"
)

func TestParseAutBuildsTransitions(t *testing.T) {
	src := "des (0,3,2);\n" +
		"(0,\"a\",1);\n" +
		"(1,\"b\",0);\n" +
		"(0,\"a\",0);\n"

	lts, first, err := ParseAut(src)
	require.NoError(t, err)
	require.Equal(t, 0, first)
	require.Len(t, lts.Transitions, 2)
	require.Len(t, lts.Transitions[0], 2)
	require.Len(t, lts.Transitions[1], 1)
}

func TestParseAutRejectsWrongTransitionCount(t *testing.T) {
	src := "des (0,2,2);\n(0,\"a\",1);\n"
	_, _, err := ParseAut(src)
	require.Error(t, err)
}

func TestParseAutRejectsOutOfRangeState(t *testing.T) {
	src := "des (0,1,1);\n(0,\"a\",5);\n"
	_, _, err := ParseAut(src)
	require.Error(t, err)
}

func TestParityGameRoundTripAgainstSol(t *testing.T) {
	// A one-node safety game: node 0 (player 0, priority 0) can stay put
	// forever, so it's won by Player 0.
	src := "parity 1;\n0 0 0 0;\n"
	sol := "paritysol 1;\n0 0;\n"

	nodes, err := ParseParityGame(src)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	rows, err := ParseParitySol(sol)
	require.NoError(t, err)

	eqs, nodeIDToVar := ParityGameToFix(nodes)
	sys := formula.NewEqSystem(eqs, formula.NewFunFormulas())

	for _, row := range rows {
		v := nodeIDToVar[row.ID]
		won := local.Solve(0, v, sys)
		require.Equal(t, row.Winner == formula.P0, won)
	}
}

func TestAlwaysEventuallyReadyHoldsWhereReadyAlwaysPossibleDoesNot(t *testing.T) {
	const readyLabel, tickLabel = 0, 1

	lts := &randgame.Lts{Transitions: [][]randgame.Transition{
		{{Label: readyLabel, Target: 0}, {Label: tickLabel, Target: 1}}, // R
		{{Label: tickLabel, Target: 0}},                                 // N
	}}

	aef := AlwaysEventuallyReady(lts, readyLabel)
	require.True(t, local.Solve(0, 1, aef))

	rap := ReadyAlwaysPossible(lts, readyLabel)
	require.False(t, local.Solve(0, 1, rap))
}
