// This package drives the solver against one of the three fixture input
// shapes the repository understands: a pair of AUT-format LTS files
// checked for bisimilarity, a parity-game file checked against its .sol
// companion, or one of the two hard-coded mu-calculus-shaped liveness
// properties evaluated over an AUT-format LTS.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"

	"github.com/fixsolve/fixsolve/formula"
	"github.com/fixsolve/fixsolve/internal/fixtures"
	"github.com/fixsolve/fixsolve/local"
	"github.com/fixsolve/fixsolve/randgame"
)

var (
	mode = flag.String("mode", "bisim", "one of: bisim, parity, mucalc")

	autPath  = flag.String("aut", "", "AUT-format LTS file (bisim, mucalc)")
	aut2Path = flag.String("aut2", "", "second AUT-format LTS file (bisim only, defaults to -aut)")
	state1   = flag.Int("state1", -1, "first LTS state to compare (bisim only, defaults to its first state)")
	state2   = flag.Int("state2", -1, "second LTS state to compare (bisim only, defaults to its first state)")

	parityPath = flag.String("parity", "", "parity-game text file (parity only)")
	solPath    = flag.String("sol", "", "parity-game .sol file (parity only)")

	property   = flag.String("property", "always-eventually-ready", "one of: always-eventually-ready, ready-always-possible (mucalc only)")
	readyLabel = flag.Int("ready_label", 0, "transition label treated as the 'ready' action (mucalc only)")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	switch *mode {
	case "bisim":
		runBisim()
	case "parity":
		runParity()
	case "mucalc":
		runMucalc()
	default:
		log.Fatalf("unknown -mode %q", *mode)
	}
}

func runBisim() {
	if *autPath == "" {
		log.Fatal("bisim mode requires -aut")
	}
	lhsPath := *autPath
	rhsPath := *aut2Path
	if rhsPath == "" {
		rhsPath = lhsPath
	}

	lhs, lhsFirst := mustParseAut(lhsPath)
	rhs, rhsFirst := mustParseAut(rhsPath)

	s1, s2 := *state1, *state2
	if s1 < 0 {
		s1 = lhsFirst
	}
	if s2 < 0 {
		s2 = rhsFirst
	}

	q := mustBisimilarity(lhs, rhs)
	bisimilar := local.Solve(q.BasisFor(s1, s2), 0, q.Sys)
	fmt.Printf("bisimilar(%d, %d) = %t\n", s1, s2, bisimilar)
}

func runParity() {
	if *parityPath == "" || *solPath == "" {
		log.Fatal("parity mode requires -parity and -sol")
	}

	src := mustReadFile(*parityPath)
	nodes, err := fixtures.ParseParityGame(src)
	if err != nil {
		log.Fatalf("parsing parity game: %s", err)
	}
	sol, err := fixtures.ParseParitySol(mustReadFile(*solPath))
	if err != nil {
		log.Fatalf("parsing parity sol: %s", err)
	}

	eqs, nodeIDToVar := fixtures.ParityGameToFix(nodes)
	sys := formula.NewEqSystem(eqs, formula.NewFunFormulas())

	mismatches := 0
	for _, row := range sol {
		v, ok := nodeIDToVar[row.ID]
		if !ok {
			log.Fatalf("sol references unknown node %d", row.ID)
		}
		won := local.Solve(0, v, sys)
		expected := row.Winner == formula.P0
		status := "ok"
		if won != expected {
			status = "MISMATCH"
			mismatches++
		}
		fmt.Printf("node %d: solved=%t expected=%t [%s]\n", row.ID, won, expected, status)
	}
	if mismatches > 0 {
		log.Fatalf("%d node(s) disagreed with the .sol file", mismatches)
	}
}

func runMucalc() {
	if *autPath == "" {
		log.Fatal("mucalc mode requires -aut")
	}
	lts, first := mustParseAut(*autPath)

	var sys interface {
		Get(b formula.BasisID, v formula.VarID) formula.Formula
		FixTypeOf(v formula.VarID) formula.FixType
		VarCount() int
	}
	switch *property {
	case "always-eventually-ready":
		sys = fixtures.AlwaysEventuallyReady(lts, *readyLabel)
	case "ready-always-possible":
		sys = fixtures.ReadyAlwaysPossible(lts, *readyLabel)
	default:
		log.Fatalf("unknown -property %q", *property)
	}

	won := local.Solve(formula.BasisID(first), 1, sys)
	fmt.Printf("%s(state %d) = %t\n", *property, first, won)
}

func mustReadFile(path string) string {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		log.Fatalf("reading %s: %s", path, err)
	}
	return string(b)
}

func mustParseAut(path string) (*randgame.Lts, int) {
	lts, first, err := fixtures.ParseAut(mustReadFile(path))
	if err != nil {
		log.Fatalf("parsing %s: %s", path, err)
	}
	return lts, first
}

func mustBisimilarity(lhs, rhs *randgame.Lts) *randgame.BisimilarityQuery {
	return randgame.Bisimilarity(lhs, rhs)
}
