// This package solves a fixture (an AUT-format LTS checked for
// bisimilarity, or a parity-game file) and writes the explored arena out
// as a Graphviz DOT file, a PNG, or both.
package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"

	"github.com/fixsolve/fixsolve/formula"
	"github.com/fixsolve/fixsolve/internal/fixtures"
	"github.com/fixsolve/fixsolve/local"
	"github.com/fixsolve/fixsolve/moves"
	"github.com/fixsolve/fixsolve/randgame"
	"github.com/fixsolve/fixsolve/render"
)

var (
	mode = flag.String("mode", "bisim", "one of: bisim, parity")

	autPath  = flag.String("aut", "", "AUT-format LTS file (bisim only)")
	aut2Path = flag.String("aut2", "", "second AUT-format LTS file (bisim only, defaults to -aut)")
	state1   = flag.Int("state1", -1, "first LTS state to compare (bisim only, defaults to its first state)")
	state2   = flag.Int("state2", -1, "second LTS state to compare (bisim only, defaults to its first state)")

	parityPath = flag.String("parity", "", "parity-game text file (parity only)")
	nodeID     = flag.Int("node", 0, "node id whose winner to solve for (parity only)")

	dotPath = flag.String("dot", "", "path to write Graphviz DOT output to (skipped if empty)")
	pngPath = flag.String("png", "", "path to write PNG output to (skipped if empty)")

	width       = flag.Int("width", render.DefaultConfig().Width, "PNG width in pixels")
	height      = flag.Int("height", render.DefaultConfig().Height, "PNG height in pixels")
	ringSpacing = flag.Float64("ring_spacing", render.DefaultConfig().RingSpacing, "PNG spacing between priority rings")
	fontSize    = flag.Float64("font_size", render.DefaultConfig().FontSize, "PNG label font size")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	if *dotPath == "" && *pngPath == "" {
		log.Fatal("nothing to do: pass -dot and/or -png")
	}

	var session *local.Session
	switch *mode {
	case "bisim":
		session = solveBisim()
	case "parity":
		session = solveParity()
	default:
		log.Fatalf("unknown -mode %q", *mode)
	}
	session.Solve()

	if *dotPath != "" {
		writeTo(session, *dotPath, func(f *os.File) error {
			return render.WriteDot(session.Arena(), session.Strategy(), f)
		})
	}
	if *pngPath != "" {
		cfg := render.Config{Width: *width, Height: *height, RingSpacing: *ringSpacing, FontSize: *fontSize}
		if !cfg.IsValid() {
			log.Fatalf("invalid render configuration: %+v", cfg)
		}
		writeTo(session, *pngPath, func(f *os.File) error {
			return render.WritePng(cfg, session.Arena(), f)
		})
	}

	if err := session.Close(); err != nil {
		log.Fatalf("closing output files: %s", err)
	}
}

func solveBisim() *local.Session {
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

	q := randgame.Bisimilarity(lhs, rhs)
	return local.NewSession(moves.P0Pos{B: q.BasisFor(s1, s2), V: 0}, q.Sys)
}

func solveParity() *local.Session {
	if *parityPath == "" {
		log.Fatal("parity mode requires -parity")
	}

	nodes, err := fixtures.ParseParityGame(mustReadFile(*parityPath))
	if err != nil {
		log.Fatalf("parsing parity game: %s", err)
	}

	eqs, nodeIDToVar := fixtures.ParityGameToFix(nodes)
	v, ok := nodeIDToVar[*nodeID]
	if !ok {
		log.Fatalf("no such node %d", *nodeID)
	}
	sys := formula.NewEqSystem(eqs, formula.NewFunFormulas())
	return local.NewSession(moves.P0Pos{B: 0, V: v}, sys)
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

// writeTo creates the file at path, runs write against it, and registers
// it with session to be closed once every output has been written.
func writeTo(session *local.Session, path string, write func(f *os.File) error) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("creating %s: %s", path, err)
	}
	session.AddCloser(f)
	if err := write(f); err != nil {
		log.Fatalf("writing %s: %s", path, err)
	}
}
