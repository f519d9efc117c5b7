// This package generates a random labelled transition system and
// prints it in AUT format, for feeding into cmd/solve or saving as a
// fixture.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/fixsolve/fixsolve/randgame"
)

var (
	states     = flag.Int("states", randgame.DefaultConfig().States, "number of states")
	labels     = flag.Int("labels", randgame.DefaultConfig().Labels, "number of distinct transition labels")
	transitions = flag.Int("transitions", randgame.DefaultConfig().TransitionsPerState, "outgoing transitions per state")
	alpha      = flag.Float64("alpha", randgame.DefaultConfig().DirichletAlpha, "Dirichlet concentration parameter for branching weights")
	seed       = flag.Uint64("seed", 1, "random seed")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	cfg := randgame.Config{
		States:              *states,
		Labels:              *labels,
		TransitionsPerState: *transitions,
		DirichletAlpha:      *alpha,
		Seed:                *seed,
	}
	if !cfg.IsValid() {
		log.Fatalf("invalid configuration: %+v", cfg)
	}

	lts := randgame.Generate(cfg)

	total := 0
	for _, edges := range lts.Transitions {
		total += len(edges)
	}

	fmt.Printf("des (0,%d,%d);\n", total, len(lts.Transitions))
	for src, edges := range lts.Transitions {
		for _, e := range edges {
			fmt.Printf("(%d,\"%d\",%d);\n", src, e.Label, e.Target)
		}
	}
}
