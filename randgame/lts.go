package randgame

import (
	"sort"

	"github.com/chewxy/math32"
	distrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
	"gorgonia.org/tensor"
	"gorgonia.org/vecf32"
)

// Transition is one outgoing (label, target) edge of a state.
type Transition struct {
	Label  int
	Target int
}

// Lts is a labelled transition system: Transitions[s] lists s's outgoing
// edges. Generate emits them deduplicated and sorted by (Label, Target);
// other producers (the AUT reader, say) may keep their input order.
type Lts struct {
	Transitions [][]Transition
}

// Generate builds a random Lts of the shape cfg describes. Per-state
// branching weights are drawn from a Dirichlet distribution over the
// full (label, target) candidate universe, the same root-exploration
// noise construction the search tree uses for move priors, then the
// TransitionsPerState heaviest candidates are kept.
func Generate(cfg Config) *Lts {
	candidateCount := cfg.Labels * cfg.States

	alpha := make([]float64, candidateCount)
	for i := range alpha {
		alpha[i] = cfg.DirichletAlpha
	}
	dirichletDist := distmv.NewDirichlet(alpha, distrand.NewSource(cfg.Seed))

	chosen := tensor.New(tensor.WithShape(cfg.States, candidateCount), tensor.Of(tensor.Bool))

	lts := &Lts{Transitions: make([][]Transition, cfg.States)}

	for s := 0; s < cfg.States; s++ {
		weights := normalize(dirichletDist.Rand(nil))

		order := make([]int, candidateCount)
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool { return weights[order[i]] > weights[order[j]] })

		keep := cfg.TransitionsPerState
		if keep > candidateCount {
			keep = candidateCount
		}

		edges := make([]Transition, 0, keep)
		for _, candidate := range order[:keep] {
			if err := chosen.SetAt(true, s, candidate); err != nil {
				panic(err)
			}
			edges = append(edges, Transition{
				Label:  candidate / cfg.States,
				Target: candidate % cfg.States,
			})
		}
		sort.Slice(edges, func(i, j int) bool {
			if edges[i].Label != edges[j].Label {
				return edges[i].Label < edges[j].Label
			}
			return edges[i].Target < edges[j].Target
		})
		lts.Transitions[s] = edges
	}

	return lts
}

// normalize converts a float64 Dirichlet sample into a float32 vector
// that still sums to 1, the precision the rest of this repository does
// its arithmetic in (mirroring the search tree's float32 move priors).
func normalize(sample []float64) []float32 {
	out := make([]float32, len(sample))
	for i, v := range sample {
		out[i] = float32(v)
	}

	sum := vecf32.Sum(out)
	if sum <= math32.SmallestNonzeroFloat32 {
		return out
	}
	vecf32.Scale(out, 1/sum)
	return out
}
