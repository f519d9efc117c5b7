package render

import (
	"fmt"
	"io"

	"github.com/awalterschulze/gographviz"

	"github.com/fixsolve/fixsolve/arena"
	"github.com/fixsolve/fixsolve/formula"
)

// WriteDot walks a's nodes and the strategy's committed edges into a
// gographviz.Graph and writes its DOT text to w. Nodes are coloured by
// what the arena has proven about them (green: Player 0 wins, red:
// Player 1 wins, grey: undecided) and shaped by their kind (diamond:
// sentinel, box: Player 0, ellipse: Player 1); the edge the current
// strategy commits to is drawn bold.
func WriteDot(a *arena.Arena, strategy *arena.GameStrategy, w io.Writer) error {
	g := gographviz.NewGraph()
	if err := g.SetName("arena"); err != nil {
		return err
	}
	if err := g.SetDir(true); err != nil {
		return err
	}

	for n := arena.NodeID(0); int(n) < a.NodeCount(); n++ {
		if err := g.AddNode("arena", nodeName(n), nodeAttrs(a, n)); err != nil {
			return err
		}
	}

	strategyEdges := make(map[[2]arena.NodeID]bool)
	for _, e := range strategy.Iter(a) {
		strategyEdges[e] = true
	}

	for n := arena.NodeID(0); int(n) < a.NodeCount(); n++ {
		for _, succ := range a.SuccessorsOf(n) {
			attrs := map[string]string{}
			if strategyEdges[[2]arena.NodeID{n, succ}] {
				attrs["style"] = "bold"
			}
			if err := g.AddEdge(nodeName(n), nodeName(succ), true, attrs); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, g.String())
	return err
}

func nodeName(n arena.NodeID) string {
	return fmt.Sprintf("n%d", int(n))
}

func nodeAttrs(a *arena.Arena, n arena.NodeID) map[string]string {
	shape := "ellipse"
	if a.PlayerOf(n) == formula.P0 {
		shape = "box"
	}

	color := "grey"
	switch winStateOf(a, n) {
	case arena.Win0:
		color = "darkgreen"
	case arena.Win1:
		color = "firebrick"
	}

	switch a.Resolve(n).Tag {
	case arena.KindW0, arena.KindL0, arena.KindW1, arena.KindL1:
		shape = "diamond"
	}

	return map[string]string{
		"label": fmt.Sprintf(`"%s"`, nodeLabel(a, n)),
		"shape": shape,
		"style": "filled",
		"color": color,
	}
}

func nodeLabel(a *arena.Arena, n arena.NodeID) string {
	k := a.Resolve(n)
	switch k.Tag {
	case arena.KindW0:
		return "W0"
	case arena.KindL0:
		return "L0"
	case arena.KindW1:
		return "W1"
	case arena.KindL1:
		return "L1"
	case arena.KindP0:
		pos := a.P0PosOf(k.P0)
		return fmt.Sprintf("n%d: b%d v%d", int(n), int(pos.B), int(pos.V))
	default:
		return fmt.Sprintf("n%d", int(n))
	}
}

func winStateOf(a *arena.Arena, n arena.NodeID) arena.WinState {
	switch k := a.Resolve(n); k.Tag {
	case arena.KindW0, arena.KindL1:
		return arena.Win0
	case arena.KindW1, arena.KindL0:
		return arena.Win1
	case arena.KindP0:
		return a.P0Win(k.P0)
	default:
		return a.P1Win(k.P1)
	}
}
