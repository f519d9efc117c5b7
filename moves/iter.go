package moves

import (
	"sort"

	"github.com/fixsolve/fixsolve/formula"
)

// Assumption is what the caller currently believes about a basis element:
// that Player 0 already wins there, already loses there, or that it is
// still undecided.
type Assumption uint8

const (
	AssumptionUnknown Assumption = iota
	AssumptionWin
	AssumptionLose
)

// status reports how far a simplify pass moved the cursor: not at all
// (Still), forward within the current branch (Step), or past the end,
// wrapping back to the start (Reset).
type status uint8

const (
	statusStill status = iota
	statusStep
	statusReset
)

type iterKind uint8

const (
	iterAtom iterKind = iota
	iterAnd
	iterOr
)

// formulaIter is a cursor into a Formula: a mixed-radix counter whose
// digits are Or branches and whose "always advance together" groups are
// And children. Atom is the base case with a single, fixed position.
type formulaIter struct {
	kind     iterKind
	atom     P0Pos
	children []formulaIter // And/Or
	pos      int           // Or only: index of the active child
}

func newFormulaIter(f formula.Formula) formulaIter {
	switch f.Kind {
	case formula.KindAtom:
		return formulaIter{kind: iterAtom, atom: P0Pos{B: f.Basis, V: f.Var}}
	case formula.KindAnd:
		children := make([]formulaIter, len(f.Children))
		for i, c := range f.Children {
			children[i] = newFormulaIter(c)
		}
		return formulaIter{kind: iterAnd, children: children}
	case formula.KindOr:
		children := make([]formulaIter, len(f.Children))
		for i, c := range f.Children {
			children[i] = newFormulaIter(c)
		}
		return formulaIter{kind: iterOr, children: children, pos: 0}
	}
	panic("moves: unknown formula kind")
}

// isFormulaFalse reports whether f composes to the empty disjunction, the one
// shape with zero moves.
func isFormulaFalse(f formula.Formula) bool {
	return f.Kind == formula.KindOr && len(f.Children) == 0
}

func (it *formulaIter) current() []P0Pos {
	var out []P0Pos
	var walk func(*formulaIter)
	walk = func(n *formulaIter) {
		switch n.kind {
		case iterAtom:
			out = append(out, n.atom)
		case iterAnd:
			for i := range n.children {
				walk(&n.children[i])
			}
		case iterOr:
			walk(&n.children[n.pos])
		}
	}
	walk(it)
	sort.Slice(out, func(i, j int) bool {
		if out[i].V != out[j].V {
			return out[i].V < out[j].V
		}
		return out[i].B < out[j].B
	})
	return dedupP0Pos(out)
}

// advance moves the cursor to the next combination, wrapping to the
// start and returning false if it was already at the last combination.
func (it *formulaIter) advance() bool {
	switch it.kind {
	case iterAtom:
		return false
	case iterAnd:
		for i := len(it.children) - 1; i >= 0; i-- {
			if it.children[i].advance() {
				return true
			}
		}
		return false
	case iterOr:
		switch {
		case it.children[it.pos].advance():
			return true
		case it.pos+1 < len(it.children):
			it.pos++
			return true
		default:
			it.pos = 0
			return false
		}
	}
	panic("moves: unknown iterator kind")
}

type simplifyAction uint8

const (
	simplifyKeep simplifyAction = iota
	simplifyRemove
	simplifyClear
)

// simplifyRetain compacts s in place, calling f once per original element
// (skipping none) until f returns simplifyClear, at which point f is not
// called again and the whole slice is emptied. Returns whether a Clear
// was hit.
func simplifyRetain(s *[]formulaIter, f func(oldI, newI int, it *formulaIter) simplifyAction) bool {
	items := *s
	cleared := false
	newI := 0
	for oldI := 0; oldI < len(items); oldI++ {
		if cleared {
			break
		}
		keep := false
		switch f(oldI, newI, &items[oldI]) {
		case simplifyKeep:
			keep = true
		case simplifyRemove:
			keep = false
		case simplifyClear:
			cleared = true
			keep = false
		}
		if keep {
			if newI != oldI {
				items[newI] = items[oldI]
			}
			newI++
		}
	}
	if cleared {
		*s = items[:0]
	} else {
		*s = items[:newI]
	}
	return cleared
}

// simplify folds an externally supplied assumption about each basis
// element into the cursor, pruning branches that are now known losing and
// collapsing branches that are now known winning. reset forces every
// child back to its first combination, needed when an ancestor Or already
// stepped past the position this cursor was at.
func (it *formulaIter) simplify(reset bool, assume func(P0Pos) Assumption) (Assumption, status) {
	switch it.kind {
	case iterAtom:
		return assume(it.atom), statusStill

	case iterAnd:
		var adv *int
		if reset {
			zero := 0
			adv = &zero
		}

		cleared := simplifyRetain(&it.children, func(_, newI int, child *formulaIter) simplifyAction {
			a, st := child.simplify(reset, assume)
			switch st {
			case statusStill:
			case statusStep:
				reset = true
			case statusReset:
				if adv == nil && !reset {
					v := newI
					adv = &v
				}
			}
			if adv != nil {
				reset = true
			}
			switch a {
			case AssumptionWin:
				return simplifyRemove
			case AssumptionLose:
				return simplifyClear
			default:
				return simplifyKeep
			}
		})

		var result Assumption
		switch {
		case cleared:
			result = AssumptionLose
		case len(it.children) == 0:
			result = AssumptionWin
		default:
			result = AssumptionUnknown
		}

		var st status
		if adv == nil {
			st = statusStill
		} else {
			advanced := false
			for i := *adv - 1; i >= 0; i-- {
				if it.children[i].advance() {
					advanced = true
					break
				}
			}
			if advanced {
				st = statusStep
			} else {
				st = statusReset
			}
		}

		if len(it.children) == 1 {
			*it = it.children[0]
		}

		return result, st

	case iterOr:
		if reset {
			it.pos = 0
		}
		savedPos := it.pos

		posNewI := 0
		posLose := false
		posStatus := statusStill
		winning := -1

		simplifyRetain(&it.children, func(oldI, newI int, child *formulaIter) simplifyAction {
			a, st := child.simplify(reset, assume)
			if oldI == savedPos {
				posNewI, posLose, posStatus = newI, a == AssumptionLose, st
			}
			if a == AssumptionWin && winning == -1 {
				winning = oldI
			}
			switch a {
			case AssumptionWin:
				return simplifyClear
			case AssumptionLose:
				return simplifyRemove
			default:
				return simplifyKeep
			}
		})

		if winning != -1 {
			switch {
			case winning < savedPos:
				return AssumptionWin, statusReset
			case winning > savedPos:
				return AssumptionWin, statusStep
			default:
				return AssumptionWin, posStatus
			}
		}

		if len(it.children) == 0 {
			return AssumptionLose, statusStill
		}

		newPos := posNewI
		var st status
		switch {
		case newPos >= len(it.children):
			newPos, st = 0, statusReset
		case posLose:
			st = statusStep
		case posStatus == statusReset && newPos+1 == len(it.children):
			newPos, st = 0, statusReset
		case posStatus == statusReset:
			newPos, st = newPos+1, statusStep
		case posStatus == statusStep:
			st = statusStep
		default:
			st = statusStill
		}
		it.pos = newPos

		if len(it.children) == 1 {
			*it = it.children[0]
		}

		return AssumptionUnknown, st
	}
	panic("moves: unknown iterator kind")
}
