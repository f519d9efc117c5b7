package fixtures

import (
	"github.com/fixsolve/fixsolve/formula"
	"github.com/fixsolve/fixsolve/randgame"
)

// readyFun and the two successor-quantifying funs below follow the same
// "a Fun generator may refer to atoms at OTHER basis elements" technique
// randgame's bisimilarity encoding uses: Expr alone can only reference a
// variable at the current basis element, so quantifying over an LTS
// state's successors has to go through a Fun.
const (
	funReady     formula.FunID = 0
	funExistsVar formula.FunID = 1
	funAllVar    formula.FunID = 2
)

// readyFun treats a state as ready when readyLabel is among its enabled
// actions, the usual process-algebra reading of "ready" (not merely
// non-deadlocked).
func readyFun(lts *randgame.Lts, readyLabel int) func(formula.BasisID) formula.Formula {
	return func(b formula.BasisID) formula.Formula {
		for _, t := range lts.Transitions[b] {
			if t.Label == readyLabel {
				return formula.True()
			}
		}
		return formula.False()
	}
}

// existsSuccessorFun and allSuccessorsFun take one argument: their atoms
// refer to argument 0, evaluated at each successor state.
func existsSuccessorFun(lts *randgame.Lts) func(formula.BasisID) formula.Formula {
	return func(b formula.BasisID) formula.Formula {
		succs := lts.Transitions[b]
		atoms := make([]formula.Formula, len(succs))
		for i, t := range succs {
			atoms[i] = formula.Atom(formula.BasisID(t.Target), 0)
		}
		return formula.Or(atoms...)
	}
}

func allSuccessorsFun(lts *randgame.Lts) func(formula.BasisID) formula.Formula {
	return func(b formula.BasisID) formula.Formula {
		succs := lts.Transitions[b]
		atoms := make([]formula.Formula, len(succs))
		for i, t := range succs {
			atoms[i] = formula.Atom(formula.BasisID(t.Target), 0)
		}
		return formula.And(atoms...)
	}
}

// AlwaysEventuallyReady builds "AG EF ready": nu Z. mu Y. (ready \/ <->Y)
// /\ [->]Z, a liveness property true of any LTS in which every reachable
// state can still reach a state with the ready action enabled. Z is
// variable 1, the outer (nu) fixpoint; Y is variable
// 0, the inner (mu) fixpoint, per the fixsolve outer-fixpoints-have-
// higher-index convention.
func AlwaysEventuallyReady(lts *randgame.Lts, readyLabel int) *formula.EqSystem {
	const y, z formula.VarID = 0, 1

	eqs := formula.EquationSystem{
		{FixType: formula.Min, Expr: formula.ExprOr(formula.ExprFun(funReady), formula.ExprFun(funExistsVar, formula.ExprVar(y)))},
		{FixType: formula.Max, Expr: formula.ExprAnd(formula.ExprVar(y), formula.ExprFun(funAllVar, formula.ExprVar(z)))},
	}

	funs := formula.NewFunFormulas(
		readyFun(lts, readyLabel),
		existsSuccessorFun(lts),
		allSuccessorsFun(lts),
	)
	return formula.NewEqSystem(eqs, funs)
}

// ReadyAlwaysPossible builds "EF AG ready": mu Z. (nu Y. (ready /\
// [->]Y)) \/ <->Z, the liveness property's nu/mu nesting reversed: a
// state from which ready holds forever is eventually reachable. This is
// the stronger, usually-false counterpart that the reversed nesting is
// meant to expose.
func ReadyAlwaysPossible(lts *randgame.Lts, readyLabel int) *formula.EqSystem {
	const y, z formula.VarID = 0, 1

	eqs := formula.EquationSystem{
		{FixType: formula.Max, Expr: formula.ExprAnd(formula.ExprFun(funReady), formula.ExprFun(funAllVar, formula.ExprVar(y)))},
		{FixType: formula.Min, Expr: formula.ExprOr(formula.ExprVar(y), formula.ExprFun(funExistsVar, formula.ExprVar(z)))},
	}

	funs := formula.NewFunFormulas(
		readyFun(lts, readyLabel),
		existsSuccessorFun(lts),
		allSuccessorsFun(lts),
	)
	return formula.NewEqSystem(eqs, funs)
}
