package randgame

import (
	"github.com/fixsolve/fixsolve/formula"
)

// BisimilarityQuery packages two (possibly generated) transition systems
// into the single-variable greatest-fixpoint equation system that
// decides bisimilarity of a pair of their states: max X = fun(X), where
// fun(b) composes the Hennessy-Milner style matching formula over b's
// decoded pair of states.
type BisimilarityQuery struct {
	Lhs, Rhs *Lts
	Sys      *formula.EqSystem
}

// Bisimilarity builds the equation system deciding bisimilarity between
// states of lhs and rhs: Solve(BasisFor(s1,s2), 0, q.Sys) is true iff s1
// and s2 are bisimilar.
func Bisimilarity(lhs, rhs *Lts) *BisimilarityQuery {
	eqs := formula.EquationSystem{
		{FixType: formula.Max, Expr: formula.ExprFun(0, formula.ExprVar(0))},
	}

	q := &BisimilarityQuery{Lhs: lhs, Rhs: rhs}
	funs := formula.NewFunFormulas(func(b formula.BasisID) formula.Formula {
		s1, s2 := q.decode(b)
		return q.formulaFor(s1, s2)
	})
	q.Sys = formula.NewEqSystem(eqs, funs)
	return q
}

// BasisFor encodes a pair of states from lhs and rhs into the single
// basis-element space the equation system is indexed by.
func (q *BisimilarityQuery) BasisFor(s1, s2 int) formula.BasisID {
	return formula.BasisID(s1*len(q.Rhs.Transitions) + s2)
}

func (q *BisimilarityQuery) decode(b formula.BasisID) (s1, s2 int) {
	n := len(q.Rhs.Transitions)
	return int(b) / n, int(b) % n
}

// formulaFor builds the conjunction of "every move of one side can be
// matched by a move of the other, under the same label" in both
// directions, the standard encoding of one unfolding of the
// bisimulation game as a propositional formula over atoms referring to
// the successor pair.
func (q *BisimilarityQuery) formulaFor(s1, s2 int) formula.Formula {
	var conjuncts []formula.Formula

	for _, t1 := range q.Lhs.Transitions[s1] {
		var matches []formula.Formula
		for _, t2 := range q.Rhs.Transitions[s2] {
			if t2.Label == t1.Label {
				matches = append(matches, formula.Atom(q.BasisFor(t1.Target, t2.Target), 0))
			}
		}
		conjuncts = append(conjuncts, formula.Or(matches...))
	}

	for _, t2 := range q.Rhs.Transitions[s2] {
		var matches []formula.Formula
		for _, t1 := range q.Lhs.Transitions[s1] {
			if t1.Label == t2.Label {
				matches = append(matches, formula.Atom(q.BasisFor(t1.Target, t2.Target), 0))
			}
		}
		conjuncts = append(conjuncts, formula.Or(matches...))
	}

	return formula.And(conjuncts...)
}
