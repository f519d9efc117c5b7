// Package fixsolve decides whether a distinguished variable of a system
// of fixpoint equations over a complete lattice evaluates to true at a
// given basis element. It does so locally and on the fly: only the part
// of the induced parity game reachable from the query is ever built, via
// hierarchical play-profile valuation and strategy improvement.
package fixsolve

import (
	"github.com/fixsolve/fixsolve/arena"
	"github.com/fixsolve/fixsolve/formula"
	"github.com/fixsolve/fixsolve/local"
	"github.com/fixsolve/fixsolve/moves"
	"github.com/fixsolve/fixsolve/profile"
)

// Re-exported data model types: callers build equation systems and
// formulas without importing the formula package directly.
type (
	Formula         = formula.Formula
	Expr            = formula.Expr
	FixEq           = formula.FixEq
	EquationSystem  = formula.EquationSystem
	FunFormulas     = formula.FunFormulas
	EqSystem        = formula.EqSystem
	Player          = formula.Player
	FixType         = formula.FixType
	BasisID         = formula.BasisID
	VarID           = formula.VarID
	FunID           = formula.FunID
)

const (
	P0 = formula.P0
	P1 = formula.P1

	Max = formula.Max
	Min = formula.Min
)

var (
	Atom           = formula.Atom
	And            = formula.And
	Or             = formula.Or
	True           = formula.True
	False          = formula.False
	ExprVar        = formula.ExprVar
	ExprAnd        = formula.ExprAnd
	ExprOr         = formula.ExprOr
	ExprFun        = formula.ExprFun
	ExprTop        = formula.ExprTop
	ExprBot        = formula.ExprBot
	NewEqSystem    = formula.NewEqSystem
	NewFunFormulas = formula.NewFunFormulas
)

// Oracle supplies the propositional formula a variable evaluates to at
// a given basis element: the one collaborator the core needs. formula.
// EqSystem satisfies it, as does any hand-rolled fixture.
type Oracle interface {
	Get(b BasisID, v VarID) Formula
	FixTypeOf(v VarID) FixType
	VarCount() int
}

// Solve decides whether variable v evaluates to true at basis element b
// under the given equation system oracle.
func Solve(b BasisID, v VarID, oracle Oracle) bool {
	return local.Solve(b, v, oracle)
}

// Session is a long-lived handle on one Solve query, exposing the final
// play profile of any node it explored (the test hook spec.md §6
// requires) and letting callers register auxiliary resources to be
// released together via Close.
type Session struct {
	inner *local.Session
}

// NewSession starts a session for the query (b, v) without running it;
// call Run to drive it to completion.
func NewSession(b BasisID, v VarID, oracle Oracle) *Session {
	return &Session{inner: local.NewSession(moves.P0Pos{B: b, V: v}, oracle)}
}

// Run drives the session to completion, returning whether Player 0 wins.
func (s *Session) Run() bool {
	return s.inner.Solve()
}

// Profile exposes a decided or explored node's final play profile.
func (s *Session) Profile(n profile.NodeID) (profile.PlayProfile, bool) {
	return s.inner.Profile(n)
}

// AddCloser registers an auxiliary resource to be released when Close
// is called.
func (s *Session) AddCloser(c interface{ Close() error }) {
	s.inner.AddCloser(c)
}

// Close releases every resource registered via AddCloser, collecting
// every failure instead of stopping at the first.
func (s *Session) Close() error {
	return s.inner.Close()
}

var _ arena.System = (*formula.EqSystem)(nil)
