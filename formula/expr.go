package formula

// Expr is the expected shape of the right-hand side of an equation as
// handed to the collaborator that builds the oracle (spec.md §6 item 2).
// The core never inspects Expr directly; only the composer in this
// package (EqSystem) consumes it to build a Formula per (basis, var).
type Expr struct {
	Kind Kind
	Var  VarID   // valid when Kind == KindAtom (reusing Kind for Expr's Var case)
	Fun  FunID   // valid when Kind == kindFun
	Args []Expr  // valid when Kind == kindFun
	Subs []Expr  // valid when Kind == KindAnd or KindOr
}

// kindFun extends formula.Kind for the one shape Expr has that Formula
// does not: a call to a lattice function.
const kindFun Kind = 100

// ExprVar references a variable.
func ExprVar(v VarID) Expr { return Expr{Kind: KindAtom, Var: v} }

// ExprAnd is a conjunction of sub-expressions.
func ExprAnd(subs ...Expr) Expr { return Expr{Kind: KindAnd, Subs: subs} }

// ExprOr is a disjunction of sub-expressions.
func ExprOr(subs ...Expr) Expr { return Expr{Kind: KindOr, Subs: subs} }

// ExprFun calls a lattice function with the given argument expressions.
func ExprFun(f FunID, args ...Expr) Expr { return Expr{Kind: kindFun, Fun: f, Args: args} }

// ExprTop is the unit of conjunction (TRUE).
func ExprTop() Expr { return ExprAnd() }

// ExprBot is the unit of disjunction (FALSE).
func ExprBot() Expr { return ExprOr() }

// FixEq pairs a fixpoint type with the expression defining a variable.
type FixEq struct {
	FixType FixType
	Expr    Expr
}

// EquationSystem is a finite indexed list of FixEq, one per VarID. Outer
// (later-declared) fixpoints carry higher indices (spec.md §3).
type EquationSystem []FixEq

// FixTypeOf returns the fixpoint type of variable v.
func (s EquationSystem) FixTypeOf(v VarID) FixType {
	return s[v].FixType
}

// VarCount returns the number of variables in the system.
func (s EquationSystem) VarCount() int {
	return len(s)
}
