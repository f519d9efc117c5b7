package formula

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimplifyAndUnit(t *testing.T) {
	require.True(t, SimplifyAnd(nil).IsTrue())
}

func TestSimplifyAndShortCircuitsOnFalse(t *testing.T) {
	f := SimplifyAnd([]Formula{Atom(0, 0), False(), Atom(1, 1)})
	require.True(t, f.IsFalse())
}

func TestSimplifyAndDropsTrueChildren(t *testing.T) {
	f := SimplifyAnd([]Formula{True(), Atom(0, 0), True()})
	require.Equal(t, KindAtom, f.Kind)
	require.Equal(t, BasisID(0), f.Basis)
}

func TestSimplifyOrUnit(t *testing.T) {
	require.True(t, SimplifyOr(nil).IsFalse())
}

func TestSimplifyOrShortCircuitsOnTrue(t *testing.T) {
	f := SimplifyOr([]Formula{Atom(0, 0), True(), Atom(1, 1)})
	require.True(t, f.IsTrue())
}

func TestEqSystemComposesFunCalls(t *testing.T) {
	// fun(x) = Atom(b, x); eq0 = Fun(fun, Var(1)); eq1 is unused directly.
	// The body's atom refers to argument 0, the x above.
	funs := NewFunFormulas(func(b BasisID) Formula {
		return Atom(b, 0)
	})
	eqs := EquationSystem{
		{FixType: Max, Expr: ExprFun(0, ExprVar(1))},
		{FixType: Max, Expr: ExprVar(0)},
	}
	sys := NewEqSystem(eqs, funs)

	got := sys.Get(5, 0)
	require.Equal(t, KindAtom, got.Kind)
	require.Equal(t, BasisID(5), got.Basis)
	require.Equal(t, VarID(1), got.Var)
}

func TestEqSystemMemoises(t *testing.T) {
	calls := 0
	funs := NewFunFormulas(func(b BasisID) Formula {
		calls++
		return Atom(b, 0)
	})
	eqs := EquationSystem{{FixType: Max, Expr: ExprFun(0, ExprVar(0))}}
	sys := NewEqSystem(eqs, funs)

	sys.Get(0, 0)
	sys.Get(0, 0)
	require.Equal(t, 1, calls)
}
