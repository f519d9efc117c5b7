package formula

// FunFormulas supplies the propositional formula a lattice function
// produces for a given basis element (spec.md §6: "allowing the composer
// to inline function calls"). It is the ancillary formula-composer
// collaborator, kept deliberately thin: the core never calls it, only
// EqSystem below and the test fixtures that build oracles do.
type FunFormulas struct {
	generators []func(BasisID) Formula
	cache      []map[BasisID]Formula
}

// NewFunFormulas builds a FunFormulas from one generator per FunID.
func NewFunFormulas(generators ...func(BasisID) Formula) *FunFormulas {
	cache := make([]map[BasisID]Formula, len(generators))
	for i := range cache {
		cache[i] = make(map[BasisID]Formula)
	}
	return &FunFormulas{generators: generators, cache: cache}
}

// Get returns (and memoises) the formula for (basis, fun).
func (f *FunFormulas) Get(b BasisID, fun FunID) Formula {
	if cached, ok := f.cache[fun][b]; ok {
		return cached
	}
	v := f.generators[fun](b)
	f.cache[fun][b] = v
	return v
}

// EqSystem composes an EquationSystem plus its FunFormulas into the
// formula oracle the core expects: Get(b, v) -> Formula. Results are
// memoised per (basis, var), matching the "pure/memoised" contract of
// spec.md §2.
type EqSystem struct {
	eqs   EquationSystem
	funs  *FunFormulas
	cache []map[BasisID]Formula
}

// NewEqSystem builds an oracle-backing composer for the given equation
// system and function table.
func NewEqSystem(eqs EquationSystem, funs *FunFormulas) *EqSystem {
	cache := make([]map[BasisID]Formula, len(eqs))
	for i := range cache {
		cache[i] = make(map[BasisID]Formula)
	}
	return &EqSystem{eqs: eqs, funs: funs, cache: cache}
}

// Get implements the formula oracle contract.
func (s *EqSystem) Get(b BasisID, v VarID) Formula {
	if cached, ok := s.cache[v][b]; ok {
		return cached
	}
	f := s.composeMoves(s.eqs[v].Expr, b)
	s.cache[v][b] = f
	return f
}

// FixTypeOf exposes the fixpoint type of every variable, the second half
// of the information the core needs (spec.md §2: "the fixpoint type of
// every variable").
func (s *EqSystem) FixTypeOf(v VarID) FixType {
	return s.eqs.FixTypeOf(v)
}

// VarCount returns the number of variables in the underlying system.
func (s *EqSystem) VarCount() int {
	return s.eqs.VarCount()
}

func (s *EqSystem) composeMoves(e Expr, b BasisID) Formula {
	switch e.Kind {
	case KindAtom:
		return Atom(b, e.Var)
	case KindAnd:
		fs := make([]Formula, len(e.Subs))
		for i, c := range e.Subs {
			fs[i] = s.composeMoves(c, b)
		}
		return SimplifyAnd(fs)
	case KindOr:
		fs := make([]Formula, len(e.Subs))
		for i, c := range e.Subs {
			fs[i] = s.composeMoves(c, b)
		}
		return SimplifyOr(fs)
	case kindFun:
		return s.subst(s.funs.Get(b, e.Fun), e.Args)
	}
	panic("formula: unknown Expr kind")
}

// subst substitutes the function-body formula's atoms (which index into
// args by Var) with the composed argument expressions, evaluated at the
// atom's own basis element.
func (s *EqSystem) subst(body Formula, args []Expr) Formula {
	switch body.Kind {
	case KindAtom:
		return s.composeMoves(args[body.Var], body.Basis)
	case KindAnd:
		fs := make([]Formula, len(body.Children))
		for i, c := range body.Children {
			fs[i] = s.subst(c, args)
		}
		return SimplifyAnd(fs)
	case KindOr:
		fs := make([]Formula, len(body.Children))
		for i, c := range body.Children {
			fs[i] = s.subst(c, args)
		}
		return SimplifyOr(fs)
	}
	panic("formula: unknown Formula kind")
}
