package formula

// SimplifyAnd flattens a list of conjuncts: TRUE children are dropped, a
// FALSE child collapses the whole conjunction to FALSE, and a single
// remaining child is unwrapped (grounded on original_source's
// simplify_and in src/symbolic/formula.rs and solver/src/symbolic/formula.rs).
func SimplifyAnd(children []Formula) Formula {
	kept := make([]Formula, 0, len(children))
	for _, f := range children {
		if f.IsTrue() {
			continue
		}
		if f.IsFalse() {
			return False()
		}
		kept = append(kept, f)
	}
	switch len(kept) {
	case 0:
		return True()
	case 1:
		return kept[0]
	default:
		return And(kept...)
	}
}

// SimplifyOr flattens a list of disjuncts the dual way: FALSE children are
// dropped, a TRUE child collapses the whole disjunction to TRUE, and a
// single remaining child is unwrapped.
func SimplifyOr(children []Formula) Formula {
	kept := make([]Formula, 0, len(children))
	for _, f := range children {
		if f.IsFalse() {
			continue
		}
		if f.IsTrue() {
			return True()
		}
		kept = append(kept, f)
	}
	switch len(kept) {
	case 0:
		return False()
	case 1:
		return kept[0]
	default:
		return Or(kept...)
	}
}
