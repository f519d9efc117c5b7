// Package formula holds the data model shared by every collaborator of the
// local solver: the propositional Formula produced by the oracle, the
// Expr/FixEq shape of an equation system, and the small index types used to
// refer to basis elements and variables without boxing them.
package formula

import "fmt"

// BasisID indexes a basis element of the lattice (an LTS state, a pair of
// states for bisimilarity, or a fixed constant for parity games).
type BasisID int

// VarID indexes a variable/equation of the system. Variables are totally
// ordered; outer (later-declared) fixpoints carry higher indices.
type VarID int

// FunID indexes a lattice function referenced from an Expr.
type FunID int

func (b BasisID) String() string { return fmt.Sprintf("b%d", int(b)) }
func (v VarID) String() string   { return fmt.Sprintf("v%d", int(v)) }
func (f FunID) String() string   { return fmt.Sprintf("f%d", int(f)) }

// Player is one of the two players of the parity game: P0 is the
// existential player that proves the formula, P1 is the universal player
// that refutes it.
type Player uint8

const (
	P0 Player = iota
	P1
)

func (p Player) String() string {
	switch p {
	case P0:
		return "P0"
	case P1:
		return "P1"
	}
	return "UNKNOWN PLAYER"
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == P0 {
		return P1
	}
	return P0
}

// FixType is the fixpoint kind of an equation: Max (greatest, favours P0)
// or Min (least, favours P1).
type FixType uint8

const (
	Max FixType = iota
	Min
)

func (f FixType) String() string {
	switch f {
	case Max:
		return "Max"
	case Min:
		return "Min"
	}
	return "UNKNOWN FIXTYPE"
}
