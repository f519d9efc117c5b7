package arena

import "github.com/fixsolve/fixsolve/moves"

// p0Data holds everything the arena tracks per Player 0 position. Go
// 1.16 has no generics, so this is a hand-specialised instance of what
// upstream expresses once as a generic NodesData<I, P, M, O>; p1Data
// below is its Player 1 mirror.
type p0Data struct {
	pos      []moves.P0Pos          // NodeP0ID -> position
	posIndex map[moves.P0Pos]NodeP0ID // position -> NodeP0ID, for interning
	ids      []NodeID               // NodeP0ID -> global NodeID
	moveIter []*moves.P0Moves       // NodeP0ID -> remaining moves
	preds    []intSet               // NodeP0ID -> set of NodeP1ID
	succs    []intSet               // NodeP0ID -> set of NodeP1ID
	incomplete intSet               // set of NodeP0ID with unexplored edges
	win      []WinState             // NodeP0ID -> win state
	w0       intSet                 // NodeP0ID set where Player 0 wins
	w1       intSet                 // NodeP0ID set where Player 1 wins
}

func newP0Data() *p0Data {
	return &p0Data{
		posIndex:   make(map[moves.P0Pos]NodeP0ID),
		incomplete: newIntSet(),
		w0:         newIntSet(),
		w1:         newIntSet(),
	}
}

// p1Data is the Player 1 counterpart of p0Data.
type p1Data struct {
	pos        []moves.P1Pos
	posIndex   map[string]NodeP1ID // P1Pos.Key() -> NodeP1ID
	ids        []NodeID
	moveIter   []*moves.P1Moves
	preds      []intSet // NodeP1ID -> set of NodeP0ID
	succs      []intSet // NodeP1ID -> set of NodeP0ID
	incomplete intSet
	win        []WinState
	w0         intSet
	w1         intSet
}

func newP1Data() *p1Data {
	return &p1Data{
		posIndex:   make(map[string]NodeP1ID),
		incomplete: newIntSet(),
		w0:         newIntSet(),
		w1:         newIntSet(),
	}
}
