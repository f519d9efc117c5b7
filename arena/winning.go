package arena

// SetP0Losing records that Player 0 loses at p0: it is definitely Win1.
// The arena rewires p0's incoming/outgoing edges to the W1 sentinel and
// recursively propagates the new fact to predecessors that become
// winning for Player 1 as a result.
func (a *Arena) SetP0Losing(p0 NodeP0ID, strategy *GameStrategy, finalStrategy []NodeID) {
	a.p0.win[int(p0)] = Win1
	a.p0.w1.Insert(int(p0))

	strategy.Update(p0, w1Sink)
	finalStrategy[int(a.p0.ids[int(p0)])] = W1

	for _, p1 := range a.p0.succs[int(p0)].Take() {
		a.p1.preds[p1].Remove(int(p0))
	}

	for _, p1 := range a.p0.preds[int(p0)].Take() {
		if a.p1.win[p1] != Win1 {
			a.SetP1Winning(NodeP1ID(p1), strategy, finalStrategy)
		}
	}
}

// SetP0Winning records that Player 0 wins at p0: it is definitely Win0.
func (a *Arena) SetP0Winning(p0 NodeP0ID, strategy *GameStrategy, finalStrategy []NodeID) {
	a.p0.win[int(p0)] = Win0
	a.p0.w0.Insert(int(p0))
	a.p0.incomplete.Remove(int(p0))

	strategy.Update(p0, l1Sink)
	finalStrategy[int(a.p0.ids[int(p0)])] = L1

	for _, p1 := range a.p0.succs[int(p0)].Take() {
		a.p1.preds[p1].Remove(int(p0))
	}

	for _, p1 := range a.p0.preds[int(p0)].Take() {
		if finalStrategy[int(a.p1.ids[p1])] == a.p0.ids[int(p0)] {
			if a.p1.succs[p1].Len() == 1 && a.p1.moveIter[p1].IsExhausted() {
				a.SetP1Losing(NodeP1ID(p1), strategy, finalStrategy)
			} else {
				a.p0.preds[int(p0)].Insert(p1)
			}
		} else {
			a.p1.succs[p1].Remove(int(p0))
		}
	}
}

// SetP1Losing records that Player 1 loses at p1: it is definitely Win0.
func (a *Arena) SetP1Losing(p1 NodeP1ID, strategy *GameStrategy, finalStrategy []NodeID) {
	a.p1.win[int(p1)] = Win0
	a.p1.w0.Insert(int(p1))

	finalStrategy[int(a.p1.ids[int(p1)])] = W0

	for _, p0 := range a.p1.succs[int(p1)].Take() {
		a.p0.preds[p0].Remove(int(p1))
	}

	for _, p0 := range a.p1.preds[int(p1)].Take() {
		if a.p0.win[p0] != Win0 {
			a.SetP0Winning(NodeP0ID(p0), strategy, finalStrategy)
		}
	}
}

// SetP1Winning records that Player 1 wins at p1: it is definitely Win1.
//
// The predecessor-pruning check below reads finalStrategy at p1's own
// slot rather than p0's, mirroring local/winning.rs's set_p1_winning
// literally: since that slot was just set to L0 two lines above, the
// branch is effectively always false and every surviving edge is
// dropped from p0's successors.
func (a *Arena) SetP1Winning(p1 NodeP1ID, strategy *GameStrategy, finalStrategy []NodeID) {
	a.p1.win[int(p1)] = Win1
	a.p1.w1.Insert(int(p1))
	a.p1.incomplete.Remove(int(p1))

	finalStrategy[int(a.p1.ids[int(p1)])] = L0

	for _, p0 := range a.p1.succs[int(p1)].Take() {
		a.p0.preds[p0].Remove(int(p1))
	}

	for _, p0 := range a.p1.preds[int(p1)].Take() {
		if finalStrategy[int(a.p1.ids[int(p1)])] == a.p0.ids[p0] {
			if a.p1.succs[int(p1)].Len() == 1 && a.p1.moveIter[int(p1)].IsExhausted() {
				a.SetP1Losing(p1, strategy, finalStrategy)
			} else {
				a.p1.preds[int(p1)].Insert(p0)
			}
		} else {
			a.p0.succs[p0].Remove(int(p1))
		}
	}
}
