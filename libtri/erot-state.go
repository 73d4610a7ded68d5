package libtri

// erotState fingerprints one diagonal orientation of the quad around an
// edge: the edge's vert indices and the two opposite ("face") vert indices,
// each pair ordered small -> large.  Two states are equal iff all four
// components match.
type erotState struct {
	va, vb int32 // edge verts
	fa, fb int32 // opposite verts, one per attached triangle
}

func pairOrd(a, b int32) (int32, int32) {
	if a > b {
		return b, a
	}
	return a, b
}

// erotStateCurrent fingerprints the edge's present orientation.
func erotStateCurrent(e *Edge) erotState {
	var s erotState
	s.va, s.vb = pairOrd(e.v1.idx, e.v2.idx)
	s.fa, s.fb = pairOrd(e.OppositeVertFirst().idx, e.OppositeVertSecond().idx)
	return s
}

// erotStateAlternate fingerprints the orientation the edge would have after
// rotation: the vert pair and the opposite pair trade places.
func erotStateAlternate(e *Edge) erotState {
	s := erotStateCurrent(e)
	return erotState{va: s.fa, vb: s.fb, fa: s.va, fb: s.vb}
}

// erotHistory records, per edge slot, the states the slot has already been
// rotated into, so the beautify loop never rotates back into one.
// Per-slot sets don't exist until the slot's first rotation.
type erotHistory struct {
	seen []map[erotState]struct{}
}

func newErotHistory(n int) erotHistory {
	return erotHistory{
		seen: make([]map[erotState]struct{}, n),
	}
}

// containsAlternate reports whether rotating the edge at slot i would
// re-enter a previously recorded state.
func (h *erotHistory) containsAlternate(i int32, e *Edge) bool {
	set := h.seen[i]
	if set == nil {
		return false
	}
	_, seen := set[erotStateAlternate(e)]
	return seen
}

// insertCurrent records the edge's present state at slot i.
// The state must not already be present: a rotation into a recorded state is
// exactly what containsAlternate exists to prevent.
func (h *erotHistory) insertCurrent(i int32, e *Edge) {
	s := erotStateCurrent(e)
	set := h.seen[i]
	if set == nil {
		set = make(map[erotState]struct{}, 4)
		h.seen[i] = set
	} else if _, dup := set[s]; dup {
		panic("libtri: edge slot re-entered a recorded rotation state")
	}
	set[s] = struct{}{}
}
