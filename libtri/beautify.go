package libtri

import (
	"github.com/trimesh-systems/gotri/gotri"
)

// BeautifyFill rotates the given interior edges to more attractive positions
// until no rotation improves the mesh, and returns the number of rotations
// performed.
//
// edges is the caller's array of manifold interior edges, mutated in place:
// after every rotation edges[i] holds the edge currently occupying slot i.
// Edge scratch indices are overwritten with slot indices and left dirty.
//
// When edgeMark / faceMark are non-zero, every rotated edge and its two
// faces get those flag bits enabled.
//
// Cheapest (most negative) rotations happen first; each rotation re-scores
// the four surrounding edges.  A per-slot history of visited states keeps
// the loop from rotating an edge back and forth forever, which also bounds
// the run: every successful rotation lands in a state its slot has never
// recorded.
func (m *Mesh) BeautifyFill(edges []*Edge, flags gotri.BeautifyFlags, method gotri.Method, edgeMark, faceMark ElemFlags) int {
	heap := newCostHeap(len(edges))
	hist := newErotHistory(len(edges))

	for i, e := range edges {
		e.SetIndex(int32(i))
		if cost := rotateBeautyCost(e, flags, method); cost < 0 {
			heap.insert(cost, int32(i), e)
		}
	}

	rotations := 0
	for !heap.empty() {
		ent := heap.popMin()
		i := ent.slot

		e := m.RotateEdge(ent.edge, true)
		if e == nil {
			// flip not possible (e.g. the target diagonal already
			// exists); the slot just goes quiet
			continue
		}

		// Record the new state so we never rotate back into it.
		// Recording the previous state instead would also break cycles;
		// the post-rotation state is what the original does.
		hist.insertCurrent(i, e)

		edges[i] = e
		e.SetIndex(i)

		if edgeMark != 0 {
			e.EnableFlags(edgeMark)
		}
		if faceMark != 0 {
			fa, fb := e.Faces()
			fa.EnableFlags(faceMark)
			fb.EnableFlags(faceMark)
		}

		// surrounding geometry changed; re-score the rest of the quad
		for _, en := range e.QuadEdges() {
			m.updateBeautyCost(en, heap, &hist, edges, flags, method)
		}
		rotations++
	}
	return rotations
}

// updateBeautyCost re-scores one edge after nearby geometry changed,
// removing or (re)inserting its heap entry as needed.
func (m *Mesh) updateBeautyCost(e *Edge, heap *costHeap, hist *erotHistory, edges []*Edge, flags gotri.BeautifyFlags, method gotri.Method) {
	i := e.idx
	if i < 0 || int(i) >= len(edges) || edges[i] != e {
		return // not tracked by this run
	}

	if heap.scheduled(i) {
		heap.remove(i)
	}

	// check we're not moving back into a state we have been in before
	if hist.containsAlternate(i, e) {
		return
	}

	if cost := rotateBeautyCost(e, flags, method); cost < 0 {
		heap.insert(cost, i, e)
	}
}
