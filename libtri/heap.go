package libtri

// costHeap is a slot-indexed min-heap of candidate edge rotations: a
// slice-backed binary heap plus a slot -> heap-position table, so any
// scheduled slot can be removed in O(log n) and membership tested in O(1).
// Each slot holds at most one entry.
type costHeap struct {
	entries []costEntry
	heapPos []int32 // slot -> index into entries, -1 when unscheduled
}

type costEntry struct {
	cost float64
	slot int32
	edge *Edge
}

func newCostHeap(numSlots int) *costHeap {
	h := &costHeap{
		entries: make([]costEntry, 0, numSlots),
		heapPos: make([]int32, numSlots),
	}
	for i := range h.heapPos {
		h.heapPos[i] = -1
	}
	return h
}

func (h *costHeap) empty() bool { return len(h.entries) == 0 }

// scheduled reports whether the given slot currently has a heap entry.
func (h *costHeap) scheduled(slot int32) bool { return h.heapPos[slot] >= 0 }

func (h *costHeap) swap(i, j int32) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.heapPos[h.entries[i].slot] = i
	h.heapPos[h.entries[j].slot] = j
}

func (h *costHeap) less(i, j int32) bool {
	return h.entries[i].cost < h.entries[j].cost
}

func (h *costHeap) up(j int32) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *costHeap) down(i int32) {
	n := int32(len(h.entries))
	for {
		j := 2*i + 1 // left child
		if j >= n {
			break
		}
		if j2 := j + 1; j2 < n && h.less(j2, j) {
			j = j2
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
}

// insert schedules the edge at its slot.  The slot must be unscheduled.
func (h *costHeap) insert(cost float64, slot int32, e *Edge) {
	if h.heapPos[slot] >= 0 {
		panic("libtri: costHeap slot already scheduled")
	}
	i := int32(len(h.entries))
	h.entries = append(h.entries, costEntry{cost: cost, slot: slot, edge: e})
	h.heapPos[slot] = i
	h.up(i)
}

// popMin removes and returns the cheapest entry, unscheduling its slot.
func (h *costHeap) popMin() costEntry {
	min := h.entries[0]
	last := int32(len(h.entries) - 1)
	h.swap(0, last)
	h.entries[last] = costEntry{}
	h.entries = h.entries[:last]
	h.heapPos[min.slot] = -1
	if last > 0 {
		h.down(0)
	}
	return min
}

// remove unschedules the given slot.
func (h *costHeap) remove(slot int32) {
	i := h.heapPos[slot]
	last := int32(len(h.entries) - 1)
	h.swap(i, last)
	h.entries[last] = costEntry{}
	h.entries = h.entries[:last]
	h.heapPos[slot] = -1
	if i < last {
		h.down(i)
		h.up(i)
	}
}
