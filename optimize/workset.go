package optimize

import (
	"container/heap"

	"github.com/katalvlaran/enclose/interval"
)

// candidate is one working-set entry: an immutable box, its cached bound
// (evaluated exactly once, when the candidate is created), the split depth
// and an insertion sequence number for deterministic tie-breaking.
type candidate struct {
	box   interval.Box
	bound interval.Interval
	depth int
	seq   uint64
}

// workSet is the driver's priority queue: an append-only arena of
// candidates plus an index min-heap keyed by (bound.Lo, seq). The explicit
// arena-plus-indices layout keeps budget accounting and concurrent child
// merging straightforward: pushes append and sift, pops never invalidate
// arena slots.
type workSet struct {
	arena []candidate
	idx   []int
	seq   uint64
}

func newWorkSet(capacity int) *workSet {
	return &workSet{
		arena: make([]candidate, 0, capacity),
		idx:   make([]int, 0, capacity),
	}
}

// push stamps the candidate with the next sequence number and enqueues it.
func (ws *workSet) push(c candidate) {
	c.seq = ws.seq
	ws.seq++
	ws.arena = append(ws.arena, c)
	heap.Push((*wsHeap)(ws), len(ws.arena)-1)
}

// pop removes and returns the candidate with the smallest bound lower
// endpoint; among equal bounds the earliest-pushed wins.
func (ws *workSet) pop() (candidate, bool) {
	if len(ws.idx) == 0 {
		return candidate{}, false
	}
	i := heap.Pop((*wsHeap)(ws)).(int)

	return ws.arena[i], true
}

// minLo peeks at the smallest pending lower bound; +∞ when drained.
func (ws *workSet) minLo() float64 {
	if len(ws.idx) == 0 {
		return inf
	}

	return ws.arena[ws.idx[0]].bound.Lo()
}

func (ws *workSet) len() int { return len(ws.idx) }

// wsHeap adapts workSet to container/heap over arena indices.
type wsHeap workSet

func (h wsHeap) Len() int { return len(h.idx) }

func (h wsHeap) Less(i, j int) bool {
	a, b := h.arena[h.idx[i]], h.arena[h.idx[j]]
	if a.bound.Lo() != b.bound.Lo() {
		return a.bound.Lo() < b.bound.Lo()
	}

	return a.seq < b.seq
}

func (h wsHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }

func (h *wsHeap) Push(x interface{}) { h.idx = append(h.idx, x.(int)) }

func (h *wsHeap) Pop() interface{} {
	old := h.idx
	n := len(old)
	i := old[n-1]
	h.idx = old[:n-1]

	return i
}
