package repair

import (
	"container/heap"

	"github.com/katalvlaran/lvlmesh/halfedge"
)

// edgeHeap implements heap.Interface for a min-heap of edge indices, so
// worklists drain in ascending edge order no matter the insertion order.
type edgeHeap []halfedge.Edge

// Len returns the number of entries in the heap. Complexity: O(1).
func (h edgeHeap) Len() int { return len(h) }

// Less orders entries by edge index, ascending. Complexity: O(1).
func (h edgeHeap) Less(i, j int) bool { return h[i] < h[j] }

// Swap swaps entries i and j. Complexity: O(1).
func (h edgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends an edge. Called by heap.Push. Complexity: O(log N) amortized.
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(halfedge.Edge)) }

// Pop removes and returns the smallest edge after heap adjustments.
// Called by heap.Pop. Complexity: O(log N) amortized.
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// worklist is a deduplicated set of edges drained in ascending edge order.
// Retirement is lazy: the membership map is the truth, the heap may carry
// entries for edges that were retired after insertion; pop skips those.
type worklist struct {
	h  edgeHeap
	in map[halfedge.Edge]bool
}

func newWorklist() *worklist {
	return &worklist{in: make(map[halfedge.Edge]bool)}
}

// push inserts e unless it is already a member.
func (w *worklist) push(e halfedge.Edge) {
	if w.in[e] {
		return
	}
	w.in[e] = true
	heap.Push(&w.h, e)
}

// pop removes and returns the smallest member, or false when the list is
// empty. Heap entries whose edge was retired are discarded on the way.
func (w *worklist) pop() (halfedge.Edge, bool) {
	for w.h.Len() > 0 {
		e := heap.Pop(&w.h).(halfedge.Edge)
		if w.in[e] {
			delete(w.in, e)
			return e, true
		}
	}
	return halfedge.NoEdge, false
}

// retire removes e from the membership; its heap entry, if any, dies on pop.
func (w *worklist) retire(e halfedge.Edge) {
	delete(w.in, e)
}

// has reports membership.
func (w *worklist) has(e halfedge.Edge) bool { return w.in[e] }

// empty reports whether no members remain.
func (w *worklist) empty() bool { return len(w.in) == 0 }

// worklists groups the four edge sets of one repair run: the current and
// next-round collapse candidates and the current and next-round flip
// candidates. An edge lives in at most one set at a time; the queue helpers
// and retireEverywhere keep that invariant.
type worklists struct {
	collapseNow, collapseNext *worklist
	flipNow, flipNext         *worklist
}

func newWorklists() *worklists {
	return &worklists{
		collapseNow:  newWorklist(),
		collapseNext: newWorklist(),
		flipNow:      newWorklist(),
		flipNext:     newWorklist(),
	}
}

// retireEverywhere drops e from all four sets. Every mesh-mutating call
// routes the handles it invalidates through here first, so a popped edge is
// always live.
func (ws *worklists) retireEverywhere(e halfedge.Edge) {
	ws.collapseNow.retire(e)
	ws.collapseNext.retire(e)
	ws.flipNow.retire(e)
	ws.flipNext.retire(e)
}

// queueCollapseNext books e for collapsing next round, displacing any stale
// flip booking. The newest classification wins.
func (ws *worklists) queueCollapseNext(e halfedge.Edge) {
	ws.flipNow.retire(e)
	ws.flipNext.retire(e)
	ws.collapseNext.push(e)
}

// queueFlipNext books e for flipping next round, displacing any stale
// collapse booking.
func (ws *worklists) queueFlipNext(e halfedge.Edge) {
	ws.collapseNow.retire(e)
	ws.collapseNext.retire(e)
	ws.flipNext.push(e)
}

// swap promotes the next-round sets and starts fresh ones.
func (ws *worklists) swap() {
	ws.collapseNow, ws.collapseNext = ws.collapseNext, newWorklist()
	ws.flipNow, ws.flipNext = ws.flipNext, newWorklist()
}

// drained reports whether both current sets are empty.
func (ws *worklists) drained() bool {
	return ws.collapseNow.empty() && ws.flipNow.empty()
}
