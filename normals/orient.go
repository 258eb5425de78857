package normals

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// graphEdge is one half of an undirected Riemannian graph edge.
type graphEdge struct {
	to int
	w  float64
}

// mstEdge is a Prim candidate: vertex v reachable from tree vertex u at
// cost w.
type mstEdge struct {
	w    float64
	u, v int
}

// mstHeap is a min-heap of Prim candidates ordered by weight, with the
// target index as a deterministic tie-break.
type mstHeap []mstEdge

// Len returns the number of pending candidates.
// Complexity: O(1).
func (h mstHeap) Len() int { return len(h) }

// Less reports whether candidate i should sort before j: cheaper edge
// first, lower target index on ties.
// Complexity: O(1).
func (h mstHeap) Less(i, j int) bool {
	if h[i].w != h[j].w {
		return h[i].w < h[j].w
	}
	return h[i].v < h[j].v
}

// Swap swaps candidates at indices i and j.
// Complexity: O(1).
func (h mstHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a candidate; heap.Push restores the order.
// Complexity: O(1).
func (h *mstHeap) Push(x interface{}) { *h = append(*h, x.(mstEdge)) }

// Pop removes the last candidate after heap.Pop moved the minimum there.
// Complexity: O(1).
func (h *mstHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Orient flips normals in place so that they point to a consistent side of
// the surface sampled by points. points[i] carries normals[i]; the two
// slices must have equal length.
//
// The algorithm is Hoppe's MST propagation:
//
//  1. Build the Riemannian graph: each point is joined to its K nearest
//     neighbors, and an edge {i, j} weighs 1 − |nᵢ·nⱼ|, so edges between
//     near-parallel normals are cheapest.
//  2. For every connected component, force the normal of its highest point
//     (greatest Z) away from the surface, toward +Z.
//  3. Grow a minimum spanning tree from that seed (Prim). Each vertex is
//     oriented the moment the tree reaches it: flip its normal when it
//     disagrees with its tree parent.
//
// Non-unit input normals are normalized first. The returned count is the
// number of robustly oriented normals: those whose angle to their tree
// parent, after any flip, is at most MaxAngle (seeds count as robust).
//
// Errors: ErrNoPoints, ErrLengthMismatch, ErrZeroNormal, ErrBadK,
// ErrBadMaxAngle.
func Orient(points, normals []r3.Vector, opts OrientOptions) (int, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	if len(points) == 0 {
		return 0, ErrNoPoints
	}
	if len(points) != len(normals) {
		return 0, fmt.Errorf("%w: %d points, %d normals", ErrLengthMismatch, len(points), len(normals))
	}
	for i, n := range normals {
		l2 := n.Norm2()
		if l2 == 0 {
			return 0, fmt.Errorf("%w: index %d", ErrZeroNormal, i)
		}
		if l2 != 1 {
			normals[i] = n.Mul(1 / math.Sqrt(l2))
		}
	}

	adj := riemannianGraph(points, normals, opts.K)
	cosMax := math.Cos(opts.MaxAngle)

	// oriented doubles as Prim's in-tree marker: a vertex is final as soon
	// as the spanning tree reaches it.
	oriented := make([]bool, len(points))
	robust := 0
	for start := range points {
		if oriented[start] {
			continue
		}
		members := componentMembers(adj, start)
		seed := members[0]
		for _, v := range members[1:] {
			if points[v].Z > points[seed].Z {
				seed = v
			}
		}
		if normals[seed].Z < 0 {
			normals[seed] = normals[seed].Mul(-1)
		}
		oriented[seed] = true
		robust++
		robust += propagate(normals, adj, seed, oriented, cosMax)
	}
	return robust, nil
}

// riemannianGraph joins every point to its k nearest neighbors and weighs
// each edge 1 − |nᵢ·nⱼ|, clamped at zero. The adjacency lists are built in
// ascending vertex and neighbor order, so traversals are deterministic.
func riemannianGraph(points, normals []r3.Vector, k int) [][]graphEdge {
	ni := newNeighborIndex(points)
	adj := make([][]graphEdge, len(points))
	seen := make(map[[2]int]bool, k*len(points))
	for i := range points {
		for _, j := range ni.nearest(i, k) {
			a, b := i, j
			if a > b {
				a, b = b, a
			}
			if seen[[2]int{a, b}] {
				continue
			}
			seen[[2]int{a, b}] = true
			w := 1 - math.Abs(normals[i].Dot(normals[j]))
			if w < 0 {
				w = 0
			}
			adj[i] = append(adj[i], graphEdge{to: j, w: w})
			adj[j] = append(adj[j], graphEdge{to: i, w: w})
		}
	}
	return adj
}

// componentMembers returns the connected component of start in breadth-first
// order, start first.
func componentMembers(adj [][]graphEdge, start int) []int {
	members := []int{start}
	mark := map[int]bool{start: true}
	for qi := 0; qi < len(members); qi++ {
		for _, ge := range adj[members[qi]] {
			if !mark[ge.to] {
				mark[ge.to] = true
				members = append(members, ge.to)
			}
		}
	}
	return members
}

// propagate grows Prim's minimum spanning tree from seed and orients each
// vertex against its tree parent on acceptance. It returns how many of the
// newly oriented normals landed within cosMax of their parent.
func propagate(normals []r3.Vector, adj [][]graphEdge, seed int, inTree []bool, cosMax float64) int {
	var pq mstHeap
	for _, ge := range adj[seed] {
		heap.Push(&pq, mstEdge{w: ge.w, u: seed, v: ge.to})
	}
	robust := 0
	for pq.Len() > 0 {
		cand := heap.Pop(&pq).(mstEdge)
		if inTree[cand.v] {
			continue
		}
		inTree[cand.v] = true
		// The parent normal is final; only the child may flip.
		d := normals[cand.v].Dot(normals[cand.u])
		if d < 0 {
			normals[cand.v] = normals[cand.v].Mul(-1)
			d = -d
		}
		if d >= cosMax {
			robust++
		}
		for _, ge := range adj[cand.v] {
			if !inTree[ge.to] {
				heap.Push(&pq, mstEdge{w: ge.w, u: cand.v, v: ge.to})
			}
		}
	}
	return robust
}
