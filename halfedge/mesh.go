// This file builds a Mesh from an indexed triangle soup: twin pairing of
// directed edges, face loop linking, border loop stitching, and the final
// manifold-vertex sweep.
package halfedge

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// FromSoup builds a halfedge mesh from points and triangles given as vertex
// index triples. Triangles must be consistently wound: two triangles sharing
// an edge must traverse it in opposite directions.
//
// Contracts:
//   - every index of every face lies in [0, len(points));
//   - no face repeats a vertex;
//   - at most two faces meet at an edge, in opposite directions;
//   - the faces around each vertex form a single fan.
//
// Violations return ErrVertexRange, ErrDegenerateFace, ErrNonManifoldEdge or
// ErrNonManifoldVertex, each wrapped with the offending face or vertex index.
// Isolated vertices are allowed and stay in the mesh with degree zero.
//
// Complexity: O(V + F) expected time, O(V + F) memory.
func FromSoup(points []r3.Vector, faces [][3]int) (*Mesh, error) {
	m := NewMesh()

	// 1. Vertex slots, initially isolated.
	m.verts = make([]vertexRec, len(points))
	for i, p := range points {
		m.verts[i] = vertexRec{point: p, out: NoHalfedge}
	}
	m.liveVerts = len(points)

	// 2. One face at a time: claim (or allocate) the three directed edges,
	//    then close the face loop.
	directed := make(map[[2]int]Halfedge, 3*len(faces))
	m.hes = make([]halfedgeRec, 0, 6*len(faces))
	m.faces = make([]faceRec, 0, len(faces))
	for fi, fv := range faces {
		a, b, c := fv[0], fv[1], fv[2]
		if a < 0 || a >= len(points) || b < 0 || b >= len(points) || c < 0 || c >= len(points) {
			return nil, fmt.Errorf("%w: face %d", ErrVertexRange, fi)
		}
		if a == b || b == c || c == a {
			return nil, fmt.Errorf("%w: face %d", ErrDegenerateFace, fi)
		}

		f := Face(len(m.faces))
		m.faces = append(m.faces, faceRec{he: NoHalfedge})

		var loop [3]Halfedge
		corners := [3]int{a, b, c}
		for i := 0; i < 3; i++ {
			u, v := corners[i], corners[(i+1)%3]
			h, ok := directed[[2]int{u, v}]
			if !ok {
				// New twin pair: h runs u->v, its twin v->u. Both start
				// as border halfedges with unlinked loops.
				h = Halfedge(len(m.hes))
				m.hes = append(m.hes,
					halfedgeRec{origin: Vertex(u), next: NoHalfedge, prev: NoHalfedge, face: NoFace},
					halfedgeRec{origin: Vertex(v), next: NoHalfedge, prev: NoHalfedge, face: NoFace},
				)
				directed[[2]int{u, v}] = h
				directed[[2]int{v, u}] = h ^ 1
				m.liveEdges++
			}
			if m.hes[h].face != NoFace {
				return nil, fmt.Errorf("%w: face %d", ErrNonManifoldEdge, fi)
			}
			m.hes[h].face = f
			loop[i] = h
		}
		for i := 0; i < 3; i++ {
			m.hes[loop[i]].next = loop[(i+1)%3]
			m.hes[loop[i]].prev = loop[(i+2)%3]
			if m.verts[corners[i]].out == NoHalfedge {
				m.verts[corners[i]].out = loop[i]
			}
		}
		m.faces[f].he = loop[0]
	}
	m.liveFaces = len(m.faces)
	m.edgeDead = make([]bool, len(m.hes)/2)

	// 3. Stitch border loops. For a border halfedge b ending at v, its next
	//    is the first border halfedge reached by rotating around v through
	//    the interior fan.
	for b := Halfedge(0); int(b) < len(m.hes); b++ {
		if m.hes[b].face != NoFace {
			continue
		}
		c := b ^ 1
		for m.hes[c].face != NoFace {
			c = m.hes[c].prev ^ 1
		}
		m.hes[b].next = c
		m.hes[c].prev = b
	}

	// 4. Manifold-vertex sweep: the rotation orbit of each used vertex must
	//    visit every outgoing halfedge exactly once.
	outgoing := make([]int, len(points))
	for h := range m.hes {
		outgoing[m.hes[h].origin]++
	}
	for v := range m.verts {
		start := m.verts[v].out
		if start == NoHalfedge {
			if outgoing[v] != 0 {
				return nil, fmt.Errorf("%w: vertex %d", ErrNonManifoldVertex, v)
			}
			continue
		}
		orbit := 0
		h := start
		for {
			orbit++
			if orbit > outgoing[v] {
				return nil, fmt.Errorf("%w: vertex %d", ErrNonManifoldVertex, v)
			}
			h = m.hes[h^1].next
			if h == start {
				break
			}
		}
		if orbit != outgoing[v] {
			return nil, fmt.Errorf("%w: vertex %d", ErrNonManifoldVertex, v)
		}
	}

	return m, nil
}

// AddVertex appends an isolated vertex at p and returns its index.
func (m *Mesh) AddVertex(p r3.Vector) Vertex {
	m.verts = append(m.verts, vertexRec{point: p, out: NoHalfedge})
	m.liveVerts++
	return Vertex(len(m.verts) - 1)
}
