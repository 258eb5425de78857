// This file implements CheckIntegrity, a full structural audit of a Mesh.
// It is meant for tests and for debugging mutation sequences; production
// paths never need it.
package halfedge

import "fmt"

// CheckIntegrity verifies every structural invariant of the mesh:
//
//  1. live counters match the tombstone arrays;
//  2. live halfedges reference live elements and their loops are doubly
//     linked (prev of next is the halfedge itself);
//  3. face loops have exactly three halfedges with three distinct corners,
//     and every loop member points back at the face;
//  4. border loops close and consist of face-less halfedges;
//  5. each live vertex anchors an outgoing halfedge whose rotation orbit
//     visits every live spoke exactly once.
//
// Returns nil on a sound mesh, or ErrIntegrity wrapped with the first
// violation found.
//
// Complexity: O(V + E + F).
func (m *Mesh) CheckIntegrity() error {
	// 1. Counters.
	nv, ne, nf := 0, 0, 0
	for v := range m.verts {
		if !m.verts[v].removed {
			nv++
		}
	}
	for e := range m.edgeDead {
		if !m.edgeDead[e] {
			ne++
		}
	}
	for f := range m.faces {
		if !m.faces[f].removed {
			nf++
		}
	}
	if nv != m.liveVerts || ne != m.liveEdges || nf != m.liveFaces {
		return fmt.Errorf("%w: counters (%d,%d,%d) disagree with tombstones (%d,%d,%d)",
			ErrIntegrity, m.liveVerts, m.liveEdges, m.liveFaces, nv, ne, nf)
	}
	if len(m.hes) != 2*len(m.edgeDead) {
		return fmt.Errorf("%w: %d halfedges for %d edge slots", ErrIntegrity, len(m.hes), len(m.edgeDead))
	}

	// 2. Halfedge links.
	for h := Halfedge(0); int(h) < len(m.hes); h++ {
		if m.edgeDead[h>>1] {
			continue
		}
		rec := m.hes[h]
		if !m.VertexLive(rec.origin) {
			return fmt.Errorf("%w: halfedge %d has dead origin %d", ErrIntegrity, h, rec.origin)
		}
		if !m.HalfedgeLive(rec.next) || !m.HalfedgeLive(rec.prev) {
			return fmt.Errorf("%w: halfedge %d has dead neighbors", ErrIntegrity, h)
		}
		if m.hes[rec.next].prev != h || m.hes[rec.prev].next != h {
			return fmt.Errorf("%w: halfedge %d loop links are not mutual", ErrIntegrity, h)
		}
		if m.hes[rec.next].face != rec.face {
			return fmt.Errorf("%w: halfedge %d and its next disagree on face", ErrIntegrity, h)
		}
		if m.hes[rec.next].origin != m.hes[h^1].origin {
			return fmt.Errorf("%w: halfedge %d next starts away from its target", ErrIntegrity, h)
		}
		if rec.face != NoFace && !m.FaceLive(rec.face) {
			return fmt.Errorf("%w: halfedge %d references dead face %d", ErrIntegrity, h, rec.face)
		}
	}

	// 3. Face loops.
	for f := Face(0); int(f) < len(m.faces); f++ {
		if m.faces[f].removed {
			continue
		}
		anchor := m.faces[f].he
		if !m.HalfedgeLive(anchor) || m.hes[anchor].face != f {
			return fmt.Errorf("%w: face %d anchor is dead or misassigned", ErrIntegrity, f)
		}
		a, b, c := anchor, m.hes[anchor].next, m.hes[m.hes[anchor].next].next
		if m.hes[c].next != a {
			return fmt.Errorf("%w: face %d loop is not a triangle", ErrIntegrity, f)
		}
		va, vb, vc := m.hes[a].origin, m.hes[b].origin, m.hes[c].origin
		if va == vb || vb == vc || vc == va {
			return fmt.Errorf("%w: face %d repeats corner vertices", ErrIntegrity, f)
		}
	}

	// 4. Vertex anchors and rotation orbits.
	outgoing := make(map[Vertex]int, m.liveVerts)
	for h := Halfedge(0); int(h) < len(m.hes); h++ {
		if !m.edgeDead[h>>1] {
			outgoing[m.hes[h].origin]++
		}
	}
	for v := Vertex(0); int(v) < len(m.verts); v++ {
		if m.verts[v].removed {
			if m.verts[v].out != NoHalfedge {
				return fmt.Errorf("%w: dead vertex %d keeps an anchor", ErrIntegrity, v)
			}
			if outgoing[v] != 0 {
				return fmt.Errorf("%w: dead vertex %d still has spokes", ErrIntegrity, v)
			}
			continue
		}
		start := m.verts[v].out
		if start == NoHalfedge {
			if outgoing[v] != 0 {
				return fmt.Errorf("%w: vertex %d has spokes but no anchor", ErrIntegrity, v)
			}
			continue
		}
		if !m.HalfedgeLive(start) || m.hes[start].origin != v {
			return fmt.Errorf("%w: vertex %d anchor is dead or misrooted", ErrIntegrity, v)
		}
		orbit := 0
		h := start
		for {
			orbit++
			if orbit > outgoing[v] {
				return fmt.Errorf("%w: vertex %d orbit exceeds its spoke count", ErrIntegrity, v)
			}
			h = m.hes[h^1].next
			if h == start {
				break
			}
		}
		if orbit != outgoing[v] {
			return fmt.Errorf("%w: vertex %d orbit covers %d of %d spokes", ErrIntegrity, v, orbit, outgoing[v])
		}
	}
	return nil
}
