// This file implements the Euler operators: SatisfiesLinkCondition,
// CollapseEdge, FlipEdge and RemoveFace. Each operator either leaves the
// mesh untouched and returns an error, or applies the full edit and keeps
// every structural invariant (loop closure, twin pairing, anchor liveness).
package halfedge

// SatisfiesLinkCondition reports whether collapsing e keeps the mesh an
// edge-manifold triangle surface. It is the standard link condition for
// triangulated 2-manifolds:
//
//  1. the two triangles incident to e must not share their apex vertex;
//  2. every vertex adjacent to both endpoints of e must be one of the apexes;
//  3. an interior edge joining two border vertices must not collapse,
//     as that would pinch the surface along the border;
//  4. if both apexes exist and are themselves joined by an edge whose two
//     triangles are spanned by the endpoints of e, the neighborhood is a
//     closed tetrahedron pocket and collapsing would flatten it.
//
// A dead handle returns false.
//
// Complexity: O(deg(v0) + deg(v1)).
func (m *Mesh) SatisfiesLinkCondition(e Edge) bool {
	if !m.EdgeLive(e) {
		return false
	}
	h := Halfedge(e << 1)
	o := h ^ 1
	v0, v1 := m.hes[h].origin, m.hes[o].origin

	vL, vR := NoVertex, NoVertex
	if m.hes[h].face != NoFace {
		vL = m.Target(m.hes[h].next)
	}
	if m.hes[o].face != NoFace {
		vR = m.Target(m.hes[o].next)
	}

	// 1. Shared apex means two triangles glued along two edges.
	if vL != NoVertex && vL == vR {
		return false
	}

	// 2. One-ring intersection of the endpoints.
	seen := make(map[Vertex]bool, 8)
	for _, s := range m.Outgoing(v0) {
		seen[m.hes[s^1].origin] = true
	}
	for _, s := range m.Outgoing(v1) {
		w := m.hes[s^1].origin
		if w != vL && w != vR && seen[w] {
			return false
		}
	}

	// 3. Border pinch.
	if !m.IsBorderEdge(e) && m.IsBorderVertex(v0) && m.IsBorderVertex(v1) {
		return false
	}

	// 4. Tetrahedron pocket.
	if vL != NoVertex && vR != NoVertex {
		if lr := m.HalfedgeBetween(vL, vR); lr != NoHalfedge {
			t1, t2 := NoVertex, NoVertex
			if m.hes[lr].face != NoFace {
				t1 = m.Target(m.hes[lr].next)
			}
			if m.hes[lr^1].face != NoFace {
				t2 = m.Target(m.hes[lr^1].next)
			}
			if (t1 == v0 && t2 == v1) || (t1 == v1 && t2 == v0) {
				return false
			}
		}
	}
	return true
}

// CollapseEdge contracts e into its target vertex and returns the vertex
// that survives. The source vertex of the collapsed halfedge is removed,
// the incident faces disappear, and on each non-border side the edge
// preceding the collapsed halfedge is fused away while its successor edge
// keeps the connection to the apex. The surviving vertex keeps its position.
//
// Contracts:
//   - e must be live, must have at least one incident face, and must
//     satisfy the link condition;
//   - handles to e and to the fused-away edges become dead, all other
//     handles stay valid.
//
// Errors: ErrDeadHandle, ErrBorderEdge (no incident face at all),
// ErrLinkCondition.
//
// Complexity: O(deg(source vertex)).
func (m *Mesh) CollapseEdge(e Edge) (Vertex, error) {
	if !m.EdgeLive(e) {
		return NoVertex, ErrDeadHandle
	}
	h := m.InteriorHalfedge(e)
	if h == NoHalfedge {
		return NoVertex, ErrBorderEdge
	}
	if !m.SatisfiesLinkCondition(e) {
		return NoVertex, ErrLinkCondition
	}

	o := h ^ 1
	v0, v1 := m.hes[h].origin, m.hes[o].origin

	// 1. Collect the spokes of the dying vertex while the ring is intact.
	spokes := m.Outgoing(v0)

	// 2. Fuse the side of h: the apex-to-source edge (prev of h) dies and
	//    the target-to-apex halfedge takes over its twin's slot.
	a1 := m.hes[h].next // v1 -> vL
	a2 := m.hes[h].prev // vL -> v0
	ta2 := a2 ^ 1       // v0 -> vL, slot in the neighboring loop
	vL := m.hes[a2].origin
	m.spliceOver(a1, ta2)

	var vR Vertex = NoVertex
	var b1, b2 Halfedge = NoHalfedge, NoHalfedge
	if m.hes[o].face != NoFace {
		// 3a. Interior twin side: same fusion seen from o.
		b1 = m.hes[o].next // v0 -> vR
		b2 = m.hes[o].prev // vR -> v1
		tb2 := b2 ^ 1      // v1 -> vR
		vR = m.hes[b2].origin
		m.spliceOver(b1, tb2)
	} else {
		// 3b. Border twin side: excise o from its border loop. When the
		//     loop ran ... -> o -> ta2 -> ..., the fusion above already
		//     redirected o's successor link to a1, so reading the current
		//     links keeps the loop closed.
		po, no := m.hes[o].prev, m.hes[o].next
		m.hes[po].next = no
		m.hes[no].prev = po
	}

	// 4. Tombstones. The faces of h and o die with the fused edges.
	if f := m.hes[h].face; f != NoFace {
		m.killFace(f)
	}
	if f := m.hes[o].face; f != NoFace {
		m.killFace(f)
	}
	m.killEdge(e)
	m.killEdge(Edge(a2 >> 1))
	if b2 != NoHalfedge {
		m.killEdge(Edge(b2 >> 1))
	}

	// 5. Reroot the surviving spokes of v0 at v1 and drop v0.
	for _, s := range spokes {
		if !m.edgeDead[s>>1] {
			m.hes[s].origin = v1
		}
	}
	m.killVertex(v0)

	// 6. Anchor repair for the vertices that lost a halfedge.
	if out := m.verts[v1].out; out == o || (b2 != NoHalfedge && out == b2^1) {
		m.verts[v1].out = a1
	}
	if m.verts[vL].out == a2 {
		m.verts[vL].out = a1 ^ 1
	}
	if vR != NoVertex && m.verts[vR].out == b2 {
		m.verts[vR].out = b1 ^ 1
	}
	return v1, nil
}

// spliceOver moves keep into the loop slot occupied by gone: keep inherits
// gone's neighbors, face and, when gone anchored that face, the anchor.
// gone's own links are left behind; its pair is tombstoned by the caller.
func (m *Mesh) spliceOver(keep, gone Halfedge) {
	n, p := m.hes[gone].next, m.hes[gone].prev
	m.hes[keep].next = n
	m.hes[n].prev = keep
	m.hes[keep].prev = p
	m.hes[p].next = keep
	f := m.hes[gone].face
	m.hes[keep].face = f
	if f != NoFace && m.faces[f].he == gone {
		m.faces[f].he = keep
	}
}

// FlipEdge rotates the interior edge of h inside its two incident triangles:
// the shared diagonal moves from (source, target) to the two apex vertices.
// The edge keeps its index, both faces keep theirs, and no element is
// created or removed.
//
// Contracts:
//   - h must be live and both sides of its edge must have faces;
//   - the apex-to-apex edge must not already exist.
//
// Errors: ErrDeadHandle, ErrBorderEdge, ErrEdgeExists.
//
// Complexity: O(deg(apex)) for the duplicate-edge probe, O(1) surgery.
func (m *Mesh) FlipEdge(h Halfedge) error {
	if !m.HalfedgeLive(h) {
		return ErrDeadHandle
	}
	o := h ^ 1
	fA, fB := m.hes[h].face, m.hes[o].face
	if fA == NoFace || fB == NoFace {
		return ErrBorderEdge
	}

	a1 := m.hes[h].next // v1 -> vL
	a2 := m.hes[h].prev // vL -> v0
	b1 := m.hes[o].next // v0 -> vR
	b2 := m.hes[o].prev // vR -> v1
	v0 := m.hes[h].origin
	v1 := m.hes[o].origin
	vL := m.hes[a2].origin
	vR := m.hes[b2].origin
	// A shared apex would turn the diagonal into a self-loop.
	if vL == vR || m.HalfedgeBetween(vL, vR) != NoHalfedge {
		return ErrEdgeExists
	}

	// Rewire: h becomes vR->vL in {h, a2, b1}, o becomes vL->vR in {o, b2, a1}.
	m.hes[h].origin = vR
	m.hes[o].origin = vL

	m.hes[h].next = a2
	m.hes[a2].prev = h
	m.hes[a2].next = b1
	m.hes[b1].prev = a2
	m.hes[b1].next = h
	m.hes[h].prev = b1

	m.hes[o].next = b2
	m.hes[b2].prev = o
	m.hes[b2].next = a1
	m.hes[a1].prev = b2
	m.hes[a1].next = o
	m.hes[o].prev = a1

	m.hes[b1].face = fA
	m.hes[a1].face = fB
	m.faces[fA].he = h
	m.faces[fB].he = o

	if m.verts[v0].out == h {
		m.verts[v0].out = b1
	}
	if m.verts[v1].out == o {
		m.verts[v1].out = a1
	}
	return nil
}

// RemoveFace deletes the face incident to h. Sides whose twin is a border
// halfedge lose their edge entirely, the remaining sides become border
// halfedges, and the surrounding border loops are restitched. A corner
// vertex left without any edge is removed.
//
// Contracts:
//   - h must be live and have an incident face.
//
// Errors: ErrDeadHandle, ErrNoIncidentFace.
//
// Complexity: O(deg) over the face's corner vertices.
func (m *Mesh) RemoveFace(h Halfedge) error {
	if !m.HalfedgeLive(h) {
		return ErrDeadHandle
	}
	f := m.hes[h].face
	if f == NoFace {
		return ErrNoIncidentFace
	}

	// 1. Gather the loop and the outer context before touching anything.
	//    Side i runs vs[i] -> vs[i+1]; ts[i] is its twin. On dying sides,
	//    xs[i]/ys[i] are the border halfedges around ts[i] in its loop.
	var hs, ts, xs, ys [3]Halfedge
	var vs [3]Vertex
	var border [3]bool
	var deg [3]int
	hs[0] = h
	hs[1] = m.hes[h].next
	hs[2] = m.hes[hs[1]].next
	for i := 0; i < 3; i++ {
		ts[i] = hs[i] ^ 1
		vs[i] = m.hes[hs[i]].origin
		border[i] = m.hes[ts[i]].face == NoFace
		if border[i] {
			xs[i] = m.hes[ts[i]].prev
			ys[i] = m.hes[ts[i]].next
		}
		deg[i] = m.Degree(vs[i])
	}

	// 2. Surviving sides turn into border halfedges.
	for i := 0; i < 3; i++ {
		if !border[i] {
			m.hes[hs[i]].face = NoFace
		}
	}

	// 3. Restitch the border at each corner. Corner i joins side p = i-1
	//    (ending at vs[i]) with side i (starting at vs[i]).
	for i := 0; i < 3; i++ {
		p := (i + 2) % 3
		switch {
		case !border[p] && !border[i]:
			// Both sides survive; their face loop link already matches.
		case !border[p] && border[i]:
			m.hes[hs[p]].next = ys[i]
			m.hes[ys[i]].prev = hs[p]
		case border[p] && !border[i]:
			m.hes[xs[p]].next = hs[i]
			m.hes[hs[i]].prev = xs[p]
		default:
			// Both sides die. A corner of degree two loses its vertex;
			// otherwise the vertex keeps other wedges and the border
			// detours around them.
			if deg[i] == 2 {
				m.killVertex(vs[i])
				continue
			}
			m.hes[xs[p]].next = ys[i]
			m.hes[ys[i]].prev = xs[p]
		}
	}

	// 4. Tombstones and anchor repair.
	for i := 0; i < 3; i++ {
		if border[i] {
			m.killEdge(Edge(hs[i] >> 1))
		}
	}
	m.killFace(f)
	for i := 0; i < 3; i++ {
		p := (i + 2) % 3
		if m.verts[vs[i]].removed {
			continue
		}
		if out := m.verts[vs[i]].out; out == hs[i] && border[i] || out == ts[p] && border[p] {
			if !border[i] {
				m.verts[vs[i]].out = hs[i]
			} else {
				m.verts[vs[i]].out = ys[i]
			}
		}
	}
	return nil
}

// killEdge tombstones an edge pair.
func (m *Mesh) killEdge(e Edge) {
	m.edgeDead[e] = true
	m.liveEdges--
}

// killFace tombstones a face slot.
func (m *Mesh) killFace(f Face) {
	m.faces[f].removed = true
	m.liveFaces--
}

// killVertex tombstones a vertex slot.
func (m *Mesh) killVertex(v Vertex) {
	m.verts[v].removed = true
	m.verts[v].out = NoHalfedge
	m.liveVerts--
}
