// This file provides the read-only navigation API: element counts, liveness
// probes, loop and ring traversal, and geometric point access.
package halfedge

import "github.com/golang/geo/r3"

// VertexCount returns the number of live vertices.
func (m *Mesh) VertexCount() int { return m.liveVerts }

// EdgeCount returns the number of live edges.
func (m *Mesh) EdgeCount() int { return m.liveEdges }

// FaceCount returns the number of live faces.
func (m *Mesh) FaceCount() int { return m.liveFaces }

// HalfedgeCount returns the number of live halfedges, twice EdgeCount.
func (m *Mesh) HalfedgeCount() int { return 2 * m.liveEdges }

// VertexLive reports whether v indexes a live vertex.
func (m *Mesh) VertexLive(v Vertex) bool {
	return v >= 0 && int(v) < len(m.verts) && !m.verts[v].removed
}

// EdgeLive reports whether e indexes a live edge.
func (m *Mesh) EdgeLive(e Edge) bool {
	return e >= 0 && int(e) < len(m.edgeDead) && !m.edgeDead[e]
}

// HalfedgeLive reports whether h indexes a halfedge of a live edge.
func (m *Mesh) HalfedgeLive(h Halfedge) bool {
	return h >= 0 && int(h) < len(m.hes) && !m.edgeDead[h>>1]
}

// FaceLive reports whether f indexes a live face.
func (m *Mesh) FaceLive(f Face) bool {
	return f >= 0 && int(f) < len(m.faces) && !m.faces[f].removed
}

// Vertices returns the live vertex indices in ascending order.
func (m *Mesh) Vertices() []Vertex {
	out := make([]Vertex, 0, m.liveVerts)
	for v := range m.verts {
		if !m.verts[v].removed {
			out = append(out, Vertex(v))
		}
	}
	return out
}

// Edges returns the live edge indices in ascending order.
func (m *Mesh) Edges() []Edge {
	out := make([]Edge, 0, m.liveEdges)
	for e := range m.edgeDead {
		if !m.edgeDead[e] {
			out = append(out, Edge(e))
		}
	}
	return out
}

// Faces returns the live face indices in ascending order.
func (m *Mesh) Faces() []Face {
	out := make([]Face, 0, m.liveFaces)
	for f := range m.faces {
		if !m.faces[f].removed {
			out = append(out, Face(f))
		}
	}
	return out
}

// Point returns the position of v.
func (m *Mesh) Point(v Vertex) r3.Vector { return m.verts[v].point }

// SetPoint moves v to p. Connectivity is unaffected.
func (m *Mesh) SetPoint(v Vertex, p r3.Vector) { m.verts[v].point = p }

// Twin returns the other halfedge of h's pair.
func (m *Mesh) Twin(h Halfedge) Halfedge { return h ^ 1 }

// Next returns the halfedge after h on its face or border loop.
func (m *Mesh) Next(h Halfedge) Halfedge { return m.hes[h].next }

// Prev returns the halfedge before h on its face or border loop.
func (m *Mesh) Prev(h Halfedge) Halfedge { return m.hes[h].prev }

// Origin returns the vertex h points away from.
func (m *Mesh) Origin(h Halfedge) Vertex { return m.hes[h].origin }

// Target returns the vertex h points at.
func (m *Mesh) Target(h Halfedge) Vertex { return m.hes[h^1].origin }

// FaceOf returns the face incident to h, or NoFace for a border halfedge.
func (m *Mesh) FaceOf(h Halfedge) Face { return m.hes[h].face }

// EdgeOf returns the edge h belongs to.
func (m *Mesh) EdgeOf(h Halfedge) Edge { return Edge(h >> 1) }

// HalfedgeOfEdge returns the even halfedge of e.
func (m *Mesh) HalfedgeOfEdge(e Edge) Halfedge { return Halfedge(e << 1) }

// InteriorHalfedge returns a halfedge of e that has an incident face,
// preferring the even one, or NoHalfedge if both sides are border.
func (m *Mesh) InteriorHalfedge(e Edge) Halfedge {
	h := Halfedge(e << 1)
	if m.hes[h].face != NoFace {
		return h
	}
	if m.hes[h^1].face != NoFace {
		return h ^ 1
	}
	return NoHalfedge
}

// HalfedgeOf returns the anchor halfedge of f.
func (m *Mesh) HalfedgeOf(f Face) Halfedge { return m.faces[f].he }

// OutgoingOf returns one halfedge leaving v, or NoHalfedge if v is isolated.
func (m *Mesh) OutgoingOf(v Vertex) Halfedge { return m.verts[v].out }

// IsBorderHalfedge reports whether h bounds a hole instead of a face.
func (m *Mesh) IsBorderHalfedge(h Halfedge) bool { return m.hes[h].face == NoFace }

// IsBorderEdge reports whether either halfedge of e bounds a hole.
func (m *Mesh) IsBorderEdge(e Edge) bool {
	h := Halfedge(e << 1)
	return m.hes[h].face == NoFace || m.hes[h^1].face == NoFace
}

// IsBorderVertex reports whether any halfedge leaving v bounds a hole.
func (m *Mesh) IsBorderVertex(v Vertex) bool {
	start := m.verts[v].out
	if start == NoHalfedge {
		return false
	}
	h := start
	for {
		if m.hes[h].face == NoFace || m.hes[h^1].face == NoFace {
			return true
		}
		h = m.hes[h^1].next
		if h == start {
			return false
		}
	}
}

// Outgoing returns every halfedge leaving v, in rotation order starting from
// its anchor. Isolated vertices yield nil.
func (m *Mesh) Outgoing(v Vertex) []Halfedge {
	start := m.verts[v].out
	if start == NoHalfedge {
		return nil
	}
	var out []Halfedge
	h := start
	for {
		out = append(out, h)
		h = m.hes[h^1].next
		if h == start {
			return out
		}
	}
}

// Degree returns the number of edges incident to v.
func (m *Mesh) Degree(v Vertex) int {
	start := m.verts[v].out
	if start == NoHalfedge {
		return 0
	}
	deg := 0
	h := start
	for {
		deg++
		h = m.hes[h^1].next
		if h == start {
			return deg
		}
	}
}

// HalfedgeBetween returns the halfedge running u->w, or NoHalfedge if the
// vertices are not adjacent.
func (m *Mesh) HalfedgeBetween(u, w Vertex) Halfedge {
	start := m.verts[u].out
	if start == NoHalfedge {
		return NoHalfedge
	}
	h := start
	for {
		if m.hes[h^1].origin == w {
			return h
		}
		h = m.hes[h^1].next
		if h == start {
			return NoHalfedge
		}
	}
}

// FaceHalfedges returns the three halfedges of f in loop order, starting
// from its anchor.
func (m *Mesh) FaceHalfedges(f Face) [3]Halfedge {
	h := m.faces[f].he
	n := m.hes[h].next
	return [3]Halfedge{h, n, m.hes[n].next}
}

// FaceVertices returns the three corners of f in loop order.
func (m *Mesh) FaceVertices(f Face) [3]Vertex {
	hs := m.FaceHalfedges(f)
	return [3]Vertex{m.hes[hs[0]].origin, m.hes[hs[1]].origin, m.hes[hs[2]].origin}
}

// FacesAround returns the live faces incident to v, in rotation order.
func (m *Mesh) FacesAround(v Vertex) []Face {
	start := m.verts[v].out
	if start == NoHalfedge {
		return nil
	}
	var out []Face
	h := start
	for {
		if f := m.hes[h].face; f != NoFace {
			out = append(out, f)
		}
		h = m.hes[h^1].next
		if h == start {
			return out
		}
	}
}
