package shape

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/lvlmesh/halfedge"
)

// SquaredEdgeLength returns the squared Euclidean length of edge e.
// The edge must be live.
func SquaredEdgeLength(m *halfedge.Mesh, e halfedge.Edge) float64 {
	h := m.HalfedgeOfEdge(e)
	d := m.Point(m.Target(h)).Sub(m.Point(m.Origin(h)))
	return d.Norm2()
}

// EdgeLength returns the Euclidean length of edge e. The edge must be live.
func EdgeLength(m *halfedge.Mesh, e halfedge.Edge) float64 {
	return math.Sqrt(SquaredEdgeLength(m, e))
}

// CornerCosine returns the cosine of the interior angle at the target
// vertex of h, between h and Next(h). It is meant for halfedges bounding a
// face; on a border halfedge it measures the border loop's turn instead.
// If either incident edge has zero length the corner has no angle and the
// result is 1 (never classified as wide).
func CornerCosine(m *halfedge.Mesh, h halfedge.Halfedge) float64 {
	w := m.Point(m.Target(h))
	a := m.Point(m.Origin(h)).Sub(w)
	b := m.Point(m.Target(m.Next(h))).Sub(w)
	na, nb := a.Norm2(), b.Norm2()
	if na == 0 || nb == 0 {
		return 1
	}
	return a.Dot(b) / math.Sqrt(na*nb)
}

// FaceArea returns the area of face f. The face must be live.
func FaceArea(m *halfedge.Mesh, f halfedge.Face) float64 {
	vs := m.FaceVertices(f)
	ab := m.Point(vs[1]).Sub(m.Point(vs[0]))
	ac := m.Point(vs[2]).Sub(m.Point(vs[0]))
	return ab.Cross(ac).Norm() / 2
}

// FaceNormal returns the unit normal of face f, oriented by the face's
// winding. A face with zero area yields the zero vector. The face must be
// live.
func FaceNormal(m *halfedge.Mesh, f halfedge.Face) r3.Vector {
	vs := m.FaceVertices(f)
	ab := m.Point(vs[1]).Sub(m.Point(vs[0]))
	ac := m.Point(vs[2]).Sub(m.Point(vs[0]))
	return ab.Cross(ac).Normalize()
}
