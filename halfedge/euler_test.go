package halfedge_test

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmesh/halfedge"
)

// buildPillow returns two faces glued along all three edges.
func buildPillow(t *testing.T) *halfedge.Mesh {
	t.Helper()
	pts := []r3.Vector{{X: 0}, {X: 1}, {X: 0, Y: 1}}
	m, err := halfedge.FromSoup(pts, [][3]int{{0, 1, 2}, {2, 1, 0}})
	require.NoError(t, err)
	return m
}

// buildOpenTetra returns a tetrahedron missing the (0,1,3) face, so the
// edge (1,3) exists and flipping the (0,2) diagonal would duplicate it.
func buildOpenTetra(t *testing.T) *halfedge.Mesh {
	t.Helper()
	pts := []r3.Vector{{X: 0}, {X: 1}, {X: 0.5, Y: 1}, {X: 0.5, Y: 0.3, Z: 1}}
	m, err := halfedge.FromSoup(pts, [][3]int{{0, 1, 2}, {0, 2, 3}, {1, 3, 2}})
	require.NoError(t, err)
	return m
}

func faceSet(m *halfedge.Mesh, f halfedge.Face) map[halfedge.Vertex]bool {
	vs := m.FaceVertices(f)
	return map[halfedge.Vertex]bool{vs[0]: true, vs[1]: true, vs[2]: true}
}

func TestSatisfiesLinkCondition(t *testing.T) {
	quad := buildQuad(t)
	hex := buildHexFan(t)
	tetra := buildTetra(t)
	pillow := buildPillow(t)

	cases := []struct {
		name string
		mesh *halfedge.Mesh
		u, w halfedge.Vertex
		want bool
	}{
		{"interior spoke of a fan", hex, 0, 1, true},
		{"border edge of a quad", quad, 0, 1, true},
		{"diagonal joining two border vertices", quad, 0, 2, false},
		{"tetrahedron pocket", tetra, 0, 1, false},
		{"shared apex pillow", pillow, 0, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := tc.mesh.HalfedgeBetween(tc.u, tc.w)
			require.NotEqual(t, halfedge.NoHalfedge, h)
			assert.Equal(t, tc.want, tc.mesh.SatisfiesLinkCondition(tc.mesh.EdgeOf(h)))
		})
	}

	t.Run("dead edge", func(t *testing.T) {
		m := buildHexFan(t)
		e := m.EdgeOf(m.HalfedgeBetween(0, 1))
		_, err := m.CollapseEdge(e)
		require.NoError(t, err)
		assert.False(t, m.SatisfiesLinkCondition(e))
	})
}

func TestCollapseEdge_InteriorSpoke(t *testing.T) {
	m := buildHexFan(t)
	e := m.EdgeOf(m.HalfedgeBetween(0, 1))

	kept, err := m.CollapseEdge(e)
	require.NoError(t, err)

	assert.Equal(t, halfedge.Vertex(1), kept)
	assert.False(t, m.VertexLive(0))
	assert.False(t, m.EdgeLive(e))
	assert.Equal(t, 6, m.VertexCount())
	assert.Equal(t, 9, m.EdgeCount())
	assert.Equal(t, 4, m.FaceCount())
	assert.Equal(t, 5, m.Degree(kept))
	for _, f := range m.Faces() {
		assert.False(t, faceSet(m, f)[0], "face %d still references the dead vertex", f)
	}
	require.NoError(t, m.CheckIntegrity())
}

func TestCollapseEdge_BorderEdge(t *testing.T) {
	m := buildQuad(t)
	e := m.EdgeOf(m.HalfedgeBetween(0, 1))

	kept, err := m.CollapseEdge(e)
	require.NoError(t, err)

	assert.Equal(t, halfedge.Vertex(1), kept)
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 3, m.EdgeCount())
	assert.Equal(t, 1, m.FaceCount())
	f := m.Faces()[0]
	assert.Equal(t, map[halfedge.Vertex]bool{1: true, 2: true, 3: true}, faceSet(m, f))
	require.NoError(t, m.CheckIntegrity())
}

func TestCollapseEdge_KeepsTargetPosition(t *testing.T) {
	m := buildHexFan(t)
	e := m.EdgeOf(m.HalfedgeBetween(0, 1))
	before := m.Point(1)

	kept, err := m.CollapseEdge(e)
	require.NoError(t, err)
	assert.Equal(t, before, m.Point(kept))
}

func TestCollapseEdge_Rejections(t *testing.T) {
	t.Run("link condition", func(t *testing.T) {
		m := buildQuad(t)
		e := m.EdgeOf(m.HalfedgeBetween(0, 2))
		_, err := m.CollapseEdge(e)
		require.ErrorIs(t, err, halfedge.ErrLinkCondition)
		require.NoError(t, m.CheckIntegrity())
		assert.Equal(t, 2, m.FaceCount())
	})

	t.Run("dead handle", func(t *testing.T) {
		m := buildHexFan(t)
		e := m.EdgeOf(m.HalfedgeBetween(0, 1))
		_, err := m.CollapseEdge(e)
		require.NoError(t, err)
		_, err = m.CollapseEdge(e)
		require.ErrorIs(t, err, halfedge.ErrDeadHandle)
	})
}

func TestCollapseEdge_LoneTriangleLeavesDanglingEdge(t *testing.T) {
	pts := []r3.Vector{{X: 0}, {X: 1}, {X: 0, Y: 1}}
	m, err := halfedge.FromSoup(pts, [][3]int{{0, 1, 2}})
	require.NoError(t, err)

	kept, err := m.CollapseEdge(m.EdgeOf(m.HalfedgeBetween(0, 1)))
	require.NoError(t, err)

	assert.Equal(t, halfedge.Vertex(1), kept)
	assert.Equal(t, 2, m.VertexCount())
	assert.Equal(t, 1, m.EdgeCount())
	assert.Equal(t, 0, m.FaceCount())
	rest := m.Edges()[0]
	assert.True(t, m.IsBorderEdge(rest))
	require.NoError(t, m.CheckIntegrity())
}

func TestFlipEdge_QuadDiagonal(t *testing.T) {
	m := buildQuad(t)
	h := m.HalfedgeBetween(0, 2)
	e := m.EdgeOf(h)

	require.NoError(t, m.FlipEdge(h))

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 5, m.EdgeCount())
	assert.Equal(t, 2, m.FaceCount())

	// The diagonal now joins the old apexes and kept its edge index.
	assert.Equal(t, halfedge.NoHalfedge, m.HalfedgeBetween(0, 2))
	nh := m.HalfedgeBetween(1, 3)
	require.NotEqual(t, halfedge.NoHalfedge, nh)
	assert.Equal(t, e, m.EdgeOf(nh))

	got := []map[halfedge.Vertex]bool{}
	for _, f := range m.Faces() {
		got = append(got, faceSet(m, f))
	}
	assert.Contains(t, got, map[halfedge.Vertex]bool{0: true, 1: true, 3: true})
	assert.Contains(t, got, map[halfedge.Vertex]bool{1: true, 2: true, 3: true})
	require.NoError(t, m.CheckIntegrity())
}

func TestFlipEdge_Rejections(t *testing.T) {
	t.Run("border edge", func(t *testing.T) {
		m := buildQuad(t)
		err := m.FlipEdge(m.HalfedgeBetween(0, 1))
		require.ErrorIs(t, err, halfedge.ErrBorderEdge)
	})

	t.Run("duplicate diagonal", func(t *testing.T) {
		m := buildOpenTetra(t)
		err := m.FlipEdge(m.HalfedgeBetween(0, 2))
		require.ErrorIs(t, err, halfedge.ErrEdgeExists)
		assert.Equal(t, 3, m.FaceCount())
		require.NoError(t, m.CheckIntegrity())
	})

	t.Run("shared apex", func(t *testing.T) {
		m := buildPillow(t)
		err := m.FlipEdge(m.HalfedgeBetween(0, 1))
		require.ErrorIs(t, err, halfedge.ErrEdgeExists)
	})

	t.Run("dead handle", func(t *testing.T) {
		m := buildHexFan(t)
		h := m.HalfedgeBetween(0, 1)
		_, err := m.CollapseEdge(m.EdgeOf(h))
		require.NoError(t, err)
		require.ErrorIs(t, m.FlipEdge(h), halfedge.ErrDeadHandle)
	})
}

func TestRemoveFace_InteriorBecomesHole(t *testing.T) {
	m := buildTetra(t)
	f := m.Faces()[0]
	hs := m.FaceHalfedges(f)

	require.NoError(t, m.RemoveFace(hs[0]))

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 6, m.EdgeCount())
	assert.Equal(t, 3, m.FaceCount())
	for _, h := range hs {
		assert.True(t, m.IsBorderHalfedge(h))
		assert.True(t, m.IsBorderEdge(m.EdgeOf(h)))
	}
	require.NoError(t, m.CheckIntegrity())
}

func TestRemoveFace_OneBorderSide(t *testing.T) {
	m := buildHexFan(t)
	rim := m.EdgeOf(m.HalfedgeBetween(1, 2))
	f := m.FaceOf(m.InteriorHalfedge(rim))

	require.NoError(t, m.RemoveFace(m.HalfedgeOf(f)))

	assert.Equal(t, 7, m.VertexCount())
	assert.Equal(t, 11, m.EdgeCount())
	assert.Equal(t, 5, m.FaceCount())
	assert.False(t, m.EdgeLive(rim))
	assert.True(t, m.IsBorderEdge(m.EdgeOf(m.HalfedgeBetween(0, 1))))
	assert.True(t, m.IsBorderEdge(m.EdgeOf(m.HalfedgeBetween(0, 2))))
	assert.True(t, m.IsBorderVertex(0))
	require.NoError(t, m.CheckIntegrity())
}

func TestRemoveFace_CornerSliver(t *testing.T) {
	m := buildQuad(t)
	f := halfedge.Face(0) // (0,1,2): two border sides, shared corner at 1

	require.NoError(t, m.RemoveFace(m.HalfedgeOf(f)))

	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 3, m.EdgeCount())
	assert.Equal(t, 1, m.FaceCount())
	assert.False(t, m.VertexLive(1))
	rest := m.Faces()[0]
	assert.Equal(t, map[halfedge.Vertex]bool{0: true, 2: true, 3: true}, faceSet(m, rest))
	for _, e := range m.Edges() {
		assert.True(t, m.IsBorderEdge(e))
	}
	require.NoError(t, m.CheckIntegrity())
}

func TestRemoveFace_LastTriangle(t *testing.T) {
	pts := []r3.Vector{{X: 0}, {X: 1}, {X: 0, Y: 1}}
	m, err := halfedge.FromSoup(pts, [][3]int{{0, 1, 2}})
	require.NoError(t, err)

	require.NoError(t, m.RemoveFace(m.HalfedgeOf(0)))

	assert.Equal(t, 0, m.VertexCount())
	assert.Equal(t, 0, m.EdgeCount())
	assert.Equal(t, 0, m.FaceCount())
	require.NoError(t, m.CheckIntegrity())
}

func TestRemoveFace_Rejections(t *testing.T) {
	m := buildQuad(t)

	var border halfedge.Halfedge = halfedge.NoHalfedge
	for h := halfedge.Halfedge(0); int(h) < m.HalfedgeCount(); h++ {
		if m.IsBorderHalfedge(h) {
			border = h
			break
		}
	}
	require.NotEqual(t, halfedge.NoHalfedge, border)
	require.ErrorIs(t, m.RemoveFace(border), halfedge.ErrNoIncidentFace)

	f := halfedge.Face(0)
	h := m.HalfedgeOf(f)
	require.NoError(t, m.RemoveFace(h))
	require.ErrorIs(t, m.RemoveFace(h), halfedge.ErrDeadHandle)
}

func TestEulerOps_SequenceKeepsIntegrity(t *testing.T) {
	m := buildHexFan(t)

	require.NoError(t, m.FlipEdge(m.HalfedgeBetween(0, 1)))
	require.NoError(t, m.CheckIntegrity())

	_, err := m.CollapseEdge(m.EdgeOf(m.HalfedgeBetween(0, 3)))
	require.NoError(t, err)
	require.NoError(t, m.CheckIntegrity())

	f := m.Faces()[0]
	require.NoError(t, m.RemoveFace(m.HalfedgeOf(f)))
	require.NoError(t, m.CheckIntegrity())
}
