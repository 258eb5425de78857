package shape_test

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmesh/halfedge"
	"github.com/katalvlaran/lvlmesh/shape"
)

func TestEdgeLength(t *testing.T) {
	m, _ := buildTriangle(t,
		r3.Vector{X: 0, Y: 0, Z: 0},
		r3.Vector{X: 3, Y: 4, Z: 0},
		r3.Vector{X: 0, Y: 4, Z: 0},
	)

	h := m.HalfedgeBetween(0, 1)
	require.NotEqual(t, halfedge.NoHalfedge, h)
	e := m.EdgeOf(h)

	assert.InDelta(t, 25.0, shape.SquaredEdgeLength(m, e), 1e-12)
	assert.InDelta(t, 5.0, shape.EdgeLength(m, e), 1e-12)
}

func TestCornerCosine_RightTriangle(t *testing.T) {
	// Right angle at vertex 0, 45° at vertices 1 and 2.
	m, f := buildTriangle(t,
		r3.Vector{X: 0, Y: 0, Z: 0},
		r3.Vector{X: 1, Y: 0, Z: 0},
		r3.Vector{X: 0, Y: 1, Z: 0},
	)

	for _, h := range m.FaceHalfedges(f) {
		cos := shape.CornerCosine(m, h)
		if m.Target(h) == 0 {
			assert.InDelta(t, 0, cos, 1e-12)
		} else {
			assert.InDelta(t, 0.7071068, cos, 1e-6)
		}
	}
}

func TestCornerCosine_ZeroLengthEdge(t *testing.T) {
	// Vertices 0 and 1 coincide; every corner touching the zero edge
	// reports cosine 1 instead of NaN.
	m, f := buildTriangle(t,
		r3.Vector{X: 0, Y: 0, Z: 0},
		r3.Vector{X: 0, Y: 0, Z: 0},
		r3.Vector{X: 1, Y: 0, Z: 0},
	)

	for _, h := range m.FaceHalfedges(f) {
		if m.Target(h) == 0 || m.Target(h) == 1 {
			assert.Equal(t, 1.0, shape.CornerCosine(m, h))
		}
	}
}

func TestFaceAreaAndNormal(t *testing.T) {
	m, f := buildTriangle(t,
		r3.Vector{X: 0, Y: 0, Z: 0},
		r3.Vector{X: 1, Y: 0, Z: 0},
		r3.Vector{X: 0, Y: 1, Z: 0},
	)

	assert.InDelta(t, 0.5, shape.FaceArea(m, f), 1e-12)

	n := shape.FaceNormal(m, f)
	assert.InDelta(t, 0, n.X, 1e-12)
	assert.InDelta(t, 0, n.Y, 1e-12)
	assert.InDelta(t, 1, n.Z, 1e-12)
}

func TestFaceNormal_WindingFlipsSign(t *testing.T) {
	pts := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	m, err := halfedge.FromSoup(pts, [][3]int{{0, 2, 1}})
	require.NoError(t, err)

	n := shape.FaceNormal(m, m.Faces()[0])
	assert.InDelta(t, -1, n.Z, 1e-12)
}

func TestFaceNormal_DegenerateIsZero(t *testing.T) {
	m, f := buildTriangle(t,
		r3.Vector{X: 0, Y: 0, Z: 0},
		r3.Vector{X: 1, Y: 0, Z: 0},
		r3.Vector{X: 2, Y: 0, Z: 0},
	)

	assert.Equal(t, r3.Vector{}, shape.FaceNormal(m, f))
	assert.Equal(t, 0.0, shape.FaceArea(m, f))
}
