package normals_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmesh/normals"
)

func TestEstimate_ArgumentErrors(t *testing.T) {
	three := []r3.Vector{{X: 1}, {Y: 1}, {Z: 1}}

	tests := []struct {
		name string
		pts  []r3.Vector
		opts normals.EstimateOptions
		want error
	}{
		{"k too small", three, normals.EstimateOptions{K: 1}, normals.ErrBadK},
		{"no points", nil, normals.DefaultEstimateOptions(), normals.ErrNoPoints},
		{"too few points", three[:2], normals.DefaultEstimateOptions(), normals.ErrTooFewPoints},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normals.Estimate(tt.pts, tt.opts)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEstimate_Plane(t *testing.T) {
	pts := planeGrid(5, 5, 0.25)

	ns, err := normals.Estimate(pts, normals.DefaultEstimateOptions())
	require.NoError(t, err)
	require.Len(t, ns, len(pts))
	for i, n := range ns {
		assert.InDelta(t, 1, n.Norm(), 1e-9, "normal %d is not unit", i)
		assert.InDelta(t, 1, math.Abs(n.Z), 1e-9, "normal %d is not plane-perpendicular", i)
		assert.InDelta(t, 0, n.X, 1e-9)
		assert.InDelta(t, 0, n.Y, 1e-9)
	}
}

func TestEstimate_Sphere(t *testing.T) {
	deg := math.Pi / 180
	pts := spherePoints([]float64{-60 * deg, -30 * deg, 0, 30 * deg, 60 * deg}, 12)

	ns, err := normals.Estimate(pts, normals.EstimateOptions{K: 6})
	require.NoError(t, err)
	for i, n := range ns {
		// On the unit sphere the point doubles as its own radial direction.
		assert.GreaterOrEqual(t, math.Abs(n.Dot(pts[i])), 0.9, "normal %d is far from radial", i)
	}
}

func TestEstimate_ThenOrient(t *testing.T) {
	pts := planeGrid(5, 5, 0.25)

	ns, err := normals.Estimate(pts, normals.DefaultEstimateOptions())
	require.NoError(t, err)

	robust, err := normals.Orient(pts, ns, normals.DefaultOrientOptions())
	require.NoError(t, err)
	assert.Equal(t, len(pts), robust)
	for i, n := range ns {
		assert.Greater(t, n.Z, 0.999, "normal %d ended up pointing down", i)
	}
}
