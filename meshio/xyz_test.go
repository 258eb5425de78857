package meshio_test

import (
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmesh/meshio"
)

func TestReadXYZ_PointsOnly(t *testing.T) {
	const src = `# scanner dump
0 0 0
1 0 0

0 1 0   # trailing comment
`
	pts, ns, err := meshio.ReadXYZ(strings.NewReader(src))
	require.NoError(t, err)
	assert.Nil(t, ns)
	assert.Equal(t, []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}, pts)
}

func TestReadXYZ_WithNormals(t *testing.T) {
	const src = "0 0 0 0 0 1\n1 0 0 0 0 -1\n"
	pts, ns, err := meshio.ReadXYZ(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, pts, 2)
	require.Len(t, ns, 2)
	assert.Equal(t, r3.Vector{X: 1, Y: 0, Z: 0}, pts[1])
	assert.Equal(t, r3.Vector{X: 0, Y: 0, Z: -1}, ns[1])
}

func TestReadXYZ_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error // nil means any error will do
	}{
		{"empty input", "", meshio.ErrNoPoints},
		{"comments only", "# nothing here\n\n", meshio.ErrNoPoints},
		{"four columns", "0 0 0 1\n", nil},
		{"normals appear midway", "0 0 0\n1 0 0 0 0 1\n", meshio.ErrMixedRows},
		{"normals vanish midway", "0 0 0 0 0 1\n1 0 0\n", meshio.ErrMixedRows},
		{"bad number", "0 0 zero\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := meshio.ReadXYZ(strings.NewReader(tt.in))
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestWriteXYZ_RoundTrip(t *testing.T) {
	pts := []r3.Vector{{X: 0.125, Y: -3, Z: 7e-9}, {X: 1, Y: 2, Z: 3}}
	ns := []r3.Vector{{Z: 1}, {X: -1}}

	var buf strings.Builder
	require.NoError(t, meshio.WriteXYZ(&buf, pts, ns))

	gotPts, gotNs, err := meshio.ReadXYZ(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, pts, gotPts)
	assert.Equal(t, ns, gotNs)
}

func TestWriteXYZ_PointsOnly(t *testing.T) {
	pts := []r3.Vector{{X: 1}, {Y: 1}}

	var buf strings.Builder
	require.NoError(t, meshio.WriteXYZ(&buf, pts, nil))

	gotPts, gotNs, err := meshio.ReadXYZ(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, pts, gotPts)
	assert.Nil(t, gotNs)
}

func TestWriteXYZ_LengthMismatch(t *testing.T) {
	err := meshio.WriteXYZ(&strings.Builder{}, []r3.Vector{{X: 1}}, []r3.Vector{{Z: 1}, {Z: 1}})
	assert.ErrorIs(t, err, meshio.ErrMismatch)
}
