package halfedge_test

import (
	"testing"

	"github.com/golang/geo/r3"

	"github.com/katalvlaran/lvlmesh/halfedge"
)

// gridSoup triangulates an n×n vertex sheet into 2(n-1)² well-shaped faces.
func gridSoup(n int) ([]r3.Vector, [][3]int) {
	pts := make([]r3.Vector, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			pts = append(pts, r3.Vector{X: float64(x), Y: float64(y)})
		}
	}
	faces := make([][3]int, 0, 2*(n-1)*(n-1))
	for y := 0; y < n-1; y++ {
		for x := 0; x < n-1; x++ {
			a := y*n + x
			bb := a + 1
			c := a + n
			d := c + 1
			faces = append(faces, [3]int{a, bb, d}, [3]int{a, d, c})
		}
	}
	return pts, faces
}

// BenchmarkFromSoup_Grid measures connectivity construction for a 100×100
// sheet: 10000 vertices, 19602 faces.
// Complexity: O(V + F).
func BenchmarkFromSoup_Grid(b *testing.B) {
	pts, faces := gridSoup(100) // pre-build the soup once
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := halfedge.FromSoup(pts, faces); err != nil {
			b.Fatalf("FromSoup failed: %v", err)
		}
	}
}

// BenchmarkOutgoing measures a one-ring walk around every vertex of a
// prebuilt sheet.
// Complexity: O(degree) per vertex.
func BenchmarkOutgoing(b *testing.B) {
	pts, faces := gridSoup(100)
	m, err := halfedge.FromSoup(pts, faces)
	if err != nil {
		b.Fatalf("setup FromSoup failed: %v", err)
	}
	vs := m.Vertices()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range vs {
			_ = m.Outgoing(v)
		}
	}
}
