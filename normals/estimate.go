package normals

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Estimate computes an unoriented unit normal for every point by principal
// component analysis: the normal of points[i] is the direction of least
// variance across i and its K nearest neighbors, which is the eigenvector
// of the neighborhood covariance with the smallest eigenvalue.
//
// The sign of each normal is arbitrary; feed the result to Orient for a
// consistent field. K is clamped to the point count when the set is small.
//
// Errors: ErrNoPoints, ErrTooFewPoints, ErrBadK, ErrEigenFailed.
func Estimate(points []r3.Vector, opts EstimateOptions) ([]r3.Vector, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}

	ni := newNeighborIndex(points)
	out := make([]r3.Vector, len(points))
	nb := make([]r3.Vector, 0, opts.K+1)
	for i := range points {
		nb = append(nb[:0], points[i])
		for _, j := range ni.nearest(i, opts.K) {
			nb = append(nb, points[j])
		}
		n, err := planeNormal(nb)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

// planeNormal fits a plane to pts by PCA and returns its unit normal.
func planeNormal(pts []r3.Vector) (r3.Vector, error) {
	var c r3.Vector
	for _, p := range pts {
		c = c.Add(p)
	}
	c = c.Mul(1 / float64(len(pts)))

	// Covariance accumulators. The 1/n factor is dropped: it scales the
	// eigenvalues but leaves the eigenvectors alone.
	var xx, xy, xz, yy, yz, zz float64
	for _, p := range pts {
		d := p.Sub(c)
		xx += d.X * d.X
		xy += d.X * d.Y
		xz += d.X * d.Z
		yy += d.Y * d.Y
		yz += d.Y * d.Z
		zz += d.Z * d.Z
	}
	cov := mat.NewSymDense(3, []float64{
		xx, xy, xz,
		xy, yy, yz,
		xz, yz, zz,
	})

	var eig mat.EigenSym
	if !eig.Factorize(cov, true) {
		return r3.Vector{}, ErrEigenFailed
	}
	// Eigenvalues come back ascending, so column 0 is the least-variance
	// direction.
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	return r3.Vector{X: vecs.At(0, 0), Y: vecs.At(1, 0), Z: vecs.At(2, 0)}, nil
}
