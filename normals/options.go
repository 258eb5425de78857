// Package normals estimates and orients point-set normals: PCA estimation
// over k-nearest-neighbor neighborhoods and global orientation by minimum
// spanning tree propagation over a Riemannian graph.
//
// This file declares the option structs and the package's sentinel errors.
package normals

import (
	"errors"
	"math"
)

// Sentinel errors for rejected inputs.
var (
	// ErrNoPoints indicates an empty point set.
	ErrNoPoints = errors.New("normals: no points")

	// ErrTooFewPoints indicates fewer points than a PCA plane fit needs.
	ErrTooFewPoints = errors.New("normals: need at least three points")

	// ErrLengthMismatch indicates points and normals of different lengths.
	ErrLengthMismatch = errors.New("normals: points and normals differ in length")

	// ErrZeroNormal indicates an input normal of length zero.
	ErrZeroNormal = errors.New("normals: zero-length normal")

	// ErrBadK indicates a neighborhood size below 2.
	ErrBadK = errors.New("normals: k must be >= 2")

	// ErrBadMaxAngle indicates a robustness angle outside (0, pi/2].
	ErrBadMaxAngle = errors.New("normals: max angle must lie in (0, pi/2]")

	// ErrEigenFailed indicates the covariance eigendecomposition did not
	// converge.
	ErrEigenFailed = errors.New("normals: eigendecomposition failed")
)

// DefaultK is the stock neighborhood size for both estimation and
// orientation.
const DefaultK = 18

// OrientOptions configures Orient.
//
// Fields:
//   - K        — neighbors per point in the Riemannian graph. Must be >= 2;
//     clamped to the point count when the set is small.
//   - MaxAngle — a propagated normal counts as robustly oriented when the
//     angle to its tree parent is at most MaxAngle. Must lie in (0, pi/2].
type OrientOptions struct {
	K        int
	MaxAngle float64
}

// DefaultOrientOptions returns the stock configuration: 18 neighbors and a
// 45° robustness angle.
func DefaultOrientOptions() OrientOptions {
	return OrientOptions{K: DefaultK, MaxAngle: math.Pi / 4}
}

// Validate reports whether the options are usable.
//
// Errors: ErrBadK, ErrBadMaxAngle.
func (o OrientOptions) Validate() error {
	if o.K < 2 {
		return ErrBadK
	}
	if !(o.MaxAngle > 0 && o.MaxAngle <= math.Pi/2) {
		return ErrBadMaxAngle
	}
	return nil
}

// EstimateOptions configures Estimate.
//
// Fields:
//   - K — neighbors per PCA neighborhood. Must be >= 2; clamped to the
//     point count when the set is small.
type EstimateOptions struct {
	K int
}

// DefaultEstimateOptions returns the stock configuration: 18 neighbors.
func DefaultEstimateOptions() EstimateOptions {
	return EstimateOptions{K: DefaultK}
}

// Validate reports whether the options are usable.
//
// Errors: ErrBadK.
func (o EstimateOptions) Validate() error {
	if o.K < 2 {
		return ErrBadK
	}
	return nil
}
