// Package repair removes needle and cap triangles from a halfedge mesh by
// driving edge collapses, edge flips and face removals to a fixpoint.
//
// This file declares the Options configuration and the package's sentinel
// errors.
package repair

import (
	"errors"

	"github.com/katalvlaran/lvlmesh/shape"
)

// Sentinel errors for precondition violations. Rejected individual edits
// (failed link condition, duplicate-edge flips, reclassification mismatches)
// are expected outcomes and never surface as errors.
var (
	// ErrNilMesh indicates a nil mesh was passed to an entry point.
	ErrNilMesh = errors.New("repair: mesh is nil")

	// ErrNoFaces indicates an empty face selection; at least one face is
	// required.
	ErrNoFaces = errors.New("repair: no faces to repair")

	// ErrBadCollapseLength indicates a negative or NaN MaxCollapseLength.
	ErrBadCollapseLength = errors.New("repair: max collapse length must be >= 0")

	// ErrBadMaxRounds indicates a negative MaxRounds.
	ErrBadMaxRounds = errors.New("repair: max rounds must be >= 0")
)

// DefaultMaxCollapseLength bounds how long a needle's short edge may be and
// still be collapsed. Needles on longer edges are real geometry (long thin
// strips), not defects.
const DefaultMaxCollapseLength = 0.2

// Options configures one repair call. The zero value is invalid; start from
// DefaultOptions.
//
// Fields:
//   - NeedleRatio       — longest/shortest edge ratio at and above which a
//     face is a needle. Must be >= 1.
//   - CapCosine         — cosine bound for the cap test, in [-1, 0).
//   - MaxCollapseLength — a needle is only collapsed while its short edge is
//     at most this long. Must be >= 0; 0 restricts collapses to zero-length
//     edges.
//   - MaxRounds         — hard cap on repair rounds; 0 means no cap. The
//     loop already stops on convergence or stagnation, so this is a brake
//     for callers with a latency budget, not a correctness knob.
type Options struct {
	NeedleRatio       float64
	CapCosine         float64
	MaxCollapseLength float64
	MaxRounds         int
}

// DefaultOptions returns the stock configuration: needle ratio 4, cap angle
// 160° and max collapse length 0.2, with no round cap.
func DefaultOptions() Options {
	c := shape.DefaultCriteria()
	return Options{
		NeedleRatio:       c.NeedleRatio,
		CapCosine:         c.CapCosine,
		MaxCollapseLength: DefaultMaxCollapseLength,
	}
}

// Validate reports whether the options are usable.
//
// Errors: shape.ErrBadNeedleRatio, shape.ErrBadCapCosine,
// ErrBadCollapseLength, ErrBadMaxRounds.
func (o Options) Validate() error {
	if err := o.criteria().Validate(); err != nil {
		return err
	}
	if !(o.MaxCollapseLength >= 0) {
		return ErrBadCollapseLength
	}
	if o.MaxRounds < 0 {
		return ErrBadMaxRounds
	}
	return nil
}

// criteria bundles the two classification thresholds for the shape package.
func (o Options) criteria() shape.Criteria {
	return shape.Criteria{NeedleRatio: o.NeedleRatio, CapCosine: o.CapCosine}
}
