// Package shape classifies triangle faces of a halfedge mesh as needles,
// caps or regular triangles, and provides the metric helpers the
// classification is built from.
//
// This file declares the Criteria configuration and its sentinel errors.
package shape

import (
	"errors"
	"math"
)

// Sentinel errors returned by Criteria.Validate.
var (
	// ErrBadNeedleRatio indicates a needle ratio below 1 or not a number.
	ErrBadNeedleRatio = errors.New("shape: needle ratio must be >= 1")

	// ErrBadCapCosine indicates a cap cosine outside [-1, 0).
	ErrBadCapCosine = errors.New("shape: cap cosine must lie in [-1, 0)")
)

// DefaultNeedleRatio is the longest/shortest edge ratio at and above which a
// triangle counts as a needle.
const DefaultNeedleRatio = 4.0

// DefaultCapAngleDegrees is the interior angle at and above which a triangle
// counts as a cap. DefaultCriteria stores its cosine.
const DefaultCapAngleDegrees = 160.0

// Criteria holds the two thresholds that drive triangle classification.
//
// Fields:
//   - NeedleRatio — a face is a needle when longest/shortest edge length
//     reaches this ratio. Must be >= 1; a zero-length edge is always a
//     needle regardless of the ratio.
//   - CapCosine   — a face is a cap when some interior angle's cosine is at
//     or below this bound. Must lie in [-1, 0), i.e. the angle threshold is
//     strictly between 90 and 180 degrees.
//
// Classification order is fixed: the needle test runs first, and a face
// that passes it is never reported as a cap.
type Criteria struct {
	NeedleRatio float64
	CapCosine   float64
}

// DefaultCriteria returns the stock thresholds: needle ratio 4 and a cap
// angle of 160 degrees.
func DefaultCriteria() Criteria {
	return Criteria{
		NeedleRatio: DefaultNeedleRatio,
		CapCosine:   math.Cos(DefaultCapAngleDegrees * math.Pi / 180),
	}
}

// Validate reports whether the thresholds are usable.
//
// Errors: ErrBadNeedleRatio, ErrBadCapCosine.
func (c Criteria) Validate() error {
	// Written as negated >= / < so that NaN fails both checks.
	if !(c.NeedleRatio >= 1) {
		return ErrBadNeedleRatio
	}
	if !(c.CapCosine >= -1 && c.CapCosine < 0) {
		return ErrBadCapCosine
	}
	return nil
}
