package shape

import (
	"math"

	"github.com/katalvlaran/lvlmesh/halfedge"
)

// Kind tags the outcome of classifying one face.
//
//   - Regular — neither test fired; the face is left alone.
//   - Needle  — one edge is far shorter than the longest edge; repaired by
//     collapsing the short edge.
//   - Cap     — one interior angle is nearly straight; repaired by flipping
//     the edge opposite the wide corner (or removing the face when that
//     edge is on the border).
type Kind int

const (
	// Regular marks a face with acceptable shape.
	Regular Kind = iota

	// Needle marks a face whose shortest edge should be collapsed.
	Needle

	// Cap marks a face whose opposite edge should be flipped.
	Cap
)

// String returns the Kind name for logs and test failure messages.
func (k Kind) String() string {
	switch k {
	case Needle:
		return "Needle"
	case Cap:
		return "Cap"
	default:
		return "Regular"
	}
}

// Result is the classification of one face. Exactly one edge is designated
// for repair; He is one of the face's own halfedges, or NoHalfedge for a
// Regular face.
//
// Fields:
//   - Kind   — Needle, Cap or Regular.
//   - He     — the designated halfedge: the shortest edge for a needle, the
//     edge opposite the wide corner for a cap.
//   - Ratio  — for needles, the measured longest/shortest ratio
//     (+Inf when the shortest edge has zero length).
//   - Cosine — for caps, the cosine at the wide corner.
type Result struct {
	Kind   Kind
	He     halfedge.Halfedge
	Ratio  float64
	Cosine float64
}

// NeedleEdge returns the halfedge of the shortest edge of f if the face is
// a needle under the given ratio, or NoHalfedge otherwise. A face with a
// zero-length edge is always a needle. Dead faces yield NoHalfedge.
func NeedleEdge(m *halfedge.Mesh, f halfedge.Face, ratio float64) halfedge.Halfedge {
	h, _ := needleEdge(m, f, ratio)
	return h
}

// CapEdge returns the halfedge opposite the first corner of f whose angle
// cosine is at or below cosBound, or NoHalfedge if no corner is that wide.
// For bounds below cos(90°)=0 at most one corner can qualify, so the result
// does not depend on iteration order. Dead faces yield NoHalfedge.
func CapEdge(m *halfedge.Mesh, f halfedge.Face, cosBound float64) halfedge.Halfedge {
	h, _ := capEdge(m, f, cosBound)
	return h
}

// Classify applies the needle test and then the cap test to f and reports
// the designated repair edge. The order is part of the contract: a face
// that measures as a needle is never reported as a cap, even if one of its
// angles also exceeds the cap bound. Dead faces classify as Regular.
func Classify(m *halfedge.Mesh, f halfedge.Face, c Criteria) Result {
	if h, ratio := needleEdge(m, f, c.NeedleRatio); h != halfedge.NoHalfedge {
		return Result{Kind: Needle, He: h, Ratio: ratio}
	}
	if h, cos := capEdge(m, f, c.CapCosine); h != halfedge.NoHalfedge {
		return Result{Kind: Cap, He: h, Cosine: cos}
	}
	return Result{Kind: Regular, He: halfedge.NoHalfedge}
}

// needleEdge measures the three edges of f and reports the shortest one
// together with the longest/shortest ratio when the face is a needle.
func needleEdge(m *halfedge.Mesh, f halfedge.Face, ratio float64) (halfedge.Halfedge, float64) {
	if !m.FaceLive(f) {
		return halfedge.NoHalfedge, 0
	}
	hs := m.FaceHalfedges(f)
	var sq [3]float64
	for i, h := range hs {
		sq[i] = SquaredEdgeLength(m, m.EdgeOf(h))
	}
	shortest, longest := 0, 0
	for i := 1; i < 3; i++ {
		if sq[i] < sq[shortest] {
			shortest = i
		}
		if sq[i] > sq[longest] {
			longest = i
		}
	}
	if sq[shortest] == 0 {
		return hs[shortest], math.Inf(1)
	}
	// Compare squared lengths to avoid the square roots.
	if sq[longest] >= ratio*ratio*sq[shortest] {
		return hs[shortest], math.Sqrt(sq[longest] / sq[shortest])
	}
	return halfedge.NoHalfedge, 0
}

// capEdge scans the three corners of f and reports the halfedge opposite
// the first corner whose cosine is at or below cosBound.
func capEdge(m *halfedge.Mesh, f halfedge.Face, cosBound float64) (halfedge.Halfedge, float64) {
	if !m.FaceLive(f) {
		return halfedge.NoHalfedge, 0
	}
	for _, h := range m.FaceHalfedges(f) {
		if cos := CornerCosine(m, h); cos <= cosBound {
			// The corner sits at Target(h); Prev(h) is the face edge
			// not touching it.
			return m.Prev(h), cos
		}
	}
	return halfedge.NoHalfedge, 0
}
