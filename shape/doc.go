// Package shape measures triangle quality on a halfedge mesh and sorts
// faces into needles, caps and regular triangles.
//
// What:
//
//   - Criteria bundles the two thresholds (NeedleRatio, CapCosine) with
//     validation and stock defaults (ratio 4, cap angle 160°).
//   - Classify tags a face as Needle, Cap or Regular and designates the one
//     edge a repair pass should act on: the shortest edge of a needle, the
//     edge opposite the wide corner of a cap.
//   - NeedleEdge and CapEdge expose the two tests individually.
//   - EdgeLength, SquaredEdgeLength, CornerCosine, FaceArea and FaceNormal
//     are the metric primitives everything above is built from.
//
// Why:
//
//   - Needles and caps are the two degeneracy patterns that break normal
//     computation, collision queries and downstream meshing; naming the
//     offending edge (not just the face) is what lets a repair loop fix
//     them with one local edit each.
//   - The needle test runs first on purpose: a sliver that is both thin and
//     wide must be collapsed, not flipped, or the flip just produces
//     another sliver.
//
// Complexity: every function is O(1) per face — three edge lengths or three
// corner cosines.
//
// Errors:
//
//   - ErrBadNeedleRatio, ErrBadCapCosine: rejected thresholds
//     (Criteria.Validate).
//
// Classification itself never fails: dead faces are Regular, zero-length
// edges make a face a needle unconditionally.
package shape
