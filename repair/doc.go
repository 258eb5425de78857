// Package repair removes degenerate triangles (needles and caps) from a
// halfedge mesh by collapsing, flipping and deleting until no defect that
// can legally be fixed remains.
//
// What:
//
//   - Repair processes every live face; RepairFaces restricts the pass to
//     an explicit selection; RepairWithStats additionally reports per-edit
//     counters.
//   - Needles (one edge far shorter than the longest) are cured by
//     collapsing the short edge, but only while it is within
//     MaxCollapseLength and the link condition holds.
//   - Caps (one interior angle near 180°) are cured by flipping the edge
//     opposite the wide corner; a cap leaning on the border is removed as a
//     whole face instead, and a flip that would duplicate an existing edge
//     is dropped for good.
//   - The loop runs in rounds over two deduplicated worklists (collapse
//     candidates, flip candidates) drained in ascending edge order, so runs
//     are deterministic. Every mesh edit first retires the edges it
//     invalidates from all worklists.
//   - Worklist entries are hints, not commands: before acting, each edge is
//     reclassified against current geometry and redirected to the right
//     list when an earlier edit changed the picture.
//
// Why:
//
//   - Degenerate faces poison normals, curvature and collision tests
//     downstream; fixing them needs whole-mesh iteration because each local
//     edit can create or cure defects on its neighbors.
//   - Convergence is attempted, not guaranteed: a run ends Converged (both
//     worklists empty), Stuck (a full round without an edit), or at the
//     MaxRounds brake. A per-edge revisit cap additionally bounds
//     pathological redirect cycles that the stagnation check cannot see.
//
// Complexity: O(defects × ring degree) per round; the revisit cap makes
// total work O(E) in the mesh size for fixed thresholds.
//
// Errors:
//
//   - ErrNilMesh, ErrNoFaces: unusable inputs.
//   - ErrBadCollapseLength, ErrBadMaxRounds, shape.ErrBadNeedleRatio,
//     shape.ErrBadCapCosine: rejected options.
//
// Rejected edits (link-condition failures, duplicate-edge flips, stale
// nominations) are expected outcomes, reported only through the convergence
// flag and Stats, never as errors.
package repair
