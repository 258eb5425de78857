// Package halfedge stores triangulated surface meshes with borders in an
// index-based halfedge structure and mutates them through Euler operators.
//
// What:
//
//   - Mesh keeps vertices, halfedge pairs and faces in flat arenas addressed
//     by the typed indices Vertex, Halfedge, Edge and Face.
//   - FromSoup builds the structure from points plus index triples, pairing
//     twins, closing face loops and stitching border loops.
//   - Navigation methods (Next, Prev, Twin, Origin, Target, Outgoing, ...)
//     walk loops and vertex rings in constant time per step.
//   - CollapseEdge, FlipEdge and RemoveFace edit the surface in place;
//     SatisfiesLinkCondition tells whether a collapse is safe beforehand.
//   - Removed elements are tombstoned, never recycled, so a stale handle is
//     detectably dead (EdgeLive, VertexLive, FaceLive) instead of silently
//     pointing at a new element.
//
// Why:
//
//   - Mesh repair, simplification and remeshing all hinge on cheap local
//     surgery; a halfedge structure makes every such edit O(degree).
//   - Integer handles survive serialization and stay meaningful across
//     edits, unlike pointers into a reallocating container.
//
// Complexity:
//
//   - FromSoup: O(V + F) expected, O(V + F) memory.
//   - Navigation: O(1) per step; ring queries O(degree).
//   - CollapseEdge / FlipEdge / RemoveFace: O(degree) worst case.
//   - CheckIntegrity: O(V + E + F).
//
// Errors:
//
//   - ErrVertexRange, ErrDegenerateFace, ErrNonManifoldEdge,
//     ErrNonManifoldVertex: rejected soup input.
//   - ErrDeadHandle, ErrLinkCondition, ErrBorderEdge, ErrEdgeExists,
//     ErrNoIncidentFace: rejected Euler operations.
//   - ErrIntegrity: CheckIntegrity found a broken invariant.
//
// A Mesh is not safe for concurrent mutation.
package halfedge
