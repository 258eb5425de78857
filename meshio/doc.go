// Package meshio moves geometry across process boundaries.
//
// What the package gives you:
//
//   - ReadOFF / WriteOFF — ASCII OFF triangle surfaces, parsed straight
//     into a halfedge.Mesh and written back densely renumbered.
//   - ReadXYZ / WriteXYZ — ASCII point sets, three coordinates per row
//     with optional per-point normals.
//
// Both readers skip blank lines and # comments and report failures with
// the offending line number, wrapped with github.com/pkg/errors so the
// cause stays reachable through errors.Is.
//
// Why plain ASCII: these two formats are the lingua franca of mesh-repair
// pipelines; every inspection tool reads them, which makes before/after
// diffing trivial.
//
// Complexity: both readers and writers are single-pass, O(input).
package meshio
