// Package lvlmesh is your in-memory workbench for repairing triangle
// meshes — from halfedge primitives to degenerate-face removal and
// point-set normal orientation.
//
// 🚀 What is lvlmesh?
//
//	A compact geometry-processing library that brings together:
//		• Halfedge kernel: index-based connectivity with Euler operators
//		• Shape tests: needle & cap classification with explicit thresholds
//		• Repair: worklist-driven collapse/flip/remove to a fixpoint
//		• Normals: PCA estimation + spanning-tree orientation for point sets
//		• Mesh I/O: ASCII OFF surfaces and XYZ point sets
//
// ✨ Why choose lvlmesh?
//
//   - Deterministic – same input, same repaired mesh, every run
//   - Honest failure – rejected edits are outcomes, not errors; broken
//     bookkeeping panics instead of limping on
//   - Pure Go – no cgo, no hidden deps
//   - Guarded geometry – every Euler operator covered by integrity checks
//
// Under the hood, everything is organized under five subpackages:
//
//	halfedge/ — mesh kernel: connectivity, navigation, collapse/flip/remove
//	shape/    — triangle quality measures and needle/cap classification
//	repair/   — the degenerate-triangle removal loop
//	normals/  — point-set normal estimation (PCA) and orientation (MST)
//	meshio/   — OFF and XYZ readers and writers
//
// Quick ASCII example:
//
//	    C
//	   ╱│
//	  ╱ │
//	 A──B
//
//	A–B is tiny next to the other two sides, so triangle A–B–C is a
//	needle; collapsing A–B merges the two long edges into one.
//
// Next up: OBJ/PLY I/O and hole filling. Dive into cmd/lvlmesh for the
// command-line interface.
//
//	go get github.com/katalvlaran/lvlmesh
package lvlmesh
