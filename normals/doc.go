// Package normals turns a raw point cloud into a usable normal field.
//
// What the package gives you:
//
//   - Estimate — an unoriented unit normal per point, from a PCA plane fit
//     over each point's k-nearest-neighbor neighborhood.
//   - Orient — in-place sign fixing of an existing normal field, so every
//     normal points to the same side of the sampled surface.
//
// Why two steps: PCA pins down the line a normal lies on but not its
// direction; which of the two signs is "outside" is a global question.
// Orient answers it the classic way (Hoppe et al.): build a Riemannian
// graph over neighbors, weigh edges by normal disagreement, then sweep a
// minimum spanning tree from the highest point of each component, flipping
// every normal that disagrees with its tree parent. Cheap edges are walked
// first, so flips cross flat regions before they have to commit across
// creases.
//
// Determinism: neighbor lists are index-sorted, ties in the spanning tree
// break toward the lower vertex index, and components are processed in
// ascending first-vertex order. Equal inputs give equal outputs.
//
// Complexity: kd-tree construction O(n log n); a k-NN query O(log n)
// expected; Orient's sweep O(nk log(nk)).
//
// Errors: both entry points validate their options and inputs up front and
// return the package's sentinel errors (ErrNoPoints, ErrBadK, ...);
// see options.go.
package normals
