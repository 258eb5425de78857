// Package halfedge implements an index-based halfedge data structure for
// triangulated surface meshes, together with the Euler operators needed by
// surface repair algorithms (edge collapse, edge flip, face removal).
//
// This file declares the typed element indices (Vertex, Halfedge, Edge, Face),
// their sentinel "no element" values, the Mesh container, and the package's
// sentinel errors.
//
// Errors:
//
//	ErrVertexRange       - face references a vertex index out of range.
//	ErrDegenerateFace    - face lists the same vertex twice.
//	ErrNonManifoldEdge   - more than two faces meet at an edge, or winding is inconsistent.
//	ErrNonManifoldVertex - the faces around a vertex do not form a single fan.
//	ErrDeadHandle        - operation on an element that was already removed.
//	ErrLinkCondition     - collapse would pinch the surface or merge unrelated parts.
//	ErrBorderEdge        - operation requires an interior edge.
//	ErrEdgeExists        - flip would duplicate an existing edge.
//	ErrNoIncidentFace    - operation requires a halfedge with an incident face.
package halfedge

import (
	"errors"

	"github.com/golang/geo/r3"
)

// Sentinel errors for mesh construction and Euler operators.
var (
	// ErrVertexRange indicates a face referenced a vertex index outside [0, len(points)).
	ErrVertexRange = errors.New("halfedge: face references vertex out of range")

	// ErrDegenerateFace indicates a face listed the same vertex more than once.
	ErrDegenerateFace = errors.New("halfedge: face repeats a vertex")

	// ErrNonManifoldEdge indicates an edge bounded by more than two faces,
	// or by two faces wound in the same direction.
	ErrNonManifoldEdge = errors.New("halfedge: non-manifold or inconsistently wound edge")

	// ErrNonManifoldVertex indicates a vertex whose incident faces form more
	// than one fan (a "bowtie" configuration).
	ErrNonManifoldVertex = errors.New("halfedge: vertex fans do not form a single cycle")

	// ErrDeadHandle indicates an operation on a removed vertex, edge, or face.
	ErrDeadHandle = errors.New("halfedge: operation on a removed element")

	// ErrLinkCondition indicates an edge collapse that would break manifoldness.
	ErrLinkCondition = errors.New("halfedge: collapse violates the link condition")

	// ErrBorderEdge indicates an interior-only operation applied to a border edge.
	ErrBorderEdge = errors.New("halfedge: edge is on the border")

	// ErrEdgeExists indicates a flip whose target diagonal already exists.
	ErrEdgeExists = errors.New("halfedge: flip would duplicate an existing edge")

	// ErrNoIncidentFace indicates a face operation on a border halfedge.
	ErrNoIncidentFace = errors.New("halfedge: halfedge has no incident face")

	// ErrIntegrity indicates CheckIntegrity found a structural violation.
	ErrIntegrity = errors.New("halfedge: integrity violation")
)

// Vertex indexes a mesh vertex. Indices are stable for the lifetime of the
// mesh: removed slots are tombstoned, never recycled.
type Vertex int

// Halfedge indexes one directed half of an edge. Halfedges are allocated in
// twin pairs, so Twin and EdgeOf are constant-time arithmetic.
type Halfedge int

// Edge indexes an undirected edge, i.e. a twin pair of halfedges.
type Edge int

// Face indexes a triangular face.
type Face int

// Sentinel indices marking "no element". All valid indices are non-negative.
const (
	NoVertex   Vertex   = -1
	NoHalfedge Halfedge = -1
	NoEdge     Edge     = -1
	NoFace     Face     = -1
)

// vertexRec stores one vertex slot: its position, one outgoing halfedge
// (NoHalfedge when the vertex is isolated), and the tombstone flag.
type vertexRec struct {
	point   r3.Vector
	out     Halfedge
	removed bool
}

// halfedgeRec stores one directed halfedge: its origin vertex, the next and
// previous halfedges along its loop (face loop or border loop), and the
// incident face (NoFace for border halfedges). The twin is implicit: it is
// the other halfedge of the same pair. Removal is tracked per pair, on the
// Mesh's edge tombstones.
type halfedgeRec struct {
	origin Vertex
	next   Halfedge
	prev   Halfedge
	face   Face
}

// faceRec stores one face slot: an anchor halfedge on its loop and the
// tombstone flag.
type faceRec struct {
	he      Halfedge
	removed bool
}

// Mesh is an arena-backed halfedge structure for triangle meshes with
// borders. Elements are addressed by typed integer indices; removing an
// element tombstones its slot, so stale handles stay detectably dead instead
// of silently pointing at new elements.
//
// A Mesh is not safe for concurrent mutation. Guard it with your own lock if
// several goroutines touch the same mesh.
type Mesh struct {
	verts    []vertexRec
	hes      []halfedgeRec
	edgeDead []bool
	faces    []faceRec

	liveVerts int
	liveEdges int
	liveFaces int
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}
