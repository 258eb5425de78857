package normals

import (
	"sort"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// indexedPoint is a kd-tree element that remembers which input point it is.
type indexedPoint struct {
	p r3.Vector
	i int
}

// Compare returns the signed distance from q to the plane through ip along
// dimension d.
func (ip indexedPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(indexedPoint)
	switch d {
	case 0:
		return ip.p.X - q.p.X
	case 1:
		return ip.p.Y - q.p.Y
	default:
		return ip.p.Z - q.p.Z
	}
}

// Dims returns the number of dimensions of an indexedPoint.
func (ip indexedPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between ip and c.
func (ip indexedPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(indexedPoint)
	return ip.p.Sub(q.p).Norm2()
}

// pointCloud adapts a point slice to kdtree.Interface.
type pointCloud []indexedPoint

// Index returns the ith element of the list of points.
func (pc pointCloud) Index(i int) kdtree.Comparable { return pc[i] }

// Len returns the length of the list.
func (pc pointCloud) Len() int { return len(pc) }

// Pivot partitions the list based on the dimension specified.
func (pc pointCloud) Pivot(d kdtree.Dim) int {
	p := cloudPlane{dim: int(d), points: pc}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half-open indexing.
func (pc pointCloud) Slice(start, end int) kdtree.Interface { return pc[start:end] }

// cloudPlane sorts a pointCloud along a single dimension.
type cloudPlane struct {
	dim    int
	points pointCloud
}

func (p cloudPlane) Less(i, j int) bool {
	return p.points[i].Compare(p.points[j], kdtree.Dim(p.dim)) < 0
}
func (p cloudPlane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}
func (p cloudPlane) Len() int {
	return len(p.points)
}
func (p cloudPlane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}

// neighborIndex answers k-nearest-neighbor queries over a fixed point set.
type neighborIndex struct {
	tree *kdtree.Tree
	pts  []r3.Vector
}

// newNeighborIndex builds a kd-tree over points. The build permutes a
// private copy, so the caller's slice is untouched.
func newNeighborIndex(points []r3.Vector) *neighborIndex {
	pc := make(pointCloud, len(points))
	for i, p := range points {
		pc[i] = indexedPoint{p: p, i: i}
	}
	return &neighborIndex{tree: kdtree.New(pc, false), pts: points}
}

// nearest returns the indices of the k points closest to point i, excluding
// i itself, in ascending index order.
func (ni *neighborIndex) nearest(i, k int) []int {
	if k > len(ni.pts)-1 {
		k = len(ni.pts) - 1
	}
	if k <= 0 {
		return nil
	}
	// One extra slot because the query point is its own nearest neighbor.
	keeper := kdtree.NewNKeeper(k + 1)
	ni.tree.NearestSet(keeper, indexedPoint{p: ni.pts[i], i: i})

	ids := make([]int, 0, k)
	for _, cd := range keeper.Heap {
		if cd.Comparable == nil {
			continue
		}
		ip := cd.Comparable.(indexedPoint)
		if ip.i == i {
			continue
		}
		ids = append(ids, ip.i)
	}
	sort.Ints(ids)
	return ids
}
