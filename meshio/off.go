package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlmesh/halfedge"
)

// Sentinel errors for malformed input. Parse failures wrap these with the
// offending line number.
var (
	// ErrBadHeader indicates input that does not start with "OFF".
	ErrBadHeader = errors.New("meshio: not an OFF file")

	// ErrTruncated indicates input that ends before the declared counts
	// are satisfied.
	ErrTruncated = errors.New("meshio: unexpected end of input")

	// ErrNonTriangle indicates a face with more or fewer than three sides.
	ErrNonTriangle = errors.New("meshio: non-triangular face")

	// ErrBadIndex indicates a face referencing a vertex that does not exist.
	ErrBadIndex = errors.New("meshio: vertex index out of range")

	// ErrNilMesh indicates a nil mesh passed to a writer.
	ErrNilMesh = errors.New("meshio: nil mesh")
)

// lineScanner walks an ASCII geometry file one meaningful line at a time,
// tracking line numbers for error context.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{sc: bufio.NewScanner(r)}
}

// next returns the fields of the next meaningful line and its 1-based
// number. Blank lines and everything after a # are skipped. Clean end of
// input yields nil fields and a nil error.
func (ls *lineScanner) next() ([]string, int, error) {
	for ls.sc.Scan() {
		ls.line++
		text := ls.sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if fields := strings.Fields(text); len(fields) > 0 {
			return fields, ls.line, nil
		}
	}
	return nil, ls.line, errors.Wrap(ls.sc.Err(), "meshio: read")
}

// mustNext is next for callers that still expect a line.
func (ls *lineScanner) mustNext(what string) ([]string, int, error) {
	fields, ln, err := ls.next()
	if err != nil {
		return nil, ln, err
	}
	if fields == nil {
		return nil, ln, errors.Wrapf(ErrTruncated, "missing %s", what)
	}
	return fields, ln, nil
}

func parseCoord(s string, ln int) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "meshio: line %d", ln)
	}
	return v, nil
}

func parseCount(s string, ln int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "meshio: line %d", ln)
	}
	if n < 0 {
		return 0, errors.Errorf("meshio: line %d: negative count %d", ln, n)
	}
	return n, nil
}

// ReadOFF parses an ASCII OFF triangle surface and builds a halfedge mesh
// from it. Comments (#) and blank lines are tolerated anywhere; the counts
// may share the header line. Faces must be triangles.
//
// Errors: ErrBadHeader, ErrTruncated, ErrNonTriangle, ErrBadIndex, plus
// wrapped parse and mesh-construction failures, all carrying the offending
// line number.
func ReadOFF(r io.Reader) (*halfedge.Mesh, error) {
	ls := newLineScanner(r)

	header, ln, err := ls.mustNext("header")
	if err != nil {
		return nil, err
	}
	if header[0] != "OFF" {
		return nil, errors.Wrapf(ErrBadHeader, "line %d: got %q", ln, header[0])
	}
	counts := header[1:]
	if len(counts) == 0 {
		if counts, ln, err = ls.mustNext("counts"); err != nil {
			return nil, err
		}
	}
	if len(counts) < 3 {
		return nil, errors.Errorf("meshio: line %d: want vertex, face and edge counts", ln)
	}
	nv, err := parseCount(counts[0], ln)
	if err != nil {
		return nil, err
	}
	nf, err := parseCount(counts[1], ln)
	if err != nil {
		return nil, err
	}
	// The edge count is declared but never trusted; it is redundant for a
	// triangle surface.

	pts := make([]r3.Vector, nv)
	for i := range pts {
		fields, ln, err := ls.mustNext(fmt.Sprintf("vertex %d of %d", i, nv))
		if err != nil {
			return nil, err
		}
		if len(fields) < 3 {
			return nil, errors.Errorf("meshio: line %d: vertex needs 3 coordinates, got %d", ln, len(fields))
		}
		if pts[i].X, err = parseCoord(fields[0], ln); err != nil {
			return nil, err
		}
		if pts[i].Y, err = parseCoord(fields[1], ln); err != nil {
			return nil, err
		}
		if pts[i].Z, err = parseCoord(fields[2], ln); err != nil {
			return nil, err
		}
	}

	faces := make([][3]int, nf)
	for i := range faces {
		fields, ln, err := ls.mustNext(fmt.Sprintf("face %d of %d", i, nf))
		if err != nil {
			return nil, err
		}
		deg, err := parseCount(fields[0], ln)
		if err != nil {
			return nil, err
		}
		if deg != 3 {
			return nil, errors.Wrapf(ErrNonTriangle, "line %d: %d-gon", ln, deg)
		}
		if len(fields) < 4 {
			return nil, errors.Errorf("meshio: line %d: face needs 3 indices, got %d", ln, len(fields)-1)
		}
		for c := 0; c < 3; c++ {
			idx, err := strconv.Atoi(fields[1+c])
			if err != nil {
				return nil, errors.Wrapf(err, "meshio: line %d", ln)
			}
			if idx < 0 || idx >= nv {
				return nil, errors.Wrapf(ErrBadIndex, "line %d: index %d of %d vertices", ln, idx, nv)
			}
			faces[i][c] = idx
		}
	}

	m, err := halfedge.FromSoup(pts, faces)
	if err != nil {
		return nil, errors.Wrap(err, "meshio: build mesh")
	}
	return m, nil
}

// WriteOFF writes m as ASCII OFF. Dead vertices are skipped and face
// indices renumbered, so a repaired mesh writes out densely.
func WriteOFF(w io.Writer, m *halfedge.Mesh) error {
	if m == nil {
		return ErrNilMesh
	}
	bw := bufio.NewWriter(w)

	verts := m.Vertices()
	fmt.Fprintf(bw, "OFF\n%d %d %d\n", len(verts), m.FaceCount(), m.EdgeCount())

	remap := make(map[halfedge.Vertex]int, len(verts))
	for i, v := range verts {
		remap[v] = i
		p := m.Point(v)
		fmt.Fprintf(bw, "%g %g %g\n", p.X, p.Y, p.Z)
	}
	for _, f := range m.Faces() {
		fv := m.FaceVertices(f)
		fmt.Fprintf(bw, "3 %d %d %d\n", remap[fv[0]], remap[fv[1]], remap[fv[2]])
	}
	// bufio keeps the first write error; one check covers the lot.
	return errors.Wrap(bw.Flush(), "meshio: write off")
}
