package meshio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Sentinel errors for point-set I/O.
var (
	// ErrNoPoints indicates an XYZ input with no data rows.
	ErrNoPoints = errors.New("meshio: no points")

	// ErrMixedRows indicates an XYZ input mixing 3- and 6-column rows.
	ErrMixedRows = errors.New("meshio: mixed rows with and without normals")

	// ErrMismatch indicates points and normals of different lengths passed
	// to a writer.
	ErrMismatch = errors.New("meshio: points and normals differ in length")
)

// ReadXYZ parses an ASCII point set, one point per row: "x y z" or, with
// normals, "x y z nx ny nz". All rows must agree on which of the two forms
// they use. Comments (#) and blank lines are tolerated. The returned
// normals slice is nil when the input carries none.
//
// Errors: ErrNoPoints, ErrMixedRows, plus wrapped parse failures carrying
// the offending line number.
func ReadXYZ(r io.Reader) ([]r3.Vector, []r3.Vector, error) {
	ls := newLineScanner(r)
	var pts, ns []r3.Vector
	width := 0
	for {
		fields, ln, err := ls.next()
		if err != nil {
			return nil, nil, err
		}
		if fields == nil {
			break
		}
		if len(fields) != 3 && len(fields) != 6 {
			return nil, nil, errors.Errorf("meshio: line %d: want 3 or 6 values, got %d", ln, len(fields))
		}
		if width == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, nil, errors.Wrapf(ErrMixedRows, "line %d", ln)
		}

		var row [6]float64
		for i, f := range fields {
			if row[i], err = parseCoord(f, ln); err != nil {
				return nil, nil, err
			}
		}
		pts = append(pts, r3.Vector{X: row[0], Y: row[1], Z: row[2]})
		if width == 6 {
			ns = append(ns, r3.Vector{X: row[3], Y: row[4], Z: row[5]})
		}
	}
	if len(pts) == 0 {
		return nil, nil, ErrNoPoints
	}
	return pts, ns, nil
}

// WriteXYZ writes points one per row, appending the matching normal when
// normals is non-nil. A non-nil normals slice must match points in length.
//
// Errors: ErrMismatch, plus wrapped write failures.
func WriteXYZ(w io.Writer, points, normals []r3.Vector) error {
	if normals != nil && len(normals) != len(points) {
		return errors.Wrapf(ErrMismatch, "%d points, %d normals", len(points), len(normals))
	}
	bw := bufio.NewWriter(w)
	for i, p := range points {
		if normals == nil {
			fmt.Fprintf(bw, "%g %g %g\n", p.X, p.Y, p.Z)
			continue
		}
		n := normals[i]
		fmt.Fprintf(bw, "%g %g %g %g %g %g\n", p.X, p.Y, p.Z, n.X, n.Y, n.Z)
	}
	return errors.Wrap(bw.Flush(), "meshio: write xyz")
}
