package tme

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// GeometryReader reads whitespace separated geometry in the plain text
// format used by the example data files:
//
//	V0:     x y
//	V1:     x y r g b a
//	V2:     x y u v r g b a
//	Tri*:   three vertices in order
//	Mat3x2: r0.x r0.y r1.x r1.y (linear part only)
//
// Every read returns an error naming the field that could not be parsed.
type GeometryReader struct {
	scanner *bufio.Scanner
}

// NewGeometryReader creates a reader over r.
func NewGeometryReader(r io.Reader) *GeometryReader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &GeometryReader{scanner: s}
}

// Float reads a single number.
func (g *GeometryReader) Float() (float32, error) {
	if !g.scanner.Scan() {
		if err := g.scanner.Err(); err != nil {
			return 0, errors.Wrap(err, "read geometry")
		}
		return 0, io.ErrUnexpectedEOF
	}
	f, err := strconv.ParseFloat(g.scanner.Text(), 32)
	if err != nil {
		return 0, errors.Wrapf(err, "parse number %q", g.scanner.Text())
	}
	return float32(f), nil
}

// Uint reads a non-negative integer, such as a grid scale.
func (g *GeometryReader) Uint() (uint, error) {
	if !g.scanner.Scan() {
		if err := g.scanner.Err(); err != nil {
			return 0, errors.Wrap(err, "read geometry")
		}
		return 0, io.ErrUnexpectedEOF
	}
	n, err := strconv.ParseUint(g.scanner.Text(), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "parse integer %q", g.scanner.Text())
	}
	return uint(n), nil
}

func (g *GeometryReader) floats(dst ...*float32) error {
	for _, p := range dst {
		f, err := g.Float()
		if err != nil {
			return err
		}
		*p = f
	}
	return nil
}

// Vec2 reads x y.
func (g *GeometryReader) Vec2() (Vec2, error) {
	var v Vec2
	return v, errors.Wrap(g.floats(&v.X, &v.Y), "vec2")
}

// Color reads r g b a in 0..1.
func (g *GeometryReader) Color() (Color, error) {
	var r, gr, b, a float32
	if err := g.floats(&r, &gr, &b, &a); err != nil {
		return 0, errors.Wrap(err, "color")
	}
	return RGBAf(r, gr, b, a), nil
}

// Mat3x2 reads the linear part of a transform; translation is zero.
func (g *GeometryReader) Mat3x2() (Mat3x2, error) {
	var m Mat3x2
	err := g.floats(&m.Rows[0].X, &m.Rows[0].Y, &m.Rows[1].X, &m.Rows[1].Y)
	return m, errors.Wrap(err, "matrix")
}

// V0 reads a position-only vertex.
func (g *GeometryReader) V0() (V0, error) {
	p, err := g.Vec2()
	return V0{Pos: p}, errors.Wrap(err, "v0")
}

// V1 reads a colored vertex.
func (g *GeometryReader) V1() (V1, error) {
	var v V1
	var err error
	if v.Pos, err = g.Vec2(); err != nil {
		return v, errors.Wrap(err, "v1")
	}
	v.Color, err = g.Color()
	return v, errors.Wrap(err, "v1")
}

// V2 reads a textured, colored vertex.
func (g *GeometryReader) V2() (V2, error) {
	var v V2
	var err error
	if v.Pos, err = g.Vec2(); err != nil {
		return v, errors.Wrap(err, "v2")
	}
	if v.UV, err = g.Vec2(); err != nil {
		return v, errors.Wrap(err, "v2")
	}
	v.Color, err = g.Color()
	return v, errors.Wrap(err, "v2")
}

// Tri0 reads three position-only vertices.
func (g *GeometryReader) Tri0() (Tri0, error) {
	var t Tri0
	for i := range t.V {
		v, err := g.V0()
		if err != nil {
			return t, errors.Wrapf(err, "tri0 vertex %d", i)
		}
		t.V[i] = v
	}
	return t, nil
}

// Tri1 reads three colored vertices.
func (g *GeometryReader) Tri1() (Tri1, error) {
	var t Tri1
	for i := range t.V {
		v, err := g.V1()
		if err != nil {
			return t, errors.Wrapf(err, "tri1 vertex %d", i)
		}
		t.V[i] = v
	}
	return t, nil
}

// Tri2 reads three textured, colored vertices.
func (g *GeometryReader) Tri2() (Tri2, error) {
	var t Tri2
	for i := range t.V {
		v, err := g.V2()
		if err != nil {
			return t, errors.Wrapf(err, "tri2 vertex %d", i)
		}
		t.V[i] = v
	}
	return t, nil
}
