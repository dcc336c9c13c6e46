package tme

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mat3x2 is a 2D affine transform stored as three row vectors. Rows 0 and 1
// hold the linear part, row 2 holds the translation.
//
// Vectors are rows and multiply from the left: v' = v * M. Composition
// follows the same order, so A.Mul(B) transforms by A first, then by B.
type Mat3x2 struct {
	Rows [3]Vec2
}

// Identity returns the identity transform.
func Identity() Mat3x2 {
	return Scale(1)
}

// Scale returns a uniform scale transform.
func Scale(s float32) Mat3x2 {
	return Mat3x2{Rows: [3]Vec2{{X: s}, {Y: s}, {}}}
}

// Rotation returns a counter-clockwise rotation by theta radians.
func Rotation(theta float32) Mat3x2 {
	sin, cos := math.Sincos(float64(theta))
	s, c := float32(sin), float32(cos)
	return Mat3x2{Rows: [3]Vec2{
		{X: c, Y: s},
		{X: -s, Y: c},
		{},
	}}
}

// Movement returns a translation by offset.
func Movement(offset Vec2) Mat3x2 {
	m := Identity()
	m.Rows[2] = offset
	return m
}

// Match640x480 corrects the aspect ratio of a 640x480 viewport so that a
// unit square in clip space is drawn square.
func Match640x480() Mat3x2 {
	return Mat3x2{Rows: [3]Vec2{{X: 1}, {Y: 640.0 / 480.0}, {}}}
}

// Mul composes two transforms. The result applies m first, then other.
func (m Mat3x2) Mul(other Mat3x2) Mat3x2 {
	a, b := m.Rows, other.Rows
	return Mat3x2{Rows: [3]Vec2{
		{
			X: a[0].X*b[0].X + a[0].Y*b[1].X,
			Y: a[0].X*b[0].Y + a[0].Y*b[1].Y,
		},
		{
			X: a[1].X*b[0].X + a[1].Y*b[1].X,
			Y: a[1].X*b[0].Y + a[1].Y*b[1].Y,
		},
		{
			X: a[2].X*b[0].X + a[2].Y*b[1].X + b[2].X,
			Y: a[2].X*b[0].Y + a[2].Y*b[1].Y + b[2].Y,
		},
	}}
}

// Transform applies m to v as a point; the translation is always added.
func (v Vec2) Transform(m Mat3x2) Vec2 {
	r := m.Rows
	return Vec2{
		X: v.X*r[0].X + v.Y*r[1].X + r[2].X,
		Y: v.X*r[0].Y + v.Y*r[1].Y + r[2].Y,
	}
}

// Floats flattens m into a 3x3 matrix suitable for an untransposed mat3
// uniform. Each column of the uploaded matrix is one output component, so
// the shader applies it as `vec3(pos, 1.0) * u_matrix`.
func (m Mat3x2) Floats() [9]float32 {
	r := m.Rows
	return [9]float32{
		r[0].X, r[1].X, r[2].X,
		r[0].Y, r[1].Y, r[2].Y,
		0, 0, 1,
	}
}

// Mat3 returns Floats as an mgl32 matrix.
func (m Mat3x2) Mat3() mgl32.Mat3 {
	return mgl32.Mat3(m.Floats())
}

// ApproxEqual reports whether every component of m and other differs by at
// most eps.
func (m Mat3x2) ApproxEqual(other Mat3x2, eps float32) bool {
	for i := range m.Rows {
		if absf(m.Rows[i].X-other.Rows[i].X) > eps || absf(m.Rows[i].Y-other.Rows[i].Y) > eps {
			return false
		}
	}
	return true
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
