package tme

import "unsafe"

// V0 is a vertex with a position only.
type V0 struct {
	Pos Vec2
}

// V1 is a vertex with a position and a color.
type V1 struct {
	Pos   Vec2
	Color Color
}

// V2 is a vertex with a position, a texture coordinate and a color.
// Memory layout matches the attribute layout uploaded by the engine.
type V2 struct {
	Pos   Vec2
	UV    Vec2
	Color Color
}

// Tri0 is a triangle of position-only vertices.
type Tri0 struct {
	V [3]V0
}

// Tri1 is a triangle of colored vertices.
type Tri1 struct {
	V [3]V1
}

// Tri2 is a triangle of textured, colored vertices.
type Tri2 struct {
	V [3]V2
}

// Blend interpolates every vertex of t towards other.
func (t Tri0) Blend(other Tri0, a float32) Tri0 {
	var r Tri0
	for i := range t.V {
		r.V[i].Pos = t.V[i].Pos.Lerp(other.V[i].Pos, a)
	}
	return r
}

// Transform returns t with every position transformed by m.
func (t Tri2) Transform(m Mat3x2) Tri2 {
	for i := range t.V {
		t.V[i].Pos = t.V[i].Pos.Transform(m)
	}
	return t
}

// Quad builds two textured triangles covering the square [-half, half]
// with texture coordinates mapping the whole image, top-left at (0, 0).
func Quad(half float32, c Color) [2]Tri2 {
	tl := V2{Pos: Vec2{X: -half, Y: half}, UV: Vec2{X: 0, Y: 0}, Color: c}
	tr := V2{Pos: Vec2{X: half, Y: half}, UV: Vec2{X: 1, Y: 0}, Color: c}
	br := V2{Pos: Vec2{X: half, Y: -half}, UV: Vec2{X: 1, Y: 1}, Color: c}
	bl := V2{Pos: Vec2{X: -half, Y: -half}, UV: Vec2{X: 0, Y: 1}, Color: c}
	return [2]Tri2{
		{V: [3]V2{tl, br, bl}},
		{V: [3]V2{tl, tr, br}},
	}
}

// Vertex strides in bytes.
const (
	strideV0 = int32(unsafe.Sizeof(V0{}))
	strideV1 = int32(unsafe.Sizeof(V1{}))
	strideV2 = int32(unsafe.Sizeof(V2{}))
)

// vertexBytes views the memory of a triangle as raw bytes for upload.
func vertexBytes[T Tri0 | Tri1 | Tri2](t *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(t)), unsafe.Sizeof(*t))
}
