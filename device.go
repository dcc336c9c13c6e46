package tme

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// ShaderStage selects the kind of shader to create.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	if s == StageVertex {
		return "vertex"
	}
	return "fragment"
}

// AttribType is the component type of a vertex attribute.
type AttribType int

const (
	AttribFloat AttribType = iota
	AttribUnsignedByte
)

// AttribLayout describes how one vertex attribute is read from the
// uploaded vertex data.
type AttribLayout struct {
	Size       int32 // components per vertex
	Type       AttribType
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// Device is the table of graphics calls the engine is built on. A Platform
// resolves it once when the context is created; the Engine holds it for
// its whole lifetime and never reaches for global function pointers.
type Device interface {
	// Version returns a human readable backend version string.
	Version() string

	CreateShader(stage ShaderStage) uint32
	// CompileShader sets the source and compiles. The info log is returned
	// when compilation fails.
	CompileShader(shader uint32, source string) (ok bool, infoLog string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	BindAttribLocation(program, slot uint32, name string)
	// LinkProgram links the program. The info log is returned when linking
	// fails.
	LinkProgram(program uint32) (ok bool, infoLog string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// ActiveUniforms lists the names of the uniforms a linked program uses.
	ActiveUniforms(program uint32) []string
	UniformLocation(program uint32, name string) int32
	UniformMatrix3(location int32, m mgl32.Mat3)
	Uniform4(location int32, v [4]float32)
	Uniform1i(location int32, v int32)

	// CreateTexture uploads RGBA pixels and returns the texture handle.
	CreateTexture(img *image.NRGBA) uint32
	// BindTexture binds a texture to the given texture unit.
	BindTexture(unit uint32, texture uint32)
	DeleteTexture(texture uint32)

	// UploadVertices replaces the contents of the streaming vertex buffer.
	UploadVertices(data []byte)
	VertexAttrib(slot uint32, layout AttribLayout)
	EnableAttrib(slot uint32)
	DisableAttrib(slot uint32)
	DrawTriangles(first, count int32)

	Viewport(x, y, width, height int32)
	EnableBlending()
	ClearColor(c Color)
	Clear()

	// Err returns and clears the pending backend error, if any.
	Err() error

	// Release frees the buffers the device owns.
	Release()
}
