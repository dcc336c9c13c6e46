// Package opengl provides the OpenGL 4.1 core device and GLFW platform for
// the tme engine.
package opengl

import (
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/tme"
)

// Device implements tme.Device on the current OpenGL context. Entry points
// are resolved by gl.Init before the device is created.
type Device struct {
	vao, vbo uint32
	version  string
}

// newDevice resolves GL entry points for the current context and creates
// the streaming vertex buffer.
func newDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	d := &Device{
		version: gl.GoStr(gl.GetString(gl.VERSION)),
	}

	// Core profile requires a bound VAO for any attribute setup.
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)

	return d, nil
}

// Version returns the GL_VERSION string of the context.
func (d *Device) Version() string {
	return d.version
}

func (d *Device) CreateShader(stage tme.ShaderStage) uint32 {
	if stage == tme.StageVertex {
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
	return gl.CreateShader(gl.FRAGMENT_SHADER)
}

func (d *Device) CompileShader(shader uint32, source string) (bool, string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		return false, infoLog(logLength, func(buf *uint8) {
			gl.GetShaderInfoLog(shader, logLength, nil, buf)
		})
	}
	return true, ""
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Device) BindAttribLocation(program, slot uint32, name string) {
	gl.BindAttribLocation(program, slot, gl.Str(name+"\x00"))
}

func (d *Device) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		return false, infoLog(logLength, func(buf *uint8) {
			gl.GetProgramInfoLog(program, logLength, nil, buf)
		})
	}
	return true, ""
}

func infoLog(length int32, read func(buf *uint8)) string {
	if length <= 0 {
		return ""
	}
	log := make([]byte, length+1)
	read(&log[0])
	return strings.TrimRight(string(log), "\x00\n")
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) ActiveUniforms(program uint32) []string {
	var count, maxLen int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if count == 0 || maxLen == 0 {
		return nil
	}

	names := make([]string, 0, count)
	buf := make([]byte, maxLen)
	for i := uint32(0); i < uint32(count); i++ {
		var length, size int32
		var kind uint32
		gl.GetActiveUniform(program, i, maxLen, &length, &size, &kind, &buf[0])
		// Arrays report "name[0]"; the base name resolves the same location.
		names = append(names, strings.TrimSuffix(string(buf[:length]), "[0]"))
	}
	return names
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) UniformMatrix3(location int32, m mgl32.Mat3) {
	gl.UniformMatrix3fv(location, 1, false, &m[0])
}

func (d *Device) Uniform4(location int32, v [4]float32) {
	gl.Uniform4fv(location, 1, &v[0])
}

func (d *Device) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (d *Device) CreateTexture(img *image.NRGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return tex
}

func (d *Device) BindTexture(unit, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

func (d *Device) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (d *Device) UploadVertices(data []byte) {
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), unsafe.Pointer(&data[0]), gl.STREAM_DRAW)
}

func (d *Device) VertexAttrib(slot uint32, layout tme.AttribLayout) {
	xtype := uint32(gl.FLOAT)
	if layout.Type == tme.AttribUnsignedByte {
		xtype = gl.UNSIGNED_BYTE
	}
	gl.VertexAttribPointerWithOffset(slot, layout.Size, xtype, layout.Normalized, layout.Stride, layout.Offset)
}

func (d *Device) EnableAttrib(slot uint32) {
	gl.EnableVertexAttribArray(slot)
}

func (d *Device) DisableAttrib(slot uint32) {
	gl.DisableVertexAttribArray(slot)
}

func (d *Device) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

func (d *Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *Device) EnableBlending() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (d *Device) ClearColor(c tme.Color) {
	gl.ClearColor(c.R(), c.G(), c.B(), c.A())
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Err drains the GL error queue and reports the first error.
func (d *Device) Err() error {
	var first uint32
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if first == 0 {
			first = code
		}
	}
	if first == 0 {
		return nil
	}
	return fmt.Errorf("gl error: %s", errorName(first))
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04x", code)
	}
}

// Release deletes the vertex buffer and array.
func (d *Device) Release() {
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
		d.vbo = 0
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

// Snapshot reads the current framebuffer into an image, flipped so that
// row 0 is the top of the window.
func Snapshot(width, height int) *image.RGBA {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stride := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * stride
		copy(img.Pix[y*stride:(y+1)*stride], pixels[src:src+stride])
	}
	return img
}

var _ tme.Device = (*Device)(nil)
