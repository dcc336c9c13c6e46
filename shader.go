package tme

import (
	"github.com/pkg/errors"
)

// AttribBinding assigns a vertex attribute name to a slot before linking.
type AttribBinding struct {
	Slot uint32
	Name string
}

// Shader is a linked vertex + fragment program with a cache of its uniform
// locations.
type Shader struct {
	dev      Device
	vertex   uint32
	fragment uint32
	program  uint32
	uniforms map[string]int32
}

// NewShader compiles both stages, binds the attribute slots, links the
// program and caches its uniform locations. Compile and link failures carry
// the backend's info log.
func NewShader(dev Device, vertexSrc, fragmentSrc string, attrs []AttribBinding) (*Shader, error) {
	vs, err := compileStage(dev, StageVertex, vertexSrc)
	if err != nil {
		return nil, err
	}
	fs, err := compileStage(dev, StageFragment, fragmentSrc)
	if err != nil {
		dev.DeleteShader(vs)
		return nil, err
	}

	program := dev.CreateProgram()
	if program == 0 {
		dev.DeleteShader(vs)
		dev.DeleteShader(fs)
		return nil, errors.New("create shader program")
	}
	dev.AttachShader(program, vs)
	dev.AttachShader(program, fs)

	// Attribute slots only take effect at link time.
	for _, a := range attrs {
		dev.BindAttribLocation(program, a.Slot, a.Name)
	}

	if ok, log := dev.LinkProgram(program); !ok {
		dev.DeleteProgram(program)
		dev.DeleteShader(vs)
		dev.DeleteShader(fs)
		return nil, errors.Errorf("shader program linking failed: %s", log)
	}

	s := &Shader{
		dev:      dev,
		vertex:   vs,
		fragment: fs,
		program:  program,
		uniforms: make(map[string]int32),
	}
	for _, name := range dev.ActiveUniforms(program) {
		if loc := dev.UniformLocation(program, name); loc >= 0 {
			s.uniforms[name] = loc
		}
	}
	return s, nil
}

func compileStage(dev Device, stage ShaderStage, src string) (uint32, error) {
	id := dev.CreateShader(stage)
	if id == 0 {
		return 0, errors.Errorf("create %s shader", stage)
	}
	if ok, log := dev.CompileShader(id, src); !ok {
		dev.DeleteShader(id)
		return 0, errors.Errorf("%s shader compilation failed: %s", stage, log)
	}
	return id, nil
}

// Program returns the backend program handle.
func (s *Shader) Program() uint32 {
	return s.program
}

// Use makes this program current. Only one program is current at a time.
func (s *Shader) Use() {
	s.dev.UseProgram(s.program)
}

func (s *Shader) location(name string) (int32, error) {
	loc, ok := s.uniforms[name]
	if !ok {
		return -1, errors.Wrap(ErrUniformNotFound, name)
	}
	return loc, nil
}

// SetMatrix uploads a transform to a mat3 uniform.
func (s *Shader) SetMatrix(name string, m Mat3x2) error {
	loc, err := s.location(name)
	if err != nil {
		return err
	}
	s.dev.UniformMatrix3(loc, m.Mat3())
	return nil
}

// SetColor uploads a color to a vec4 uniform.
func (s *Shader) SetColor(name string, c Color) error {
	loc, err := s.location(name)
	if err != nil {
		return err
	}
	s.dev.Uniform4(loc, c.Floats())
	return nil
}

// SetTexture binds tex to texture unit 0 and points the sampler at it.
func (s *Shader) SetTexture(name string, tex *Texture) error {
	if tex == nil {
		return errors.Wrap(ErrNilTexture, name)
	}
	loc, err := s.location(name)
	if err != nil {
		return err
	}
	const unit = 0
	s.dev.BindTexture(unit, tex.handle)
	s.dev.Uniform1i(loc, unit)
	return nil
}

// Delete releases the program and its stages.
func (s *Shader) Delete() {
	if s.program != 0 {
		s.dev.DeleteProgram(s.program)
		s.program = 0
	}
	if s.vertex != 0 {
		s.dev.DeleteShader(s.vertex)
		s.vertex = 0
	}
	if s.fragment != 0 {
		s.dev.DeleteShader(s.fragment)
		s.fragment = 0
	}
}
