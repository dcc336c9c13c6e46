package tme_test

import (
	"errors"
	"fmt"
	"image"
	"regexp"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/tme"
)

var uniformDecl = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*;`)

// fakeDevice is a recording graphics device. Compiling a shader scans its
// source for uniform declarations so linked programs report the uniforms a
// real driver would.
type fakeDevice struct {
	nextID uint32

	shaderSrc   map[uint32]string
	attached    map[uint32][]uint32
	attribs     map[uint32]map[string]uint32
	locations   map[uint32]map[string]int32
	nextLoc     int32
	failCompile map[tme.ShaderStage]string
	shaderStage map[uint32]tme.ShaderStage
	failLink    string

	current  uint32
	matrices map[int32]mgl32.Mat3
	colors   map[int32][4]float32
	ints     map[int32]int32
	units    map[uint32]uint32

	textures map[uint32]image.Rectangle
	uploads  [][]byte
	layouts  map[uint32]tme.AttribLayout
	enabled  map[uint32]bool
	draws    int
	clears   int
	clear    tme.Color
	blending bool
	viewport [4]int32

	deletedShaders  []uint32
	deletedPrograms []uint32
	pendingErr      error
	released        bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		shaderSrc:   make(map[uint32]string),
		attached:    make(map[uint32][]uint32),
		attribs:     make(map[uint32]map[string]uint32),
		locations:   make(map[uint32]map[string]int32),
		failCompile: make(map[tme.ShaderStage]string),
		shaderStage: make(map[uint32]tme.ShaderStage),
		matrices:    make(map[int32]mgl32.Mat3),
		colors:      make(map[int32][4]float32),
		ints:        make(map[int32]int32),
		units:       make(map[uint32]uint32),
		textures:    make(map[uint32]image.Rectangle),
		layouts:     make(map[uint32]tme.AttribLayout),
		enabled:     make(map[uint32]bool),
	}
}

func (d *fakeDevice) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDevice) Version() string { return "fake 1.0" }

func (d *fakeDevice) CreateShader(stage tme.ShaderStage) uint32 {
	id := d.id()
	d.shaderStage[id] = stage
	return id
}

func (d *fakeDevice) CompileShader(shader uint32, source string) (bool, string) {
	if log, ok := d.failCompile[d.shaderStage[shader]]; ok {
		return false, log
	}
	d.shaderSrc[shader] = source
	return true, ""
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.deletedShaders = append(d.deletedShaders, shader)
}

func (d *fakeDevice) CreateProgram() uint32 {
	id := d.id()
	d.attribs[id] = make(map[string]uint32)
	return id
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	d.attached[program] = append(d.attached[program], shader)
}

func (d *fakeDevice) BindAttribLocation(program, slot uint32, name string) {
	d.attribs[program][name] = slot
}

func (d *fakeDevice) LinkProgram(program uint32) (bool, string) {
	if d.failLink != "" {
		return false, d.failLink
	}
	locs := make(map[string]int32)
	for _, sh := range d.attached[program] {
		for _, m := range uniformDecl.FindAllStringSubmatch(d.shaderSrc[sh], -1) {
			if _, ok := locs[m[1]]; !ok {
				locs[m[1]] = d.nextLoc
				d.nextLoc++
			}
		}
	}
	d.locations[program] = locs
	return true, ""
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	d.deletedPrograms = append(d.deletedPrograms, program)
}

func (d *fakeDevice) UseProgram(program uint32) { d.current = program }

func (d *fakeDevice) ActiveUniforms(program uint32) []string {
	var names []string
	for name := range d.locations[program] {
		names = append(names, name)
	}
	return names
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	if loc, ok := d.locations[program][name]; ok {
		return loc
	}
	return -1
}

// uniform returns the location of a uniform in the current program.
func (d *fakeDevice) uniform(name string) int32 {
	return d.UniformLocation(d.current, name)
}

func (d *fakeDevice) UniformMatrix3(location int32, m mgl32.Mat3) { d.matrices[location] = m }
func (d *fakeDevice) Uniform4(location int32, v [4]float32)       { d.colors[location] = v }
func (d *fakeDevice) Uniform1i(location int32, v int32)           { d.ints[location] = v }

func (d *fakeDevice) CreateTexture(img *image.NRGBA) uint32 {
	id := d.id()
	d.textures[id] = img.Rect
	return id
}

func (d *fakeDevice) BindTexture(unit, texture uint32) { d.units[unit] = texture }

func (d *fakeDevice) DeleteTexture(texture uint32) { delete(d.textures, texture) }

func (d *fakeDevice) UploadVertices(data []byte) {
	d.uploads = append(d.uploads, append([]byte(nil), data...))
}

func (d *fakeDevice) VertexAttrib(slot uint32, layout tme.AttribLayout) { d.layouts[slot] = layout }
func (d *fakeDevice) EnableAttrib(slot uint32)                          { d.enabled[slot] = true }
func (d *fakeDevice) DisableAttrib(slot uint32)                         { d.enabled[slot] = false }

func (d *fakeDevice) DrawTriangles(first, count int32) {
	if first != 0 || count != 3 {
		d.pendingErr = fmt.Errorf("unexpected draw range %d+%d", first, count)
	}
	d.draws++
}

func (d *fakeDevice) Viewport(x, y, w, h int32) { d.viewport = [4]int32{x, y, w, h} }
func (d *fakeDevice) EnableBlending()           { d.blending = true }
func (d *fakeDevice) ClearColor(c tme.Color)    { d.clear = c }
func (d *fakeDevice) Clear()                    { d.clears++ }

func (d *fakeDevice) Err() error {
	err := d.pendingErr
	d.pendingErr = nil
	return err
}

func (d *fakeDevice) Release() { d.released = true }

// fakePlatform hands out a fakeDevice and a scripted event queue.
type fakePlatform struct {
	dev     *fakeDevice
	openErr error
	events  []tme.KeyEvent
	now     float64
	opened  tme.WindowConfig
	swaps   int
	closed  bool
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{dev: newFakeDevice()}
}

func (p *fakePlatform) Open(cfg tme.WindowConfig) (tme.Device, error) {
	if p.openErr != nil {
		return nil, p.openErr
	}
	p.opened = cfg
	return p.dev, nil
}

func (p *fakePlatform) PollEvent() (tme.KeyEvent, bool) {
	if len(p.events) == 0 {
		return tme.KeyEvent{}, false
	}
	ev := p.events[0]
	p.events = p.events[1:]
	return ev, true
}

func (p *fakePlatform) Time() float64 { return p.now }
func (p *fakePlatform) SwapBuffers()  { p.swaps++ }
func (p *fakePlatform) Close()        { p.closed = true }

var errOpen = errors.New("no display")
