package tme

import (
	"image"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"unsafe"

	"github.com/pkg/errors"
)

// alive guards the single-instance rule for Engine.
var alive atomic.Bool

// Engine is the render façade. It owns the platform window, the graphics
// device and one shader program per vertex layout. Only one Engine may
// exist at a time, and it must be used from a single thread.
type Engine struct {
	platform Platform
	dev      Device
	log      *slog.Logger
	logFile  io.Closer
	bindings map[string]Button
	clear    Color

	flat       *Shader
	colored    *Shader
	textured   *Shader
	rotateMove *Shader

	initialized bool
	closed      bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger instead of opening Config.LogFile.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates the Engine. It fails with ErrEngineExists while another
// Engine has not been uninitialized.
func New(platform Platform, opts ...Option) (*Engine, error) {
	if platform == nil {
		return nil, errors.New("nil platform")
	}
	if !alive.CompareAndSwap(false, true) {
		return nil, ErrEngineExists
	}

	e := &Engine{
		platform: platform,
		bindings: DefaultBindings(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Initialize opens the window, resolves the graphics device and builds the
// shader programs. Any failure is fatal to startup; the engine is left
// uninitialized and may only be uninitialized.
func (e *Engine) Initialize(cfg Config) error {
	if e.closed {
		return errors.New("engine already uninitialized")
	}
	if e.initialized {
		return errors.New("engine already initialized")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	if e.log == nil {
		l, closer, err := OpenLog(cfg)
		if err != nil {
			return err
		}
		e.log, e.logFile = l, closer
	}

	dev, err := e.platform.Open(cfg.Window)
	if err != nil {
		e.log.Error("failed to open window", "error", err)
		return errors.Wrap(err, "open window")
	}
	e.dev = dev
	e.log.Info("window opened",
		"title", cfg.Window.Title,
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"backend", dev.Version(),
	)

	if err := e.buildShaders(); err != nil {
		e.log.Error("failed to build shaders", "error", err)
		e.deleteShaders()
		e.dev.Release()
		e.platform.Close()
		e.dev = nil
		return err
	}

	e.clear = cfg.ClearRGBA()
	e.bindings = cfg.Bindings()

	dev.EnableBlending()
	dev.ClearColor(e.clear)
	dev.Viewport(0, 0, int32(cfg.Window.Width), int32(cfg.Window.Height))
	dev.Clear()
	if err := dev.Err(); err != nil {
		e.log.Warn("backend error during setup", "error", err)
	}

	e.initialized = true
	return nil
}

func (e *Engine) buildShaders() error {
	programs := []struct {
		dst      **Shader
		name     string
		vertex   string
		fragment string
		attrs    []AttribBinding
	}{
		{&e.flat, "flat", flatVertexShader, flatFragmentShader, flatAttribs},
		{&e.colored, "colored", colorVertexShader, colorFragmentShader, colorAttribs},
		{&e.textured, "textured", matrixVertexShader, textureFragmentShader, textureAttribs},
		{&e.rotateMove, "rotate-move", rotateMoveVertexShader, textureFragmentShader, textureAttribs},
	}
	for _, p := range programs {
		s, err := NewShader(e.dev, p.vertex, p.fragment, p.attrs)
		if err != nil {
			return errors.Wrapf(err, "%s shader", p.name)
		}
		*p.dst = s
		e.log.Debug("shader linked", "name", p.name, "program", s.Program())
	}
	return nil
}

func (e *Engine) deleteShaders() {
	for _, s := range []**Shader{&e.flat, &e.colored, &e.textured, &e.rotateMove} {
		if *s != nil {
			(*s).Delete()
			*s = nil
		}
	}
}

func (e *Engine) ready() error {
	if !e.initialized {
		return ErrNotInitialized
	}
	return nil
}

// Logger returns the engine logger.
func (e *Engine) Logger() *slog.Logger {
	if e.log == nil {
		return slog.Default()
	}
	return e.log
}

// TimeFromInit returns seconds since Initialize.
func (e *Engine) TimeFromInit() float64 {
	if !e.initialized {
		return 0
	}
	return e.platform.Time()
}

// ReadInput returns the next translated input event. It returns false when
// no event is pending for this tick. Keys without a binding are dropped.
func (e *Engine) ReadInput() (Event, bool) {
	if !e.initialized {
		return 0, false
	}
	for {
		ke, ok := e.platform.PollEvent()
		if !ok {
			return 0, false
		}
		if ke.Quit {
			return EventTurnOff, true
		}
		b, ok := e.bindings[strings.ToLower(ke.Key)]
		if !ok {
			e.log.Debug("unbound key", "key", ke.Key)
			continue
		}
		ev, _ := ButtonEvent(b, ke.Pressed)
		return ev, true
	}
}

// CreateTexture loads a PNG file and uploads it.
func (e *Engine) CreateTexture(path string) (*Texture, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	img, err := LoadPNG(path)
	if err != nil {
		e.log.Error("failed to load texture", "path", path, "error", err)
		return nil, err
	}
	return e.upload(path, img)
}

// CreateTextureFromImage uploads an in-memory image. name is reported by
// Texture.Path.
func (e *Engine) CreateTextureFromImage(name string, img image.Image) (*Texture, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, errors.Wrap(ErrNilTexture, name)
	}
	return e.upload(name, toNRGBA(img))
}

func (e *Engine) upload(path string, img *image.NRGBA) (*Texture, error) {
	handle := e.dev.CreateTexture(img)
	if err := e.dev.Err(); err != nil {
		return nil, errors.Wrapf(err, "upload texture %s", path)
	}
	t := &Texture{
		handle: handle,
		width:  img.Rect.Dx(),
		height: img.Rect.Dy(),
		path:   path,
	}
	e.log.Info("texture loaded", "path", path, "width", t.width, "height", t.height)
	return t, nil
}

// DestroyTexture releases a texture created by CreateTexture.
func (e *Engine) DestroyTexture(t *Texture) {
	if t == nil || t.handle == 0 || e.dev == nil {
		return
	}
	e.dev.DeleteTexture(t.handle)
	t.handle = 0
}

// RenderFlat draws a triangle filled with a single color.
func (e *Engine) RenderFlat(t Tri0, c Color) error {
	if err := e.ready(); err != nil {
		return err
	}
	e.flat.Use()
	if err := e.flat.SetColor(uniformColor, c); err != nil {
		return err
	}
	e.dev.UploadVertices(vertexBytes(&t))
	e.dev.VertexAttrib(slotPosition, AttribLayout{Size: 2, Type: AttribFloat, Stride: strideV0})
	e.dev.EnableAttrib(slotPosition)
	return e.draw()
}

// RenderColored draws a triangle with per-vertex colors.
func (e *Engine) RenderColored(t Tri1) error {
	if err := e.ready(); err != nil {
		return err
	}
	e.colored.Use()
	e.dev.UploadVertices(vertexBytes(&t))
	e.dev.VertexAttrib(slotPosition, AttribLayout{Size: 2, Type: AttribFloat, Stride: strideV1})
	e.dev.EnableAttrib(slotPosition)
	e.dev.VertexAttrib(slotColor, AttribLayout{
		Size:       4,
		Type:       AttribUnsignedByte,
		Normalized: true,
		Stride:     strideV1,
		Offset:     unsafe.Offsetof(V1{}.Color),
	})
	e.dev.EnableAttrib(slotColor)
	return e.draw()
}

// RenderTextured draws a textured triangle without a transform.
func (e *Engine) RenderTextured(t Tri2, tex *Texture) error {
	return e.RenderTransformed(t, tex, Identity())
}

// RenderTransformed draws a textured triangle transformed by m.
func (e *Engine) RenderTransformed(t Tri2, tex *Texture, m Mat3x2) error {
	if err := e.ready(); err != nil {
		return err
	}
	if tex == nil {
		return ErrNilTexture
	}
	s := e.textured
	s.Use()
	if err := s.SetTexture(uniformTexture, tex); err != nil {
		return err
	}
	if err := s.SetMatrix(uniformMatrix, m); err != nil {
		return err
	}
	return e.drawTri2(&t)
}

// RenderRotateMove draws a textured triangle rotated by rotate and then
// moved by move. The two transforms are uploaded separately and composed
// on the GPU in that order.
func (e *Engine) RenderRotateMove(t Tri2, tex *Texture, rotate, move Mat3x2) error {
	if err := e.ready(); err != nil {
		return err
	}
	if tex == nil {
		return ErrNilTexture
	}
	s := e.rotateMove
	s.Use()
	if err := s.SetTexture(uniformTexture, tex); err != nil {
		return err
	}
	if err := s.SetMatrix(uniformRotateMatrix, rotate); err != nil {
		return err
	}
	if err := s.SetMatrix(uniformMoveMatrix, move); err != nil {
		return err
	}
	return e.drawTri2(&t)
}

func (e *Engine) drawTri2(t *Tri2) error {
	e.dev.UploadVertices(vertexBytes(t))
	e.dev.VertexAttrib(slotPosition, AttribLayout{Size: 2, Type: AttribFloat, Stride: strideV2})
	e.dev.EnableAttrib(slotPosition)
	e.dev.VertexAttrib(slotColor, AttribLayout{
		Size:       4,
		Type:       AttribUnsignedByte,
		Normalized: true,
		Stride:     strideV2,
		Offset:     unsafe.Offsetof(V2{}.Color),
	})
	e.dev.EnableAttrib(slotColor)
	e.dev.VertexAttrib(slotUV, AttribLayout{
		Size:   2,
		Type:   AttribFloat,
		Stride: strideV2,
		Offset: unsafe.Offsetof(V2{}.UV),
	})
	e.dev.EnableAttrib(slotUV)
	return e.draw()
}

// draw issues a single triangle and disables the optional slots so the
// next call starts from a position-only layout.
func (e *Engine) draw() error {
	e.dev.DrawTriangles(0, 3)
	e.dev.DisableAttrib(slotColor)
	e.dev.DisableAttrib(slotUV)
	if err := e.dev.Err(); err != nil {
		return errors.Wrap(err, "draw triangle")
	}
	return nil
}

// SetClearColor changes the color the frame is cleared to after a swap.
func (e *Engine) SetClearColor(c Color) {
	e.clear = c
	if e.dev != nil {
		e.dev.ClearColor(c)
	}
}

// SwapBuffers presents the frame and clears the back buffer for the next
// one.
func (e *Engine) SwapBuffers() {
	if !e.initialized {
		return
	}
	e.platform.SwapBuffers()
	e.dev.Clear()
}

// Uninitialize releases the shaders, the device and the window, and allows
// a new Engine to be created. It is safe to call more than once.
func (e *Engine) Uninitialize() {
	if e.closed {
		return
	}
	e.closed = true

	if e.initialized {
		e.deleteShaders()
		e.dev.Release()
		e.platform.Close()
		e.initialized = false
		e.log.Info("engine uninitialized")
	}
	if e.logFile != nil {
		e.logFile.Close()
		e.logFile = nil
	}
	alive.Store(false)
}
