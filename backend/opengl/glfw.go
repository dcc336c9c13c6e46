package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/tme"
)

// Platform implements tme.Platform with a GLFW window and an OpenGL 4.1
// core context. It must be created and used on the main OS thread.
type Platform struct {
	window *glfw.Window
	device *Device
	queue  []tme.KeyEvent
	start  float64
}

// NewPlatform creates an unopened GLFW platform.
func NewPlatform() *Platform {
	return &Platform{}
}

// Open initializes GLFW, creates the window and context and resolves the
// GL device.
func (p *Platform) Open(cfg tme.WindowConfig) (tme.Device, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	dev, err := newDevice()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}

	p.window = window
	p.device = dev
	p.queue = p.queue[:0]

	window.SetKeyCallback(p.keyCallback)
	window.SetCloseCallback(p.closeCallback)

	glfw.SetTime(0)
	p.start = glfw.GetTime()
	return dev, nil
}

// Window returns the underlying GLFW window, or nil before Open.
func (p *Platform) Window() *glfw.Window {
	return p.window
}

// PollEvent returns the next queued key event. When the queue is empty the
// native event queue is pumped once.
func (p *Platform) PollEvent() (tme.KeyEvent, bool) {
	if p.window == nil {
		return tme.KeyEvent{}, false
	}
	if len(p.queue) == 0 {
		glfw.PollEvents()
	}
	if len(p.queue) == 0 {
		return tme.KeyEvent{}, false
	}
	ev := p.queue[0]
	p.queue = p.queue[1:]
	return ev, true
}

// Time returns seconds since Open.
func (p *Platform) Time() float64 {
	return glfw.GetTime() - p.start
}

// SwapBuffers presents the back buffer.
func (p *Platform) SwapBuffers() {
	if p.window != nil {
		p.window.SwapBuffers()
	}
}

// Close destroys the window and terminates GLFW.
func (p *Platform) Close() {
	if p.window == nil {
		return
	}
	p.window.Destroy()
	p.window = nil
	p.device = nil
	glfw.Terminate()
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	// Auto-repeat is not a new press.
	if action == glfw.Repeat {
		return
	}
	name := KeyName(key)
	if name == "" {
		return
	}
	p.queue = append(p.queue, tme.KeyEvent{Key: name, Pressed: action == glfw.Press})
}

func (p *Platform) closeCallback(w *glfw.Window) {
	p.queue = append(p.queue, tme.KeyEvent{Quit: true})
}

var _ tme.Platform = (*Platform)(nil)
