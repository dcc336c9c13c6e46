package tme

// WindowConfig describes the window the platform opens.
type WindowConfig struct {
	Title  string `json:"Title" yaml:"Title"`
	Width  int    `json:"Width" yaml:"Width"`
	Height int    `json:"Height" yaml:"Height"`
	VSync  bool   `json:"VSync" yaml:"VSync"`
	// Hidden opens the window invisible, for off-screen rendering.
	Hidden bool `json:"Hidden,omitempty" yaml:"Hidden,omitempty"`
}

// KeyEvent is a raw key transition reported by the platform. Key is the
// platform-neutral key name, such as "w", "space" or "left_control".
type KeyEvent struct {
	Key     string
	Pressed bool
	Quit    bool
}

// Platform is the window, context and event source the Engine runs on.
// Implementations must be used from the thread that created them.
type Platform interface {
	// Open creates the window and graphics context and returns the
	// resolved graphics device.
	Open(cfg WindowConfig) (Device, error)

	// PollEvent returns the next pending key event, pumping the native
	// event queue when the internal queue is empty. It never blocks.
	PollEvent() (KeyEvent, bool)

	// Time returns seconds since Open.
	Time() float64

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// Close destroys the context and window.
	Close()
}
