package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/tme"
)

func TestKeyName(t *testing.T) {
	cases := map[glfw.Key]string{
		glfw.KeyW:           "w",
		glfw.KeyA:           "a",
		glfw.KeyZ:           "z",
		glfw.Key7:           "7",
		glfw.KeyF1:          "f1",
		glfw.KeyF12:         "f12",
		glfw.KeySpace:       "space",
		glfw.KeyLeftControl: "left_control",
		glfw.KeyEnter:       "enter",
		glfw.KeyUnknown:     "",
		glfw.KeyPrintScreen: "",
	}
	for key, want := range cases {
		assert.Equal(t, want, KeyName(key), "key %d", key)
	}
}

// Every default binding must be reachable from some GLFW key.
func TestDefaultBindingsHaveKeys(t *testing.T) {
	names := make(map[string]bool)
	for k := glfw.KeySpace; k <= glfw.KeyLast; k++ {
		if n := KeyName(k); n != "" {
			names[n] = true
		}
	}
	for key := range tme.DefaultBindings() {
		assert.True(t, names[key], "no glfw key produces %q", key)
	}
}

func TestKeyCallbackQueues(t *testing.T) {
	p := NewPlatform()
	p.keyCallback(nil, glfw.KeyW, 0, glfw.Press, 0)
	p.keyCallback(nil, glfw.KeyW, 0, glfw.Repeat, 0)
	p.keyCallback(nil, glfw.KeyW, 0, glfw.Release, 0)
	p.keyCallback(nil, glfw.KeyPrintScreen, 0, glfw.Press, 0)
	p.closeCallback(nil)

	assert.Equal(t, []tme.KeyEvent{
		{Key: "w", Pressed: true},
		{Key: "w", Pressed: false},
		{Quit: true},
	}, p.queue)
}
