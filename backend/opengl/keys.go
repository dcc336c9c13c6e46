package opengl

import (
	"strconv"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// KeyName maps a GLFW key to the platform-neutral key name used in config
// bindings. Unknown keys map to "".
func KeyName(key glfw.Key) string {
	if key >= glfw.KeyA && key <= glfw.KeyZ {
		return string(rune('a' + int(key-glfw.KeyA)))
	}
	if key >= glfw.Key0 && key <= glfw.Key9 {
		return string(rune('0' + int(key-glfw.Key0)))
	}
	if key >= glfw.KeyF1 && key <= glfw.KeyF12 {
		return "f" + strconv.Itoa(int(key-glfw.KeyF1)+1)
	}

	switch key {
	case glfw.KeySpace:
		return "space"
	case glfw.KeyEnter:
		return "enter"
	case glfw.KeyEscape:
		return "escape"
	case glfw.KeyTab:
		return "tab"
	case glfw.KeyBackspace:
		return "backspace"
	case glfw.KeyLeft:
		return "left"
	case glfw.KeyRight:
		return "right"
	case glfw.KeyUp:
		return "up"
	case glfw.KeyDown:
		return "down"
	case glfw.KeyLeftControl:
		return "left_control"
	case glfw.KeyRightControl:
		return "right_control"
	case glfw.KeyLeftShift:
		return "left_shift"
	case glfw.KeyRightShift:
		return "right_shift"
	case glfw.KeyLeftAlt:
		return "left_alt"
	case glfw.KeyRightAlt:
		return "right_alt"
	default:
		return ""
	}
}
