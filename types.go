package tme

import "math"

// Vec2 represents a 2D vector or point.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Lerp blends v towards other. a=0 yields v, a=1 yields other.
func (v Vec2) Lerp(other Vec2, a float32) Vec2 {
	return Vec2{
		X: (1-a)*v.X + a*other.X,
		Y: (1-a)*v.Y + a*other.Y,
	}
}

// Color is a packed RGBA color laid out as 0xAABBGGRR, so that it can be
// uploaded to the GPU as four normalized unsigned bytes in R, G, B, A order.
type Color uint32

// Color constants
const (
	ColorWhite       Color = 0xFFFFFFFF
	ColorBlack       Color = 0xFF000000
	ColorRed         Color = 0xFF0000FF
	ColorGreen       Color = 0xFF00FF00
	ColorBlue        Color = 0xFFFF0000
	ColorTransparent Color = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// RGBAf creates a packed color from float components (0.0-1.0).
// Components outside the range are clamped.
func RGBAf(r, g, b, a float32) Color {
	return RGBA(channelByte(r), channelByte(g), channelByte(b), channelByte(a))
}

// R returns the red channel in 0..1.
func (c Color) R() float32 { return float32(uint8(c)) / 255 }

// G returns the green channel in 0..1.
func (c Color) G() float32 { return float32(uint8(c>>8)) / 255 }

// B returns the blue channel in 0..1.
func (c Color) B() float32 { return float32(uint8(c>>16)) / 255 }

// A returns the alpha channel in 0..1.
func (c Color) A() float32 { return float32(uint8(c>>24)) / 255 }

// SetR replaces the red channel.
func (c *Color) SetR(r float32) { c.setChannel(0, r) }

// SetG replaces the green channel.
func (c *Color) SetG(g float32) { c.setChannel(8, g) }

// SetB replaces the blue channel.
func (c *Color) SetB(b float32) { c.setChannel(16, b) }

// SetA replaces the alpha channel.
func (c *Color) SetA(a float32) { c.setChannel(24, a) }

// Floats returns the color as normalized RGBA components.
func (c Color) Floats() [4]float32 {
	return [4]float32{c.R(), c.G(), c.B(), c.A()}
}

// UnpackRGBA extracts RGBA components from a packed color.
func (c Color) UnpackRGBA() (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func (c *Color) setChannel(shift uint, v float32) {
	*c = Color(uint32(*c)&^(0xFF<<shift) | uint32(channelByte(v))<<shift)
}

// channelByte quantizes a normalized component to a byte.
func channelByte(v float32) uint8 {
	return uint8(math.Round(float64(clampf(v, 0, 1)) * 255))
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
