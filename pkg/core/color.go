package core

import (
	"image/color"
	"math"
)

// Color is a linear RGB color. Components are not clamped.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the component-wise product of two colors
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns a color with components clamped to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// ApproxEqual compares two colors component-wise within Epsilon
func (c Color) ApproxEqual(other Color) bool {
	return FloatEqual(c.R, other.R) && FloatEqual(c.G, other.G) && FloatEqual(c.B, other.B)
}

// Bytes converts the color to 0-255 channel values, clamping out of range components
func (c Color) Bytes() (r, g, b uint8) {
	cl := c.Clamp(0, 1)
	return toByte(cl.R), toByte(cl.G), toByte(cl.B)
}

// ToRGBA converts the color to an opaque color.RGBA
func (c Color) ToRGBA() color.RGBA {
	r, g, b := c.Bytes()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func toByte(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
