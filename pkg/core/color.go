package core

import "math"

// Color is an 8-bit RGB color as used by materials and backgrounds
type Color struct {
	R, G, B uint8
}

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Vec returns the color channels as floating point values in [0, 255]
func (c Color) Vec() Vec3 {
	return Vec3{X: float64(c.R), Y: float64(c.G), Z: float64(c.B)}
}

// ColorFromVec saturates each channel to [0, 255] and truncates it
func ColorFromVec(v Vec3) Color {
	return Color{
		R: saturate8(v.X),
		G: saturate8(v.Y),
		B: saturate8(v.Z),
	}
}

// Blend returns (1-weight)*c + weight*other with each channel saturated
func (c Color) Blend(other Color, weight float64) Color {
	return ColorFromVec(c.Vec().Multiply(1 - weight).Add(other.Vec().Multiply(weight)))
}

func saturate8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(v)
}
