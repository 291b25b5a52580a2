package hyperview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisW
)

const (
	angleWrap = 360.0

	projectionBase  = 1.25
	projectionSlope = 0.25
)

// PlaneRotation returns the 4D rotation in the plane spanned by axes a and b:
//
//	a' = cos·a + sin·b
//	b' = cos·b - sin·a
//
// All other axes are left unchanged.
func PlaneRotation(a, b Axis, angle float64) mgl64.Mat4 {
	sin, cos := math.Sincos(angle)
	m := mgl64.Ident4()
	m.Set(int(a), int(a), cos)
	m.Set(int(a), int(b), sin)
	m.Set(int(b), int(a), -sin)
	m.Set(int(b), int(b), cos)
	return m
}

// WrapAngle reduces an elapsed time to the angle used for animation.
// The angle is in radians, so 360 is not a full turn; the wrap only keeps
// the argument bounded.
func WrapAngle(t float64) float64 {
	return math.Mod(t, angleWrap)
}

// ProjectionScale maps a w coordinate to the factor applied to (x, y, z)
// when dropping from 4D to 3D.
func ProjectionScale(w float64) float64 {
	return projectionBase - projectionSlope*w
}
