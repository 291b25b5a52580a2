package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const maxPitch = math.Pi/2 - 0.01

// Camera orbits a target point at a fixed distance.
type Camera struct {
	Target   mgl64.Vec3
	Distance float64
	Yaw      float64
	Pitch    float64

	// FovY is the vertical field of view in degrees.
	FovY float64
	Near float64
	Far  float64
}

func NewCamera(distance float64) *Camera {
	return &Camera{
		Distance: distance,
		FovY:     45,
		Near:     0.1,
		Far:      100,
	}
}

// AddAngle turns the camera around the target. Pitch is clamped short of the
// poles so the up vector never lines up with the view direction.
func (c *Camera) AddAngle(yaw, pitch float64) {
	c.Yaw += yaw
	c.Pitch = mgl64.Clamp(c.Pitch+pitch, -maxPitch, maxPitch)
}

func (c *Camera) Eye() mgl64.Vec3 {
	sinYaw, cosYaw := math.Sincos(c.Yaw)
	sinPitch, cosPitch := math.Sincos(c.Pitch)
	offset := mgl64.Vec3{cosPitch * sinYaw, sinPitch, cosPitch * cosYaw}
	return c.Target.Add(offset.Mul(c.Distance))
}

// Fit aims the camera at the centre of the box and backs off until a sphere
// enclosing it fills the view.
func (c *Camera) Fit(min, max mgl64.Vec3) {
	c.Target = min.Add(max).Mul(0.5)
	radius := max.Sub(min).Len() / 2
	if radius == 0 {
		return
	}
	c.Distance = radius / math.Sin(mgl64.DegToRad(c.FovY)/2)
	c.Far = c.Distance + radius*4
}

func (c *Camera) ViewProjection(aspect float64) mgl64.Mat4 {
	proj := mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
	view := mgl64.LookAtV(c.Eye(), c.Target, mgl64.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// Project maps p to screen coordinates. depth is the distance along the view
// direction; ok is false when p lies behind the near plane.
func (c *Camera) Project(p mgl64.Vec3, vp mgl64.Mat4, width, height float64) (x, y, depth float64, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w < c.Near {
		return 0, 0, 0, false
	}
	x = (clip.X()/w + 1) / 2 * width
	y = (1 - clip.Y()/w) / 2 * height
	return x, y, w, true
}
