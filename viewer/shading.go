package viewer

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	ambientLight = 0.65
	diffuseLight = 1.0 - ambientLight
	minChannel   = 7
)

// Shade darkens base according to how squarely normal faces toLight.
// A zero normal gets ambient light only.
func Shade(base color.RGBA, normal, toLight mgl64.Vec3) color.RGBA {
	diffuse := 0.0
	if l := toLight.Len(); l > 0 && normal.Len() > 0 {
		diffuse = normal.Dot(toLight) / l
		if diffuse < 0 {
			diffuse = 0
		}
	}

	brightness := ambientLight + diffuse*diffuseLight
	c := 240 - int(brightness*240)

	return color.RGBA{
		R: uint8(clamp(int(base.R)-c, minChannel, 255)),
		G: uint8(clamp(int(base.G)-c, minChannel, 255)),
		B: uint8(clamp(int(base.B)-c, minChannel, 255)),
		A: base.A,
	}
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
