package sketch3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera projects world-space points onto the screen for the software
// renderer. The view matrix is a standard right-handed look-at; projection
// is a perspective divide by camera-space depth.
type Camera struct {
	view mgl64.Mat4
	fov  float64 // vertical field of view in radians
	near float64
}

func NewCamera(eye, center, up mgl64.Vec3) *Camera {
	return &Camera{
		view: mgl64.LookAtV(eye, center, up),
		fov:  math.Pi / 3,
		near: 0.1,
	}
}

// NewCameraAt places the camera at (x, y, z) looking at the origin with +Y up.
func NewCameraAt(x, y, z float64) *Camera {
	return NewCamera(mgl64.Vec3{x, y, z}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
}

func (c *Camera) SetFOV(radians float64) {
	if radians > 0 && radians < math.Pi {
		c.fov = radians
	}
}

// ToView transforms a world-space point into camera space. The camera looks
// down its negative z axis, so points in front have negative z.
func (c *Camera) ToView(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, c.view)
}

// Project maps a world-space point to pixel coordinates on a width x height
// target. The returned depth grows with distance from the camera; ok is
// false for points at or behind the near plane, which cannot be drawn.
func (c *Camera) Project(p mgl64.Vec3, width, height int) (x, y float32, depth float64, ok bool) {
	vp := c.ToView(p)
	depth = -vp.Z()
	if depth <= c.near {
		return 0, 0, depth, false
	}
	focal := float64(height) / 2 / math.Tan(c.fov/2)
	x = float32(float64(width)/2 + vp.X()*focal/depth)
	y = float32(float64(height)/2 - vp.Y()*focal/depth)
	return x, y, depth, true
}
