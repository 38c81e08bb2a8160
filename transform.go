package sketch3d

import "github.com/go-gl/mathgl/mgl64"

// ScaleTransform builds the diagonal scale matrix the factories attach to a
// freshly generated mesh. Keeping size out of the canonical vertices means
// topology generation never depends on the requested dimensions.
func ScaleTransform(sx, sy, sz float64) mgl64.Mat4 {
	return mgl64.Scale3D(sx, sy, sz)
}
