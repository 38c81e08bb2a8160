package sketch3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestScaleTransformDiagonal(t *testing.T) {
	m := ScaleTransform(2, 3, 4)

	want := mgl64.Mat4{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		0, 0, 0, 1,
	}
	if m != want {
		t.Errorf("ScaleTransform(2,3,4) = %v, want diagonal (2,3,4,1)", m)
	}

	p := mgl64.TransformCoordinate(mgl64.Vec3{1, 1, 1}, m)
	if !vecAlmostEqual(p, mgl64.Vec3{2, 3, 4}) {
		t.Errorf("scaled point = %v, want (2,3,4)", p)
	}
}

func TestFactoryTransforms(t *testing.T) {
	testCases := []struct {
		name  string
		build func() (*Geometry, error)
		want  mgl64.Mat4
	}{
		{"box", func() (*Geometry, error) { return Box(2, 4, 6, 1, 1) }, ScaleTransform(2, 4, 6)},
		{"plane", func() (*Geometry, error) { return Plane(3, 5, 1, 1) }, ScaleTransform(3, 5, 1)},
		{"ellipsoid", func() (*Geometry, error) { return Ellipsoid(7, 8, 9, 8, 8) }, ScaleTransform(7, 8, 9)},
		{"cylinder", func() (*Geometry, error) { return Cylinder(10, 20, 24, 1, true, true) }, ScaleTransform(10, 20, 10)},
		{"cone", func() (*Geometry, error) { return Cone(10, 20, 24, 1, true) }, ScaleTransform(10, 20, 10)},
		{"torus", func() (*Geometry, error) { return Torus(30, 5, 24, 16) }, ScaleTransform(30, 30, 30)},
		{"line3d", func() (*Geometry, error) { return Line3D(0, 0, 0, 1, 2, 3) }, mgl64.Ident4()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.build()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.Transform != tc.want {
				t.Errorf("transform = %v, want %v", g.Transform, tc.want)
			}
		})
	}
}
