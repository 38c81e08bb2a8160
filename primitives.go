package sketch3d

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidParam is returned when a shape parameter is outside the numeric
// domain (NaN or infinite). Every other out-of-range value is silently
// replaced by a sane fallback; see sanitize notes on the individual factories.
var ErrInvalidParam = errors.New("invalid shape parameter")

// Documented defaults for the factory surface. Go has no default arguments;
// passing a detail count <= 0 selects the shape's default instead.
const (
	DefaultRadius     = 50.0
	DefaultTubeRadius = 10.0

	DefaultSphereDetailX   = 24
	DefaultSphereDetailY   = 16
	DefaultEllipsoidDetail = 24
	DefaultConeDetailX     = 24
	DefaultConeDetailY     = 1
	DefaultPlaneDetail     = 1
)

func checkFinite(name string, vals ...float64) error {
	for _, v := range vals {
		if !isFinite(v) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidParam, name, v)
		}
	}
	return nil
}

func defaultDetail(d, def int) int {
	if d <= 0 {
		return def
	}
	return d
}

// cubeIndices maps each cube face to four corner codes. A corner code is
// decoded bitwise into an octant of the unit cube: bit 0 selects +x,
// bit 1 selects +y, bit 2 selects +z.
var cubeIndices = [6][4]int{
	{0, 4, 2, 6}, // -x
	{1, 3, 5, 7}, // +x
	{0, 1, 4, 5}, // -y
	{2, 6, 3, 7}, // +y
	{0, 2, 1, 3}, // -z
	{4, 5, 6, 7}, // +z
}

// boxStrokes are the 12 cube edges in terms of the 24 per-face vertices.
// Drawing the derived triangle edges instead would put a diagonal seam
// across every face.
var boxStrokes = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {6, 7}, {8, 9}, {9, 11},
	{14, 15}, {16, 17}, {17, 19}, {18, 19}, {20, 21}, {22, 23},
}

// Box generates a unit cube centered on the origin, scaled to
// width x height x depth at draw time. Each of the six faces carries its own
// four vertices so faces get independent UVs and flat normals.
func Box(width, height, depth float64, detailX, detailY int) (*Geometry, error) {
	if err := checkFinite("box size", width, height, depth); err != nil {
		return nil, err
	}
	detailX = defaultDetail(detailX, DefaultPlaneDetail)
	detailY = defaultDetail(detailY, DefaultPlaneDetail)

	geom := NewGeometry(detailX, detailY)

	for i, cubeIndex := range cubeIndices {
		v := i * 4
		for j, d := range cubeIndex {
			octant := mgl64.Vec3{
				(float64(d&1)*2 - 1) / 2,
				(float64(d&2) - 1) / 2,
				(float64(d&4)/2 - 1) / 2,
			}
			geom.Vertices = append(geom.Vertices, octant)
			geom.UVs = append(geom.UVs, mgl64.Vec2{float64(j & 1), float64(j&2) / 2})
		}
		geom.Faces = append(geom.Faces, [3]int{v, v + 1, v + 2})
		geom.Faces = append(geom.Faces, [3]int{v + 2, v + 1, v + 3})
	}

	geom.ComputeNormals()
	geom.Edges = append(geom.Edges, boxStrokes[:]...)
	geom.Transform = ScaleTransform(width, height, depth)

	return geom, nil
}

// Plane generates a detailX x detailY subdivided unit square in the z=0
// plane, centered on the origin, scaled to width x height at draw time.
func Plane(width, height float64, detailX, detailY int) (*Geometry, error) {
	if err := checkFinite("plane size", width, height); err != nil {
		return nil, err
	}
	detailX = defaultDetail(detailX, DefaultPlaneDetail)
	detailY = defaultDetail(detailY, DefaultPlaneDetail)

	geom := NewGeometry(detailX, detailY)
	geom.fillGrid(func(u, v float64) (mgl64.Vec3, *mgl64.Vec3) {
		return mgl64.Vec3{u - 0.5, v - 0.5, 0}, nil
	})

	geom.ComputeFaces()
	geom.ComputeNormals()
	geom.MakeTriangleEdges()
	geom.EdgesToVertices()
	geom.Transform = ScaleTransform(width, height, 1)

	return geom, nil
}

// Sphere is the ellipsoid special case of three equal radii. The canonical
// mesh is the unit sphere; radius enters through the transform.
func Sphere(radius float64, detailX, detailY int) (*Geometry, error) {
	detailX = defaultDetail(detailX, DefaultSphereDetailX)
	detailY = defaultDetail(detailY, DefaultSphereDetailY)
	return Ellipsoid(radius, radius, radius, detailX, detailY)
}

// Ellipsoid sweeps inclination phi in [-pi/2, pi/2] over detailY rows and
// azimuth theta in [0, 2pi] over detailX columns of the unit sphere. The
// unit sphere is self-normal, so normals are filled during generation
// rather than derived from faces.
func Ellipsoid(radiusX, radiusY, radiusZ float64, detailX, detailY int) (*Geometry, error) {
	if err := checkFinite("ellipsoid radius", radiusX, radiusY, radiusZ); err != nil {
		return nil, err
	}
	detailX = defaultDetail(detailX, DefaultEllipsoidDetail)
	detailY = defaultDetail(detailY, DefaultEllipsoidDetail)

	geom := NewGeometry(detailX, detailY)
	geom.fillGrid(func(u, v float64) (mgl64.Vec3, *mgl64.Vec3) {
		phi := math.Pi*v - math.Pi/2
		theta := 2 * math.Pi * u
		p := mgl64.Vec3{
			math.Cos(phi) * math.Sin(theta),
			math.Sin(phi),
			math.Cos(phi) * math.Cos(theta),
		}
		return p, &p
	})

	geom.ComputeFaces()
	geom.MakeTriangleEdges()
	geom.EdgesToVertices()
	geom.Transform = ScaleTransform(radiusX, radiusY, radiusZ)

	return geom, nil
}

// truncatedCone is the shared ring-and-stitch engine behind Cylinder and
// Cone: a frustum between bottomRadius and topRadius over height, with
// optional flat caps, generated as a stack of detailX-gon rings.
//
// Parameters are sanitized rather than rejected: a non-positive bottom
// radius becomes 1, the top radius is clamped to >= 0, a non-positive
// height becomes the bottom radius, and the detail counts are floored to 3
// sides and 1 height segment.
func truncatedCone(bottomRadius, topRadius, height float64, detailX, detailY int, bottomCap, topCap bool) *Geometry {
	geom := NewGeometry(detailX, detailY)

	if bottomRadius <= 0 {
		bottomRadius = 1
	}
	topRadius = math.Max(topRadius, 0)
	if height <= 0 {
		height = bottomRadius
	}
	detailX = max(detailX, 3)
	detailY = max(detailY, 1)

	// Ring levels 0..detailY are the frustum body. When a cap is requested
	// the range extends by two levels on that side: the rim ring (level -1
	// or detailY+1, same radius as the adjacent body ring but clamped to
	// the exact cap plane) and the degenerate apex ring (level -2 or
	// detailY+2, radius forced to zero) for fan triangulation.
	start := 0
	if bottomCap {
		start = -2
	}
	end := detailY
	if topCap {
		end += 2
	}

	// The side normal of a frustum is constant: tilt the ring normal by
	// the slant angle of the silhouette.
	slant := math.Atan2(bottomRadius-topRadius, height)
	sinSlant := math.Sin(slant)
	cosSlant := math.Cos(slant)

	for yy := start; yy <= end; yy++ {
		v := float64(yy) / float64(detailY)
		y := height * v
		ringRadius := bottomRadius + (topRadius-bottomRadius)*v

		if yy < 0 {
			y = 0
			v = 0
			ringRadius = bottomRadius
		} else if yy > detailY {
			y = height
			v = 1
			ringRadius = topRadius
		}
		if yy == -2 || yy == detailY+2 {
			ringRadius = 0 // cap center point
		}

		y -= height / 2 // canonical y is centered on the origin

		for ii := 0; ii < detailX; ii++ {
			u := float64(ii) / float64(detailX)
			ur := 2 * math.Pi * u
			sur := math.Sin(ur)
			cur := math.Cos(ur)

			geom.Vertices = append(geom.Vertices, mgl64.Vec3{sur * ringRadius, y, cur * ringRadius})

			var normal mgl64.Vec3
			switch {
			case yy < 0:
				normal = mgl64.Vec3{0, -1, 0}
			case yy > detailY && topRadius != 0:
				normal = mgl64.Vec3{0, 1, 0}
			default:
				normal = mgl64.Vec3{sur * cosSlant, sinSlant, cur * cosSlant}
			}
			geom.Normals = append(geom.Normals, normal)
			geom.UVs = append(geom.UVs, mgl64.Vec2{u, v})
		}
	}

	// Stitch rings in emission order. startIndex tracks the first vertex
	// of the active ring pair.
	startIndex := 0
	if bottomCap {
		for jj := 0; jj < detailX; jj++ {
			nextjj := (jj + 1) % detailX
			geom.Faces = append(geom.Faces, [3]int{
				startIndex + jj,
				startIndex + detailX + nextjj,
				startIndex + detailX + jj,
			})
		}
		startIndex += detailX * 2
	}

	for i := 0; i < detailY; i++ {
		for ii := 0; ii < detailX; ii++ {
			nextii := (ii + 1) % detailX
			geom.Faces = append(geom.Faces, [3]int{
				startIndex + ii,
				startIndex + nextii,
				startIndex + detailX + nextii,
			})
			geom.Faces = append(geom.Faces, [3]int{
				startIndex + ii,
				startIndex + detailX + nextii,
				startIndex + detailX + ii,
			})
		}
		startIndex += detailX
	}

	if topCap {
		startIndex += detailX
		for ii := 0; ii < detailX; ii++ {
			geom.Faces = append(geom.Faces, [3]int{
				startIndex + ii,
				startIndex + (ii+1)%detailX,
				startIndex + detailX,
			})
		}
	}

	return geom
}

// Cylinder generates a unit cylinder with optional end caps, scaled to
// radius x height x radius at draw time. With both caps the result is a
// closed manifold.
func Cylinder(radius, height float64, detailX, detailY int, topCap, bottomCap bool) (*Geometry, error) {
	if err := checkFinite("cylinder size", radius, height); err != nil {
		return nil, err
	}
	detailX = defaultDetail(detailX, DefaultConeDetailX)
	detailY = defaultDetail(detailY, DefaultConeDetailY)

	geom := truncatedCone(1, 1, 1, detailX, detailY, bottomCap, topCap)
	geom.Transform = ScaleTransform(radius, height, radius)

	geom.MakeTriangleEdges()
	geom.EdgesToVertices()

	return geom, nil
}

// Cone generates a unit cone: a frustum with zero top radius, no top cap,
// and an optional bottom cap, scaled to radius x height x radius at draw
// time. The top body ring collapses to a single apex point.
func Cone(radius, height float64, detailX, detailY int, bottomCap bool) (*Geometry, error) {
	if err := checkFinite("cone size", radius, height); err != nil {
		return nil, err
	}
	detailX = defaultDetail(detailX, DefaultConeDetailX)
	detailY = defaultDetail(detailY, DefaultConeDetailY)

	geom := truncatedCone(1, 0, 1, detailX, detailY, bottomCap, false)

	geom.MakeTriangleEdges()
	geom.EdgesToVertices()

	geom.Transform = ScaleTransform(radius, height, radius)
	return geom, nil
}

// Torus sweeps the tube angle phi over detailY rows and the ring angle
// theta over detailX columns. The canonical ring radius is 1; the tube
// radius enters as the ratio tubeRadius/radius so that the single uniform
// scale by radius restores both.
func Torus(radius, tubeRadius float64, detailX, detailY int) (*Geometry, error) {
	if err := checkFinite("torus radius", radius, tubeRadius); err != nil {
		return nil, err
	}
	if radius == 0 {
		return nil, fmt.Errorf("%w: torus radius is zero", ErrInvalidParam)
	}
	detailX = defaultDetail(detailX, DefaultSphereDetailX)
	detailY = defaultDetail(detailY, DefaultSphereDetailY)

	tubeRatio := tubeRadius / radius
	geom := NewGeometry(detailX, detailY)
	geom.fillGrid(func(u, v float64) (mgl64.Vec3, *mgl64.Vec3) {
		phi := 2 * math.Pi * v
		theta := 2 * math.Pi * u
		r := 1 + tubeRatio*math.Cos(phi)
		p := mgl64.Vec3{r * math.Cos(theta), r * math.Sin(theta), tubeRatio * math.Sin(phi)}
		n := mgl64.Vec3{math.Cos(phi) * math.Cos(theta), math.Cos(phi) * math.Sin(theta), math.Sin(phi)}
		return p, &n
	})

	geom.ComputeFaces()
	geom.MakeTriangleEdges()
	geom.EdgesToVertices()
	geom.Transform = ScaleTransform(radius, radius, radius)

	return geom, nil
}

// Line3D generates a two-vertex, one-edge mesh between the given endpoints.
// Unlike the surface factories the endpoints are absolute, so the transform
// stays identity.
func Line3D(x1, y1, z1, x2, y2, z2 float64) (*Geometry, error) {
	if err := checkFinite("line endpoint", x1, y1, z1, x2, y2, z2); err != nil {
		return nil, err
	}
	geom := NewGeometry(1, 1)
	geom.Vertices = append(geom.Vertices, mgl64.Vec3{x1, y1, z1}, mgl64.Vec3{x2, y2, z2})
	geom.Edges = append(geom.Edges, [2]int{0, 1})
	return geom, nil
}
