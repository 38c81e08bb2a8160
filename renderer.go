package sketch3d

// Renderer consumes finished meshes. The factories never call a renderer
// themselves; the Draw* entry points make the forwarding explicit.
type Renderer interface {
	Render(*Geometry)
}

// Shape is a scene-graph node: a mesh plus child shapes drawn after it.
type Shape struct {
	Geom     *Geometry
	Children []*Shape
}

func NewShape(geom *Geometry) *Shape {
	return &Shape{Geom: geom}
}

func (s *Shape) AddChild(child *Shape) *Shape {
	s.Children = append(s.Children, child)
	return s
}

// DrawShape submits the shape's mesh and then, depth first, every child
// mesh to the renderer. Each node is rendered exactly once, parent before
// children.
func DrawShape(r Renderer, s *Shape) {
	if s == nil {
		return
	}
	if s.Geom != nil {
		r.Render(s.Geom)
	}
	for _, child := range s.Children {
		DrawShape(r, child)
	}
}

// The Draw* entry points pair each factory with the render hook: build the
// mesh, forward it to the renderer once, hand it back to the caller. On a
// factory error nothing is rendered.

func DrawBox(r Renderer, width, height, depth float64, detailX, detailY int) (*Geometry, error) {
	geom, err := Box(width, height, depth, detailX, detailY)
	return drawOnReturn(r, geom, err)
}

func DrawPlane(r Renderer, width, height float64, detailX, detailY int) (*Geometry, error) {
	geom, err := Plane(width, height, detailX, detailY)
	return drawOnReturn(r, geom, err)
}

func DrawSphere(r Renderer, radius float64, detailX, detailY int) (*Geometry, error) {
	geom, err := Sphere(radius, detailX, detailY)
	return drawOnReturn(r, geom, err)
}

func DrawEllipsoid(r Renderer, radiusX, radiusY, radiusZ float64, detailX, detailY int) (*Geometry, error) {
	geom, err := Ellipsoid(radiusX, radiusY, radiusZ, detailX, detailY)
	return drawOnReturn(r, geom, err)
}

func DrawCylinder(r Renderer, radius, height float64, detailX, detailY int, topCap, bottomCap bool) (*Geometry, error) {
	geom, err := Cylinder(radius, height, detailX, detailY, topCap, bottomCap)
	return drawOnReturn(r, geom, err)
}

func DrawCone(r Renderer, radius, height float64, detailX, detailY int, bottomCap bool) (*Geometry, error) {
	geom, err := Cone(radius, height, detailX, detailY, bottomCap)
	return drawOnReturn(r, geom, err)
}

func DrawTorus(r Renderer, radius, tubeRadius float64, detailX, detailY int) (*Geometry, error) {
	geom, err := Torus(radius, tubeRadius, detailX, detailY)
	return drawOnReturn(r, geom, err)
}

func DrawLine3D(r Renderer, x1, y1, z1, x2, y2, z2 float64) (*Geometry, error) {
	geom, err := Line3D(x1, y1, z1, x2, y2, z2)
	return drawOnReturn(r, geom, err)
}

func drawOnReturn(r Renderer, geom *Geometry, err error) (*Geometry, error) {
	if err != nil {
		return nil, err
	}
	r.Render(geom)
	return geom, nil
}
