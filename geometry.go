package sketch3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Geometry is an indexed triangle (or line) mesh in canonical object space.
// Positions are unit sized; the requested physical dimensions live in
// Transform and are applied at draw time, so the same canonical layout is
// shared by every request of a given shape.
type Geometry struct {
	DetailX int
	DetailY int

	Vertices []mgl64.Vec3
	// Normals is either empty, meaning derive later via ComputeNormals,
	// or exactly parallel to Vertices.
	Normals []mgl64.Vec3
	// UVs holds one texture coordinate pair per vertex, in [0,1]x[0,1].
	UVs []mgl64.Vec2

	// Faces are counter-clockwise index triples into Vertices.
	Faces [][3]int
	// Edges are wireframe index pairs. Usually derived from Faces via
	// MakeTriangleEdges/EdgesToVertices; Box sets them explicitly so the
	// quad diagonals are not drawn.
	Edges [][2]int

	Transform mgl64.Mat4
}

func NewGeometry(detailX, detailY int) *Geometry {
	return &Geometry{
		DetailX:   detailX,
		DetailY:   detailY,
		Transform: mgl64.Ident4(),
	}
}

func (g *Geometry) VertexCount() int {
	return len(g.Vertices)
}

func (g *Geometry) FaceCount() int {
	return len(g.Faces)
}

// fillGrid samples fn over the (DetailY+1) x (DetailX+1) parametric grid and
// appends one vertex and UV pair per sample, plus a normal when fn returns
// one. The driver owns the loop order so that ComputeFaces always sees the
// row-major layout it assumes: outer loop over v, inner loop over u.
func (g *Geometry) fillGrid(fn func(u, v float64) (mgl64.Vec3, *mgl64.Vec3)) {
	for i := 0; i <= g.DetailY; i++ {
		v := float64(i) / float64(g.DetailY)
		for j := 0; j <= g.DetailX; j++ {
			u := float64(j) / float64(g.DetailX)
			p, n := fn(u, v)
			g.Vertices = append(g.Vertices, p)
			if n != nil {
				g.Normals = append(g.Normals, *n)
			}
			g.UVs = append(g.UVs, mgl64.Vec2{u, v})
		}
	}
}

// ComputeFaces builds two triangles per cell of a row-major
// (DetailY+1) x (DetailX+1) vertex grid, as produced by fillGrid.
func (g *Geometry) ComputeFaces() {
	sliceCount := g.DetailX + 1
	for i := 0; i < g.DetailY; i++ {
		for j := 0; j < g.DetailX; j++ {
			a := i*sliceCount + j
			b := i*sliceCount + j + 1
			c := (i+1)*sliceCount + j + 1
			d := (i+1)*sliceCount + j
			g.Faces = append(g.Faces, [3]int{a, b, d})
			g.Faces = append(g.Faces, [3]int{d, b, c})
		}
	}
}

// ComputeNormals derives per-vertex normals by averaging face normals.
// It does nothing when normals were already filled in during generation.
func (g *Geometry) ComputeNormals() {
	if len(g.Normals) > 0 {
		return
	}
	g.Normals = make([]mgl64.Vec3, len(g.Vertices))
	for _, f := range g.Faces {
		fn := faceNormal(g.Vertices[f[0]], g.Vertices[f[1]], g.Vertices[f[2]])
		for _, vi := range f {
			g.Normals[vi] = g.Normals[vi].Add(fn)
		}
	}
	for i, n := range g.Normals {
		if l := n.Len(); l > 0 {
			g.Normals[i] = n.Mul(1 / l)
		}
	}
}

// faceNormal is the normalized cross product of two triangle edges.
// Degenerate triangles yield the zero vector.
func faceNormal(a, b, c mgl64.Vec3) mgl64.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Len(); l > 0 {
		return n.Mul(1 / l)
	}
	return mgl64.Vec3{}
}

// MakeTriangleEdges rebuilds the edge list from the faces, three edges per
// triangle in face order. Shared edges appear once per triangle; call
// EdgesToVertices afterwards to deduplicate for wireframe drawing.
func (g *Geometry) MakeTriangleEdges() {
	g.Edges = g.Edges[:0]
	for _, f := range g.Faces {
		g.Edges = append(g.Edges,
			[2]int{f[0], f[1]},
			[2]int{f[1], f[2]},
			[2]int{f[2], f[0]})
	}
}

// EdgesToVertices reduces the raw per-triangle edge list to the unique
// undirected edges, preserving first-seen order.
func (g *Geometry) EdgesToVertices() {
	seen := make(map[[2]int]bool, len(g.Edges))
	unique := g.Edges[:0]
	for _, e := range g.Edges {
		key := e
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, e)
	}
	g.Edges = unique
}

// TransformedVertices returns the vertices with the attached transform
// applied, mapping canonical space to the requested dimensions. The
// canonical vertices are left untouched.
func (g *Geometry) TransformedVertices() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(g.Vertices))
	for i, v := range g.Vertices {
		out[i] = mgl64.TransformCoordinate(v, g.Transform)
	}
	return out
}

// isFinite reports whether f is neither NaN nor infinite.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
