package sketch3d

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// ScreenRenderer draws meshes onto an ebiten image through a camera. It
// applies the mesh transform at draw time, fills faces back to front and
// strokes the wireframe edge list on top.
type ScreenRenderer struct {
	Screen *ebiten.Image
	Camera *Camera

	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float32
	// Wireframe skips face filling and draws only the edge list.
	Wireframe bool
}

func NewScreenRenderer(screen *ebiten.Image, cam *Camera) *ScreenRenderer {
	return &ScreenRenderer{
		Screen:      screen,
		Camera:      cam,
		Fill:        color.RGBA{R: 200, G: 200, B: 200, A: 255},
		Stroke:      color.RGBA{R: 32, G: 32, B: 32, A: 255},
		StrokeWidth: 1,
	}
}

// projected is one mesh vertex after transform, view and screen projection.
type projected struct {
	x, y  float32
	depth float64
	ok    bool
}

func (r *ScreenRenderer) Render(geom *Geometry) {
	if r.Screen == nil || r.Camera == nil || geom == nil {
		return
	}
	w := r.Screen.Bounds().Dx()
	h := r.Screen.Bounds().Dy()

	world := geom.TransformedVertices()
	pts := make([]projected, len(world))
	for i, p := range world {
		x, y, depth, ok := r.Camera.Project(p, w, h)
		pts[i] = projected{x: x, y: y, depth: depth, ok: ok}
	}

	if !r.Wireframe {
		r.fillFaces(geom, pts)
	}
	for _, e := range geom.Edges {
		a, b := pts[e[0]], pts[e[1]]
		if !a.ok || !b.ok {
			continue
		}
		vector.StrokeLine(r.Screen, a.x, a.y, b.x, b.y, r.StrokeWidth, r.Stroke, true)
	}
}

// fillFaces paints triangles farthest first so nearer faces overdraw them,
// batching everything into one DrawTriangles call against a white pixel.
func (r *ScreenRenderer) fillFaces(geom *Geometry, pts []projected) {
	if len(geom.Faces) == 0 {
		return
	}

	order := make([]int, 0, len(geom.Faces))
	for i, f := range geom.Faces {
		if pts[f[0]].ok && pts[f[1]].ok && pts[f[2]].ok {
			order = append(order, i)
		}
	}
	sort.Slice(order, func(a, b int) bool {
		return faceDepth(geom.Faces[order[a]], pts) > faceDepth(geom.Faces[order[b]], pts)
	})

	cr := float32(r.Fill.R) / 255
	cg := float32(r.Fill.G) / 255
	cb := float32(r.Fill.B) / 255
	ca := float32(r.Fill.A) / 255

	vertices := make([]ebiten.Vertex, 0, len(order)*3)
	indices := make([]uint16, 0, len(order)*3)
	for _, fi := range order {
		for _, vi := range geom.Faces[fi] {
			indices = append(indices, uint16(len(vertices)))
			vertices = append(vertices, ebiten.Vertex{
				DstX:   pts[vi].x,
				DstY:   pts[vi].y,
				SrcX:   1,
				SrcY:   1,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	r.Screen.DrawTriangles(vertices, indices, whiteSub, op)
}

func faceDepth(f [3]int, pts []projected) float64 {
	return (pts[f[0]].depth + pts[f[1]].depth + pts[f[2]].depth) / 3
}
