package main

import (
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	sketch3d "github.com/gosketch/sketch3d"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

// shapeSeconds is how long each primitive stays on screen.
const shapeSeconds = 4

type Game struct {
	shapes []*sketch3d.Shape
	names  []string
	tick   int
}

func NewGame() *Game {
	g := &Game{}

	add := func(name string, geom *sketch3d.Geometry, err error) {
		if err != nil {
			log.Fatalf("creating %s: %v", name, err)
		}
		g.shapes = append(g.shapes, sketch3d.NewShape(geom))
		g.names = append(g.names, name)
	}

	box, err := sketch3d.Box(120, 120, 120, 1, 1)
	add("box", box, err)
	plane, err := sketch3d.Plane(160, 160, 4, 4)
	add("plane", plane, err)
	sphere, err := sketch3d.Sphere(90, 24, 16)
	add("sphere", sphere, err)
	ellipsoid, err := sketch3d.Ellipsoid(120, 70, 70, 24, 24)
	add("ellipsoid", ellipsoid, err)
	cylinder, err := sketch3d.Cylinder(70, 140, 24, 1, true, true)
	add("cylinder", cylinder, err)
	cone, err := sketch3d.Cone(80, 140, 24, 1, true)
	add("cone", cone, err)
	torus, err := sketch3d.Torus(90, 25, 24, 16)
	add("torus", torus, err)

	log.Printf("generated %d primitives", len(g.shapes))
	return g
}

func (g *Game) Update() error {
	g.tick++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 18, B: 24, A: 255})

	// Orbit the camera; the meshes themselves never change after creation.
	angle := float64(g.tick) / 120
	eye := 320.0
	cam := sketch3d.NewCameraAt(eye*math.Sin(angle), 120, eye*math.Cos(angle))

	r := sketch3d.NewScreenRenderer(screen, cam)
	r.Fill = color.RGBA{R: 90, G: 140, B: 220, A: 255}
	r.Stroke = color.RGBA{R: 230, G: 230, B: 240, A: 255}

	current := (g.tick / (60 * shapeSeconds)) % len(g.shapes)
	sketch3d.DrawShape(r, g.shapes[current])
	ebitenutil.DebugPrint(screen, g.names[current])
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("sketch3d primitives")
	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
