package sketch3d

// recordingRenderer is a mock for testing purposes
type recordingRenderer struct {
	rendered []*Geometry
}

func (r *recordingRenderer) Render(g *Geometry) {
	r.rendered = append(r.rendered, g)
}
