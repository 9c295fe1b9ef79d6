package frame

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/graphspin/pkg/colors"
	"github.com/matzehuels/graphspin/pkg/depth"
	"github.com/matzehuels/graphspin/pkg/graph"
)

// Disc is a vertex as drawn: a circle in pixel coordinates.
type Disc struct {
	Center   r2.Vec
	Diameter float64
	Fill     colors.RGBA
	Stroke   colors.RGBA
}

// Line is an edge as drawn.
type Line struct {
	From, To r2.Vec
	Color    colors.RGBA
}

// Scene is everything a sink needs to draw one frame. Lines are drawn
// before discs; discs are drawn in vertex order.
type Scene struct {
	Width, Height int
	Background    colors.RGB
	Lines         []Line
	Discs         []Disc
}

// NewScene builds a scene from projected points and per-frame colours.
// Vertices with a non-positive size are left out.
func NewScene(g *graph.Graph, pts []r2.Vec, c depth.Colors, vp Viewport) (*Scene, error) {
	if len(pts) != g.VertexCount() {
		return nil, fmt.Errorf("%d points for %d vertices", len(pts), g.VertexCount())
	}
	if len(c.Fill) != g.VertexCount() || len(c.Edges) != g.EdgeCount() {
		return nil, fmt.Errorf("colours do not match graph")
	}

	px := make([]r2.Vec, len(pts))
	for i, p := range pts {
		px[i] = vp.Map(p)
	}

	s := &Scene{
		Width:      vp.Width,
		Height:     vp.Height,
		Background: colors.Black,
		Lines:      make([]Line, 0, g.EdgeCount()),
	}
	for i, e := range g.Edges() {
		s.Lines = append(s.Lines, Line{From: px[e.Source], To: px[e.Target], Color: c.Edges[i]})
	}
	for i := range g.VertexCount() {
		size := g.SizeOf(i)
		if size <= 0 {
			continue
		}
		s.Discs = append(s.Discs, Disc{
			Center:   px[i],
			Diameter: size,
			Fill:     c.Fill[i],
			Stroke:   c.Stroke[i],
		})
	}
	return s, nil
}
