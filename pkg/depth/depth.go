// Package depth derives per-frame vertex and edge colours from how far each
// vertex is from the viewer.
//
// Depths are normalized to [0,1] for every frame. A vertex's stroke alpha is
// z² and its fill alpha 2z², so vertices at the far side of the rotation
// fade out and vertices at the near side are drawn solid.
package depth

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/graphspin/pkg/colors"
	"github.com/matzehuels/graphspin/pkg/graph"
	"github.com/matzehuels/graphspin/pkg/layout"
)

// Fallback is used for vertices that have no base colour.
var Fallback = colors.Red.Opaque()

// EdgeFallback is used for edges whose source is a frame anchor.
var EdgeFallback = colors.Black.Opaque()

// Depths returns the depth of every vertex of g along axis. Real vertices
// take their coordinate from l in vertex order; dummy vertices are at 0.
func Depths(g *graph.Graph, l *layout.Layout, axis layout.Axis) ([]float64, error) {
	if err := l.Validate(g.RealCount()); err != nil {
		return nil, err
	}
	z := make([]float64, g.VertexCount())
	next := 0
	for i, v := range g.Vertices() {
		if v.Dummy {
			continue
		}
		z[i] = axis.Get(l.Coords[next])
		next++
	}
	return z, nil
}

// Normalize returns a copy of z shifted and scaled into [0,1]. When every
// value is equal the result is all zeros.
func Normalize(z []float64) []float64 {
	out := make([]float64, len(z))
	if len(z) == 0 {
		return out
	}
	copy(out, z)
	floats.AddConst(-floats.Min(out), out)
	if hi := floats.Max(out); hi > 0 {
		floats.Scale(1/hi, out)
	} else {
		clear(out)
	}
	return out
}

// Colors holds the depth-derived colours of one frame, indexed like the
// graph's vertices and edges.
type Colors struct {
	Stroke []colors.RGBA
	Fill   []colors.RGBA
	Edges  []colors.RGBA
}

// Colorize computes vertex and edge colours from normalized depths.
// z must have one entry per vertex of g.
func Colorize(g *graph.Graph, z []float64) (Colors, error) {
	n := g.VertexCount()
	if len(z) != n {
		return Colors{}, fmt.Errorf("%w: %d depths for %d vertices", layout.ErrLayoutSize, len(z), n)
	}

	c := Colors{
		Stroke: make([]colors.RGBA, n),
		Fill:   make([]colors.RGBA, n),
		Edges:  make([]colors.RGBA, g.EdgeCount()),
	}
	for i, v := range g.Vertices() {
		if v.Color == nil {
			c.Stroke[i], c.Fill[i] = Fallback, Fallback
			continue
		}
		a := z[i] * z[i]
		c.Stroke[i] = v.Color.WithAlpha(a)
		c.Fill[i] = v.Color.WithAlpha(2 * a)
	}
	for i, e := range g.Edges() {
		if g.Vertex(e.Source).Dummy {
			c.Edges[i] = EdgeFallback
			continue
		}
		c.Edges[i] = c.Stroke[e.Source]
	}
	return c, nil
}
