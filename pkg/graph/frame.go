package graph

import (
	"fmt"

	"github.com/matzehuels/graphspin/pkg/colors"
)

// FrameVertices is the number of dummy vertices added by [Frame].
const FrameVertices = 4

// frameID returns the display ID of the i-th frame anchor. Anchors are not
// registered under their ID, so it may coincide with a real vertex ID.
func frameID(i int) string { return fmt.Sprintf("__frame_%d__", i) }

// Frame returns a copy of g with four dummy vertices appended after the
// real ones. The dummies are black, have size 0 and no edges; g itself is
// not modified.
//
// Dummies are addressed by index only: [Graph.Lookup] never returns them.
func Frame(g *Graph) *Graph {
	out := g.Clone()
	for i := range FrameVertices {
		size := 0.0
		black := colors.Black
		out.vertices = append(out.vertices, &Vertex{
			ID:    frameID(i),
			Size:  &size,
			Color: &black,
			Meta:  Metadata{},
			Dummy: true,
		})
		out.degree = append(out.degree, 0)
	}
	return out
}
