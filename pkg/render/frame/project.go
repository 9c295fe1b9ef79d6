package frame

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/graphspin/pkg/graph"
	"github.com/matzehuels/graphspin/pkg/layout"
)

// AnchorScale widens the anchor box beyond the layout's rotation radius.
const AnchorScale = 1.5

// Anchors returns the four fixed frame corners for a centred layout: x at
// ±AnchorScale times the rotation radius in p, y at the layout's extent.
// The order is (+x,ymax), (+x,ymin), (-x,ymin), (-x,ymax).
func Anchors(l *layout.Layout, p layout.Plane) [graph.FrameVertices]r2.Vec {
	w := AnchorScale * l.Radius(p)
	ylo, yhi := l.Extent(layout.Y)
	return [graph.FrameVertices]r2.Vec{
		{X: w, Y: yhi},
		{X: w, Y: ylo},
		{X: -w, Y: ylo},
		{X: -w, Y: yhi},
	}
}

// Aspect returns the width to height ratio of the output image for l.
// A layout with no vertical extent gets AnchorScale.
func Aspect(l *layout.Layout) float64 {
	xlo, xhi := l.Extent(layout.X)
	ylo, yhi := l.Extent(layout.Y)
	if yhi-ylo <= 0 || xhi-xlo <= 0 {
		return AnchorScale
	}
	return AnchorScale * (xhi - xlo) / (yhi - ylo)
}

// Size returns the image dimensions for the given height.
func Size(l *layout.Layout, height int) (width, h int) {
	width = int(Aspect(l) * float64(height))
	if width < 1 {
		width = 1
	}
	return width, height
}

// Project maps every vertex of g to 2D. Real vertices take (x, y) from l in
// vertex order. Dummy vertices take the anchors, in order.
func Project(g *graph.Graph, l *layout.Layout, anchors [graph.FrameVertices]r2.Vec) ([]r2.Vec, error) {
	if err := l.Validate(g.RealCount()); err != nil {
		return nil, err
	}
	pts := make([]r2.Vec, g.VertexCount())
	next, dummy := 0, 0
	for i, v := range g.Vertices() {
		if v.Dummy {
			if dummy >= len(anchors) {
				return nil, fmt.Errorf("graph has more than %d frame vertices", len(anchors))
			}
			pts[i] = anchors[dummy]
			dummy++
			continue
		}
		c := l.Coords[next]
		pts[i] = r2.Vec{X: c.X, Y: c.Y}
		next++
	}
	return pts, nil
}

// Margin is the default empty border around the fitted points, in pixels.
const Margin = 20.0

// Viewport maps layout coordinates to pixel coordinates. The y axis points
// down.
type Viewport struct {
	Width, Height int

	scale  float64
	min    r2.Vec
	offset r2.Vec
}

// NewViewport fits pts uniformly into a width×height image minus margin on
// every side, centred.
func NewViewport(pts []r2.Vec, width, height int, margin float64) Viewport {
	vp := Viewport{Width: width, Height: height}
	if len(pts) == 0 {
		vp.offset = r2.Vec{X: float64(width) / 2, Y: float64(height) / 2}
		return vp
	}

	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = r2.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y)}
		hi = r2.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y)}
	}
	span := r2.Sub(hi, lo)
	avail := r2.Vec{X: float64(width) - 2*margin, Y: float64(height) - 2*margin}

	switch {
	case span.X > 0 && span.Y > 0:
		vp.scale = math.Min(avail.X/span.X, avail.Y/span.Y)
	case span.X > 0:
		vp.scale = avail.X / span.X
	case span.Y > 0:
		vp.scale = avail.Y / span.Y
	}
	if vp.scale < 0 {
		vp.scale = 0
	}

	used := r2.Scale(vp.scale, span)
	vp.min = lo
	vp.offset = r2.Vec{
		X: (float64(width) - used.X) / 2,
		Y: (float64(height) - used.Y) / 2,
	}
	return vp
}

// Map converts a layout point to pixels.
func (vp Viewport) Map(p r2.Vec) r2.Vec {
	q := r2.Add(r2.Scale(vp.scale, r2.Sub(p, vp.min)), vp.offset)
	q.Y = float64(vp.Height) - q.Y
	return q
}

// Scale returns the number of pixels per layout unit.
func (vp Viewport) Scale() float64 { return vp.scale }
