// Package layout holds 3D vertex coordinates and the operations the
// animation needs on them.
//
// A [Layout] stores one [r3.Vec] per real vertex of a graph, in vertex order.
// Frame anchors added by graph.Frame have no entry; callers treat them as
// sitting at depth 0.
//
// # Computing layouts
//
// [ForceDirected] runs a three-dimensional Fruchterman–Reingold simulation.
// The result is deterministic for a given seed:
//
//	l := layout.ForceDirected(g, layout.WithSeed(7))
//
// Layouts can also be loaded from JSON with [ReadFile], which is how a
// precomputed layout is supplied to the animation.
//
// # Rotating
//
// A [Rotator] steps a layout through a full revolution in a fixed [Plane]
// about a fixed pivot:
//
//	r := layout.NewRotator(l, 360, layout.PlaneXZ, layout.DefaultPivot)
//	for r.Next() {
//		render(r.Layout())
//	}
package layout
