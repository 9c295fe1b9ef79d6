package layout

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrLayoutSize is returned when a layout does not have one coordinate per
// real vertex.
var ErrLayoutSize = errors.New("layout size does not match vertex count")

// ErrNonFinite is returned when a layout contains NaN or infinite coordinates.
var ErrNonFinite = errors.New("layout contains non-finite coordinates")

// Axis names a coordinate axis.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Get returns the component of v along a.
func (a Axis) Get(v r3.Vec) float64 {
	switch a {
	case X:
		return v.X
	case Y:
		return v.Y
	default:
		return v.Z
	}
}

// Set returns v with the component along a replaced by f.
func (a Axis) Set(v r3.Vec, f float64) r3.Vec {
	switch a {
	case X:
		v.X = f
	case Y:
		v.Y = f
	default:
		v.Z = f
	}
	return v
}

// Layout is an ordered list of 3D coordinates, one per real vertex.
type Layout struct {
	Coords []r3.Vec
}

// New returns a layout holding a copy of coords.
func New(coords []r3.Vec) *Layout {
	return &Layout{Coords: slices.Clone(coords)}
}

// Len returns the number of coordinates.
func (l *Layout) Len() int { return len(l.Coords) }

// Clone returns a deep copy of l.
func (l *Layout) Clone() *Layout { return New(l.Coords) }

// Validate checks that l has exactly n finite coordinates.
func (l *Layout) Validate(n int) error {
	if len(l.Coords) != n {
		return fmt.Errorf("%w: %d coordinates for %d vertices", ErrLayoutSize, len(l.Coords), n)
	}
	for i, c := range l.Coords {
		if !finite(c) {
			return fmt.Errorf("%w: vertex %d", ErrNonFinite, i)
		}
	}
	return nil
}

// Centroid returns the mean of all coordinates, or the origin for an empty
// layout.
func (l *Layout) Centroid() r3.Vec {
	var sum r3.Vec
	if len(l.Coords) == 0 {
		return sum
	}
	for _, c := range l.Coords {
		sum = r3.Add(sum, c)
	}
	return r3.Scale(1/float64(len(l.Coords)), sum)
}

// Center translates l in place so its centroid is at the origin.
func (l *Layout) Center() {
	c := l.Centroid()
	for i := range l.Coords {
		l.Coords[i] = r3.Sub(l.Coords[i], c)
	}
}

// Bounds returns the axis-aligned bounding box of l. An empty layout has a
// zero box.
func (l *Layout) Bounds() r3.Box {
	if len(l.Coords) == 0 {
		return r3.Box{}
	}
	b := r3.Box{Min: l.Coords[0], Max: l.Coords[0]}
	for _, c := range l.Coords[1:] {
		b.Min = r3.Vec{X: math.Min(b.Min.X, c.X), Y: math.Min(b.Min.Y, c.Y), Z: math.Min(b.Min.Z, c.Z)}
		b.Max = r3.Vec{X: math.Max(b.Max.X, c.X), Y: math.Max(b.Max.Y, c.Y), Z: math.Max(b.Max.Z, c.Z)}
	}
	return b
}

// Extent returns the minimum and maximum coordinate along a.
func (l *Layout) Extent(a Axis) (lo, hi float64) {
	b := l.Bounds()
	return a.Get(b.Min), a.Get(b.Max)
}

// Radius returns the largest distance of any coordinate from the axis
// perpendicular to p, measured in p. For PlaneXZ that is max sqrt(x²+z²).
func (l *Layout) Radius(p Plane) float64 {
	var r float64
	for _, c := range l.Coords {
		r = math.Max(r, math.Hypot(p.A.Get(c), p.B.Get(c)))
	}
	return r
}

// Rotate rotates every coordinate by deg degrees in p about pivot.
// The axis not in p is left unchanged.
func (l *Layout) Rotate(deg float64, p Plane, pivot r3.Vec) {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	for i, c := range l.Coords {
		l.Coords[i] = p.rotate(c, pivot, sin, cos)
	}
}

func finite(v r3.Vec) bool {
	for _, f := range [...]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
