package layout

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Plane is an ordered pair of axes. Rotating by a positive angle turns A
// towards B.
type Plane struct {
	A, B Axis
}

// Common rotation planes.
var (
	PlaneXY = Plane{X, Y}
	PlaneXZ = Plane{X, Z}
	PlaneYZ = Plane{Y, Z}
)

// DefaultPivot is the rotation centre used when none is configured.
var DefaultPivot = r3.Vec{X: 0, Y: 0, Z: -10}

// DefaultFrames is the number of steps in a full revolution.
const DefaultFrames = 360

// ParsePlane parses a plane name such as "xz".
func ParsePlane(s string) (Plane, error) {
	if len(s) != 2 {
		return Plane{}, fmt.Errorf("invalid plane %q: want two axes like \"xz\"", s)
	}
	a, err := parseAxis(s[0])
	if err != nil {
		return Plane{}, err
	}
	b, err := parseAxis(s[1])
	if err != nil {
		return Plane{}, err
	}
	if a == b {
		return Plane{}, fmt.Errorf("invalid plane %q: axes must differ", s)
	}
	return Plane{a, b}, nil
}

func parseAxis(c byte) (Axis, error) {
	switch c {
	case 'x', 'X':
		return X, nil
	case 'y', 'Y':
		return Y, nil
	case 'z', 'Z':
		return Z, nil
	}
	return 0, fmt.Errorf("invalid axis %q", c)
}

func (p Plane) String() string { return p.A.String() + p.B.String() }

// Fixed returns the axis not in p.
func (p Plane) Fixed() Axis { return 3 - p.A - p.B }

func (p Plane) rotate(v, pivot r3.Vec, sin, cos float64) r3.Vec {
	d := r3.Sub(v, pivot)
	a, b := p.A.Get(d), p.B.Get(d)
	d = p.A.Set(d, a*cos-b*sin)
	d = p.B.Set(d, a*sin+b*cos)
	return r3.Add(d, pivot)
}

// Rotator steps a layout through a full revolution. Each call to Next
// rotates the layout by 360/Frames degrees; after Frames calls the layout is
// back at its starting orientation, up to rounding.
//
// Rotator owns its layout; use Layout to read the current state.
type Rotator struct {
	layout *Layout
	frames int
	step   float64
	plane  Plane
	pivot  r3.Vec
	index  int
}

// NewRotator returns a rotator over a copy of l. A non-positive frames
// count uses DefaultFrames.
func NewRotator(l *Layout, frames int, p Plane, pivot r3.Vec) *Rotator {
	if frames <= 0 {
		frames = DefaultFrames
	}
	return &Rotator{
		layout: l.Clone(),
		frames: frames,
		step:   360 / float64(frames),
		plane:  p,
		pivot:  pivot,
		index:  -1,
	}
}

// Next advances by one step and reports whether a step was taken. It
// returns false once all frames have been produced.
func (r *Rotator) Next() bool {
	if r.index+1 >= r.frames {
		return false
	}
	r.Step()
	return true
}

// Step rotates the layout by one step regardless of the frame count.
func (r *Rotator) Step() {
	r.layout.Rotate(r.step, r.plane, r.pivot)
	r.index++
}

// Index returns the zero-based number of the current step, or -1 before the
// first call to Next.
func (r *Rotator) Index() int { return r.index }

// Frames returns the number of steps in a revolution.
func (r *Rotator) Frames() int { return r.frames }

// Angle returns the total rotation applied so far, in degrees.
func (r *Rotator) Angle() float64 { return float64(r.index+1) * r.step }

// Layout returns the current layout. The caller must not modify it.
func (r *Rotator) Layout() *Layout { return r.layout }
