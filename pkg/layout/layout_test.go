package layout

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func nearVec(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < 1e-6
}

func square() *Layout {
	return New([]r3.Vec{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 2},
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: -1, Z: 2},
	})
}

func TestCenter(t *testing.T) {
	l := square()
	if c := l.Centroid(); !nearVec(c, r3.Vec{Z: 1}) {
		t.Fatalf("Centroid = %v, want (0,0,1)", c)
	}
	l.Center()
	if c := l.Centroid(); !nearVec(c, r3.Vec{}) {
		t.Errorf("Centroid after Center = %v, want origin", c)
	}
	if got := l.Coords[1]; !nearVec(got, r3.Vec{X: 0, Y: 1, Z: 1}) {
		t.Errorf("Coords[1] = %v, want (0,1,1)", got)
	}
}

func TestCentroidEmpty(t *testing.T) {
	if c := New(nil).Centroid(); c != (r3.Vec{}) {
		t.Errorf("Centroid = %v, want origin", c)
	}
}

func TestExtent(t *testing.T) {
	l := square()
	tests := []struct {
		axis   Axis
		lo, hi float64
	}{
		{X, -1, 1},
		{Y, -1, 1},
		{Z, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			lo, hi := l.Extent(tt.axis)
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("Extent = (%v, %v), want (%v, %v)", lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestRadius(t *testing.T) {
	l := New([]r3.Vec{{X: 3, Y: 100, Z: 4}, {X: 1}})
	if got := l.Radius(PlaneXZ); !near(got, 5) {
		t.Errorf("Radius = %v, want 5", got)
	}
}

func TestRotateDirection(t *testing.T) {
	l := New([]r3.Vec{{X: 1, Y: 7, Z: 0}})
	l.Rotate(90, PlaneXZ, r3.Vec{})
	if got := l.Coords[0]; !nearVec(got, r3.Vec{X: 0, Y: 7, Z: 1}) {
		t.Errorf("rotated = %v, want (0,7,1)", got)
	}
}

func TestRotateAboutPivot(t *testing.T) {
	pivot := r3.Vec{Z: -10}
	l := New([]r3.Vec{{X: 0, Y: 0, Z: 0}})
	l.Rotate(180, PlaneXZ, pivot)
	if got := l.Coords[0]; !nearVec(got, r3.Vec{Z: -20}) {
		t.Errorf("rotated = %v, want (0,0,-20)", got)
	}
}

func TestRotatorPreservesPivotDistance(t *testing.T) {
	l := square()
	l.Center()
	r := NewRotator(l, 360, PlaneXZ, DefaultPivot)
	want := r3.Norm(r3.Sub(l.Centroid(), DefaultPivot))

	for r.Next() {
		got := r3.Norm(r3.Sub(r.Layout().Centroid(), DefaultPivot))
		if math.Abs(got-want) > 1e-6 {
			t.Fatalf("step %d: centroid distance = %v, want %v", r.Index(), got, want)
		}
	}
	if r.Index() != 359 {
		t.Errorf("final Index = %d, want 359", r.Index())
	}
}

func TestRotatorFullRevolution(t *testing.T) {
	l := square()
	r := NewRotator(l, 360, PlaneXZ, DefaultPivot)

	steps := 0
	for r.Next() {
		steps++
	}
	if steps != 360 {
		t.Fatalf("steps = %d, want 360", steps)
	}
	if !near(r.Angle(), 360) {
		t.Errorf("Angle = %v, want 360", r.Angle())
	}
	for i, c := range r.Layout().Coords {
		if !nearVec(c, l.Coords[i]) {
			t.Errorf("coord %d = %v, want %v", i, c, l.Coords[i])
		}
	}
	if r.Next() {
		t.Error("Next after last frame returned true")
	}
}

func TestRotatorDoesNotModifyInput(t *testing.T) {
	l := square()
	r := NewRotator(l, 4, PlaneXZ, r3.Vec{})
	r.Next()
	if l.Coords[0] != (r3.Vec{X: 1}) {
		t.Errorf("input modified: %v", l.Coords[0])
	}
}

func TestRotatorDefaults(t *testing.T) {
	r := NewRotator(square(), 0, PlaneXZ, DefaultPivot)
	if r.Frames() != DefaultFrames {
		t.Errorf("Frames = %d, want %d", r.Frames(), DefaultFrames)
	}
	if r.Index() != -1 {
		t.Errorf("Index = %d, want -1", r.Index())
	}
}

func TestParsePlane(t *testing.T) {
	tests := []struct {
		in      string
		want    Plane
		wantErr bool
	}{
		{"xz", PlaneXZ, false},
		{"XY", PlaneXY, false},
		{"zy", Plane{Z, Y}, false},
		{"xx", Plane{}, true},
		{"x", Plane{}, true},
		{"xw", Plane{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlane(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePlane = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaneFixed(t *testing.T) {
	if got := PlaneXZ.Fixed(); got != Y {
		t.Errorf("PlaneXZ.Fixed = %v, want y", got)
	}
	if got := PlaneYZ.Fixed(); got != X {
		t.Errorf("PlaneYZ.Fixed = %v, want x", got)
	}
}

func TestValidate(t *testing.T) {
	l := square()
	if err := l.Validate(4); err != nil {
		t.Errorf("Validate(4) = %v", err)
	}
	if err := l.Validate(5); !errors.Is(err, ErrLayoutSize) {
		t.Errorf("Validate(5) = %v, want ErrLayoutSize", err)
	}
	l.Coords[2].Y = math.NaN()
	if err := l.Validate(4); !errors.Is(err, ErrNonFinite) {
		t.Errorf("Validate NaN = %v, want ErrNonFinite", err)
	}
}
