package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func near(a, b Vector3) bool {
	return a.Distance(b) < 1e-9
}

func TestVector3Arithmetic(t *testing.T) {
	corner := NewVector3(-600, -750, 35)
	offset := NewVector3(1200, 1500, -70)

	if got, want := corner.Add(offset), NewVector3(600, 750, -35); got != want {
		t.Errorf("Add: expected %v, got %v", want, got)
	}
	if got, want := corner.Sub(corner), (Vector3{}); got != want {
		t.Errorf("Sub: expected %v, got %v", want, got)
	}
	if got, want := offset.Mul(0.5), NewVector3(600, 750, -35); got != want {
		t.Errorf("Mul: expected %v, got %v", want, got)
	}
	if got, want := NewVector3(1, 2, 3).Dot(NewVector3(4, 5, 6)), 32.0; got != want {
		t.Errorf("Dot: expected %v, got %v", want, got)
	}
}

func TestVector3CrossIsRightHanded(t *testing.T) {
	// x cross y points outside (+Z)
	got := NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0))
	if want := NewVector3(0, 0, 1); got != want {
		t.Errorf("Cross: expected %v, got %v", want, got)
	}
}

func TestVector3LengthAndDistance(t *testing.T) {
	if got := NewVector3(300, 400, 0).Length(); math.Abs(got-500) > 1e-9 {
		t.Errorf("Length: expected 500, got %v", got)
	}
	if got := NewVector3(0, 0, 0).Distance(NewVector3(0, 1200, 500)); math.Abs(got-1300) > 1e-9 {
		t.Errorf("Distance: expected 1300, got %v", got)
	}
}

func TestVector3Normalize(t *testing.T) {
	if got := NewVector3(0, 0, -70).Normalize(); !near(got, NewVector3(0, 0, -1)) {
		t.Errorf("Normalize: expected (0,0,-1), got %v", got)
	}
	if got := (Vector3{}).Normalize(); got != (Vector3{}) {
		t.Errorf("Normalize of zero: expected zero vector, got %v", got)
	}
}

func TestVector3MinMaxLerp(t *testing.T) {
	a := NewVector3(-600, 750, 0)
	b := NewVector3(600, -750, 70)

	if got := a.Min(b); got != NewVector3(-600, -750, 0) {
		t.Errorf("Min: got %v", got)
	}
	if got := a.Max(b); got != NewVector3(600, 750, 70) {
		t.Errorf("Max: got %v", got)
	}
	if got := a.Lerp(b, 0.5); !near(got, NewVector3(0, 0, 35)) {
		t.Errorf("Lerp: got %v", got)
	}
}

func TestVector3Transform(t *testing.T) {
	// quarter turn about a hinge at x=-500
	m := mgl64.Translate3D(-500, 0, 0).
		Mul4(mgl64.HomogRotate3DY(math.Pi / 2)).
		Mul4(mgl64.Translate3D(500, 0, 0))

	if got := NewVector3(-500, 100, 0).TransformPoint(m); !near(got, NewVector3(-500, 100, 0)) {
		t.Errorf("hinge point moved: %v", got)
	}
	if got := NewVector3(500, 0, 0).TransformPoint(m); !near(got, NewVector3(-500, 0, -1000)) {
		t.Errorf("TransformPoint: expected (-500,0,-1000), got %v", got)
	}
	if got := NewVector3(0, 0, 1).TransformDir(m); !near(got, NewVector3(1, 0, 0)) {
		t.Errorf("TransformDir: expected (1,0,0), got %v", got)
	}
}
