package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/fenster/pkg/geometry"
)

// Leaf describes how one sash swings. Parts with a matching Role ride on it.
type Leaf struct {
	Role Role
	// Hinge is a point on the vertical hinge axis
	Hinge geometry.Vector3
	// Swing is the signed fully open angle in radians about +Y
	Swing    float64
	Operable bool
	Width    float64
}

// Motion is a leaf's rotation about its hinge at one instant
type Motion struct {
	Role  Role
	Angle float64
}

// Transform returns the rigid motion of the leaf rotated by angle
func (l Leaf) Transform(angle float64) mgl64.Mat4 {
	if angle == 0 {
		return mgl64.Ident4()
	}
	h := l.Hinge
	return mgl64.Translate3D(h.X, h.Y, h.Z).
		Mul4(mgl64.HomogRotate3DY(angle)).
		Mul4(mgl64.Translate3D(-h.X, -h.Y, -h.Z))
}
