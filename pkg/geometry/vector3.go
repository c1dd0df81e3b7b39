package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is a point or direction in millimeters. +Z points to the outside
// of the building, +Y up.
type Vector3 struct {
	X, Y, Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vec converts to the mathgl representation used for matrix math
func (v Vector3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromVec converts a mathgl vector back to a Vector3
func FromVec(v mgl64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (v Vector3) Add(other Vector3) Vector3 {
	return FromVec(v.Vec().Add(other.Vec()))
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return FromVec(v.Vec().Sub(other.Vec()))
}

// Mul scales the vector
func (v Vector3) Mul(scalar float64) Vector3 {
	return FromVec(v.Vec().Mul(scalar))
}

func (v Vector3) Dot(other Vector3) float64 {
	return v.Vec().Dot(other.Vec())
}

func (v Vector3) Cross(other Vector3) Vector3 {
	return FromVec(v.Vec().Cross(other.Vec()))
}

func (v Vector3) Length() float64 {
	return v.Vec().Len()
}

func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Normalize returns the unit vector, or the zero vector for a zero input
func (v Vector3) Normalize() Vector3 {
	if v.Length() == 0 {
		return Vector3{}
	}
	return FromVec(v.Vec().Normalize())
}

// Min is the component-wise minimum
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{math.Min(v.X, other.X), math.Min(v.Y, other.Y), math.Min(v.Z, other.Z)}
}

// Max is the component-wise maximum
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{math.Max(v.X, other.X), math.Max(v.Y, other.Y), math.Max(v.Z, other.Z)}
}

// Lerp interpolates linearly between v (t=0) and other (t=1)
func (v Vector3) Lerp(other Vector3, t float64) Vector3 {
	return v.Add(other.Sub(v).Mul(t))
}

// TransformPoint applies m to v as a position
func (v Vector3) TransformPoint(m mgl64.Mat4) Vector3 {
	return FromVec(mgl64.TransformCoordinate(v.Vec(), m))
}

// TransformDir applies m to v as a direction, ignoring translation
func (v Vector3) TransformDir(m mgl64.Mat4) Vector3 {
	return FromVec(mgl64.TransformNormal(v.Vec(), m))
}
