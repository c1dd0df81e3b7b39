package geometry

import "math"

// BoundingBox is an axis-aligned box given by its two extreme corners
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox returns an empty box that any Extend call will replace
func NewBoundingBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		Min: NewVector3(inf, inf, inf),
		Max: NewVector3(-inf, -inf, -inf),
	}
}

// BoxFromCenter creates a box of the given size centered on center
func BoxFromCenter(center, size Vector3) BoundingBox {
	half := size.Mul(0.5)
	return BoundingBox{Min: center.Sub(half), Max: center.Add(half)}
}

// Extend grows the box to contain v
func (b *BoundingBox) Extend(v Vector3) {
	b.Min = b.Min.Min(v)
	b.Max = b.Max.Max(v)
}

// Union returns a box containing both boxes
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	if other.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return other
	}
	return BoundingBox{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// IsEmpty reports whether nothing has been added to the box
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Center returns the midpoint of the box
func (b BoundingBox) Center() Vector3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the edge lengths of the box
func (b BoundingBox) Size() Vector3 {
	if b.IsEmpty() {
		return Vector3{}
	}
	return b.Max.Sub(b.Min)
}

// Volume returns the enclosed volume
func (b BoundingBox) Volume() float64 {
	s := b.Size()
	return s.X * s.Y * s.Z
}

// Diagonal returns the length of the space diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}
