// Package stl flattens a scene into a triangle soup and writes it as STL.
package stl

import (
	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/philipparndt/fenster/pkg/scene"
	"github.com/samber/lo"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// FromGroup collects the world triangles of every part of g in its current
// pose. With kinds given only parts of those kinds are included.
func FromGroup(g *scene.Group, kinds ...scene.Kind) *Model {
	m := NewModel(g.Name)
	for _, p := range g.Parts() {
		if len(kinds) > 0 && !lo.Contains(kinds, p.Kind) {
			continue
		}
		m.Triangles = append(m.Triangles, g.WorldTriangles(p)...)
	}
	return m
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea is the summed triangle area in mm²
func (m *Model) SurfaceArea() float64 {
	return lo.SumBy(m.Triangles, func(t geometry.Triangle) float64 { return t.Area() })
}
