package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/samber/lo"
)

// Resource is a backend object (GPU mesh, texture) bound to a group's lifetime
type Resource interface {
	Release()
}

// ReleaseFunc adapts a function to Resource
type ReleaseFunc func()

func (f ReleaseFunc) Release() { f() }

// Group is the root of a product scene. It owns its parts and bound resources
// exclusively; once released it must not be used again.
type Group struct {
	Name string

	parts     []*Part
	leaves    []Leaf
	angles    map[Role]float64
	resources []Resource
	released  bool
}

// NewGroup creates an empty group
func NewGroup(name string) *Group {
	return &Group{
		Name:   name,
		angles: make(map[Role]float64),
	}
}

func (g *Group) mustLive() {
	if g.released {
		panic(fmt.Sprintf("scene: use of released group %q", g.Name))
	}
}

// Add appends parts to the group
func (g *Group) Add(parts ...*Part) {
	g.mustLive()
	g.parts = append(g.parts, parts...)
}

// AddLeaf registers a sash leaf
func (g *Group) AddLeaf(leaf Leaf) {
	g.mustLive()
	g.leaves = append(g.leaves, leaf)
}

// Parts returns all parts in insertion order
func (g *Group) Parts() []*Part {
	g.mustLive()
	return g.parts
}

// Leaves returns the registered leaves in layout order
func (g *Group) Leaves() []Leaf {
	g.mustLive()
	return g.leaves
}

// Leaf looks up a leaf by role
func (g *Group) Leaf(role Role) (Leaf, bool) {
	g.mustLive()
	return lo.Find(g.leaves, func(l Leaf) bool { return l.Role == role })
}

// PartsOf returns the parts of one kind
func (g *Group) PartsOf(kind Kind) []*Part {
	g.mustLive()
	return lo.Filter(g.parts, func(p *Part, _ int) bool { return p.Kind == kind })
}

// Count returns the number of parts of one kind
func (g *Group) Count(kind Kind) int {
	g.mustLive()
	return lo.CountBy(g.parts, func(p *Part) bool { return p.Kind == kind })
}

// Sash returns the sash part with the given role, or nil
func (g *Group) Sash(role Role) *Part {
	g.mustLive()
	p, _ := lo.Find(g.parts, func(p *Part) bool { return p.Kind == KindSash && p.Role == role })
	return p
}

// Apply sets leaf angles. Roles not in the group are ignored.
func (g *Group) Apply(motions []Motion) {
	g.mustLive()
	for _, m := range motions {
		if _, ok := g.Leaf(m.Role); ok {
			g.angles[m.Role] = m.Angle
		}
	}
}

// ResetMotion closes every leaf
func (g *Group) ResetMotion() {
	g.mustLive()
	clear(g.angles)
}

// LeafAngle returns the current angle of a leaf
func (g *Group) LeafAngle(role Role) float64 {
	g.mustLive()
	return g.angles[role]
}

// WorldTransform returns the part transform including its leaf motion
func (g *Group) WorldTransform(p *Part) mgl64.Mat4 {
	g.mustLive()
	if p.Role == RoleNone {
		return p.Local()
	}
	leaf, ok := g.Leaf(p.Role)
	if !ok {
		return p.Local()
	}
	return leaf.Transform(g.angles[p.Role]).Mul4(p.Local())
}

// WorldTriangles returns a part's triangles in group coordinates
func (g *Group) WorldTriangles(p *Part) []geometry.Triangle {
	m := g.WorldTransform(p)
	out := make([]geometry.Triangle, len(p.Mesh.Triangles))
	for i, t := range p.Mesh.Triangles {
		out[i] = t.Transform(m)
	}
	return out
}

// Bounds returns the bounding box of the group in its current pose
func (g *Group) Bounds() geometry.BoundingBox {
	g.mustLive()
	bbox := geometry.NewBoundingBox()
	for _, p := range g.parts {
		m := g.WorldTransform(p)
		for _, b := range p.Mesh.Boxes {
			for _, c := range corners(b) {
				bbox.Extend(c.TransformPoint(m))
			}
		}
	}
	return bbox
}

// TriangleCount returns the total number of triangles in the group
func (g *Group) TriangleCount() int {
	g.mustLive()
	return lo.SumBy(g.parts, func(p *Part) int { return len(p.Mesh.Triangles) })
}

// Bind ties a backend resource to the group's lifetime
func (g *Group) Bind(r Resource) {
	g.mustLive()
	g.resources = append(g.resources, r)
}

// Release frees every bound resource in reverse binding order. Releasing
// twice is a no-op.
func (g *Group) Release() {
	if g.released {
		return
	}
	g.released = true
	for i := len(g.resources) - 1; i >= 0; i-- {
		g.resources[i].Release()
	}
	g.resources = nil
	g.parts = nil
	g.leaves = nil
}

// Released reports whether Release was called
func (g *Group) Released() bool {
	return g.released
}

func corners(b geometry.BoundingBox) [8]geometry.Vector3 {
	a, c := b.Min, b.Max
	return [8]geometry.Vector3{
		{X: a.X, Y: a.Y, Z: a.Z}, {X: c.X, Y: a.Y, Z: a.Z},
		{X: a.X, Y: c.Y, Z: a.Z}, {X: c.X, Y: c.Y, Z: a.Z},
		{X: a.X, Y: a.Y, Z: c.Z}, {X: c.X, Y: a.Y, Z: c.Z},
		{X: a.X, Y: c.Y, Z: c.Z}, {X: c.X, Y: c.Y, Z: c.Z},
	}
}
