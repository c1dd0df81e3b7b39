// Package scene is the in-memory scene graph of one configured product: a
// root Group exclusively owning positioned, materialed parts.
package scene

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/samber/lo"
)

// Kind is the closed set of part roles a product is assembled from
type Kind int

const (
	KindFrame Kind = iota
	KindSash
	KindDivider
	KindGlassPanel
	KindSeal
	KindHandle
)

// Kinds lists every part kind in drawing order
var Kinds = []Kind{KindFrame, KindSash, KindDivider, KindGlassPanel, KindSeal, KindHandle}

func (k Kind) String() string {
	switch k {
	case KindFrame:
		return "frame"
	case KindSash:
		return "sash"
	case KindDivider:
		return "divider"
	case KindGlassPanel:
		return "glass"
	case KindSeal:
		return "seal"
	case KindHandle:
		return "handle"
	}
	return "unknown"
}

// ParseKind returns the kind printed as s
func ParseKind(s string) (Kind, error) {
	k, ok := lo.Find(Kinds, func(k Kind) bool { return k.String() == s })
	if !ok {
		return 0, fmt.Errorf("unknown part kind %q", s)
	}
	return k, nil
}

// Role keys a sash (and everything riding on it) within the layout
type Role string

const (
	// RoleNone marks parts fixed to the frame
	RoleNone   Role = ""
	RoleSingle Role = "single"
	RoleLeft   Role = "left"
	RoleCenter Role = "center"
	RoleRight  Role = "right"
)

// Material is a renderable surface description
type Material struct {
	Name      string
	Color     color.RGBA
	Roughness float64
	Metalness float64
	// Opacity is 1 for solid parts and below 1 for glass
	Opacity float64
}

// Transparent reports whether the material needs blending
func (m Material) Transparent() bool {
	return m.Opacity < 1
}

// Mesh is a part's geometry in part-local coordinates. Boxes is the solid
// description the triangles were generated from.
type Mesh struct {
	Boxes     []geometry.BoundingBox
	Triangles []geometry.Triangle
}

// NewBoxMesh builds a mesh from axis-aligned boxes
func NewBoxMesh(boxes ...geometry.BoundingBox) Mesh {
	mesh := Mesh{
		Boxes:     boxes,
		Triangles: make([]geometry.Triangle, 0, len(boxes)*12),
	}
	for _, b := range boxes {
		mesh.Triangles = append(mesh.Triangles, geometry.Box(b)...)
	}
	return mesh
}

// Bounds returns the local bounding box of the mesh
func (m Mesh) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, b := range m.Boxes {
		bbox = bbox.Union(b)
	}
	return bbox
}

// Part is one positioned, materialed piece of the product
type Part struct {
	Kind Kind
	Name string
	// Role is the sash the part moves with; RoleNone parts never move
	Role Role
	// Position is the translation from part-local to group coordinates
	Position geometry.Vector3
	// Size is the outer extent of the part
	Size geometry.Vector3
	Mesh Mesh
	// Material is used for every face unless Inner is set, in which case
	// faces pointing inside (-Z) use Inner
	Material Material
	Inner    *Material
	// Fixed marks a sash that cannot be opened
	Fixed bool
}

// Local returns the part's transform relative to its leaf
func (p *Part) Local() mgl64.Mat4 {
	return mgl64.Translate3D(p.Position.X, p.Position.Y, p.Position.Z)
}

// MaterialFor picks the material of a face with the given normal
func (p *Part) MaterialFor(normal geometry.Vector3) Material {
	if p.Inner != nil && normal.Z < 0 {
		return *p.Inner
	}
	return p.Material
}

// Width returns the horizontal extent of the part
func (p *Part) Width() float64 {
	return p.Size.X
}
