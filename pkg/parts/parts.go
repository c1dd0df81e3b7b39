// Package parts builds the primitive pieces of a window or door as positioned
// meshes. Every constructor is a pure function of its arguments.
//
// Coordinates are millimeters. X points right and Y up as seen from outside;
// +Z points to the outside, so the building interior is at -Z.
package parts

import (
	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/philipparndt/fenster/pkg/scene"
)

// Profile dimensions shared by all products
const (
	FrameProfile    = 70.0
	FrameDepth      = 70.0
	SashLap         = 15.0
	SashProfile     = 60.0
	SashDepth       = 60.0
	GlassBite       = 10.0
	GlassThickness  = 24.0
	SealWidth       = 6.0
	SealThickness   = 4.0
	ThresholdHeight = 20.0
	ThresholdDepth  = 90.0
)

// Slot is a rectangle in the frame plane given by its center and extent
type Slot struct {
	X, Y          float64
	Width, Height float64
}

func (s Slot) Left() float64   { return s.X - s.Width/2 }
func (s Slot) Right() float64  { return s.X + s.Width/2 }
func (s Slot) Top() float64    { return s.Y + s.Height/2 }
func (s Slot) Bottom() float64 { return s.Y - s.Height/2 }

// Inset shrinks the slot by d on every side
func (s Slot) Inset(d float64) Slot {
	return Slot{X: s.X, Y: s.Y, Width: s.Width - 2*d, Height: s.Height - 2*d}
}

// SlotBetween builds a slot from its edges
func SlotBetween(left, right, bottom, top float64) Slot {
	return Slot{
		X:      (left + right) / 2,
		Y:      (bottom + top) / 2,
		Width:  right - left,
		Height: top - bottom,
	}
}

func box(x, y, z, w, h, d float64) geometry.BoundingBox {
	return geometry.BoxFromCenter(geometry.NewVector3(x, y, z), geometry.NewVector3(w, h, d))
}

// ring returns four boxes outlining a w×h rectangle centered on the origin,
// with side members of the given profile and a bottom member of bottom.
func ring(w, h, profile, bottom, z, depth float64) []geometry.BoundingBox {
	innerH := h - profile - bottom
	sideY := (bottom - profile) / 2
	return []geometry.BoundingBox{
		box(0, h/2-profile/2, z, w, profile, depth),
		box(0, -h/2+bottom/2, z, w, bottom, depth),
		box(-w/2+profile/2, sideY, z, profile, innerH, depth),
		box(w/2-profile/2, sideY, z, profile, innerH, depth),
	}
}

// Frame builds the outer window frame of width×height
func Frame(width, height float64, m scene.Material) *scene.Part {
	return &scene.Part{
		Kind:     scene.KindFrame,
		Name:     "frame",
		Size:     geometry.NewVector3(width, height, FrameDepth),
		Mesh:     scene.NewBoxMesh(ring(width, height, FrameProfile, FrameProfile, 0, FrameDepth)...),
		Material: m,
	}
}

// DoorFrame builds a door frame: head and jambs only, the bottom is closed
// by a Threshold
func DoorFrame(width, height float64, m scene.Material) *scene.Part {
	jambH := height - FrameProfile
	jambY := -FrameProfile / 2
	return &scene.Part{
		Kind: scene.KindFrame,
		Name: "frame",
		Size: geometry.NewVector3(width, height, FrameDepth),
		Mesh: scene.NewBoxMesh(
			box(0, height/2-FrameProfile/2, 0, width, FrameProfile, FrameDepth),
			box(-width/2+FrameProfile/2, jambY, 0, FrameProfile, jambH, FrameDepth),
			box(width/2-FrameProfile/2, jambY, 0, FrameProfile, jambH, FrameDepth),
		),
		Material: m,
	}
}

// Threshold builds the low sill of a door spanning the frame's inner width
func Threshold(width, height float64, m scene.Material) *scene.Part {
	inner := width - 2*FrameProfile
	return &scene.Part{
		Kind:     scene.KindFrame,
		Name:     "threshold",
		Position: geometry.NewVector3(0, -height/2+ThresholdHeight/2, 0),
		Size:     geometry.NewVector3(inner, ThresholdHeight, ThresholdDepth),
		Mesh:     scene.NewBoxMesh(box(0, 0, 0, inner, ThresholdHeight, ThresholdDepth)),
		Material: m,
	}
}

// Sash builds the moving frame around one glass panel. bottomRail is the
// height of the lower rail; doors use a taller one.
func Sash(role scene.Role, slot Slot, bottomRail float64, outside, inside scene.Material) *scene.Part {
	if bottomRail < SashProfile {
		bottomRail = SashProfile
	}
	in := inside
	return &scene.Part{
		Kind:     scene.KindSash,
		Name:     "sash-" + string(role),
		Role:     role,
		Position: geometry.NewVector3(slot.X, slot.Y, 0),
		Size:     geometry.NewVector3(slot.Width, slot.Height, SashDepth),
		Mesh:     scene.NewBoxMesh(ring(slot.Width, slot.Height, SashProfile, bottomRail, 0, SashDepth)...),
		Material: outside,
		Inner:    &in,
	}
}

// SashOpening returns the clear opening inside a sash placed on slot
func SashOpening(slot Slot, bottomRail float64) Slot {
	if bottomRail < SashProfile {
		bottomRail = SashProfile
	}
	return SlotBetween(
		slot.Left()+SashProfile,
		slot.Right()-SashProfile,
		slot.Bottom()+bottomRail,
		slot.Top()-SashProfile,
	)
}

// GlassPanel builds the pane filling a sash opening. The pane reaches
// GlassBite into the rails on every side.
func GlassPanel(role scene.Role, opening Slot, m scene.Material) *scene.Part {
	pane := opening.Inset(-GlassBite)
	return &scene.Part{
		Kind:     scene.KindGlassPanel,
		Name:     "glass-" + string(role),
		Role:     role,
		Position: geometry.NewVector3(pane.X, pane.Y, 0),
		Size:     geometry.NewVector3(pane.Width, pane.Height, GlassThickness),
		Mesh:     scene.NewBoxMesh(box(0, 0, 0, pane.Width, pane.Height, GlassThickness)),
		Material: m,
	}
}

// Seal builds a gasket band of SealWidth running just inside edge, at depth z
func Seal(name string, role scene.Role, edge Slot, z float64, m scene.Material) *scene.Part {
	return &scene.Part{
		Kind:     scene.KindSeal,
		Name:     name,
		Role:     role,
		Position: geometry.NewVector3(edge.X, edge.Y, z),
		Size:     geometry.NewVector3(edge.Width, edge.Height, SealThickness),
		Mesh:     scene.NewBoxMesh(ring(edge.Width, edge.Height, SealWidth, SealWidth, 0, SealThickness)...),
		Material: m,
	}
}

// GlazingSeal builds the gasket around a pane on the outside glass face
func GlazingSeal(role scene.Role, opening Slot, m scene.Material) *scene.Part {
	return Seal("seal-"+string(role), role, opening, GlassThickness/2+SealThickness/2, m)
}

// FrameSeal builds the gasket the sashes close against, running around the
// frame's clear opening
func FrameSeal(opening Slot, m scene.Material) *scene.Part {
	return Seal("seal-frame", scene.RoleNone, opening, FrameDepth/2-SealThickness/2, m)
}

// Divider builds a vertical mullion filling slot
func Divider(slot Slot, m scene.Material) *scene.Part {
	return &scene.Part{
		Kind:     scene.KindDivider,
		Name:     "divider",
		Position: geometry.NewVector3(slot.X, slot.Y, 0),
		Size:     geometry.NewVector3(slot.Width, slot.Height, FrameDepth),
		Mesh:     scene.NewBoxMesh(box(0, 0, 0, slot.Width, slot.Height, FrameDepth)),
		Material: m,
	}
}

// Handle builds a lever handle with its pivot at pos on the inside sash face.
// The lever hangs down in the closed position.
func Handle(role scene.Role, pos geometry.Vector3, m scene.Material) *scene.Part {
	return &scene.Part{
		Kind:     scene.KindHandle,
		Name:     "handle-" + string(role),
		Role:     role,
		Position: pos,
		Size:     geometry.NewVector3(36, 155, 32),
		Mesh: scene.NewBoxMesh(
			box(0, 0, -6, 36, 80, 12),
			box(0, -45, -23, 22, 130, 14),
			box(0, 0, -18, 12, 12, 12),
		),
		Material: m,
	}
}
