package parts

import (
	"image/color"
	"testing"

	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/philipparndt/fenster/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var white = scene.Material{Name: "white", Color: color.RGBA{255, 255, 255, 255}, Opacity: 1}

func TestFrameBounds(t *testing.T) {
	p := Frame(1200, 1500, white)
	b := p.Mesh.Bounds()

	assert.Equal(t, scene.KindFrame, p.Kind)
	assert.Len(t, p.Mesh.Boxes, 4)
	assert.InDelta(t, 1200, b.Size().X, 1e-9)
	assert.InDelta(t, 1500, b.Size().Y, 1e-9)
	assert.InDelta(t, FrameDepth, b.Size().Z, 1e-9)
}

func TestRingMembersDoNotOverlap(t *testing.T) {
	boxes := ring(1000, 800, 70, 200, 0, 10)

	var area float64
	for _, b := range boxes {
		s := b.Size()
		area += s.X * s.Y
	}
	want := 1000.0*800 - (1000-140)*(800-70-200)
	assert.InDelta(t, want, area, 1e-6)
}

func TestConstructorsAreDeterministic(t *testing.T) {
	slot := Slot{X: -100, Y: 0, Width: 500, Height: 1300}

	assert.Equal(t, Sash(scene.RoleLeft, slot, 60, white, white), Sash(scene.RoleLeft, slot, 60, white, white))
	assert.Equal(t, Handle(scene.RoleLeft, geometry.NewVector3(1, 2, 3), white), Handle(scene.RoleLeft, geometry.NewVector3(1, 2, 3), white))
	div := Slot{X: 200, Width: 40, Height: 1000}
	assert.Equal(t, Divider(div, white), Divider(div, white))
}

func TestSashCarriesBothFaceMaterials(t *testing.T) {
	inside := white
	inside.Name = "anthracite"
	p := Sash(scene.RoleSingle, Slot{Width: 900, Height: 1100}, 60, white, inside)

	require.NotNil(t, p.Inner)
	assert.Equal(t, "anthracite", p.Inner.Name)
	assert.Equal(t, "white", p.Material.Name)
	assert.InDelta(t, 900, p.Width(), 1e-9)
}

func TestGlassPanelBitesIntoSash(t *testing.T) {
	slot := Slot{X: 50, Y: 0, Width: 600, Height: 1000}
	opening := SashOpening(slot, 60)
	glass := GlassPanel(scene.RoleLeft, opening, white)

	assert.InDelta(t, 600-2*SashProfile+2*GlassBite, glass.Size.X, 1e-9)
	assert.InDelta(t, 50, glass.Position.X, 1e-9)
	assert.Equal(t, scene.RoleLeft, glass.Role)
}

func TestDoorSashOpeningUsesBottomRail(t *testing.T) {
	slot := Slot{Width: 900, Height: 2000}
	opening := SashOpening(slot, 700)

	assert.InDelta(t, slot.Bottom()+700, opening.Bottom(), 1e-9)
	assert.InDelta(t, slot.Top()-SashProfile, opening.Top(), 1e-9)
}

func TestDoorFrameHasNoBottomMember(t *testing.T) {
	p := DoorFrame(1000, 2100, white)
	b := p.Mesh.Bounds()

	assert.Len(t, p.Mesh.Boxes, 3)
	assert.InDelta(t, -1050, b.Min.Y, 1e-9)

	th := Threshold(1000, 2100, white)
	assert.InDelta(t, -1050+ThresholdHeight/2, th.Position.Y, 1e-9)
}

func TestHandleSitsOnInsideFace(t *testing.T) {
	p := Handle(scene.RoleSingle, geometry.NewVector3(0, 0, -SashDepth/2), white)
	assert.LessOrEqual(t, p.Mesh.Bounds().Max.Z, 0.0)
}
