package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/fenster/pkg/camera"
	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/philipparndt/fenster/pkg/scene"
)

// dimensionOffset is the gap between the outline and a dimension line in mm
const dimensionOffset = 80.0

var dimensionColor = rl.NewColor(200, 120, 30, 255)

// Label is a framed text box anchored at a screen position
type Label struct {
	Text      string
	ScreenPos rl.Vector2
	Color     rl.Color
}

// Draw renders the label centered on its position and returns its bounds
func (l *Label) Draw(font rl.Font, fontSize float32, padding float32) rl.Rectangle {
	textSize := rl.MeasureTextEx(font, l.Text, fontSize, 1)

	rect := rl.Rectangle{
		X:      l.ScreenPos.X - textSize.X/2 - padding,
		Y:      l.ScreenPos.Y - textSize.Y/2 - padding,
		Width:  textSize.X + 2*padding,
		Height: textSize.Y + 2*padding,
	}

	rl.DrawRectangleRec(rect, rl.NewColor(250, 250, 250, 230))
	rl.DrawRectangleLinesEx(rect, 1.5, l.Color)

	textPos := rl.Vector2{
		X: l.ScreenPos.X - textSize.X/2,
		Y: l.ScreenPos.Y - textSize.Y/2,
	}
	rl.DrawTextEx(font, l.Text, textPos, fontSize, 1, l.Color)

	return rect
}

// dimension is one measured edge of the outline
type dimension struct {
	start, end geometry.Vector3
	value      float64
}

// dimensions returns the width line below and the height line right of the
// outside face
func dimensions(g *scene.Group) []dimension {
	bbox := g.Bounds()
	z := bbox.Max.Z
	below := bbox.Min.Y - dimensionOffset
	right := bbox.Max.X + dimensionOffset
	return []dimension{
		{
			start: geometry.NewVector3(bbox.Min.X, below, z),
			end:   geometry.NewVector3(bbox.Max.X, below, z),
			value: bbox.Max.X - bbox.Min.X,
		},
		{
			start: geometry.NewVector3(right, bbox.Min.Y, z),
			end:   geometry.NewVector3(right, bbox.Max.Y, z),
			value: bbox.Max.Y - bbox.Min.Y,
		},
	}
}

// drawDimensionLines runs inside Mode3D
func (app *App) drawDimensionLines(g *scene.Group) {
	for _, d := range dimensions(g) {
		rl.DrawLine3D(toVector3(d.start), toVector3(d.end), dimensionColor)
		rl.DrawSphere(toVector3(d.start), 0.006, dimensionColor)
		rl.DrawSphere(toVector3(d.end), 0.006, dimensionColor)
	}
}

// drawDimensionLabels runs after Mode3D
func (app *App) drawDimensionLabels(g *scene.Group, cam *camera.Camera) {
	cam3d := toCamera3D(cam)
	for _, d := range dimensions(g) {
		mid := d.start.Lerp(d.end, 0.5)
		label := Label{
			Text:      fmt.Sprintf("%.0f mm", d.value),
			ScreenPos: rl.GetWorldToScreen(toVector3(mid), cam3d),
			Color:     dimensionColor,
		}
		label.Draw(app.UI.font, 14, 4)
	}
}
