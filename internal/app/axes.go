package app

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/fenster/pkg/camera"
)

type gizmoAxis struct {
	dir   mgl64.Vec3
	label string
	color rl.Color
}

var gizmoAxes = []gizmoAxis{
	{mgl64.Vec3{1, 0, 0}, "X", rl.NewColor(220, 60, 60, 255)},
	{mgl64.Vec3{0, 1, 0}, "Y", rl.NewColor(60, 180, 60, 255)},
	// +Z points outside
	{mgl64.Vec3{0, 0, 1}, "Z", rl.NewColor(60, 100, 220, 255)},
}

// drawAxes draws an orientation gizmo in the top-right corner
func (app *App) drawAxes(cam *camera.Camera) {
	axisLength := float32(40.0) // pixels
	offset := float32(20.0)

	screenWidth := float32(rl.GetScreenWidth())
	origin := rl.Vector2{X: screenWidth - axisLength - offset - 20, Y: offset + axisLength + 20}

	view := cam.View()
	type projected struct {
		axis  gizmoAxis
		end   rl.Vector2
		depth float64
	}
	var axes []projected
	for _, a := range gizmoAxes {
		v := view.Mul4x1(a.dir.Vec4(0))
		axes = append(axes, projected{
			axis: a,
			end: rl.Vector2{
				X: origin.X + float32(v.X())*axisLength,
				Y: origin.Y - float32(v.Y())*axisLength,
			},
			depth: v.Z(),
		})
	}

	// Far axes first so the near ones overlap them
	sort.Slice(axes, func(i, j int) bool { return axes[i].depth < axes[j].depth })

	for _, p := range axes {
		col := p.axis.color
		if p.depth < 0 {
			col = rl.ColorAlpha(col, 0.5)
		}
		rl.DrawLineEx(origin, p.end, 2, col)
		rl.DrawCircleV(p.end, 3, col)
		rl.DrawTextEx(app.UI.font, p.axis.label, rl.Vector2{X: p.end.X + 4, Y: p.end.Y - 6}, 12, 1, col)
	}
}
