package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/fenster/pkg/scene"
	"github.com/philipparndt/fenster/version"
)

var helpLines = []string{
	"O / Space  open or close",
	"R          auto-rotate",
	"V          front / back view",
	"Home       reset view",
	"W          wireframe",
	"D          dimensions",
	"Drag       rotate",
	"Wheel      zoom",
	"H          hide help",
}

// drawUI draws the status overlay
func (app *App) drawUI(g *scene.Group) {
	y := float32(10)
	lineHeight := float32(20)
	fontSize := float32(16)
	textColor := rl.NewColor(40, 44, 52, 255)

	text := func(s string, col rl.Color) {
		rl.DrawTextEx(app.UI.font, s, rl.Vector2{X: 10, Y: y}, fontSize, 1, col)
		y += lineHeight
	}

	if cfg, ok := app.session.Configuration(); ok {
		text(fmt.Sprintf("%s  %.0f x %.0f mm", cfg.Variant(), cfg.Width, cfg.Height), textColor)
	}
	state, progress := app.session.AnimationState()
	text(fmt.Sprintf("%s (%.0f%%)", state, progress*100), textColor)

	cam := app.session.CameraState()
	text(fmt.Sprintf("view %s  pitch %.0f°  yaw %.0f°", cam.ViewMode, cam.RotationX, cam.RotationY), textColor)
	if g != nil {
		text(fmt.Sprintf("%d parts  %d triangles", len(g.Parts()), g.TriangleCount()), textColor)
	}

	if err := app.FileWatch.lastError; err != nil {
		text(err.Error(), rl.Maroon)
	} else if !app.FileWatch.lastReload.IsZero() && time.Since(app.FileWatch.lastReload) < 2*time.Second {
		text("reloaded", rl.DarkGreen)
	}

	if app.View.showHelp {
		y += lineHeight / 2
		for _, line := range helpLines {
			text(line, textColor)
		}
	}

	screenHeight := float32(rl.GetScreenHeight())
	footer := fmt.Sprintf("fenster %s  %d fps", version.GetVersion(), rl.GetFPS())
	rl.DrawTextEx(app.UI.font, footer, rl.Vector2{X: 10, Y: screenHeight - 24}, 14, 1, rl.Gray)
}
