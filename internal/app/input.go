package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput turns this frame's keyboard and mouse state into session
// commands
func (app *App) handleInput() {
	s := app.session

	if rl.IsKeyPressed(rl.KeyO) || rl.IsKeyPressed(rl.KeySpace) {
		s.ToggleSash()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		s.ToggleAutoRotate()
	}
	if rl.IsKeyPressed(rl.KeyV) {
		s.ToggleView()
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		s.ResetView()
	}
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyD) {
		app.View.showDimensions = !app.View.showDimensions
	}
	if rl.IsKeyPressed(rl.KeyH) || rl.IsKeyPressed(rl.KeyF1) {
		app.View.showHelp = !app.View.showHelp
	}

	// Rotation with the left mouse button
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Input.dragging = true
		s.BeginDrag()
	}
	if app.Input.dragging && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			s.Drag(float64(delta.X), float64(delta.Y))
		}
	}
	if app.Input.dragging && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Input.dragging = false
		s.EndDrag()
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.Zoom(-float64(wheel) * 0.1)
	}

	if rl.IsWindowResized() {
		s.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}
}
