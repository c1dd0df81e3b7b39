// Package camera reconciles drag rotation, auto-rotate and front/back view
// switching into one orbit orientation, and projects the scene through a
// perspective camera placed at that orientation.
package camera

import "math"

// ViewMode selects which side of the product faces the viewer
type ViewMode int

const (
	Front ViewMode = iota
	Back
)

func (v ViewMode) String() string {
	if v == Back {
		return "back"
	}
	return "front"
}

const (
	// DefaultStep is the auto-rotate increment per tick in degrees
	DefaultStep = 0.5
	// DefaultSensitivity converts drag pixels to degrees
	DefaultSensitivity = 0.5
	// MaxPitch keeps the orbit away from the poles
	MaxPitch = 85.0
)

// State is the user-facing camera state. Angles are degrees.
type State struct {
	RotationX    float64
	RotationY    float64
	AutoRotating bool
	ViewMode     ViewMode
}

// Controller owns the camera state and the drag bookkeeping
type Controller struct {
	state       State
	step        float64
	sensitivity float64

	dragging bool
	baseline float64
	manualY  bool
}

// NewController creates a front-facing controller with auto-rotate off.
// Non-positive arguments fall back to the defaults.
func NewController(step, sensitivity float64) *Controller {
	if step <= 0 {
		step = DefaultStep
	}
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	return &Controller{step: step, sensitivity: sensitivity}
}

// State returns a copy of the current state
func (c *Controller) State() State {
	return c.state
}

// Dragging reports whether a drag is in progress
func (c *Controller) Dragging() bool {
	return c.dragging
}

// autoRotateActive is the one place input precedence is decided: an active
// drag always suspends auto-rotation, without clearing the toggle.
func (c *Controller) autoRotateActive() bool {
	return c.state.AutoRotating && !c.dragging
}

// BeginDrag starts a manual rotation and remembers the yaw to return to
func (c *Controller) BeginDrag() {
	if c.dragging {
		return
	}
	c.dragging = true
	c.baseline = c.state.RotationY
	c.manualY = false
}

// Drag rotates by a pointer delta in pixels. A drag without BeginDrag
// starts one.
func (c *Controller) Drag(dx, dy float64) {
	c.BeginDrag()
	if dx != 0 {
		c.state.RotationY = wrap(c.state.RotationY + dx*c.sensitivity)
		c.manualY = true
	}
	c.state.RotationX = clampPitch(c.state.RotationX - dy*c.sensitivity)
}

// SetRotation sets both angles directly
func (c *Controller) SetRotation(x, y float64) {
	c.state.RotationX = clampPitch(x)
	c.state.RotationY = wrap(y)
	if c.dragging {
		c.manualY = true
	}
}

// EndDrag finishes a drag. Without a manual yaw change during the drag the
// yaw returns to where it was when the drag began.
func (c *Controller) EndDrag() {
	if !c.dragging {
		return
	}
	c.dragging = false
	if !c.manualY {
		c.state.RotationY = c.baseline
	}
}

// SetAutoRotate switches auto-rotation
func (c *Controller) SetAutoRotate(on bool) {
	c.state.AutoRotating = on
}

// ToggleAutoRotate flips auto-rotation
func (c *Controller) ToggleAutoRotate() {
	c.state.AutoRotating = !c.state.AutoRotating
}

// SetViewMode selects front or back view
func (c *Controller) SetViewMode(mode ViewMode) {
	c.state.ViewMode = mode
}

// ToggleViewMode switches between front and back
func (c *Controller) ToggleViewMode() {
	if c.state.ViewMode == Back {
		c.state.ViewMode = Front
	} else {
		c.state.ViewMode = Back
	}
}

// Reset returns to the front view with no rotation. Auto-rotate is kept.
func (c *Controller) Reset() {
	c.dragging = false
	c.state.RotationX = 0
	c.state.RotationY = 0
	c.state.ViewMode = Front
}

// Step advances auto-rotation by one tick
func (c *Controller) Step() {
	if c.autoRotateActive() {
		c.state.RotationY = wrap(c.state.RotationY + c.step)
	}
}

// CurrentOrientation returns pitch and yaw in degrees, yaw in [0, 360)
func (c *Controller) CurrentOrientation() (pitch, yaw float64) {
	yaw = c.state.RotationY
	if c.state.ViewMode == Back {
		yaw += 180
	}
	return c.state.RotationX, wrap(yaw)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// wrap maps any angle into [0, 360). Non-finite angles become 0.
func wrap(deg float64) float64 {
	if !finite(deg) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// clampPitch limits pitch to ±MaxPitch. Non-finite angles become 0.
func clampPitch(deg float64) float64 {
	if !finite(deg) {
		return 0
	}
	return math.Max(-MaxPitch, math.Min(MaxPitch, deg))
}
