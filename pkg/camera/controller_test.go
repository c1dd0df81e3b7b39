package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoRotateSteps(t *testing.T) {
	c := NewController(10, 0)
	c.SetAutoRotate(true)

	for range 5 {
		c.Step()
	}
	_, yaw := c.CurrentOrientation()
	assert.InDelta(t, 50, yaw, 1e-9)
}

func TestAutoRotateWraps(t *testing.T) {
	c := NewController(10, 0)
	c.SetRotation(0, 355)
	c.SetAutoRotate(true)
	c.Step()

	_, yaw := c.CurrentOrientation()
	assert.InDelta(t, 5, yaw, 1e-9)
}

func TestDragSuspendsAutoRotate(t *testing.T) {
	c := NewController(10, 1)
	c.SetAutoRotate(true)
	c.SetRotation(0, 30)

	c.BeginDrag()
	for range 5 {
		c.Step()
	}
	_, yaw := c.CurrentOrientation()
	assert.InDelta(t, 30, yaw, 1e-9)
	assert.True(t, c.State().AutoRotating)

	c.EndDrag()
	c.Step()
	_, yaw = c.CurrentOrientation()
	assert.InDelta(t, 40, yaw, 1e-9)
}

func TestEndDragRestoresBaselineWithoutManualYaw(t *testing.T) {
	c := NewController(10, 1)
	c.SetAutoRotate(true)
	c.SetRotation(0, 30)

	c.BeginDrag()
	c.Drag(0, 20)
	c.EndDrag()

	pitch, yaw := c.CurrentOrientation()
	assert.InDelta(t, 30, yaw, 1e-9)
	assert.InDelta(t, -20, pitch, 1e-9)
}

func TestManualYawOverridesBaseline(t *testing.T) {
	c := NewController(10, 1)
	c.SetAutoRotate(true)
	c.SetRotation(0, 30)

	c.BeginDrag()
	c.Drag(15, 0)
	c.EndDrag()

	_, yaw := c.CurrentOrientation()
	assert.InDelta(t, 45, yaw, 1e-9)

	c.Step()
	_, yaw = c.CurrentOrientation()
	assert.InDelta(t, 55, yaw, 1e-9)
}

func TestSetRotationDuringDragCountsAsManual(t *testing.T) {
	c := NewController(10, 1)
	c.BeginDrag()
	c.SetRotation(10, 90)
	c.EndDrag()

	_, yaw := c.CurrentOrientation()
	assert.InDelta(t, 90, yaw, 1e-9)
}

func TestBackViewAddsHalfTurn(t *testing.T) {
	for _, y := range []float64{0, 45, 179, 180, 300} {
		c := NewController(0, 0)
		c.SetRotation(12, y)

		pitchFront, yawFront := c.CurrentOrientation()
		c.SetViewMode(Back)
		pitchBack, yawBack := c.CurrentOrientation()

		assert.Equal(t, pitchFront, pitchBack)
		assert.InDelta(t, wrap(yawFront+180), yawBack, 1e-9)
	}
}

func TestToggles(t *testing.T) {
	c := NewController(0, 0)

	c.ToggleViewMode()
	assert.Equal(t, Back, c.State().ViewMode)
	c.ToggleViewMode()
	assert.Equal(t, Front, c.State().ViewMode)

	c.ToggleAutoRotate()
	assert.True(t, c.State().AutoRotating)
	c.ToggleAutoRotate()
	assert.False(t, c.State().AutoRotating)
}

func TestPitchIsClamped(t *testing.T) {
	c := NewController(0, 1)
	c.Drag(0, -500)
	pitch, _ := c.CurrentOrientation()
	assert.Equal(t, MaxPitch, pitch)

	c.SetRotation(-200, 0)
	pitch, _ = c.CurrentOrientation()
	assert.Equal(t, -MaxPitch, pitch)
}

func TestWrap(t *testing.T) {
	assert.InDelta(t, 350, wrap(-10), 1e-9)
	assert.InDelta(t, 0, wrap(720), 1e-9)
	assert.InDelta(t, 90, wrap(450), 1e-9)
}

func TestNonFiniteAnglesFallBackToZero(t *testing.T) {
	c := NewController(0, 1)
	c.SetRotation(math.NaN(), math.Inf(1))
	pitch, yaw := c.CurrentOrientation()
	assert.Equal(t, 0.0, pitch)
	assert.Equal(t, 0.0, yaw)

	c.SetRotation(20, 30)
	c.Drag(math.Inf(-1), math.NaN())
	c.EndDrag()
	pitch, yaw = c.CurrentOrientation()
	assert.Equal(t, 0.0, pitch)
	assert.Equal(t, 0.0, yaw)

	c.SetViewMode(Back)
	c.SetRotation(math.Inf(-1), math.NaN())
	_, yaw = c.CurrentOrientation()
	assert.Equal(t, 180.0, yaw)
}
