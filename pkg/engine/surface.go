// Package engine runs the preview: it schedules render ticks, keeps the
// surface in sync with its container and swaps scene groups when the
// configuration changes.
package engine

import (
	"github.com/philipparndt/fenster/pkg/camera"
	"github.com/philipparndt/fenster/pkg/scene"
)

// Surface is a render target. Draw with a nil group clears to the background.
type Surface interface {
	Resize(width, height int)
	Draw(g *scene.Group, cam *camera.Camera) error
}

// Stage provides the group to draw on each tick
type Stage interface {
	Group() *scene.Group
}
