package engine

import (
	"log/slog"

	"github.com/philipparndt/fenster/pkg/camera"
)

// ResizeController keeps the camera projection and the surface size in step
// with the container. It never draws; the next tick picks up the new size.
type ResizeController struct {
	log     *slog.Logger
	cam     *camera.Camera
	surface Surface

	width, height int
}

// NewResizeController creates a controller for cam and surface
func NewResizeController(log *slog.Logger, cam *camera.Camera, surface Surface) *ResizeController {
	if log == nil {
		log = slog.Default()
	}
	return &ResizeController{log: log, cam: cam, surface: surface}
}

// Resize applies a new container size in pixels. Non-positive sizes, as
// reported for minimised windows, and unchanged sizes are ignored.
func (r *ResizeController) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == r.width && height == r.height {
		return false
	}
	r.width, r.height = width, height
	r.cam.SetViewport(width, height)
	r.surface.Resize(width, height)
	r.log.Debug("surface resized", "width", width, "height", height)
	return true
}

// Size returns the last applied size
func (r *ResizeController) Size() (int, int) {
	return r.width, r.height
}
