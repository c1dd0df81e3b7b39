package engine

import (
	"log/slog"
	"time"

	"github.com/philipparndt/fenster/pkg/animation"
	"github.com/philipparndt/fenster/pkg/camera"
)

// RenderLoop ticks once per scheduled frame: advance the animation, step the
// camera, apply both to the current group and draw it.
type RenderLoop struct {
	log       *slog.Logger
	scheduler Scheduler
	stage     Stage
	anim      *animation.Controller
	controls  *camera.Controller
	cam       *camera.Camera
	surface   Surface

	running bool
	handle  Handle
	last    time.Time
	frames  uint64
	onError func(error)
}

// NewRenderLoop wires a loop. It does not start ticking until Start.
func NewRenderLoop(log *slog.Logger, scheduler Scheduler, stage Stage, anim *animation.Controller, controls *camera.Controller, cam *camera.Camera, surface Surface) *RenderLoop {
	if log == nil {
		log = slog.Default()
	}
	return &RenderLoop{
		log:       log,
		scheduler: scheduler,
		stage:     stage,
		anim:      anim,
		controls:  controls,
		cam:       cam,
		surface:   surface,
	}
}

// OnError registers a callback for draw failures
func (l *RenderLoop) OnError(fn func(error)) {
	l.onError = fn
}

// Start schedules the first tick. Starting a running loop does nothing.
func (l *RenderLoop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.last = time.Time{}
	l.handle = l.scheduler.Schedule(l.tick)
	l.log.Debug("render loop started")
}

// Stop cancels the pending tick. No tick runs after Stop returns.
func (l *RenderLoop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	if l.handle != 0 {
		l.scheduler.Cancel(l.handle)
		l.handle = 0
	}
	l.log.Debug("render loop stopped", "frames", l.frames)
}

// Running reports whether ticks are scheduled
func (l *RenderLoop) Running() bool {
	return l.running
}

// Frames returns the number of ticks run so far
func (l *RenderLoop) Frames() uint64 {
	return l.frames
}

func (l *RenderLoop) tick(now time.Time) {
	if !l.running {
		panic("engine: render tick after stop")
	}
	l.handle = 0

	var dt time.Duration
	if !l.last.IsZero() {
		dt = now.Sub(l.last)
	}
	l.last = now

	motions := l.anim.Tick(dt)
	l.controls.Step()
	pitch, yaw := l.controls.CurrentOrientation()

	g := l.stage.Group()
	if g != nil {
		g.Apply(motions)
	}
	l.cam.Orbit(pitch, yaw)

	if err := l.surface.Draw(g, l.cam); err != nil {
		l.log.Error("draw failed", "error", err)
		if l.onError != nil {
			l.onError(err)
		}
	}
	l.frames++

	// a draw error handler may have stopped or restarted the loop
	if l.running && l.handle == 0 {
		l.handle = l.scheduler.Schedule(l.tick)
	}
}
