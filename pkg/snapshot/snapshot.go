// Package snapshot renders configurations offline: single stills and
// turntable sequences, driven through a session with a manual scheduler.
package snapshot

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/philipparndt/fenster/pkg/camera"
	"github.com/philipparndt/fenster/pkg/engine"
	"github.com/philipparndt/fenster/pkg/product"
	"github.com/philipparndt/fenster/pkg/viewer"
)

// Options describes an offline render
type Options struct {
	Logger  *slog.Logger
	Catalog *product.Catalog

	Width  int
	Height int

	// Open renders the sashes fully open
	Open bool
	View camera.ViewMode
	// Pitch and Yaw are the manual orbit angles in degrees
	Pitch float64
	Yaw   float64

	Caption   string
	Wireframe bool
}

// DefaultOptions renders an 800×600 front view
func DefaultOptions() Options {
	return Options{Width: 800, Height: 600, Pitch: 10, Yaw: -25}
}

type renderer struct {
	session *engine.Session
	sched   *engine.FrameScheduler
	surface *viewer.RasterSurface
	now     time.Time
}

func newRenderer(cfg product.Configuration, opts Options, sessionOpts engine.Options) (*renderer, error) {
	surface, err := viewer.NewRasterSurface(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	surface.Caption = opts.Caption
	surface.Wireframe = opts.Wireframe

	sched := engine.NewFrameScheduler()
	sessionOpts.Logger = opts.Logger
	sessionOpts.Catalog = opts.Catalog
	sessionOpts.Surface = surface
	sessionOpts.Scheduler = sched

	s, err := engine.NewSession(sessionOpts)
	if err != nil {
		return nil, err
	}
	s.Resize(opts.Width, opts.Height)
	if err := s.SetConfiguration(cfg); err != nil {
		s.Close()
		return nil, err
	}
	s.SetViewMode(opts.View)
	s.SetRotation(opts.Pitch, opts.Yaw)

	return &renderer{session: s, sched: sched, surface: surface, now: time.Unix(0, 0)}, nil
}

// frame pumps one tick of the render loop and advances the clock by dt
func (r *renderer) frame(dt time.Duration) {
	r.now = r.now.Add(dt)
	r.sched.Pump(r.now)
}

// Still renders a single image of cfg
func Still(cfg product.Configuration, opts Options) (*image.RGBA, error) {
	r, err := newRenderer(cfg, opts, engine.Options{})
	if err != nil {
		return nil, err
	}
	defer r.session.Close()

	if opts.Open {
		r.session.OpenSash()
		r.session.FinishAnimation()
	}
	if err := r.session.Start(); err != nil {
		return nil, err
	}
	r.frame(0)
	return r.surface.Image(), nil
}

// Sequence renders a turntable of frames images at fps: one full revolution
// while the sashes open during the first half. Options.Open is implied. fn receives every frame in
// order; an error from fn stops the sequence.
func Sequence(cfg product.Configuration, opts Options, frames, fps int, fn func(i int, img *image.RGBA) error) error {
	if frames <= 0 || fps <= 0 {
		return fmt.Errorf("invalid sequence: %d frames at %d fps", frames, fps)
	}
	frameTime := time.Second / time.Duration(fps)
	total := frameTime * time.Duration(frames)

	r, err := newRenderer(cfg, opts, engine.Options{
		AnimationDuration: total / 2,
		AutoRotateStep:    360 / float64(frames),
		AutoRotate:        true,
	})
	if err != nil {
		return err
	}
	defer r.session.Close()

	if err := r.session.Start(); err != nil {
		return err
	}
	r.session.OpenSash()
	for i := range frames {
		dt := frameTime
		if i == 0 {
			dt = 0
		}
		r.frame(dt)
		if err := fn(i, r.surface.Image()); err != nil {
			return err
		}
	}
	return nil
}
