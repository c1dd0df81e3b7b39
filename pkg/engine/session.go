package engine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/philipparndt/fenster/pkg/animation"
	"github.com/philipparndt/fenster/pkg/camera"
	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/philipparndt/fenster/pkg/model"
	"github.com/philipparndt/fenster/pkg/product"
	"github.com/philipparndt/fenster/pkg/scene"
)

// Options configures a Session
type Options struct {
	Logger  *slog.Logger
	Catalog *product.Catalog
	Surface Surface
	// Scheduler defaults to a FrameScheduler the host must pump
	Scheduler Scheduler

	AnimationDuration time.Duration
	AutoRotateStep    float64
	DragSensitivity   float64
	AutoRotate        bool

	// OnBuild runs for every new group before it is installed. Hosts use it
	// to upload meshes and Bind the resulting resources to the group.
	OnBuild func(g *scene.Group) error
}

// Session is one configurator preview: the current scene group plus the
// controllers and render loop acting on it. All methods must be called from
// the goroutine that owns the session.
type Session struct {
	ID uuid.UUID

	log       *slog.Logger
	builder   *model.Builder
	scheduler Scheduler
	anim      *animation.Controller
	controls  *camera.Controller
	cam       *camera.Camera
	surface   Surface
	loop      *RenderLoop
	resize    *ResizeController
	onBuild   func(*scene.Group) error

	group     *scene.Group
	cfg       product.Configuration
	hasConfig bool
	teardown  []func()
	closed    bool
}

// NewSession creates a session drawing into opts.Surface. A missing surface
// is a *ResourceError.
func NewSession(opts Options) (*Session, error) {
	if opts.Surface == nil {
		return nil, &ResourceError{Op: "surface", Err: errors.New("no render surface")}
	}
	if opts.Catalog == nil {
		opts.Catalog = product.DefaultCatalog()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewFrameScheduler()
	}

	id := uuid.New()
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("session", id.String())

	s := &Session{
		ID:        id,
		log:       log,
		builder:   model.NewBuilder(log, opts.Catalog),
		scheduler: opts.Scheduler,
		anim:      animation.New(opts.AnimationDuration),
		controls:  camera.NewController(opts.AutoRotateStep, opts.DragSensitivity),
		cam:       camera.NewCamera(defaultBounds()),
		surface:   opts.Surface,
		onBuild:   opts.OnBuild,
	}
	s.controls.SetAutoRotate(opts.AutoRotate)
	s.loop = NewRenderLoop(log, s.scheduler, s, s.anim, s.controls, s.cam, s.surface)
	s.resize = NewResizeController(log, s.cam, s.surface)
	return s, nil
}

func (s *Session) mustOpen() {
	if s.closed {
		panic(ErrSessionClosed)
	}
}

// Group returns the current scene group, nil before the first configuration
func (s *Session) Group() *scene.Group {
	return s.group
}

// Configuration returns the configuration the current group was built from
func (s *Session) Configuration() (product.Configuration, bool) {
	return s.cfg, s.hasConfig
}

// Catalog returns the catalog configurations are checked against
func (s *Session) Catalog() *product.Catalog {
	return s.builder.Catalog()
}

// SetConfiguration builds a new group for cfg and installs it, releasing the
// previous one. On failure the previous group stays in place untouched.
// Changing product or window type resets the animation to closed; any other
// change keeps the sash where it is.
func (s *Session) SetConfiguration(cfg product.Configuration) error {
	if s.closed {
		return ErrSessionClosed
	}

	g, err := s.builder.Build(cfg)
	if err != nil {
		s.log.Warn("configuration rejected", "error", err)
		return err
	}
	if s.onBuild != nil {
		if err := s.onBuild(g); err != nil {
			g.Release()
			return &ResourceError{Op: "upload", Err: err}
		}
	}

	variantChanged := !s.hasConfig || s.cfg.Variant() != cfg.Variant()
	sizeChanged := !s.hasConfig || s.cfg.Width != cfg.Width || s.cfg.Height != cfg.Height

	old := s.group
	s.group = g
	s.cfg = cfg
	s.hasConfig = true
	if old != nil {
		old.Release()
		s.log.Debug("released scene", "name", old.Name)
	}

	if variantChanged {
		s.anim.Reset(g.Leaves())
	} else {
		s.anim.Rebind(g.Leaves())
	}
	g.Apply(s.anim.Motions())
	if sizeChanged || variantChanged {
		s.cam.Fit(g.Bounds())
	}

	s.log.Info("configuration applied",
		"variant", cfg.Variant().String(),
		"width", cfg.Width,
		"height", cfg.Height,
		"parts", len(g.Parts()),
		"reset", variantChanged,
	)
	return nil
}

// Start begins rendering. It does nothing when already running.
func (s *Session) Start() error {
	if s.closed {
		return ErrSessionClosed
	}
	s.loop.Start()
	return nil
}

// Stop halts rendering; the pending tick is cancelled
func (s *Session) Stop() {
	s.mustOpen()
	s.loop.Stop()
}

// Running reports whether the render loop is active
func (s *Session) Running() bool {
	return !s.closed && s.loop.Running()
}

// Scheduler returns the scheduler driving the loop
func (s *Session) Scheduler() Scheduler {
	return s.scheduler
}

// Loop returns the render loop
func (s *Session) Loop() *RenderLoop {
	return s.loop
}

// Resize propagates a container size change
func (s *Session) Resize(width, height int) {
	s.mustOpen()
	s.resize.Resize(width, height)
}

// Size returns the current surface size
func (s *Session) Size() (int, int) {
	return s.resize.Size()
}

// OpenSash requests the sashes to open
func (s *Session) OpenSash() {
	s.mustOpen()
	s.anim.RequestOpen()
}

// CloseSash requests the sashes to close
func (s *Session) CloseSash() {
	s.mustOpen()
	s.anim.RequestClose()
}

// ToggleSash opens a closed sash and closes an open one
func (s *Session) ToggleSash() {
	s.mustOpen()
	s.anim.Toggle()
}

// FinishAnimation jumps to the end of the running transition
func (s *Session) FinishAnimation() {
	s.mustOpen()
	s.anim.Finish()
	if s.group != nil {
		s.group.Apply(s.anim.Motions())
	}
}

// AnimationState returns the sash state and progress
func (s *Session) AnimationState() (animation.State, float64) {
	return s.anim.State(), s.anim.Progress()
}

// SetAutoRotate switches auto-rotation
func (s *Session) SetAutoRotate(on bool) {
	s.mustOpen()
	s.controls.SetAutoRotate(on)
}

// ToggleAutoRotate flips auto-rotation
func (s *Session) ToggleAutoRotate() {
	s.mustOpen()
	s.controls.ToggleAutoRotate()
}

// SetViewMode selects the front or back view
func (s *Session) SetViewMode(mode camera.ViewMode) {
	s.mustOpen()
	s.controls.SetViewMode(mode)
}

// ToggleView switches between front and back view
func (s *Session) ToggleView() {
	s.mustOpen()
	s.controls.ToggleViewMode()
}

// SetRotation sets the manual orbit angles in degrees
func (s *Session) SetRotation(x, y float64) {
	s.mustOpen()
	s.controls.SetRotation(x, y)
}

// ResetView returns to the front view without rotation
func (s *Session) ResetView() {
	s.mustOpen()
	s.controls.Reset()
}

// BeginDrag starts a pointer drag
func (s *Session) BeginDrag() {
	s.mustOpen()
	s.controls.BeginDrag()
}

// Drag applies a pointer delta in pixels
func (s *Session) Drag(dx, dy float64) {
	s.mustOpen()
	s.controls.Drag(dx, dy)
}

// EndDrag finishes a pointer drag
func (s *Session) EndDrag() {
	s.mustOpen()
	s.controls.EndDrag()
}

// CameraState returns the orbit state
func (s *Session) CameraState() camera.State {
	return s.controls.State()
}

// Camera returns the projection camera
func (s *Session) Camera() *camera.Camera {
	return s.cam
}

// Zoom moves the camera closer (negative) or further away (positive)
func (s *Session) Zoom(delta float64) {
	s.mustOpen()
	s.cam.Zoom(delta)
}

// OnTeardown registers cleanup, typically deregistering host listeners. Hooks
// run in reverse registration order.
func (s *Session) OnTeardown(fn func()) {
	s.mustOpen()
	s.teardown = append(s.teardown, fn)
}

// Close stops the loop, runs teardown hooks and releases the scene. Calls
// returning an error report ErrSessionClosed afterwards; every other call
// panics with it. Closing twice is a no-op.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.loop.Stop()
	for i := len(s.teardown) - 1; i >= 0; i-- {
		s.teardown[i]()
	}
	s.teardown = nil
	if s.group != nil {
		s.group.Release()
		s.group = nil
	}
	s.closed = true
	s.log.Debug("session closed")
}

// Closed reports whether Close ran
func (s *Session) Closed() bool {
	return s.closed
}

// defaultBounds frames a typical window until the first configuration arrives
func defaultBounds() geometry.BoundingBox {
	return geometry.BoxFromCenter(geometry.Vector3{}, geometry.NewVector3(1000, 1200, 70))
}
