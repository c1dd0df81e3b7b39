package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/philipparndt/fenster/pkg/animation"
	"github.com/philipparndt/fenster/pkg/camera"
	"github.com/philipparndt/fenster/pkg/geometry"
	"github.com/philipparndt/fenster/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	draws  int
	sizes  [][2]int
	groups []*scene.Group
	err    error
}

func (f *fakeSurface) Resize(width, height int) {
	f.sizes = append(f.sizes, [2]int{width, height})
}

func (f *fakeSurface) Draw(g *scene.Group, _ *camera.Camera) error {
	f.draws++
	f.groups = append(f.groups, g)
	return f.err
}

type fixedStage struct {
	g *scene.Group
}

func (s fixedStage) Group() *scene.Group { return s.g }

func testCamera() *camera.Camera {
	return camera.NewCamera(geometry.BoxFromCenter(geometry.Vector3{}, geometry.NewVector3(1000, 1000, 70)))
}

func newTestLoop(surface Surface) (*RenderLoop, *FrameScheduler, *animation.Controller, *camera.Controller) {
	sched := NewFrameScheduler()
	anim := animation.New(time.Second)
	controls := camera.NewController(10, 1)
	loop := NewRenderLoop(nil, sched, fixedStage{}, anim, controls, testCamera(), surface)
	return loop, sched, anim, controls
}

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func TestLoopStartIsIdempotent(t *testing.T) {
	surface := &fakeSurface{}
	loop, sched, _, _ := newTestLoop(surface)

	loop.Start()
	loop.Start()
	assert.Equal(t, 1, sched.Pending())
	assert.True(t, loop.Running())

	sched.Pump(t0)
	assert.Equal(t, 1, surface.draws)
	assert.Equal(t, 1, sched.Pending())
}

func TestLoopStopCancelsPendingTick(t *testing.T) {
	surface := &fakeSurface{}
	loop, sched, _, _ := newTestLoop(surface)

	loop.Start()
	sched.Pump(t0)
	loop.Stop()

	assert.Equal(t, 0, sched.Pending())
	assert.False(t, loop.Running())
	assert.Equal(t, 0, sched.Pump(t0.Add(time.Second)))
	assert.Equal(t, 1, surface.draws)

	// stopping again is harmless
	loop.Stop()
}

func TestLoopRestartAfterStop(t *testing.T) {
	surface := &fakeSurface{}
	loop, sched, _, _ := newTestLoop(surface)

	loop.Start()
	loop.Stop()
	loop.Start()
	sched.Pump(t0)

	assert.Equal(t, 1, surface.draws)
	assert.Equal(t, uint64(1), loop.Frames())
}

func TestLoopAdvancesByElapsedTime(t *testing.T) {
	surface := &fakeSurface{}
	loop, sched, anim, controls := newTestLoop(surface)
	anim.Reset([]scene.Leaf{{Role: scene.RoleSingle, Swing: 1, Operable: true}})
	anim.RequestOpen()
	controls.SetAutoRotate(true)

	loop.Start()
	sched.Pump(t0)
	assert.Zero(t, anim.Progress())

	sched.Pump(t0.Add(250 * time.Millisecond))
	assert.InDelta(t, 0.25, anim.Progress(), 1e-9)

	sched.Pump(t0.Add(time.Second))
	assert.Equal(t, animation.Open, anim.State())

	// one auto-rotate step per tick
	_, yaw := controls.CurrentOrientation()
	assert.InDelta(t, 30, yaw, 1e-9)
}

func TestLoopDrawErrorHandlerCanStop(t *testing.T) {
	surface := &fakeSurface{err: errors.New("context lost")}
	loop, sched, _, _ := newTestLoop(surface)

	var got error
	loop.OnError(func(err error) {
		got = err
		loop.Stop()
	})
	loop.Start()
	sched.Pump(t0)

	assert.EqualError(t, got, "context lost")
	assert.False(t, loop.Running())
	assert.Equal(t, 0, sched.Pending())
}

func TestLoopRestartFromErrorHandlerKeepsOneTick(t *testing.T) {
	surface := &fakeSurface{err: errors.New("context lost")}
	loop, sched, _, _ := newTestLoop(surface)

	restarts := 0
	loop.OnError(func(error) {
		restarts++
		loop.Stop()
		loop.Start()
	})
	loop.Start()

	sched.Pump(t0)
	assert.True(t, loop.Running())
	assert.Equal(t, 1, sched.Pending())

	surface.err = nil
	sched.Pump(t0.Add(16 * time.Millisecond))
	assert.Equal(t, 2, surface.draws)
	assert.Equal(t, 1, restarts)
	assert.Equal(t, 1, sched.Pending())
}

func TestResizeUpdatesAspectWithoutDrawing(t *testing.T) {
	surface := &fakeSurface{}
	cam := testCamera()
	r := NewResizeController(nil, cam, surface)

	assert.True(t, r.Resize(640, 480))
	assert.InDelta(t, 640.0/480.0, cam.Aspect, 1e-12)

	assert.True(t, r.Resize(320, 240))
	assert.InDelta(t, 320.0/240.0, cam.Aspect, 1e-12)

	assert.Equal(t, [][2]int{{640, 480}, {320, 240}}, surface.sizes)
	assert.Zero(t, surface.draws)
}

func TestResizeIgnoresEmptyAndUnchangedSizes(t *testing.T) {
	surface := &fakeSurface{}
	r := NewResizeController(nil, testCamera(), surface)

	require.True(t, r.Resize(800, 600))
	assert.False(t, r.Resize(800, 600))
	assert.False(t, r.Resize(0, 600))
	assert.False(t, r.Resize(800, -1))

	w, h := r.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Len(t, surface.sizes, 1)
}

func TestFrameSchedulerOrderAndCancel(t *testing.T) {
	s := NewFrameScheduler()

	var got []int
	s.Schedule(func(time.Time) { got = append(got, 1) })
	h := s.Schedule(func(time.Time) { got = append(got, 2) })
	s.Schedule(func(time.Time) {
		got = append(got, 3)
		s.Schedule(func(time.Time) { got = append(got, 4) })
	})
	s.Cancel(h)

	assert.Equal(t, 2, s.Pump(t0))
	assert.Equal(t, []int{1, 3}, got)

	assert.Equal(t, 1, s.Pump(t0))
	assert.Equal(t, []int{1, 3, 4}, got)
}

func TestTickerSchedulerCancelDropsQueuedDispatch(t *testing.T) {
	queued := make(chan func(), 4)
	s := NewTickerScheduler(time.Millisecond, func(fn func()) { queued <- fn })

	fired := 0
	h := s.Schedule(func(time.Time) { fired++ })

	var dispatch func()
	select {
	case dispatch = <-queued:
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}

	s.Cancel(h)
	dispatch()
	assert.Zero(t, fired)
	assert.Zero(t, s.Pending())
}

func TestTickerSchedulerFires(t *testing.T) {
	queued := make(chan func(), 4)
	s := NewTickerScheduler(time.Millisecond, func(fn func()) { queued <- fn })

	fired := 0
	s.Schedule(func(time.Time) { fired++ })

	select {
	case fn := <-queued:
		fn()
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}
	assert.Equal(t, 1, fired)
}

func TestTickerSchedulerCancelBeforeTimer(t *testing.T) {
	queued := make(chan func(), 4)
	s := NewTickerScheduler(50*time.Millisecond, func(fn func()) { queued <- fn })

	h := s.Schedule(func(time.Time) {})
	s.Cancel(h)

	select {
	case <-queued:
		t.Fatal("cancelled timer dispatched")
	case <-time.After(100 * time.Millisecond):
	}
}
