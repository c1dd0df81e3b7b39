package engine

import (
	"sync"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler runs a callback once at the next display frame
type Scheduler interface {
	Schedule(fn func(now time.Time)) Handle
	Cancel(h Handle)
}

// FrameScheduler queues callbacks until the host pumps a frame. Hosts with
// their own frame loop (raylib) call Pump once per frame; tests call it with
// a manual clock.
type FrameScheduler struct {
	next    Handle
	pending map[Handle]func(time.Time)
	order   []Handle
}

// NewFrameScheduler creates an empty scheduler
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{pending: make(map[Handle]func(time.Time))}
}

// Schedule queues fn for the next Pump
func (s *FrameScheduler) Schedule(fn func(time.Time)) Handle {
	s.next++
	s.pending[s.next] = fn
	s.order = append(s.order, s.next)
	return s.next
}

// Cancel drops a queued callback
func (s *FrameScheduler) Cancel(h Handle) {
	delete(s.pending, h)
}

// Pending returns the number of queued callbacks
func (s *FrameScheduler) Pending() int {
	return len(s.pending)
}

// Pump runs every callback queued before the call, in scheduling order.
// Callbacks scheduled while pumping wait for the next Pump.
func (s *FrameScheduler) Pump(now time.Time) int {
	order := s.order
	s.order = nil

	ran := 0
	for _, h := range order {
		fn, ok := s.pending[h]
		if !ok {
			continue
		}
		delete(s.pending, h)
		fn(now)
		ran++
	}
	return ran
}

// TickerScheduler fires callbacks after a fixed frame interval. Callbacks are
// handed to dispatch, which must run them on the host's UI thread (fyne.Do,
// Mailbox.Post).
type TickerScheduler struct {
	interval time.Duration
	dispatch func(func())

	mu     sync.Mutex
	next   Handle
	timers map[Handle]*time.Timer
}

// NewTickerScheduler creates a scheduler firing every interval
func NewTickerScheduler(interval time.Duration, dispatch func(func())) *TickerScheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &TickerScheduler{
		interval: interval,
		dispatch: dispatch,
		timers:   make(map[Handle]*time.Timer),
	}
}

// Schedule arms a timer for fn
func (s *TickerScheduler) Schedule(fn func(time.Time)) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	s.timers[h] = time.AfterFunc(s.interval, func() {
		s.dispatch(func() { s.fire(h, fn) })
	})
	return h
}

// fire runs fn unless the handle was cancelled while the dispatch was queued
func (s *TickerScheduler) fire(h Handle, fn func(time.Time)) {
	s.mu.Lock()
	_, ok := s.timers[h]
	delete(s.timers, h)
	s.mu.Unlock()

	if ok {
		fn(time.Now())
	}
}

// Cancel stops the timer and drops any dispatch already in flight
func (s *TickerScheduler) Cancel(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[h]; ok {
		t.Stop()
		delete(s.timers, h)
	}
}

// Pending returns the number of armed timers
func (s *TickerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
