// Package animation drives the sash open/close state machine. It only
// computes leaf angles; applying them to a scene is up to the caller.
package animation

import (
	"time"

	"github.com/philipparndt/fenster/pkg/scene"
	"github.com/samber/lo"
)

// State of the sash animation
type State int

const (
	Closed State = iota
	Opening
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	}
	return "unknown"
}

// DefaultDuration is the time a full open or close takes
const DefaultDuration = 1200 * time.Millisecond

// Controller interpolates sash angles linearly over time. While Opening,
// direction decides whether progress runs toward Open (+1) or Closed (-1).
type Controller struct {
	duration  time.Duration
	leaves    []scene.Leaf
	state     State
	progress  float64
	direction float64
	elapsed   time.Duration
}

// New creates a closed controller. A non-positive duration uses
// DefaultDuration.
func New(duration time.Duration) *Controller {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Controller{duration: duration, direction: 1}
}

// Reset binds a new set of leaves and returns to Closed
func (c *Controller) Reset(leaves []scene.Leaf) {
	c.leaves = leaves
	c.state = Closed
	c.progress = 0
	c.direction = 1
}

// Rebind swaps the leaves for a compatible layout while keeping the current
// state and progress. A layout without operable leaves resets to Closed.
func (c *Controller) Rebind(leaves []scene.Leaf) {
	c.leaves = leaves
	if !c.Operable() {
		c.Reset(leaves)
	}
}

// Operable reports whether any bound leaf can open
func (c *Controller) Operable() bool {
	return lo.SomeBy(c.leaves, func(l scene.Leaf) bool { return l.Operable })
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Progress returns how far open the sashes are, from 0 to 1
func (c *Controller) Progress() float64 {
	return c.progress
}

// Duration returns the time a full transition takes
func (c *Controller) Duration() time.Duration {
	return c.duration
}

// Elapsed returns the cumulative time the controller has been ticked with
func (c *Controller) Elapsed() time.Duration {
	return c.elapsed
}

// Opening reports whether the sashes are moving toward or resting at Open
func (c *Controller) Opening() bool {
	return c.state == Open || (c.state == Opening && c.direction > 0)
}

// RequestOpen starts opening, or turns a closing motion around. Fixed
// products ignore it.
func (c *Controller) RequestOpen() {
	if !c.Operable() {
		return
	}
	switch c.state {
	case Closed:
		c.state = Opening
		c.direction = 1
	case Opening:
		c.direction = 1
	}
}

// RequestClose starts closing, or turns an opening motion around
func (c *Controller) RequestClose() {
	if !c.Operable() {
		return
	}
	switch c.state {
	case Open:
		c.state = Opening
		c.direction = -1
	case Opening:
		c.direction = -1
	}
}

// Toggle requests the opposite of the current target
func (c *Controller) Toggle() {
	if c.Opening() {
		c.RequestClose()
	} else {
		c.RequestOpen()
	}
}

// Finish jumps to the end of the running transition
func (c *Controller) Finish() {
	if c.state != Opening {
		return
	}
	if c.direction > 0 {
		c.progress = 1
		c.state = Open
	} else {
		c.progress = 0
		c.state = Closed
		c.direction = 1
	}
}

// Tick advances by dt and returns the leaf motions. Negative dt is ignored.
func (c *Controller) Tick(dt time.Duration) []scene.Motion {
	if dt < 0 {
		dt = 0
	}
	return c.TickAt(c.elapsed + dt)
}

// TickAt advances to the cumulative time elapsed and returns the leaf
// motions. Calling it again with the same or an earlier time does not move
// the animation.
func (c *Controller) TickAt(elapsed time.Duration) []scene.Motion {
	if elapsed > c.elapsed {
		c.advance(elapsed - c.elapsed)
		c.elapsed = elapsed
	}
	return c.Motions()
}

func (c *Controller) advance(d time.Duration) {
	if c.state != Opening {
		return
	}
	c.progress += c.direction * float64(d) / float64(c.duration)
	switch {
	case c.progress >= 1:
		c.progress = 1
		c.state = Open
	case c.progress <= 0:
		c.progress = 0
		c.state = Closed
		c.direction = 1
	}
}

// Motions returns the current angle of every bound leaf
func (c *Controller) Motions() []scene.Motion {
	return lo.Map(c.leaves, func(l scene.Leaf, _ int) scene.Motion {
		if !l.Operable {
			return scene.Motion{Role: l.Role}
		}
		return scene.Motion{Role: l.Role, Angle: c.progress * l.Swing}
	})
}
