// Package transition implements the per-slot portrait fade state machine.
// One Controller is bound to one display slot and converts a stream of
// resolved URLs into a flicker-free sequence of visible states.
package transition

import (
	"sync"
	"time"

	"github.com/Eliolocin/GengoTavern-sub001/internal/errors"
	"github.com/Eliolocin/GengoTavern-sub001/internal/pkg/clock"
)

// State identifies a phase of the portrait fade cycle.
type State string

// Fade cycle states. A newly created controller starts in StateNoSprite and
// moves straight to StateVisible on the first resolution, with no animation,
// to avoid an initial flash. Every later URL change runs the full
// Visible -> FadeOut -> FadeIn -> Visible cycle.
const (
	StateNoSprite State = "no-sprite"
	StateVisible  State = "visible"
	StateFadeOut  State = "fade-out"
	StateFadeIn   State = "fade-in"
)

// DefaultDwell is the fixed duration of each fade phase.
const DefaultDwell = 300 * time.Millisecond

// Config holds the dependencies for a Controller.
type Config struct {
	Clock clock.Clock

	// Dwell overrides DefaultDwell when positive.
	Dwell time.Duration
}

// Snapshot is a point-in-time view of a controller.
type Snapshot struct {
	State State

	// ResolvedURL is the latest target; DisplayURL is what is currently
	// rendered. DisplayURL changes at most once per fade cycle, at the
	// fade-out to fade-in boundary.
	ResolvedURL string
	DisplayURL  string
}

// Controller is the timed fade state machine for one slot. It is safe for
// concurrent use: dwell timers fire on their own goroutines, and every
// scheduled command carries a generation token that is checked before it is
// applied, so a superseded dwell never acts on a stale target.
type Controller struct {
	mu    sync.Mutex
	clk   clock.Clock
	dwell time.Duration

	state       State
	resolvedURL string
	displayURL  string

	gen   uint64
	timer clock.Timer
}

// New creates a controller in StateNoSprite.
func New(cfg *Config) (*Controller, error) {
	if cfg == nil || cfg.Clock == nil {
		return nil, errors.InvalidArgument("clock is required")
	}

	dwell := cfg.Dwell
	if dwell <= 0 {
		dwell = DefaultDwell
	}

	return &Controller{
		clk:   cfg.Clock,
		dwell: dwell,
		state: StateNoSprite,
	}, nil
}

// SetResolvedURL records the latest resolution result and drives the state
// machine. Last write wins: a URL arriving while a dwell is pending cancels
// the pending phase and restarts the cycle from fade-out with the newest
// target.
func (c *Controller) SetResolvedURL(url string) {
	if url == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.resolvedURL = url

	switch {
	case c.state == StateNoSprite:
		// First resolution shows immediately, no fade.
		c.cancelDwellLocked()
		c.displayURL = url
		c.state = StateVisible
	case url == c.displayURL:
		// Already showing this URL; settle without a transition.
		c.cancelDwellLocked()
		c.state = StateVisible
	default:
		c.cancelDwellLocked()
		c.state = StateFadeOut
		gen := c.gen
		c.timer = c.clk.AfterFunc(c.dwell, func() { c.swapDisplay(gen) })
	}
}

// swapDisplay ends the fade-out dwell: the display URL is overwritten with
// the latest resolved URL and the fade-in dwell starts.
func (c *Controller) swapDisplay(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || c.state != StateFadeOut {
		return
	}

	c.displayURL = c.resolvedURL
	c.state = StateFadeIn
	c.timer = c.clk.AfterFunc(c.dwell, func() { c.settle(gen) })
}

// settle ends the fade-in dwell.
func (c *Controller) settle(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || c.state != StateFadeIn {
		return
	}

	c.state = StateVisible
	c.timer = nil
}

// Snapshot returns the controller's current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		State:       c.state,
		ResolvedURL: c.resolvedURL,
		DisplayURL:  c.displayURL,
	}
}

// Stop cancels any pending dwell timer. The controller keeps its last
// display state; Stop is used when a slot is discarded.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelDwellLocked()
}

// cancelDwellLocked invalidates every outstanding scheduled command.
func (c *Controller) cancelDwellLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
