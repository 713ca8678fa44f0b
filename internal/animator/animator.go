// Package animator plays a bound spinner at a fixed cadence.
// The package separates animation timing (Animator) from visual rendering
// (Animation interface); the spinner layer itself owns no timer, so this is
// where the frame stream meets the clock.
package animator

import (
	"context"
	"time"
)

// defaultInterval is the time between frames (~12.5 FPS).
const defaultInterval = 80 * time.Millisecond

// Animation defines the interface for visual behavior. Implementations
// control all output including positioning and terminal state; the Animator
// only handles timing and lifecycle.
type Animation interface {
	// Start is called when the animation begins.
	// It should handle any setup (e.g., hiding cursor) and render the initial frame.
	Start()

	// Stop is called when the animation ends.
	// It should handle any cleanup (e.g., clearing line, showing cursor).
	Stop()

	// Render advances the animation state and prints the current frame.
	Render()

	// FrameCount returns the number of frames in one complete animation cycle.
	FrameCount() int
}

// Animator manages the animation loop and timing for a spinner.
// It delegates all rendering to an Animation implementation, handling only
// the goroutine lifecycle and frame timing.
type Animator struct {
	interval  time.Duration      // time between frames
	cancel    context.CancelFunc // cancels the animation goroutine
	done      chan struct{}      // signals animation goroutine has exited
	animation Animation          // the visual implementation
}

// New creates an Animator for the given Animation. A non-positive interval
// selects the default cadence.
func New(animation Animation, interval time.Duration) *Animator {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Animator{
		interval:  interval,
		animation: animation,
	}
}

// Start begins the animation in a background goroutine.
// If the animation is already running, this is a no-op.
func (a *Animator) Start() {
	if a.cancel != nil {
		return // already running
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.done = make(chan struct{})

	go a.run(ctx)
}

// run is the animation loop goroutine. It calls Animation.Start() once,
// then Animation.Render() on each tick until the context is cancelled, at
// which point it calls Animation.Stop() and exits.
func (a *Animator) run(ctx context.Context) {
	defer close(a.done)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.animation.Start()

	for {
		select {
		case <-ctx.Done():
			a.animation.Stop()
			return
		case <-ticker.C:
			a.animation.Render()
		}
	}
}

// Stop stops the animation and waits for the goroutine to exit.
// If the animation is not running, this is a no-op.
func (a *Animator) Stop() {
	if a.cancel == nil {
		return // not running
	}

	a.cancel()
	<-a.done
	a.cancel = nil
}
