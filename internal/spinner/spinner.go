// Package spinner assembles terminal spinner animations from primitive
// builders. A Builder is an immutable style definition created once; binding
// it to a render-time width yields an Instance, a stateful frame generator
// realized at that width. Builders compose: scrolling animations can be
// sequenced into bouncing ones, several builders can run in lockstep as a
// compound animation, and one builder can be replicated into phase-shifted
// copies for wave effects.
//
// The split between Builder and Instance exists because a spinner's on-screen
// width is decided by the surrounding layout at render time, not by the style.
// Binding is a pure computation, so a Builder is safe to reuse, including
// concurrently; each Instance owns its generator state exclusively.
package spinner

import (
	"errors"
	"fmt"
)

// ErrConfig reports an invalid spinner configuration detected at bind time.
var ErrConfig = errors.New("invalid spinner configuration")

// FrameFunc yields successive frames of one animation cycle.
// It returns false once the cycle is exhausted.
type FrameFunc func() (string, bool)

// Builder is an immutable spinner style. Its Natural width is the width the
// animation prefers when the layout imposes no constraint.
type Builder struct {
	natural int
	bind    func(width int) (*Instance, error)
}

// Natural returns the width the spinner was designed for, always >= 1.
// It is readable before binding, for layout planning.
func (b *Builder) Natural() int {
	return b.natural
}

// Bind realizes the spinner at the given width. A width <= 0 binds at the
// builder's natural width. Binding never mutates the builder; two instances
// bound from the same builder are fully independent.
func (b *Builder) Bind(width int) (*Instance, error) {
	return b.bind(width)
}

// Instance is one realization of a Builder at a concrete width.
type Instance struct {
	cycles  int
	width   int
	frames  func() FrameFunc
	players []*Player
}

// Cycles returns the number of frames after which the output repeats,
// always >= 1. It is fixed at bind time, before any frame is produced.
func (in *Instance) Cycles() int {
	return in.cycles
}

// Width returns the width of every frame this instance produces.
func (in *Instance) Width() int {
	return in.width
}

// Frames returns a fresh iterator over one animation cycle. Some instances
// carry tape position across cycles, so successive iterators continue the
// animation rather than rewind it; wrap the instance in a Player to play it
// endlessly.
func (in *Instance) Frames() FrameFunc {
	return in.frames()
}

// Players returns the per-constituent players of a compound-derived
// instance, in builder order, or nil for any other instance. They are
// exposed so an enclosing style can phase-shift the constituents after
// binding, as Delayed does.
func (in *Instance) Players() []*Player {
	return in.players
}

// Player turns an Instance's finite cycle into an unending frame stream by
// requesting a fresh iterator whenever the current one is exhausted. Each
// Player exclusively owns its instance's iteration state.
type Player struct {
	instance *Instance
	next     FrameFunc
}

// NewPlayer wraps an instance for endless playback.
func NewPlayer(in *Instance) *Player {
	return &Player{instance: in, next: in.Frames()}
}

// Next returns the next frame, restarting the underlying cycle on
// exhaustion with no gap or duplicate at the seam.
func (p *Player) Next() string {
	frame, ok := p.next()
	if !ok {
		p.next = p.instance.Frames()
		frame, _ = p.next()
	}
	return frame
}

// Skip discards the next n frames. It is used to offset the phase of one
// player relative to another.
func (p *Player) Skip(n int) {
	for n2 := 0; n2 < n; n2++ {
		p.Next()
	}
}

// bindError wraps a configuration problem in ErrConfig.
func bindError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}
