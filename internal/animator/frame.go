package animator

import (
	"fmt"
	"io"

	"swirl/internal/spinner"
)

// ANSI escape codes for cursor visibility and line clearing
const (
	ansiEscape     = "\033["
	ansiHideCursor = ansiEscape + "?25l"
	ansiShowCursor = ansiEscape + "?25h"
	ansiClearLine  = ansiEscape + "K"
	carriageReturn = "\r"
)

// FrameAnimation implements Animation by replaying a spinner instance's
// frames in place on one terminal line, with an optional fixed label before
// the animated cell area.
type FrameAnimation struct {
	out    io.Writer
	label  string
	player *spinner.Player
	cycles int
}

// NewFrameAnimation wraps a bound spinner instance for terminal playback.
// The animation takes exclusive ownership of the instance's frame stream.
func NewFrameAnimation(out io.Writer, label string, in *spinner.Instance) *FrameAnimation {
	return &FrameAnimation{
		out:    out,
		label:  label,
		player: spinner.NewPlayer(in),
		cycles: in.Cycles(),
	}
}

// Start hides the cursor and renders the first frame.
func (a *FrameAnimation) Start() {
	fmt.Fprint(a.out, ansiHideCursor)
	a.Render()
}

// Stop clears the line and shows the cursor.
func (a *FrameAnimation) Stop() {
	fmt.Fprint(a.out, carriageReturn+ansiClearLine+ansiShowCursor)
}

// Render overwrites the line with the next frame.
func (a *FrameAnimation) Render() {
	fmt.Fprintf(a.out, "%s%s%s", carriageReturn, a.label, a.player.Next())
}

// FrameCount returns the number of frames in one animation cycle.
func (a *FrameAnimation) FrameCount() int {
	return a.cycles
}
