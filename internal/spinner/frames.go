package spinner

import "swirl/internal/tape"

// Frames builds a spinner that replays an explicit frame sequence verbatim.
// A single argument is split into one frame per terminal cell. The natural
// width is the width of the first frame; the bound instance pads or trims
// every frame to the bound width. Frame-width consistency across the
// sequence is the caller's responsibility.
func Frames(frames ...string) *Builder {
	if len(frames) == 1 {
		frames = tape.Cells(frames[0])
	}

	natural := 1
	if len(frames) > 0 {
		natural = max(1, tape.Width(frames[0]))
	}

	return &Builder{
		natural: natural,
		bind: func(width int) (*Instance, error) {
			if len(frames) == 0 {
				return nil, bindError("at least one frame is required")
			}
			if width <= 0 {
				width = natural
			}

			fitted := make([]string, len(frames))
			for i, f := range frames {
				fitted[i] = tape.Fit(f, width)
			}

			return &Instance{
				cycles: len(fitted),
				width:  width,
				frames: func() FrameFunc {
					i := 0
					return func() (string, bool) {
						if i >= len(fitted) {
							return "", false
						}
						f := fitted[i]
						i++
						return f, true
					}
				},
			}, nil
		},
	}
}
