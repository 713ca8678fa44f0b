package spinner

import (
	"strings"

	"swirl/internal/tape"
)

// Scrolling builds a spinner that slides characters across the width in one
// direction. The characters scroll as one piece unless Block splits them
// into equally sized blocks that take turns; Contained keeps the content
// inside the borders, and Overlay fixes the background under the moving
// content. The natural width is the design-time Length when given, the
// character count otherwise.
//
// Binding with Block set requires a width known at either definition time
// (Length) or bind time; anything else is reported as ErrConfig.
func Scrolling(chars string, opts ...Option) *Builder {
	o := newOptions(opts)
	cells := tape.Cells(chars)

	natural := o.length
	if natural <= 0 {
		natural = len(cells)
	}
	natural = max(1, natural)

	step := 1
	if !o.left {
		step = -1
	}

	return &Builder{
		natural: natural,
		bind: func(width int) (*Instance, error) {
			if o.block > 0 && o.length <= 0 && width <= 0 {
				return nil, bindError("scrolling in blocks requires a length at definition or bind time")
			}

			ratio := 1.0
			if o.length > 0 && width > 0 {
				ratio = float64(width) / float64(o.length)
			}
			if width <= 0 {
				width = natural
			}

			blockSize := int(float64(o.block) * ratio)
			if blockSize <= 0 {
				blockSize = len(cells)
			}

			// The initial offset places the content flush against the
			// trailing edge for contained rightward scrolls. Block and
			// whole-string scrolls use deliberately different anchors.
			initial, gap := 0, width
			if o.contained {
				gap = max(0, width-blockSize)
				if !o.left {
					if o.block > 0 {
						initial = -blockSize
					} else if width > blockSize {
						initial = width - blockSize
					} else {
						initial = blockSize - width
					}
				}
			}

			var segments []string
			if o.block > 0 {
				// The block that exits first leads, so rightward scrolls
				// take the characters in reverse order.
				for i := range cells {
					c := cells[i]
					if !o.left {
						c = cells[len(cells)-1-i]
					}
					segments = append(segments, strings.Repeat(c, blockSize))
				}
			} else {
				segments = []string{chars}
			}

			window := tape.Static
			if o.overlay {
				window = tape.Overlay
			}
			win := window(o.background, gap, segments, width, step, initial)

			// The window is shared by successive cycles: a multi-block tape
			// scrolls a different block on each cycle.
			cycles := gap + blockSize
			return &Instance{
				cycles: cycles,
				width:  width,
				frames: func() FrameFunc {
					n := 0
					return func() (string, bool) {
						if n >= cycles {
							return "", false
						}
						n++
						return win.Next(), true
					}
				},
			}, nil
		},
	}
}
