package spinner

import "swirl/internal/tape"

// Bouncing builds a there-and-back spinner: a rightward scrolling pass over
// chars followed by a leftward pass over the LeftChars option (chars again
// when unset), both bound to the same width. Each pass plays until its
// content has fully crossed the line, and the two passes together form one
// cycle. Block, Background and Contained apply to both passes.
func Bouncing(chars string, length int, opts ...Option) *Builder {
	o := newOptions(opts)
	leftChars := o.leftChars
	if leftChars == "" {
		leftChars = chars
	}

	common := []Option{Length(length), Background(o.background)}
	if o.block > 0 {
		common = append(common, Block(o.block))
	}
	if o.contained {
		common = append(common, Contained())
	}
	right := Scrolling(chars, common...)
	left := Scrolling(leftChars, append(append([]Option{}, common...), Leftward())...)

	natural := max(1, length)

	return &Builder{
		natural: natural,
		bind: func(width int) (*Instance, error) {
			if length <= 0 {
				return nil, bindError("bouncing requires a positive length")
			}

			rightInst, err := right.Bind(width)
			if err != nil {
				return nil, err
			}
			leftInst, err := left.Bind(width)
			if err != nil {
				return nil, err
			}

			ratio := 1.0
			if width > 0 {
				ratio = float64(width) / float64(length)
			}
			if width <= 0 {
				width = natural
			}

			rightSize := directionSize(o, ratio, width, chars)
			leftSize := directionSize(o, ratio, width, leftChars)

			cycles := rightSize + leftSize
			return &Instance{
				cycles: cycles,
				width:  width,
				frames: func() FrameFunc {
					var cur FrameFunc
					n := 0
					return func() (string, bool) {
						if n >= cycles {
							drain(&cur)
							return "", false
						}
						if n == 0 {
							cur = rightInst.Frames()
						}
						if n == rightSize {
							// Finish the rightward revolution so the tape is
							// aligned for the next cycle.
							drain(&cur)
							cur = leftInst.Frames()
						}
						n++
						return cur()
					}
				},
			}, nil
		},
	}
}

// directionSize is the number of frames one pass contributes to a bounce
// cycle: a full crossing plus the off-screen travel when hiding, otherwise
// just the in-border travel.
func directionSize(o options, ratio float64, width int, chars string) int {
	blockSize := int(float64(o.block) * ratio)
	if blockSize <= 0 {
		blockSize = len(tape.Cells(chars))
	}
	if !o.contained {
		return width + blockSize
	}
	size := width - blockSize
	if size < 0 {
		size = -size
	}
	return max(1, size)
}

// drain consumes the remainder of a frame iterator.
func drain(cur *FrameFunc) {
	if *cur == nil {
		return
	}
	for {
		if _, ok := (*cur)(); !ok {
			break
		}
	}
	*cur = nil
}
