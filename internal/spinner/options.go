package spinner

// options collects the optional style parameters shared by the scrolling
// and bouncing builders. Defaults: scroll rightward, hide off both edges,
// single-space background, no block splitting.
type options struct {
	length     int
	block      int
	background string
	left       bool
	contained  bool
	overlay    bool
	leftChars  string
}

// Option adjusts an optional scrolling or bouncing style parameter.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{background: " "}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Length sets the design-time width of a scrolling spinner. When the
// spinner is later bound to a different width, block sizes are rescaled by
// the ratio between the two.
func Length(n int) Option {
	return func(o *options) { o.length = n }
}

// Block splits the characters into blocks of n cells that scroll one at a
// time instead of the whole character set scrolling as one piece.
func Block(n int) Option {
	return func(o *options) { o.block = n }
}

// Background sets the pattern shown beside, or underneath, the content.
func Background(s string) Option {
	return func(o *options) { o.background = s }
}

// Leftward reverses the scroll direction.
func Leftward() Option {
	return func(o *options) { o.left = true }
}

// Contained keeps the content inside the borders instead of letting it
// vanish completely off both edges.
func Contained() Option {
	return func(o *options) { o.contained = true }
}

// Overlay fixes the background in place so that only the content moves
// over it; without it the background is part of the moving tape.
func Overlay() Option {
	return func(o *options) { o.overlay = true }
}

// LeftChars sets the characters of the leftward pass of a bouncing
// spinner; the rightward characters are reused when unset.
func LeftChars(s string) Option {
	return func(o *options) { o.leftChars = s }
}
