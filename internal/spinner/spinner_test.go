package spinner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swirl/internal/tape"
)

// play reads n frames from an endless player over the instance.
func play(in *Instance, n int) []string {
	p := NewPlayer(in)
	frames := make([]string, n)
	for i := range frames {
		frames[i] = p.Next()
	}
	return frames
}

func TestFramesReplay(t *testing.T) {
	b := Frames("a", "b", "c")
	assert.Equal(t, 1, b.Natural())

	in, err := b.Bind(0)
	require.NoError(t, err)

	assert.Equal(t, 3, in.Cycles())
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, play(in, 6))
}

func TestFramesSingleStringSplits(t *testing.T) {
	b := Frames(`-\|/`)

	in, err := b.Bind(0)
	require.NoError(t, err)

	assert.Equal(t, 4, in.Cycles())
	assert.Equal(t, []string{"-", `\`, "|", "/"}, play(in, 4))
}

func TestFramesPadToBoundWidth(t *testing.T) {
	b := Frames("a", "bb", "ccc")

	in, err := b.Bind(3)
	require.NoError(t, err)

	assert.Equal(t, 3, in.Width())
	assert.Equal(t, []string{"a  ", "bb ", "ccc"}, play(in, 3))
}

func TestFramesRequiresAtLeastOne(t *testing.T) {
	_, err := Frames().Bind(0)
	assert.ErrorIs(t, err, ErrConfig)

	_, err = Frames("").Bind(0)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestPlayerRestartsAtSeam(t *testing.T) {
	in, err := Frames("a", "b").Bind(0)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "a", "b", "a"}, play(in, 5))
}

func TestPlayerSkip(t *testing.T) {
	in, err := Frames("a", "b", "c").Bind(0)
	require.NoError(t, err)

	p := NewPlayer(in)
	p.Skip(2)
	assert.Equal(t, "c", p.Next())
	assert.Equal(t, "a", p.Next())
}

func TestInstancesDoNotInterfere(t *testing.T) {
	b := Scrolling("xo", Length(6))

	first, err := b.Bind(0)
	require.NoError(t, err)
	second, err := b.Bind(0)
	require.NoError(t, err)

	// Interleaved playback of two instances of the same builder yields
	// byte-identical sequences.
	p, q := NewPlayer(first), NewPlayer(second)
	for c := 0; c < 2*first.Cycles(); c++ {
		assert.Equal(t, p.Next(), q.Next())
	}
}

func TestFrameWidthMatchesBoundWidth(t *testing.T) {
	builders := map[string]*Builder{
		"frames":    Frames("a", "b"),
		"scrolling": Scrolling("xy", Length(5)),
		"bouncing":  Bouncing("o", 5),
	}

	for name, b := range builders {
		t.Run(name, func(t *testing.T) {
			for _, width := range []int{0, 3, 9} {
				in, err := b.Bind(width)
				require.NoError(t, err)

				assert.GreaterOrEqual(t, in.Cycles(), 1)
				for _, frame := range play(in, in.Cycles()+2) {
					assert.Len(t, tape.Cells(frame), in.Width())
				}
			}
		})
	}
}
