package spinner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swirl/internal/tape"
)

func TestCompoundLockstep(t *testing.T) {
	b := Compound(Frames("a", "b", "c"), Frames("1", "2", "3", "4", "5"))
	assert.Equal(t, 2, b.Natural())

	in, err := b.Bind(0)
	require.NoError(t, err)

	// The combined cycle is the longest constituent cycle; the shorter
	// constituent restarts transparently: at tick 3 it is back at its
	// first frame while the longer one is at its fourth.
	assert.Equal(t, 5, in.Cycles())
	assert.Equal(t, []string{"a1", "b2", "c3", "a4", "b5"}, play(in, 5))
}

func TestCompoundApportionsWidth(t *testing.T) {
	in, err := Compound(Frames("a"), Frames("b")).Bind(5)
	require.NoError(t, err)

	// Ceiling division: each constituent gets 3 of the requested 5.
	assert.Equal(t, 6, in.Width())
	assert.Equal(t, []string{"a  b  "}, play(in, 1))
}

func TestCompoundExposesPlayers(t *testing.T) {
	in, err := Compound(Frames("a"), Frames("b")).Bind(0)
	require.NoError(t, err)
	assert.Len(t, in.Players(), 2)

	// Plain instances expose none.
	plain, err := Frames("a").Bind(0)
	require.NoError(t, err)
	assert.Nil(t, plain.Players())
}

func TestCompoundRequiresConstituents(t *testing.T) {
	_, err := Compound().Bind(0)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestDelayedPhaseShiftsCopies(t *testing.T) {
	b := Delayed(Frames("a", "b"), 3, 1)
	assert.Equal(t, 3, b.Natural())

	in, err := b.Bind(0)
	require.NoError(t, err)
	assert.Equal(t, 2, in.Cycles())

	// Copy i runs offset*i ticks ahead: each frame of copy i at tick t
	// equals copy 0's frame at tick t+i.
	frames := play(in, 4)
	assert.Equal(t, []string{"aba", "bab", "aba", "bab"}, frames)

	sub := []string{"a", "b"}
	for tick, frame := range frames {
		cells := tape.Cells(frame)
		for i, cell := range cells {
			assert.Equal(t, sub[(tick+i)%len(sub)], cell, "tick %d copy %d", tick, i)
		}
	}
}

func TestDelayedRecomputesCopiesFromWidth(t *testing.T) {
	b := Delayed(Frames("a", "b"), 2, 1)

	// Width known at bind time: enough copies are made to fill it,
	// regardless of the configured count.
	in, err := b.Bind(5)
	require.NoError(t, err)
	assert.Len(t, in.Players(), 5)
	assert.Equal(t, 5, in.Width())

	// Width unknown: the configured count is used.
	in, err = b.Bind(0)
	require.NoError(t, err)
	assert.Len(t, in.Players(), 2)
}

func TestDelayedRequiresCopies(t *testing.T) {
	_, err := Delayed(Frames("a"), 0, 1).Bind(0)
	assert.ErrorIs(t, err, ErrConfig)
}
