package spinner

import "strings"

// Compound builds a spinner that runs several builders in lockstep and
// concatenates their frames, in builder order, on every tick. The bound
// width is shared evenly (ceiling division) among the constituents, so the
// produced frames can be slightly wider than requested. The combined cycle
// is the longest constituent cycle; shorter constituents repeat
// transparently through their players. The natural width is the sum of the
// constituents' natural widths.
func Compound(builders ...*Builder) *Builder {
	natural := 0
	for _, b := range builders {
		natural += b.Natural()
	}
	natural = max(1, natural)

	return &Builder{
		natural: natural,
		bind: func(width int) (*Instance, error) {
			if len(builders) == 0 {
				return nil, bindError("at least one spinner is required")
			}

			share := 0
			if width > 0 {
				share = (width + len(builders) - 1) / len(builders)
			}

			cycles, total := 1, 0
			players := make([]*Player, len(builders))
			for i, b := range builders {
				inst, err := b.Bind(share)
				if err != nil {
					return nil, err
				}
				cycles = max(cycles, inst.Cycles())
				total += inst.Width()
				players[i] = NewPlayer(inst)
			}

			return &Instance{
				cycles:  cycles,
				width:   total,
				players: players,
				frames: func() FrameFunc {
					n := 0
					return func() (string, bool) {
						if n >= cycles {
							return "", false
						}
						n++
						var sb strings.Builder
						for _, p := range players {
							sb.WriteString(p.Next())
						}
						return sb.String(), true
					}
				},
			}, nil
		},
	}
}

// Delayed builds a staggered wave from one builder: the builder is
// replicated into phase-shifted copies running side by side, each copy
// skipping offset frames more than the one before it. When the bound width
// is known, the number of copies is recomputed to fill it (ceiling of
// width over the builder's natural width); otherwise the configured count
// is used. The natural width is a static estimate of copies times the
// builder's natural width.
func Delayed(b *Builder, copies, offset int) *Builder {
	return &Builder{
		natural: max(1, b.Natural()*copies),
		bind: func(width int) (*Instance, error) {
			if copies < 1 {
				return nil, bindError("at least one copy is required")
			}

			actual := copies
			if width > 0 {
				actual = (width + b.Natural() - 1) / b.Natural()
			}

			refs := make([]*Builder, actual)
			for i := range refs {
				refs[i] = b
			}
			inst, err := Compound(refs...).Bind(width)
			if err != nil {
				return nil, err
			}

			for i, p := range inst.Players() {
				p.Skip(i * offset)
			}
			return inst, nil
		},
	}
}
