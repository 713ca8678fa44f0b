// Package main showcases the built-in spinner styles in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"swirl/internal/animator"
	"swirl/internal/signal"
	"swirl/internal/style"
	"swirl/internal/table"
)

// stylesPath is the optional file with custom spinner definitions.
const stylesPath = "styles.yaml"

// showcaseWidth is the width every spinner is bound to while animating.
const showcaseWidth = 24

func main() {
	// Set up signal handling for graceful shutdown
	signal.Run(run)
}

func run(ctx context.Context) {
	styles := style.Catalog()

	// Custom styles are optional; a missing file is not an error.
	custom, err := style.Load(stylesPath)
	switch {
	case err == nil:
		styles = append(styles, custom...)
	case !errors.Is(err, os.ErrNotExist):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	listStyles(styles)
	fmt.Println()

	for _, st := range styles {
		if ctx.Err() != nil {
			return
		}
		animate(ctx, st)
	}
}

// listStyles prints a summary of every style bound at its natural width.
func listStyles(styles []style.Style) {
	t := table.New(
		table.Column{Header: "style", MinWidth: 10},
		table.Column{Header: "natural", Align: table.AlignRight},
		table.Column{Header: "cycles", Align: table.AlignRight},
	)

	for _, st := range styles {
		in, err := st.Builder.Bind(0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %q: %v\n", st.Name, err)
			continue
		}
		t.AddRow(st.Name,
			strconv.Itoa(st.Builder.Natural()),
			strconv.Itoa(in.Cycles()))
	}

	t.Render(os.Stdout)
}

// animate plays one style inline for a couple of seconds.
func animate(ctx context.Context, st style.Style) {
	in, err := st.Builder.Bind(showcaseWidth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error binding %q: %v\n", st.Name, err)
		return
	}

	label := fmt.Sprintf("%-10s ", st.Name)
	a := animator.New(animator.NewFrameAnimation(os.Stdout, label, in), 0)
	a.Start()

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
	}
	a.Stop()

	fmt.Println(st.Name)
}
