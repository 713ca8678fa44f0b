package tape

import "strings"

// Window is a fixed-width view sliding over a circular tape of cells.
// Each call to Next reads one frame and advances the view by step cells;
// negative steps slide the view backwards, which moves the content
// rightward on screen. A Window owns all of its state, so two windows
// built from the same parameters never interfere.
type Window struct {
	cells []string // circular tape, one terminal cell per entry
	fixed []string // fixed background per screen column (overlay mode only)
	width int
	step  int
	pos   int
}

// Static builds a window whose background cells are part of the moving
// tape: each content segment is preceded by gap cells of the background
// pattern, and the whole tape scrolls as one piece. Once the content is
// flush with an edge, no bare background shows beyond the designed gap.
func Static(background string, gap int, segments []string, width, step, initial int) *Window {
	return newWindow(background, gap, segments, width, step, initial, false)
}

// Overlay builds a window whose background stays visually fixed: only the
// content segments move, and each frame composites them cell by cell over
// the background pattern tiled across the window.
func Overlay(background string, gap int, segments []string, width, step, initial int) *Window {
	return newWindow(background, gap, segments, width, step, initial, true)
}

func newWindow(background string, gap int, segments []string, width, step, initial int, overlay bool) *Window {
	bg := Cells(background)
	if len(bg) == 0 {
		bg = []string{" "}
	}

	// Gap cells on an overlay tape are transparent markers, filled in from
	// the fixed background at read time.
	var cells []string
	for _, seg := range segments {
		for n := 0; n < gap; n++ {
			if overlay {
				cells = append(cells, "")
			} else {
				cells = append(cells, bg[len(cells)%len(bg)])
			}
		}
		cells = append(cells, Cells(seg)...)
	}
	if len(cells) == 0 {
		cells = []string{bg[0]}
	}

	w := &Window{cells: cells, width: width, step: step}
	if overlay {
		w.fixed = make([]string, width)
		for i := range w.fixed {
			w.fixed[i] = bg[i%len(bg)]
		}
	}
	w.pos = w.wrap(initial)
	return w
}

func (w *Window) wrap(pos int) int {
	pos %= len(w.cells)
	if pos < 0 {
		pos += len(w.cells)
	}
	return pos
}

// Next returns the frame under the window and advances it by one step.
// The returned frame always holds exactly width cells.
func (w *Window) Next() string {
	var sb strings.Builder
	for i := 0; i < w.width; i++ {
		cell := w.cells[w.wrap(w.pos+i)]
		if cell == "" {
			cell = w.fixed[i]
		}
		sb.WriteString(cell)
	}
	w.pos = w.wrap(w.pos + w.step)
	return sb.String()
}
