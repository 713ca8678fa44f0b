// Package tape implements the sliding-window geometry behind scrolling
// spinner animations. A tape is a circular sequence of terminal cells built
// from content segments interspersed with a background pattern; a Window
// reads fixed-width frames from it, advancing one cell per tick.
//
// All geometry is measured in terminal cells (grapheme clusters), not bytes
// or runes, so multi-byte glyphs scroll as single units.
package tape

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cells splits a string into terminal cells, one grapheme cluster each.
func Cells(s string) []string {
	var cells []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cells = append(cells, g.Str())
	}
	return cells
}

// Width returns the display width of a string in terminal cells.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Fit pads or truncates a string to exactly the given display width.
func Fit(s string, width int) string {
	w := runewidth.StringWidth(s)
	switch {
	case w > width:
		return runewidth.Truncate(s, width, "")
	case w < width:
		return runewidth.FillRight(s, width)
	}
	return s
}
