// Package style names ready-made spinner styles and loads custom ones from
// YAML definitions.
package style

import "swirl/internal/spinner"

// Style pairs a name with the builder that produces the animation.
type Style struct {
	Name    string
	Builder *spinner.Builder
}

// Catalog returns the built-in styles.
func Catalog() []Style {
	return []Style{
		{"classic", spinner.Frames(`-\|/`)},
		{"dots", spinner.Frames("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")},
		{"fish", spinner.Scrolling("><(((·>", spinner.Length(15))},
		{"comet", spinner.Scrolling("»»»", spinner.Length(10),
			spinner.Background("·"), spinner.Overlay())},
		{"blocks", spinner.Scrolling("▉▊▋▌▍", spinner.Length(8), spinner.Block(2))},
		{"ball", spinner.Bouncing("●", 8, spinner.Contained())},
		{"arrows", spinner.Bouncing(">>", 10, spinner.LeftChars("<<"))},
		{"wave", spinner.Delayed(spinner.Frames("▁▂▃▄▅▆▇█▇▆▅▄▃▂"), 3, 2)},
	}
}

// Lookup finds a built-in style by name.
func Lookup(name string) (Style, bool) {
	for _, s := range Catalog() {
		if s.Name == name {
			return s, true
		}
	}
	return Style{}, false
}
