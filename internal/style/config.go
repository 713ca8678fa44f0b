package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"swirl/internal/spinner"
)

// Spec is one spinner definition in a YAML style file. Kind selects the
// builder; the remaining fields apply to the kinds that use them.
type Spec struct {
	Name       string   `yaml:"name"`
	Kind       string   `yaml:"kind"`
	Frames     []string `yaml:"frames"`
	Chars      string   `yaml:"chars"`
	LeftChars  string   `yaml:"left_chars"`
	Length     int      `yaml:"length"`
	Block      int      `yaml:"block"`
	Background string   `yaml:"background"`
	Right      *bool    `yaml:"right"`
	Hiding     *bool    `yaml:"hiding"`
	Overlay    bool     `yaml:"overlay"`
	Copies     int      `yaml:"copies"`
	Offset     int      `yaml:"offset"`
	Base       *Spec    `yaml:"base"`
}

// styleFile is the top-level YAML document.
type styleFile struct {
	Spinners []Spec `yaml:"spinners"`
}

// Load reads and builds the custom styles from the given file path.
func Load(path string) ([]Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style file: %w", err)
	}
	return Parse(data)
}

// Parse builds the custom styles from YAML data.
func Parse(data []byte) ([]Style, error) {
	var f styleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse style file: %w", err)
	}

	styles := make([]Style, 0, len(f.Spinners))
	for _, spec := range f.Spinners {
		if spec.Name == "" {
			return nil, fmt.Errorf("spinner definition is missing a name")
		}
		b, err := Build(spec)
		if err != nil {
			return nil, fmt.Errorf("spinner %q: %w", spec.Name, err)
		}
		styles = append(styles, Style{Name: spec.Name, Builder: b})
	}
	return styles, nil
}

// Build turns one definition into a spinner builder.
func Build(s Spec) (*spinner.Builder, error) {
	switch s.Kind {
	case "frames":
		if len(s.Frames) == 0 && s.Chars == "" {
			return nil, fmt.Errorf("frames or chars is required")
		}
		if len(s.Frames) > 0 {
			return spinner.Frames(s.Frames...), nil
		}
		return spinner.Frames(s.Chars), nil

	case "scrolling":
		if s.Chars == "" {
			return nil, fmt.Errorf("chars is required")
		}
		return spinner.Scrolling(s.Chars, s.options()...), nil

	case "bouncing":
		if s.Chars == "" {
			return nil, fmt.Errorf("chars is required")
		}
		if s.Length < 1 {
			return nil, fmt.Errorf("a positive length is required")
		}
		return spinner.Bouncing(s.Chars, s.Length, s.options()...), nil

	case "delayed":
		if s.Base == nil {
			return nil, fmt.Errorf("base is required")
		}
		if s.Copies < 1 {
			return nil, fmt.Errorf("at least one copy is required")
		}
		if s.Offset < 0 {
			return nil, fmt.Errorf("offset must not be negative")
		}
		base, err := Build(*s.Base)
		if err != nil {
			return nil, fmt.Errorf("base: %w", err)
		}
		return spinner.Delayed(base, s.Copies, s.Offset), nil

	case "":
		return nil, fmt.Errorf("kind is required")
	default:
		return nil, fmt.Errorf("unknown kind %q", s.Kind)
	}
}

// options translates the optional fields into builder options.
func (s Spec) options() []spinner.Option {
	var opts []spinner.Option
	if s.Length > 0 {
		opts = append(opts, spinner.Length(s.Length))
	}
	if s.Block > 0 {
		opts = append(opts, spinner.Block(s.Block))
	}
	if s.Background != "" {
		opts = append(opts, spinner.Background(s.Background))
	}
	if s.Right != nil && !*s.Right {
		opts = append(opts, spinner.Leftward())
	}
	if s.Hiding != nil && !*s.Hiding {
		opts = append(opts, spinner.Contained())
	}
	if s.Overlay {
		opts = append(opts, spinner.Overlay())
	}
	if s.LeftChars != "" {
		opts = append(opts, spinner.LeftChars(s.LeftChars))
	}
	return opts
}
