package tape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCells(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"ascii", "abc", []string{"a", "b", "c"}},
		{"empty", "", nil},
		{"braille", "⠋⠙", []string{"⠋", "⠙"}},
		{"combining mark", "éx", []string{"é", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cells(tt.in))
		})
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"ascii", "abc", 3},
		{"empty", "", 0},
		{"wide", "世", 2},
		{"braille", "⠋", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Width(tt.in))
		})
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"exact", "ab", 2, "ab"},
		{"pad", "ab", 4, "ab  "},
		{"truncate", "abcd", 2, "ab"},
		{"empty to width", "", 3, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fit(tt.in, tt.width))
			assert.Equal(t, tt.width, Width(Fit(tt.in, tt.width)))
		})
	}
}
