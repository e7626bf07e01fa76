package styles

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		width    int
		expected string
	}{
		{"fits", "Coco", 10, "Coco"},
		{"exact", "Coco", 4, "Coco"},
		{"ellipsis", "Bartholomew", 8, "Barth..."},
		{"tiny width", "Bartholomew", 2, "Ba"},
		{"zero width", "Coco", 0, ""},
		{"wide runes", "猴子猴子", 6, "猴..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.in, tt.width)
			require.Equal(t, tt.expected, got)
			require.LessOrEqual(t, runewidth.StringWidth(got), max(tt.width, 0))
		})
	}
}

func TestPadRight(t *testing.T) {
	require.Equal(t, "Jo    ", PadRight("Jo", 6))
	require.Equal(t, "Bar...", PadRight("Bartholomew", 6))
	require.Equal(t, 6, runewidth.StringWidth(PadRight("猴", 6)))
}
