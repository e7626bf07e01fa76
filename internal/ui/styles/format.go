package styles

import (
	"github.com/mattn/go-runewidth"
)

// TruncateString truncates s to fit within maxWidth cells, adding an ellipsis
// if needed. Wide runes count as two cells.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadRight pads s with spaces to exactly width cells, truncating first if it
// is too long.
func PadRight(s string, width int) string {
	return runewidth.FillRight(TruncateString(s, width), width)
}
