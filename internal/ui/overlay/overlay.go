// Package overlay draws dialogs and toasts on top of an already rendered
// screen without clearing it.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position is where the foreground lands.
type Position int

const (
	Center Position = iota
	Top
	Bottom
)

// Config describes the viewport and placement.
type Config struct {
	Width    int
	Height   int
	Position Position
	// PadY is the gap from the edge for Top and Bottom.
	PadY int
}

// Place splices fg into bg line by line. Both may contain ANSI styling; cut
// points are computed on display cells so styles on either side survive.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	x, y := origin(cfg, lipgloss.Width(fg), len(fgLines))

	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}
	return strings.Join(bgLines, "\n")
}

// PlaceCenter is Place with centered positioning.
func PlaceCenter(width, height int, fg, bg string) string {
	return Place(Config{Width: width, Height: height, Position: Center}, fg, bg)
}

func splice(bgLine, fgLine string, x int) string {
	left := ansi.Truncate(bgLine, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	end := x + ansi.StringWidth(fgLine)
	var right string
	if end < ansi.StringWidth(bgLine) {
		right = ansi.TruncateLeft(bgLine, end, "")
	}
	return left + fgLine + right
}

func origin(cfg Config, fgWidth, fgHeight int) (x, y int) {
	x = (cfg.Width - fgWidth) / 2
	switch cfg.Position {
	case Top:
		y = cfg.PadY
	case Bottom:
		y = cfg.Height - fgHeight - cfg.PadY
	default:
		y = (cfg.Height - fgHeight) / 2
	}
	return max(x, 0), max(y, 0)
}
