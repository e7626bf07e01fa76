// Package markdown renders markdown for the help and details overlays.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// noMarginStyle drops document margins so rendered text sits flush inside
// overlay borders.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps a glamour renderer with a fixed wrap width.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a renderer wrapping at width. The style follows the terminal:
// dark or light on a TTY, plain markers otherwise.
func New(width int) (*Renderer, error) {
	return NewWithStyle(width, styles.AutoStyle)
}

// NewWithStyle creates a renderer using the named glamour standard style
// ("dark", "light", "notty", ...).
func NewWithStyle(width int, style string) (*Renderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown into styled terminal output with trailing blank
// lines removed.
func (r *Renderer) Render(md string) (string, error) {
	out, err := r.renderer.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n "), nil
}
