// Package styles contains Lip Gloss style definitions.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/monkeyreg/internal/monkey"
)

var (
	// Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BBBBBB"} // ids, secondary info
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // hints, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"}

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)
	SelectedRowBgColor      = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#2A2A2A"}

	// Buttons
	ButtonTextColor             = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor        = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor   = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	ButtonSecondaryBgColor      = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#2D3436"}
	ButtonSecondaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#636E72", Dark: "#636E72"}
	ButtonDangerBgColor         = lipgloss.AdaptiveColor{Light: "#922B21", Dark: "#922B21"}
	ButtonDangerFocusBgColor    = lipgloss.AdaptiveColor{Light: "#E74C3C", Dark: "#E74C3C"}
	ButtonDisabledBgColor       = lipgloss.AdaptiveColor{Light: "#2D2D2D", Dark: "#2D2D2D"}

	baseButtonStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle = baseButtonStyle.
				Foreground(ButtonTextColor).
				Background(ButtonPrimaryBgColor)

	PrimaryButtonFocusedStyle = baseButtonStyle.
					Foreground(ButtonTextColor).
					Background(ButtonPrimaryFocusBgColor).
					Underline(true).
					UnderlineSpaces(true)

	SecondaryButtonStyle = baseButtonStyle.
				Foreground(ButtonTextColor).
				Background(ButtonSecondaryBgColor)

	SecondaryButtonFocusedStyle = baseButtonStyle.
					Foreground(ButtonTextColor).
					Background(ButtonSecondaryFocusBgColor).
					Underline(true).
					UnderlineSpaces(true)

	DangerButtonStyle = baseButtonStyle.
				Foreground(ButtonTextColor).
				Background(ButtonDangerBgColor)

	DangerButtonFocusedStyle = baseButtonStyle.
					Foreground(ButtonTextColor).
					Background(ButtonDangerFocusBgColor).
					Underline(true).
					UnderlineSpaces(true)

	DisabledButtonStyle = baseButtonStyle.
				Foreground(TextMutedColor).
				Background(ButtonDisabledBgColor)

	// Forms
	FormFieldErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	FormHintStyle       = lipgloss.NewStyle().Foreground(TextMutedColor).Italic(true)
	FormWarningStyle    = lipgloss.NewStyle().Foreground(StatusWarningColor).Italic(true)

	// Overlays
	OverlayTitleColor         = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#C9C9C9"}
	OverlayBorderColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	// Toasts
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Species badges
	SpeciesCapuchinColor = lipgloss.AdaptiveColor{Light: "#B9770E", Dark: "#F5B041"}
	SpeciesMacaqueColor  = lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#73F59F"}
	SpeciesMarmosetColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#B39DFF"}
	SpeciesHowlerColor   = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF8787"}

	// Table
	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(TextSecondaryColor)
	TableCellStyle   = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	TableIDStyle     = lipgloss.NewStyle().Foreground(TextSecondaryColor)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	EmptyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	EmptyHintStyle  = lipgloss.NewStyle().Foreground(TextMutedColor)

	SpinnerColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#FFF"}
)

// SpeciesColor returns the badge color for a species.
func SpeciesColor(s monkey.Species) lipgloss.TerminalColor {
	switch s {
	case monkey.Capuchin:
		return SpeciesCapuchinColor
	case monkey.Macaque:
		return SpeciesMacaqueColor
	case monkey.Marmoset:
		return SpeciesMarmosetColor
	case monkey.Howler:
		return SpeciesHowlerColor
	default:
		return TextSecondaryColor
	}
}

// SpeciesStyle renders a species label in its badge color.
func SpeciesStyle(s monkey.Species) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SpeciesColor(s))
}

// ApplyTheme overrides the default palette from configuration. Empty strings
// keep the defaults.
func ApplyTheme(accent, muted, errorColor, success string) {
	if accent != "" {
		BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: accent, Dark: accent}
	}
	if muted != "" {
		TextMutedColor = lipgloss.AdaptiveColor{Light: muted, Dark: muted}
		BorderDefaultColor = TextMutedColor
		EmptyHintStyle = EmptyHintStyle.Foreground(TextMutedColor)
		FormHintStyle = FormHintStyle.Foreground(TextMutedColor)
	}
	if errorColor != "" {
		StatusErrorColor = lipgloss.AdaptiveColor{Light: errorColor, Dark: errorColor}
		ToastBorderErrorColor = StatusErrorColor
		FormFieldErrorStyle = FormFieldErrorStyle.Foreground(StatusErrorColor)
	}
	if success != "" {
		StatusSuccessColor = lipgloss.AdaptiveColor{Light: success, Dark: success}
		ToastBorderSuccessColor = StatusSuccessColor
	}
}
