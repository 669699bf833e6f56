package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldbook/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetPlain turns colour output off or back on for every style.
func SetPlain(plain bool) {
	if plain {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// DeviationColor returns the style for a deviation classification.
func DeviationColor(c domain.DeviationClass) lipgloss.Style {
	switch c {
	case domain.DeviationNone, domain.DeviationWithinTolerance:
		return StyleGreen
	case domain.DeviationAhead:
		return StyleBlue
	case domain.DeviationBehind:
		return StyleRed
	default:
		return StyleDim
	}
}

// DeviationIndicator returns a colored label such as "● BEHIND".
func DeviationIndicator(c domain.DeviationClass) string {
	switch c {
	case domain.DeviationNone:
		return DeviationColor(c).Render("● ON PLAN")
	case domain.DeviationWithinTolerance:
		return DeviationColor(c).Render("● WITHIN TOLERANCE")
	case domain.DeviationAhead:
		return DeviationColor(c).Render("▼ AHEAD")
	case domain.DeviationBehind:
		return DeviationColor(c).Render("▲ BEHIND")
	default:
		return DeviationColor(c).Render("○ NO HISTORY")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
