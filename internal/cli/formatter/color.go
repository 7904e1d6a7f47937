package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/charmbracelet/lipgloss"
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

// KindBadge returns a colored label for a document kind.
func KindBadge(kind domain.DocumentKind) string {
	switch kind {
	case domain.KindReferralEmail:
		return StyleBlue.Render("● email")
	case domain.KindCoverLetter:
		return StylePurple.Render("● cover letter")
	default:
		return StyleDim.Render("● " + string(kind))
	}
}

// Header renders an uppercased section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success prefixes msg with a green check mark.
func Success(msg string) string {
	return StyleGreen.Render("✔") + " " + msg
}

// Warning prefixes msg with a yellow marker.
func Warning(msg string) string {
	return StyleYellow.Render("!") + " " + msg
}

// Error renders msg in red.
func Error(msg string) string {
	return StyleRed.Render("✖ " + msg)
}
