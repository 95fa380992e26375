package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mbaranski/scrumline/internal/domain"
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
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the lipgloss style for an item status.
func StatusStyle(status domain.ItemStatus) lipgloss.Style {
	switch status {
	case domain.StatusDone:
		return StyleGreen
	case domain.StatusInProgress:
		return StyleYellow
	case domain.StatusOnHold:
		return StylePurple
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored status marker such as "● IN PROGRESS".
func StatusIndicator(status domain.ItemStatus) string {
	label := strings.ToUpper(strings.ReplaceAll(string(status), "_", " "))
	return StatusStyle(status).Render("● " + label)
}

// TypeBadge returns a short colored label for the item type, blue for the
// aggregate levels and plain foreground for leaves.
func TypeBadge(typ domain.ItemType) string {
	label := strings.ToUpper(string(typ))
	if typ.IsAggregate() {
		return StyleBlue.Render(label)
	}
	return StyleFg.Render(label)
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
