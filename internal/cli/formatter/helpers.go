package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatHours renders an optional hours value, "–" when unset.
// Whole values drop the decimal: 5 → "5h", 2.5 → "2.5h".
func FormatHours(hours *float64) string {
	if hours == nil {
		return "–"
	}
	return strconv.FormatFloat(*hours, 'f', -1, 64) + "h"
}

// FormatEffort renders the actual/estimate pair, e.g. "2.5h / 8h".
// Either side may be unset.
func FormatEffort(estimate, actual *float64) string {
	return fmt.Sprintf("%s / %s", FormatHours(actual), FormatHours(estimate))
}

// ProgressBar renders a fixed-width bar of done vs estimated hours.
// Returns "" when there is no estimate to measure against.
func ProgressBar(estimate, actual *float64, width int) string {
	if estimate == nil || *estimate <= 0 {
		return ""
	}
	ratio := 0.0
	if actual != nil {
		ratio = *actual / *estimate
	}
	overrun := ratio > 1
	if overrun {
		ratio = 1
	}
	filled := int(ratio * float64(width))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if overrun {
		return StyleRed.Render(bar)
	}
	return StyleGreen.Render(bar)
}
