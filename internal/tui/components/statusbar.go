package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/splitlog/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with left and right text.
// A non-empty flash replaces the left text and is highlighted.
func RenderStatusBar(width int, left, right, flash string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	if flash != "" {
		left = lipgloss.NewStyle().Foreground(t.Warning).Render(flash)
	}
	left = " " + left
	right += " "

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return style.Render(left + strings.Repeat(" ", padding) + right)
}
