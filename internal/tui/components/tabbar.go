package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/splitlog/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name, -1 if absent
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Expenses", Key: 'e', KeyPos: 0},
	{Name: "Summary", Key: 's', KeyPos: 0},
	{Name: "Settings", Key: 't', KeyPos: 2},
}

const tabPadding = 1

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Selected).
		Bold(true).
		Padding(0, tabPadding)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Padding(0, tabPadding)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts[i] = activeStyle.Render(tab.Name)
			continue
		}
		label := tab.Name
		if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
			label = tab.Name[:tab.KeyPos] + keyStyle.Render(string(tab.Name[tab.KeyPos])) + tab.Name[tab.KeyPos+1:]
		}
		parts[i] = inactiveStyle.Render(label)
	}

	bar := strings.Join(parts, " ")
	return lipgloss.NewStyle().Width(width).Render(bar)
}

// TabVisualWidth returns the rendered width of tab i.
func TabVisualWidth(i int) int {
	return lipgloss.Width(Tabs[i].Name) + 2*tabPadding
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
