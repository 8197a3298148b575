package components

import (
	"strings"

	"github.com/theirongolddev/mealplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab is one entry in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // index of the shortcut letter in Name, -1 if absent
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Week", Key: 'w', KeyPos: 0},
	{Name: "Shopping", Key: 's', KeyPos: 0},
	{Name: "Budget", Key: 'b', KeyPos: 0},
	{Name: "Household", Key: 'h', KeyPos: 0},
	{Name: "Recipes", Key: 'r', KeyPos: 0},
}

// TabVisualWidth is the rendered width of tab, used for mouse hit testing.
func TabVisualWidth(tab Tab, active bool) int {
	w := lipgloss.Width(tab.Name) + 2 // padding
	if !active && tab.KeyPos < 0 {
		w += 3 // "[k]"
	}
	return w
}

// RenderTabBar renders a one-line tab bar with the given tab active.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	base := lipgloss.NewStyle().Background(t.Surface).Padding(0, 1)
	activeStyle := base.Foreground(t.Background).Background(t.Accent).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface)

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts[i] = activeStyle.Render(tab.Name)
			continue
		}
		var label string
		if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
			label = nameStyle.Render(tab.Name[:tab.KeyPos]) +
				keyStyle.Render(tab.Name[tab.KeyPos:tab.KeyPos+1]) +
				nameStyle.Render(tab.Name[tab.KeyPos+1:])
		} else {
			label = nameStyle.Render(tab.Name) + keyStyle.Render("["+string(tab.Key)+"]")
		}
		parts[i] = base.Render(label)
	}

	bar := strings.Join(parts, sepStyle.Render("│"))
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(bar)
}

// TabIdxByKey returns the tab index for a key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
