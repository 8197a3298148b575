package components

import (
	"strings"

	"github.com/theirongolddev/mealplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom bar: key hints on the left and the
// week and tracking state on the right. A non-empty warning replaces the
// right side.
func RenderStatusBar(width int, hints, info, warning string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Background(t.Surface)
	hintStyle := style.Foreground(t.TextMuted)
	infoStyle := style.Foreground(t.TextDim)
	warnStyle := style.Foreground(t.Warn).Bold(true)

	left := hintStyle.Render(" " + hints)
	right := infoStyle.Render(info + " ")
	if warning != "" {
		right = warnStyle.Render(warning + " ")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + style.Render(strings.Repeat(" ", gap)) + right
}
