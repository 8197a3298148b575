package components

import (
	"fmt"

	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// BudgetColor is green under the near-limit mark, orange near it and red
// once spend passes the budget.
func BudgetColor(st model.BudgetStatus) lipgloss.Color {
	t := theme.Active
	switch {
	case st.Over:
		return t.Over
	case st.NearLimit:
		return t.Warn
	default:
		return t.Good
	}
}

// Bar renders a solid progress bar of width cells filled to pct (0..1).
func Bar(pct float64, width int, color lipgloss.Color) string {
	pct = min(max(pct, 0), 1)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(width, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(theme.Active.TextDim)
	return bar.ViewAs(pct)
}

// BudgetBar renders the weekly budget bar with its percentage.
func BudgetBar(st model.BudgetStatus, width int) string {
	t := theme.Active
	color := BudgetColor(st)

	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	barW := max(width-6, 4)
	return Bar(st.PercentUsed/100, barW, color) + space + pctStyle.Render(fmt.Sprintf("%3.0f%%", st.PercentUsed))
}

// CountBar renders done/total as a bar with a "done/total" suffix.
func CountBar(done, total, width int) string {
	t := theme.Active
	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	suffix := fmt.Sprintf(" %d/%d", done, total)
	barW := max(width-lipgloss.Width(suffix), 4)
	return Bar(pct, barW, t.Accent) +
		lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(suffix)
}
