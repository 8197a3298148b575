package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/mealplan/internal/cli"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/nutrition"
	"github.com/theirongolddev/mealplan/internal/pipeline"
	"github.com/theirongolddev/mealplan/internal/tui/components"
	"github.com/theirongolddev/mealplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHouseholdTab(cw int) string {
	t := theme.Active
	if a.hh == nil || len(a.hh.Members()) == 0 {
		return components.ContentCard("Household",
			lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render("No household members"), cw)
	}

	totals := a.hh.Totals()
	p, c, f := nutrition.MacroSplit(totals.Protein, totals.Carbs, totals.Fat)
	stats := []components.Stat{
		{Label: "Members", Value: fmt.Sprintf("%d", totals.Members)},
		{Label: "Daily Calories", Value: cli.FormatKcal(totals.Calories), Color: t.Accent, Note: "whole household"},
		{Label: "Protein", Value: fmt.Sprintf("%dg", totals.Protein), Note: fmt.Sprintf("%d%% of energy", p)},
		{Label: "Carbs / Fat", Value: fmt.Sprintf("%dg / %dg", totals.Carbs, totals.Fat), Note: fmt.Sprintf("%d%% / %d%%", c, f)},
	}

	var b strings.Builder
	if a.isCompactLayout() {
		b.WriteString(components.StatCardRow(stats[:2], cw))
		b.WriteString("\n")
		b.WriteString(components.StatCardRow(stats[2:], cw))
	} else {
		b.WriteString(components.StatCardRow(stats, cw))
	}
	b.WriteString("\n")

	b.WriteString(components.ContentCard("Daily Targets", a.renderMemberTable(components.CardInnerWidth(cw)), cw))
	b.WriteString("\n")

	if primary, ok := a.hh.Primary(); ok {
		b.WriteString(components.ContentCard("Today for "+primary.Name, a.renderPrimaryCoverage(primary, components.CardInnerWidth(cw)), cw))
	}
	return b.String()
}

func (a App) renderMemberTable(w int) string {
	t := theme.Active
	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	starStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	wide := w >= 110
	header := fmt.Sprintf("  %-12s %4s %-3s %-18s %9s %8s %7s %6s %6s", "Name", "Age", "Sex", "Activity", "Calories", "Protein", "Carbs", "Fat", "Fibre")
	if wide {
		header += fmt.Sprintf(" %8s %6s %6s", "Calcium", "Iron", "Vit C")
	}

	lines := []string{headStyle.Render(truncStr(header, w))}
	for _, m := range a.hh.Members() {
		marker := "  "
		if m.Primary {
			marker = starStyle.Render("★ ")
		}
		tg := m.Targets
		row := fmt.Sprintf("%-12s %4d %-3s %-18s %9s %7dg %6dg %5dg %5dg",
			truncStr(m.Name, 12), m.Age, string(m.Gender), truncStr(memberActivity(m.Member), 18),
			cli.FormatNumber(int64(tg.Calories)), tg.Protein, tg.Carbs, tg.Fat, tg.Fibre)
		if wide {
			row += fmt.Sprintf(" %6dmg %4dmg %4dmg", tg.Calcium, tg.Iron, tg.VitaminC)
		}
		lines = append(lines, marker+rowStyle.Render(truncStr(row, w-2)))
	}
	lines = append(lines, dimStyle.Render("★ primary member, used for meal coverage"))
	return strings.Join(lines, "\n")
}

func memberActivity(m model.Member) string {
	if m.Age < 18 {
		return "child"
	}
	return nutrition.ActivityLabel(m.Activity)
}

// renderPrimaryCoverage shows how much of the primary member's daily
// calories each of today's meals covers.
func (a App) renderPrimaryCoverage(primary model.MemberTargets, w int) string {
	t := theme.Active
	plan := a.week[pipeline.DayFor(a.today)]

	labelW := 10
	barW := max(w-labelW-26, 6)
	var lines []string
	total := 0
	for _, m := range plan.Meals()[:3] {
		pct, _ := a.hh.Coverage(m)
		total += m.Totals.Calories
		lines = append(lines, components.HBar(strings.ToUpper(string(m.Type)), float64(min(pct, 100)), 100, labelW, barW,
			mealColor(m.Type), fmt.Sprintf("%3d%%  %s", pct, truncStr(m.Name, 14))))
	}
	pct, _ := nutrition.Coverage(total, primary.Targets.Calories)
	lines = append(lines, lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(
		fmt.Sprintf("%s of %s planned · %d%% of target", cli.FormatKcal(total), cli.FormatKcal(primary.Targets.Calories), pct)))
	return strings.Join(lines, "\n")
}
