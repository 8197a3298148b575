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

// weekState holds the week tab state.
type weekState struct {
	day  int // index into model.Days
	slot int // index into DayPlan.Meals()
}

func dayIndex(d model.DayKey) int {
	for i, k := range model.Days {
		if k == d {
			return i
		}
	}
	return 0
}

func (a App) dayPlan() model.DayPlan {
	return a.week[model.Days[a.weekState.day]]
}

func (a App) updateWeek(key string) (App, bool) {
	ws := &a.weekState
	switch key {
	case "j", "down":
		ws.slot = clamp(ws.slot+1, 0, len(a.dayPlan().Meals())-1)
	case "k", "up":
		ws.slot = clamp(ws.slot-1, 0, len(a.dayPlan().Meals())-1)
	case "[":
		ws.day = (ws.day - 1 + len(model.Days)) % len(model.Days)
		ws.slot = clamp(ws.slot, 0, len(a.dayPlan().Meals())-1)
	case "]":
		ws.day = (ws.day + 1) % len(model.Days)
		ws.slot = clamp(ws.slot, 0, len(a.dayPlan().Meals())-1)
	case "t":
		ws.day = dayIndex(pipeline.DayFor(a.today))
		ws.slot = clamp(ws.slot, 0, len(a.dayPlan().Meals())-1)
	case "n":
		a = a.swapSlot()
	case "u":
		a = a.resetDay()
	default:
		return a, false
	}
	return a, true
}

// swapSlot replaces the selected meal with the next one of the same type.
// Swaps live for the session only and flow into the shopping list.
func (a App) swapSlot() App {
	day := model.Days[a.weekState.day]
	plan := a.week[day]
	meals := plan.Meals()
	if a.weekState.slot >= len(meals) {
		return a
	}
	current := meals[a.weekState.slot]
	next := pipeline.NextSwap(a.meals, current)
	if next.ID == current.ID {
		a.flash = "No other " + string(current.Type) + " to swap in"
		return a
	}

	switch a.weekState.slot {
	case 0:
		plan.Breakfast = next
	case 1:
		plan.Lunch = next
	case 2:
		plan.Dinner = next
	default:
		extra := *plan.ExtraLunch
		extra.Meal = next
		plan.ExtraLunch = &extra
	}
	a.week = copyWeek(a.week)
	a.week[day] = plan
	a.items = pipeline.AggregateShopping(a.week)
	a.flash = "Swapped in " + next.Name
	return a
}

// resetDay restores the selected day to the catalog plan.
func (a App) resetDay() App {
	day := model.Days[a.weekState.day]
	orig, ok := a.cat.Day(day)
	if !ok {
		return a
	}
	a.week = copyWeek(a.week)
	a.week[day] = orig
	a.items = pipeline.AggregateShopping(a.week)
	a.weekState.slot = clamp(a.weekState.slot, 0, len(orig.Meals())-1)
	return a
}

func copyWeek(w model.WeekPlan) model.WeekPlan {
	out := make(model.WeekPlan, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

func mealColor(t model.MealType) lipgloss.Color {
	switch t {
	case model.Breakfast:
		return theme.Active.Breakfast
	case model.Lunch:
		return theme.Active.Lunch
	default:
		return theme.Active.Dinner
	}
}

func (a App) renderWeekTab(cw int) string {
	t := theme.Active
	plan := a.dayPlan()
	meals := plan.Meals()
	slot := clamp(a.weekState.slot, 0, len(meals)-1)

	var totals model.Nutrition
	mins := 0
	for _, m := range plan.Meals()[:3] {
		totals = totals.Add(m.Totals)
		mins += m.TotalMins()
	}
	weekCost := pipeline.WeekCost(a.week)

	coverage := "-"
	coverageNote := "no primary member"
	if a.hh != nil {
		if p, ok := a.hh.Primary(); ok {
			coverageNote = p.Name + " · " + cli.FormatKcal(p.Targets.Calories)
			if pct, ok := a.hh.Coverage(model.ComposedMeal{Totals: totals}); ok {
				coverage = fmt.Sprintf("%d%%", pct)
			}
		}
	}

	var b strings.Builder
	b.WriteString(a.renderDayStrip(cw))
	b.WriteString("\n")

	stats := []components.Stat{
		{Label: "Calories", Value: cli.FormatKcal(totals.Calories),
			Note: fmt.Sprintf("P %dg · C %dg · F %dg", totals.Protein, totals.Carbs, totals.Fat)},
		{Label: "Day Cost", Value: cli.FormatCost(pipeline.DayCost(plan)), Color: t.Accent,
			Note: "week " + cli.FormatCost(weekCost)},
		{Label: "Cooking", Value: cli.FormatMinutes(mins), Note: "breakfast to dinner"},
		{Label: "Coverage", Value: coverage, Note: coverageNote},
	}
	if a.isCompactLayout() {
		b.WriteString(components.StatCardRow(stats[:2], cw))
		b.WriteString("\n")
		b.WriteString(components.StatCardRow(stats[2:], cw))
	} else {
		b.WriteString(components.StatCardRow(stats, cw))
	}
	b.WriteString("\n")

	listW := cw
	detailW := cw
	if !a.isCompactLayout() {
		listW = max(cw*2/5, 40)
		detailW = cw - listW
	}

	listCard := components.ContentCard(plan.Day.Label(), a.renderDayMeals(plan, slot, components.CardInnerWidth(listW)), listW)
	sel := meals[slot]
	detailCard := components.ContentCard(sel.Name, renderMealBody(sel, components.CardInnerWidth(detailW)), detailW)
	if a.isCompactLayout() {
		b.WriteString(listCard)
		b.WriteString("\n")
		b.WriteString(detailCard)
	} else {
		b.WriteString(components.CardRow([]string{listCard, detailCard}))
	}
	b.WriteString("\n")

	costs := make([]float64, len(model.Days))
	labels := make([]string, len(model.Days))
	for i, d := range model.Days {
		costs[i] = pipeline.DayCost(a.week[d])
		labels[i] = d.Short()
	}
	chart := components.ColumnChart(costs, labels, t.Accent, components.CardInnerWidth(cw), 5)
	b.WriteString(components.ContentCard("Daily Cost", chart, cw))

	return b.String()
}

func (a App) renderDayStrip(cw int) string {
	t := theme.Active
	today := pipeline.DayFor(a.today)

	base := lipgloss.NewStyle().Padding(0, 1).Background(t.Surface)
	dayStyle := base.Foreground(t.TextMuted)
	todayStyle := base.Foreground(t.AccentBright).Bold(true)
	activeStyle := base.Foreground(t.Background).Background(t.Accent).Bold(true)

	parts := make([]string, len(model.Days))
	for i, d := range model.Days {
		label := d.Short()
		switch {
		case i == a.weekState.day:
			parts[i] = activeStyle.Render(label)
		case d == today:
			parts[i] = todayStyle.Render(label + "•")
		default:
			parts[i] = dayStyle.Render(label)
		}
	}
	strip := strings.Join(parts, lipgloss.NewStyle().Background(t.Surface).Render(" "))
	return lipgloss.NewStyle().Background(t.Surface).Width(cw).Render(strip)
}

func (a App) renderDayMeals(plan model.DayPlan, slot, w int) string {
	t := theme.Active
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	for i, m := range plan.Meals() {
		label := strings.ToUpper(string(m.Type))
		if i == 3 && plan.ExtraLunch != nil {
			label = "LUNCH · " + strings.ToUpper(plan.ExtraLunch.For)
		}
		tagStyle := lipgloss.NewStyle().Foreground(mealColor(m.Type)).Background(t.Surface).Bold(true)
		b.WriteString(tagStyle.Render(label))
		b.WriteString("\n")

		cost := cli.FormatCost(m.TotalCost)
		nameW := max(w-lipgloss.Width(cost)-2, 8)
		line := fmt.Sprintf("%-*s %s", nameW, truncStr(m.Name, nameW), cost)
		if i == slot {
			b.WriteString(selStyle.Render("▸" + line))
		} else {
			b.WriteString(rowStyle.Render(" " + line))
		}
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" %s · %s · %s",
			cli.FormatKcal(m.Totals.Calories), cli.FormatMinutes(m.TotalMins()), m.Cuisine)))
		if i < len(plan.Meals())-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderMealBody lists a meal's nutrition, components and ingredients.
func renderMealBody(m model.ComposedMeal, w int) string {
	t := theme.Active
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n",
		labelStyle.Render("Cuisine"), valueStyle.Render(string(m.Cuisine)),
		labelStyle.Render("Cost"), valueStyle.Render(cli.FormatCost(m.TotalCost)),
		labelStyle.Render("Time"), valueStyle.Render(cli.FormatMinutes(m.TotalMins())))
	n := m.Totals
	pct, carbs, fat := nutrition.MacroSplit(n.Protein, n.Carbs, n.Fat)
	fmt.Fprintf(&b, "%s %s  %s\n",
		labelStyle.Render("Energy"), valueStyle.Render(cli.FormatKcal(n.Calories)),
		dimStyle.Render(fmt.Sprintf("P %dg (%d%%) · C %dg (%d%%) · F %dg (%d%%) · Fibre %dg",
			n.Protein, pct, n.Carbs, carbs, n.Fat, fat, n.Fibre)))

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Components"))
	b.WriteString("\n")
	for _, c := range m.Components() {
		kid := ""
		if c.KidFriendly {
			kid = " · kid-friendly"
		}
		line := fmt.Sprintf("%-9s %s", string(c.Role), c.Name)
		b.WriteString(valueStyle.Render(truncStr(line, w)))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(truncStr(fmt.Sprintf("          %s prep · %s cook · %s%s",
			cli.FormatMinutes(c.PrepMins), cli.FormatMinutes(c.CookMins), c.Difficulty, kid), w)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Ingredients"))
	for _, ing := range m.Ingredients {
		b.WriteString("\n")
		cost := cli.FormatCost(ing.Cost)
		name := truncStr(ing.Name+" ("+ing.Quantity+")", max(w-len(cost)-1, 8))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%-*s", max(w-len(cost)-1, 0), name)))
		b.WriteString(labelStyle.Render(" " + cost))
	}
	return b.String()
}
