package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/mealplan/internal/cli"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/pipeline"
	"github.com/theirongolddev/mealplan/internal/tui/components"
	"github.com/theirongolddev/mealplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// shoppingState holds the shopping tab state.
type shoppingState struct {
	cursor      int
	hideChecked bool
}

// visibleItems is the shopping list in category order, without ticked
// items when they are hidden.
func (a App) visibleItems() []model.ShoppingItem {
	items := a.items
	if a.shopState.hideChecked {
		items = pipeline.FilterUnchecked(items, a.checked)
	}
	var out []model.ShoppingItem
	for _, g := range pipeline.GroupShopping(items) {
		out = append(out, g.Items...)
	}
	return out
}

func (a App) updateShopping(key string) (App, tea.Cmd, bool) {
	ss := &a.shopState
	items := a.visibleItems()
	switch key {
	case "j", "down":
		ss.cursor = clamp(ss.cursor+1, 0, len(items)-1)
	case "k", "up":
		ss.cursor = clamp(ss.cursor-1, 0, len(items)-1)
	case "g", "home":
		ss.cursor = 0
	case "G", "end":
		ss.cursor = max(len(items)-1, 0)
	case "u":
		ss.hideChecked = !ss.hideChecked
		ss.cursor = clamp(ss.cursor, 0, len(a.visibleItems())-1)
	case " ", "space", "enter", "x":
		if len(items) == 0 {
			return a, nil, true
		}
		if !a.tracking() {
			a.flash = "Tracking unavailable, ticks are not saved"
			return a, nil, true
		}
		item := items[clamp(ss.cursor, 0, len(items)-1)]
		return a, a.setCheckedCmd(item.Name, !a.checked[item.Name]), true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) renderShoppingTab(cw, h int) string {
	t := theme.Active

	total := pipeline.ShoppingTotal(a.items)
	ticked := pipeline.CheckedTotal(a.items, a.checked)
	doneCount := 0
	for _, it := range a.items {
		if a.checked[it.Name] {
			doneCount++
		}
	}

	budgetStat := components.Stat{Label: "vs Budget", Value: cli.FormatCost(a.budget - total), Color: t.Good,
		Note: "left after the full list"}
	if total > a.budget {
		budgetStat.Value = cli.FormatCost(total - a.budget)
		budgetStat.Color = t.Over
		budgetStat.Note = "over the weekly budget"
	}
	stats := []components.Stat{
		{Label: "Items", Value: fmt.Sprintf("%d", len(a.items)), Note: fmt.Sprintf("%d categories", len(pipeline.GroupShopping(a.items)))},
		{Label: "List Total", Value: cli.FormatCost(total), Color: t.Accent, Note: "planned week"},
		{Label: "Ticked", Value: cli.FormatCost(ticked), Note: cli.FormatCost(total-ticked) + " still to buy"},
		budgetStat,
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

	inner := components.CardInnerWidth(cw)
	progress := components.CountBar(doneCount, len(a.items), inner)

	used := lipgloss.Height(b.String())
	visible := max(h-used-5, 3) // card border, title, progress row
	body := progress + "\n\n" + a.renderShoppingList(inner, visible)

	title := "Shopping List"
	if a.shopState.hideChecked {
		title += " (ticked hidden)"
	}
	b.WriteString(components.ContentCard(title, body, cw))
	return b.String()
}

// renderShoppingList draws grouped items, scrolled so the cursor stays
// within visible lines.
func (a App) renderShoppingList(w, visible int) string {
	t := theme.Active
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	doneStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Strikethrough(true)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	items := a.items
	if a.shopState.hideChecked {
		items = pipeline.FilterUnchecked(items, a.checked)
	}
	groups := pipeline.GroupShopping(items)
	if len(groups) == 0 {
		return mutedStyle.Render("Everything is ticked off.")
	}

	var lines []string
	cursorLine := 0
	idx := 0
	for _, g := range groups {
		lines = append(lines, headerStyle.Render(fmt.Sprintf("%s · %s", g.Category, cli.FormatCost(g.Cost))))
		for _, it := range g.Items {
			box := "[ ]"
			style := rowStyle
			if a.checked[it.Name] {
				box = "[x]"
				style = doneStyle
			}
			cost := cli.FormatCost(it.Cost)
			qty := it.QuantityText()
			nameW := max(w-len(cost)-lipgloss.Width(qty)-8, 8)
			line := fmt.Sprintf("%s %-*s %s", box, nameW, truncStr(it.Name, nameW), truncStr(qty, max(w-nameW-len(cost)-7, 0)))
			pad := max(w-1-lipgloss.Width(line)-len(cost), 1)
			line += strings.Repeat(" ", pad) + cost

			if idx == a.shopState.cursor {
				cursorLine = len(lines)
				lines = append(lines, selStyle.Render("▸"+line))
			} else {
				lines = append(lines, style.Render(" "+line))
			}
			idx++
		}
	}

	offset := scrollWindow(cursorLine, 0, visible)
	end := min(offset+visible, len(lines))
	return strings.Join(lines[offset:end], "\n")
}
