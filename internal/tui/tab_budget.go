package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/mealplan/internal/cli"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/pipeline"
	"github.com/theirongolddev/mealplan/internal/store"
	"github.com/theirongolddev/mealplan/internal/tui/components"
	"github.com/theirongolddev/mealplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// budgetState holds the budget tab state.
type budgetState struct {
	cursor int
	// pendingDelete is the receipt awaiting a second "d".
	pendingDelete string
}

func (s *budgetState) clamp(n int) {
	s.cursor = clamp(s.cursor, 0, n-1)
	s.pendingDelete = ""
}

// receiptRows lists receipts in the order the log shows them.
func (a App) receiptRows() []model.Receipt {
	var out []model.Receipt
	for _, d := range pipeline.GroupReceiptsByDay(a.receipts) {
		out = append(out, d.Receipts...)
	}
	return out
}

func (a App) updateBudget(key string) (App, tea.Cmd, bool) {
	bs := &a.budgetState
	rows := a.receiptRows()
	if key != "d" && key != "x" {
		bs.pendingDelete = ""
	}

	switch key {
	case "j", "down":
		bs.cursor = clamp(bs.cursor+1, 0, len(rows)-1)
	case "k", "up":
		bs.cursor = clamp(bs.cursor-1, 0, len(rows)-1)
	case "a", "+":
		if !a.tracking() {
			a.flash = "Tracking unavailable"
			return a, nil, true
		}
		a.receiptVals = ReceiptValues{}
		a.receiptForm = NewReceiptForm(&a.receiptVals).WithWidth(formWidth(a.width))
		return a, a.receiptForm.Init(), true
	case "d", "x":
		if len(rows) == 0 || !a.tracking() {
			return a, nil, true
		}
		sel := rows[clamp(bs.cursor, 0, len(rows)-1)]
		if bs.pendingDelete != sel.ID {
			bs.pendingDelete = sel.ID
			a.flash = fmt.Sprintf("Press d again to delete %s %s", sel.DisplayName(), cli.FormatCost(sel.Amount))
			return a, nil, true
		}
		bs.pendingDelete = ""
		return a, a.deleteReceiptCmd(sel.ID), true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) updateReceiptForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		a.receiptForm = nil
		return a, nil
	}

	form, cmd := a.receiptForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.receiptForm = f
	}

	switch a.receiptForm.State {
	case huh.StateCompleted:
		a.receiptForm = nil
		draft, err := a.receiptVals.Draft(a.today)
		if err != nil {
			a.flash = "Could not save receipt: " + trackingMessage(err)
			return a, nil
		}
		return a, a.createReceiptCmd(draft)
	case huh.StateAborted:
		a.receiptForm = nil
		return a, nil
	}
	return a, cmd
}

func formWidth(termWidth int) int {
	return min(max(termWidth-10, 40), 72)
}

func (a App) viewReceiptForm() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	body := titleStyle.Render("Add receipt · "+store.WeekRangeLabel(a.weekStart)) + "\n\n" +
		a.receiptForm.View() + "\n" + dimStyle.Render("esc to cancel")
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderBudgetTab(cw, h int) string {
	t := theme.Active

	if !a.tracking() {
		msg := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(
			"Receipts cannot be loaded, so spend is not tracked this session.\n" +
				"Reason: " + trackingMessage(a.ledgerErr) + "\n\n" +
				"Check storage settings with `mealplan config` and press R to retry.")
		return components.ContentCard("Tracking unavailable", msg, cw)
	}

	st := a.budgetStatus()
	remaining := components.Stat{Label: "Remaining", Value: cli.FormatCost(st.Remaining), Color: t.Good}
	if st.Over {
		remaining = components.Stat{Label: "Over by", Value: cli.FormatCost(st.OverBy), Color: t.Over}
	} else if st.NearLimit {
		remaining.Color = t.Warn
		remaining.Note = "near the limit"
	}
	planCost := pipeline.ShoppingTotal(a.items)
	stats := []components.Stat{
		{Label: "Weekly Budget", Value: cli.FormatCost(st.Budget)},
		{Label: "Spent", Value: cli.FormatCost(st.Spent), Color: components.BudgetColor(st),
			Note: fmt.Sprintf("%d receipts", len(a.receipts))},
		remaining,
		{Label: "Planned List", Value: cli.FormatCost(planCost), Note: cli.FormatDelta(planCost - st.Budget) + " vs budget"},
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
	b.WriteString(components.ContentCard("This Week", components.BudgetBar(st, inner), cw))
	b.WriteString("\n")

	storeW := cw
	logW := cw
	if !a.isCompactLayout() {
		storeW = max(cw/3, 36)
		logW = cw - storeW
	}
	storeCard := components.ContentCard("By Store", a.renderStoreSpend(components.CardInnerWidth(storeW)), storeW)

	used := lipgloss.Height(b.String())
	if a.isCompactLayout() {
		used += lipgloss.Height(storeCard)
	}
	visible := max(h-used-3, 3)
	logCard := components.ContentCard("Receipts", a.renderReceiptLog(components.CardInnerWidth(logW), visible), logW)

	if a.isCompactLayout() {
		b.WriteString(storeCard)
		b.WriteString("\n")
		b.WriteString(logCard)
	} else {
		b.WriteString(components.CardRow([]string{storeCard, logCard}))
	}
	return b.String()
}

func (a App) renderStoreSpend(w int) string {
	t := theme.Active
	spend := pipeline.SpendByStore(a.receipts)
	if len(spend) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render("No spend yet")
	}

	peak := 0.0
	for _, s := range spend {
		peak = max(peak, s.Amount)
	}
	labelW := 0
	for _, s := range spend {
		labelW = max(labelW, lipgloss.Width(s.Store.Label()))
	}
	barW := max(w-labelW-12, 4)

	lines := make([]string, len(spend))
	for i, s := range spend {
		lines[i] = components.HBar(s.Store.Label(), s.Amount, peak, labelW, barW, t.Accent, cli.FormatCost(s.Amount))
	}
	return strings.Join(lines, "\n")
}

func (a App) renderReceiptLog(w, visible int) string {
	t := theme.Active
	dayStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	delStyle := lipgloss.NewStyle().Foreground(t.Over).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	days := pipeline.GroupReceiptsByDay(a.receipts)
	if len(days) == 0 {
		return mutedStyle.Render("No receipts this week. Press a to add one.")
	}

	var lines []string
	cursorLine := 0
	idx := 0
	for _, d := range days {
		lines = append(lines, dayStyle.Render(fmt.Sprintf("%s · %s",
			cli.FormatDateLabel(d.Date, a.today), cli.FormatCost(d.Total))))
		for _, r := range d.Receipts {
			cost := cli.FormatCost(r.Amount)
			label := r.DisplayName()
			if r.Notes != "" {
				label += " · " + r.Notes
			}
			nameW := max(w-len(cost)-2, 8)
			line := fmt.Sprintf("%-*s %s", nameW, truncStr(label, nameW), cost)

			switch {
			case idx == a.budgetState.cursor && r.ID == a.budgetState.pendingDelete:
				cursorLine = len(lines)
				lines = append(lines, delStyle.Render("✗"+line))
			case idx == a.budgetState.cursor:
				cursorLine = len(lines)
				lines = append(lines, selStyle.Render("▸"+line))
			default:
				lines = append(lines, rowStyle.Render(" "+line))
			}
			idx++
		}
	}

	offset := scrollWindow(cursorLine, 0, visible)
	end := min(offset+visible, len(lines))
	return strings.Join(lines[offset:end], "\n")
}
