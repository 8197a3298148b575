// Package tui provides the interactive Bubble Tea dashboard for mealplan.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/mealplan/internal/catalog"
	"github.com/theirongolddev/mealplan/internal/cli"
	"github.com/theirongolddev/mealplan/internal/household"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/pipeline"
	"github.com/theirongolddev/mealplan/internal/store"
	"github.com/theirongolddev/mealplan/internal/tui/components"
	"github.com/theirongolddev/mealplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Tab indexes, matching components.Tabs.
const (
	tabWeek = iota
	tabShopping
	tabBudget
	tabHousehold
	tabRecipes
)

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180
	minContentHeight = 5

	ledgerTimeout = 10 * time.Second
)

// Options configures the dashboard.
type Options struct {
	Catalog   *catalog.Catalog
	Household *household.Directory
	// Ledger is nil when tracking is unavailable; LedgerErr says why.
	Ledger    store.Ledger
	LedgerErr error
	Budget    float64
	Today     time.Time
	// FirstRun shows the setup form before the dashboard.
	FirstRun bool
}

// ledgerLoadedMsg carries the current week's receipts and checklist.
type ledgerLoadedMsg struct {
	receipts []model.Receipt
	checked  map[string]bool
	err      error
}

type checkSavedMsg struct {
	item    string
	checked bool
	err     error
}

type receiptSavedMsg struct {
	receipt model.Receipt
	err     error
}

type receiptDeletedMsg struct {
	id  string
	err error
}

// App is the root Bubble Tea model.
type App struct {
	cat       *catalog.Catalog
	hh        *household.Directory
	ledger    store.Ledger
	ledgerErr error
	budget    float64
	today     time.Time
	weekStart time.Time

	// week carries any swaps made this session; meals is the catalog's
	// flat list used as the swap pool.
	week  model.WeekPlan
	meals []model.ComposedMeal
	items []model.ShoppingItem

	// Ledger state
	loaded   bool
	receipts []model.Receipt
	checked  map[string]bool
	flash    string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	weekState   weekState
	shopState   shoppingState
	budgetState budgetState
	recipeState recipesState

	receiptForm *huh.Form
	receiptVals ReceiptValues

	setupForm *huh.Form
	setupVals SetupValues
	needSetup bool

	spinner spinner.Model
}

// NewApp creates the dashboard model.
func NewApp(opts Options) App {
	today := opts.Today
	if today.IsZero() {
		today = store.Today()
	}
	today = store.DateOf(today)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	a := App{
		cat:       opts.Catalog,
		hh:        opts.Household,
		ledger:    opts.Ledger,
		ledgerErr: opts.LedgerErr,
		budget:    max(opts.Budget, 0),
		today:     today,
		weekStart: store.WeekStartOf(today),
		week:      opts.Catalog.Week(),
		meals:     opts.Catalog.Meals(),
		checked:   map[string]bool{},
		needSetup: opts.FirstRun,
		spinner:   sp,
	}
	a.items = pipeline.AggregateShopping(a.week)
	a.weekState.day = dayIndex(pipeline.DayFor(today))
	a.recipeState = newRecipesState()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		a.loadLedgerCmd(),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.receiptForm != nil {
			a.receiptForm = a.receiptForm.WithWidth(formWidth(msg.Width))
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.setupForm != nil || a.receiptForm != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return a.moveCursor(-1), nil
		case tea.MouseButtonWheelDown:
			return a.moveCursor(1), nil
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case ledgerLoadedMsg:
		a.loaded = true
		if msg.err != nil {
			a.ledgerErr = msg.err
			a.receipts = nil
			a.checked = map[string]bool{}
		} else {
			a.ledgerErr = nil
			a.receipts = msg.receipts
			a.checked = msg.checked
		}
		a.budgetState.clamp(len(a.receipts))
		if a.needSetup && a.setupForm == nil {
			a.setupVals = DefaultSetupValues(a.budget)
			a.setupForm = NewSetupForm(&a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case checkSavedMsg:
		if msg.err != nil {
			a.flash = "Could not save checklist: " + trackingMessage(msg.err)
			return a, nil
		}
		if msg.checked {
			a.checked[msg.item] = true
		} else {
			delete(a.checked, msg.item)
		}
		return a, nil

	case receiptSavedMsg:
		if msg.err != nil {
			a.flash = "Could not save receipt: " + trackingMessage(msg.err)
			return a, nil
		}
		a.flash = fmt.Sprintf("Saved %s at %s", cli.FormatCost(msg.receipt.Amount), msg.receipt.DisplayName())
		return a, a.loadLedgerCmd()

	case receiptDeletedMsg:
		if msg.err != nil {
			a.flash = "Could not delete receipt: " + trackingMessage(msg.err)
			return a, nil
		}
		a.flash = "Receipt deleted"
		return a, a.loadLedgerCmd()

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.receiptForm != nil {
		return a.updateReceiptForm(msg)
	}
	if a.recipeState.searching {
		var cmd tea.Cmd
		a.recipeState.search, cmd = a.recipeState.search.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return a, tea.Quit
	}
	if !a.loaded {
		return a, nil
	}
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.receiptForm != nil {
		return a.updateReceiptForm(msg)
	}
	if a.activeTab == tabRecipes && a.recipeState.searching {
		return a.updateRecipeSearch(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}
	a.flash = ""

	var (
		cmd     tea.Cmd
		handled bool
	)
	switch a.activeTab {
	case tabWeek:
		a, handled = a.updateWeek(key)
	case tabShopping:
		a, cmd, handled = a.updateShopping(key)
	case tabBudget:
		a, cmd, handled = a.updateBudget(key)
	case tabRecipes:
		a, cmd, handled = a.updateRecipes(key)
	}
	if handled {
		return a, cmd
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "R":
		return a, a.loadLedgerCmd()
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if r := []rune(key); len(r) == 1 {
			if idx := components.TabIdxByKey(r[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

// moveCursor moves the list cursor of the active tab.
func (a App) moveCursor(delta int) App {
	switch a.activeTab {
	case tabWeek:
		a.weekState.slot = clamp(a.weekState.slot+delta, 0, len(a.dayPlan().Meals())-1)
	case tabShopping:
		a.shopState.cursor = clamp(a.shopState.cursor+delta, 0, len(a.visibleItems())-1)
	case tabBudget:
		a.budgetState.cursor = clamp(a.budgetState.cursor+delta, 0, len(a.receipts)-1)
	case tabRecipes:
		a.recipeState.cursor = clamp(a.recipeState.cursor+delta, 0, len(a.filteredMeals())-1)
	}
	return a
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if budget, err := a.setupVals.Save(); err != nil {
			a.flash = "Could not save config: " + err.Error()
		} else {
			a.budget = budget
			a.flash = "Settings saved"
		}
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// tracking reports whether the ledger is usable.
func (a App) tracking() bool {
	return a.ledger != nil && a.ledgerErr == nil
}

func (a App) budgetStatus() model.BudgetStatus {
	return pipeline.ComputeBudget(pipeline.SumReceipts(a.receipts), a.budget)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.receiptForm != nil {
		return a.viewReceiptForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  mealplan needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)
	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ mealplan"))
	b.WriteString(subtitleStyle.Render(" · " + store.WeekRangeLabel(a.weekStart)))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading receipts..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings [][2]string
	}{
		{"Navigation", [][2]string{
			{"w s b h r", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Move in lists"},
			{"[ ]", "Previous / Next day"},
			{"t", "Back to today"},
		}},
		{"Actions", [][2]string{
			{"n", "Swap meal (Week)"},
			{"space", "Tick item (Shopping)"},
			{"u", "Hide ticked items"},
			{"a", "Add receipt (Budget)"},
			{"d", "Delete receipt, twice to confirm"},
			{"/ f c", "Search, type and cuisine filters (Recipes)"},
			{"R", "Reload receipts"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, kb := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", kb[0])),
				descStyle.Render(kb[1]))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	pill := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	st := a.budgetStatus()
	budgetStyle := lipgloss.NewStyle().Foreground(components.BudgetColor(st)).Background(t.Surface).Bold(true)

	info := pill.Render(" Week ") + accent.Render(store.WeekRangeLabel(a.weekStart)) +
		pill.Render(" │ Budget ") + accent.Render(cli.FormatCost(a.budget))
	if a.tracking() {
		info += pill.Render(" │ ") + budgetStyle.Render(budgetSummary(st))
	}
	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Background(t.Surface).Width(w).Render(info)

	warning := a.flash
	if warning == "" && !a.tracking() {
		warning = "Tracking unavailable"
	}
	statusBar := components.RenderStatusBar(w, a.hints(), "[?]help  [q]uit", warning)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabWeek:
		content = a.renderWeekTab(cw)
	case tabShopping:
		content = a.renderShoppingTab(cw, contentH)
	case tabBudget:
		content = a.renderBudgetTab(cw, contentH)
	case tabHousehold:
		content = a.renderHouseholdTab(cw)
	case tabRecipes:
		content = a.renderRecipesTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) hints() string {
	switch a.activeTab {
	case tabWeek:
		return "[ ] day  j/k meal  n swap  t today"
	case tabShopping:
		return "j/k move  space tick  u hide ticked"
	case tabBudget:
		return "a add receipt  d delete  R reload"
	case tabRecipes:
		return "/ search  f type  c cuisine  j/k move"
	}
	return "← → tabs"
}

func budgetSummary(st model.BudgetStatus) string {
	if st.Over {
		return cli.FormatCost(st.OverBy) + " over"
	}
	return cli.FormatCost(st.Spent) + " spent, " + cli.FormatCost(st.Remaining) + " left"
}

// trackingMessage turns a ledger error into a short user-facing reason.
func trackingMessage(err error) string {
	var verr *store.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	if errors.Is(err, store.ErrUnavailable) {
		return "tracking unavailable"
	}
	return err.Error()
}

// ─── Ledger commands ────────────────────────────────────────────

func (a App) loadLedgerCmd() tea.Cmd {
	l, weekStart, openErr := a.ledger, a.weekStart, a.ledgerErr
	return func() tea.Msg {
		if l == nil {
			if openErr == nil {
				openErr = store.ErrUnavailable
			}
			return ledgerLoadedMsg{err: openErr}
		}
		ctx, cancel := context.WithTimeout(context.Background(), ledgerTimeout)
		defer cancel()

		receipts, err := l.Receipts(ctx, weekStart)
		if err != nil {
			return ledgerLoadedMsg{err: err}
		}
		checked, err := l.Checked(ctx, weekStart)
		if err != nil {
			return ledgerLoadedMsg{err: err}
		}
		return ledgerLoadedMsg{receipts: receipts, checked: checked}
	}
}

func (a App) setCheckedCmd(item string, checked bool) tea.Cmd {
	l, weekStart := a.ledger, a.weekStart
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ledgerTimeout)
		defer cancel()
		return checkSavedMsg{item: item, checked: checked, err: l.SetChecked(ctx, weekStart, item, checked)}
	}
}

func (a App) createReceiptCmd(d model.ReceiptDraft) tea.Cmd {
	l := a.ledger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ledgerTimeout)
		defer cancel()
		r, err := l.CreateReceipt(ctx, d)
		return receiptSavedMsg{receipt: r, err: err}
	}
}

func (a App) deleteReceiptCmd(id string) tea.Cmd {
	l := a.ledger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ledgerTimeout)
		defer cancel()
		return receiptDeletedMsg{id: id, err: l.DeleteReceipt(ctx, id)}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with the background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line, lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}

// scrollWindow returns the first visible index so cursor stays inside a
// window of size visible.
func scrollWindow(cursor, offset, visible int) int {
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+visible {
		return cursor - visible + 1
	}
	return offset
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the widths used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		if i < len(components.Tabs)-1 {
			pos++ // separator
		}
	}
	return -1
}
