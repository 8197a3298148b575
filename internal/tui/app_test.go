package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/mealplan/internal/catalog"
	"github.com/theirongolddev/mealplan/internal/config"
	"github.com/theirongolddev/mealplan/internal/household"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Wednesday.
var testToday = time.Date(2026, 10, 14, 0, 0, 0, 0, time.Local)

func newTestApp(t *testing.T, ledger store.Ledger, ledgerErr error) App {
	t.Helper()
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	hh, err := household.New(household.Seed())
	if err != nil {
		t.Fatalf("household.New: %v", err)
	}
	a := NewApp(Options{
		Catalog:   cat,
		Household: hh,
		Ledger:    ledger,
		LedgerErr: ledgerErr,
		Budget:    100,
		Today:     testToday,
	})
	a = update(t, a, tea.WindowSizeMsg{Width: 140, Height: 45})
	return update(t, a, a.loadLedgerCmd()())
}

func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	return m.(App)
}

// press sends a key and returns the model and command it produced.
func press(t *testing.T, a App, k string) (App, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	m, cmd := a.Update(msg)
	return m.(App), cmd
}

func TestNewAppStartsOnToday(t *testing.T) {
	a := newTestApp(t, store.NewMemory(), nil)
	if model.Days[a.weekState.day] != model.Wed {
		t.Fatalf("day = %s, want wed", model.Days[a.weekState.day])
	}
	if !a.loaded || !a.tracking() {
		t.Fatalf("loaded=%v tracking=%v, want both true", a.loaded, a.tracking())
	}
	if got := a.weekStart.Format("2006-01-02"); got != "2026-10-12" {
		t.Fatalf("weekStart = %s, want 2026-10-12", got)
	}
}

func TestTabSwitching(t *testing.T) {
	a := newTestApp(t, store.NewMemory(), nil)

	steps := []struct {
		key  string
		want int
	}{
		{"s", tabShopping},
		{"right", tabBudget},
		{"h", tabHousehold},
		{"r", tabRecipes},
		{"right", tabWeek},
		{"left", tabRecipes},
		{"w", tabWeek},
	}
	for _, s := range steps {
		a, _ = press(t, a, s.key)
		if a.activeTab != s.want {
			t.Fatalf("after %q: tab = %d, want %d", s.key, a.activeTab, s.want)
		}
	}
}

func TestMouseClickSelectsTab(t *testing.T) {
	a := newTestApp(t, store.NewMemory(), nil)
	x := len("Week") + 2 + 1 + 2 // inside "Shopping"
	a = update(t, a, tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if a.activeTab != tabShopping {
		t.Fatalf("tab = %d, want shopping", a.activeTab)
	}
}

func TestSwapAndResetDay(t *testing.T) {
	a := newTestApp(t, store.NewMemory(), nil)
	orig := a.dayPlan().Breakfast

	a, _ = press(t, a, "n")
	swapped := a.dayPlan().Breakfast
	if swapped.ID == orig.ID {
		t.Fatalf("breakfast not swapped, still %s", orig.ID)
	}
	if swapped.Type != model.Breakfast {
		t.Fatalf("swapped in a %s", swapped.Type)
	}
	if !strings.Contains(a.flash, swapped.Name) {
		t.Fatalf("flash = %q", a.flash)
	}
	if day, _ := a.cat.Day(model.Wed); day.Breakfast.ID != orig.ID {
		t.Fatal("swap leaked into the catalog")
	}

	a, _ = press(t, a, "u")
	if got := a.dayPlan().Breakfast.ID; got != orig.ID {
		t.Fatalf("after reset breakfast = %s, want %s", got, orig.ID)
	}
}

func TestDayNavigation(t *testing.T) {
	a := newTestApp(t, store.NewMemory(), nil)
	a, _ = press(t, a, "]")
	a, _ = press(t, a, "]")
	a, _ = press(t, a, "]")
	if got := model.Days[a.weekState.day]; got != model.Sat {
		t.Fatalf("day = %s, want sat", got)
	}
	a, _ = press(t, a, "]")
	if got := model.Days[a.weekState.day]; got != model.Mon {
		t.Fatalf("day = %s, want mon after wrapping", got)
	}
	a, _ = press(t, a, "t")
	if got := model.Days[a.weekState.day]; got != model.Wed {
		t.Fatalf("day = %s, want wed", got)
	}
}

func TestShoppingTickPersists(t *testing.T) {
	ledger := store.NewMemory()
	a := newTestApp(t, ledger, nil)
	a, _ = press(t, a, "s")

	first := a.visibleItems()[0].Name
	a, cmd := press(t, a, " ")
	if cmd == nil {
		t.Fatal("tick should return a save command")
	}
	a = update(t, a, cmd())
	if !a.checked[first] {
		t.Fatalf("%s not ticked", first)
	}

	checked, err := ledger.Checked(context.Background(), a.weekStart)
	if err != nil {
		t.Fatal(err)
	}
	if !checked[first] {
		t.Fatalf("ledger checked = %v, want %s", checked, first)
	}

	a, _ = press(t, a, "u")
	for _, it := range a.visibleItems() {
		if it.Name == first {
			t.Fatalf("%s still visible with ticked items hidden", first)
		}
	}
}

func TestTrackingUnavailable(t *testing.T) {
	a := newTestApp(t, nil, store.ErrUnavailable)
	if a.tracking() {
		t.Fatal("tracking should be off without a ledger")
	}

	a, _ = press(t, a, "s")
	a, cmd := press(t, a, " ")
	if cmd != nil {
		t.Fatal("tick without a ledger should not issue a command")
	}
	if !strings.Contains(a.flash, "Tracking unavailable") {
		t.Fatalf("flash = %q", a.flash)
	}

	a.flash = ""
	if v := a.View(); !strings.Contains(v, "Tracking unavailable") {
		t.Fatal("status bar should warn that tracking is unavailable")
	}

	a, _ = press(t, a, "b")
	if _, cmd := press(t, a, "a"); cmd != nil {
		t.Fatal("add receipt without a ledger should not open the form")
	}
}

func TestReceiptDeleteNeedsConfirmation(t *testing.T) {
	ledger := store.NewMemory()
	ctx := context.Background()
	if _, err := ledger.CreateReceipt(ctx, model.ReceiptDraft{
		StoreType: model.StoreMarket, Amount: 18.40, PurchasedAt: testToday,
	}); err != nil {
		t.Fatal(err)
	}

	a := newTestApp(t, ledger, nil)
	if len(a.receipts) != 1 {
		t.Fatalf("receipts = %d, want 1", len(a.receipts))
	}
	a, _ = press(t, a, "b")

	a, cmd := press(t, a, "d")
	if cmd != nil || a.budgetState.pendingDelete == "" {
		t.Fatal("first d should only ask for confirmation")
	}
	a, cmd = press(t, a, "d")
	if cmd == nil {
		t.Fatal("second d should delete")
	}

	m, reload := a.Update(cmd())
	a = m.(App)
	if reload == nil {
		t.Fatal("delete should reload the ledger")
	}
	a = update(t, a, reload())
	if len(a.receipts) != 0 {
		t.Fatalf("receipts after delete = %d, want 0", len(a.receipts))
	}
}

func TestReceiptConfirmationResetsOnOtherKeys(t *testing.T) {
	ledger := store.NewMemory()
	if _, err := ledger.CreateReceipt(context.Background(), model.ReceiptDraft{
		StoreType: model.StoreBakery, Amount: 6, PurchasedAt: testToday,
	}); err != nil {
		t.Fatal(err)
	}
	a := newTestApp(t, ledger, nil)
	a, _ = press(t, a, "b")
	a, _ = press(t, a, "d")
	a, _ = press(t, a, "j")
	if a.budgetState.pendingDelete != "" {
		t.Fatal("moving should cancel a pending delete")
	}
}

func TestReceiptValuesDraft(t *testing.T) {
	tests := []struct {
		name      string
		vals      ReceiptValues
		wantDate  string
		wantField string
	}{
		{"today", ReceiptValues{StoreType: "ntuc", Amount: "$12.30", When: WhenToday}, "2026-10-14", ""},
		{"yesterday", ReceiptValues{StoreType: "bakery", Amount: "4", When: WhenYesterday}, "2026-10-13", ""},
		{"other day", ReceiptValues{StoreType: "market", Amount: "9.99", When: WhenOther, Date: "2026-10-12"}, "2026-10-12", ""},
		{"bad date", ReceiptValues{StoreType: "market", Amount: "9.99", When: WhenOther, Date: "12/10"}, "", "purchased_at"},
		{"bad amount", ReceiptValues{StoreType: "ntuc", Amount: "abc", When: WhenToday}, "", "amount"},
		{"zero amount", ReceiptValues{StoreType: "ntuc", Amount: "0", When: WhenToday}, "", "amount"},
		{"no store", ReceiptValues{Amount: "5", When: WhenToday}, "", "store_type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.vals.Draft(testToday)
			if tt.wantField != "" {
				var verr *store.ValidationError
				if !errors.As(err, &verr) || verr.Field != tt.wantField {
					t.Fatalf("err = %v, want validation error on %s", err, tt.wantField)
				}
				return
			}
			if err != nil {
				t.Fatalf("Draft: %v", err)
			}
			if got := d.PurchasedAt.Format("2006-01-02"); got != tt.wantDate {
				t.Fatalf("date = %s, want %s", got, tt.wantDate)
			}
		})
	}
}

func TestSetupValuesApply(t *testing.T) {
	cfg, err := SetupValues{Budget: "$200", Theme: "terminal", Storage: "memory"}.Apply(config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Budget.Weekly != 200 || cfg.Appearance.Theme != "terminal" || cfg.Storage.Driver != "memory" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if _, err := (SetupValues{Budget: "lots"}).Apply(config.DefaultConfig()); err == nil {
		t.Fatal("expected an error for a non-numeric budget")
	}
}

func TestViewFillsTerminal(t *testing.T) {
	ledger := store.NewMemory()
	if _, err := ledger.CreateReceipt(context.Background(), model.ReceiptDraft{
		StoreType: model.StoreNTUC, Amount: 42.5, PurchasedAt: testToday,
	}); err != nil {
		t.Fatal(err)
	}
	a := newTestApp(t, ledger, nil)

	for tab := range 5 {
		a.activeTab = tab
		if got := lipgloss.Height(a.View()); got != 45 {
			t.Errorf("tab %d: view height = %d, want 45", tab, got)
		}
	}

	a.showHelp = true
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Error("help overlay missing")
	}

	a.showHelp = false
	a = update(t, a, tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(a.View(), "too narrow") {
		t.Error("narrow terminal should show a warning")
	}
}
