package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/mealplan/internal/config"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/store"
	"github.com/theirongolddev/mealplan/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// Purchase date choices in the receipt form.
const (
	WhenToday     = "today"
	WhenYesterday = "yesterday"
	WhenOther     = "other"
)

// ReceiptValues are the raw fields of the receipt form.
type ReceiptValues struct {
	StoreType string
	StoreName string
	Amount    string
	When      string
	Date      string
	Notes     string
}

// Draft converts the form values into a receipt draft dated relative to today.
func (v ReceiptValues) Draft(today time.Time) (model.ReceiptDraft, error) {
	amount, err := store.ParseAmount(v.Amount)
	if err != nil {
		return model.ReceiptDraft{}, err
	}

	purchased := store.DateOf(today)
	switch v.When {
	case WhenYesterday:
		purchased = purchased.AddDate(0, 0, -1)
	case WhenOther:
		d, err := store.ParseDate(strings.TrimSpace(v.Date))
		if err != nil {
			return model.ReceiptDraft{}, &store.ValidationError{Field: "purchased_at", Message: "date must look like 2026-10-12"}
		}
		purchased = d
	}

	d := model.ReceiptDraft{
		StoreType:   model.StoreType(v.StoreType),
		StoreName:   strings.TrimSpace(v.StoreName),
		Amount:      amount,
		PurchasedAt: purchased,
		Notes:       strings.TrimSpace(v.Notes),
	}
	return d, store.ValidateDraft(d)
}

// NewReceiptForm builds the add-receipt form bound to vals.
func NewReceiptForm(vals *ReceiptValues) *huh.Form {
	if vals.StoreType == "" {
		vals.StoreType = string(model.StoreNTUC)
	}
	if vals.When == "" {
		vals.When = WhenToday
	}

	storeOpts := make([]huh.Option[string], len(model.StoreTypes))
	for i, s := range model.StoreTypes {
		storeOpts[i] = huh.NewOption(s.Label(), string(s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where did you shop?").
				Options(storeOpts...).
				Value(&vals.StoreType),
			huh.NewInput().
				Title("Store name").
				Description("Optional, e.g. FairPrice Finest Bukit Timah").
				CharLimit(80).
				Value(&vals.StoreName),
			huh.NewInput().
				Title("Amount").
				Placeholder("42.50").
				Validate(func(s string) error {
					_, err := store.ParseAmount(s)
					return err
				}).
				Value(&vals.Amount),
			huh.NewSelect[string]().
				Title("Purchased").
				Options(
					huh.NewOption("Today", WhenToday),
					huh.NewOption("Yesterday", WhenYesterday),
					huh.NewOption("Another day", WhenOther),
				).
				Value(&vals.When),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Purchase date").
				Placeholder("2026-10-12").
				Validate(func(s string) error {
					if _, err := store.ParseDate(strings.TrimSpace(s)); err != nil {
						return errors.New("use YYYY-MM-DD")
					}
					return nil
				}).
				Value(&vals.Date),
		).WithHideFunc(func() bool { return vals.When != WhenOther }),
		huh.NewGroup(
			huh.NewText().
				Title("Notes").
				CharLimit(280).
				Lines(3).
				Value(&vals.Notes),
		),
	).WithShowHelp(true)
}

// SetupValues are the fields of the first-run setup form.
type SetupValues struct {
	Budget  string
	Theme   string
	Storage string
	Confirm bool
}

// DefaultSetupValues seeds the setup form from the current budget and config.
func DefaultSetupValues(budget float64) SetupValues {
	cfg, _ := config.LoadFrom(config.ConfigPath())
	return SetupValues{
		Budget:  fmt.Sprintf("%.2f", budget),
		Theme:   cfg.Appearance.Theme,
		Storage: cfg.Storage.Driver,
		Confirm: true,
	}
}

// NewSetupForm builds the setup form bound to vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, th := range theme.All {
		themeOpts[i] = huh.NewOption(th.Name, th.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to mealplan").
				Description("Plan the week, build the shopping list and track grocery spend.\nThese settings can be changed later with `mealplan setup`."),
			huh.NewInput().
				Title("Weekly grocery budget").
				Placeholder("150").
				Validate(func(s string) error {
					_, err := store.ParseAmount(s)
					return err
				}).
				Value(&vals.Budget),
			huh.NewSelect[string]().
				Title("Receipt storage").
				Options(
					huh.NewOption("SQLite file in the data directory", "sqlite"),
					huh.NewOption("PostgreSQL (set storage.dsn)", "postgres"),
					huh.NewOption("In memory, nothing is saved", "memory"),
				).
				Value(&vals.Storage),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewConfirm().
				Title("Save settings?").
				Value(&vals.Confirm),
		),
	)
}

// Apply copies the form values onto cfg.
func (v SetupValues) Apply(cfg config.Config) (config.Config, error) {
	budget, err := store.ParseAmount(v.Budget)
	if err != nil {
		return cfg, err
	}
	cfg.Budget.Weekly = budget
	if v.Storage != "" {
		cfg.Storage.Driver = v.Storage
	}
	if v.Theme != "" {
		cfg.Appearance.Theme = v.Theme
	}
	return cfg, nil
}

// Save writes the setup values to the config file and activates the
// chosen theme. It returns the saved weekly budget.
func (v SetupValues) Save() (float64, error) {
	cfg, err := config.LoadFrom(config.ConfigPath())
	if err != nil {
		return 0, err
	}
	if !v.Confirm {
		return cfg.WeeklyBudget(), nil
	}
	cfg, err = v.Apply(cfg)
	if err != nil {
		return 0, err
	}
	if err := config.Save(cfg); err != nil {
		return 0, err
	}
	theme.SetActive(cfg.Appearance.Theme)
	return cfg.WeeklyBudget(), nil
}
