package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/mealplan/internal/catalog"
	"github.com/theirongolddev/mealplan/internal/config"
	"github.com/theirongolddev/mealplan/internal/household"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/pipeline"
	"github.com/theirongolddev/mealplan/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagQuiet  bool
	flagBudget float64
	flagWeek   string
)

var rootCmd = &cobra.Command{
	Use:   "mealplan",
	Short: "Household meal planner and grocery budget tracker",
	Long:  "Plan the week's meals, build the shopping list and track grocery spend against a weekly budget.",
	RunE:  runToday,

	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().Float64Var(&flagBudget, "budget", -1, "Weekly budget override")
	rootCmd.PersistentFlags().StringVar(&flagWeek, "week", "", "Any date in the week to show (YYYY-MM-DD), default this week")
}

// env is the state shared by every command.
type env struct {
	cfg       config.Config
	cat       *catalog.Catalog
	budget    float64
	today     time.Time
	weekStart time.Time
}

// loadEnv reads the config and builds the catalog.
func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cat, err := catalog.New()
	if err != nil {
		return nil, err
	}

	e := &env{
		cfg:    cfg,
		cat:    cat,
		budget: cfg.WeeklyBudget(),
		today:  store.Today(),
	}
	if flagBudget >= 0 {
		e.budget = flagBudget
	}
	e.weekStart = store.WeekStartOf(e.today)
	if flagWeek != "" {
		d, err := store.ParseDate(flagWeek)
		if err != nil {
			return nil, fmt.Errorf("--week must be a date like 2026-10-12: %w", err)
		}
		e.weekStart = store.WeekStartOf(d)
	}
	return e, nil
}

// openLedger opens the configured ledger. A failure is reported once on
// stderr and returned so callers can carry on without tracking.
func (e *env) openLedger(ctx context.Context) (store.Ledger, error) {
	l, err := store.Open(ctx, store.Options{
		Driver: e.cfg.Storage.Driver,
		Path:   e.cfg.LedgerPath(),
		DSN:    e.cfg.Storage.DSN,
	})
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Tracking unavailable: %v\n", err)
		}
		return nil, err
	}
	return l, nil
}

// household builds the directory from the member store when it has
// members, else from the config.
func (e *env) household(ctx context.Context, l store.Ledger) (*household.Directory, error) {
	members := e.cfg.Members()
	if l != nil {
		stored, err := l.Members(ctx)
		switch {
		case err != nil:
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Member store unavailable, using configured household\n")
			}
		case len(stored) > 0:
			members = stored
		}
	}
	return household.New(members)
}

// receipts returns the selected week's receipts only. Views that do not
// show ticks use it so a checklist failure cannot hide the spend.
func (e *env) receipts(ctx context.Context, l store.Ledger) ([]model.Receipt, error) {
	if l == nil {
		return nil, store.ErrUnavailable
	}
	return l.Receipts(ctx, e.weekStart)
}

// week returns the ledger's receipts and ticked items for the selected week.
func (e *env) week(ctx context.Context, l store.Ledger) ([]model.Receipt, map[string]bool, error) {
	receipts, err := e.receipts(ctx, l)
	if err != nil {
		return nil, map[string]bool{}, err
	}
	checked, err := l.Checked(ctx, e.weekStart)
	if err != nil {
		return receipts, map[string]bool{}, err
	}
	return receipts, checked, nil
}

func (e *env) budgetStatus(receipts []model.Receipt) model.BudgetStatus {
	return pipeline.ComputeBudget(pipeline.SumReceipts(receipts), e.budget)
}

// commandContext bounds one-shot ledger work.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

func closeLedger(l store.Ledger) {
	if l != nil {
		_ = l.Close()
	}
}

// userMessage shortens ledger errors for display.
func userMessage(err error) string {
	var verr *store.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	if errors.Is(err, store.ErrUnavailable) {
		return "tracking unavailable"
	}
	return err.Error()
}
