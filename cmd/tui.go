package cmd

import (
	"fmt"

	"github.com/theirongolddev/mealplan/internal/config"
	"github.com/theirongolddev/mealplan/internal/tui"
	"github.com/theirongolddev/mealplan/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	theme.SetActive(e.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	ctx, cancel := commandContext()
	l, ledgerErr := e.openLedger(ctx)
	defer closeLedger(l)

	hh, err := e.household(ctx, l)
	cancel()
	if err != nil {
		return err
	}

	app := tui.NewApp(tui.Options{
		Catalog:   e.cat,
		Household: hh,
		Ledger:    l,
		LedgerErr: ledgerErr,
		Budget:    e.budget,
		Today:     e.today,
		FirstRun:  !config.Exists(),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
