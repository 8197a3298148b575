package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/mealplan/internal/config"
	"github.com/theirongolddev/mealplan/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.LoadFrom(config.ConfigPath())

	vals := tui.DefaultSetupValues(cfg.WeeklyBudget())
	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}
	if !vals.Confirm {
		fmt.Println("  Nothing saved.")
		return nil
	}

	if _, err := vals.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `mealplan setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
