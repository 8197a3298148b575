// Package cmd implements the mealplan CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/mealplan/internal/cli"
	"github.com/theirongolddev/mealplan/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Budget]")
	fmt.Printf("    Weekly budget: %s\n", cli.FormatCost(cfg.WeeklyBudget()))
	fmt.Println()

	fmt.Println("  [Household]")
	if len(cfg.Household.Members) == 0 {
		fmt.Printf("    Members: built-in household (%d)\n", len(cfg.Members()))
	} else {
		fmt.Printf("    Members: %d configured\n", len(cfg.Household.Members))
	}
	fmt.Println()

	fmt.Println("  [Storage]")
	fmt.Printf("    Driver: %s\n", cfg.Storage.Driver)
	switch cfg.Storage.Driver {
	case "postgres":
		if cfg.Storage.DSN != "" {
			fmt.Println("    DSN:    configured")
		} else {
			fmt.Println("    DSN:    not configured")
		}
	case "memory":
		fmt.Println("    Receipts are kept for the life of the process only")
	default:
		fmt.Printf("    Path:   %s\n", cfg.LedgerPath())
	}
	fmt.Println()

	fmt.Println("  [Export]")
	fmt.Printf("    Driver: %s\n", cfg.Export.Driver)
	if cfg.Export.Driver == "s3" {
		fmt.Printf("    Bucket: %s\n", cfg.Export.Bucket)
		fmt.Printf("    Region: %s\n", cfg.Export.Region)
		if cfg.Export.Endpoint != "" {
			fmt.Printf("    Endpoint: %s\n", cfg.Export.Endpoint)
		}
	} else {
		fmt.Printf("    Dir:    %s\n", cfg.ExportDir())
	}
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address: %s\n", cfg.Server.Addr)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `mealplan setup` to reconfigure.")
	return nil
}
