package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/mealplan/internal/blob"
	"github.com/theirongolddev/mealplan/internal/report"
	"github.com/theirongolddev/mealplan/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagExportDriver string
	flagExportDir    string
	flagExportStdout bool
	flagExportPlan   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the weekly report (JSON) and shopping list (CSV)",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportDriver, "driver", "", "Export target: fs or s3 (default from config)")
	exportCmd.Flags().StringVar(&flagExportDir, "dir", "", "Directory for the fs target")
	exportCmd.Flags().BoolVar(&flagExportStdout, "stdout", false, "Print the JSON report instead of writing files")
	exportCmd.Flags().BoolVar(&flagExportPlan, "plan-only", false, "Export the plan and shopping list when receipts cannot be read")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	l, _ := e.openLedger(ctx)
	defer closeLedger(l)

	hh, err := e.household(ctx, l)
	if err != nil {
		return err
	}
	receipts, checked, err := e.week(ctx, l)
	tracking := err == nil
	if !tracking {
		if !flagExportPlan {
			return fmt.Errorf("reading the ledger: %s (use --plan-only to export without receipts)", userMessage(err))
		}
		fmt.Fprintf(os.Stderr, "  Tracking unavailable: exporting the plan without receipts or ticks\n")
	}

	r := report.Build(report.Input{
		Week:      e.cat.Week(),
		Household: hh,
		Receipts:  receipts,
		Checked:   checked,
		Budget:    e.budget,
		Tracking:  tracking,
		WeekStart: e.weekStart,
		WeekLabel: store.WeekRangeLabel(e.weekStart),
		Generated: time.Now(),
	})

	if flagExportStdout {
		data, err := report.JSON(r)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	opts := blob.Options{
		Driver:    e.cfg.Export.Driver,
		Dir:       e.cfg.ExportDir(),
		Bucket:    e.cfg.Export.Bucket,
		Region:    e.cfg.Export.Region,
		Endpoint:  e.cfg.Export.Endpoint,
		Prefix:    e.cfg.Export.Prefix,
		PathStyle: e.cfg.Export.PathStyle,
	}
	if flagExportDriver != "" {
		opts.Driver = flagExportDriver
	}
	if flagExportDir != "" {
		opts.Dir = flagExportDir
	}

	target, err := blob.Open(ctx, opts)
	if err != nil {
		return fmt.Errorf("opening export target: %w", err)
	}
	written, err := report.Export(ctx, target, r)
	if err != nil {
		return err
	}

	fmt.Printf("  Exported %s\n", r.WeekLabel)
	for _, info := range written {
		fmt.Printf("    %s (%d bytes)\n", info.Location, info.Size)
	}
	return nil
}
