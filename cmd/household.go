package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/theirongolddev/mealplan/internal/cli"
	"github.com/theirongolddev/mealplan/internal/nutrition"

	"github.com/spf13/cobra"
)

var householdCmd = &cobra.Command{
	Use:   "household",
	Short: "Household members and their daily nutrition targets",
	RunE:  runHousehold,
}

var householdSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Copy the configured household into the member store",
	RunE:  runHouseholdSeed,
}

var householdRmCmd = &cobra.Command{
	Use:   "rm <member-id>",
	Short: "Remove a member from the member store",
	Args:  cobra.ExactArgs(1),
	RunE:  runHouseholdRm,
}

func init() {
	householdCmd.AddCommand(householdSeedCmd, householdRmCmd)
	rootCmd.AddCommand(householdCmd)
}

func runHousehold(_ *cobra.Command, _ []string) error {
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

	var rows [][]string
	for _, m := range hh.Members() {
		name := m.Name
		if m.Primary {
			name += " *"
		}
		activity := "child"
		if m.Age >= 18 {
			activity = nutrition.ActivityLabel(m.Activity)
		}
		tg := m.Targets
		rows = append(rows, []string{
			m.ID, name, strconv.Itoa(m.Age), string(m.Gender), activity,
			cli.FormatKcal(tg.Calories),
			fmt.Sprintf("%dg", tg.Protein), fmt.Sprintf("%dg", tg.Carbs), fmt.Sprintf("%dg", tg.Fat), fmt.Sprintf("%dg", tg.Fibre),
			fmt.Sprintf("%dmg", tg.Calcium), fmt.Sprintf("%dmg", tg.Iron), fmt.Sprintf("%dmg", tg.VitaminC),
		})
	}
	totals := hh.Totals()
	rows = append(rows, []string{"---"}, []string{
		"", fmt.Sprintf("%d members", totals.Members), "", "", "",
		cli.FormatKcal(totals.Calories),
		fmt.Sprintf("%dg", totals.Protein), fmt.Sprintf("%dg", totals.Carbs), fmt.Sprintf("%dg", totals.Fat), fmt.Sprintf("%dg", totals.Fibre),
		"", "", "",
	})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Household",
		Headers: []string{"ID", "Name", "Age", "Sex", "Activity", "Calories", "Protein", "Carbs", "Fat", "Fibre", "Calcium", "Iron", "Vit C"},
		Rows:    rows,
	}))
	p, c, f := nutrition.MacroSplit(totals.Protein, totals.Carbs, totals.Fat)
	fmt.Printf("\n  Energy split: protein %d%%, carbs %d%%, fat %d%%\n", p, c, f)
	if _, ok := hh.Primary(); ok {
		fmt.Println("  * primary member, used for meal coverage")
	}
	fmt.Println()
	return nil
}

func runHouseholdSeed(_ *cobra.Command, _ []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	l, err := e.openLedger(ctx)
	if err != nil {
		return fmt.Errorf("member store: %s", userMessage(err))
	}
	defer closeLedger(l)

	members := e.cfg.Members()
	for _, m := range members {
		if _, err := l.UpsertMember(ctx, m); err != nil {
			return fmt.Errorf("saving %s: %s", m.Name, userMessage(err))
		}
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Saved %d members to the member store\n", len(members))
	}
	return nil
}

func runHouseholdRm(_ *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	l, err := e.openLedger(ctx)
	if err != nil {
		return fmt.Errorf("member store: %s", userMessage(err))
	}
	defer closeLedger(l)

	if err := l.DeleteMember(ctx, args[0]); err != nil {
		return fmt.Errorf("removing member: %w", err)
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Removed member %s\n", args[0])
	}
	return nil
}
