package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/mealplan/internal/cli"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/pipeline"
	"github.com/theirongolddev/mealplan/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagCheck       []string
	flagUncheck     []string
	flagHideChecked bool
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "The week's shopping list grouped by category",
	RunE:  runShopping,
}

func init() {
	shoppingCmd.Flags().StringArrayVar(&flagCheck, "check", nil, "Tick an item off (repeatable)")
	shoppingCmd.Flags().StringArrayVar(&flagUncheck, "uncheck", nil, "Untick an item (repeatable)")
	shoppingCmd.Flags().BoolVar(&flagHideChecked, "remaining", false, "Only show items not yet ticked")
	rootCmd.AddCommand(shoppingCmd)
}

func runShopping(_ *cobra.Command, _ []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	l, _ := e.openLedger(ctx)
	defer closeLedger(l)

	items := pipeline.AggregateShopping(e.cat.Week())

	if len(flagCheck)+len(flagUncheck) > 0 {
		if l == nil {
			return fmt.Errorf("cannot update the checklist: %w", store.ErrUnavailable)
		}
		for _, name := range flagCheck {
			item, err := findItem(items, name)
			if err != nil {
				return err
			}
			if err := l.SetChecked(ctx, e.weekStart, item, true); err != nil {
				return fmt.Errorf("ticking %s: %w", item, err)
			}
		}
		for _, name := range flagUncheck {
			item, err := findItem(items, name)
			if err != nil {
				return err
			}
			if err := l.SetChecked(ctx, e.weekStart, item, false); err != nil {
				return fmt.Errorf("unticking %s: %w", item, err)
			}
		}
	}

	_, checked, err := e.week(ctx, l)
	tracking := err == nil

	shown := items
	if flagHideChecked {
		shown = pipeline.FilterUnchecked(items, checked)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SHOPPING  " + store.WeekRangeLabel(e.weekStart)))
	fmt.Println()

	for _, g := range pipeline.GroupShopping(shown) {
		rows := make([][]string, len(g.Items))
		for i, it := range g.Items {
			box := "[ ]"
			if checked[it.Name] {
				box = "[x]"
			}
			rows[i] = []string{box, it.Name, it.QuantityText(), cli.FormatCost(it.Cost)}
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("%s  %s", g.Category, cli.FormatCost(g.Cost)),
			Headers: []string{"", "Item", "Quantity", "Cost"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	total := pipeline.ShoppingTotal(items)
	fmt.Printf("  Total        %s", cli.FormatCost(total))
	if total > e.budget {
		fmt.Printf("  (over the %s budget by %s)", cli.FormatCost(e.budget), cli.FormatCost(total-e.budget))
	}
	fmt.Println()
	if tracking {
		fmt.Printf("  Ticked       %s\n", cli.FormatCost(pipeline.CheckedTotal(items, checked)))
		done := len(items) - len(pipeline.FilterUnchecked(items, checked))
		fmt.Printf("  Progress     %s\n", cli.RenderProgressBar(done, len(items), 30))
	} else if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Ticks are not shown: tracking unavailable\n")
	}
	fmt.Println()
	return nil
}

// findItem resolves a typed item name against the list, ignoring case.
func findItem(items []model.ShoppingItem, name string) (string, error) {
	for _, it := range items {
		if strings.EqualFold(it.Name, strings.TrimSpace(name)) {
			return it.Name, nil
		}
	}
	return "", fmt.Errorf("%q is not on this week's shopping list", name)
}
