package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/theirongolddev/mealplan/internal/cli"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/pipeline"
	"github.com/theirongolddev/mealplan/internal/store"
	"github.com/theirongolddev/mealplan/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagReceiptStore  string
	flagReceiptName   string
	flagReceiptAmount string
	flagReceiptDate   string
	flagReceiptNotes  string
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Spend against the weekly budget",
	RunE:  runBudget,
}

var receiptsCmd = &cobra.Command{
	Use:   "receipts",
	Short: "List, add and remove grocery receipts",
	RunE:  runReceiptsList,
}

var receiptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the week's receipts by purchase date",
	RunE:  runReceiptsList,
}

var receiptsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a receipt (prompts for anything not given as a flag)",
	RunE:  runReceiptsAdd,
}

var receiptsRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a receipt",
	Args:    cobra.ExactArgs(1),
	RunE:    runReceiptsRm,
}

func init() {
	receiptsAddCmd.Flags().StringVar(&flagReceiptStore, "store", "", "Store type: ntuc, bakery, market or other")
	receiptsAddCmd.Flags().StringVar(&flagReceiptName, "name", "", "Store name")
	receiptsAddCmd.Flags().StringVar(&flagReceiptAmount, "amount", "", "Amount spent, e.g. 42.50")
	receiptsAddCmd.Flags().StringVar(&flagReceiptDate, "date", "", "Purchase date (YYYY-MM-DD), default today")
	receiptsAddCmd.Flags().StringVar(&flagReceiptNotes, "notes", "", "Notes")

	receiptsCmd.AddCommand(receiptsListCmd, receiptsAddCmd, receiptsRmCmd)
	rootCmd.AddCommand(budgetCmd, receiptsCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	l, err := e.openLedger(ctx)
	if err != nil {
		return fmt.Errorf("budget: %s", userMessage(err))
	}
	defer closeLedger(l)

	receipts, err := e.receipts(ctx, l)
	if err != nil {
		return fmt.Errorf("loading receipts: %w", err)
	}
	st := e.budgetStatus(receipts)
	planned := pipeline.ShoppingTotal(pipeline.AggregateShopping(e.cat.Week()))

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET  " + store.WeekRangeLabel(e.weekStart)))
	fmt.Println()

	remainingLabel, remaining := "Remaining", cli.FormatCost(st.Remaining)
	if st.Over {
		remainingLabel, remaining = "Over by", cli.FormatCost(st.OverBy)
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Weekly budget", cli.FormatCost(st.Budget)},
			{"Spent", cli.FormatCost(st.Spent)},
			{remainingLabel, remaining},
			{"Used", cli.FormatPercent(st.PercentUsed)},
			{"---"},
			{"Receipts", strconv.Itoa(len(receipts))},
			{"Planned list", cli.FormatCost(planned)},
		},
	}))
	fmt.Println()
	fmt.Printf("  %s\n\n", cli.RenderBudgetBar(st, 40))

	spend := pipeline.SpendByStore(receipts)
	if len(spend) > 0 {
		peak := 0.0
		for _, s := range spend {
			peak = max(peak, s.Amount)
		}
		fmt.Println("  By store")
		for _, s := range spend {
			fmt.Printf("  %s\n", cli.RenderHorizontalBar(s.Store.Label(), s.Amount, peak, 30))
		}
		fmt.Println()
	}
	return nil
}

func runReceiptsList(_ *cobra.Command, _ []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	l, err := e.openLedger(ctx)
	if err != nil {
		return fmt.Errorf("receipts: %s", userMessage(err))
	}
	defer closeLedger(l)

	receipts, err := e.receipts(ctx, l)
	if err != nil {
		return fmt.Errorf("loading receipts: %w", err)
	}

	fmt.Println()
	if len(receipts) == 0 {
		fmt.Printf("  No receipts for %s.\n", store.WeekRangeLabel(e.weekStart))
		fmt.Println("  Add one with: mealplan receipts add")
		return nil
	}

	var rows [][]string
	for i, day := range pipeline.GroupReceiptsByDay(receipts) {
		if i > 0 {
			rows = append(rows, []string{"---"})
		}
		for j, r := range day.Receipts {
			label := ""
			if j == 0 {
				label = cli.FormatDateLabel(day.Date, e.today)
			}
			rows = append(rows, []string{label, r.ID, r.DisplayName(), r.StoreType.Label(), cli.FormatCost(r.Amount), r.Notes})
		}
		rows = append(rows, []string{"", "", "", "Day total", cli.FormatCost(day.Total), ""})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Receipts  " + store.WeekRangeLabel(e.weekStart),
		Headers: []string{"Date", "ID", "Store", "Type", "Amount", "Notes"},
		Rows:    rows,
	}))
	fmt.Printf("\n  %s\n\n", cli.RenderBudgetLine(e.budgetStatus(receipts)))
	return nil
}

func runReceiptsAdd(_ *cobra.Command, _ []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	vals := tui.ReceiptValues{
		StoreType: flagReceiptStore,
		StoreName: flagReceiptName,
		Amount:    flagReceiptAmount,
		Notes:     flagReceiptNotes,
		When:      tui.WhenToday,
	}
	if flagReceiptDate != "" {
		vals.When, vals.Date = tui.WhenOther, flagReceiptDate
	}

	if flagReceiptAmount == "" {
		if err := tui.NewReceiptForm(&vals).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("  Cancelled.")
				return nil
			}
			return fmt.Errorf("receipt form: %w", err)
		}
	} else if vals.StoreType == "" {
		vals.StoreType = string(model.StoreOther)
	}

	draft, err := vals.Draft(e.today)
	if err != nil {
		return errors.New(userMessage(err))
	}

	ctx, cancel := commandContext()
	defer cancel()
	l, err := e.openLedger(ctx)
	if err != nil {
		return fmt.Errorf("saving receipt: %s", userMessage(err))
	}
	defer closeLedger(l)

	r, err := l.CreateReceipt(ctx, draft)
	if err != nil {
		return fmt.Errorf("saving receipt: %s", userMessage(err))
	}

	e.weekStart = r.WeekStart
	receipts, err := e.receipts(ctx, l)
	if err != nil {
		return fmt.Errorf("loading receipts: %w", err)
	}

	fmt.Printf("  Saved %s at %s on %s (id %s)\n",
		cli.FormatCost(r.Amount), r.DisplayName(), r.PurchasedAt.Format("Mon 2 Jan"), r.ID)
	fmt.Printf("  %s\n", cli.RenderBudgetLine(e.budgetStatus(receipts)))
	return nil
}

func runReceiptsRm(_ *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()

	l, err := e.openLedger(ctx)
	if err != nil {
		return fmt.Errorf("deleting receipt: %s", userMessage(err))
	}
	defer closeLedger(l)

	if err := l.DeleteReceipt(ctx, args[0]); err != nil {
		return fmt.Errorf("deleting receipt: %w", err)
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Deleted receipt %s\n", args[0])
	}
	return nil
}
