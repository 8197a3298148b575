package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/mealplan/internal/cli"
	"github.com/theirongolddev/mealplan/internal/household"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/nutrition"
	"github.com/theirongolddev/mealplan/internal/pipeline"
	"github.com/theirongolddev/mealplan/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagMealType string
	flagCuisine  string
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Today's meals and this week's budget",
	RunE:  runToday,
}

var weekCmd = &cobra.Command{
	Use:   "week [day]",
	Short: "The week's meal plan, or one day in detail",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWeek,
}

var mealsCmd = &cobra.Command{
	Use:   "meals",
	Short: "Browse composed meals",
	RunE:  runMeals,
}

var recipeCmd = &cobra.Command{
	Use:   "recipe <meal-id>",
	Short: "Components, ingredients and method for one meal",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipe,
}

func init() {
	mealsCmd.Flags().StringVarP(&flagMealType, "type", "t", "all", "Meal type: all, breakfast, lunch or dinner")
	mealsCmd.Flags().StringVarP(&flagCuisine, "cuisine", "c", "", "Cuisine filter, e.g. Malay")

	rootCmd.AddCommand(todayCmd, weekCmd, mealsCmd, recipeCmd)
}

func runToday(_ *cobra.Command, _ []string) error {
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

	day := pipeline.DayFor(e.today)
	plan, _ := e.cat.Day(day)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MEALPLAN  %s, %s", day.Label(), e.today.Format("2 Jan"))))
	fmt.Println()
	fmt.Print(cli.RenderTable(dayTable(plan, hh)))

	receipts, err := e.receipts(ctx, l)
	fmt.Println()
	if err != nil {
		fmt.Printf("  Budget: %s (tracking unavailable)\n", cli.FormatCost(e.budget))
		return nil
	}
	st := e.budgetStatus(receipts)
	fmt.Printf("  %s  %s\n", store.WeekRangeLabel(e.weekStart), cli.RenderBudgetLine(st))
	fmt.Printf("  %s\n", cli.RenderBudgetBar(st, 40))
	fmt.Println()
	return nil
}

// dayTable lists a day's meals with cost, energy and coverage.
func dayTable(plan model.DayPlan, hh *household.Directory) cli.Table {
	headers := []string{"Meal", "Name", "Cuisine", "Time", "Calories", "Cost"}
	_, hasPrimary := hh.Primary()
	if hasPrimary {
		headers = append(headers, "Coverage")
	}

	var rows [][]string
	for i, m := range plan.Meals() {
		label := mealLabel(m.Type)
		if i == 3 && plan.ExtraLunch != nil {
			label = "Lunch (" + plan.ExtraLunch.For + ")"
		}
		row := []string{label, m.Name, string(m.Cuisine), cli.FormatMinutes(m.TotalMins()),
			cli.FormatKcal(m.Totals.Calories), cli.FormatCost(m.TotalCost)}
		if hasPrimary {
			pct, _ := hh.Coverage(m)
			row = append(row, fmt.Sprintf("%d%%", pct))
		}
		rows = append(rows, row)
	}
	rows = append(rows, []string{"---"})
	total := []string{"Total", "", "", "", "", cli.FormatCost(pipeline.DayCost(plan))}
	if hasPrimary {
		total = append(total, "")
	}
	rows = append(rows, total)

	return cli.Table{Title: plan.Day.Label(), Headers: headers, Rows: rows}
}

func mealLabel(t model.MealType) string {
	s := string(t)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func runWeek(_ *cobra.Command, args []string) error {
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

	if len(args) == 1 {
		day := model.DayKey(strings.ToLower(args[0]))
		if len(day) > 3 {
			day = day[:3]
		}
		plan, ok := e.cat.Day(day)
		if !ok {
			return fmt.Errorf("unknown day %q (use mon..sat)", args[0])
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(dayTable(plan, hh)))
		fmt.Println()
		for _, m := range plan.Meals() {
			printMeal(m)
		}
		return nil
	}

	week := e.cat.Week()
	fmt.Println()
	fmt.Println(cli.RenderTitle("WEEK PLAN  " + store.WeekRangeLabel(e.weekStart)))
	fmt.Println()

	rows := make([][]string, 0, len(model.Days))
	costs := make([]float64, 0, len(model.Days))
	for _, d := range model.Days {
		p := week[d]
		lunch := p.Lunch.Name
		if p.ExtraLunch != nil {
			lunch += " / " + p.ExtraLunch.For + ": " + p.ExtraLunch.Meal.Name
		}
		cost := pipeline.DayCost(p)
		costs = append(costs, cost)
		rows = append(rows, []string{d.Short(), p.Breakfast.Name, lunch, p.Dinner.Name, cli.FormatCost(cost)})
	}
	rows = append(rows, []string{"---"}, []string{"Week", "", "", "", cli.FormatCost(pipeline.WeekCost(week))})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Day", "Breakfast", "Lunch", "Dinner", "Cost"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Daily cost  %s\n\n", cli.RenderSparkline(costs))
	return nil
}

func runMeals(_ *cobra.Command, _ []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	meals := pipeline.UniqueMeals(e.cat.Meals())
	switch strings.ToLower(flagMealType) {
	case "", "all":
	case string(model.Breakfast), string(model.Lunch), string(model.Dinner):
		meals = pipeline.FilterByMealType(meals, model.MealType(strings.ToLower(flagMealType)))
	default:
		return fmt.Errorf("unknown meal type %q (use all, breakfast, lunch or dinner)", flagMealType)
	}
	if flagCuisine != "" {
		meals = pipeline.FilterByCuisine(meals, matchCuisine(e.cat.Meals(), flagCuisine))
	}

	if len(meals) == 0 {
		fmt.Println("\n  No meals match these filters.")
		return nil
	}

	rows := make([][]string, len(meals))
	for i, m := range meals {
		rows[i] = []string{m.ID, mealLabel(m.Type), m.Name, string(m.Cuisine),
			cli.FormatKcal(m.Totals.Calories), cli.FormatCost(m.TotalCost)}
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Meals (%d)", len(meals)),
		Headers: []string{"ID", "Type", "Name", "Cuisine", "Calories", "Cost"},
		Rows:    rows,
	}))
	fmt.Println("\n  Show one with: mealplan recipe <id>")
	return nil
}

// matchCuisine resolves a cuisine case-insensitively; an unknown name is
// kept as typed so the filter matches nothing.
func matchCuisine(meals []model.ComposedMeal, name string) model.Cuisine {
	for _, c := range pipeline.Cuisines(meals) {
		if strings.EqualFold(string(c), name) {
			return c
		}
	}
	return model.Cuisine(name)
}

func runRecipe(_ *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	m, ok := e.cat.Meal(args[0])
	if !ok {
		return fmt.Errorf("no meal with id %q (list them with `mealplan meals`)", args[0])
	}
	fmt.Println()
	printMeal(m)
	return nil
}

func printMeal(m model.ComposedMeal) {
	n := m.Totals
	p, c, f := nutrition.MacroSplit(n.Protein, n.Carbs, n.Fat)

	fmt.Printf("  %s  (%s, %s)\n", m.Name, mealLabel(m.Type), m.Cuisine)
	fmt.Printf("  %s · P %dg %d%% · C %dg %d%% · F %dg %d%% · fibre %dg · %s · %s\n\n",
		cli.FormatKcal(n.Calories), n.Protein, p, n.Carbs, c, n.Fat, f, n.Fibre,
		cli.FormatMinutes(m.TotalMins()), cli.FormatCost(m.TotalCost))

	for _, comp := range m.Components() {
		fmt.Printf("  %s [%s]  prep %s · cook %s · %s · kid-friendly %s\n",
			comp.Name, comp.Role, cli.FormatMinutes(comp.PrepMins), cli.FormatMinutes(comp.CookMins),
			comp.Difficulty, cli.FormatYesNo(comp.KidFriendly))
		for _, ing := range comp.Ingredients {
			fmt.Printf("      %-28s %-14s %s\n", ing.Name, ing.Quantity, cli.FormatCost(ing.Cost))
		}
		for i, step := range comp.Instructions {
			fmt.Printf("    %d. %s\n", i+1, step)
		}
		fmt.Println()
	}
}
