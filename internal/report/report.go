// Package report assembles the weekly plan, shopping list, receipts and
// budget into one document and exports it.
package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/theirongolddev/mealplan/internal/blob"
	"github.com/theirongolddev/mealplan/internal/household"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/pipeline"
)

// Input is everything a weekly report is built from.
type Input struct {
	Week      model.WeekPlan
	Household *household.Directory
	Receipts  []model.Receipt
	Checked   map[string]bool
	Budget    float64
	// Tracking is false when the ledger could not be read; receipts,
	// ticks and the budget status are then left out of the report.
	Tracking  bool
	WeekStart time.Time
	WeekLabel string
	Generated time.Time
}

// Report is the exported weekly document.
type Report struct {
	WeekStart     string                `json:"week_start"`
	WeekLabel     string                `json:"week_label"`
	GeneratedAt   time.Time             `json:"generated_at"`
	Tracking      bool                  `json:"tracking"`
	Days          []Day                 `json:"days"`
	PlanCost      float64               `json:"plan_cost"`
	Shopping      []model.ShoppingGroup `json:"shopping"`
	ShoppingTotal float64               `json:"shopping_total"`
	Checked       []string              `json:"checked"`
	CheckedTotal  float64               `json:"checked_total"`
	Receipts      []model.Receipt       `json:"receipts"`
	SpendByStore  []model.StoreSpend    `json:"spend_by_store"`
	Budget        *model.BudgetStatus   `json:"budget,omitempty"`
	Household     []model.MemberTargets `json:"household"`
}

// Day summarises one planned day.
type Day struct {
	Day   model.DayKey `json:"day"`
	Label string       `json:"label"`
	Meals []Meal       `json:"meals"`
	Cost  float64      `json:"cost"`
}

// Meal summarises one composed meal.
type Meal struct {
	ID       string         `json:"id"`
	Type     model.MealType `json:"type"`
	For      string         `json:"for,omitempty"`
	Name     string         `json:"name"`
	Cuisine  model.Cuisine  `json:"cuisine"`
	Calories int            `json:"calories"`
	Protein  int            `json:"protein"`
	Cost     float64        `json:"cost"`
	Coverage *int           `json:"coverage_pct,omitempty"`
}

// Build assembles a report.
func Build(in Input) Report {
	items := pipeline.AggregateShopping(in.Week)

	r := Report{
		WeekStart:     in.WeekStart.Format("2006-01-02"),
		WeekLabel:     in.WeekLabel,
		GeneratedAt:   in.Generated.UTC(),
		Tracking:      in.Tracking,
		PlanCost:      pipeline.WeekCost(in.Week),
		Shopping:      pipeline.GroupShopping(items),
		ShoppingTotal: pipeline.ShoppingTotal(items),
		Receipts:      []model.Receipt{},
		Checked:       []string{},
	}
	if in.Tracking {
		st := pipeline.ComputeBudget(pipeline.SumReceipts(in.Receipts), in.Budget)
		r.Budget = &st
		r.CheckedTotal = pipeline.CheckedTotal(items, in.Checked)
		r.SpendByStore = pipeline.SpendByStore(in.Receipts)
		if in.Receipts != nil {
			r.Receipts = in.Receipts
		}
		for name, ok := range in.Checked {
			if ok {
				r.Checked = append(r.Checked, name)
			}
		}
		sort.Strings(r.Checked)
	}
	if in.Household != nil {
		r.Household = in.Household.Members()
	}

	r.Days = Days(in.Week, in.Household)
	return r
}

// Days summarises the planned days in scheduling order. Coverage is set
// when hh has a primary member.
func Days(week model.WeekPlan, hh *household.Directory) []Day {
	var out []Day
	for _, key := range model.Days {
		plan, ok := week[key]
		if !ok {
			continue
		}
		day := Day{Day: key, Label: key.Label(), Cost: pipeline.DayCost(plan)}
		for _, m := range plan.Meals() {
			meal := Meal{
				ID:       m.ID,
				Type:     m.Type,
				Name:     m.Name,
				Cuisine:  m.Cuisine,
				Calories: m.Totals.Calories,
				Protein:  m.Totals.Protein,
				Cost:     m.TotalCost,
			}
			if plan.ExtraLunch != nil && m.ID == plan.ExtraLunch.Meal.ID {
				meal.For = plan.ExtraLunch.For
			}
			if hh != nil {
				if pct, ok := hh.Coverage(m); ok {
					meal.Coverage = &pct
				}
			}
			day.Meals = append(day.Meals, meal)
		}
		out = append(out, day)
	}
	return out
}

// JSON encodes the report with indentation.
func JSON(r Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return append(data, '\n'), nil
}

// ShoppingCSV renders the grouped shopping list with a checked column,
// left blank when the report was built without tracking.
func ShoppingCSV(r Report) ([]byte, error) {
	checked := make(map[string]bool, len(r.Checked))
	for _, name := range r.Checked {
		checked[name] = true
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Category", "Item", "Quantity", "Cost", "Checked"})
	for _, g := range r.Shopping {
		for _, it := range g.Items {
			tick := ""
			if r.Tracking {
				tick = strconv.FormatBool(checked[it.Name])
			}
			_ = w.Write([]string{
				string(g.Category),
				it.Name,
				it.QuantityText(),
				strconv.FormatFloat(it.Cost, 'f', 2, 64),
				tick,
			})
		}
	}
	_ = w.Write([]string{"", "Total", "", strconv.FormatFloat(r.ShoppingTotal, 'f', 2, 64), ""})
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encoding shopping csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Export writes the JSON report and shopping CSV under the week's key prefix.
func Export(ctx context.Context, store blob.Store, r Report) ([]blob.Info, error) {
	js, err := JSON(r)
	if err != nil {
		return nil, err
	}
	shopping, err := ShoppingCSV(r)
	if err != nil {
		return nil, err
	}

	var out []blob.Info
	for _, obj := range []struct {
		name, contentType string
		body              []byte
	}{
		{"report.json", "application/json", js},
		{"shopping.csv", "text/csv", shopping},
	} {
		info, err := store.Put(ctx, r.WeekStart+"/"+obj.name, obj.body, obj.contentType)
		if err != nil {
			return out, fmt.Errorf("exporting %s: %w", obj.name, err)
		}
		out = append(out, info)
	}
	return out, nil
}
