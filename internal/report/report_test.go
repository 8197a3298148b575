package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/theirongolddev/mealplan/internal/blob"
	"github.com/theirongolddev/mealplan/internal/catalog"
	"github.com/theirongolddev/mealplan/internal/household"
	"github.com/theirongolddev/mealplan/internal/model"
)

func testInput(t *testing.T) Input {
	t.Helper()
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	dir, err := household.New(household.Seed())
	if err != nil {
		t.Fatalf("household.New: %v", err)
	}
	ws := time.Date(2026, 10, 12, 0, 0, 0, 0, time.Local)
	return Input{
		Week:      cat.Week(),
		Household: dir,
		Receipts: []model.Receipt{
			{ID: "r1", StoreType: model.StoreNTUC, Amount: 120, PurchasedAt: ws},
			{ID: "r2", StoreType: model.StoreMarket, Amount: 45, PurchasedAt: ws.AddDate(0, 0, 2)},
		},
		Checked:   map[string]bool{"Garlic": true, "Salt": true, "Unknown": false},
		Budget:    150,
		Tracking:  true,
		WeekStart: ws,
		WeekLabel: "12 Oct – 17 Oct",
		Generated: time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC),
	}
}

func TestBuild(t *testing.T) {
	r := Build(testInput(t))

	if len(r.Days) != 6 {
		t.Fatalf("Days = %d, want 6", len(r.Days))
	}
	meals := 0
	for _, d := range r.Days {
		meals += len(d.Meals)
	}
	if meals != 21 {
		t.Fatalf("meals = %d, want 21", meals)
	}
	if math.Abs(r.PlanCost-88.90) > 1e-6 || math.Abs(r.ShoppingTotal-r.PlanCost) > 1e-6 {
		t.Fatalf("PlanCost = %v, ShoppingTotal = %v", r.PlanCost, r.ShoppingTotal)
	}
	if math.Abs(r.CheckedTotal-(1.65+1.35)) > 1e-9 {
		t.Fatalf("CheckedTotal = %v, want 3.00", r.CheckedTotal)
	}
	if len(r.Checked) != 2 || r.Checked[0] != "Garlic" {
		t.Fatalf("Checked = %v", r.Checked)
	}
	if !r.Tracking || r.Budget == nil {
		t.Fatalf("Tracking = %v, Budget = %v", r.Tracking, r.Budget)
	}
	if !r.Budget.Over || r.Budget.OverBy != 15 || r.Budget.PercentUsed != 100 {
		t.Fatalf("Budget = %+v", r.Budget)
	}

	mon := r.Days[0]
	if mon.Meals[1].Coverage == nil || *mon.Meals[1].Coverage != 29 {
		t.Fatalf("mon lunch coverage = %v, want 29", mon.Meals[1].Coverage)
	}
	if mon.Meals[3].For != "Marcus" {
		t.Fatalf("extra lunch For = %q, want Marcus", mon.Meals[3].For)
	}
}

func TestBuildWithoutTracking(t *testing.T) {
	in := testInput(t)
	in.Tracking = false
	r := Build(in)

	if r.Tracking {
		t.Fatal("Tracking = true, want false")
	}
	if r.Budget != nil || len(r.Receipts) != 0 || len(r.Checked) != 0 || r.CheckedTotal != 0 {
		t.Fatalf("untracked report carries ledger figures: budget=%v receipts=%d checked=%v",
			r.Budget, len(r.Receipts), r.Checked)
	}
	if len(r.Days) != 6 || r.ShoppingTotal == 0 {
		t.Fatalf("plan should still be reported: days=%d shopping=%v", len(r.Days), r.ShoppingTotal)
	}

	data, err := JSON(r)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if back["tracking"] != false {
		t.Fatalf("tracking = %v, want false", back["tracking"])
	}
	if _, ok := back["budget"]; ok {
		t.Fatal("budget should be omitted when tracking is unavailable")
	}

	csvData, err := ShoppingCSV(r)
	if err != nil {
		t.Fatalf("ShoppingCSV: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(csvData)).ReadAll()
	if err != nil {
		t.Fatalf("csv parse: %v", err)
	}
	if rows[1][4] != "" {
		t.Fatalf("checked column = %q, want blank without tracking", rows[1][4])
	}
}

func TestJSONDecodes(t *testing.T) {
	data, err := JSON(Build(testInput(t)))
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if back["week_start"] != "2026-10-12" {
		t.Fatalf("week_start = %v", back["week_start"])
	}
}

func TestShoppingCSV(t *testing.T) {
	data, err := ShoppingCSV(Build(testInput(t)))
	if err != nil {
		t.Fatalf("ShoppingCSV: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("csv parse: %v", err)
	}
	// header + 101 items + total
	if len(rows) != 103 {
		t.Fatalf("rows = %d, want 103", len(rows))
	}
	if rows[0][0] != "Category" || rows[len(rows)-1][1] != "Total" || rows[len(rows)-1][3] != "88.90" {
		t.Fatalf("unexpected header/footer: %v / %v", rows[0], rows[len(rows)-1])
	}
	if rows[1][0] != string(model.CategoryProteins) {
		t.Fatalf("first category = %s, want Proteins", rows[1][0])
	}
}

func TestExport(t *testing.T) {
	store, err := blob.NewFS(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	infos, err := Export(context.Background(), store, Build(testInput(t)))
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(infos) != 2 || infos[0].Key != "2026-10-12/report.json" || infos[1].Key != "2026-10-12/shopping.csv" {
		t.Fatalf("infos = %+v", infos)
	}
	list, _ := store.List(context.Background(), "2026-10-12/")
	if len(list) != 2 {
		t.Fatalf("listed %d objects, want 2", len(list))
	}
}
