package catalog

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/pipeline"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}

func TestNewBuiltInData(t *testing.T) {
	c := mustCatalog(t)

	if got := len(c.Components()); got != 31 {
		t.Fatalf("Components() len = %d, want 31", got)
	}
	wantRoles := map[model.Role]int{
		model.RoleBase:      5,
		model.RoleBreakfast: 7,
		model.RoleProtein:   11,
		model.RoleVegetable: 8,
	}
	for role, want := range wantRoles {
		if got := len(c.ByRole(role)); got != want {
			t.Errorf("ByRole(%s) len = %d, want %d", role, got, want)
		}
	}
}

func TestComponentCostsMatchIngredients(t *testing.T) {
	c := mustCatalog(t)
	for _, comp := range c.Components() {
		if diff := math.Abs(comp.IngredientCost() - comp.TotalCost); diff > CostTolerance {
			t.Errorf("%s: ingredients sum to %.2f, total is %.2f", comp.ID, comp.IngredientCost(), comp.TotalCost)
		}
	}
}

func TestComponentLookup(t *testing.T) {
	c := mustCatalog(t)

	fish, ok := c.Component("steamed-fish")
	if !ok {
		t.Fatal("steamed-fish not found")
	}
	if fish.Calories != 180 || fish.TotalCost != 4.00 {
		t.Fatalf("steamed-fish = %d kcal / %.2f, want 180 / 4.00", fish.Calories, fish.TotalCost)
	}
	if _, ok := c.Component("chocolate-cake"); ok {
		t.Fatal("unexpected component chocolate-cake")
	}
}

func TestComponentsReturnsCopyOfOrder(t *testing.T) {
	c := mustCatalog(t)
	list := c.Components()
	list[0] = nil
	if c.Components()[0] == nil {
		t.Fatal("Components() exposed internal slice")
	}
}

func TestWeekPlanShape(t *testing.T) {
	c := mustCatalog(t)
	week := c.Week()

	if len(week) != len(model.Days) {
		t.Fatalf("week has %d days, want %d", len(week), len(model.Days))
	}

	wantMeals := 0
	for _, day := range model.Days {
		plan, ok := week[day]
		if !ok {
			t.Fatalf("no plan for %s", day)
		}
		if plan.Breakfast.Breakfast == nil || plan.Breakfast.Base != nil {
			t.Errorf("%s breakfast should hold only a breakfast component", day)
		}
		for _, m := range []model.ComposedMeal{plan.Lunch, plan.Dinner} {
			if m.Breakfast != nil {
				t.Errorf("%s: %s holds a breakfast component", day, m.ID)
			}
		}
		wantMeals += 3
		if plan.ExtraLunch != nil {
			wantMeals++
			if plan.ExtraLunch.For == "" {
				t.Errorf("%s extra lunch has no member", day)
			}
		}
	}

	meals := c.Meals()
	if len(meals) != wantMeals {
		t.Fatalf("Meals() len = %d, want %d", len(meals), wantMeals)
	}
	if len(meals) != 21 {
		t.Fatalf("Meals() len = %d, want 21", len(meals))
	}

	var sum float64
	for _, m := range meals {
		sum += m.TotalCost
	}
	if got := pipeline.WeekCost(week); math.Abs(got-sum) > 1e-9 {
		t.Fatalf("WeekCost = %.4f, want %.4f", got, sum)
	}
	if math.Abs(sum-88.90) > 1e-6 {
		t.Fatalf("week total = %.2f, want 88.90", sum)
	}
}

func TestMondayLunch(t *testing.T) {
	c := mustCatalog(t)
	mon, _ := c.Day(model.Mon)

	if mon.Lunch.Totals.Calories != 520 {
		t.Fatalf("mon lunch calories = %d, want 520", mon.Lunch.Totals.Calories)
	}
	if math.Abs(mon.Lunch.TotalCost-5.80) > 1e-9 {
		t.Fatalf("mon lunch cost = %.4f, want 5.80", mon.Lunch.TotalCost)
	}
	if mon.Lunch.Cuisine != model.CuisineChinese {
		t.Fatalf("mon lunch cuisine = %s, want Chinese", mon.Lunch.Cuisine)
	}
	if !strings.HasPrefix(mon.Lunch.Name, "Steamed White Rice · Steamed Fish") {
		t.Fatalf("mon lunch name = %q", mon.Lunch.Name)
	}
}

func TestMealLookup(t *testing.T) {
	c := mustCatalog(t)
	m, ok := c.Meal("wed-lunch-marcus")
	if !ok {
		t.Fatal("wed-lunch-marcus not found")
	}
	if m.Type != model.Lunch {
		t.Fatalf("wed-lunch-marcus type = %s, want lunch", m.Type)
	}
}

func TestWeekReturnsCopy(t *testing.T) {
	c := mustCatalog(t)
	w := c.Week()
	delete(w, model.Mon)
	if _, ok := c.Day(model.Mon); !ok {
		t.Fatal("deleting from Week() result changed the catalog")
	}
}

func TestAccessorsDoNotExposeCatalogData(t *testing.T) {
	c := mustCatalog(t)

	fish, _ := c.Component("steamed-fish")
	fish.Calories = 0
	fish.Ingredients[0].Cost = 99
	again, _ := c.Component("steamed-fish")
	if again.Calories != 180 || again.Ingredients[0].Cost == 99 {
		t.Fatalf("editing Component() result changed the catalog: %+v", again)
	}

	c.Components()[0].TotalCost = -1
	if c.Components()[0].TotalCost < 0 {
		t.Fatal("editing Components() result changed the catalog")
	}

	w := c.Week()
	mon := w[model.Mon]
	want := mon.Lunch.Components()[0].Calories
	mon.Lunch.Components()[0].Calories = want + 500
	mon.Lunch.Ingredients[0].Name = "edited"
	if got := c.Week()[model.Mon].Lunch.Components()[0].Calories; got != want {
		t.Fatalf("editing Week() result changed component calories: %d, want %d", got, want)
	}
	day, _ := c.Day(model.Mon)
	if day.Lunch.Ingredients[0].Name == "edited" {
		t.Fatal("editing Week() result changed meal ingredients")
	}

	meals := c.Meals()
	meals[0].Components()[0].Name = "edited"
	if c.Meals()[0].Components()[0].Name == "edited" {
		t.Fatal("editing Meals() result changed the catalog")
	}
	m, _ := c.Meal(meals[0].ID)
	if m.Components()[0].Name == "edited" {
		t.Fatal("Meal() shares components with Meals() results")
	}
}

func TestShoppingAggregationIsIdempotent(t *testing.T) {
	c := mustCatalog(t)
	a := pipeline.AggregateShopping(c.Week())
	b := pipeline.AggregateShopping(c.Week())
	if !reflect.DeepEqual(a, b) {
		t.Fatal("AggregateShopping not idempotent")
	}
	if len(a) != 101 {
		t.Fatalf("shopping items = %d, want 101", len(a))
	}

	var garlic model.ShoppingItem
	for _, it := range a {
		if it.Name == "Garlic" {
			garlic = it
		}
	}
	if len(garlic.Quantities) != 18 {
		t.Fatalf("Garlic quantities = %d, want 18", len(garlic.Quantities))
	}
	if math.Abs(garlic.Cost-1.65) > 1e-9 {
		t.Fatalf("Garlic cost = %.4f, want 1.65", garlic.Cost)
	}

	if got, want := pipeline.ShoppingTotal(a), pipeline.WeekCost(c.Week()); math.Abs(got-want) > 1e-6 {
		t.Fatalf("shopping total %.2f != week cost %.2f", got, want)
	}
}

func TestBuildRejectsBadData(t *testing.T) {
	good := *components[0]
	dup := good

	mismatch := clone(components[1])
	mismatch.TotalCost += 1

	if _, err := build([]*model.Component{&good, &dup}, nil); err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Fatalf("duplicate id error = %v", err)
	}
	if _, err := build([]*model.Component{mismatch}, nil); err == nil || !strings.Contains(err.Error(), "does not match") {
		t.Fatalf("cost mismatch error = %v", err)
	}
}

func TestBuildRejectsWrongSlot(t *testing.T) {
	days := append([]dayLayout(nil), weekLayout...)
	days[0].lunch = plate{"steamed-fish", "steamed-white-rice", "kai-lan-oyster"}

	_, err := build(components, days)
	if err == nil {
		t.Fatal("expected slot discipline error")
	}
	if !strings.Contains(err.Error(), "mon lunch") {
		t.Fatalf("error = %v, want mention of mon lunch", err)
	}
}

func TestBuildRejectsMissingDay(t *testing.T) {
	_, err := build(components, weekLayout[:5])
	if err == nil || !strings.Contains(err.Error(), "sat: no plan") {
		t.Fatalf("missing day error = %v", err)
	}
}
