package pipeline

import (
	"math"
	"reflect"
	"testing"

	"github.com/theirongolddev/mealplan/internal/model"
)

func TestAggregateShoppingMergesByName(t *testing.T) {
	// Garlic appears in fish, kailan and prata.
	w := model.WeekPlan{
		model.Mon: {
			Day:       model.Mon,
			Breakfast: ComposeMeal("mon-breakfast", model.Breakfast, Slots{Breakfast: prata}),
			Lunch:     ComposeMeal("mon-lunch", model.Lunch, Slots{Base: rice, Protein: fish, Vegetable: kailan}),
		},
	}
	items := AggregateShopping(w)

	var garlic *model.ShoppingItem
	for i := range items {
		if items[i].Name == "Garlic" {
			garlic = &items[i]
		}
	}
	if garlic == nil {
		t.Fatal("Garlic missing from shopping list")
	}
	if want := []string{"1 clove", "2 cloves", "3 cloves"}; !reflect.DeepEqual(garlic.Quantities, want) {
		t.Fatalf("Garlic quantities = %v, want %v", garlic.Quantities, want)
	}
	if math.Abs(garlic.Cost-0.65) > 1e-9 {
		t.Fatalf("Garlic cost = %v, want 0.65", garlic.Cost)
	}
	if garlic.QuantityText() != "1 clove + 2 cloves + 3 cloves" {
		t.Fatalf("QuantityText = %q", garlic.QuantityText())
	}

	if items[0].Name != "Frozen roti prata" || items[1].Name != "Garlic" {
		t.Fatalf("items not in first-seen order: %s, %s", items[0].Name, items[1].Name)
	}

	seen := make(map[string]bool)
	for _, it := range items {
		if seen[it.Name] {
			t.Fatalf("duplicate item %s", it.Name)
		}
		seen[it.Name] = true
	}

	if got, want := ShoppingTotal(items), WeekCost(w); math.Abs(got-want) > 1e-9 {
		t.Fatalf("ShoppingTotal = %v, want %v", got, want)
	}
}

func TestAggregateShoppingIdempotent(t *testing.T) {
	w := testWeek()
	if !reflect.DeepEqual(AggregateShopping(w), AggregateShopping(w)) {
		t.Fatal("AggregateShopping returned different results for the same week")
	}
}

func TestAggregateShoppingFirstCategoryWins(t *testing.T) {
	a := comp("a", model.RoleBase, model.CuisineUniversal, 100, 0.5,
		ing("Chilli", model.CategoryVegetables, "1", 0.5))
	b := comp("b", model.RoleProtein, model.CuisineMalay, 100, 0.2,
		ing("Chilli", model.CategoryHerbs, "2", 0.2))
	w := model.WeekPlan{
		model.Tue: {Day: model.Tue, Lunch: ComposeMeal("tue-lunch", model.Lunch, Slots{Base: a, Protein: b})},
	}
	items := AggregateShopping(w)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Category != model.CategoryVegetables {
		t.Fatalf("Category = %s, want %s", items[0].Category, model.CategoryVegetables)
	}
}

func TestGroupShopping(t *testing.T) {
	items := []model.ShoppingItem{
		{Name: "Salt", Category: model.CategoryHerbs, Cost: 0.1},
		{Name: "Chicken", Category: model.CategoryProteins, Cost: 3},
		{Name: "Mystery", Category: "Misc", Cost: 9},
		{Name: "Pepper", Category: model.CategoryHerbs, Cost: 0.2},
	}
	groups := GroupShopping(items)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Category != model.CategoryProteins || groups[1].Category != model.CategoryHerbs {
		t.Fatalf("group order = %s, %s", groups[0].Category, groups[1].Category)
	}
	if len(groups[1].Items) != 2 || groups[1].Items[0].Name != "Salt" {
		t.Fatalf("herbs items = %+v", groups[1].Items)
	}
	if math.Abs(groups[1].Cost-0.3) > 1e-9 {
		t.Fatalf("herbs cost = %v, want 0.3", groups[1].Cost)
	}
	if got := ShoppingTotal(items); math.Abs(got-12.3) > 1e-9 {
		t.Fatalf("ShoppingTotal = %v, want 12.3", got)
	}
}

func TestCheckedState(t *testing.T) {
	items := []model.ShoppingItem{
		{Name: "Eggs", Cost: 2},
		{Name: "Milk", Cost: 3},
		{Name: "Rice", Cost: 1.5},
	}
	checked := map[string]bool{"Milk": true, "Bread": true}

	if got := CheckedTotal(items, checked); got != 3 {
		t.Fatalf("CheckedTotal = %v, want 3", got)
	}
	rest := FilterUnchecked(items, checked)
	if len(rest) != 2 || rest[0].Name != "Eggs" || rest[1].Name != "Rice" {
		t.Fatalf("FilterUnchecked = %+v", rest)
	}
}
