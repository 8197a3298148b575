package pipeline

import (
	"math"
	"testing"

	"github.com/theirongolddev/mealplan/internal/model"
)

func comp(id string, role model.Role, cuisine model.Cuisine, cal int, cost float64, ings ...model.Ingredient) *model.Component {
	return &model.Component{
		ID:          id,
		Name:        id,
		Role:        role,
		Cuisine:     cuisine,
		Ingredients: ings,
		TotalCost:   cost,
		Nutrition:   model.Nutrition{Calories: cal, Protein: cal / 10, Carbs: cal / 5, Fat: cal / 20, Fibre: 1},
	}
}

func ing(name string, cat model.IngredientCategory, qty string, cost float64) model.Ingredient {
	return model.Ingredient{Name: name, Quantity: qty, Category: cat, Cost: cost}
}

var (
	rice = comp("Steamed White Rice", model.RoleBase, model.CuisineUniversal, 260, 0.30,
		ing("Jasmine rice", model.CategoryGrains, "80g dry", 0.20),
		ing("Salt", model.CategoryHerbs, "pinch", 0.10))
	fish = comp("Steamed Fish", model.RoleProtein, model.CuisineChinese, 180, 4.00,
		ing("Fish fillet", model.CategoryProteins, "400g", 3.50),
		ing("Garlic", model.CategoryHerbs, "2 cloves", 0.10),
		ing("Soy sauce", model.CategoryPantry, "2 tbsp", 0.40))
	kailan = comp("Kai Lan", model.RoleVegetable, model.CuisineChinese, 80, 1.50,
		ing("Kai lan", model.CategoryVegetables, "300g", 1.00),
		ing("Garlic", model.CategoryHerbs, "3 cloves", 0.15),
		ing("Salt", model.CategoryHerbs, "pinch", 0.35))
	prata = comp("Roti Prata", model.RoleBreakfast, model.CuisineIndian, 420, 2.80,
		ing("Frozen roti prata", model.CategoryGrains, "4 pieces", 2.40),
		ing("Garlic", model.CategoryHerbs, "1 clove", 0.40))
	noodles = comp("Plain Noodles", model.RoleBase, model.CuisineWestern, 220, 0.50,
		ing("Egg noodles", model.CategoryGrains, "100g", 0.50))
)

func TestComposeMealSumsComponents(t *testing.T) {
	m := ComposeMeal("mon-lunch", model.Lunch, Slots{Base: rice, Protein: fish, Vegetable: kailan})

	if m.Totals.Calories != 520 {
		t.Fatalf("Calories = %d, want 520", m.Totals.Calories)
	}
	if math.Abs(m.TotalCost-5.80) > 1e-9 {
		t.Fatalf("TotalCost = %.4f, want 5.80", m.TotalCost)
	}
	want := rice.Nutrition.Add(fish.Nutrition).Add(kailan.Nutrition)
	if m.Totals != want {
		t.Fatalf("Totals = %+v, want %+v", m.Totals, want)
	}
	if m.Name != "Steamed White Rice · Steamed Fish · Kai Lan" {
		t.Fatalf("Name = %q", m.Name)
	}
	if m.Cuisine != model.CuisineChinese {
		t.Fatalf("Cuisine = %s, want Chinese", m.Cuisine)
	}
	if len(m.Ingredients) != 8 {
		t.Fatalf("Ingredients len = %d, want 8 (no merging)", len(m.Ingredients))
	}
	if m.Ingredients[0].Name != "Jasmine rice" || m.Ingredients[2].Name != "Fish fillet" || m.Ingredients[5].Name != "Kai lan" {
		t.Fatalf("Ingredients not in slot order: %+v", m.Ingredients)
	}
}

func TestComposeMealEmpty(t *testing.T) {
	m := ComposeMeal("empty", model.Dinner, Slots{})
	if m.Totals != (model.Nutrition{}) || m.TotalCost != 0 {
		t.Fatalf("empty meal totals = %+v / %.2f, want zero", m.Totals, m.TotalCost)
	}
	if len(m.Ingredients) != 0 {
		t.Fatalf("empty meal ingredients = %d, want 0", len(m.Ingredients))
	}
	if m.Cuisine != model.CuisineUniversal {
		t.Fatalf("empty meal cuisine = %s, want Universal", m.Cuisine)
	}
	if m.Name != "" {
		t.Fatalf("empty meal name = %q, want empty", m.Name)
	}
}

func TestComposeMealBreakfastName(t *testing.T) {
	m := ComposeMeal("tue-breakfast", model.Breakfast, Slots{Breakfast: prata})
	if m.Name != "Roti Prata" {
		t.Fatalf("Name = %q, want Roti Prata", m.Name)
	}
	if m.Cuisine != model.CuisineIndian {
		t.Fatalf("Cuisine = %s, want Indian", m.Cuisine)
	}
}

func TestComposeMealCuisinePriority(t *testing.T) {
	tests := []struct {
		name  string
		slots Slots
		want  model.Cuisine
	}{
		{"protein wins", Slots{Base: noodles, Protein: fish, Breakfast: prata}, model.CuisineChinese},
		{"breakfast over base", Slots{Base: noodles, Breakfast: prata}, model.CuisineIndian},
		{"base last", Slots{Base: noodles, Vegetable: kailan}, model.CuisineWestern},
		{"vegetable ignored", Slots{Vegetable: kailan}, model.CuisineUniversal},
	}
	for _, tt := range tests {
		if got := ComposeMeal("x", model.Lunch, tt.slots).Cuisine; got != tt.want {
			t.Errorf("%s: Cuisine = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestComposeMealPermissiveSlots(t *testing.T) {
	// A lunch holding a breakfast item still aggregates it.
	m := ComposeMeal("odd", model.Lunch, Slots{Breakfast: prata, Base: rice})
	if m.Totals.Calories != 680 {
		t.Fatalf("Calories = %d, want 680", m.Totals.Calories)
	}
	if m.Name != "Steamed White Rice" {
		t.Fatalf("Name = %q, want base name only", m.Name)
	}
	if m.Ingredients[0].Name != "Frozen roti prata" {
		t.Fatalf("breakfast slot should come first, got %s", m.Ingredients[0].Name)
	}
}

func TestComposeMealIsDeterministic(t *testing.T) {
	s := Slots{Base: rice, Protein: fish, Vegetable: kailan}
	a := ComposeMeal("a", model.Dinner, s)
	b := ComposeMeal("a", model.Dinner, s)
	if a.Name != b.Name || a.Totals != b.Totals || a.TotalCost != b.TotalCost || len(a.Ingredients) != len(b.Ingredients) {
		t.Fatal("ComposeMeal gave different results for the same input")
	}
}
