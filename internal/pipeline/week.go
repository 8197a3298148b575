package pipeline

import (
	"sort"
	"time"

	"github.com/theirongolddev/mealplan/internal/model"
)

// AllMeals flattens the week into one list: days in week order, and within
// a day breakfast, lunch, dinner, then the extra lunch when present.
func AllMeals(w model.WeekPlan) []model.ComposedMeal {
	var meals []model.ComposedMeal
	for _, day := range model.Days {
		plan, ok := w[day]
		if !ok {
			continue
		}
		meals = append(meals, plan.Meals()...)
	}
	return meals
}

// WeekCost sums the cost of every meal in the week.
func WeekCost(w model.WeekPlan) float64 {
	var total float64
	for _, m := range AllMeals(w) {
		total += m.TotalCost
	}
	return total
}

// DayCost sums the cost of one day's meals.
func DayCost(p model.DayPlan) float64 {
	var total float64
	for _, m := range p.Meals() {
		total += m.TotalCost
	}
	return total
}

// DayFor returns the scheduling day for a date. Sunday falls back to Saturday.
func DayFor(t time.Time) model.DayKey {
	idx := int(t.Weekday()) - 1
	if idx < 0 || idx >= len(model.Days) {
		return model.Sat
	}
	return model.Days[idx]
}

// FilterByMealType returns meals of the given type. An empty type keeps all.
func FilterByMealType(meals []model.ComposedMeal, t model.MealType) []model.ComposedMeal {
	if t == "" {
		return meals
	}
	var out []model.ComposedMeal
	for _, m := range meals {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// FilterByCuisine returns meals of the given cuisine. An empty cuisine keeps all.
func FilterByCuisine(meals []model.ComposedMeal, c model.Cuisine) []model.ComposedMeal {
	if c == "" {
		return meals
	}
	var out []model.ComposedMeal
	for _, m := range meals {
		if m.Cuisine == c {
			out = append(out, m)
		}
	}
	return out
}

// Cuisines returns the distinct cuisines of the meals, sorted by name.
func Cuisines(meals []model.ComposedMeal) []model.Cuisine {
	seen := make(map[model.Cuisine]bool)
	var out []model.Cuisine
	for _, m := range meals {
		if !seen[m.Cuisine] {
			seen[m.Cuisine] = true
			out = append(out, m.Cuisine)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// UniqueMeals drops repeated meal IDs, keeping first occurrences in order.
func UniqueMeals(meals []model.ComposedMeal) []model.ComposedMeal {
	seen := make(map[string]bool, len(meals))
	var out []model.ComposedMeal
	for _, m := range meals {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out
}

// NextSwap returns the meal after current among meals of the same type,
// wrapping around. It returns current unchanged when there is no other choice.
func NextSwap(meals []model.ComposedMeal, current model.ComposedMeal) model.ComposedMeal {
	candidates := UniqueMeals(FilterByMealType(meals, current.Type))
	if len(candidates) == 0 {
		return current
	}

	pos := -1
	for i, m := range candidates {
		if m.ID == current.ID {
			pos = i
			break
		}
	}
	next := candidates[(pos+1)%len(candidates)]
	if next.ID == current.ID {
		return current
	}
	return next
}
