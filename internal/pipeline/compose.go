// Package pipeline composes meals and aggregates a week plan into shopping,
// cost and budget views.
package pipeline

import (
	"strings"

	"github.com/theirongolddev/mealplan/internal/model"
)

// NameSeparator joins component names in a lunch or dinner name.
const NameSeparator = " · "

// Slots are the optional components of a meal. The composer aggregates
// whatever is set; callers decide which slots suit the meal type.
type Slots struct {
	Breakfast *model.Component
	Base      *model.Component
	Protein   *model.Component
	Vegetable *model.Component
}

// ComposeMeal builds a meal from its slots. Totals are sums over the
// attached components, absent slots contribute nothing.
func ComposeMeal(id string, mealType model.MealType, s Slots) model.ComposedMeal {
	m := model.ComposedMeal{
		ID:          id,
		Type:        mealType,
		Breakfast:   s.Breakfast,
		Base:        s.Base,
		Protein:     s.Protein,
		Vegetable:   s.Vegetable,
		Ingredients: []model.Ingredient{},
	}

	for _, c := range m.Components() {
		m.Totals = m.Totals.Add(c.Nutrition)
		m.TotalCost += c.TotalCost
		m.Ingredients = append(m.Ingredients, c.Ingredients...)
	}

	m.Name = mealName(mealType, s)
	m.Cuisine = mealCuisine(s)
	return m
}

func mealName(mealType model.MealType, s Slots) string {
	if mealType == model.Breakfast {
		if s.Breakfast == nil {
			return ""
		}
		return s.Breakfast.Name
	}

	var names []string
	for _, c := range []*model.Component{s.Base, s.Protein, s.Vegetable} {
		if c != nil {
			names = append(names, c.Name)
		}
	}
	return strings.Join(names, NameSeparator)
}

func mealCuisine(s Slots) model.Cuisine {
	for _, c := range []*model.Component{s.Protein, s.Breakfast, s.Base} {
		if c != nil {
			return c.Cuisine
		}
	}
	return model.CuisineUniversal
}
