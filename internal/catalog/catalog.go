// Package catalog holds the compiled-in recipe components and the week plan
// built from them. A Catalog is constructed once and read-only afterwards.
package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/pipeline"
)

// CostTolerance is the allowed gap between a component's stored total and
// the sum of its ingredient costs.
const CostTolerance = 0.005

// Catalog is an immutable registry of components and the week plan.
type Catalog struct {
	order []*model.Component
	byID  map[string]*model.Component
	week  model.WeekPlan
	meals []model.ComposedMeal
}

// New validates the built-in data and assembles the week plan.
func New() (*Catalog, error) {
	return build(components, weekLayout)
}

func build(src []*model.Component, days []dayLayout) (*Catalog, error) {
	if err := validateComponents(src); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	c := &Catalog{byID: make(map[string]*model.Component, len(src))}
	for _, comp := range src {
		cp := clone(comp)
		c.order = append(c.order, cp)
		c.byID[cp.ID] = cp
	}

	week, err := c.assemble(days)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	c.week = week
	c.meals = pipeline.AllMeals(week)
	return c, nil
}

// Accessors hand out deep copies; edits by callers never reach the catalog.

// Component returns a copy of the component with the given id.
func (c *Catalog) Component(id string) (*model.Component, bool) {
	comp, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return clone(comp), true
}

// Components returns every component in definition order.
func (c *Catalog) Components() []*model.Component {
	out := make([]*model.Component, len(c.order))
	for i, comp := range c.order {
		out[i] = clone(comp)
	}
	return out
}

// ByRole returns the components playing the given role.
func (c *Catalog) ByRole(r model.Role) []*model.Component {
	var out []*model.Component
	for _, comp := range c.order {
		if comp.Role == r {
			out = append(out, clone(comp))
		}
	}
	return out
}

// Week returns a copy of the week plan.
func (c *Catalog) Week() model.WeekPlan {
	out := make(model.WeekPlan, len(c.week))
	for k, v := range c.week {
		out[k] = cloneDay(v)
	}
	return out
}

// Day returns the plan for one scheduling day.
func (c *Catalog) Day(d model.DayKey) (model.DayPlan, bool) {
	p, ok := c.week[d]
	if !ok {
		return model.DayPlan{}, false
	}
	return cloneDay(p), true
}

// Meals returns every composed meal of the week in visiting order.
func (c *Catalog) Meals() []model.ComposedMeal {
	out := make([]model.ComposedMeal, len(c.meals))
	for i, m := range c.meals {
		out[i] = cloneMeal(m)
	}
	return out
}

// Meal returns the composed meal with the given id.
func (c *Catalog) Meal(id string) (model.ComposedMeal, bool) {
	for _, m := range c.meals {
		if m.ID == id {
			return cloneMeal(m), true
		}
	}
	return model.ComposedMeal{}, false
}

func clone(c *model.Component) *model.Component {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Ingredients = append([]model.Ingredient(nil), c.Ingredients...)
	cp.Instructions = append([]string(nil), c.Instructions...)
	return &cp
}

func cloneMeal(m model.ComposedMeal) model.ComposedMeal {
	m.Breakfast = clone(m.Breakfast)
	m.Base = clone(m.Base)
	m.Protein = clone(m.Protein)
	m.Vegetable = clone(m.Vegetable)
	m.Ingredients = append([]model.Ingredient(nil), m.Ingredients...)
	return m
}

func cloneDay(p model.DayPlan) model.DayPlan {
	p.Breakfast = cloneMeal(p.Breakfast)
	p.Lunch = cloneMeal(p.Lunch)
	p.Dinner = cloneMeal(p.Dinner)
	if p.ExtraLunch != nil {
		extra := *p.ExtraLunch
		extra.Meal = cloneMeal(extra.Meal)
		p.ExtraLunch = &extra
	}
	return p
}

var (
	validRoles = map[model.Role]bool{
		model.RoleBase: true, model.RoleProtein: true, model.RoleVegetable: true, model.RoleBreakfast: true,
	}
	validCuisines = map[model.Cuisine]bool{
		model.CuisineChinese: true, model.CuisineMalay: true, model.CuisineIndian: true, model.CuisineWestern: true,
		model.CuisineJapanese: true, model.CuisineThai: true, model.CuisineUniversal: true,
	}
	validCategories = map[model.IngredientCategory]bool{
		model.CategoryProteins: true, model.CategoryVegetables: true, model.CategoryGrains: true,
		model.CategoryPantry: true, model.CategoryDairy: true, model.CategoryHerbs: true,
	}
)

func validateComponents(src []*model.Component) error {
	var errs []error
	seen := make(map[string]bool, len(src))

	for _, c := range src {
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("component %q has no id", c.Name))
			continue
		}
		if seen[c.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id", c.ID))
		}
		seen[c.ID] = true

		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s: empty name", c.ID))
		}
		if !validRoles[c.Role] {
			errs = append(errs, fmt.Errorf("%s: unknown role %q", c.ID, c.Role))
		}
		if !validCuisines[c.Cuisine] {
			errs = append(errs, fmt.Errorf("%s: unknown cuisine %q", c.ID, c.Cuisine))
		}
		if c.Difficulty != model.Easy && c.Difficulty != model.Medium {
			errs = append(errs, fmt.Errorf("%s: unknown difficulty %q", c.ID, c.Difficulty))
		}
		n := c.Nutrition
		if n.Calories < 0 || n.Protein < 0 || n.Carbs < 0 || n.Fat < 0 || n.Fibre < 0 {
			errs = append(errs, fmt.Errorf("%s: negative nutrition %+v", c.ID, n))
		}
		if c.PrepMins < 0 || c.CookMins < 0 {
			errs = append(errs, fmt.Errorf("%s: negative prep or cook time", c.ID))
		}
		for _, ing := range c.Ingredients {
			if ing.Cost < 0 {
				errs = append(errs, fmt.Errorf("%s: %s has negative cost", c.ID, ing.Name))
			}
			if !validCategories[ing.Category] {
				errs = append(errs, fmt.Errorf("%s: %s has unknown category %q", c.ID, ing.Name, ing.Category))
			}
		}
		if diff := math.Abs(c.IngredientCost() - c.TotalCost); diff > CostTolerance {
			errs = append(errs, fmt.Errorf("%s: total cost %.2f does not match ingredients %.2f",
				c.ID, c.TotalCost, c.IngredientCost()))
		}
	}
	return errors.Join(errs...)
}
