// Package model defines the meal, plan, household and ledger types shared across mealplan.
package model

// IngredientCategory is a grocery aisle grouping used by the shopping list.
type IngredientCategory string

// Grocery categories.
const (
	CategoryProteins   IngredientCategory = "Proteins"
	CategoryVegetables IngredientCategory = "Vegetables"
	CategoryGrains     IngredientCategory = "Grains & Carbs"
	CategoryPantry     IngredientCategory = "Pantry & Sauces"
	CategoryDairy      IngredientCategory = "Dairy & Eggs"
	CategoryHerbs      IngredientCategory = "Herbs & Spices"
)

// CategoryOrder is the display order of shopping list groups.
var CategoryOrder = []IngredientCategory{
	CategoryProteins,
	CategoryVegetables,
	CategoryGrains,
	CategoryPantry,
	CategoryDairy,
	CategoryHerbs,
}

// Role is the slot a component fills in a meal.
type Role string

// Component roles.
const (
	RoleBase      Role = "base"
	RoleProtein   Role = "protein"
	RoleVegetable Role = "vegetable"
	RoleBreakfast Role = "breakfast"
)

// Cuisine is the closed set of cuisines in the catalog.
type Cuisine string

// Cuisines.
const (
	CuisineChinese   Cuisine = "Chinese"
	CuisineMalay     Cuisine = "Malay"
	CuisineIndian    Cuisine = "Indian"
	CuisineWestern   Cuisine = "Western"
	CuisineJapanese  Cuisine = "Japanese"
	CuisineThai      Cuisine = "Thai"
	CuisineUniversal Cuisine = "Universal"
)

// Difficulty of preparing a component.
type Difficulty string

// Difficulty levels.
const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
)

// MealType is the meal slot of a day.
type MealType string

// Meal types.
const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// MealTypes lists meal types in day order.
var MealTypes = []MealType{Breakfast, Lunch, Dinner}

// Ingredient is one shopping line of a component. Quantity is free text.
type Ingredient struct {
	Name     string             `json:"name"`
	Quantity string             `json:"quantity"`
	Category IngredientCategory `json:"category"`
	Cost     float64            `json:"cost"`
}

// Nutrition holds the macro fields shared by components and composed meals.
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fibre    int `json:"fibre"`
}

// Add returns the field-wise sum of n and o.
func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
		Fibre:    n.Fibre + o.Fibre,
	}
}

// Component is an atomic recipe unit playing one role in a meal.
type Component struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Role        Role         `json:"role"`
	Cuisine     Cuisine      `json:"cuisine"`
	Ingredients []Ingredient `json:"ingredients"`
	TotalCost   float64      `json:"total_cost"`
	Nutrition
	PrepMins     int        `json:"prep_mins"`
	CookMins     int        `json:"cook_mins"`
	Difficulty   Difficulty `json:"difficulty"`
	KidFriendly  bool       `json:"kid_friendly"`
	Instructions []string   `json:"instructions"`
}

// TotalMins is prep plus cook time.
func (c Component) TotalMins() int {
	return c.PrepMins + c.CookMins
}

// IngredientCost sums the estimated cost of every ingredient.
func (c Component) IngredientCost() float64 {
	var sum float64
	for _, ing := range c.Ingredients {
		sum += ing.Cost
	}
	return sum
}

// ComposedMeal aggregates up to three components for one meal slot.
// Totals are derived from the attached components and never edited directly.
type ComposedMeal struct {
	ID        string     `json:"id"`
	Type      MealType   `json:"meal_type"`
	Breakfast *Component `json:"breakfast,omitempty"`
	Base      *Component `json:"base,omitempty"`
	Protein   *Component `json:"protein,omitempty"`
	Vegetable *Component `json:"vegetable,omitempty"`

	Name        string       `json:"name"`
	Totals      Nutrition    `json:"totals"`
	TotalCost   float64      `json:"total_cost"`
	Cuisine     Cuisine      `json:"cuisine"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Components returns the attached components in slot order
// (breakfast, base, protein, vegetable).
func (m ComposedMeal) Components() []*Component {
	var parts []*Component
	for _, c := range []*Component{m.Breakfast, m.Base, m.Protein, m.Vegetable} {
		if c != nil {
			parts = append(parts, c)
		}
	}
	return parts
}

// TotalMins is the longest prep plus cook time among the components.
func (m ComposedMeal) TotalMins() int {
	longest := 0
	for _, c := range m.Components() {
		if c.TotalMins() > longest {
			longest = c.TotalMins()
		}
	}
	return longest
}
