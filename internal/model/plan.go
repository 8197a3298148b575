package model

// DayKey identifies one of the six scheduling days.
type DayKey string

// Scheduling days. Sunday has no key of its own.
const (
	Mon DayKey = "mon"
	Tue DayKey = "tue"
	Wed DayKey = "wed"
	Thu DayKey = "thu"
	Fri DayKey = "fri"
	Sat DayKey = "sat"
)

// Days lists the scheduling days in week order.
var Days = []DayKey{Mon, Tue, Wed, Thu, Fri, Sat}

var dayLabels = map[DayKey][2]string{
	Mon: {"Monday", "Mon"},
	Tue: {"Tuesday", "Tue"},
	Wed: {"Wednesday", "Wed"},
	Thu: {"Thursday", "Thu"},
	Fri: {"Friday", "Fri"},
	Sat: {"Saturday", "Sat"},
}

// Label returns the full day name, e.g. "Monday".
func (d DayKey) Label() string {
	return dayLabels[d][0]
}

// Short returns the three-letter day name, e.g. "Mon".
func (d DayKey) Short() string {
	return dayLabels[d][1]
}

// Valid reports whether d is one of the six scheduling days.
func (d DayKey) Valid() bool {
	_, ok := dayLabels[d]
	return ok
}

// ExtraLunch is a second lunch prepared for one named household member.
type ExtraLunch struct {
	For  string       `json:"for"`
	Meal ComposedMeal `json:"meal"`
}

// DayPlan holds one day's meals.
type DayPlan struct {
	Day        DayKey       `json:"day"`
	Breakfast  ComposedMeal `json:"breakfast"`
	Lunch      ComposedMeal `json:"lunch"`
	Dinner     ComposedMeal `json:"dinner"`
	ExtraLunch *ExtraLunch  `json:"extra_lunch,omitempty"`
}

// Meals returns the day's meals in visiting order:
// breakfast, lunch, dinner, then the extra lunch when present.
func (p DayPlan) Meals() []ComposedMeal {
	meals := []ComposedMeal{p.Breakfast, p.Lunch, p.Dinner}
	if p.ExtraLunch != nil {
		meals = append(meals, p.ExtraLunch.Meal)
	}
	return meals
}

// Meal returns the meal in the given slot.
func (p DayPlan) Meal(t MealType) ComposedMeal {
	switch t {
	case Breakfast:
		return p.Breakfast
	case Lunch:
		return p.Lunch
	default:
		return p.Dinner
	}
}

// WeekPlan maps every scheduling day to its plan.
type WeekPlan map[DayKey]DayPlan
