package model

// Gender used by the nutrition reference tables.
type Gender string

// Genders.
const (
	Male   Gender = "M"
	Female Gender = "F"
)

// ActivityLevel selects the adult calorie row.
type ActivityLevel string

// Activity levels. LightModerate is only known to the target calculator;
// the member store accepts the other four.
const (
	Sedentary     ActivityLevel = "sedentary"
	Light         ActivityLevel = "light"
	LightModerate ActivityLevel = "light-moderate"
	Moderate      ActivityLevel = "moderate"
	Active        ActivityLevel = "active"
)

// NutritionTargets are a person's daily targets. Grams unless noted:
// calcium and iron in mg, vitamin C in mg.
type NutritionTargets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fibre    int `json:"fibre"`
	Calcium  int `json:"calcium"`
	Iron     int `json:"iron"`
	VitaminC int `json:"vitamin_c"`
}

// Member is one person in the household.
type Member struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Age       int           `json:"age"`
	Gender    Gender        `json:"gender"`
	Activity  ActivityLevel `json:"activity_level"`
	Primary   bool          `json:"is_primary"`
	SortOrder int           `json:"sort_order"`
}

// MemberTargets pairs a member with the targets derived from it.
type MemberTargets struct {
	Member
	Targets NutritionTargets `json:"targets"`
}
