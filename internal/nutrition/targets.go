// Package nutrition derives daily nutrition targets from age, gender and activity level.
package nutrition

import (
	"math"

	"github.com/theirongolddev/mealplan/internal/model"
)

// Child rows. Ages are inclusive upper bounds.
var (
	upTo6  = model.NutritionTargets{Calories: 1500, Protein: 20, Carbs: 200, Fat: 50, Fibre: 18, Calcium: 600, Iron: 6, VitaminC: 30}
	upTo9  = model.NutritionTargets{Calories: 1700, Protein: 25, Carbs: 225, Fat: 57, Fibre: 20, Calcium: 700, Iron: 8, VitaminC: 35}
	boy12  = model.NutritionTargets{Calories: 2000, Protein: 35, Carbs: 260, Fat: 67, Fibre: 23, Calcium: 1000, Iron: 8, VitaminC: 40}
	girl12 = model.NutritionTargets{Calories: 1900, Protein: 34, Carbs: 245, Fat: 63, Fibre: 23, Calcium: 1000, Iron: 8, VitaminC: 40}
)

var adultCalories = map[model.Gender]map[model.ActivityLevel]int{
	model.Female: {
		model.Sedentary:     1600,
		model.Light:         1800,
		model.LightModerate: 1900,
		model.Moderate:      2000,
		model.Active:        2200,
	},
	model.Male: {
		model.Sedentary:     2000,
		model.Light:         2200,
		model.LightModerate: 2300,
		model.Moderate:      2400,
		model.Active:        2600,
	},
}

// Adult constants that do not scale with calories.
const (
	adultCalcium  = 800
	adultVitaminC = 45
)

type adultFixed struct {
	protein, fibre, iron int
}

var adultByGender = map[model.Gender]adultFixed{
	model.Female: {protein: 55, fibre: 25, iron: 18},
	model.Male:   {protein: 65, fibre: 26, iron: 11},
}

// DefaultActivity is used for activity levels the adult table does not know.
const DefaultActivity = model.Light

// Targets returns daily targets for a person. It never fails: unknown
// activity levels use the light row, and for adults any gender other than
// female uses the male row.
func Targets(age int, gender model.Gender, level model.ActivityLevel) model.NutritionTargets {
	switch {
	case age <= 6:
		return upTo6
	case age <= 9:
		return upTo9
	case age <= 12:
		if gender == model.Male {
			return boy12
		}
		return girl12
	}

	g := model.Male
	if gender == model.Female {
		g = model.Female
	}
	cal, ok := adultCalories[g][level]
	if !ok {
		cal = adultCalories[g][DefaultActivity]
	}
	fixed := adultByGender[g]

	return model.NutritionTargets{
		Calories: cal,
		Protein:  fixed.protein,
		Carbs:    round(float64(cal) * 0.50 / 4),
		Fat:      round(float64(cal) * 0.30 / 9),
		Fibre:    fixed.fibre,
		Calcium:  adultCalcium,
		Iron:     fixed.iron,
		VitaminC: adultVitaminC,
	}
}

// Coverage returns a meal's calories as a whole percentage of a daily target.
// ok is false when there is no usable target.
func Coverage(mealCalories, targetCalories int) (pct int, ok bool) {
	if targetCalories <= 0 {
		return 0, false
	}
	return round(float64(mealCalories) / float64(targetCalories) * 100), true
}

// MacroSplit returns the percentage of grams from protein, carbs and fat.
// Fat takes the remainder so the three always sum to 100 for a non-zero total.
func MacroSplit(protein, carbs, fat int) (p, c, f int) {
	total := protein + carbs + fat
	if total <= 0 {
		return 0, 0, 0
	}
	p = round(float64(protein) / float64(total) * 100)
	c = round(float64(carbs) / float64(total) * 100)
	return p, c, 100 - p - c
}

// ActivityLabel returns a human description of an activity level.
func ActivityLabel(level model.ActivityLevel) string {
	switch level {
	case model.Sedentary:
		return "Sedentary"
	case model.Light:
		return "Light activity"
	case model.LightModerate:
		return "Light–moderate activity"
	case model.Moderate:
		return "Moderate activity"
	case model.Active:
		return "Active"
	}
	return string(level)
}

// round rounds half up; inputs are non-negative.
func round(f float64) int {
	return int(math.Floor(f + 0.5))
}
