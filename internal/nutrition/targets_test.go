package nutrition

import (
	"math"
	"testing"

	"github.com/theirongolddev/mealplan/internal/model"
)

func TestTargetsAgeTiers(t *testing.T) {
	tests := []struct {
		age    int
		gender model.Gender
		want   int
	}{
		{0, model.Male, 1500},
		{6, model.Female, 1500},
		{7, model.Male, 1700},
		{9, model.Female, 1700},
		{10, model.Male, 2000},
		{12, model.Female, 1900},
		{13, model.Female, 1800},
		{120, model.Male, 2200},
	}
	for _, tt := range tests {
		got := Targets(tt.age, tt.gender, model.Light)
		if got.Calories != tt.want {
			t.Errorf("Targets(%d, %s).Calories = %d, want %d", tt.age, tt.gender, got.Calories, tt.want)
		}
	}
}

func TestTargetsAdultRows(t *testing.T) {
	female := []int{1600, 1800, 1900, 2000, 2200}
	male := []int{2000, 2200, 2300, 2400, 2600}
	levels := []model.ActivityLevel{model.Sedentary, model.Light, model.LightModerate, model.Moderate, model.Active}

	for i, lvl := range levels {
		if got := Targets(30, model.Female, lvl).Calories; got != female[i] {
			t.Errorf("female %s = %d, want %d", lvl, got, female[i])
		}
		if got := Targets(30, model.Male, lvl).Calories; got != male[i] {
			t.Errorf("male %s = %d, want %d", lvl, got, male[i])
		}
	}
}

func TestTargetsPrimarySeedMember(t *testing.T) {
	got := Targets(35, model.Female, model.Light)
	want := model.NutritionTargets{
		Calories: 1800,
		Protein:  55,
		Carbs:    225,
		Fat:      60,
		Fibre:    25,
		Calcium:  800,
		Iron:     18,
		VitaminC: 45,
	}
	if got != want {
		t.Fatalf("Targets(35, F, light) = %+v, want %+v", got, want)
	}
}

func TestTargetsUnknownActivityMatchesLight(t *testing.T) {
	for _, g := range []model.Gender{model.Male, model.Female, "X"} {
		for _, age := range []int{5, 8, 11, 30, 70} {
			light := Targets(age, g, model.Light)
			for _, lvl := range []model.ActivityLevel{"", "couch", "very-active"} {
				if got := Targets(age, g, lvl); got != light {
					t.Fatalf("Targets(%d, %q, %q) = %+v, want light %+v", age, g, lvl, got, light)
				}
			}
		}
	}
}

func TestTargetsTotal(t *testing.T) {
	genders := []model.Gender{model.Male, model.Female, "", "other"}
	levels := []model.ActivityLevel{model.Sedentary, model.Light, model.LightModerate, model.Moderate, model.Active, "bogus"}

	for age := 0; age <= 120; age++ {
		for _, g := range genders {
			for _, lvl := range levels {
				got := Targets(age, g, lvl)
				if got.Calories <= 0 {
					t.Fatalf("Targets(%d, %q, %q).Calories = %d, want > 0", age, g, lvl, got.Calories)
				}
				if got.Protein < 0 || got.Carbs < 0 || got.Fat < 0 || got.Fibre < 0 ||
					got.Calcium < 0 || got.Iron < 0 || got.VitaminC < 0 {
					t.Fatalf("Targets(%d, %q, %q) has negative field: %+v", age, g, lvl, got)
				}
			}
		}
	}
}

func TestTargetsAdultMacroFormula(t *testing.T) {
	for _, g := range []model.Gender{model.Male, model.Female} {
		for lvl, cal := range adultCalories[g] {
			got := Targets(40, g, lvl)
			wantCarbs := int(math.Floor(float64(cal)*0.5/4 + 0.5))
			wantFat := int(math.Floor(float64(cal)*0.3/9 + 0.5))
			if got.Carbs != wantCarbs {
				t.Errorf("%s/%s carbs = %d, want %d", g, lvl, got.Carbs, wantCarbs)
			}
			if got.Fat != wantFat {
				t.Errorf("%s/%s fat = %d, want %d", g, lvl, got.Fat, wantFat)
			}

			// Carbs and fat cover 80% of energy; protein is a fixed amount on top.
			split := float64(got.Carbs*4 + got.Fat*9)
			if math.Abs(split-0.8*float64(cal)) > 10 {
				t.Errorf("%s/%s carbs*4+fat*9 = %.0f, want about %.0f", g, lvl, split, 0.8*float64(cal))
			}
		}
	}
}

func TestTargetsAdultNonFemaleUsesMaleRow(t *testing.T) {
	if got, want := Targets(40, "", model.Moderate), Targets(40, model.Male, model.Moderate); got != want {
		t.Fatalf("Targets(40, \"\") = %+v, want male row %+v", got, want)
	}
	if got, want := Targets(11, "", model.Moderate), girl12; got != want {
		t.Fatalf("Targets(11, \"\") = %+v, want girl row %+v", got, want)
	}
}

func TestCoverage(t *testing.T) {
	if pct, ok := Coverage(520, 1800); !ok || pct != 29 {
		t.Fatalf("Coverage(520, 1800) = %d, %v, want 29, true", pct, ok)
	}
	if _, ok := Coverage(520, 0); ok {
		t.Fatal("Coverage with zero target should not be ok")
	}
}

func TestMacroSplit(t *testing.T) {
	p, c, f := MacroSplit(55, 225, 60)
	if p+c+f != 100 {
		t.Fatalf("MacroSplit sum = %d, want 100", p+c+f)
	}
	if p != 16 || c != 66 || f != 18 {
		t.Fatalf("MacroSplit(55, 225, 60) = %d/%d/%d, want 16/66/18", p, c, f)
	}
	if p, c, f := MacroSplit(0, 0, 0); p != 0 || c != 0 || f != 0 {
		t.Fatalf("MacroSplit(0,0,0) = %d/%d/%d, want 0/0/0", p, c, f)
	}
}

func TestActivityLabel(t *testing.T) {
	if got := ActivityLabel(model.LightModerate); got != "Light–moderate activity" {
		t.Fatalf("ActivityLabel(light-moderate) = %q", got)
	}
	if got := ActivityLabel("gardening"); got != "gardening" {
		t.Fatalf("ActivityLabel(unknown) = %q, want passthrough", got)
	}
}
