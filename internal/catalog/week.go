package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/pipeline"
)

// plate names the base, protein and vegetable of a lunch or dinner by id.
type plate struct {
	base, protein, vegetable string
}

type dayLayout struct {
	day       model.DayKey
	breakfast string
	lunch     plate
	dinner    plate
	extraFor  string
	extra     plate
}

var weekLayout = []dayLayout{
	{
		day:       model.Mon,
		breakfast: "kaya-toast-eggs",
		lunch:     plate{"steamed-white-rice", "steamed-fish", "kai-lan-oyster"},
		dinner:    plate{"steamed-brown-rice", "sambal-chicken", "long-beans"},
		extraFor:  "Marcus",
		extra:     plate{"steamed-brown-rice", "lemon-herb-chicken", "spinach-garlic"},
	},
	{
		day:       model.Tue,
		breakfast: "roti-prata-dhal",
		lunch:     plate{"plain-noodles", "tofu-minced-pork", "bak-choy"},
		dinner:    plate{"steamed-white-rice", "braised-pork-belly", "cabbage-stir-fry"},
	},
	{
		day:       model.Wed,
		breakfast: "fried-beehoon-breakfast",
		lunch:     plate{"plain-beehoon", "prawn-omelette", "spinach-garlic"},
		dinner:    plate{"steamed-brown-rice", "chicken-curry", "mixed-veg"},
		extraFor:  "Marcus",
		extra:     plate{"steamed-white-rice", "fried-egg", "cucumber-tomato"},
	},
	{
		day:       model.Thu,
		breakfast: "nasi-lemak-simple",
		lunch:     plate{"steamed-white-rice", "sweet-sour-pork", "tofu-veg"},
		dinner:    plate{"steamed-white-rice", "teriyaki-chicken", "bak-choy"},
	},
	{
		day:       model.Fri,
		breakfast: "overnight-oats",
		lunch:     plate{"plain-noodles", "fried-egg", "mixed-veg"},
		dinner:    plate{"steamed-white-rice", "butter-chicken", "cucumber-tomato"},
		extraFor:  "Marcus",
		extra:     plate{"steamed-brown-rice", "chicken-curry", "long-beans"},
	},
	{
		day:       model.Sat,
		breakfast: "congee",
		lunch:     plate{"wholemeal-bread", "lemon-herb-chicken", "cucumber-tomato"},
		dinner:    plate{"steamed-white-rice", "steamed-fish", "cabbage-stir-fry"},
	},
}

func (c *Catalog) assemble(days []dayLayout) (model.WeekPlan, error) {
	week := make(model.WeekPlan, len(days))
	var errs []error

	for _, d := range days {
		if !d.day.Valid() {
			errs = append(errs, fmt.Errorf("unknown day %q", d.day))
			continue
		}
		if _, dup := week[d.day]; dup {
			errs = append(errs, fmt.Errorf("%s: planned twice", d.day))
			continue
		}

		prefix := string(d.day)
		bf, err := c.lookup(d.breakfast, model.RoleBreakfast)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s breakfast: %w", prefix, err))
		}
		lunch, err := c.composePlate(prefix+"-lunch", model.Lunch, d.lunch)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s lunch: %w", prefix, err))
		}
		dinner, err := c.composePlate(prefix+"-dinner", model.Dinner, d.dinner)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s dinner: %w", prefix, err))
		}

		plan := model.DayPlan{
			Day:       d.day,
			Breakfast: pipeline.ComposeMeal(prefix+"-breakfast", model.Breakfast, pipeline.Slots{Breakfast: bf}),
			Lunch:     lunch,
			Dinner:    dinner,
		}

		if d.extraFor != "" {
			id := prefix + "-lunch-" + strings.ToLower(d.extraFor)
			extra, err := c.composePlate(id, model.Lunch, d.extra)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s lunch for %s: %w", prefix, d.extraFor, err))
			}
			plan.ExtraLunch = &model.ExtraLunch{For: d.extraFor, Meal: extra}
		}
		week[d.day] = plan
	}

	for _, day := range model.Days {
		if _, ok := week[day]; !ok {
			errs = append(errs, fmt.Errorf("%s: no plan", day))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return week, nil
}

func (c *Catalog) composePlate(id string, t model.MealType, p plate) (model.ComposedMeal, error) {
	var errs []error
	slot := func(compID string, role model.Role) *model.Component {
		if compID == "" {
			return nil
		}
		comp, err := c.lookup(compID, role)
		if err != nil {
			errs = append(errs, err)
		}
		return comp
	}
	s := pipeline.Slots{
		Base:      slot(p.base, model.RoleBase),
		Protein:   slot(p.protein, model.RoleProtein),
		Vegetable: slot(p.vegetable, model.RoleVegetable),
	}
	return pipeline.ComposeMeal(id, t, s), errors.Join(errs...)
}

func (c *Catalog) lookup(id string, role model.Role) (*model.Component, error) {
	comp, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown component %q", id)
	}
	if comp.Role != role {
		return nil, fmt.Errorf("%s is a %s, not a %s", id, comp.Role, role)
	}
	return comp, nil
}
