// Package household holds the members the plan feeds and their daily targets.
package household

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/nutrition"
)

// ErrMultiplePrimary is returned when more than one member is marked primary.
var ErrMultiplePrimary = errors.New("household: more than one primary member")

// Seed returns the default household.
func Seed() []model.Member {
	return []model.Member{
		{ID: "yeeling", Name: "Yeeling", Age: 35, Gender: model.Female, Activity: model.Light, Primary: true, SortOrder: 0},
		{ID: "zann", Name: "Zann", Age: 40, Gender: model.Female, Activity: model.Light, SortOrder: 1},
		{ID: "maria", Name: "Maria", Age: 41, Gender: model.Female, Activity: model.Light, SortOrder: 2},
		{ID: "aleric", Name: "Aleric", Age: 11, Gender: model.Male, Activity: model.Moderate, SortOrder: 3},
		{ID: "alexis", Name: "Alexis", Age: 7, Gender: model.Male, Activity: model.Moderate, SortOrder: 4},
		{ID: "axel", Name: "Axel", Age: 6, Gender: model.Male, Activity: model.Moderate, SortOrder: 5},
		{ID: "marcus", Name: "Marcus", Age: 43, Gender: model.Male, Activity: model.Light, SortOrder: 6},
	}
}

// Directory is a read-only view of the household with computed targets.
type Directory struct {
	members []model.MemberTargets
	primary int
}

// Totals sums daily targets across the household.
type Totals struct {
	Members  int `json:"members"`
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
	Fibre    int `json:"fibre"`
}

// New builds a directory from member records. Members are ordered by
// SortOrder, with the primary member first on ties.
func New(members []model.Member) (*Directory, error) {
	d := &Directory{primary: -1}

	sorted := append([]model.Member(nil), members...)
	SortMembers(sorted)

	for i, m := range sorted {
		if m.Name == "" {
			return nil, fmt.Errorf("household: member %d has no name", i)
		}
		if m.Age < 0 {
			return nil, fmt.Errorf("household: %s has negative age %d", m.Name, m.Age)
		}
		if m.Primary {
			if d.primary >= 0 {
				return nil, fmt.Errorf("%w: %s and %s", ErrMultiplePrimary, d.members[d.primary].Name, m.Name)
			}
			d.primary = i
		}
		d.members = append(d.members, model.MemberTargets{
			Member:  m,
			Targets: nutrition.Targets(m.Age, m.Gender, m.Activity),
		})
	}
	return d, nil
}

// SortMembers orders members by SortOrder, then primary first.
func SortMembers(members []model.Member) {
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].SortOrder != members[j].SortOrder {
			return members[i].SortOrder < members[j].SortOrder
		}
		return members[i].Primary && !members[j].Primary
	})
}

// Members returns every member with targets in display order.
func (d *Directory) Members() []model.MemberTargets {
	out := make([]model.MemberTargets, len(d.members))
	copy(out, d.members)
	return out
}

// Primary returns the primary member, if there is one.
func (d *Directory) Primary() (model.MemberTargets, bool) {
	if d.primary < 0 {
		return model.MemberTargets{}, false
	}
	return d.members[d.primary], true
}

// Find looks a member up by name, ignoring case.
func (d *Directory) Find(name string) (model.MemberTargets, bool) {
	for _, m := range d.members {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return model.MemberTargets{}, false
}

// Coverage returns the meal's calories as a percentage of the primary
// member's daily target. ok is false without a primary member.
func (d *Directory) Coverage(meal model.ComposedMeal) (pct int, ok bool) {
	p, ok := d.Primary()
	if !ok {
		return 0, false
	}
	return nutrition.Coverage(meal.Totals.Calories, p.Targets.Calories)
}

// Totals sums every member's targets.
func (d *Directory) Totals() Totals {
	t := Totals{Members: len(d.members)}
	for _, m := range d.members {
		t.Calories += m.Targets.Calories
		t.Protein += m.Targets.Protein
		t.Carbs += m.Targets.Carbs
		t.Fat += m.Targets.Fat
		t.Fibre += m.Targets.Fibre
	}
	return t
}
