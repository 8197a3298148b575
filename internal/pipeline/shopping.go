package pipeline

import (
	"github.com/theirongolddev/mealplan/internal/model"
)

// AggregateShopping collapses every ingredient of the week into one item per
// ingredient name, in first-seen order. The first occurrence fixes the
// category; later occurrences append their quantity and add their cost.
func AggregateShopping(w model.WeekPlan) []model.ShoppingItem {
	index := make(map[string]int)
	var items []model.ShoppingItem

	for _, m := range AllMeals(w) {
		for _, ing := range m.Ingredients {
			if i, ok := index[ing.Name]; ok {
				items[i].Quantities = append(items[i].Quantities, ing.Quantity)
				items[i].Cost += ing.Cost
				continue
			}
			index[ing.Name] = len(items)
			items = append(items, model.ShoppingItem{
				Name:       ing.Name,
				Category:   ing.Category,
				Quantities: []string{ing.Quantity},
				Cost:       ing.Cost,
			})
		}
	}
	return items
}

// GroupShopping arranges items under the fixed category order. Items whose
// category is not in model.CategoryOrder are left out, as are empty groups.
func GroupShopping(items []model.ShoppingItem) []model.ShoppingGroup {
	byCat := make(map[model.IngredientCategory][]model.ShoppingItem)
	for _, it := range items {
		byCat[it.Category] = append(byCat[it.Category], it)
	}

	var groups []model.ShoppingGroup
	for _, cat := range model.CategoryOrder {
		catItems := byCat[cat]
		if len(catItems) == 0 {
			continue
		}
		g := model.ShoppingGroup{Category: cat, Items: catItems}
		for _, it := range catItems {
			g.Cost += it.Cost
		}
		groups = append(groups, g)
	}
	return groups
}

// ShoppingTotal sums the cost of all items.
func ShoppingTotal(items []model.ShoppingItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Cost
	}
	return total
}

// CheckedTotal sums the cost of items whose names are checked.
func CheckedTotal(items []model.ShoppingItem, checked map[string]bool) float64 {
	var total float64
	for _, it := range items {
		if checked[it.Name] {
			total += it.Cost
		}
	}
	return total
}

// FilterUnchecked returns the items still to buy.
func FilterUnchecked(items []model.ShoppingItem, checked map[string]bool) []model.ShoppingItem {
	var out []model.ShoppingItem
	for _, it := range items {
		if !checked[it.Name] {
			out = append(out, it)
		}
	}
	return out
}
