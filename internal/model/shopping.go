package model

import "strings"

// ShoppingItem is one deduplicated ingredient across the week.
// Quantities are kept verbatim, one entry per occurrence.
type ShoppingItem struct {
	Name       string             `json:"name"`
	Category   IngredientCategory `json:"category"`
	Quantities []string           `json:"quantities"`
	Cost       float64            `json:"cost"`
}

// QuantityText joins the quantities for display.
func (s ShoppingItem) QuantityText() string {
	return strings.Join(s.Quantities, " + ")
}

// ShoppingGroup is a display category and its items.
type ShoppingGroup struct {
	Category IngredientCategory `json:"category"`
	Items    []ShoppingItem     `json:"items"`
	Cost     float64            `json:"cost"`
}
