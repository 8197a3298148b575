package model

import "time"

// StoreType is where a receipt was spent.
type StoreType string

// Store types.
const (
	StoreNTUC   StoreType = "ntuc"
	StoreBakery StoreType = "bakery"
	StoreMarket StoreType = "market"
	StoreOther  StoreType = "other"
)

// StoreTypes lists store types in display order.
var StoreTypes = []StoreType{StoreNTUC, StoreBakery, StoreMarket, StoreOther}

// Label returns the display name of the store type.
func (s StoreType) Label() string {
	switch s {
	case StoreNTUC:
		return "NTUC FairPrice"
	case StoreBakery:
		return "Bakery"
	case StoreMarket:
		return "Wet Market"
	case StoreOther:
		return "Other"
	}
	return string(s)
}

// Valid reports whether s is a known store type.
func (s StoreType) Valid() bool {
	switch s {
	case StoreNTUC, StoreBakery, StoreMarket, StoreOther:
		return true
	}
	return false
}

// Receipt is a persisted grocery purchase. Dates carry no time of day.
type Receipt struct {
	ID          string    `json:"id"`
	WeekStart   time.Time `json:"week_start"`
	StoreType   StoreType `json:"store_type"`
	StoreName   string    `json:"store_name,omitempty"`
	Amount      float64   `json:"amount"`
	PurchasedAt time.Time `json:"purchased_at"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DisplayName is the store name, or the store type label when unnamed.
func (r Receipt) DisplayName() string {
	if r.StoreName != "" {
		return r.StoreName
	}
	return r.StoreType.Label()
}

// ReceiptDraft is user input for a new receipt.
type ReceiptDraft struct {
	StoreType   StoreType
	StoreName   string
	Amount      float64
	PurchasedAt time.Time
	Notes       string
}

// BudgetStatus compares a week's spend against its budget.
type BudgetStatus struct {
	Budget      float64 `json:"budget"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	PercentUsed float64 `json:"percent_used"`
	NearLimit   bool    `json:"near_limit"`
	Over        bool    `json:"over"`
	OverBy      float64 `json:"over_by"`
}

// StoreSpend totals receipts for one store type.
type StoreSpend struct {
	Store  StoreType `json:"store_type"`
	Amount float64   `json:"amount"`
	Count  int       `json:"count"`
}

// ReceiptDay groups receipts bought on the same date.
type ReceiptDay struct {
	Date     time.Time `json:"date"`
	Receipts []Receipt `json:"receipts"`
	Total    float64   `json:"total"`
}
