package store

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/theirongolddev/mealplan/internal/model"
)

const invalidAmount = "Enter a valid amount."

// plainAmount is digits with an optional decimal part. ParseFloat alone
// would also take hex floats, exponents and underscores.
var plainAmount = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)

// ParseAmount reads a currency amount typed by the user. It accepts an
// optional leading "$" and rounds to cents; the rounded amount must be
// positive.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if !plainAmount.MatchString(s) {
		return 0, &ValidationError{Field: "amount", Message: invalidAmount}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ValidationError{Field: "amount", Message: invalidAmount}
	}
	v = roundCents(v)
	if !validAmount(v) {
		return 0, &ValidationError{Field: "amount", Message: invalidAmount}
	}
	return v, nil
}

// ValidateDraft checks a receipt draft before it is stored.
func ValidateDraft(d model.ReceiptDraft) error {
	if !validAmount(roundCents(d.Amount)) {
		return &ValidationError{Field: "amount", Message: invalidAmount}
	}
	if !d.StoreType.Valid() {
		return &ValidationError{Field: "store_type", Message: "Choose a store: ntuc, bakery, market or other."}
	}
	if d.PurchasedAt.IsZero() {
		return &ValidationError{Field: "purchased_at", Message: "Enter the purchase date."}
	}
	return nil
}

// ValidateMember checks a member record before it is stored.
func ValidateMember(m model.Member) error {
	if strings.TrimSpace(m.Name) == "" {
		return &ValidationError{Field: "name", Message: "Enter a name."}
	}
	if m.Age < 0 {
		return &ValidationError{Field: "age", Message: "Enter a valid age."}
	}
	if m.Gender != model.Male && m.Gender != model.Female {
		return &ValidationError{Field: "gender", Message: "Gender must be M or F."}
	}
	switch m.Activity {
	case model.Sedentary, model.Light, model.Moderate, model.Active:
	default:
		return &ValidationError{Field: "activity_level", Message: "Activity must be sedentary, light, moderate or active."}
	}
	return nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func validAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func newReceipt(id string, d model.ReceiptDraft) model.Receipt {
	return model.Receipt{
		ID:          id,
		WeekStart:   WeekStartOf(d.PurchasedAt),
		StoreType:   d.StoreType,
		StoreName:   strings.TrimSpace(d.StoreName),
		Amount:      roundCents(d.Amount),
		PurchasedAt: DateOf(d.PurchasedAt),
		Notes:       strings.TrimSpace(d.Notes),
		CreatedAt:   now().UTC(),
	}
}
