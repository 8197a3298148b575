package pipeline

import (
	"sort"

	"github.com/theirongolddev/mealplan/internal/model"
)

// NearLimitPercent is the usage at which a budget is flagged as near its limit.
const NearLimitPercent = 80

// ComputeBudget compares spend against a budget. Percent used is clamped to
// 100 and is 0 when there is no budget.
func ComputeBudget(spent, budget float64) model.BudgetStatus {
	st := model.BudgetStatus{
		Budget:    budget,
		Spent:     spent,
		Remaining: budget - spent,
	}
	if budget > 0 {
		st.PercentUsed = min(spent/budget, 1) * 100
	}
	st.NearLimit = st.PercentUsed >= NearLimitPercent
	st.Over = spent > budget
	if st.Over {
		st.OverBy = spent - budget
	}
	return st
}

// SumReceipts totals receipt amounts.
func SumReceipts(receipts []model.Receipt) float64 {
	var total float64
	for _, r := range receipts {
		total += r.Amount
	}
	return total
}

// SpendByStore totals receipts per store type, in model.StoreTypes order.
// Store types with no receipts are omitted.
func SpendByStore(receipts []model.Receipt) []model.StoreSpend {
	byStore := make(map[model.StoreType]*model.StoreSpend)
	for _, r := range receipts {
		s, ok := byStore[r.StoreType]
		if !ok {
			s = &model.StoreSpend{Store: r.StoreType}
			byStore[r.StoreType] = s
		}
		s.Amount += r.Amount
		s.Count++
	}

	var out []model.StoreSpend
	for _, st := range model.StoreTypes {
		if s, ok := byStore[st]; ok {
			out = append(out, *s)
			delete(byStore, st)
		}
	}
	// Unknown store types from older rows go last, by name.
	var rest []model.StoreSpend
	for _, s := range byStore {
		rest = append(rest, *s)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Store < rest[j].Store })
	return append(out, rest...)
}

// GroupReceiptsByDay groups receipts by purchase date, newest date first.
// Receipts keep their input order within a day.
func GroupReceiptsByDay(receipts []model.Receipt) []model.ReceiptDay {
	idx := make(map[string]int)
	var days []model.ReceiptDay
	for _, r := range receipts {
		key := r.PurchasedAt.Format("2006-01-02")
		i, ok := idx[key]
		if !ok {
			i = len(days)
			idx[key] = i
			days = append(days, model.ReceiptDay{Date: r.PurchasedAt})
		}
		days[i].Receipts = append(days[i].Receipts, r)
		days[i].Total += r.Amount
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})
	return days
}
