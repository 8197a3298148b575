package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/mealplan/internal/model"
)

// MemoryStore is an in-process Ledger. Nothing survives Close.
type MemoryStore struct {
	mu       sync.Mutex
	receipts map[string]model.Receipt
	members  map[string]model.Member
	checks   map[string]map[string]bool
}

var _ Ledger = (*MemoryStore)(nil)

// NewMemory returns an empty in-memory ledger.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		receipts: make(map[string]model.Receipt),
		members:  make(map[string]model.Member),
		checks:   make(map[string]map[string]bool),
	}
}

// Receipts returns the receipts for the week containing weekStart.
func (m *MemoryStore) Receipts(_ context.Context, weekStart time.Time) ([]model.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	week := formatDate(WeekStartOf(weekStart))
	var out []model.Receipt
	for _, r := range m.receipts {
		if formatDate(r.WeekStart) == week {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PurchasedAt.Equal(out[j].PurchasedAt) {
			return out[i].PurchasedAt.After(out[j].PurchasedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// CreateReceipt validates and stores a draft.
func (m *MemoryStore) CreateReceipt(_ context.Context, d model.ReceiptDraft) (model.Receipt, error) {
	if err := ValidateDraft(d); err != nil {
		return model.Receipt{}, err
	}
	r := newReceipt(uuid.NewString(), d)

	m.mu.Lock()
	m.receipts[r.ID] = r
	m.mu.Unlock()
	return r, nil
}

// DeleteReceipt removes a receipt if present.
func (m *MemoryStore) DeleteReceipt(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.receipts, id)
	m.mu.Unlock()
	return nil
}

// Members returns the stored household in display order.
func (m *MemoryStore) Members(_ context.Context) ([]model.Member, error) {
	m.mu.Lock()
	out := make([]model.Member, 0, len(m.members))
	for _, mem := range m.members {
		out = append(out, mem)
	}
	m.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		if out[i].Primary != out[j].Primary {
			return out[i].Primary
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// UpsertMember inserts or replaces a member.
func (m *MemoryStore) UpsertMember(_ context.Context, mem model.Member) (model.Member, error) {
	if err := ValidateMember(mem); err != nil {
		return model.Member{}, err
	}
	if mem.ID == "" {
		mem.ID = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if mem.Primary {
		for id, other := range m.members {
			if id != mem.ID && other.Primary {
				other.Primary = false
				m.members[id] = other
			}
		}
	}
	m.members[mem.ID] = mem
	return mem, nil
}

// DeleteMember removes a member if present.
func (m *MemoryStore) DeleteMember(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.members, id)
	m.mu.Unlock()
	return nil
}

// Checked returns a copy of the checked items for a week.
func (m *MemoryStore) Checked(_ context.Context, weekStart time.Time) (map[string]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]bool)
	for item := range m.checks[formatDate(WeekStartOf(weekStart))] {
		out[item] = true
	}
	return out, nil
}

// SetChecked ticks or unticks a shopping item for a week.
func (m *MemoryStore) SetChecked(_ context.Context, weekStart time.Time, item string, checked bool) error {
	week := formatDate(WeekStartOf(weekStart))

	m.mu.Lock()
	defer m.mu.Unlock()
	if !checked {
		delete(m.checks[week], item)
		return nil
	}
	if m.checks[week] == nil {
		m.checks[week] = make(map[string]bool)
	}
	m.checks[week][item] = true
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }
