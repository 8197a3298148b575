// Package store persists receipts, household members and shopping-list checks.
//
// Three drivers share one contract: sqlite (the default, a local file),
// postgres (via pgx) and memory (tests and degraded mode). Every failure of
// a backing database wraps ErrUnavailable so callers can fall back to a
// "tracking unavailable" message instead of aborting.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/mealplan/internal/model"
)

// ErrUnavailable marks failures of the backing store.
var ErrUnavailable = errors.New("ledger unavailable")

// ValidationError rejects user input before it reaches the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Ledger is the receipt, member and checklist store.
//
// Deletes are idempotent: removing a missing record is not an error.
type Ledger interface {
	// Receipts returns the receipts of the week containing weekStart,
	// newest purchase first, then newest created first.
	Receipts(ctx context.Context, weekStart time.Time) ([]model.Receipt, error)
	// CreateReceipt validates and persists a draft, returning the stored record.
	CreateReceipt(ctx context.Context, d model.ReceiptDraft) (model.Receipt, error)
	DeleteReceipt(ctx context.Context, id string) error

	// Members returns members by sort order, primary first on ties.
	Members(ctx context.Context) ([]model.Member, error)
	// UpsertMember inserts or replaces a member by ID. Marking a member
	// primary clears the flag on every other member.
	UpsertMember(ctx context.Context, m model.Member) (model.Member, error)
	DeleteMember(ctx context.Context, id string) error

	// Checked returns the shopping items ticked off for a week.
	Checked(ctx context.Context, weekStart time.Time) (map[string]bool, error)
	SetChecked(ctx context.Context, weekStart time.Time, item string, checked bool) error

	Close() error
}

// Drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Options selects and configures a driver.
type Options struct {
	Driver string
	Path   string // sqlite database file
	DSN    string // postgres connection string
}

// Open returns the ledger for opts.Driver. An empty driver means sqlite.
func Open(ctx context.Context, opts Options) (Ledger, error) {
	switch strings.ToLower(opts.Driver) {
	case "", DriverSQLite:
		return OpenSQLite(ctx, opts.Path)
	case DriverPostgres, "pg", "pgx":
		return OpenPostgres(ctx, opts.DSN)
	case DriverMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}
