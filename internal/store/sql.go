package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/mealplan/internal/model"
)

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

// Fixed width so created_at sorts correctly as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLStore is a Ledger on database/sql. Queries are written with ?
// placeholders and rebound for Postgres.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

var _ Ledger = (*SQLStore)(nil)

func newSQLStore(db *sql.DB, d dialect) *SQLStore {
	return &SQLStore{db: db, dialect: d}
}

func applySchema(ctx context.Context, db *sql.DB, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return unavailable("creating schema", err)
		}
	}
	return nil
}

// Close closes the database.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) q(query string) string {
	if s.dialect != dialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Receipts returns the receipts for the week containing weekStart.
func (s *SQLStore) Receipts(ctx context.Context, weekStart time.Time) ([]model.Receipt, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`SELECT
		id, week_start, store_type, store_name, amount, purchased_at, notes, created_at
		FROM receipts WHERE week_start = ?
		ORDER BY purchased_at DESC, created_at DESC`), formatDate(WeekStartOf(weekStart)))
	if err != nil {
		return nil, unavailable("querying receipts", err)
	}
	defer func() { _ = rows.Close() }()

	var receipts []model.Receipt
	for rows.Next() {
		var r model.Receipt
		var weekStr, purchasedStr, createdStr string
		var storeName, notes sql.NullString
		if err := rows.Scan(&r.ID, &weekStr, &r.StoreType, &storeName, &r.Amount, &purchasedStr, &notes, &createdStr); err != nil {
			return nil, unavailable("scanning receipt", err)
		}
		r.WeekStart, _ = ParseDate(weekStr)
		r.PurchasedAt, _ = ParseDate(purchasedStr)
		r.CreatedAt, _ = time.Parse(timestampLayout, createdStr)
		if storeName.Valid {
			r.StoreName = storeName.String
		}
		if notes.Valid {
			r.Notes = notes.String
		}
		receipts = append(receipts, r)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("reading receipts", err)
	}
	return receipts, nil
}

// CreateReceipt validates the draft and inserts it.
func (s *SQLStore) CreateReceipt(ctx context.Context, d model.ReceiptDraft) (model.Receipt, error) {
	if err := ValidateDraft(d); err != nil {
		return model.Receipt{}, err
	}
	r := newReceipt(uuid.NewString(), d)

	_, err := s.db.ExecContext(ctx, s.q(`INSERT INTO receipts
		(id, week_start, store_type, store_name, amount, purchased_at, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		r.ID, formatDate(r.WeekStart), string(r.StoreType), nullString(r.StoreName), r.Amount,
		formatDate(r.PurchasedAt), nullString(r.Notes), r.CreatedAt.Format(timestampLayout),
	)
	if err != nil {
		return model.Receipt{}, unavailable("inserting receipt", err)
	}
	return r, nil
}

// DeleteReceipt removes a receipt. Missing ids are ignored.
func (s *SQLStore) DeleteReceipt(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, s.q("DELETE FROM receipts WHERE id = ?"), id); err != nil {
		return unavailable("deleting receipt", err)
	}
	return nil
}

// Members returns the stored household.
func (s *SQLStore) Members(ctx context.Context) ([]model.Member, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, name, age, gender, activity_level, is_primary, sort_order
		FROM members ORDER BY sort_order ASC, is_primary DESC, name ASC`)
	if err != nil {
		return nil, unavailable("querying members", err)
	}
	defer func() { _ = rows.Close() }()

	var members []model.Member
	for rows.Next() {
		var m model.Member
		var primary int
		if err := rows.Scan(&m.ID, &m.Name, &m.Age, &m.Gender, &m.Activity, &primary, &m.SortOrder); err != nil {
			return nil, unavailable("scanning member", err)
		}
		m.Primary = primary != 0
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("reading members", err)
	}
	return members, nil
}

// UpsertMember inserts or replaces a member.
func (s *SQLStore) UpsertMember(ctx context.Context, m model.Member) (model.Member, error) {
	if err := ValidateMember(m); err != nil {
		return model.Member{}, err
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Member{}, unavailable("begin member upsert", err)
	}
	defer func() { _ = tx.Rollback() }()

	if m.Primary {
		if _, err := tx.ExecContext(ctx, s.q("UPDATE members SET is_primary = 0 WHERE id <> ?"), m.ID); err != nil {
			return model.Member{}, unavailable("clearing primary", err)
		}
	}

	_, err = tx.ExecContext(ctx, s.q(`INSERT INTO members
		(id, name, age, gender, activity_level, is_primary, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			gender = excluded.gender,
			activity_level = excluded.activity_level,
			is_primary = excluded.is_primary,
			sort_order = excluded.sort_order`),
		m.ID, m.Name, m.Age, string(m.Gender), string(m.Activity), boolInt(m.Primary), m.SortOrder,
	)
	if err != nil {
		return model.Member{}, unavailable("upserting member", err)
	}
	if err := tx.Commit(); err != nil {
		return model.Member{}, unavailable("commit member upsert", err)
	}
	return m, nil
}

// DeleteMember removes a member. Missing ids are ignored.
func (s *SQLStore) DeleteMember(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, s.q("DELETE FROM members WHERE id = ?"), id); err != nil {
		return unavailable("deleting member", err)
	}
	return nil
}

// Checked returns the checked shopping items for a week.
func (s *SQLStore) Checked(ctx context.Context, weekStart time.Time) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, s.q("SELECT item FROM shopping_checks WHERE week_start = ?"),
		formatDate(WeekStartOf(weekStart)))
	if err != nil {
		return nil, unavailable("querying shopping checks", err)
	}
	defer func() { _ = rows.Close() }()

	checked := make(map[string]bool)
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, unavailable("scanning shopping check", err)
		}
		checked[item] = true
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("reading shopping checks", err)
	}
	return checked, nil
}

// SetChecked ticks or unticks a shopping item for a week.
func (s *SQLStore) SetChecked(ctx context.Context, weekStart time.Time, item string, checked bool) error {
	week := formatDate(WeekStartOf(weekStart))
	var err error
	if checked {
		_, err = s.db.ExecContext(ctx, s.q(`INSERT INTO shopping_checks (week_start, item, checked_at)
			VALUES (?, ?, ?) ON CONFLICT (week_start, item) DO NOTHING`),
			week, item, now().UTC().Format(timestampLayout))
	} else {
		_, err = s.db.ExecContext(ctx, s.q("DELETE FROM shopping_checks WHERE week_start = ? AND item = ?"), week, item)
	}
	if err != nil {
		return unavailable(fmt.Sprintf("updating shopping check %q", item), err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
