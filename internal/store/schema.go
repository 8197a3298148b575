package store

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS receipts (
    id            TEXT PRIMARY KEY,
    week_start    TEXT NOT NULL,
    store_type    TEXT NOT NULL,
    store_name    TEXT,
    amount        REAL NOT NULL CHECK (amount > 0),
    purchased_at  TEXT NOT NULL,
    notes         TEXT,
    created_at    TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_receipts_week ON receipts(week_start)`,
	`CREATE TABLE IF NOT EXISTS members (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    age             INTEGER NOT NULL CHECK (age >= 0),
    gender          TEXT NOT NULL,
    activity_level  TEXT NOT NULL,
    is_primary      INTEGER NOT NULL DEFAULT 0,
    sort_order      INTEGER NOT NULL DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS shopping_checks (
    week_start    TEXT NOT NULL,
    item          TEXT NOT NULL,
    checked_at    TEXT NOT NULL,
    PRIMARY KEY (week_start, item)
)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS receipts (
    id            TEXT PRIMARY KEY,
    week_start    TEXT NOT NULL,
    store_type    TEXT NOT NULL,
    store_name    TEXT,
    amount        DOUBLE PRECISION NOT NULL CHECK (amount > 0),
    purchased_at  TEXT NOT NULL,
    notes         TEXT,
    created_at    TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_receipts_week ON receipts(week_start)`,
	`CREATE TABLE IF NOT EXISTS members (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    age             INTEGER NOT NULL CHECK (age >= 0),
    gender          TEXT NOT NULL,
    activity_level  TEXT NOT NULL,
    is_primary      INTEGER NOT NULL DEFAULT 0,
    sort_order      INTEGER NOT NULL DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS shopping_checks (
    week_start    TEXT NOT NULL,
    item          TEXT NOT NULL,
    checked_at    TEXT NOT NULL,
    PRIMARY KEY (week_start, item)
)`,
}
