package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // register sqlite driver
)

// OpenSQLite opens or creates the ledger database at dbPath.
func OpenSQLite(ctx context.Context, dbPath string) (*SQLStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("sqlite ledger: %w: no database path", ErrUnavailable)
	}
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, unavailable("creating ledger dir", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, unavailable("opening ledger db", err)
	}

	if err := applySchema(ctx, db, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return newSQLStore(db, dialectSQLite), nil
}
