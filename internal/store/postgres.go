package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

// OpenPostgres connects to a Postgres ledger and ensures its tables exist.
func OpenPostgres(ctx context.Context, dsn string) (*SQLStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres ledger: %w: no DSN (set MEALPLAN_DATABASE_URL)", ErrUnavailable)
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, unavailable("open postgres", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, unavailable("ping postgres", err)
	}
	if err := applySchema(ctx, db, postgresSchema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return newSQLStore(db, dialectPostgres), nil
}
