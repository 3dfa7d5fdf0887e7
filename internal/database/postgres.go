package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	MaxConns        = 10
	MinConns        = 2
	MaxConnLifetime = 10 * time.Minute
	MaxConnIdleTime = 5 * time.Minute
)

// accountsSchema is idempotent. Email is unique among accounts that are not
// soft-deleted.
const accountsSchema = `
CREATE TABLE IF NOT EXISTS ` + AccountsTable + ` (
	id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	username   TEXT NOT NULL,
	email      TEXT NOT NULL,
	password   TEXT NOT NULL,
	provider   TEXT NOT NULL DEFAULT 'email',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	deleted_at TIMESTAMPTZ
);

CREATE UNIQUE INDEX IF NOT EXISTS ` + AccountsEmailIndex + `
	ON ` + AccountsTable + ` (email)
	WHERE deleted_at IS NULL;
`

func NewPostgresPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing postgres config: %w", err)
	}

	config.MaxConns = MaxConns
	config.MinConns = MinConns
	config.MaxConnLifetime = MaxConnLifetime
	config.MaxConnIdleTime = MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("error creating postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging postgres pool: %w", err)
	}

	return pool, nil
}

// EnsureAccountsTable creates the accounts table and its email index when
// they are missing.
func EnsureAccountsTable(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, accountsSchema); err != nil {
		return fmt.Errorf("error creating accounts table: %w", err)
	}
	return nil
}
