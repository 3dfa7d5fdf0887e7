package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prudhvinik1/accounts/internal/database"
	"github.com/prudhvinik1/accounts/internal/models"
)

const (
	DefaultWriteTimeout = 10 * time.Second

	pgUniqueViolation = "23505"
)

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresAccountRepository struct {
	db           rowQuerier
	writeTimeout time.Duration
}

func NewPostgresAccountRepository(pool *pgxpool.Pool, writeTimeout time.Duration) *PostgresAccountRepository {
	return newPostgresAccountRepository(pool, writeTimeout)
}

func newPostgresAccountRepository(db rowQuerier, writeTimeout time.Duration) *PostgresAccountRepository {
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}
	return &PostgresAccountRepository{db: db, writeTimeout: writeTimeout}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, account models.Account) (*models.Account, error) {
	const op = "postgres.accounts.Create"
	if err := ctx.Err(); err != nil {
		return nil, storageErr(op, err)
	}

	// Once started, the insert runs to completion so the caller never loses
	// track of a row that was written.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.writeTimeout)
	defer cancel()

	row := toAccountRow(account)
	query := `INSERT INTO accounts (username, email, password, provider)
	          VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), 'email'))
	          RETURNING id, provider, created_at, updated_at, deleted_at`

	err := r.db.QueryRow(writeCtx, query, row.Username, row.Email, row.Password, row.Provider).
		Scan(&row.ID, &row.Provider, &row.CreatedAt, &row.UpdatedAt, &row.DeletedAt)
	if err != nil {
		if isDuplicateEmail(err) {
			return nil, storageErr(op, ErrDuplicateEmail)
		}
		return nil, storageErr(op, err)
	}
	return accountFromRow(row), nil
}

func (r *PostgresAccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	if email == "" {
		return nil, nil
	}

	query := `SELECT id, username, email, password, provider, created_at, updated_at, deleted_at
	          FROM accounts
	          WHERE email = $1 AND deleted_at IS NULL`

	return r.findOne(ctx, "postgres.accounts.FindByEmail", query, email)
}

func (r *PostgresAccountRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	rowID, ok := parseAccountRowID(id)
	if !ok {
		return nil, nil
	}

	query := `SELECT id, username, email, password, provider, created_at, updated_at, deleted_at
	          FROM accounts
	          WHERE id = $1 AND deleted_at IS NULL`

	return r.findOne(ctx, "postgres.accounts.FindByID", query, rowID)
}

func (r *PostgresAccountRepository) findOne(ctx context.Context, op, query string, arg any) (*models.Account, error) {
	var row accountRow
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&row.ID,
		&row.Username,
		&row.Email,
		&row.Password,
		&row.Provider,
		&row.CreatedAt,
		&row.UpdatedAt,
		&row.DeletedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(op, err)
	}
	return accountFromRow(row), nil
}

func isDuplicateEmail(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == database.AccountsEmailIndex
}
