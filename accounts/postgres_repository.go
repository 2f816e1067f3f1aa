package accounts

import (
	"context"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

var _ Repo = (*PostgresRepo)(nil)

// PostgresRepo is a pgx-backed account store. The accounts table carries
// unique constraints on username and email (see migrations), which this
// repo maps onto DuplicateError.
type PostgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(pool *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{pool: pool}
}

func (r *PostgresRepo) Create(ctx context.Context, account *Account) (*Account, error) {
	query := `INSERT INTO accounts (username, email, password_hash, first_name, last_name)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, date_joined`

	err := r.pool.QueryRow(ctx, query,
		account.Username, account.Email, account.PasswordHash, account.FirstName, account.LastName,
	).Scan(&account.ID, &account.DateJoined)

	if err != nil {
		if dup := duplicateFromPgError(err, account); dup != nil {
			return nil, dup
		}
		return nil, errors.Wrap(err, "[PostgresRepo.Create] insert account")
	}

	return account, nil
}

func (r *PostgresRepo) GetByUsername(ctx context.Context, username string) (*Account, error) {
	return r.get(ctx, "username = $1", username)
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, email string) (*Account, error) {
	return r.get(ctx, "email = $1", email)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (*Account, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *PostgresRepo) get(ctx context.Context, where string, arg any) (*Account, error) {
	query := `SELECT id, username, email, password_hash, first_name, last_name, date_joined
	          FROM accounts WHERE ` + where

	account := &Account{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash,
		&account.FirstName, &account.LastName, &account.DateJoined,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "[PostgresRepo.get] select account")
	}

	return account, nil
}

// duplicateFromPgError maps a unique-violation error to a DuplicateError
// naming the conflicting field. Returns nil for any other error.
func duplicateFromPgError(err error, account *Account) *DuplicateError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return &DuplicateError{Field: "email", Value: account.Email}
	}
	return &DuplicateError{Field: "username", Value: account.Username}
}
