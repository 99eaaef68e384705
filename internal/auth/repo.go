package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines persistence operations for the auth module.
type Repository interface {
	AccountStore
	FindByLogin(ctx context.Context, login string) (*Account, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const accountColumns = `id, username, email, password_hash, is_active, last_login_at, created_at, updated_at`

func scanAccount(row pgx.Row) (*Account, error) {
	var a Account
	if err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.IsActive, &a.LastLoginAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindAccountByID fetches an account by primary key.
func (r *PGRepository) FindAccountByID(ctx context.Context, id int64) (*Account, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM users WHERE id = $1`, id)
	account, err := scanAccount(row)
	if err != nil && !errors.Is(err, ErrAccountNotFound) {
		return nil, fmt.Errorf("auth: find account %d: %w", id, err)
	}
	return account, err
}

// FindByLogin fetches an account by username or email (case-insensitive).
func (r *PGRepository) FindByLogin(ctx context.Context, login string) (*Account, error) {
	login = strings.TrimSpace(login)
	row := r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM users WHERE lower(username) = lower($1) OR lower(email) = lower($1) LIMIT 1`,
		login)
	account, err := scanAccount(row)
	if err != nil && !errors.Is(err, ErrAccountNotFound) {
		return nil, fmt.Errorf("auth: find account by login: %w", err)
	}
	return account, err
}

// TouchLastLogin stamps the last successful login time.
func (r *PGRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at.UTC())
	if err != nil {
		return fmt.Errorf("auth: touch last login %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

var _ Repository = (*PGRepository)(nil)
