package users

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/shared"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const columns = `id, username, email, is_active, last_login_at, created_at, updated_at`

var sortColumns = map[string]string{
	"username":      "username",
	"email":         "email",
	"last_login_at": "last_login_at",
	"created_at":    "created_at",
}

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.IsActive, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// ListUsers returns a page of users.
func (r *Repository) ListUsers(ctx context.Context, filters shared.ListFilters) ([]User, int, error) {
	var where shared.Where
	if filters.Search != "" {
		where.Add("(username ILIKE ? OR email ILIKE ?)", "%"+filters.Search+"%")
	}
	if filters.IsActive != nil {
		where.Add("is_active = ?", *filters.IsActive)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where.SQL(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, shared.TranslatePG(err, "count users")
	}

	page, args := where.Page(filters)
	rows, err := r.pool.Query(ctx,
		`SELECT `+columns+` FROM users`+where.SQL()+` ORDER BY `+filters.OrderBy(sortColumns, "username")+page, args...)
	if err != nil {
		return nil, 0, shared.TranslatePG(err, "list users")
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

// GetUser fetches a user by ID.
func (r *Repository) GetUser(ctx context.Context, id int64) (User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+columns+` FROM users WHERE id = $1`, id))
	return u, shared.TranslatePG(err, "user")
}

// CreateUser inserts a user with an already hashed password.
func (r *Repository) CreateUser(ctx context.Context, in NewUser) (User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, is_active) VALUES ($1, $2, $3, $4) RETURNING `+columns,
		in.Username, in.Email, in.PasswordHash, in.IsActive))
	return u, shared.TranslatePG(err, "user")
}

// SetActive activates or deactivates a user. Deactivation takes effect on the
// user's next request.
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) (User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`UPDATE users SET is_active = $2, updated_at = NOW() WHERE id = $1 RETURNING `+columns, id, active))
	return u, shared.TranslatePG(err, "user")
}
