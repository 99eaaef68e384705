package rbac

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odyssey-erp/odyssey-warehouse/internal/platform/db"
)

var (
	// ErrDuplicate indicates a role slug that already exists.
	ErrDuplicate = errors.New("rbac: duplicate slug")
	// ErrUnknownPermission indicates a permission slug with no matching row.
	ErrUnknownPermission = errors.New("rbac: unknown permission")
)

// Repository provides PostgreSQL backed persistence for roles and grants.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GrantsForAccount returns one row per (role, permission) pair reachable from
// the account. Role activity is not filtered here.
func (r *Repository) GrantsForAccount(ctx context.Context, accountID int64) ([]Grant, error) {
	rows, err := r.pool.Query(ctx, `
SELECT r.slug, COALESCE(p.slug, '')
FROM user_roles ur
JOIN roles r ON r.id = ur.role_id
LEFT JOIN role_permissions rp ON rp.role_id = r.id
LEFT JOIN permissions p ON p.id = rp.permission_id
WHERE ur.user_id = $1`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []Grant
	for rows.Next() {
		var g Grant
		if err := rows.Scan(&g.RoleSlug, &g.PermissionSlug); err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}
	return grants, rows.Err()
}

const roleColumns = `id, slug, name, is_active, created_at, updated_at`

func scanRole(row pgx.Row) (Role, error) {
	var role Role
	err := row.Scan(&role.ID, &role.Slug, &role.Name, &role.IsActive, &role.CreatedAt, &role.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Role{}, ErrNotFound
	}
	return role, err
}

// ListRoles returns all roles ordered by slug.
func (r *Repository) ListRoles(ctx context.Context) ([]Role, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+roleColumns+` FROM roles ORDER BY slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]Role, 0)
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// CreateRole inserts a new active role.
func (r *Repository) CreateRole(ctx context.Context, slug, name string) (Role, error) {
	role, err := scanRole(r.pool.QueryRow(ctx,
		`INSERT INTO roles (slug, name, is_active) VALUES ($1, $2, TRUE) RETURNING `+roleColumns, slug, name))
	if db.IsUniqueViolation(err) {
		return Role{}, fmt.Errorf("%w: %s", ErrDuplicate, slug)
	}
	return role, err
}

// SetRoleActive toggles a role's active flag.
func (r *Repository) SetRoleActive(ctx context.Context, id int64, active bool) (Role, error) {
	return scanRole(r.pool.QueryRow(ctx,
		`UPDATE roles SET is_active = $2, updated_at = NOW() WHERE id = $1 RETURNING `+roleColumns, id, active))
}

// ListPermissions returns all permissions ordered by slug.
func (r *Repository) ListPermissions(ctx context.Context) ([]Permission, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, slug, description FROM permissions ORDER BY slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perms := make([]Permission, 0)
	for rows.Next() {
		var p Permission
		if err := rows.Scan(&p.ID, &p.Slug, &p.Description); err != nil {
			return nil, err
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}

// ListRolePermissions returns the permission slugs attached to a role.
func (r *Repository) ListRolePermissions(ctx context.Context, roleID int64) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
SELECT p.slug FROM role_permissions rp
JOIN permissions p ON p.id = rp.permission_id
WHERE rp.role_id = $1
ORDER BY p.slug`, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// SetRolePermissions replaces the role's permission set atomically. slugs must
// be deduplicated by the caller.
func (r *Repository) SetRolePermissions(ctx context.Context, roleID int64, slugs []string) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var locked int64
		err := tx.QueryRow(ctx, `SELECT id FROM roles WHERE id = $1 FOR UPDATE`, roleID).Scan(&locked)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, roleID); err != nil {
			return err
		}
		if len(slugs) == 0 {
			return nil
		}
		tag, err := tx.Exec(ctx, `
INSERT INTO role_permissions (role_id, permission_id)
SELECT $1, id FROM permissions WHERE slug = ANY($2)`, roleID, slugs)
		if err != nil {
			return err
		}
		if tag.RowsAffected() != int64(len(slugs)) {
			return ErrUnknownPermission
		}
		return nil
	})
}

// AssignRole links a role to a user. Repeated assignment is a no-op.
func (r *Repository) AssignRole(ctx context.Context, userID, roleID int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, userID, roleID)
	if db.IsForeignKeyViolation(err) {
		return ErrNotFound
	}
	return err
}

// RemoveRole unlinks a role from a user.
func (r *Repository) RemoveRole(ctx context.Context, userID, roleID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1 AND role_id = $2`, userID, roleID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ GrantStore = (*Repository)(nil)
