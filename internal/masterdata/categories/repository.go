package categories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/shared"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) ([]Category, int, error)
	Get(ctx context.Context, id int64) (Category, error)
	Create(ctx context.Context, category Category) (Category, error)
	Update(ctx context.Context, id int64, category Category) (Category, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const columns = `id, code, name, description, created_at, updated_at`

var sortColumns = map[string]string{
	"code":       "code",
	"name":       "name",
	"created_at": "created_at",
}

func scan(row pgx.Row) (Category, error) {
	var c Category
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Category, int, error) {
	var where shared.Where
	if filters.Search != "" {
		where.Add("(name ILIKE ? OR code ILIKE ?)", "%"+filters.Search+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`+where.SQL(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, shared.TranslatePG(err, "count categories")
	}

	page, args := where.Page(filters)
	query := `SELECT ` + columns + ` FROM categories` + where.SQL() + ` ORDER BY ` + filters.OrderBy(sortColumns, "code") + page
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, shared.TranslatePG(err, "list categories")
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		categories = append(categories, c)
	}
	return categories, total, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Category, error) {
	c, err := scan(r.pool.QueryRow(ctx, `SELECT `+columns+` FROM categories WHERE id = $1`, id))
	return c, shared.TranslatePG(err, "category")
}

func (r *repository) Create(ctx context.Context, category Category) (Category, error) {
	c, err := scan(r.pool.QueryRow(ctx,
		`INSERT INTO categories (code, name, description) VALUES ($1, $2, $3) RETURNING `+columns,
		category.Code, category.Name, category.Description))
	return c, shared.TranslatePG(err, "category")
}

func (r *repository) Update(ctx context.Context, id int64, category Category) (Category, error) {
	c, err := scan(r.pool.QueryRow(ctx,
		`UPDATE categories SET code = $1, name = $2, description = $3, updated_at = NOW() WHERE id = $4 RETURNING `+columns,
		category.Code, category.Name, category.Description, id))
	return c, shared.TranslatePG(err, "category")
}

// Delete removes a category. Products keep existing with a NULL category.
func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return shared.TranslatePG(err, "category")
	}
	if tag.RowsAffected() == 0 {
		return shared.TranslatePG(pgx.ErrNoRows, "category")
	}
	return nil
}
