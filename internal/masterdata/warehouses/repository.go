package warehouses

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/shared"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) ([]Warehouse, int, error)
	Get(ctx context.Context, id int64) (Warehouse, error)
	Create(ctx context.Context, warehouse Warehouse) (Warehouse, error)
	Update(ctx context.Context, id int64, warehouse Warehouse) (Warehouse, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const columns = `id, code, name, address, is_active, created_at, updated_at`

var sortColumns = map[string]string{
	"code":       "code",
	"name":       "name",
	"created_at": "created_at",
}

func scan(row pgx.Row) (Warehouse, error) {
	var w Warehouse
	err := row.Scan(&w.ID, &w.Code, &w.Name, &w.Address, &w.IsActive, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Warehouse, int, error) {
	var where shared.Where
	if filters.Search != "" {
		where.Add("(name ILIKE ? OR code ILIKE ? OR address ILIKE ?)", "%"+filters.Search+"%")
	}
	if filters.IsActive != nil {
		where.Add("is_active = ?", *filters.IsActive)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM warehouses`+where.SQL(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, shared.TranslatePG(err, "count warehouses")
	}

	page, args := where.Page(filters)
	query := `SELECT ` + columns + ` FROM warehouses` + where.SQL() + ` ORDER BY ` + filters.OrderBy(sortColumns, "code") + page
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, shared.TranslatePG(err, "list warehouses")
	}
	defer rows.Close()

	warehouses := make([]Warehouse, 0)
	for rows.Next() {
		w, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, total, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Warehouse, error) {
	w, err := scan(r.pool.QueryRow(ctx, `SELECT `+columns+` FROM warehouses WHERE id = $1`, id))
	return w, shared.TranslatePG(err, "warehouse")
}

func (r *repository) Create(ctx context.Context, warehouse Warehouse) (Warehouse, error) {
	w, err := scan(r.pool.QueryRow(ctx,
		`INSERT INTO warehouses (code, name, address, is_active) VALUES ($1, $2, $3, $4) RETURNING `+columns,
		warehouse.Code, warehouse.Name, warehouse.Address, warehouse.IsActive))
	return w, shared.TranslatePG(err, "warehouse")
}

func (r *repository) Update(ctx context.Context, id int64, warehouse Warehouse) (Warehouse, error) {
	w, err := scan(r.pool.QueryRow(ctx,
		`UPDATE warehouses SET code = $1, name = $2, address = $3, is_active = $4, updated_at = NOW() WHERE id = $5 RETURNING `+columns,
		warehouse.Code, warehouse.Name, warehouse.Address, warehouse.IsActive, id))
	return w, shared.TranslatePG(err, "warehouse")
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return shared.TranslatePG(err, "warehouse")
	}
	if tag.RowsAffected() == 0 {
		return shared.TranslatePG(pgx.ErrNoRows, "warehouse")
	}
	return nil
}
