package products

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/odyssey-erp/odyssey-warehouse/internal/masterdata/shared"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) ([]Product, int, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, id int64, product Product) (Product, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const columns = `id, code, name, description, category_id, unit, price, is_active, created_at, updated_at`

var sortColumns = map[string]string{
	"code":       "code",
	"name":       "name",
	"price":      "price",
	"created_at": "created_at",
}

func scan(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.CategoryID, &p.Unit, &p.Price, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Product, int, error) {
	var where shared.Where
	if filters.CategoryID != nil {
		where.Add("category_id = ?", *filters.CategoryID)
	}
	if filters.Search != "" {
		where.Add("(name ILIKE ? OR code ILIKE ?)", "%"+filters.Search+"%")
	}
	if filters.IsActive != nil {
		where.Add("is_active = ?", *filters.IsActive)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where.SQL(), where.Args()...).Scan(&total); err != nil {
		return nil, 0, shared.TranslatePG(err, "count products")
	}

	page, args := where.Page(filters)
	query := `SELECT ` + columns + ` FROM products` + where.SQL() + ` ORDER BY ` + filters.OrderBy(sortColumns, "code") + page
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, shared.TranslatePG(err, "list products")
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	p, err := scan(r.db.QueryRow(ctx, `SELECT `+columns+` FROM products WHERE id = $1`, id))
	return p, shared.TranslatePG(err, "product")
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	query := `INSERT INTO products (code, name, description, category_id, unit, price, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING ` + columns
	p, err := scan(r.db.QueryRow(ctx, query, product.Code, product.Name, product.Description, product.CategoryID, product.Unit, product.Price, product.IsActive))
	return p, shared.TranslatePG(err, "product")
}

func (r *repository) Update(ctx context.Context, id int64, product Product) (Product, error) {
	query := `UPDATE products SET code = $1, name = $2, description = $3, category_id = $4, unit = $5, price = $6, is_active = $7, updated_at = NOW()
WHERE id = $8 RETURNING ` + columns
	p, err := scan(r.db.QueryRow(ctx, query, product.Code, product.Name, product.Description, product.CategoryID, product.Unit, product.Price, product.IsActive, id))
	return p, shared.TranslatePG(err, "product")
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return shared.TranslatePG(err, "product")
	}
	if tag.RowsAffected() == 0 {
		return shared.TranslatePG(pgx.ErrNoRows, "product")
	}
	return nil
}
