package product

import (
	"context"
	"database/sql"
)

// SearchOptions narrows a catalog query. Empty fields are ignored.
type SearchOptions struct {
	Name     string
	Category string
	Limit    int
}

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Search(ctx context.Context, opts SearchOptions) ([]Product, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, price, unit, image, category, vendor, description, stock_quantity, created_at`

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	// Most-recently-added first, matching the storefront listing order.
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Unit, &p.Image,
		&p.Category, &p.Vendor, &p.Description, &p.StockQuantity, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Search(ctx context.Context, opts SearchOptions) ([]Product, error) {
	limit := opts.Limit
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR category ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC
		LIMIT $3
	`, opts.Name, opts.Category, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Price, &p.Unit, &p.Image,
			&p.Category, &p.Vendor, &p.Description, &p.StockQuantity, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
