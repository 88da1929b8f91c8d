package order

import (
	"context"
	"database/sql"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, o *Order) error
	GetOrdersByCustomer(ctx context.Context, customerID string) ([]Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status Status) error
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, customerID string, status Status, limit int) ([]Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrderTx writes the order header and all line items in a single
// transaction. Either the whole order lands or none of it does; the client
// never observes line items without a header or vice versa.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Insert order header
	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, customer_id, order_number, tracking_id,
			total_amount, status, delivery_address,
			customer_name, customer_email, customer_phone,
			preferred_delivery_time, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		o.ID,
		o.CustomerID,
		o.OrderNumber,
		o.TrackingID,
		o.TotalAmount,
		o.Status,
		o.DeliveryAddress,
		o.CustomerName,
		o.CustomerEmail,
		o.CustomerPhone,
		o.PreferredDeliveryTime,
		o.CreatedAt,
	)
	if err != nil {
		return err
	}

	// 2. Insert line items
	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (
				id, order_id, product_id, product_name,
				product_image, unit_price, quantity, total_price
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		`,
			item.ID,
			o.ID,
			item.ProductID,
			item.ProductName,
			item.ProductImage,
			item.UnitPrice,
			item.Quantity,
			item.TotalPrice,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

const orderColumns = `id, customer_id, order_number, tracking_id, total_amount, status,
		delivery_address, customer_name, customer_email, customer_phone,
		preferred_delivery_time, created_at`

func (r *repository) GetOrdersByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}

	// Enrich each header with its line items.
	for i := range orders {
		items, err := r.itemsForOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *repository) GetOrderByID(ctx context.Context, orderID string) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, orderID).Scan(
		&o.ID, &o.CustomerID, &o.OrderNumber, &o.TrackingID, &o.TotalAmount, &o.Status,
		&o.DeliveryAddress, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.PreferredDeliveryTime, &o.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.itemsForOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *repository) UpdateOrderStatus(ctx context.Context, orderID string, status Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET status = $1 WHERE id = $2
	`, status, orderID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, err
}

// Search serves the assistant's bounded order queries.
func (r *repository) Search(ctx context.Context, customerID string, status Status, limit int) ([]Order, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE ($1 = '' OR customer_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3
	`, customerID, string(status), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *repository) itemsForOrder(ctx context.Context, orderID string) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, product_name, product_image,
		       unit_price, quantity, total_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.ProductImage,
			&it.UnitPrice, &it.Quantity, &it.TotalPrice,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanOrders(rows *sql.Rows) ([]Order, error) {
	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.OrderNumber, &o.TrackingID, &o.TotalAmount, &o.Status,
			&o.DeliveryAddress, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
			&o.PreferredDeliveryTime, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
