package repositories

import (
	"context"
	"errors"
	"time"

	"order-service/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

// Save inserts the order (with its items) when it has no id yet, and
// updates the existing row otherwise. Each call is atomic.
func (r *OrderRepository) Save(ctx context.Context, order *models.Order) error {
	if order.ID == 0 {
		return r.insert(ctx, order)
	}
	return r.update(ctx, order)
}

func (r *OrderRepository) insert(ctx context.Context, order *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, status, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, order.UserID, order.Status, order.Address, now, now).Scan(
		&order.ID,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_name, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, item.OrderID, item.ProductName, item.Quantity, item.Price).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) update(ctx context.Context, order *models.Order) error {
	query := `
		UPDATE orders
		SET status = $1, address = $2, updated_at = $3
		WHERE id = $4
		RETURNING updated_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		order.Status,
		order.Address,
		time.Now(),
		order.ID,
	).Scan(&order.UpdatedAt)
}

// FindByID returns the order with its items, or nil when no row exists.
func (r *OrderRepository) FindByID(ctx context.Context, id int) (*models.Order, error) {
	query := `SELECT id, user_id, status, address, created_at, updated_at FROM orders WHERE id = $1`

	order := &models.Order{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.Address,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.findItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *OrderRepository) findItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	query := `SELECT id, order_id, product_name, quantity, price FROM order_items WHERE order_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductName,
			&item.Quantity,
			&item.Price,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *OrderRepository) FindAll(ctx context.Context, page, limit int) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	var totalCount int
	countQuery := `SELECT COUNT(*) FROM orders`
	if err := r.db.QueryRow(ctx, countQuery).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, status, address, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Status,
			&order.Address,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}

	return orders, totalCount, rows.Err()
}
