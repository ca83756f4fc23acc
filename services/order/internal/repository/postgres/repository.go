package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shestoi/GoCommerce/services/order/internal/repository"
)

// Repository реализует OrderRepository поверх PostgreSQL
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository создаёт PostgreSQL репозиторий
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// CreateWithLines сохраняет customer_order и все order_line в одной транзакции.
// Позиции отправляются одним batch, чтобы не делать round-trip на каждую строку.
func (r *Repository) CreateWithLines(ctx context.Context, order repository.Order, lines []repository.OrderLine) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO customer_order (reference, total_amount, payment_method, customer_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		order.Reference, order.TotalAmount, string(order.PaymentMethod), order.CustomerID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	batch := &pgx.Batch{}
	for _, l := range lines {
		batch.Queue(
			`INSERT INTO order_line (order_id, product_id, quantity) VALUES ($1, $2, $3)`,
			id, l.ProductID, l.Quantity,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("insert order lines: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return id, nil
}

const selectOrder = `SELECT id, reference, total_amount, payment_method, customer_id, created_at, last_modified_at
	FROM customer_order`

// List возвращает все заказы
func (r *Repository) List(ctx context.Context) ([]repository.Order, error) {
	rows, err := r.pool.Query(ctx, selectOrder+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	orders, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}
	return orders, nil
}

// GetByID возвращает repository.ErrNotFound, если строки нет
func (r *Repository) GetByID(ctx context.Context, id int64) (repository.Order, error) {
	rows, err := r.pool.Query(ctx, selectOrder+` WHERE id = $1`, id)
	if err != nil {
		return repository.Order{}, fmt.Errorf("query order: %w", err)
	}

	order, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Order{}, repository.ErrNotFound
		}
		return repository.Order{}, fmt.Errorf("scan order: %w", err)
	}
	return order, nil
}

// ListLines возвращает позиции заказа
func (r *Repository) ListLines(ctx context.Context, orderID int64) ([]repository.OrderLine, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, order_id, product_id, quantity FROM order_line WHERE order_id = $1 ORDER BY id`,
		orderID)
	if err != nil {
		return nil, fmt.Errorf("query order lines: %w", err)
	}

	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (repository.OrderLine, error) {
		var l repository.OrderLine
		err := row.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan order lines: %w", err)
	}
	return lines, nil
}

func scanOrder(row pgx.CollectableRow) (repository.Order, error) {
	var (
		o      repository.Order
		method string
	)
	err := row.Scan(&o.ID, &o.Reference, &o.TotalAmount, &method, &o.CustomerID, &o.CreatedAt, &o.LastModifiedAt)
	o.PaymentMethod = repository.PaymentMethod(method)
	return o, err
}
