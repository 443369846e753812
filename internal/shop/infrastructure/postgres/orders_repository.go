package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id::text, listing_id::text, player_id::text, amount, total_price, status, created_at`

type OrdersRepository struct {
	querier database.Querier
}

func NewOrdersRepository(querier database.Querier) *OrdersRepository {
	return &OrdersRepository{
		querier: querier,
	}
}

func (ordr *OrdersRepository) CreateOrder(ctx context.Context, querier database.Querier, order domain.Order) (domain.Order, error) {
	insertOrderSQL := `INSERT INTO shop_orders (id, listing_id, player_id, amount, total_price, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + orderColumns

	row := querier.QueryRow(ctx, insertOrderSQL,
		order.Id, order.ListingId, order.PlayerId, order.Amount, order.TotalPrice, string(domain.OrderStatusPaid))

	created, err := scanOrder(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Order{}, &domain.ListingNotFoundError{Msg: fmt.Sprintf("listing %s not found", order.ListingId)}
		}

		return domain.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	return created, nil
}

func (ordr *OrdersRepository) TransitionStatus(ctx context.Context, querier database.Querier, orderId string, from, to domain.OrderStatus) (domain.Order, error) {
	transitionSQL := `UPDATE shop_orders SET status = $1 WHERE id = $2 AND status = $3 RETURNING ` + orderColumns

	order, err := scanOrder(querier.QueryRow(ctx, transitionSQL, string(to), orderId, string(from)))
	if err == nil {
		return order, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}

	currentStatusSQL := `SELECT status FROM shop_orders WHERE id = $1`

	var current string
	err = querier.QueryRow(ctx, currentStatusSQL, orderId).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, &domain.OrderNotFoundError{Msg: fmt.Sprintf("order %s not found", orderId)}
		}

		return domain.Order{}, fmt.Errorf("failed to fetch order status: %w", err)
	}

	return domain.Order{}, &domain.InvalidOrderStateError{
		Msg: fmt.Sprintf("order %s is %s, expected %s", orderId, current, from),
	}
}

func (ordr *OrdersRepository) LockPaidOrders(ctx context.Context, querier database.Querier, playerId string, limit int) ([]domain.Order, error) {
	lockOrdersSQL := `SELECT ` + orderColumns + `
FROM shop_orders
WHERE player_id = $1 AND status = $2
ORDER BY created_at, id
LIMIT NULLIF($3, 0)
FOR UPDATE SKIP LOCKED`

	rows, err := querier.Query(ctx, lockOrdersSQL, playerId, string(domain.OrderStatusPaid), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to lock paid orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read paid orders: %w", err)
	}

	return orders, nil
}

func (ordr *OrdersRepository) FindPaidOrderIds(ctx context.Context, listingId string) ([]string, error) {
	findOrdersSQL := `SELECT id::text FROM shop_orders WHERE listing_id = $1 AND status = $2 ORDER BY created_at, id`

	rows, err := ordr.querier.Query(ctx, findOrdersSQL, listingId, string(domain.OrderStatusPaid))
	if err != nil {
		return nil, fmt.Errorf("failed to find paid orders: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan order id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		order  domain.Order
		status string
	)

	err := row.Scan(&order.Id, &order.ListingId, &order.PlayerId, &order.Amount, &order.TotalPrice, &status, &order.CreatedAt)
	if err != nil {
		return domain.Order{}, err
	}

	order.Status = domain.OrderStatus(status)
	return order, nil
}
