package domain

import (
	"context"
	"time"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
)

const NoPendingOrdersMessage = "no pending orders"

type OrderStatus string

const (
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusCanceled OrderStatus = "CANCELED"
	OrderStatusClaimed  OrderStatus = "CLAIMED"
)

type OrdersRepository interface {
	CreateOrder(ctx context.Context, querier database.Querier, order Order) (Order, error)
	// TransitionStatus moves the order from one status to another in a single
	// conditional update. It fails with InvalidOrderStateError when the order is
	// not in the from status and with OrderNotFoundError when it does not exist.
	TransitionStatus(ctx context.Context, querier database.Querier, orderId string, from, to OrderStatus) (Order, error)
	// LockPaidOrders returns the player's paid orders oldest first, skipping rows
	// locked by concurrent transactions. A zero limit means no limit.
	LockPaidOrders(ctx context.Context, querier database.Querier, playerId string, limit int) ([]Order, error)
	FindPaidOrderIds(ctx context.Context, listingId string) ([]string, error)
}

type Order struct {
	Id         string      `json:"id"`
	ListingId  string      `json:"listingId"`
	PlayerId   string      `json:"playerId"`
	Amount     int         `json:"amount"`
	TotalPrice int64       `json:"totalPrice"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type ClaimResult struct {
	Claimed []Order `json:"claimed,omitempty"`
	Message string  `json:"message,omitempty"`
}
