package domain

import (
	"context"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
)

// StockController is the only writer of a listing's stock.
type StockController interface {
	Reserve(ctx context.Context, executor database.QueryExecuter, listingId string, amount int) error
	Release(ctx context.Context, executor database.Executor, listingId string, amount int) error
	// SetStock overwrites the stock of a listing. A nil stock makes it unlimited.
	SetStock(ctx context.Context, listingId string, stock *int) error
}

type CurrencyLedger interface {
	Debit(ctx context.Context, executor database.Executor, playerId string, amount int64) error
	Credit(ctx context.Context, executor database.Executor, playerId string, amount int64) error
}

type ItemDeliverer interface {
	EnqueueDelivery(ctx context.Context, executor database.Executor, order Order, listing Listing) error
}
