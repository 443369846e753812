package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
)

// ItemDeliveryQueue records what the game server has to hand out for a
// claimed order. Rows are consumed by the game-server integration.
type ItemDeliveryQueue struct{}

func NewItemDeliveryQueue() *ItemDeliveryQueue {
	return &ItemDeliveryQueue{}
}

func (q *ItemDeliveryQueue) EnqueueDelivery(ctx context.Context, executor database.Executor, order domain.Order, listing domain.Listing) error {
	enqueueSQL := `INSERT INTO shop_item_deliveries (order_id, player_id, game_server_id, item_code, quantity, quality)
VALUES ($1, $2, $3, $4, $5, $6)`

	for _, item := range listing.Items {
		if order.Amount <= 0 || item.Amount <= 0 || item.Amount > domain.MaxDeliveryQuantity/order.Amount {
			return fmt.Errorf("invalid delivery quantity of %s: %d x %d", item.Code, item.Amount, order.Amount)
		}
		quantity := item.Amount * order.Amount

		_, err := executor.Exec(ctx, enqueueSQL,
			order.Id, order.PlayerId, listing.GameServerId, item.Code, quantity, item.Quality,
		)
		if err != nil {
			return fmt.Errorf("failed to enqueue delivery of %s: %w", item.Code, err)
		}
	}

	return nil
}
