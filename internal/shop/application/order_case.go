package application

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
	"github.com/Lexv0lk/game-shop/internal/pkg/logging"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
	"github.com/google/uuid"
)

type OrderCase struct {
	txManager          database.TxManager
	listingsRepository domain.ListingsRepository
	ordersRepository   domain.OrdersRepository
	stockController    domain.StockController
	currencyLedger     domain.CurrencyLedger
	itemDeliverer      domain.ItemDeliverer
	logger             logging.Logger
}

func NewOrderCase(
	txManager database.TxManager,
	listingsRepository domain.ListingsRepository,
	ordersRepository domain.OrdersRepository,
	stockController domain.StockController,
	currencyLedger domain.CurrencyLedger,
	itemDeliverer domain.ItemDeliverer,
	logger logging.Logger,
) *OrderCase {
	return &OrderCase{
		txManager:          txManager,
		listingsRepository: listingsRepository,
		ordersRepository:   ordersRepository,
		stockController:    stockController,
		currencyLedger:     currencyLedger,
		itemDeliverer:      itemDeliverer,
		logger:             logger,
	}
}

// CreateOrder reserves stock, charges the player and records a paid order in
// one transaction. Any failure leaves stock, balance and orders untouched.
// The listing row stays locked until commit, so a concurrent draft either
// waits for the order or rejects it.
func (oc *OrderCase) CreateOrder(ctx context.Context, listingId, playerId string, amount int) (domain.Order, error) {
	if amount <= 0 {
		return domain.Order{}, &domain.ValidationError{Msg: "amount must be positive"}
	}

	var order domain.Order

	err := oc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		listing, err := oc.listingsRepository.LockListing(ctx, executor, listingId)
		if err != nil {
			return err
		}

		err = checkPurchasable(listing, amount)
		if err != nil {
			return err
		}

		err = oc.stockController.Reserve(ctx, executor, listing.Id, amount)
		if err != nil {
			return err
		}

		totalPrice := listing.Price * int64(amount)

		err = oc.currencyLedger.Debit(ctx, executor, playerId, totalPrice)
		if err != nil {
			return err
		}

		order, err = oc.ordersRepository.CreateOrder(ctx, executor, domain.Order{
			Id:         uuid.NewString(),
			ListingId:  listing.Id,
			PlayerId:   playerId,
			Amount:     amount,
			TotalPrice: totalPrice,
		})
		return err
	})
	if err != nil {
		return domain.Order{}, err
	}

	oc.logger.Info("order created",
		"order_id", order.Id,
		"listing_id", order.ListingId,
		"player_id", order.PlayerId,
		"amount", order.Amount,
		"total_price", order.TotalPrice,
	)

	return order, nil
}

func checkPurchasable(listing domain.Listing, amount int) error {
	if listing.Draft {
		return &domain.ValidationError{Msg: "listing is not available for purchase"}
	}

	if listing.Price > 0 && int64(amount) > math.MaxInt64/listing.Price {
		return &domain.ValidationError{Msg: "order total is too large"}
	}

	for _, item := range listing.Items {
		if item.Amount > domain.MaxDeliveryQuantity/amount {
			return &domain.ValidationError{Msg: fmt.Sprintf("too many %s in one order", item.Code)}
		}
	}

	return nil
}

// CancelOrder refunds a paid order and gives its stock back.
func (oc *OrderCase) CancelOrder(ctx context.Context, orderId string) (domain.Order, error) {
	var canceled domain.Order

	err := oc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		var err error
		canceled, err = oc.ordersRepository.TransitionStatus(ctx, executor, orderId, domain.OrderStatusPaid, domain.OrderStatusCanceled)
		if err != nil {
			return err
		}

		err = oc.stockController.Release(ctx, executor, canceled.ListingId, canceled.Amount)
		if err != nil {
			return err
		}

		return oc.currencyLedger.Credit(ctx, executor, canceled.PlayerId, canceled.TotalPrice)
	})
	if err != nil {
		return domain.Order{}, err
	}

	oc.logger.Info("order canceled", "order_id", canceled.Id, "refund", canceled.TotalPrice)

	return canceled, nil
}

// ClaimOrders claims the oldest paid order of the player, or all of them when
// claimAll is set, and queues their items for delivery.
func (oc *OrderCase) ClaimOrders(ctx context.Context, playerId string, claimAll bool) (domain.ClaimResult, error) {
	limit := 1
	if claimAll {
		limit = 0
	}

	claimed := make([]domain.Order, 0)

	err := oc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		pending, err := oc.ordersRepository.LockPaidOrders(ctx, executor, playerId, limit)
		if err != nil {
			return err
		}

		listings := make(map[string]domain.Listing)

		for _, order := range pending {
			claimedOrder, err := oc.ordersRepository.TransitionStatus(ctx, executor, order.Id, domain.OrderStatusPaid, domain.OrderStatusClaimed)
			if err != nil {
				if errors.Is(err, &domain.InvalidOrderStateError{}) {
					oc.logger.Warn("order changed state before claim", "order_id", order.Id)
					continue
				}

				return err
			}

			listing, ok := listings[claimedOrder.ListingId]
			if !ok {
				listing, err = oc.listingsRepository.GetListing(ctx, claimedOrder.ListingId)
				if err != nil {
					return fmt.Errorf("failed to load listing of order %s: %w", claimedOrder.Id, err)
				}
				listings[listing.Id] = listing
			}

			err = oc.itemDeliverer.EnqueueDelivery(ctx, executor, claimedOrder, listing)
			if err != nil {
				return err
			}

			claimed = append(claimed, claimedOrder)
		}

		return nil
	})
	if err != nil {
		return domain.ClaimResult{}, err
	}

	if len(claimed) == 0 {
		return domain.ClaimResult{Message: domain.NoPendingOrdersMessage}, nil
	}

	oc.logger.Info("orders claimed", "player_id", playerId, "count", len(claimed))

	return domain.ClaimResult{Claimed: claimed}, nil
}
