package application

import (
	"context"
	"errors"
	"strings"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
	"github.com/Lexv0lk/game-shop/internal/pkg/logging"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
)

type CatalogCase struct {
	txManager            database.TxManager
	listingsRepository   domain.ListingsRepository
	categoriesRepository domain.CategoriesRepository
	ordersRepository     domain.OrdersRepository
	stockController      domain.StockController
	orderCanceler        domain.OrderCanceler
	logger               logging.Logger
}

func NewCatalogCase(
	txManager database.TxManager,
	listingsRepository domain.ListingsRepository,
	categoriesRepository domain.CategoriesRepository,
	ordersRepository domain.OrdersRepository,
	stockController domain.StockController,
	orderCanceler domain.OrderCanceler,
	logger logging.Logger,
) *CatalogCase {
	return &CatalogCase{
		txManager:            txManager,
		listingsRepository:   listingsRepository,
		categoriesRepository: categoriesRepository,
		ordersRepository:     ordersRepository,
		stockController:      stockController,
		orderCanceler:        orderCanceler,
		logger:               logger,
	}
}

// SearchListings returns the listings of a game server. When categories are
// given, a listing matches if it is tagged with any of them or any of their
// descendants.
func (cc *CatalogCase) SearchListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	if len(filter.CategoryIds) == 0 {
		return cc.listingsRepository.SearchListings(ctx, filter)
	}

	categories, err := cc.categoriesRepository.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	tree := domain.NewCategoryTree(categories)
	filter.CategoryIds = tree.DescendantClosure(filter.CategoryIds)

	return cc.listingsRepository.SearchListings(ctx, filter)
}

func (cc *CatalogCase) CreateListing(ctx context.Context, listing domain.Listing) (domain.Listing, error) {
	err := validateListing(listing)
	if err != nil {
		return domain.Listing{}, err
	}

	listing.CategoryIds = uniqueIds(listing.CategoryIds)
	if !listing.StockEnabled {
		listing.Stock = nil
	}

	var created domain.Listing

	err = cc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		if len(listing.CategoryIds) > 0 {
			count, err := cc.categoriesRepository.CountExisting(ctx, executor, listing.CategoryIds)
			if err != nil {
				return err
			} else if count != len(listing.CategoryIds) {
				return &domain.CategoryNotFoundError{Msg: "one or more categories not found"}
			}
		}

		var err error
		created, err = cc.listingsRepository.CreateListing(ctx, executor, listing)
		return err
	})
	if err != nil {
		return domain.Listing{}, err
	}

	cc.logger.Info("listing created", "listing_id", created.Id, "game_server_id", created.GameServerId)

	return created, nil
}

func (cc *CatalogCase) SetStock(ctx context.Context, listingId string, stock *int) error {
	err := cc.stockController.SetStock(ctx, listingId, stock)
	if err != nil {
		return err
	}

	if stock == nil {
		cc.logger.Info("listing stock disabled", "listing_id", listingId)
	} else {
		cc.logger.Info("listing stock set", "listing_id", listingId, "stock", *stock)
	}

	return nil
}

// SetDraft hides or publishes a listing. Hiding a published listing cancels
// and refunds every order that was paid but not claimed yet. A failed
// cancellation is logged and does not undo the draft flag.
func (cc *CatalogCase) SetDraft(ctx context.Context, listingId string, draft bool) error {
	var wasDraft bool

	// The flag is written under the listing row lock. Purchases hold the same
	// lock, so every order that can still be paid is visible once this commits.
	err := cc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		listing, err := cc.listingsRepository.LockListing(ctx, executor, listingId)
		if err != nil {
			return err
		}
		wasDraft = listing.Draft

		return cc.listingsRepository.SetDraft(ctx, executor, listingId, draft)
	})
	if err != nil {
		return err
	}

	if !draft || wasDraft {
		return nil
	}

	orderIds, err := cc.ordersRepository.FindPaidOrderIds(ctx, listingId)
	if err != nil {
		return err
	}

	failed := 0
	for _, orderId := range orderIds {
		_, err := cc.orderCanceler.CancelOrder(ctx, orderId)
		if err != nil {
			if errors.Is(err, &domain.InvalidOrderStateError{}) {
				continue
			}

			cc.logger.Error("failed to cancel order of drafted listing", "order_id", orderId, "listing_id", listingId, "error", err)
			failed++
		}
	}

	cc.logger.Info("listing moved to drafts",
		"listing_id", listingId,
		"paid_orders", len(orderIds),
		"failed_cancellations", failed,
	)

	return nil
}

func validateListing(listing domain.Listing) error {
	if strings.TrimSpace(listing.GameServerId) == "" {
		return &domain.ValidationError{Msg: "game server id is required"}
	}

	if strings.TrimSpace(listing.Name) == "" {
		return &domain.ValidationError{Msg: "listing name is required"}
	}

	if listing.Price < 0 {
		return &domain.ValidationError{Msg: "price must not be negative"}
	}

	if listing.StockEnabled && (listing.Stock == nil || *listing.Stock < 0) {
		return &domain.ValidationError{Msg: "stock must be set and not negative when stock is enabled"}
	}

	for _, item := range listing.Items {
		if strings.TrimSpace(item.Code) == "" || item.Amount <= 0 {
			return &domain.ValidationError{Msg: "every item needs a code and a positive amount"}
		}

		if item.Amount > domain.MaxDeliveryQuantity {
			return &domain.ValidationError{Msg: "item amount is too large"}
		}
	}

	return nil
}

func uniqueIds(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}
