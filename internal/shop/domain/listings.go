package domain

import (
	"context"
	"math"

	"github.com/Lexv0lk/game-shop/internal/pkg/database"
)

type ListingsRepository interface {
	GetListing(ctx context.Context, listingId string) (Listing, error)
	// LockListing reads a listing and holds its row until the surrounding
	// transaction ends, so draft and price cannot change under a purchase.
	LockListing(ctx context.Context, querier database.Querier, listingId string) (Listing, error)
	SearchListings(ctx context.Context, filter ListingFilter) ([]Listing, error)
	CreateListing(ctx context.Context, executor database.QueryExecuter, listing Listing) (Listing, error)
	SetDraft(ctx context.Context, executor database.Executor, listingId string, draft bool) error
	CountExisting(ctx context.Context, querier database.Querier, listingIds []string) (int, error)
}

// MaxDeliveryQuantity bounds item amount times order amount for a single
// delivery row.
const MaxDeliveryQuantity = math.MaxInt32

type Listing struct {
	Id           string        `json:"id"`
	GameServerId string        `json:"gameServerId"`
	Name         string        `json:"name"`
	Price        int64         `json:"price"`
	Items        []ListingItem `json:"items"`
	CategoryIds  []string      `json:"categoryIds"`
	Stock        *int          `json:"stock"`
	StockEnabled bool          `json:"stockEnabled"`
	Draft        bool          `json:"draft"`
}

type ListingItem struct {
	Code    string `json:"code"`
	Amount  int    `json:"amount"`
	Quality string `json:"quality,omitempty"`
}

// ListingFilter selects listings of one game server. CategoryIds are matched
// as-is by the repository; callers expand them to their descendant closure first.
type ListingFilter struct {
	GameServerId  string
	CategoryIds   []string
	IncludeDrafts bool
}
