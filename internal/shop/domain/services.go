package domain

import "context"

type OrderCanceler interface {
	CancelOrder(ctx context.Context, orderId string) (Order, error)
}

type OrderService interface {
	OrderCanceler
	CreateOrder(ctx context.Context, listingId, playerId string, amount int) (Order, error)
	ClaimOrders(ctx context.Context, playerId string, claimAll bool) (ClaimResult, error)
}

type CatalogService interface {
	SearchListings(ctx context.Context, filter ListingFilter) ([]Listing, error)
	CreateListing(ctx context.Context, listing Listing) (Listing, error)
	SetStock(ctx context.Context, listingId string, stock *int) error
	SetDraft(ctx context.Context, listingId string, draft bool) error
}

type CategoryService interface {
	CreateCategory(ctx context.Context, name, emoji string, parentId *string) (Category, error)
	MoveCategory(ctx context.Context, categoryId string, parentId *string) (Category, error)
	DeleteCategory(ctx context.Context, categoryId string) error
	GetCategoryTree(ctx context.Context) ([]CategoryNode, error)
	BulkAssignCategories(ctx context.Context, listingIds, addCategoryIds, removeCategoryIds []string) error
}
