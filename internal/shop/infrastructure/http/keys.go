package http

const (
	OrderIdKey    = "orderId"
	ListingIdKey  = "listingId"
	CategoryIdKey = "categoryId"

	authHeaderName = "Authorization"
)
