package http

import (
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Orders     *OrderHandler
	Catalog    *CatalogHandler
	Categories *CategoryHandler
}

// RegisterRoutes mounts the shop API under /api/shop. Every route requires a
// player token.
func RegisterRoutes(router gin.IRouter, authMiddleware gin.HandlerFunc, handlers Handlers) {
	shop := router.Group("/api/shop", authMiddleware)
	{
		shop.POST("/orders", handlers.Orders.CreateOrder)
		shop.POST("/orders/claim", handlers.Orders.ClaimOrders)
		shop.POST("/orders/:"+OrderIdKey+"/cancel", handlers.Orders.CancelOrder)

		shop.GET("/listings", handlers.Catalog.SearchListings)
		shop.POST("/listings", handlers.Catalog.CreateListing)
		shop.PUT("/listings/:"+ListingIdKey+"/stock", handlers.Catalog.SetStock)
		shop.PUT("/listings/:"+ListingIdKey+"/draft", handlers.Catalog.SetDraft)

		shop.GET("/categories/tree", handlers.Categories.GetCategoryTree)
		shop.POST("/categories", handlers.Categories.CreateCategory)
		shop.POST("/categories/bulk-assign", handlers.Categories.BulkAssignCategories)
		shop.PUT("/categories/:"+CategoryIdKey+"/parent", handlers.Categories.MoveCategory)
		shop.DELETE("/categories/:"+CategoryIdKey, handlers.Categories.DeleteCategory)
	}
}
