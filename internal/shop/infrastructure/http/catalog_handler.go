package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Lexv0lk/game-shop/internal/pkg/logging"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createListingRequestBody struct {
	GameServerId string               `json:"gameServerId" binding:"required,uuid"`
	Name         string               `json:"name" binding:"required"`
	Price        int64                `json:"price" binding:"gte=0"`
	Items        []domain.ListingItem `json:"items"`
	CategoryIds  []string             `json:"categoryIds" binding:"dive,uuid"`
	Stock        *int                 `json:"stock" binding:"omitempty,gte=0"`
	Draft        bool                 `json:"draft"`
}

// setStockRequestBody keeps the raw stock value so an explicit null can be
// told apart from a missing field.
type setStockRequestBody struct {
	Stock json.RawMessage `json:"stock"`
}

type setDraftRequestBody struct {
	Draft *bool `json:"draft" binding:"required"`
}

type CatalogHandler struct {
	service domain.CatalogService
	logger  logging.Logger
}

func NewCatalogHandler(service domain.CatalogService, logger logging.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

func (h *CatalogHandler) SearchListings(c *gin.Context) {
	gameServerId := c.Query("gameServerId")
	if _, err := uuid.Parse(gameServerId); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid game server id"})
		return
	}

	categoryIds := c.QueryArray(CategoryIdKey)
	for _, id := range categoryIds {
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid category id"})
			return
		}
	}

	includeDrafts := false
	if raw := c.Query("includeDrafts"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid includeDrafts flag"})
			return
		}
		includeDrafts = parsed
	}

	listings, err := h.service.SearchListings(c, domain.ListingFilter{
		GameServerId:  gameServerId,
		CategoryIds:   categoryIds,
		IncludeDrafts: includeDrafts,
	})
	if err != nil {
		handleDomainError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

func (h *CatalogHandler) CreateListing(c *gin.Context) {
	var body createListingRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	listing, err := h.service.CreateListing(c, domain.Listing{
		GameServerId: body.GameServerId,
		Name:         body.Name,
		Price:        body.Price,
		Items:        body.Items,
		CategoryIds:  body.CategoryIds,
		Stock:        body.Stock,
		StockEnabled: body.Stock != nil,
		Draft:        body.Draft,
	})
	if err != nil {
		handleDomainError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

func (h *CatalogHandler) SetStock(c *gin.Context) {
	listingId := c.Param(ListingIdKey)
	if _, err := uuid.Parse(listingId); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid listing id"})
		return
	}

	var body setStockRequestBody
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Stock) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	var stock *int
	if err := json.Unmarshal(body.Stock, &stock); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "stock must be an integer or null"})
		return
	}

	err := h.service.SetStock(c, listingId, stock)
	if err != nil {
		handleDomainError(c, err, h.logger)
		return
	}

	c.Status(http.StatusOK)
}

func (h *CatalogHandler) SetDraft(c *gin.Context) {
	listingId := c.Param(ListingIdKey)
	if _, err := uuid.Parse(listingId); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid listing id"})
		return
	}

	var body setDraftRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	err := h.service.SetDraft(c, listingId, *body.Draft)
	if err != nil {
		handleDomainError(c, err, h.logger)
		return
	}

	c.Status(http.StatusOK)
}
