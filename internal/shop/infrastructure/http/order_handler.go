package http

import (
	"net/http"

	"github.com/Lexv0lk/game-shop/internal/pkg/logging"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createOrderRequestBody struct {
	ListingId string `json:"listingId" binding:"required,uuid"`
	Amount    int    `json:"amount" binding:"required,gt=0"`
}

type claimOrdersRequestBody struct {
	All bool `json:"all"`
}

type OrderHandler struct {
	service domain.OrderService
	logger  logging.Logger
}

func NewOrderHandler(service domain.OrderService, logger logging.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	playerId, ok := playerIdFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unauthorized"})
		return
	}

	var body createOrderRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	order, err := h.service.CreateOrder(c, body.ListingId, playerId, body.Amount)
	if err != nil {
		handleDomainError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderId := c.Param(OrderIdKey)
	if _, err := uuid.Parse(orderId); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid order id"})
		return
	}

	order, err := h.service.CancelOrder(c, orderId)
	if err != nil {
		handleDomainError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ClaimOrders(c *gin.Context) {
	playerId, ok := playerIdFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "unauthorized"})
		return
	}

	var body claimOrdersRequestBody
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
			return
		}
	}

	result, err := h.service.ClaimOrders(c, playerId, body.All)
	if err != nil {
		handleDomainError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, result)
}
