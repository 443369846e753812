package http

import (
	"net/http"

	"github.com/Lexv0lk/game-shop/internal/pkg/logging"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createCategoryRequestBody struct {
	Name     string  `json:"name" binding:"required"`
	Emoji    string  `json:"emoji"`
	ParentId *string `json:"parentId" binding:"omitempty,uuid"`
}

type moveCategoryRequestBody struct {
	ParentId *string `json:"parentId" binding:"omitempty,uuid"`
}

type bulkAssignRequestBody struct {
	ListingIds        []string `json:"listingIds" binding:"required,min=1,dive,uuid"`
	AddCategoryIds    []string `json:"addCategoryIds" binding:"dive,uuid"`
	RemoveCategoryIds []string `json:"removeCategoryIds" binding:"dive,uuid"`
}

type CategoryHandler struct {
	service domain.CategoryService
	logger  logging.Logger
}

func NewCategoryHandler(service domain.CategoryService, logger logging.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger,
	}
}

func (h *CategoryHandler) GetCategoryTree(c *gin.Context) {
	tree, err := h.service.GetCategoryTree(c)
	if err != nil {
		handleDomainError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": tree})
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var body createCategoryRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	category, err := h.service.CreateCategory(c, body.Name, body.Emoji, body.ParentId)
	if err != nil {
		handleDomainError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) MoveCategory(c *gin.Context) {
	categoryId := c.Param(CategoryIdKey)
	if _, err := uuid.Parse(categoryId); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid category id"})
		return
	}

	var body moveCategoryRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	category, err := h.service.MoveCategory(c, categoryId, body.ParentId)
	if err != nil {
		handleDomainError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryId := c.Param(CategoryIdKey)
	if _, err := uuid.Parse(categoryId); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid category id"})
		return
	}

	err := h.service.DeleteCategory(c, categoryId)
	if err != nil {
		handleDomainError(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) BulkAssignCategories(c *gin.Context) {
	var body bulkAssignRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	err := h.service.BulkAssignCategories(c, body.ListingIds, body.AddCategoryIds, body.RemoveCategoryIds)
	if err != nil {
		handleDomainError(c, err, h.logger)
		return
	}

	c.Status(http.StatusOK)
}
