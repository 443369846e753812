package http

import (
	"errors"
	"net/http"

	"github.com/Lexv0lk/game-shop/internal/pkg/logging"
	"github.com/Lexv0lk/game-shop/internal/shop/domain"
	"github.com/gin-gonic/gin"
)

func handleDomainError(c *gin.Context, err error, logger logging.Logger) {
	switch {
	case errors.Is(err, &domain.ValidationError{}),
		errors.Is(err, &domain.InsufficientStockError{}),
		errors.Is(err, &domain.InsufficientFundsError{}),
		errors.Is(err, &domain.InvalidOrderStateError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": rootMessage(err)})
	case errors.Is(err, &domain.ListingNotFoundError{}),
		errors.Is(err, &domain.OrderNotFoundError{}),
		errors.Is(err, &domain.CategoryNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": rootMessage(err)})
	default:
		logger.Error("request failed", "path", c.FullPath(), "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}

// rootMessage strips the transaction wrapping so clients see only the domain
// message.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
