package http

import (
	"net/http"
	"strings"

	"github.com/Lexv0lk/game-shop/internal/pkg/jwt"
	"github.com/Lexv0lk/game-shop/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NewAuthMiddleware resolves the calling player from a bearer token and
// stores the player id under jwt.PlayerIDContextKey.
func NewAuthMiddleware(secretKey string, tokenParser jwt.TokenParser, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken([]byte(secretKey), parts[1])
		if err != nil {
			logger.Warn("failed to parse player token", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		if _, err := uuid.Parse(claims.PlayerID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(jwt.PlayerIDContextKey, claims.PlayerID)
		c.Next()
	}
}

func playerIdFrom(c *gin.Context) (string, bool) {
	playerId := c.GetString(jwt.PlayerIDContextKey)
	return playerId, playerId != ""
}
