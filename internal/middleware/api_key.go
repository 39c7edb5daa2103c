package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "moneymanager/internal/errors"
)

// APIKey creates a Gin middleware that validates the X-API-Key header
// against apiKey. An empty apiKey disables the check.
func APIKey(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}
