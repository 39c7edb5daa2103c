package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "moneymanager/internal/errors"
)

// Authenticator reports whether a usable session is stored.
type Authenticator interface {
	Authenticated(ctx context.Context) error
}

// SessionRequired rejects requests until a user has logged in. The stored
// token is what the transaction service sees, so there is nothing to verify
// on the inbound request itself.
func SessionRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.Authenticated(c.Request.Context()); err != nil {
			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) {
				appErr = apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			abortWithError(c, appErr)
			return
		}
		c.Next()
	}
}
