package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// usernameKey holds the authenticated username in the request context.
const usernameKey = contextKey("username")

// GetUsernameFromContext retrieves the authenticated username set by AuthMiddleware.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	return usernameFromCtx(c.Request.Context())
}

func usernameFromCtx(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
