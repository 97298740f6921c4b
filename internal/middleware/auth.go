package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and requires that it belongs to the open session.
// A token issued before the last logout or login is rejected even if it has not expired.
func AuthMiddleware(jwtSecret string, sessions portssvc.SessionSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortUnauthorized(c, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			abortUnauthorized(c, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			abortUnauthorized(c, msg)
			return
		}

		if claims.Subject == "" || !sessions.IsActive(claims.ID) {
			logger.Warn("Token does not belong to the active session", slog.String("subject", claims.Subject))
			abortUnauthorized(c, "Session is not active, please log in")
			return
		}

		ctx := context.WithValue(c.Request.Context(), usernameKey, claims.Subject)
		ctx = WithLogger(ctx, logger.With(slog.String("username", claims.Subject)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// abortUnauthorized records an ErrUnauthorized on the gin context and stops the chain with a 401.
func abortUnauthorized(c *gin.Context, msg string) {
	_ = c.Error(fmt.Errorf("%s: %w", msg, apperrors.ErrUnauthorized))
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
