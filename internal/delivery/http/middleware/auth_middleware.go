package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/delivery/http/response"
	"roster/internal/domain/service"
)

// AuthMiddleware is the auth gate: it extracts the bearer credential, verifies
// it, and either injects the resolved identity or fails the request closed.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the token from the Authorization header.
// The header carries the raw token; an optional "Bearer " prefix is tolerated
// and trimmed. No header means no identity, and the pipeline short-circuits.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "no user logged in")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			// Diagnostic only; the client learns nothing beyond 401.
			m.logger.Warn("Token verification failed",
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)

			return response.Unauthorized(c, "unauthorized")
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}
