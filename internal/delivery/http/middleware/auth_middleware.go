// Package middleware contains the Echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	deliverycontext "floradesk/internal/delivery/context"
	"floradesk/internal/delivery/http/response"
	"floradesk/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the resulting actor on
// the context for handlers and the policy layer.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		actor, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetActor(c, actor)

		return next(c)
	}
}

// RequireStaff allows only staff or admin actors through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := deliverycontext.GetActor(c)
		if !ok {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: actor information missing")
		}
		if !actor.Role.IsStaff() && !actor.Role.IsAdmin() {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: staff access required")
		}

		return next(c)
	}
}

// RequireAdmin allows only admin actors through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := deliverycontext.GetActor(c)
		if !ok {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: actor information missing")
		}
		if !actor.Role.IsAdmin() {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: admin access required")
		}

		return next(c)
	}
}
