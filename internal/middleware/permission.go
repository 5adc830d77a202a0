package middleware

import (
	"github.com/labstack/echo/v4"

	"restaurant/internal/service"
)

// RequirePermission allows the request only when the caller's role holds the
// "<resource>_<suffix>" permission derived from the HTTP method. It must run after JWT.
func RequirePermission(access service.AccessService, resource string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := IdentityFrom(c).Role
			if err := access.Authorize(c.Request().Context(), role, resource, c.Request().Method); err != nil {
				return err
			}
			return next(c)
		}
	}
}
