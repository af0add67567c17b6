package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Authorize is the single capability check used by every privileged route.
func Authorize(role string, allowed ...string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// RequireRole enforces role-based access control on routes already behind
// Auth or Gatekeeper.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if !Authorize(role, allowedRoles...) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
