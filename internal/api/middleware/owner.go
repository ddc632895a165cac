package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireSelf allows a request through only when the :username path parameter
// matches the identity resolved by Auth. Mutating user routes are gated with
// it; read routes stay open to any authenticated user.
func RequireSelf() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authenticated, _ := c.Get(ContextUsernameKey).(string)
			if authenticated == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if c.Param("username") != authenticated {
				return echo.NewHTTPError(http.StatusForbidden, "cannot modify another user's account")
			}
			return next(c)
		}
	}
}
