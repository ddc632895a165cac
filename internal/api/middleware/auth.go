package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/myflix/myflix-api/internal/api/metrics"
	"github.com/myflix/myflix-api/internal/core/domain"
	"github.com/myflix/myflix-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserKey     = "auth_user"
	ContextUsernameKey = "auth_username"
)

// Auth gates a route on a valid bearer token. The token is verified and its
// subject resolved to a live user record, which is attached to the request
// context. Handlers must act only on that identity.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := verifier.VerifyToken(c.Request().Context(), parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				if err == domain.ErrUnauthenticated {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				}
				return err
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(ContextUserKey, user)
			c.Set(ContextUsernameKey, user.Username)

			return next(c)
		}
	}
}
