package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/myflix/myflix-api/internal/api/middleware"
	"github.com/myflix/myflix-api/internal/core/domain"
)

// currentUser extracts the user record injected by the Auth middleware.
// Its presence proves the bearer token gate ran for this exact request;
// handlers must not mutate anything before this check passes.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ContextUserKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
