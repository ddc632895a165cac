package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/myflix/myflix-api/internal/api/metrics"
	"github.com/myflix/myflix-api/internal/core/ports"
)

// UserHandler handles registration, profile management and favorites.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register creates a new account. This is the only user route that does not
// require a bearer token.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "Registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	input, err := toRegisterInput(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "birthday must be a date in 2006-01-02 format")
	}

	user, err := h.service.Register(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// List returns all registered users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserListResponse(users))
}

// Get returns a single user by username.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  userResponse
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /users/{username} [get]
func (h *UserHandler) Get(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update replaces the authenticated user's profile.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string             true  "Username"
// @Param        body      body      updateUserRequest  true  "Replacement profile"
// @Success      200       {object}  userResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /users/{username} [put]
func (h *UserHandler) Update(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	input, err := toUpdateInput(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "birthday must be a date in 2006-01-02 format")
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("username"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete deregisters the authenticated user's account.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  messageResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /users/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	username := c.Param("username")
	if err := h.service.Delete(c.Request().Context(), username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: username + " was deleted"})
}

// AddFavorite appends a movie to the user's favorites. Duplicates are kept.
//
// @Summary      Add a favorite movie
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Param        movieId   path      string  true  "Movie ID"
// @Success      200       {object}  userResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /users/{username}/movies/{movieId} [post]
func (h *UserHandler) AddFavorite(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	user, err := h.service.AddFavorite(c.Request().Context(), c.Param("username"), c.Param("movieId"))
	if err != nil {
		return err
	}

	metrics.FavoritesMutationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// RemoveFavorite removes one occurrence of a movie from the favorites list.
//
// @Summary      Remove a favorite movie
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Param        movieId   path      string  true  "Movie ID"
// @Success      200       {object}  userResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /users/{username}/movies/{movieId} [delete]
func (h *UserHandler) RemoveFavorite(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	user, err := h.service.RemoveFavorite(c.Request().Context(), c.Param("username"), c.Param("movieId"))
	if err != nil {
		return err
	}

	metrics.FavoritesMutationsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}
