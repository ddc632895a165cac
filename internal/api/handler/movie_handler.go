package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/myflix/myflix-api/internal/core/ports"
)

// MovieHandler serves the read-only catalog endpoints.
type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

// List returns the full catalog.
//
// @Summary      List movies
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   movieResponse
// @Failure      401  {object}  errorResponse
// @Router       /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieListResponse(movies))
}

// GetByTitle returns one movie by exact title.
//
// @Summary      Get a movie by title
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        title  path      string  true  "Movie title"
// @Success      200    {object}  movieResponse
// @Failure      401    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /movies/{title} [get]
func (h *MovieHandler) GetByTitle(c echo.Context) error {
	movie, err := h.service.GetByTitle(c.Request().Context(), c.Param("title"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieResponse(movie))
}

// GetGenre returns the genre subdocument matching the given name.
//
// @Summary      Get a genre by name
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Genre name"
// @Success      200   {object}  genreResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /movies/genres/{name} [get]
func (h *MovieHandler) GetGenre(c echo.Context) error {
	genre, err := h.service.GetGenre(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genreResponse{
		Name:        genre.Name,
		Description: genre.Description,
	})
}

// GetDirector returns the director subdocument matching the given name.
//
// @Summary      Get a director by name
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Director name"
// @Success      200   {object}  directorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /movies/directors/{name} [get]
func (h *MovieHandler) GetDirector(c echo.Context) error {
	director, err := h.service.GetDirector(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, directorResponse{
		Name: director.Name,
		Bio:  director.Bio,
	})
}
