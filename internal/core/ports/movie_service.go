package ports

import (
	"context"

	"github.com/myflix/myflix-api/internal/core/domain"
)

// MovieService defines the read-only catalog use cases.
type MovieService interface {
	List(ctx context.Context) ([]*domain.Movie, error)
	GetByTitle(ctx context.Context, title string) (*domain.Movie, error)
	GetGenre(ctx context.Context, name string) (*domain.Genre, error)
	GetDirector(ctx context.Context, name string) (*domain.Director, error)
}
