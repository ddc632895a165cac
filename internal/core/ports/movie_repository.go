package ports

import (
	"context"

	"github.com/myflix/myflix-api/internal/core/domain"
)

// MovieRepository defines read-only persistence operations for the catalog.
// The API never writes movies; the collection is populated out-of-band.
type MovieRepository interface {
	List(ctx context.Context) ([]*domain.Movie, error)
	FindByTitle(ctx context.Context, title string) (*domain.Movie, error)
	// FindByGenreName returns any movie whose genre carries the given name.
	FindByGenreName(ctx context.Context, name string) (*domain.Movie, error)
	// FindByDirectorName returns any movie whose director carries the given name.
	FindByDirectorName(ctx context.Context, name string) (*domain.Movie, error)
}
