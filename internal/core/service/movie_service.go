package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/myflix/myflix-api/internal/core/domain"
	"github.com/myflix/myflix-api/internal/core/ports"
)

// CatalogCache abstracts the read-through cache in front of the movie
// collection (Redis in production). A nil hit means a miss.
type CatalogCache interface {
	GetMovies(ctx context.Context, key string) ([]*domain.Movie, error)
	SetMovies(ctx context.Context, key string, movies []*domain.Movie) error
}

type movieService struct {
	repo  ports.MovieRepository
	cache CatalogCache
	log   zerolog.Logger
}

// NewMovieService returns a MovieService. cache may be nil, in which case
// every read goes straight to the repository.
func NewMovieService(repo ports.MovieRepository, cache CatalogCache, log zerolog.Logger) ports.MovieService {
	return &movieService{repo: repo, cache: cache, log: log}
}

// List returns the full catalog, served from cache when possible. Cache
// failures degrade to a direct repository read.
func (s *movieService) List(ctx context.Context) ([]*domain.Movie, error) {
	const key = "movies:all"

	if s.cache != nil {
		cached, err := s.cache.GetMovies(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Msg("catalog cache read failed, falling back to store")
		} else if cached != nil {
			return cached, nil
		}
	}

	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetMovies(ctx, key, movies); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache write failed")
		}
	}

	return movies, nil
}

func (s *movieService) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return s.repo.FindByTitle(ctx, title)
}

// GetGenre returns the genre subdocument of any movie carrying the name.
func (s *movieService) GetGenre(ctx context.Context, name string) (*domain.Genre, error) {
	movie, err := s.repo.FindByGenreName(ctx, name)
	if err != nil {
		return nil, err
	}
	genre := movie.Genre
	return &genre, nil
}

// GetDirector returns the director subdocument of any movie carrying the name.
func (s *movieService) GetDirector(ctx context.Context, name string) (*domain.Director, error) {
	movie, err := s.repo.FindByDirectorName(ctx, name)
	if err != nil {
		return nil, err
	}
	director := movie.Director
	return &director, nil
}
