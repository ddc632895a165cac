package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/myflix/myflix-api/internal/core/domain"
	"github.com/myflix/myflix-api/internal/core/ports"
)

// UserService implements account registration, profile management and the
// favorites relation.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Register hashes the submitted password and creates the account. The
// plaintext never leaves this function. Duplicate username/email surface as
// the repository's conflict sentinels.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:         input.Username,
		PasswordHash:     string(hash),
		Email:            input.Email,
		Birthday:         input.Birthday,
		FavoriteMovieIDs: []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Update replaces the profile wholesale (PUT semantics) and re-hashes the
// submitted password. Concurrent updates to the same user are
// last-write-wins; the store carries no version token.
func (s *UserService) Update(ctx context.Context, username string, input ports.UpdateUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, username, ports.UserUpdate{
		Username:     input.Username,
		PasswordHash: string(hash),
		Email:        input.Email,
		Birthday:     input.Birthday,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Msg("user profile updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}
	s.log.Info().Str("username", username).Msg("user deregistered")
	return nil
}

// AddFavorite appends the movie reference. The list keeps duplicates; the
// client owns any dedup policy.
func (s *UserService) AddFavorite(ctx context.Context, username, movieID string) (*domain.User, error) {
	user, err := s.repo.PushFavorite(ctx, username, movieID)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", username).Str("movie_id", movieID).Msg("favorite added")
	return user, nil
}

// RemoveFavorite drops exactly one occurrence of movieID. The list is
// rewritten whole, so two concurrent removals race last-write-wins like any
// other profile mutation.
func (s *UserService) RemoveFavorite(ctx context.Context, username, movieID string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	favorites := user.FavoriteMovieIDs
	for i, id := range favorites {
		if id == movieID {
			favorites = append(favorites[:i:i], favorites[i+1:]...)
			break
		}
	}

	updated, err := s.repo.SetFavorites(ctx, username, favorites)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", username).Str("movie_id", movieID).Msg("favorite removed")
	return updated, nil
}
