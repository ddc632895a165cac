package ports

import (
	"context"
	"time"

	"github.com/myflix/myflix-api/internal/core/domain"
)

// RegisterUserInput carries validated registration data. Password is the
// plaintext submitted by the client; the service hashes it and discards it.
type RegisterUserInput struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

// UpdateUserInput carries a full profile replacement for PUT semantics.
type UpdateUserInput struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

// UserService defines use-case operations on user accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	Get(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, username string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, username string) error
	AddFavorite(ctx context.Context, username, movieID string) (*domain.User, error)
	// RemoveFavorite removes exactly one occurrence of movieID from the
	// user's favorites list.
	RemoveFavorite(ctx context.Context, username, movieID string) (*domain.User, error)
}
