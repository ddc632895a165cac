package ports

import (
	"context"
	"time"

	"github.com/myflix/myflix-api/internal/core/domain"
)

// UserUpdate carries the replacement profile fields for a full update.
// PasswordHash is the already-hashed password; services never pass plaintext
// below this interface.
type UserUpdate struct {
	Username     string
	PasswordHash string
	Email        string
	Birthday     *time.Time
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Update replaces the profile fields of the user identified by username
	// and returns the updated record.
	Update(ctx context.Context, username string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, username string) error
	// PushFavorite appends movieID to the user's favorites. Duplicates are
	// not rejected.
	PushFavorite(ctx context.Context, username, movieID string) (*domain.User, error)
	// SetFavorites replaces the favorites list wholesale. Used by the
	// remove-one-occurrence path.
	SetFavorites(ctx context.Context, username string, movieIDs []string) (*domain.User, error)
}
