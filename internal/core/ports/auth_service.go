package ports

import (
	"context"

	"github.com/myflix/myflix-api/internal/core/domain"
)

// CredentialVerifier validates a username/password pair against the
// credential store. It never mutates state.
type CredentialVerifier interface {
	VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error)
}

// TokenVerifier validates a bearer token string and resolves it to the user
// record it was issued for. A token whose subject no longer exists fails the
// same way a forged token does.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
}

// AuthService is the login-facing surface: credential verification plus
// token issuance in one call.
type AuthService interface {
	CredentialVerifier
	TokenVerifier
	// Login verifies credentials and, on success, returns a signed token
	// together with the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
