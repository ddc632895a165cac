package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/myflix/myflix-api/internal/core/domain"
	"github.com/myflix/myflix-api/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// tokenClaims is the payload signed into every session token. Subject carries
// the username; expiry bounds the token's lifetime. There is no server-side
// revocation.
type tokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService implements credential verification, token issuance and bearer
// token verification against a single user repository.
type AuthService struct {
	repo     ports.UserRepository
	secret   []byte
	tokenTTL time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(repo ports.UserRepository, secret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		log:      log,
		now:      time.Now,
	}
}

// VerifyCredentials checks a username/password pair. Unknown usernames and
// wrong passwords both surface as ErrInvalidCredentials; the precise reason
// is logged at debug level only, so responses cannot enumerate accounts.
func (s *AuthService) VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("username", username).Msg("login rejected: unknown username")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Debug().Str("username", username).Msg("login rejected: wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// Login verifies credentials and issues a signed token on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.VerifyCredentials(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return token, user, nil
}

// VerifyToken validates signature and expiry, then resolves the subject
// against the user collection. A token for a deleted account fails exactly
// like a forged one.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		s.log.Debug().Err(err).Msg("token rejected")
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.repo.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("subject", claims.Subject).Msg("token subject no longer exists")
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	now := s.now().UTC()
	claims := tokenClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}
