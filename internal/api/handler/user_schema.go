package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// registerUserRequest mirrors the registration contract: username at least
// five alphanumeric characters, password mandatory, email well-formed,
// birthday optional.
type registerUserRequest struct {
	Username string `json:"username" validate:"required,min=5,alphanum"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Birthday string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

// updateUserRequest carries a full profile replacement (PUT semantics); the
// same rules as registration apply, password included.
type updateUserRequest struct {
	Username string `json:"username" validate:"required,min=5,alphanum"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Birthday string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type userResponse struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	Birthday         *time.Time `json:"birthday,omitempty"`
	FavoriteMovieIDs []string   `json:"favorite_movie_ids"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
