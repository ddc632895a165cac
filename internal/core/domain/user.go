package domain

import "time"

// User models a registered account and the identity every protected
// request resolves to.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Birthday     *time.Time `json:"birthday,omitempty"`
	// FavoriteMovieIDs is an ordered list of movie references. Duplicates
	// are allowed; add/remove are the only mutations.
	FavoriteMovieIDs []string  `json:"favorite_movie_ids"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
