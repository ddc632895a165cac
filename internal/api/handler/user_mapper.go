package handler

import (
	"time"

	"github.com/myflix/myflix-api/internal/core/domain"
	"github.com/myflix/myflix-api/internal/core/ports"
)

// --- Request → Service input ---

func toRegisterInput(req registerUserRequest) (ports.RegisterUserInput, error) {
	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return ports.RegisterUserInput{}, err
	}
	return ports.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: birthday,
	}, nil
}

func toUpdateInput(req updateUserRequest) (ports.UpdateUserInput, error) {
	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return ports.UpdateUserInput{}, err
	}
	return ports.UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: birthday,
	}, nil
}

func parseBirthday(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	favorites := u.FavoriteMovieIDs
	if favorites == nil {
		favorites = []string{}
	}
	return userResponse{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		Birthday:         u.Birthday,
		FavoriteMovieIDs: favorites,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func toUserListResponse(users []*domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}
