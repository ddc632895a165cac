package handler

import "github.com/myflix/myflix-api/internal/core/domain"

func toMovieResponse(m *domain.Movie) movieResponse {
	actors := m.Actors
	if actors == nil {
		actors = []string{}
	}
	return movieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Genre: genreResponse{
			Name:        m.Genre.Name,
			Description: m.Genre.Description,
		},
		Director: directorResponse{
			Name: m.Director.Name,
			Bio:  m.Director.Bio,
		},
		Actors:    actors,
		ImagePath: m.ImagePath,
		Featured:  m.Featured,
	}
}

func toMovieListResponse(movies []*domain.Movie) []movieResponse {
	out := make([]movieResponse, len(movies))
	for i, m := range movies {
		out[i] = toMovieResponse(m)
	}
	return out
}
