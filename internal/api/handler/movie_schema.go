package handler

// Response-only catalog types. Movies are never written through the API, so
// there are no movie request types.

type genreResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type directorResponse struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

type movieResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Genre       genreResponse    `json:"genre"`
	Director    directorResponse `json:"director"`
	Actors      []string         `json:"actors"`
	ImagePath   string           `json:"image_path,omitempty"`
	Featured    bool             `json:"featured"`
}
