package domain

// Genre is the embedded genre subdocument of a movie.
type Genre struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}

// Director is the embedded director subdocument of a movie.
type Director struct {
	Name string `json:"name" bson:"name"`
	Bio  string `json:"bio" bson:"bio"`
}

// Movie is a catalog entry. The API never writes movies; the collection is
// populated out-of-band.
type Movie struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Genre       Genre    `json:"genre" bson:"genre"`
	Director    Director `json:"director" bson:"director"`
	Actors      []string `json:"actors" bson:"actors"`
	ImagePath   string   `json:"image_path,omitempty" bson:"image_path,omitempty"`
	Featured    bool     `json:"featured" bson:"featured"`
}
