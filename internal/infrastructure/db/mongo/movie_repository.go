package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/myflix/myflix-api/internal/core/domain"
)

const movieCollection = "movies"

// MongoMovieRepository reads the catalog. The collection is populated
// out-of-band; this repository never writes.
type MongoMovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MongoMovieRepository {
	return &MongoMovieRepository{coll: db.Collection(movieCollection)}
}

type mongoMovie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Genre       domain.Genre       `bson:"genre"`
	Director    domain.Director    `bson:"director"`
	Actors      []string           `bson:"actors"`
	ImagePath   string             `bson:"image_path,omitempty"`
	Featured    bool               `bson:"featured"`
}

func (r *MongoMovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer cursor.Close(ctx)

	var movies []*domain.Movie
	for cursor.Next(ctx) {
		var mm mongoMovie
		if err := cursor.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode movie: %w", err)
		}
		movies = append(movies, toDomainMovie(mm))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (r *MongoMovieRepository) FindByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

func (r *MongoMovieRepository) FindByGenreName(ctx context.Context, name string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"genre.name": name})
}

func (r *MongoMovieRepository) FindByDirectorName(ctx context.Context, name string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"director.name": name})
}

func (r *MongoMovieRepository) findOne(ctx context.Context, filter bson.M) (*domain.Movie, error) {
	var mm mongoMovie
	if err := r.coll.FindOne(ctx, filter).Decode(&mm); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return toDomainMovie(mm), nil
}

func toDomainMovie(mm mongoMovie) *domain.Movie {
	actors := mm.Actors
	if actors == nil {
		actors = []string{}
	}
	return &domain.Movie{
		ID:          mm.ID.Hex(),
		Title:       mm.Title,
		Description: mm.Description,
		Genre:       mm.Genre,
		Director:    mm.Director,
		Actors:      actors,
		ImagePath:   mm.ImagePath,
		Featured:    mm.Featured,
	}
}
