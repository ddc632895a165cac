package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/myflix/myflix-api/internal/core/domain"
	"github.com/myflix/myflix-api/internal/core/ports"
)

const userCollection = "users"

// MongoUserRepository persists user accounts in the users collection.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash"`
	Email        string             `bson:"email"`
	Birthday     *time.Time         `bson:"birthday,omitempty"`
	Favorites    []string           `bson:"favorite_movie_ids"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// EnsureIndexes creates the unique indexes the conflict mapping relies on.
// Call once at startup.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_username"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Email:        user.Email,
		Birthday:     user.Birthday,
		Favorites:    user.FavoriteMovieIDs,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if doc.Favorites == nil {
		doc.Favorites = []string{}
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyError(err)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := toDomainUser(doc)
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return created, nil
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return withID(toDomainUser(mu), mu.ID), nil
}

func (r *MongoUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*domain.User
	for cursor.Next(ctx) {
		var mu mongoUser
		if err := cursor.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, withID(toDomainUser(mu), mu.ID))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepository) Update(ctx context.Context, username string, update ports.UserUpdate) (*domain.User, error) {
	set := bson.M{
		"username":      update.Username,
		"password_hash": update.PasswordHash,
		"email":         update.Email,
		"birthday":      update.Birthday,
		"updated_at":    time.Now().UTC(),
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mu mongoUser
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"username": username}, bson.M{"$set": set}, opts).Decode(&mu)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyError(err)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return withID(toDomainUser(mu), mu.ID), nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, username string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) PushFavorite(ctx context.Context, username, movieID string) (*domain.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{
		"$push": bson.M{"favorite_movie_ids": movieID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}

	var mu mongoUser
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"username": username}, update, opts).Decode(&mu)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("push favorite: %w", err)
	}
	return withID(toDomainUser(mu), mu.ID), nil
}

func (r *MongoUserRepository) SetFavorites(ctx context.Context, username string, movieIDs []string) (*domain.User, error) {
	if movieIDs == nil {
		movieIDs = []string{}
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{
		"$set": bson.M{
			"favorite_movie_ids": movieIDs,
			"updated_at":         time.Now().UTC(),
		},
	}

	var mu mongoUser
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"username": username}, update, opts).Decode(&mu)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("set favorites: %w", err)
	}
	return withID(toDomainUser(mu), mu.ID), nil
}

// duplicateKeyError distinguishes which unique index tripped so the API can
// report username vs email conflicts separately.
func duplicateKeyError(err error) error {
	if strings.Contains(err.Error(), "uniq_email") {
		return domain.ErrEmailExists
	}
	return domain.ErrUserExists
}

func toDomainUser(mu mongoUser) *domain.User {
	favorites := mu.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	return &domain.User{
		Username:         mu.Username,
		PasswordHash:     mu.PasswordHash,
		Email:            mu.Email,
		Birthday:         mu.Birthday,
		FavoriteMovieIDs: favorites,
		CreatedAt:        mu.CreatedAt,
		UpdatedAt:        mu.UpdatedAt,
	}
}

func withID(u *domain.User, id primitive.ObjectID) *domain.User {
	if !id.IsZero() {
		u.ID = id.Hex()
	}
	return u
}
