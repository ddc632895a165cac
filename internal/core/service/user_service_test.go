package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/myflix/myflix-api/internal/core/domain"
	"github.com/myflix/myflix-api/internal/core/ports"
)

func TestUserService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Username: "alice1",
		Password: "pass123",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.FavoriteMovieIDs == nil || len(user.FavoriteMovieIDs) != 0 {
		t.Fatalf("expected empty favorites, got %v", user.FavoriteMovieIDs)
	}
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	first, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Username: "bobby",
		Password: "pass",
		Email:    "bob@example.com",
	})
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err = svc.Register(context.Background(), ports.RegisterUserInput{
		Username: "bobby",
		Password: "other",
		Email:    "bob2@example.com",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// The first record is unaffected.
	kept, err := repo.FindByUsername(context.Background(), "bobby")
	if err != nil {
		t.Fatalf("find first user: %v", err)
	}
	if kept.Email != first.Email || kept.PasswordHash != first.PasswordHash {
		t.Fatalf("first record was modified by the failed duplicate registration")
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Username: "carol1", Password: "pass", Email: "carol@example.com",
	}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Username: "carol2", Password: "pass", Email: "carol@example.com",
	})
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "dave1", "oldpass")
	svc := NewUserService(repo, zerolog.Nop())

	birthday := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), "dave1", ports.UpdateUserInput{
		Username: "dave1",
		Password: "newpass",
		Email:    "dave@example.com",
		Birthday: &birthday,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("updated hash does not match new password: %v", err)
	}
	if updated.Birthday == nil || !updated.Birthday.Equal(birthday) {
		t.Fatalf("unexpected birthday: %v", updated.Birthday)
	}
}

func TestUserService_Update_UnknownUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.Update(context.Background(), "ghost", ports.UpdateUserInput{
		Username: "ghost", Password: "pass", Email: "g@example.com",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Favorites_DuplicatesKept(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "erin1", "pass")
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.AddFavorite(context.Background(), "erin1", "movie-1"); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	user, err := svc.AddFavorite(context.Background(), "erin1", "movie-1")
	if err != nil {
		t.Fatalf("add favorite again: %v", err)
	}

	if len(user.FavoriteMovieIDs) != 2 {
		t.Fatalf("expected two occurrences, got %v", user.FavoriteMovieIDs)
	}
}

func TestUserService_RemoveFavorite_RemovesOneOccurrence(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "frank1", "pass")
	svc := NewUserService(repo, zerolog.Nop())

	_, _ = svc.AddFavorite(context.Background(), "frank1", "movie-1")
	_, _ = svc.AddFavorite(context.Background(), "frank1", "movie-2")
	_, _ = svc.AddFavorite(context.Background(), "frank1", "movie-1")

	user, err := svc.RemoveFavorite(context.Background(), "frank1", "movie-1")
	if err != nil {
		t.Fatalf("remove favorite: %v", err)
	}

	want := []string{"movie-2", "movie-1"}
	if len(user.FavoriteMovieIDs) != len(want) {
		t.Fatalf("expected %v, got %v", want, user.FavoriteMovieIDs)
	}
	for i, id := range want {
		if user.FavoriteMovieIDs[i] != id {
			t.Fatalf("expected %v, got %v", want, user.FavoriteMovieIDs)
		}
	}
}

func TestUserService_RemoveFavorite_AbsentIDIsNoop(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "grace1", "pass")
	svc := NewUserService(repo, zerolog.Nop())

	_, _ = svc.AddFavorite(context.Background(), "grace1", "movie-1")

	user, err := svc.RemoveFavorite(context.Background(), "grace1", "movie-9")
	if err != nil {
		t.Fatalf("remove favorite: %v", err)
	}
	if len(user.FavoriteMovieIDs) != 1 || user.FavoriteMovieIDs[0] != "movie-1" {
		t.Fatalf("favorites should be untouched, got %v", user.FavoriteMovieIDs)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "heidi1", "pass")
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "heidi1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "heidi1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
