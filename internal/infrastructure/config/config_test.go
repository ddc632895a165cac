package config

import (
	"context"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Mongo.Database != "myflix" {
		t.Fatalf("expected default database myflix, got %q", cfg.Mongo.Database)
	}
	if cfg.JWTSecret != "test-secret" {
		t.Fatalf("unexpected secret: %q", cfg.JWTSecret)
	}
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected an error when JWT_SECRET is unset")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "9999")
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("REDIS_ADDR", "cache.internal:6379")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "9999" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if cfg.Mongo.URI != "mongodb://db.internal:27017" {
		t.Fatalf("expected mongo override, got %q", cfg.Mongo.URI)
	}
	if cfg.Redis.Addr != "cache.internal:6379" {
		t.Fatalf("expected redis override, got %q", cfg.Redis.Addr)
	}
}
