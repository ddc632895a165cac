package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/myflix/myflix-api/docs"
	"github.com/myflix/myflix-api/internal/api/handler"
	"github.com/myflix/myflix-api/internal/api/middleware"
	"github.com/myflix/myflix-api/internal/core/service"
	mongodb "github.com/myflix/myflix-api/internal/infrastructure/db/mongo"
	redisdb "github.com/myflix/myflix-api/internal/infrastructure/db/redis"
)

// Config carries the settings the router needs beyond its datastores.
type Config struct {
	JWTSecret string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("myflix"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)
	movieCache := redisdb.NewMovieCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 0, log)
	userService := service.NewUserService(userRepo, log)
	movieService := service.NewMovieService(movieRepo, movieCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	movieHandler := handler.NewMovieHandler(movieService)

	auth := middleware.Auth(authService)
	self := middleware.RequireSelf()

	// --- Public routes ---
	e.GET("/", welcome)
	e.POST("/login", authHandler.Login)
	e.POST("/users", userHandler.Register)

	// --- User routes (bearer token required) ---
	e.GET("/users", userHandler.List, auth)
	e.GET("/users/:username", userHandler.Get, auth)
	e.PUT("/users/:username", userHandler.Update, auth, self)
	e.DELETE("/users/:username", userHandler.Delete, auth, self)
	e.POST("/users/:username/movies/:movieId", userHandler.AddFavorite, auth, self)
	e.DELETE("/users/:username/movies/:movieId", userHandler.RemoveFavorite, auth, self)

	// --- Catalog routes (bearer token required) ---
	e.GET("/movies", movieHandler.List, auth)
	e.GET("/movies/:title", movieHandler.GetByTitle, auth)
	e.GET("/movies/genres/:name", movieHandler.GetGenre, auth)
	e.GET("/movies/directors/:name", movieHandler.GetDirector, auth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

func welcome(c echo.Context) error {
	return c.String(http.StatusOK, "Welcome to myFlix!")
}
