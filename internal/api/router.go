package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spellnotes/notes-api/internal/api/handler"
	"github.com/spellnotes/notes-api/internal/api/middleware"
	"github.com/spellnotes/notes-api/internal/core/ports"
	"github.com/spellnotes/notes-api/internal/core/service"
	"github.com/spellnotes/notes-api/internal/infrastructure/config"
	mongodb "github.com/spellnotes/notes-api/internal/infrastructure/db/mongo"
	redisdb "github.com/spellnotes/notes-api/internal/infrastructure/db/redis"
	"github.com/spellnotes/notes-api/internal/infrastructure/speller"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("notes"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	noteRepo := mongodb.NewNoteRepository(db)
	spellClient := speller.NewClient(speller.Config{
		URL:     cfg.Speller.URL,
		Timeout: cfg.Speller.Timeout,
	})
	spellCache := redisdb.NewSpellCache(rdb)

	authService := service.NewAuthService(userRepo, audit, cfg.JWTSecret, cfg.TokenTTL, log)
	noteService := service.NewNoteService(noteRepo, spellClient, spellCache, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	noteHandler := handler.NewNoteHandler(noteService)
	authMiddleware := middleware.Auth(authService)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Note routes (auth required) ---
	notes := e.Group("/notes", authMiddleware)
	notes.POST("", noteHandler.Create)
	notes.GET("", noteHandler.List)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
