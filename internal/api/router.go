package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/happythoughts/thoughts-api/internal/api/handler"
	"github.com/happythoughts/thoughts-api/internal/api/middleware"
	"github.com/happythoughts/thoughts-api/internal/core/service"
	"github.com/happythoughts/thoughts-api/internal/infrastructure/config"
	"github.com/happythoughts/thoughts-api/internal/infrastructure/crypto"
	mongostore "github.com/happythoughts/thoughts-api/internal/infrastructure/db/mongo"
	redisstore "github.com/happythoughts/thoughts-api/internal/infrastructure/db/redis"
	"github.com/happythoughts/thoughts-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("happythoughts"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	thoughtRepo := mongostore.NewThoughtRepository(db)
	tokenCache := redisstore.NewTokenCache(rdb)

	authService := service.NewAuthService(
		userRepo,
		crypto.NewBcryptHasher(cfg.BcryptCost),
		crypto.NewRandTokenIssuer(),
		tokenCache,
		logger.Get(),
	)
	thoughtService := service.NewThoughtService(thoughtRepo, logger.Get())

	authHandler := handler.NewAuthHandler(authService)
	thoughtHandler := handler.NewThoughtHandler(thoughtService)
	authGate := middleware.Auth(authService)

	// --- Routes ---
	e.GET("/", handler.NewHomeHandler().Index)

	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	e.GET("/messages", thoughtHandler.List)
	e.GET("/messages/:id", thoughtHandler.Get)
	e.POST("/messages", thoughtHandler.Create, authGate)
	e.POST("/messages/:id/like", thoughtHandler.Like)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
