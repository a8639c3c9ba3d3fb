package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/linkstash/bookmarks-api/internal/api/handler"
	"github.com/linkstash/bookmarks-api/internal/api/middleware"
	"github.com/linkstash/bookmarks-api/internal/core/service"
	"github.com/linkstash/bookmarks-api/internal/infrastructure/config"
	"github.com/linkstash/bookmarks-api/internal/infrastructure/db/gormdb"
	redisdb "github.com/linkstash/bookmarks-api/internal/infrastructure/db/redis"
	"github.com/linkstash/bookmarks-api/internal/pkg/hash"
	"github.com/linkstash/bookmarks-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. Every component receives its collaborators explicitly; the
// only process-wide values are the config and the shared clients.
func NewRouter(db *gorm.DB, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("bookmarks"))

	// --- Dependencies ---
	userRepo := gormdb.NewUserRepository(db)
	bookmarkRepo := gormdb.NewBookmarkRepository(db)

	var limiter service.AttemptLimiter
	if rdb != nil {
		limiter = redisdb.NewAttemptLimiter(rdb)
	}

	hasher := hash.New()
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, hasher, tokens, limiter, log)
	userService := service.NewUserService(userRepo, log)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)
	authMiddleware := middleware.Auth(tokens, userRepo)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/signin", authHandler.Signin)

	// --- Protected routes ---
	users := e.Group("/users", authMiddleware)
	users.GET("/me", userHandler.Me)
	users.PATCH("", userHandler.Edit)

	bookmarks := e.Group("/bookmarks", authMiddleware)
	bookmarks.GET("", bookmarkHandler.List)
	bookmarks.POST("", bookmarkHandler.Create)
	bookmarks.GET("/:id", bookmarkHandler.Get)
	bookmarks.PATCH("/:id", bookmarkHandler.Edit)
	bookmarks.DELETE("/:id", bookmarkHandler.Delete)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
