package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carboncell/user-auth/internal/api/handler"
	"github.com/carboncell/user-auth/internal/api/middleware"
	"github.com/carboncell/user-auth/internal/core/domain"
	"github.com/carboncell/user-auth/internal/core/service"
	"github.com/carboncell/user-auth/internal/infrastructure/config"
	mongodb "github.com/carboncell/user-auth/internal/infrastructure/db/mongo"
	redisdb "github.com/carboncell/user-auth/internal/infrastructure/db/redis"
	"github.com/carboncell/user-auth/internal/infrastructure/directory"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("carboncell"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, cfg.JWT.Secret, cfg.JWT.TTL)
	authHandler := handler.NewAuthHandler(authService, cfg.JWT.CookieName, cfg.JWT.TTL, log)

	fetcher := directory.NewClient(cfg.Directory.BaseURL, cfg.Directory.Timeout)
	entryCache := redisdb.NewEntryCache(rdb, cfg.Directory.CacheTTL)
	directoryService := service.NewDirectoryService(fetcher, entryCache, log)
	directoryHandler := handler.NewDirectoryHandler(directoryService, log)

	testHandler := handler.NewTestHandler()
	authRequired := middleware.Auth(cfg.JWT.Secret, cfg.JWT.CookieName)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/signIn", authHandler.SignIn)
	auth.POST("/signUp", authHandler.SignUp)
	auth.POST("/signOut", authHandler.SignOut)

	// --- Test content routes ---
	test := e.Group("/api/test")
	test.GET("/all", testHandler.All)
	test.GET("/user", testHandler.User, authRequired,
		middleware.RequireAny(domain.RoleUser, domain.RoleModerator, domain.RoleAdmin))
	test.GET("/mod", testHandler.Mod, authRequired,
		middleware.RequireAny(domain.RoleModerator))
	test.GET("/admin", testHandler.Admin, authRequired,
		middleware.RequireAny(domain.RoleAdmin))

	// --- Public-apis directory proxy ---
	test.GET("/public-apis", directoryHandler.List)
	test.GET("/public-apis/filters", directoryHandler.Filter)
	test.GET("/public-apis/limit", directoryHandler.Limit)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
