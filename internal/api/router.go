package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell/blogging-platform/internal/api/handler"
	"github.com/inkwell/blogging-platform/internal/api/middleware"
	"github.com/inkwell/blogging-platform/internal/core/domain"
	"github.com/inkwell/blogging-platform/internal/core/service"
	mongorepo "github.com/inkwell/blogging-platform/internal/infrastructure/db/mongo"
	redisinfra "github.com/inkwell/blogging-platform/internal/infrastructure/db/redis"
	"github.com/inkwell/blogging-platform/internal/pkg/config"
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
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	postRepo := mongorepo.NewPostRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.BootstrapAdminEmail)
	postService := service.NewPostService(postRepo, log)
	adminService := service.NewAdminService(userRepo, postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	adminHandler := handler.NewAdminHandler(adminService, postService)

	authMW := middleware.Auth(cfg.JWTSecret)
	loginLimiter := redisinfra.NewLoginLimiter(rdb, cfg.Login.RateLimit, cfg.Login.RateWindow)
	loginRateMW := middleware.LoginRateLimit(loginLimiter, log)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login, loginRateMW)
	e.GET("/auth/me", authHandler.Me, authMW)

	// --- Post routes ---
	e.GET("/posts", postHandler.List)
	e.GET("/posts/my", postHandler.ListMine, authMW)
	e.GET("/posts/:id", postHandler.Get)
	e.POST("/posts", postHandler.Create, authMW)
	e.PUT("/posts/:id", postHandler.Update, authMW)
	e.DELETE("/posts/:id", postHandler.Delete, authMW)

	// --- Admin routes ---
	admin := e.Group("/admin", authMW, middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.ChangeRole)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/posts", adminHandler.ListPosts)
	admin.GET("/stats", adminHandler.Stats)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
