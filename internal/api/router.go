package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/resumebuilderpro/resume-api/internal/api/handler"
	"github.com/resumebuilderpro/resume-api/internal/api/middleware"
	"github.com/resumebuilderpro/resume-api/internal/core/service"
	"github.com/resumebuilderpro/resume-api/internal/infrastructure/config"
	redisdb "github.com/resumebuilderpro/resume-api/internal/infrastructure/db/redis"
	"github.com/resumebuilderpro/resume-api/internal/infrastructure/db/record"
	"github.com/resumebuilderpro/resume-api/internal/render"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("resume_api"))

	// --- Dependencies ---
	store := redisdb.NewStore(rdb)
	users := record.NewUserRepository(store)
	resumes := record.NewResumeRepository(store)
	hasher := service.NewBcryptHasher(0)
	tokens := service.NewTokenService(cfg.JWTSecret)

	authService := service.NewAuthService(users, hasher, tokens, cfg.TokenTTL, log)
	resumeService := service.NewResumeService(resumes, render.NewHTMLRenderer(), log)

	authHandler := handler.NewAuthHandler(authService)
	resumeHandler := handler.NewResumeHandler(resumeService, authService)
	authMiddleware := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMiddleware)
	e.PUT("/auth/me", authHandler.UpdateMe, authMiddleware)

	// --- Resume routes (owner-scoped) ---
	r := e.Group("/resumes", authMiddleware)
	r.POST("", resumeHandler.Create)
	r.GET("", resumeHandler.List)
	r.GET("/:id", resumeHandler.Get)
	r.PUT("/:id", resumeHandler.Update)
	r.DELETE("/:id", resumeHandler.Delete)
	r.GET("/:id/download", resumeHandler.Download)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(users)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
