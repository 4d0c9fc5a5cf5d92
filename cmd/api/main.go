package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/resumebuilderpro/resume-api/internal/api"
	"github.com/resumebuilderpro/resume-api/internal/core/service"
	"github.com/resumebuilderpro/resume-api/internal/infrastructure/config"
	redisdb "github.com/resumebuilderpro/resume-api/internal/infrastructure/db/redis"
	"github.com/resumebuilderpro/resume-api/internal/infrastructure/db/record"
	"github.com/resumebuilderpro/resume-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	if cfg.Demo.Email != "" {
		store := redisdb.NewStore(rdb)
		users := record.NewUserRepository(store)
		resumes := record.NewResumeRepository(store)
		hasher := service.NewBcryptHasher(0)
		demoUser, err := record.EnsureDemoUser(ctx, users, hasher, cfg.Demo.Email, cfg.Demo.Password, cfg.Demo.FullName)
		if err != nil {
			log.Warn().Err(err).Msg("demo user seeding failed")
		} else if err := record.EnsureDemoResumes(ctx, resumes, demoUser); err != nil {
			log.Warn().Err(err).Msg("demo resume seeding failed")
		} else {
			log.Info().Str("email", cfg.Demo.Email).Msg("demo data ready")
		}
	}

	e := api.NewRouter(rdb, cfg, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("shutdown complete")
}
