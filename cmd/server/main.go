package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pr-poehali-dev/java-vacancy-bot/internal/api"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/catalog"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/config"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/logger"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(zerolog.InfoLevel)
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger.Init(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	seed, err := newCatalog(cfg).Load(ctx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load job catalog")
	}

	gin.SetMode(cfg.GinMode)
	r := newRouter(cfg)

	handler := api.NewHandler(session.NewStore(seed, cfg.SessionTTL), seed)
	handler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Int("job_count", len(seed)).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown error")
	}
}

func newCatalog(cfg *config.Config) *catalog.Catalog {
	sources := []catalog.Source{catalog.Builtin()}
	if cfg.SeedFile != "" {
		sources = append(sources, catalog.FileSource{Path: cfg.SeedFile})
	}
	return catalog.New(sources...)
}

func newRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(loggerMiddleware())
	r.Use(rateLimitMiddleware(cfg.RateLimitRPS))

	corsConfig := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST"}
	r.Use(cors.New(corsConfig))
	return r
}
