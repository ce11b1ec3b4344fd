package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/manglass/cuid/internal/config"
	"github.com/manglass/cuid/internal/generator"
	"github.com/manglass/cuid/internal/handler"
	pkglog "github.com/manglass/cuid/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "cuid-service",
	})
	logger := pkglog.L()

	logger.Info().Msg("starting cuid-service")

	// Initialize CUID generator. This is the only stateful strategy; its
	// fingerprint is derived once from the process id and hostname.
	cuidGen, err := generator.NewCUIDGenerator()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create cuid generator")
	}
	logger.Info().Msg("cuid generator initialized")

	// Initialize UUID generator
	uuidGen := generator.NewUUIDGenerator()

	// Initialize ULID generator
	ulidGen := generator.NewULIDGenerator()

	// Initialize KSUID generator
	ksuidGen := generator.NewKSUIDGenerator()

	// Initialize NanoID generator
	nanoidGen, err := generator.NewNanoIDGenerator(cfg.NanoID.Size, cfg.NanoID.Alphabet)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create nanoid generator")
	}
	logger.Info().Int("size", cfg.NanoID.Size).Msg("nanoid generator initialized")

	// Initialize CUID2 generator
	cuid2Gen, err := generator.NewCUID2Generator(cfg.CUID2.Length)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create cuid2 generator")
	}
	logger.Info().Int("length", cfg.CUID2.Length).Msg("cuid2 generator initialized")

	// Assemble generator map
	generators := map[string]generator.Generator{
		generator.TypeCUID:   cuidGen,
		generator.TypeUUID:   uuidGen,
		generator.TypeULID:   ulidGen,
		generator.TypeKSUID:  ksuidGen,
		generator.TypeNanoID: nanoidGen,
		generator.TypeCUID2:  cuid2Gen,
	}

	// Setup Gin router
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	handler.NewHTTPHandler(generators, cfg.API.MaxBatch).RegisterRoutes(r)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down cuid-service")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("cuid-service stopped")
}
