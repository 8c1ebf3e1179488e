package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/renomarket/scoping-engine/pkg/config"
	"github.com/renomarket/scoping-engine/pkg/content"
	"github.com/renomarket/scoping-engine/pkg/handlers"
	"github.com/renomarket/scoping-engine/pkg/logging"
	"github.com/renomarket/scoping-engine/pkg/middleware"
	"github.com/renomarket/scoping-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck // sync on exit is best-effort

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("questions", cfg.Content.QuestionsPath),
		zap.String("keywords", cfg.Content.KeywordsPath))

	// Load content packs
	graph, err := content.LoadGraph(cfg.Content.QuestionsPath, logger)
	if err != nil {
		logger.Fatal("Failed to load question graph", zap.Error(err))
	}
	dict, err := content.LoadDictionary(cfg.Content.KeywordsPath, logger)
	if err != nil {
		logger.Fatal("Failed to load keyword dictionary", zap.Error(err))
	}
	logger.Info("Content loaded",
		zap.Int("questions", len(graph.Questions)),
		zap.Int("keyword_rules", len(dict.Rules)))

	sessions := services.NewSessionService(graph, dict, logger)

	mux := http.NewServeMux()

	// Register handlers
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewSessionsHandler(sessions, graph, logger).RegisterRoutes(mux)
	handlers.NewContentHandler(graph, dict, logger).RegisterRoutes(mux)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Drop sessions nobody has touched for the configured TTL.
	go sweepLoop(ctx, sessions, cfg.Session, logger)

	server := &http.Server{
		Addr:    net.JoinHostPort(cfg.BindAddr, cfg.Port),
		Handler: middleware.RequestLogger(logger)(mux),
	}

	go func() {
		logger.Info("Starting scoping-engine",
			zap.String("addr", server.Addr),
			zap.String("version", cfg.Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}

func sweepLoop(ctx context.Context, sessions services.SessionService, cfg config.SessionConfig, logger *zap.Logger) {
	interval := time.Duration(cfg.SweepIntervalMinutes) * time.Minute
	maxIdle := time.Duration(cfg.IdleTTLMinutes) * time.Minute

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := sessions.Sweep(maxIdle); removed > 0 {
				logger.Debug("Session sweep",
					zap.Int("removed", removed),
					zap.Int("remaining", sessions.Count()))
			}
		}
	}
}
