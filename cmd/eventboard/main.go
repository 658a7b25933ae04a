package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/openevents/eventboard/internal/app"
	"github.com/openevents/eventboard/internal/cache"
	"github.com/openevents/eventboard/internal/config"
	"github.com/openevents/eventboard/internal/logger"
	"github.com/openevents/eventboard/internal/models"
	"github.com/openevents/eventboard/internal/notify"
	"github.com/openevents/eventboard/internal/server"
	"github.com/openevents/eventboard/internal/source"
)

var configPath = flag.String("config", "configs/config.yaml", "Path to configuration file")

func main() {
	flag.Parse()

	// Load .env first so viper's env override sees it
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("Configuration loaded from %s", *configPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src, cleanup, err := buildSource(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize %s source: %v", cfg.Source.Type, err)
	}
	defer cleanup()
	logger.Info("Using %s event source", cfg.Source.Type)

	eventCache := cache.New(cfg.Cache.TTL)

	var observers []func(models.Signal)
	if cfg.Telegram.Enabled {
		notifier, err := notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID,
			cfg.Telegram.MaxRetries, cfg.Telegram.RetryDelayBase)
		if err != nil {
			logger.Fatal("Failed to initialize Telegram notifier: %v", err)
		}
		observers = append(observers, notifier.Observe)
		logger.Info("Telegram load-failure notifications enabled")
	} else {
		logger.Debug("Telegram notifications disabled")
	}

	srv := server.New(cfg.Server.ListenAddr, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	application := app.New(eventCache, src, srv, observers...)
	srv.Bind(application)

	// Initial load. A failure is not fatal: the page shows the error state
	// and a later refresh can recover.
	if err := application.Start(ctx); err != nil {
		logger.Error("Initial load failed: %v", err)
	}

	go func() {
		if err := srv.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutdown signal received, stopping server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
	logger.Info("Server stopped")
}

// buildSource constructs the configured data source and a cleanup function.
func buildSource(ctx context.Context, cfg *config.Config) (source.Source, func(), error) {
	noop := func() {}
	switch cfg.Source.Type {
	case "static":
		return source.NewStatic(cfg.Source.StaticDelay), noop, nil
	case "http":
		return source.NewHTTP(cfg.Source.BaseURL, cfg.Source.Timeout,
			cfg.Source.MaxRetries, cfg.Source.RetryDelayBase), noop, nil
	case "postgres":
		pg, err := source.NewPostgres(ctx, cfg.Source.PostgresDSN)
		if err != nil {
			return nil, noop, err
		}
		return pg, pg.Close, nil
	}
	// Unreachable after config validation
	return nil, noop, errors.New("unknown source type")
}
