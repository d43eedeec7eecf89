// Command scored runs the scoring service over HTTP and, when enabled, NATS.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	mahjong "mahjong-go"
	"mahjong-go/internal/api"
	"mahjong-go/internal/cache"
	"mahjong-go/internal/config"
	"mahjong-go/internal/health"
	"mahjong-go/internal/logging"
	"mahjong-go/internal/natsrpc"
	"mahjong-go/internal/service"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.App)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		store       cache.Store
		redisClient *redis.Client
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient, cfg.Redis.KeyPrefix, cfg.Redis.TTL)
		logger.Info("Connected to Redis", "addr", cfg.Redis.Addr())
	} else {
		store = cache.NewMemoryStore(0, cfg.Redis.TTL)
	}

	scorer := mahjong.NewScorer(
		mahjong.WithRules(cfg.Rules.ToRules()),
		mahjong.WithLogger(logger.With("component", "scorer")),
	)
	svc := service.New(scorer, store, logger)

	var (
		nc        *nats.Conn
		responder *natsrpc.Responder
	)
	if cfg.NATS.Enabled {
		natsClient, err := natsrpc.NewClient(cfg.NATS)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer natsClient.Close()
		nc = natsClient.Conn()
		logger.Info("Connected to NATS", "url", cfg.NATS.URL)

		responder = natsrpc.NewResponder(nc, svc, natsrpc.ResponderConfig{
			Subject:     cfg.NATS.Subject,
			QueueGroup:  cfg.NATS.QueueGroup,
			WorkerCount: cfg.NATS.WorkerCount,
			BufferSize:  cfg.NATS.BufferSize,
		})
		if err := responder.Start(ctx); err != nil {
			logger.Error("Failed to start responder", "error", err)
			os.Exit(1)
		}
	}

	checker := health.NewChecker(nc, redisClient)
	router := api.SetupRouter(cfg.HTTP, logger, api.NewScoreHandler(svc), checker)
	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server started", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			cancel()
		}
	}()

	logger.Info("Scoring service started", "name", cfg.App.Name, "rules", cfg.Rules)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
	if responder != nil {
		responder.Stop()
	}
	cancel()

	hits, misses := svc.CacheStats()
	logger.Info("Scoring service stopped", "cacheHits", hits, "cacheMisses", misses)
}
