// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jason-s-yu/bang/internal/auth"
	"github.com/jason-s-yu/bang/internal/cache"
	"github.com/jason-s-yu/bang/internal/config"
	"github.com/jason-s-yu/bang/internal/handlers"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	logger.SetLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rdb *redis.Client
	if cfg.RedisEnabled {
		rdb, err = cache.Connect(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			logger.Fatalf("redis: %v", err)
		}
		defer rdb.Close()
		logger.Infof("Publishing snapshots to Redis at %s", cfg.RedisAddr)
	}

	seats, err := auth.NewSeatIssuer(cfg.SeatTokenTTL)
	if err != nil {
		logger.Fatalf("seat tokens: %v", err)
	}

	srv := handlers.NewGameServer(logger, seats, cache.NewPublisher(rdb, cfg.SnapshotPrefix, logger), cfg.GameOptions(logger))
	go srv.RunSweeper(ctx, cfg.SweepEvery)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: handlers.NewRouter(logger, srv),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Infof("Running on %s", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("server exited: %v", err)
	}
}
