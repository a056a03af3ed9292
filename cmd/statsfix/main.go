// Command statsfix recomputes every user's stored statistics from their
// score history. Run it after repairing score data by hand or after a bug
// left the accumulator out of sync.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/famousguessr/famousguessr-go/internal/config"
	"github.com/famousguessr/famousguessr-go/internal/factory"
	redisstorage "github.com/famousguessr/famousguessr-go/internal/storage/redis"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Memory storage is empty on startup, so a rebuild against it would be
	// a no-op. Only redis makes sense here.
	if cfg.Storage.Type != factory.StorageTypeRedis {
		logger.Error("statsfix requires STORAGE_TYPE=redis")
		os.Exit(1)
	}

	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = cfg.Storage.RedisURL

	app, err := factory.New(factory.Config{
		StorageType: factory.StorageTypeRedis,
		RedisConfig: &redisCfg,
	})
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	count, err := app.GameService.RebuildAllStats(context.Background())
	if err != nil {
		logger.Error("stats rebuild failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("stats rebuilt", slog.Int("users", count))
}
