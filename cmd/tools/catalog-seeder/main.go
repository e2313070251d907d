// cmd/tools/catalog-seeder/main.go
//
// Seeds the opportunities table with the built-in catalog and drops any
// stale Redis snapshot so the next worker start reads the fresh rows.
//
// Usage:
//
//	go run ./cmd/tools/catalog-seeder
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"saarthi-workers/internal/catalog"
	"saarthi-workers/internal/common/config"
	"saarthi-workers/internal/common/database"
	"saarthi-workers/internal/common/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres connection failed", zap.Error(err))
	}
	defer pg.Close()

	if err := pg.Ping(ctx); err != nil {
		zapLog.Fatal("postgres ping failed", zap.Error(err))
	}

	opportunities := catalog.Builtin()
	store := catalog.NewStore(pg.DB, cfg.Catalog.Table)
	if err := store.Seed(ctx, opportunities); err != nil {
		zapLog.Fatal("catalog seed failed", zap.Error(err))
	}
	zapLog.Info("catalog seeded",
		zap.String("table", cfg.Catalog.Table),
		zap.Int("opportunities", len(opportunities)),
	)

	// Snapshot invalidation is best effort. A missing Redis just means the
	// next start reads from the table directly.
	redis, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		zapLog.Warn("redis unavailable, snapshot not invalidated", zap.Error(err))
		return
	}
	defer redis.Close()

	cache := catalog.NewSnapshotCache(redis.Client, cfg.Catalog.SnapshotKey, time.Duration(cfg.Catalog.SnapshotTTL)*time.Second)
	if err := cache.Invalidate(ctx); err != nil {
		zapLog.Warn("snapshot invalidation failed", zap.Error(err))
		return
	}
	zapLog.Info("catalog snapshot invalidated", zap.String("key", cfg.Catalog.SnapshotKey))
}
