package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/redis/go-redis/v9"

	"perception-quiz-service/internal/app"
	"perception-quiz-service/internal/config"
	"perception-quiz-service/internal/infra/memory"
	"perception-quiz-service/internal/infra/postgres"
	redisinfra "perception-quiz-service/internal/infra/redis"
	"perception-quiz-service/internal/infra/sqlite"
)

// openStore picks the backing store from the database URL, applying the schema
// first. It returns a nil store when no URL is configured.
func openStore(ctx context.Context, cfg config.Config) (app.ResponseStore, error) {
	url := cfg.Database.URL
	switch kind := config.StoreKind(url); kind {
	case config.StorePostgres:
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return nil, err
		}
		store, err := postgres.Connect(ctx, url)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StoreSQLite:
		store, err := sqlite.Open(config.SQLitePath(url))
		if err != nil {
			return nil, err
		}
		if err := store.AutoMigrate(); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil
	case config.StoreNone:
		glog.Infof("DATABASE_URL not configured - responses will be acknowledged but not stored")
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported store %v", kind)
	}
}

// openStatsCache uses Redis when an address is configured and memory otherwise.
func openStatsCache(cfg config.Config) (app.StatsCache, func() error) {
	ttl := config.TTLDuration(cfg.Stats.TTL, time.Minute)
	if cfg.Redis.Addr == "" {
		return memory.NewStatsCache(ttl), func() error { return nil }
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	return redisinfra.NewStatsCache(client, ttl), client.Close
}
