package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shuttlesync/internal/infra/draftstore"
	"shuttlesync/internal/pkg/clock"
	"shuttlesync/internal/pkg/config"
	"shuttlesync/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var DraftStoreModule = fx.Module("draftstore",
	fx.Provide(
		NewDraftStore,
	),
)

func NewDraftStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (shared.DraftStore, error) {
	switch cfg.Draft.Store {
	case "", "memory":
		slog.Info("Using in-memory draft store", "ttl", cfg.Draft.TTL)
		return draftstore.NewMemoryStore(cfg.Draft.TTL, clk), nil
	case "redis":
		client, err := NewRedisClient(lc, cfg.Redis)
		if err != nil {
			return nil, err
		}
		slog.Info("Using redis draft store", "addr", cfg.Redis.Addr, "ttl", cfg.Draft.TTL)
		return draftstore.NewRedisStore(client, cfg.Draft.TTL), nil
	default:
		return nil, fmt.Errorf("unknown DRAFT_STORE %q", cfg.Draft.Store)
	}
}

func NewRedisClient(lc fx.Lifecycle, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}
