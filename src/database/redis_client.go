package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis creates a client for addr (เช่น localhost:6379) and pings it.
func ConnectRedis(ctx context.Context, addr, password string, db int, log *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info("✅ Redis connected successfully", zap.String("addr", addr))
	return client, nil
}
