package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MosaabBleik/pharmacy-service/internal/config"
)

// InitRedis connects to redis and checks the connection with a PING.
func InitRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return redisClient, nil
}
