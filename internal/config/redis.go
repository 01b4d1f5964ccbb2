package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient is nil unless REDIS_ADDR is configured.
var RedisClient *redis.Client

// InitRedis connects to Redis when an address is configured. It returns false
// when Redis is disabled.
func InitRedis(s *Settings) (bool, error) {
	if s.RedisAddr == "" {
		Logger.Info("REDIS_ADDR is not set, events stay in memory")
		return false, nil
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     s.RedisAddr,
		Password: s.RedisPassword,
		DB:       s.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pong, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return false, fmt.Errorf("error connecting to redis: %w", err)
	}
	Logger.Info("Connected to Redis", zap.String("address", s.RedisAddr), zap.String("ping", pong))
	return true, nil
}
