package config

import (
	"fmt"

	"github.com/go-redis/redis/v8"
)

// OpenRedis connects the counter store. Redis is optional; callers skip this
// entirely when no addr is configured.
func OpenRedis(redisConf RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisConf.Addr,
		Password: redisConf.Password,
		DB:       redisConf.DB,
	})

	if _, err := client.Ping(client.Context()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
