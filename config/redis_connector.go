package config

import (
	"fmt"

	"gopkg.in/redis.v5"
)

// SetupRedis connects to the configured redis server and checks it answers.
func SetupRedis(cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.URL,
	})

	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: could not connect to %s: %w", cfg.URL, err)
	}
	return client, nil
}
