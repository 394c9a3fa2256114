package messaging

import (
	"context"
	"fmt"
	"log"
	"time"

	"mescore/config"

	"github.com/redis/go-redis/v9"
)

// RedisNotifier publishes with PUBLISH. go-redis dials lazily and reconnects
// on its own, so no connection state is kept here.
type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(cfg *config.RedisConfig) *RedisNotifier {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("notify: redis %s unreachable: %v (will retry on publish)", cfg.Address, err)
	} else {
		log.Printf("notify: connected to redis %s", cfg.Address)
	}
	return &RedisNotifier{client: client}
}

func (r *RedisNotifier) Name() string { return "redis" }

func (r *RedisNotifier) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := r.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", channel, err)
	}
	return nil
}

func (r *RedisNotifier) Close() error {
	return r.client.Close()
}
