package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// InitRedis connects to Redis. An unreachable server is not an error: the
// client is closed and enabled is false so callers can run without it.
func InitRedis(ctx context.Context, addr, password string, db int) (client *redis.Client, enabled bool) {
	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Str("component", "redis").Err(err).Str("addr", addr).
			Msg("could not connect to Redis, outcome tallies disabled")
		client.Close()
		return nil, false
	}

	log.Info().Str("component", "redis").Str("addr", addr).Msg("connected successfully")
	return client, true
}

// RedisCache acts as a wrapper around redis.Client to implement Counter
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// HIncrByAll adds incr to every field of every key inside one MULTI/EXEC,
// so either all counters move or none do.
func (r *RedisCache) HIncrByAll(ctx context.Context, keys, fields []string, incr int64) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range keys {
			for _, field := range fields {
				pipe.HIncrBy(ctx, key, field, incr)
			}
		}
		return nil
	})
	return err
}

func (r *RedisCache) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return r.client.HGetAll(ctx, key).Result()
}
