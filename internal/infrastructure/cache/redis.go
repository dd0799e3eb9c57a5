// Package cache implementa la caché de lecturas por ID sobre Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/empresas-api/internal/application/usecase"
	"github.com/jhoicas/empresas-api/pkg/logger"
)

var _ usecase.Cache = (*RedisCache)(nil)

const keyPrefix = "empresas-api:"

// NewClient crea un cliente Redis y verifica la conexión.
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// RedisCache guarda entidades serializadas en JSON con TTL.
// Un fallo de Redis se registra y se trata como miss: la base de datos manda.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
	log    *logger.Logger
}

// NewRedisCache construye la caché. ttl <= 0 significa sin expiración.
func NewRedisCache(client redis.Cmdable, ttl time.Duration, log *logger.Logger) *RedisCache {
	if log == nil {
		log = logger.Nop()
	}
	return &RedisCache{client: client, ttl: ttl, log: log}
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) bool {
	b, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache get")
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache decode")
		return false
	}
	return true
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache encode")
		return
	}
	if err := c.client.Set(ctx, keyPrefix+key, b, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache set")
	}
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = keyPrefix + k
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		c.log.Error().Err(err).Strs("keys", keys).Msg("cache invalidate")
	}
}
