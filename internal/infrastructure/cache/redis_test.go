package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/infrastructure/cache"
)

func newCache(t *testing.T, ttl time.Duration) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewRedisCache(client, ttl, nil), mr
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t, time.Minute)

	in := entity.Obligation{ID: 7, Name: "DCTF", Periodicity: entity.PeriodicityMonthly, CompanyID: 3}
	c.Set(ctx, "obligation:7", in)
	assert.True(t, mr.Exists("empresas-api:obligation:7"))

	var out entity.Obligation
	require.True(t, c.Get(ctx, "obligation:7", &out))
	assert.Equal(t, in, out)

	c.Delete(ctx, "obligation:7")
	assert.False(t, c.Get(ctx, "obligation:7", &out))
}

func TestRedisCache_TTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t, 30*time.Second)

	c.Set(ctx, "company:1", entity.Company{ID: 1})
	mr.FastForward(31 * time.Second)

	var out entity.Company
	assert.False(t, c.Get(ctx, "company:1", &out))
}

func TestRedisCache_FalloDeRedisEsMiss(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t, time.Minute)
	mr.Close()

	var out entity.Company
	assert.False(t, c.Get(ctx, "company:1", &out))
	c.Set(ctx, "company:1", entity.Company{ID: 1})
	c.Delete(ctx, "company:1")
}

func TestRedisCache_ValorCorruptoEsMiss(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t, time.Minute)
	require.NoError(t, mr.Set("empresas-api:company:2", "{no-json"))

	var out entity.Company
	assert.False(t, c.Get(ctx, "company:2", &out))
}
