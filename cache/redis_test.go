package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCacheWithClient(client), server
}

func TestRedisCacheGetSet(t *testing.T) {
	ctx := context.Background()
	cache, server := newTestRedisCache(t)

	data, exists, err := cache.Get(ctx, "games")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, data)

	require.NoError(t, cache.Set(ctx, "games", []byte(`[]`), time.Minute))

	data, exists, err = cache.Get(ctx, "games")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "[]", string(data))

	assert.True(t, server.Exists("pajelingo:cache:games"))
}

func TestRedisCacheExpiry(t *testing.T) {
	ctx := context.Background()
	cache, server := newTestRedisCache(t)

	require.NoError(t, cache.Set(ctx, "games", []byte(`[]`), time.Minute))
	server.FastForward(2 * time.Minute)

	_, exists, err := cache.Get(ctx, "games")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRedisCacheDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	cache, server := newTestRedisCache(t)

	require.NoError(t, server.Set("other:key", "keep"))
	require.NoError(t, cache.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, cache.Set(ctx, "b", []byte("2"), time.Minute))
	assert.Equal(t, 2, cache.Len())

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.Equal(t, 1, cache.Len())

	require.NoError(t, cache.Clear(ctx))
	assert.Equal(t, 0, cache.Len())
	assert.True(t, server.Exists("other:key"), "접두사가 다른 키는 유지되어야 합니다")
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := NewRedisCache(ctx, RedisOptions{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
