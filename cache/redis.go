package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ssugameworks/pajelingo/constants"
)

// RedisCache 여러 인스턴스가 공유하는 Redis 기반 TTL 캐시입니다
type RedisCache struct {
	client *redis.Client
	prefix string
}

// RedisOptions Redis 연결 설정
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisCache 새 Redis 클라이언트를 만들고 연결을 확인합니다
func NewRedisCache(ctx context.Context, options RedisOptions) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     options.Addr,
		Password: options.Password,
		DB:       options.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis 연결 실패 (%s): %w", options.Addr, err)
	}

	return NewRedisCacheWithClient(client), nil
}

// NewRedisCacheWithClient 기존 클라이언트로 RedisCache를 생성합니다
func NewRedisCacheWithClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, prefix: constants.RedisKeyPrefix}
}

func (cache *RedisCache) key(key string) string {
	return cache.prefix + key
}

// Get 키에 해당하는 값을 조회합니다
func (cache *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := cache.client.Get(ctx, cache.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set 값을 TTL과 함께 저장합니다
func (cache *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return cache.client.Set(ctx, cache.key(key), value, ttl).Err()
}

// Delete 키를 삭제합니다
func (cache *RedisCache) Delete(ctx context.Context, key string) error {
	return cache.client.Del(ctx, cache.key(key)).Err()
}

// Len 접두사가 붙은 키 수를 반환합니다. 조회 실패 시 0을 반환합니다
func (cache *RedisCache) Len() int {
	keys, err := cache.scanKeys(context.Background())
	if err != nil {
		return 0
	}
	return len(keys)
}

// Clear 접두사가 붙은 모든 키를 삭제합니다
func (cache *RedisCache) Clear(ctx context.Context) error {
	keys, err := cache.scanKeys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return cache.client.Del(ctx, keys...).Err()
}

// Close Redis 연결을 닫습니다
func (cache *RedisCache) Close() error {
	return cache.client.Close()
}

func (cache *RedisCache) scanKeys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := cache.client.Scan(ctx, 0, cache.prefix+"*", constants.CacheCleanupBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}
