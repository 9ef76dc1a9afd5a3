package api

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ssugameworks/pajelingo/constants"
	"github.com/ssugameworks/pajelingo/interfaces"
	"github.com/ssugameworks/pajelingo/models"
	"github.com/ssugameworks/pajelingo/utils"
)

// CachedClient 게임 목록을 캐시하는 API 클라이언트입니다.
// 랭킹과 점수는 항상 백엔드에서 새로 조회합니다.
type CachedClient struct {
	client interfaces.APIClient
	cache  interfaces.Cache
	ttl    time.Duration

	// 성능 메트릭
	cacheHits   int64
	cacheMisses int64
	totalCalls  int64
}

// NewCachedClient 새로운 CachedClient 인스턴스를 생성합니다
func NewCachedClient(client interfaces.APIClient, cache interfaces.Cache, ttl time.Duration) *CachedClient {
	utils.Info("Creating cached pajelingo API client (games ttl: %v)", ttl)
	return &CachedClient{
		client: client,
		cache:  cache,
		ttl:    ttl,
	}
}

// GetRankings 랭킹을 그대로 위임합니다
func (cachedClient *CachedClient) GetRankings(ctx context.Context, language, user string, page int) (*models.RankingPage, error) {
	return cachedClient.client.GetRankings(ctx, language, user, page)
}

// GetScores 점수를 그대로 위임합니다
func (cachedClient *CachedClient) GetScores(ctx context.Context, language, user string) ([]models.ScoreRecord, error) {
	return cachedClient.client.GetScores(ctx, language, user)
}

// GetGames 캐시를 통해 게임 목록을 조회합니다
func (cachedClient *CachedClient) GetGames(ctx context.Context) ([]models.GameRecord, error) {
	atomic.AddInt64(&cachedClient.totalCalls, 1)

	if games, found := cachedClient.lookupGames(ctx); found {
		atomic.AddInt64(&cachedClient.cacheHits, 1)
		utils.Debug("Cache hit for games catalog")
		return games, nil
	}

	atomic.AddInt64(&cachedClient.cacheMisses, 1)
	utils.Debug("Cache miss for games catalog, calling API")

	return cachedClient.fetchAndStoreGames(ctx)
}

func (cachedClient *CachedClient) lookupGames(ctx context.Context) ([]models.GameRecord, bool) {
	data, found, err := cachedClient.cache.Get(ctx, constants.GamesCacheKey)
	if err != nil {
		// 캐시 장애는 미스로 취급
		utils.Warn("Games cache lookup failed: %v", err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var games []models.GameRecord
	if err := json.Unmarshal(data, &games); err != nil {
		utils.Warn("Discarding undecodable games cache entry: %v", err)
		return nil, false
	}
	return games, true
}

func (cachedClient *CachedClient) fetchAndStoreGames(ctx context.Context) ([]models.GameRecord, error) {
	games, err := cachedClient.client.GetGames(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(games)
	if err != nil {
		utils.Warn("Failed to encode games for cache: %v", err)
		return games, nil
	}
	if err := cachedClient.cache.Set(ctx, constants.GamesCacheKey, data, cachedClient.ttl); err != nil {
		utils.Warn("Failed to store games in cache: %v", err)
	}
	return games, nil
}

// WarmupGames 게임 목록을 새로 받아 캐시를 갱신합니다
func (cachedClient *CachedClient) WarmupGames(ctx context.Context) error {
	games, err := cachedClient.fetchAndStoreGames(ctx)
	if err != nil {
		utils.Warn("Games cache warmup failed: %v", err)
		return err
	}
	utils.Info("Games cache warmed up with %d games", len(games))
	return nil
}

// GetCacheStats 캐시 통계를 반환합니다
func (cachedClient *CachedClient) GetCacheStats() CacheMetrics {
	totalCalls := atomic.LoadInt64(&cachedClient.totalCalls)
	hits := atomic.LoadInt64(&cachedClient.cacheHits)
	misses := atomic.LoadInt64(&cachedClient.cacheMisses)

	var hitRate float64
	if totalCalls > 0 {
		hitRate = float64(hits) / float64(totalCalls) * 100
	}

	return CacheMetrics{
		TotalCalls:  totalCalls,
		CacheHits:   hits,
		CacheMisses: misses,
		HitRate:     hitRate,
		CachedItems: cachedClient.cache.Len(),
	}
}

// CacheMetrics 캐시 성능 메트릭을 나타냅니다
type CacheMetrics struct {
	TotalCalls  int64
	CacheHits   int64
	CacheMisses int64
	HitRate     float64
	CachedItems int
}

// String CacheMetrics의 문자열 표현을 반환합니다
func (metrics CacheMetrics) String() string {
	return fmt.Sprintf("API Cache Stats: Calls=%d, Hits=%d, Misses=%d, Hit Rate=%.2f%%, Cached Items=%d",
		metrics.TotalCalls, metrics.CacheHits, metrics.CacheMisses, metrics.HitRate, metrics.CachedItems)
}

// ClearCache 모든 캐시를 삭제하고 메트릭을 초기화합니다
func (cachedClient *CachedClient) ClearCache(ctx context.Context) error {
	if err := cachedClient.cache.Clear(ctx); err != nil {
		return err
	}
	atomic.StoreInt64(&cachedClient.cacheHits, 0)
	atomic.StoreInt64(&cachedClient.cacheMisses, 0)
	atomic.StoreInt64(&cachedClient.totalCalls, 0)
	utils.Info("API cache cleared")
	return nil
}
