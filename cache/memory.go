package cache

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/ssugameworks/pajelingo/constants"
)

// CacheItem 캐시에 저장되는 개별 아이템을 나타냅니다
type CacheItem struct {
	Data      []byte
	ExpiresAt time.Time
}

// IsExpired 캐시 아이템이 만료되었는지 확인합니다
func (item *CacheItem) IsExpired() bool {
	return time.Now().After(item.ExpiresAt)
}

// ExpirationEntry 만료 시간 기반 우선순위 큐의 항목
type ExpirationEntry struct {
	Key       string
	ExpiresAt time.Time
	Index     int // 힙에서의 인덱스
}

// ExpirationQueue 만료 시간 기반 우선순위 큐 (최소 힙)
type ExpirationQueue []*ExpirationEntry

func (queue ExpirationQueue) Len() int { return len(queue) }

func (queue ExpirationQueue) Less(i, j int) bool {
	return queue[i].ExpiresAt.Before(queue[j].ExpiresAt)
}

func (queue ExpirationQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].Index = i
	queue[j].Index = j
}

func (queue *ExpirationQueue) Push(x interface{}) {
	entry := x.(*ExpirationEntry)
	entry.Index = len(*queue)
	*queue = append(*queue, entry)
}

func (queue *ExpirationQueue) Pop() interface{} {
	old := *queue
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.Index = -1
	*queue = old[0 : n-1]
	return entry
}

// MemoryCache 만료 힙으로 정리되는 프로세스 내 TTL 캐시입니다
type MemoryCache struct {
	items map[string]*CacheItem

	expirationQueue *ExpirationQueue
	keyToEntry      map[string]*ExpirationEntry

	mu sync.RWMutex

	lastCleanup        time.Time
	cleanupBatchSize   int
	maxCleanupDuration time.Duration
}

// NewMemoryCache 새로운 MemoryCache 인스턴스를 생성합니다
func NewMemoryCache() *MemoryCache {
	queue := &ExpirationQueue{}
	heap.Init(queue)

	return &MemoryCache{
		items:              make(map[string]*CacheItem),
		expirationQueue:    queue,
		keyToEntry:         make(map[string]*ExpirationEntry),
		cleanupBatchSize:   constants.CacheCleanupBatchSize,
		maxCleanupDuration: constants.MaxCacheCleanupDuration,
		lastCleanup:        time.Now(),
	}
}

// Get 키에 해당하는 값을 조회합니다. 만료된 항목은 없는 것으로 취급합니다
func (cache *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	cache.mu.RLock()
	defer cache.mu.RUnlock()

	item, exists := cache.items[key]
	if !exists || item.IsExpired() {
		return nil, false, nil
	}
	return item.Data, true, nil
}

// Set 값을 TTL과 함께 저장합니다
func (cache *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	expiresAt := time.Now().Add(ttl)
	cache.items[key] = &CacheItem{Data: value, ExpiresAt: expiresAt}

	// 이전 항목은 힙에서 바로 빼지 않고 무효화만 표시
	if existing, exists := cache.keyToEntry[key]; exists {
		existing.ExpiresAt = time.Time{}
	}

	entry := &ExpirationEntry{Key: key, ExpiresAt: expiresAt}
	heap.Push(cache.expirationQueue, entry)
	cache.keyToEntry[key] = entry
	return nil
}

// Delete 키를 삭제합니다
func (cache *MemoryCache) Delete(_ context.Context, key string) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	delete(cache.items, key)
	if entry, exists := cache.keyToEntry[key]; exists {
		entry.ExpiresAt = time.Time{}
		delete(cache.keyToEntry, key)
	}
	return nil
}

// Len 저장된 항목 수를 반환합니다
func (cache *MemoryCache) Len() int {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return len(cache.items)
}

// ClearExpired 만료되었거나 무효화된 항목을 배치 단위로 정리합니다
func (cache *MemoryCache) ClearExpired() int {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	now := time.Now()
	startTime := time.Now()
	cleaned := 0

	for cleaned < cache.cleanupBatchSize && time.Since(startTime) < cache.maxCleanupDuration {
		if cache.expirationQueue.Len() == 0 {
			break
		}

		entry := (*cache.expirationQueue)[0]

		if entry.ExpiresAt.IsZero() {
			heap.Pop(cache.expirationQueue)
			if cache.keyToEntry[entry.Key] == entry {
				delete(cache.keyToEntry, entry.Key)
			}
			cleaned++
			continue
		}
		if now.Before(entry.ExpiresAt) {
			break
		}

		heap.Pop(cache.expirationQueue)
		delete(cache.keyToEntry, entry.Key)
		delete(cache.items, entry.Key)
		cleaned++
	}

	cache.lastCleanup = now
	return cleaned
}

// Clear 모든 캐시를 삭제합니다
func (cache *MemoryCache) Clear(_ context.Context) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.items = make(map[string]*CacheItem)
	cache.expirationQueue = &ExpirationQueue{}
	heap.Init(cache.expirationQueue)
	cache.keyToEntry = make(map[string]*ExpirationEntry)
	return nil
}

// Close 메모리 캐시는 해제할 자원이 없습니다
func (cache *MemoryCache) Close() error {
	return nil
}

// StartCleanupWorker 주기적으로 만료 항목을 정리하는 워커를 시작합니다
func (cache *MemoryCache) StartCleanupWorker(interval time.Duration) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cache.ClearExpired()
			case <-ctx.Done():
				return
			}
		}
	}()

	return cancel
}

// EfficiencyStats 만료 힙의 상태 정보
type EfficiencyStats struct {
	QueueSize          int
	KeyIndexSize       int
	LastCleanup        time.Time
	CleanupBatchSize   int
	MaxCleanupDuration time.Duration
}

// GetEfficiencyStats 만료 힙의 통계를 반환합니다
func (cache *MemoryCache) GetEfficiencyStats() EfficiencyStats {
	cache.mu.RLock()
	defer cache.mu.RUnlock()

	return EfficiencyStats{
		QueueSize:          cache.expirationQueue.Len(),
		KeyIndexSize:       len(cache.keyToEntry),
		LastCleanup:        cache.lastCleanup,
		CleanupBatchSize:   cache.cleanupBatchSize,
		MaxCleanupDuration: cache.maxCleanupDuration,
	}
}
