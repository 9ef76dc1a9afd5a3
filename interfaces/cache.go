package interfaces

import (
	"context"
	"time"
)

// Cache 직렬화된 값을 TTL과 함께 보관하는 캐시 인터페이스입니다
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Len() int
	Clear(ctx context.Context) error
	Close() error
}

// CleanupWorkerInterface 만료 항목 정리 워커 인터페이스
type CleanupWorkerInterface interface {
	StartCleanupWorker(interval time.Duration) context.CancelFunc
}
