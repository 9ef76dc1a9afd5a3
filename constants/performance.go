package constants

import "time"

// 메모리 풀 관련 상수
const (
	DefaultBufferSize = 2048 // 프래그먼트 렌더링 버퍼 기본 크기
	MaxPooledBuffer   = 64 * 1024
)

// 캐시 효율성 관련
const (
	CacheCleanupBatchSize   = 50                    // 한 번에 정리할 항목 수
	MaxCacheCleanupDuration = 10 * time.Millisecond // 1회 정리 작업 최대 시간
)
