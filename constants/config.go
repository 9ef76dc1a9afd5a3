package constants

import "time"

// 캐시 설정 상수
const (
	GamesCacheTTL        = 10 * time.Minute // 게임 목록 캐시 만료 시간
	CacheCleanupInterval = 5 * time.Minute  // 캐시 정리 간격
	GamesCacheKey        = "games"
	RedisKeyPrefix       = "pajelingo:cache:"

	GamesWarmupInterval = 30 * time.Minute // 게임 목록 예열 주기
	TelemetryInterval   = 1 * time.Minute  // 캐시 메트릭 전송 주기
)

// 인증 관련 상수
const (
	DefaultAuthCookie = "pajelingo_session"
	BearerPrefix      = "Bearer "
	ClaimSubject      = "sub"
	ClaimUsername     = "username"
)
