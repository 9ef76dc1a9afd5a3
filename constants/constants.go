package constants

import "time"

// API 관련 상수
const (
	DefaultAPIBaseURL = "http://localhost:8000"
	RankingsPath      = "/api/rankings/"
	ScoresPath        = "/api/scores/"
	GamesPath         = "/api/games"
	APITimeout        = 0 // 0이면 전송 계층 기본값을 따릅니다

	HTTPSuccessMin = 200
	HTTPSuccessMax = 299
)

// 쿼리 파라미터 이름
const (
	QueryLanguage = "language"
	QueryUser     = "user"
	QueryPage     = "page"
)

// 랭킹/페이지네이션 관련 상수
const (
	RankingPageSize = 10 // 백엔드 RankingsPaginator 의 page_size
	FirstPage       = 1
	MaxPageButtons  = 4
)

// 위젯 관련 상수
const (
	DefaultMinLoading = 3 * time.Second // 로딩 화면 최소 노출 시간
	PersonalRowPrefix = "(You)"
	EllipsisText      = "..."
)

// 위젯 종류
const (
	WidgetRankings    = "rankings"
	WidgetLeaderboard = "leaderboard"
	WidgetScores      = "scores"
)

// 위젯 컨테이너 대상
const (
	TargetContent    = "content"
	TargetPagination = "pagination"
)

// 날짜 형식
const (
	DateTimeFormat = "2006-01-02 15:04:05"
)

// 로그 관련 상수
const (
	LogLevelDebug = "DEBUG"
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)

// 문자열 크기 제한
const (
	TruncateIndicator = "..."
	MaxLoggedBodySize = 256
)

// 환경 변수 키
const (
	EnvConfigFile       = "CONFIG_FILE"
	EnvAPIBaseURL       = "API_BASE_URL"
	EnvAPITimeout       = "API_TIMEOUT"
	EnvListenAddr       = "LISTEN_ADDR"
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvDebugMode        = "DEBUG_MODE"
	EnvMinLoading       = "WIDGET_MIN_LOADING"
	EnvCacheBackend     = "CACHE_BACKEND"
	EnvRedisAddr        = "REDIS_ADDR"
	EnvRedisPassword    = "REDIS_PASSWORD"
	EnvRedisDB          = "REDIS_DB"
	EnvGamesCacheTTL    = "GAMES_CACHE_TTL"
	EnvAuthSecret       = "AUTH_SECRET"
	EnvAuthCookie       = "AUTH_COOKIE"
	EnvWarmupInterval   = "GAMES_WARMUP_INTERVAL"
	EnvTelemetryEnabled = "TELEMETRY_ENABLED"
	EnvGoogleProject    = "GOOGLE_CLOUD_PROJECT"
)

// 캐시 백엔드
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// 텔레메트리 관련 상수
const (
	TelemetryNamespace = "pajelingo-web"
	TelemetryJobName   = "presentation"
	TelemetryTaskID    = "main"
	TelemetryPrefix    = "pajelingo_web"
)
