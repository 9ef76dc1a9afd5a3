package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ssugameworks/pajelingo/constants"
	"gopkg.in/ini.v1"
)

// Config 애플리케이션의 전체 설정을 관리합니다
type Config struct {
	API       APIConfig
	Server    ServerConfig
	Widget    WidgetConfig
	Cache     CacheConfig
	Auth      AuthConfig
	Schedule  ScheduleConfig
	Logging   LoggingConfig
	Telemetry TelemetryConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration // 0이면 제한 없음
}

type ServerConfig struct {
	ListenAddr string
}

type WidgetConfig struct {
	MinLoading time.Duration
}

type CacheConfig struct {
	Backend       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	GamesTTL      time.Duration
}

type AuthConfig struct {
	Secret string
	Cookie string
}

type ScheduleConfig struct {
	WarmupInterval time.Duration
}

type LoggingConfig struct {
	Level     string
	DebugMode bool
}

type TelemetryConfig struct {
	Enabled   bool
	ProjectID string
}

// source 환경변수를 우선하고, 없으면 설정 파일 값을 사용합니다
type source struct {
	file *ini.File
}

// Load 환경변수와 선택적인 INI 설정 파일(CONFIG_FILE)에서 설정을 로드합니다
func Load() (*Config, error) {
	src := source{}
	if path := os.Getenv(constants.EnvConfigFile); path != "" {
		file, err := ini.Load(path)
		if err != nil {
			return nil, &ConfigError{
				Field:   constants.EnvConfigFile,
				Message: fmt.Sprintf("failed to read %s: %v", path, err),
			}
		}
		src.file = file
	}
	return src.load(), nil
}

func (src source) load() *Config {
	listenAddr := src.get(constants.EnvListenAddr, "")
	if listenAddr == "" {
		listenAddr = ":" + src.get(constants.EnvPort, constants.DefaultHTTPPort)
	}

	return &Config{
		API: APIConfig{
			BaseURL: src.get(constants.EnvAPIBaseURL, constants.DefaultAPIBaseURL),
			Timeout: src.getDuration(constants.EnvAPITimeout, constants.APITimeout),
		},
		Server: ServerConfig{
			ListenAddr: listenAddr,
		},
		Widget: WidgetConfig{
			MinLoading: src.getDuration(constants.EnvMinLoading, constants.DefaultMinLoading),
		},
		Cache: CacheConfig{
			Backend:       strings.ToLower(src.get(constants.EnvCacheBackend, constants.CacheBackendMemory)),
			RedisAddr:     src.get(constants.EnvRedisAddr, ""),
			RedisPassword: src.get(constants.EnvRedisPassword, ""),
			RedisDB:       src.getInt(constants.EnvRedisDB, 0),
			GamesTTL:      src.getDuration(constants.EnvGamesCacheTTL, constants.GamesCacheTTL),
		},
		Auth: AuthConfig{
			Secret: src.get(constants.EnvAuthSecret, ""),
			Cookie: src.get(constants.EnvAuthCookie, constants.DefaultAuthCookie),
		},
		Schedule: ScheduleConfig{
			WarmupInterval: src.getDuration(constants.EnvWarmupInterval, constants.GamesWarmupInterval),
		},
		Logging: LoggingConfig{
			Level:     src.get(constants.EnvLogLevel, constants.LogLevelInfo),
			DebugMode: src.getBool(constants.EnvDebugMode, false),
		},
		Telemetry: TelemetryConfig{
			Enabled:   src.getBool(constants.EnvTelemetryEnabled, false),
			ProjectID: src.get(constants.EnvGoogleProject, ""),
		},
	}
}

// Validate 설정의 유효성을 검사합니다
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return &ConfigError{
			Field:   "API.BaseURL",
			Message: "API_BASE_URL must be an absolute URL (got: " + c.API.BaseURL + ")",
		}
	}

	if c.API.Timeout < 0 {
		return &ConfigError{Field: "API.Timeout", Message: "API_TIMEOUT must not be negative"}
	}

	if c.Widget.MinLoading < 0 {
		return &ConfigError{Field: "Widget.MinLoading", Message: "WIDGET_MIN_LOADING must not be negative"}
	}

	validLogLevels := map[string]bool{
		constants.LogLevelDebug: true,
		constants.LogLevelInfo:  true,
		constants.LogLevelWarn:  true,
		constants.LogLevelError: true,
	}
	if !validLogLevels[strings.ToUpper(c.Logging.Level)] {
		return &ConfigError{
			Field:   "Logging.Level",
			Message: "LOG_LEVEL must be one of: DEBUG, INFO, WARN, ERROR (got: " + c.Logging.Level + ")",
		}
	}

	switch c.Cache.Backend {
	case constants.CacheBackendMemory:
	case constants.CacheBackendRedis:
		if c.Cache.RedisAddr == "" {
			return &ConfigError{Field: "Cache.RedisAddr", Message: "REDIS_ADDR is required when CACHE_BACKEND=redis"}
		}
	default:
		return &ConfigError{
			Field:   "Cache.Backend",
			Message: "CACHE_BACKEND must be memory or redis (got: " + c.Cache.Backend + ")",
		}
	}

	if c.Cache.GamesTTL <= 0 {
		return &ConfigError{Field: "Cache.GamesTTL", Message: "GAMES_CACHE_TTL must be positive"}
	}

	if c.Telemetry.Enabled && c.Telemetry.ProjectID == "" {
		return &ConfigError{
			Field:   "Telemetry.ProjectID",
			Message: "GOOGLE_CLOUD_PROJECT is required when TELEMETRY_ENABLED=true",
		}
	}

	return nil
}

// IsDebugMode 디버그 모드 여부를 반환합니다
func (c *Config) IsDebugMode() bool {
	return c.Logging.DebugMode || strings.ToUpper(c.Logging.Level) == constants.LogLevelDebug
}

// AuthEnabled 토큰 검증용 비밀키가 설정되었는지 확인합니다
func (c *Config) AuthEnabled() bool {
	return c.Auth.Secret != ""
}

// ConfigError 설정 관련 오류를 나타냅니다
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in " + e.Field + ": " + e.Message
}

// 헬퍼 함수들
func (src source) get(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if src.file != nil {
		if value := src.file.Section(ini.DefaultSection).Key(key).String(); value != "" {
			return value
		}
	}
	return defaultValue
}

func (src source) getInt(key string, defaultValue int) int {
	if value := src.get(key, ""); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (src source) getBool(key string, defaultValue bool) bool {
	if value := src.get(key, ""); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getDuration "3s" 같은 Go 형식과 초 단위 정수를 모두 받습니다
func (src source) getDuration(key string, defaultValue time.Duration) time.Duration {
	value := src.get(key, "")
	if value == "" {
		return defaultValue
	}
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}
