package constants

import "time"

// 시스템 관련 상수
const (
	// 애플리케이션 버전
	AppVersion = "0.1.0"

	// 네트워크 관련
	DefaultHTTPPort = "8080"

	// 메모리 관련
	BytesToMB = 1024 * 1024

	// 헬스체크 관련
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
	HealthCheckTimeout    = 2 * time.Second

	// 서버 종료 대기 시간
	ShutdownTimeout = 10 * time.Second

	// 웹소켓 관련
	WSWriteTimeout   = 10 * time.Second
	WSReadLimit      = 4096
	WSSendBufferSize = 16

	// 테스트 관련
	TestAPITimeout = 10 * time.Second
)
