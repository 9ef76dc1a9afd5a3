package health

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ssugameworks/pajelingo/constants"
	"github.com/ssugameworks/pajelingo/interfaces"
	"github.com/ssugameworks/pajelingo/utils"
)

// HealthStatus 헬스체크 응답 구조체
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Version   string            `json:"version"`
	GoVersion string            `json:"go_version"`
	Memory    string            `json:"memory_usage"`
	Sessions  int               `json:"active_sessions"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// Checker 개별 의존성 상태를 확인합니다
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc 함수를 Checker 로 사용합니다
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// Handler /health 응답을 만듭니다
type Handler struct {
	startTime time.Time
	sessions  interfaces.SessionStore

	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewHandler 새 헬스체크 핸들러. sessions 는 nil 일 수 있습니다
func NewHandler(sessions interfaces.SessionStore) *Handler {
	return &Handler{
		startTime: time.Now(),
		sessions:  sessions,
		checkers:  make(map[string]Checker),
	}
}

// Register 의존성 검사를 등록합니다
func (h *Handler) Register(name string, checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
	utils.Debug("Health checker registered: %s", name)
}

// CacheChecker 캐시에서 존재하지 않는 키를 읽어 응답 여부를 확인합니다
func CacheChecker(cache interfaces.Cache) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		_, _, err := cache.Get(ctx, "health:probe")
		return err
	})
}

// Status 현재 상태를 계산합니다
func (h *Handler) Status(ctx context.Context) HealthStatus {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	status := HealthStatus{
		Status:    constants.HealthStatusHealthy,
		Timestamp: utils.FormatDateTime(time.Now()),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   constants.AppVersion,
		GoVersion: runtime.Version(),
		Memory:    fmt.Sprintf("%.2f MB", float64(memStats.Alloc)/constants.BytesToMB),
	}
	if h.sessions != nil {
		status.Sessions = h.sessions.Len()
	}

	h.mu.RLock()
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	h.mu.RUnlock()
	sort.Strings(names)

	if len(names) == 0 {
		return status
	}

	status.Checks = make(map[string]string, len(names))
	for _, name := range names {
		h.mu.RLock()
		checker := h.checkers[name]
		h.mu.RUnlock()

		checkCtx, cancel := context.WithTimeout(ctx, constants.HealthCheckTimeout)
		err := checker.Check(checkCtx)
		cancel()

		if err != nil {
			utils.Warn("Health check %s failed: %v", name, err)
			status.Status = constants.HealthStatusUnhealthy
			status.Checks[name] = err.Error()
			continue
		}
		status.Checks[name] = "ok"
	}
	return status
}

// Handle echo 핸들러. 비정상이면 503 을 반환합니다
func (h *Handler) Handle(c echo.Context) error {
	status := h.Status(c.Request().Context())
	code := http.StatusOK
	if status.Status != constants.HealthStatusHealthy {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, status)
}
