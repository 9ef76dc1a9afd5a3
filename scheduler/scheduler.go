package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/ssugameworks/pajelingo/api"
	"github.com/ssugameworks/pajelingo/interfaces"
	"github.com/ssugameworks/pajelingo/telemetry"
	"github.com/ssugameworks/pajelingo/utils"
)

// Task 일정 간격으로 반복 실행되는 작업
type Task struct {
	Name      string
	Interval  time.Duration
	Immediate bool // 시작하자마자 한 번 실행
	Run       func(ctx context.Context) error
}

// Scheduler 등록된 작업을 각자의 주기로 실행합니다
type Scheduler struct {
	mu      sync.Mutex
	tasks   []Task
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add 작업을 등록합니다. 간격이 0 이하인 작업은 무시합니다
func (s *Scheduler) Add(task Task) {
	if task.Interval <= 0 || task.Run == nil {
		utils.Debug("Skipping scheduled task %s (interval %v)", task.Name, task.Interval)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
}

// Tasks 등록된 작업 이름
func (s *Scheduler) Tasks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.tasks))
	for i, task := range s.tasks {
		names[i] = task.Name
	}
	return names
}

// Start 모든 작업을 시작합니다. 이미 실행 중이면 아무것도 하지 않습니다
func (s *Scheduler) Start(parent context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}

	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.running = true

	for _, task := range s.tasks {
		s.wg.Add(1)
		go s.loop(ctx, task)
	}
	utils.Info("Scheduler started with %d tasks", len(s.tasks))
}

func (s *Scheduler) loop(ctx context.Context, task Task) {
	defer s.wg.Done()

	if task.Immediate {
		s.runTask(ctx, task)
	}

	ticker := time.NewTicker(task.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runTask(ctx, task)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) runTask(ctx context.Context, task Task) {
	if err := task.Run(ctx); err != nil {
		utils.Warn("Scheduled task %s failed: %v", task.Name, err)
		return
	}
	utils.Debug("Scheduled task %s completed", task.Name)
}

// Stop 모든 작업을 멈추고 진행 중인 실행이 끝날 때까지 기다립니다
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.cancel()
	s.running = false
	s.mu.Unlock()

	s.wg.Wait()
	utils.Info("Scheduler stopped")
}

// GamesWarmer 게임 목록 캐시를 새로 채울 수 있는 클라이언트
type GamesWarmer interface {
	WarmupGames(ctx context.Context) error
}

// WarmupTask 게임 목록 캐시를 주기적으로 갱신하는 작업
func WarmupTask(warmer GamesWarmer, interval time.Duration) Task {
	return Task{
		Name:      "games-warmup",
		Interval:  interval,
		Immediate: true,
		Run:       warmer.WarmupGames,
	}
}

// CacheStatsSource 캐시 통계를 제공하는 클라이언트
type CacheStatsSource interface {
	GetCacheStats() api.CacheMetrics
}

// TelemetryTask 캐시, 세션, 렌더링 메트릭을 주기적으로 전송하는 작업
func TelemetryTask(metrics *telemetry.MetricsClient, stats CacheStatsSource, sessions interfaces.SessionStore, interval time.Duration) Task {
	return Task{
		Name:     "telemetry-flush",
		Interval: interval,
		Run: func(ctx context.Context) error {
			if stats != nil {
				cacheStats := stats.GetCacheStats()
				utils.Debug("%s", cacheStats.String())
				metrics.SendCacheMetrics(ctx, cacheStats.TotalCalls, cacheStats.CacheHits, cacheStats.CacheMisses, cacheStats.HitRate)
			}
			if sessions != nil {
				metrics.SendSessionMetric(ctx, sessions.Len())
			}
			metrics.FlushRenders(ctx)
			return nil
		},
	}
}
