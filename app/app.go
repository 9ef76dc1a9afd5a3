package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ssugameworks/pajelingo/api"
	"github.com/ssugameworks/pajelingo/auth"
	"github.com/ssugameworks/pajelingo/cache"
	"github.com/ssugameworks/pajelingo/config"
	"github.com/ssugameworks/pajelingo/constants"
	"github.com/ssugameworks/pajelingo/health"
	"github.com/ssugameworks/pajelingo/interfaces"
	"github.com/ssugameworks/pajelingo/scheduler"
	"github.com/ssugameworks/pajelingo/server"
	"github.com/ssugameworks/pajelingo/storage"
	"github.com/ssugameworks/pajelingo/telemetry"
	"github.com/ssugameworks/pajelingo/utils"
	"github.com/ssugameworks/pajelingo/validation"
)

type Application struct {
	config       *config.Config
	cache        interfaces.Cache
	stopCleanup  context.CancelFunc
	apiClient    *api.CachedClient
	resolver     *auth.Resolver
	sessions     *storage.InMemoryStorage
	metrics      *telemetry.MetricsClient
	healthChecks *health.Handler
	server       *server.Server
	scheduler    *scheduler.Scheduler
	errors       *utils.ErrorHelper
}

// New 환경변수에서 설정을 읽어 애플리케이션을 구성합니다
func New() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig 주어진 설정으로 애플리케이션을 구성합니다
func NewWithConfig(cfg *config.Config) (*Application, error) {
	app := &Application{config: cfg, errors: utils.NewErrorHelper("app")}

	if err := app.loadConfig(); err != nil {
		return nil, err
	}

	if err := app.initializeDependencies(); err != nil {
		return nil, err
	}

	app.initializeServer()
	app.initializeScheduler()

	return app, nil
}

func (app *Application) loadConfig() error {
	if err := app.config.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	utils.SetLevel(app.config.Logging.Level)
	if app.config.IsDebugMode() {
		utils.SetLevel(constants.LogLevelDebug)
	}
	return nil
}

func (app *Application) initializeDependencies() error {
	gamesCache, err := app.newCache()
	if err != nil {
		return app.errors.WrapError(err, "failed to initialize cache")
	}
	app.cache = gamesCache

	backend := api.NewPajelingoClient(app.config.API.BaseURL, app.config.API.Timeout)
	app.apiClient = api.NewCachedClient(backend, app.cache, app.config.Cache.GamesTTL)

	app.resolver = auth.NewResolver(app.config.Auth.Secret, app.config.Auth.Cookie)
	if !app.resolver.Enabled() {
		utils.Warn("AUTH_SECRET is not set, every visitor is treated as anonymous")
	}

	app.sessions = storage.NewInMemoryStorage()
	app.metrics = telemetry.NewMetricsClient(context.Background(), app.config.Telemetry.Enabled, app.config.Telemetry.ProjectID)

	app.healthChecks = health.NewHandler(app.sessions)
	app.healthChecks.Register(app.config.Cache.Backend+"-cache", health.CacheChecker(app.cache))

	return nil
}

func (app *Application) newCache() (interfaces.Cache, error) {
	if app.config.Cache.Backend == constants.CacheBackendRedis {
		redisCache, err := cache.NewRedisCache(context.Background(), cache.RedisOptions{
			Addr:     app.config.Cache.RedisAddr,
			Password: app.config.Cache.RedisPassword,
			DB:       app.config.Cache.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		utils.Info("Using Redis cache at %s", app.config.Cache.RedisAddr)
		return redisCache, nil
	}

	var memoryCache interfaces.Cache = cache.NewMemoryCache()
	if worker, ok := memoryCache.(interfaces.CleanupWorkerInterface); ok {
		app.stopCleanup = worker.StartCleanupWorker(constants.CacheCleanupInterval)
	}
	utils.Info("Using in-memory cache")
	return memoryCache, nil
}

func (app *Application) initializeServer() {
	app.server = server.New(server.Dependencies{
		Client:     app.apiClient,
		Auth:       app.resolver,
		Forms:      validation.NewRegistry(),
		Sessions:   app.sessions,
		Health:     app.healthChecks,
		MinLoading: app.config.Widget.MinLoading,
		Observer:   app.metrics,
	})
}

func (app *Application) initializeScheduler() {
	app.scheduler = scheduler.NewScheduler()
	app.scheduler.Add(scheduler.WarmupTask(app.apiClient, app.config.Schedule.WarmupInterval))
	if app.metrics.Enabled() {
		app.scheduler.Add(scheduler.TelemetryTask(app.metrics, app.apiClient, app.sessions, constants.TelemetryInterval))
	}
}

// Start 스케줄러를 시작합니다. HTTP 서버는 Run 에서 띄웁니다
func (app *Application) Start() error {
	app.scheduler.Start(context.Background())
	app.printStartupMessage()
	return nil
}

func (app *Application) printStartupMessage() {
	utils.Info("pajelingo web v%s", constants.AppVersion)
	utils.Info("Backend API: %s", app.config.API.BaseURL)
	utils.Info("Widget minimum loading time: %v", app.config.Widget.MinLoading)
}

// Run 서버를 띄우고 종료 신호나 서버 오류가 있을 때까지 기다립니다
func (app *Application) Run() error {
	if err := app.Start(); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.server.Start(app.config.Server.ListenAddr)
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sc)

	select {
	case sig := <-sc:
		utils.Info("Received %s", sig)
	case err := <-serverErr:
		if err != nil {
			app.Stop()
			return fmt.Errorf("HTTP server failed: %w", err)
		}
	}

	return app.Stop()
}

// printCacheStats 캐시 통계를 출력합니다
func (app *Application) printCacheStats() {
	if app.apiClient != nil {
		utils.Info("📊 %s", app.apiClient.GetCacheStats().String())
	}
}

// Stop 모든 구성 요소를 정리합니다
func (app *Application) Stop() error {
	utils.Info("🔄 서버를 종료하는 중...")

	app.printCacheStats()

	if app.scheduler != nil {
		app.scheduler.Stop()
	}

	var shutdownErr error
	if app.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		shutdownErr = app.server.Shutdown(ctx)
		cancel()
	}

	if app.metrics != nil {
		app.metrics.FlushRenders(context.Background())
		app.errors.LogError(app.metrics.Close(), "close telemetry client")
	}

	if app.stopCleanup != nil {
		app.stopCleanup()
	}
	if app.cache != nil {
		app.errors.LogError(app.cache.Close(), "close cache")
	}

	if shutdownErr != nil {
		return app.errors.WrapError(shutdownErr, "server shutdown failed")
	}
	utils.Info("서버가 정상적으로 종료되었습니다.")
	return nil
}
