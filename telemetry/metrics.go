package telemetry

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	monitoring "cloud.google.com/go/monitoring/apiv3/v2"
	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"github.com/ssugameworks/pajelingo/constants"
	"github.com/ssugameworks/pajelingo/utils"
	"github.com/ssugameworks/pajelingo/widget"
	"google.golang.org/genproto/googleapis/api/metric"
	"google.golang.org/genproto/googleapis/api/monitoredres"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// RenderStats 위젯/상태별로 누적된 렌더링 통계
type RenderStats struct {
	Widget string
	State  string
	Count  int64
	Total  time.Duration
}

// Average 평균 렌더링 소요 시간
func (stats RenderStats) Average() time.Duration {
	if stats.Count == 0 {
		return 0
	}
	return stats.Total / time.Duration(stats.Count)
}

type renderKey struct {
	widget string
	state  string
}

// MetricsClient Google Cloud Monitoring 클라이언트를 래핑합니다.
// 위젯 렌더링은 메모리에 누적했다가 Flush 할 때 한 번에 전송합니다.
type MetricsClient struct {
	client    *monitoring.MetricClient
	projectID string
	enabled   bool

	mu      sync.Mutex
	renders map[renderKey]*RenderStats
}

// NewMetricsClient 새로운 MetricsClient 인스턴스를 생성합니다.
// 비활성화되었거나 클라이언트 생성에 실패하면 전송 없이 집계만 합니다.
func NewMetricsClient(ctx context.Context, enabled bool, projectID string) *MetricsClient {
	metrics := &MetricsClient{
		projectID: projectID,
		renders:   make(map[renderKey]*RenderStats),
	}

	if !enabled {
		utils.Debug("Telemetry disabled")
		return metrics
	}
	if projectID == "" {
		utils.Warn("Project ID not provided, telemetry disabled")
		return metrics
	}

	client, err := monitoring.NewMetricClient(ctx)
	if err != nil {
		utils.Warn("Failed to create monitoring client: %v", err)
		utils.Warn("Telemetry disabled")
		return metrics
	}

	utils.Info("Google Cloud Monitoring telemetry enabled for project: %s", projectID)
	metrics.client = client
	metrics.enabled = true
	return metrics
}

// Enabled 실제 전송 여부
func (m *MetricsClient) Enabled() bool {
	return m.enabled
}

// ObserveRender 위젯 렌더링 결과를 누적합니다
func (m *MetricsClient) ObserveRender(widgetName string, state widget.State, elapsed time.Duration) {
	key := renderKey{widget: widgetName, state: state.String()}

	m.mu.Lock()
	defer m.mu.Unlock()

	stats, ok := m.renders[key]
	if !ok {
		stats = &RenderStats{Widget: key.widget, State: key.state}
		m.renders[key] = stats
	}
	stats.Count++
	stats.Total += elapsed
}

// RenderSnapshot 누적된 렌더링 통계를 위젯, 상태 순으로 반환합니다
func (m *MetricsClient) RenderSnapshot() []RenderStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *MetricsClient) snapshotLocked() []RenderStats {
	snapshot := make([]RenderStats, 0, len(m.renders))
	for _, stats := range m.renders {
		snapshot = append(snapshot, *stats)
	}
	sort.Slice(snapshot, func(i, j int) bool {
		if snapshot[i].Widget != snapshot[j].Widget {
			return snapshot[i].Widget < snapshot[j].Widget
		}
		return snapshot[i].State < snapshot[j].State
	})
	return snapshot
}

// FlushRenders 누적된 렌더링 통계를 전송하고 초기화합니다
func (m *MetricsClient) FlushRenders(ctx context.Context) []RenderStats {
	m.mu.Lock()
	snapshot := m.snapshotLocked()
	m.renders = make(map[renderKey]*RenderStats)
	m.mu.Unlock()

	if !m.enabled || len(snapshot) == 0 {
		return snapshot
	}

	now := timestamppb.Now()
	for _, stats := range snapshot {
		labels := map[string]string{
			"widget": stats.Widget,
			"state":  stats.State,
		}
		if err := m.sendLabeledMetric(ctx, "widget/renders", float64(stats.Count), now, labels); err != nil {
			utils.Warn("Failed to send widget render metric: %v", err)
		}
		if err := m.sendLabeledMetric(ctx, "widget/render_seconds", stats.Average().Seconds(), now, labels); err != nil {
			utils.Warn("Failed to send widget duration metric: %v", err)
		}
	}

	utils.Debug("Widget render metrics sent (%d series)", len(snapshot))
	return snapshot
}

// SendCacheMetrics 캐시 메트릭을 Google Cloud Monitoring으로 전송합니다
func (m *MetricsClient) SendCacheMetrics(ctx context.Context, totalCalls, cacheHits, cacheMisses int64, hitRate float64) {
	if !m.enabled {
		return
	}

	now := timestamppb.Now()

	if err := m.sendCustomMetric(ctx, "cache/hit_rate", hitRate, now); err != nil {
		utils.Warn("Failed to send cache hit rate metric: %v", err)
	}
	if err := m.sendCustomMetric(ctx, "cache/total_calls", float64(totalCalls), now); err != nil {
		utils.Warn("Failed to send total calls metric: %v", err)
	}
	if err := m.sendCustomMetric(ctx, "cache/hits", float64(cacheHits), now); err != nil {
		utils.Warn("Failed to send cache hits metric: %v", err)
	}
	if err := m.sendCustomMetric(ctx, "cache/misses", float64(cacheMisses), now); err != nil {
		utils.Warn("Failed to send cache misses metric: %v", err)
	}

	utils.Debug("Cache metrics sent to Google Cloud Monitoring")
}

// SendSessionMetric 접속 중인 실시간 세션 수를 전송합니다
func (m *MetricsClient) SendSessionMetric(ctx context.Context, active int) {
	if !m.enabled {
		return
	}
	if err := m.sendCustomMetric(ctx, "sessions/active", float64(active), timestamppb.Now()); err != nil {
		utils.Warn("Failed to send session metric: %v", err)
	}
}

func (m *MetricsClient) sendCustomMetric(ctx context.Context, metricType string, value float64, timestamp *timestamppb.Timestamp) error {
	return m.sendLabeledMetric(ctx, metricType, value, timestamp, nil)
}

func (m *MetricsClient) sendLabeledMetric(ctx context.Context, metricType string, value float64, timestamp *timestamppb.Timestamp, labels map[string]string) error {
	if labels == nil {
		labels = make(map[string]string)
	}

	req := &monitoringpb.CreateTimeSeriesRequest{
		Name: fmt.Sprintf("projects/%s", m.projectID),
		TimeSeries: []*monitoringpb.TimeSeries{
			{
				Metric: &metric.Metric{
					Type:   MetricType(metricType),
					Labels: labels,
				},
				Resource: &monitoredres.MonitoredResource{
					Type: "generic_task",
					Labels: map[string]string{
						"project_id": m.projectID,
						"location":   "global",
						"namespace":  constants.TelemetryNamespace,
						"job":        constants.TelemetryJobName,
						"task_id":    constants.TelemetryTaskID,
					},
				},
				Points: []*monitoringpb.Point{
					{
						Interval: &monitoringpb.TimeInterval{
							EndTime: timestamp,
						},
						Value: &monitoringpb.TypedValue{
							Value: &monitoringpb.TypedValue_DoubleValue{
								DoubleValue: value,
							},
						},
					},
				},
			},
		},
	}

	return m.client.CreateTimeSeries(ctx, req)
}

// MetricType 커스텀 메트릭의 전체 타입 이름
func MetricType(name string) string {
	return fmt.Sprintf("custom.googleapis.com/%s/%s", constants.TelemetryPrefix, name)
}

// Close 클라이언트를 정리합니다
func (m *MetricsClient) Close() error {
	if !m.enabled || m.client == nil {
		return nil
	}
	return m.client.Close()
}
