// Package metrics 注册服务的 Prometheus 指标，由私有路由的 /metrics 导出
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "notes_app"

// Gateway names used as the "gateway" label.
const (
	GatewayGraphQL = "graphql"
	GatewayStorage = "storage"
)

var (
	// GatewayRequests 按网关、操作与结果统计调用次数
	GatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_requests_total",
		Help:      "Calls made to the GraphQL and object storage gateways.",
	}, []string{"gateway", "operation", "result"})

	// GatewayDuration 网关调用耗时
	GatewayDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_duration_seconds",
		Help:      "Latency of GraphQL and object storage gateway calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"gateway", "operation"})

	// BoardNotes 当前列表中的笔记数
	BoardNotes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "board_notes",
		Help:      "Notes held by the most recently refreshed board.",
	})

	// SessionsActive 活跃的视图会话数
	SessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Signed-in view sessions currently held in memory.",
	})
)

// Observe 记录一次网关调用
func Observe(gateway, operation string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	GatewayRequests.WithLabelValues(gateway, operation, result).Inc()
	GatewayDuration.WithLabelValues(gateway, operation).Observe(time.Since(start).Seconds())
}
