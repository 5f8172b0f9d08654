package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы запросов к удалённому API
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	// GatewayRequests считает запросы к API сокращателя по операции и исходу
	GatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shortener_ui_gateway_requests_total",
		Help: "Количество запросов к API сокращателя",
	}, []string{"operation", "outcome"}) // operation: list, search, create, delete

	// GatewayDuration измеряет время ответа API сокращателя
	GatewayDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shortener_ui_gateway_request_duration_seconds",
		Help:    "Время ответа API сокращателя",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	}, []string{"operation"})

	PendingDeletions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shortener_ui_pending_deletions",
		Help: "Количество удалений в окне отмены",
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shortener_ui_active_sessions",
		Help: "Количество открытых пользовательских сессий",
	})

	// StaleLoads считает ответы загрузки, отброшенные как устаревшие
	StaleLoads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shortener_ui_stale_loads_total",
		Help: "Количество отброшенных устаревших ответов загрузки страницы",
	})
)
