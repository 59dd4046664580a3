package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	SnapshotSavesTotal  *prometheus.CounterVec
	SnapshotLoadsTotal  *prometheus.CounterVec
}

// New регистрирует метрики в дефолтном реестре prometheus
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency distribution",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		SnapshotSavesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "snapshot_saves_total",
			Help:        "Total number of snapshot save operations by key and result",
			ConstLabels: constLabels,
		}, []string{"key", "result"}),

		SnapshotLoadsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "snapshot_loads_total",
			Help:        "Total number of snapshot load operations by key and result",
			ConstLabels: constLabels,
		}, []string{"key", "result"}),
	}
}

// ObserveSnapshotSave инкрементирует счетчик сохранений снапшота
func (m *Metrics) ObserveSnapshotSave(key string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.SnapshotSavesTotal.WithLabelValues(key, result).Inc()
}

// ObserveSnapshotLoad инкрементирует счетчик загрузок снапшота
func (m *Metrics) ObserveSnapshotLoad(key string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.SnapshotLoadsTotal.WithLabelValues(key, result).Inc()
}
