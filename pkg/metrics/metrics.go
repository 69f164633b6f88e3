package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса.
// Методы безопасны для nil-получателя: при выключенных метриках вызывающий код ничего не проверяет.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal     *prometheus.CounterVec
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec

	CacheLookupsTotal *prometheus.CounterVec

	QuotesTotal               *prometheus.CounterVec
	AvailabilityDegradedTotal *prometheus.CounterVec
	BookingSubmissionsTotal   *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре (его отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"database"}),
		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"database"}),
		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"database"}),

		CacheLookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "cache_lookups_total",
			Help:        "Cache lookups by level and result",
			ConstLabels: constLabels,
		}, []string{"level", "result"}),

		QuotesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "pricing_quotes_total",
			Help:        "Computed quotes by applied tier",
			ConstLabels: constLabels,
		}, []string{"tier"}),
		AvailabilityDegradedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_degraded_total",
			Help:        "Availability lookups answered without backend data",
			ConstLabels: constLabels,
		}, []string{"policy"}),
		BookingSubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Booking submissions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}

// ObserveCache фиксирует результат обращения к кэшу (level: local|remote, result: hit|miss)
func (m *Metrics) ObserveCache(level, result string) {
	if m == nil {
		return
	}
	m.CacheLookupsTotal.WithLabelValues(level, result).Inc()
}

// ObserveQuote фиксирует рассчитанную цену по примененному тарифу
func (m *Metrics) ObserveQuote(tier string) {
	if m == nil {
		return
	}
	if tier == "" {
		tier = "none"
	}
	m.QuotesTotal.WithLabelValues(tier).Inc()
}

// ObserveAvailabilityDegraded фиксирует ответ без данных доступности (policy: fail_open|fail_closed)
func (m *Metrics) ObserveAvailabilityDegraded(policy string) {
	if m == nil {
		return
	}
	m.AvailabilityDegradedTotal.WithLabelValues(policy).Inc()
}

// ObserveBookingSubmission фиксирует результат отправки бронирования
func (m *Metrics) ObserveBookingSubmission(outcome string) {
	if m == nil {
		return
	}
	m.BookingSubmissionsTotal.WithLabelValues(outcome).Inc()
}
