package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	CustomersSpawned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCustomersSpawned,
			Help: HelpTextCustomersSpawned,
		},
	)

	CustomersServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCustomersServed,
			Help: HelpTextCustomersServed,
		},
	)

	CustomersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCustomersActive,
			Help: HelpTextCustomersActive,
		},
	)

	OrdersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOrdersRegistered,
			Help: HelpTextOrdersRegistered,
		},
	)

	OrdersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameOrdersActive,
			Help: HelpTextOrdersActive,
		},
	)

	MiniGameQuality = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameMiniGameQuality,
			Help:    HelpTextMiniGameQuality,
			Buckets: QualityBuckets,
		},
		[]string{LabelKind},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)

	CafeRating = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCafeRating,
			Help: HelpTextCafeRating,
		},
	)

	Interactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInteractions,
			Help: HelpTextInteractions,
		},
		[]string{LabelKind, LabelOutcome},
	)
)
