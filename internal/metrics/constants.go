package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameCustomersSpawned = "customers_spawned_total"
	MetricNameCustomersServed  = "customers_served_total"
	MetricNameCustomersActive  = "customers_active"
	MetricNameOrdersRegistered = "orders_registered_total"
	MetricNameOrdersActive     = "orders_active"
	MetricNameMiniGameQuality  = "minigame_quality"
	MetricNameMoneyEarned      = "money_earned_total"
	MetricNameMoneySpent       = "money_spent_total"
	MetricNameCafeRating       = "cafe_rating"
	MetricNameInteractions     = "interactions_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextCustomersSpawned = "Total number of customers spawned"
	HelpTextCustomersServed  = "Total number of customers served"
	HelpTextCustomersActive  = "Current number of customers in the cafe"
	HelpTextOrdersRegistered = "Total number of orders registered"
	HelpTextOrdersActive     = "Current number of active orders"
	HelpTextMiniGameQuality  = "Quality scores produced by mini-games"
	HelpTextMoneyEarned      = "Total money earned from completed orders"
	HelpTextMoneySpent       = "Total money spent on upgrades"
	HelpTextCafeRating       = "Current cafe rating"
	HelpTextInteractions     = "Total number of player interactions by kind and outcome"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelKind    = "kind"
	LabelOutcome = "outcome"
)

// Interaction outcome label values
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
)

// HTTPLatencyBuckets are the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// QualityBuckets cover the discrete mini-game quality scores
var QualityBuckets = []float64{10, 40, 70, 100}
