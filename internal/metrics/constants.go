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

// Farm metric names
const (
	MetricNameCropsPlanted   = "farm_crops_planted_total"
	MetricNameCropsHarvested = "farm_crops_harvested_total"
	MetricNameCropsSold      = "farm_crops_sold_total"
	MetricNameCropsReady     = "farm_crops_ready_total"
	MetricNamePlotsPurchased = "farm_plots_purchased_total"
	MetricNameFarmerChanges  = "farm_farmer_changes_total"
	MetricNameFarmTicks      = "farm_ticks_total"
	MetricNameMoneyEarned    = "farm_money_earned_total"
	MetricNameMoneySpent     = "farm_money_spent_total"
	MetricNameFarmMoney      = "farm_money"
	MetricNameFarmPlots      = "farm_plots"
	MetricNameFarmFarmers    = "farm_farmers"
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

// Farm metric help text
const (
	HelpTextCropsPlanted   = "Total number of crops planted"
	HelpTextCropsHarvested = "Total number of crop units harvested"
	HelpTextCropsSold      = "Total number of crop units sold"
	HelpTextCropsReady     = "Total number of crops that finished growing"
	HelpTextPlotsPurchased = "Total number of plots purchased"
	HelpTextFarmerChanges  = "Total number of farmer hires, fires and reassignments"
	HelpTextFarmTicks      = "Total number of farmer ticks that changed the farm"
	HelpTextMoneyEarned    = "Total money earned from selling crops"
	HelpTextMoneySpent     = "Total money spent on seeds, plots and farmers"
	HelpTextFarmMoney      = "Current farm balance"
	HelpTextFarmPlots      = "Current number of plots"
	HelpTextFarmFarmers    = "Current number of hired farmers"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelCrop    = "crop"
	LabelVariant = "variant"
	LabelSource  = "source"
	LabelReason  = "reason"
)

// Spend reasons
const (
	SpendSeed   = "seed"
	SpendPlot   = "plot"
	SpendFarmer = "farmer"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadMismatch = "Event payload has unexpected shape"
	LogMsgMetricsRecorded      = "Metrics recorded for event"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"
