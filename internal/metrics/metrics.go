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

// Farm Metrics
var (
	CropsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsPlanted,
			Help: HelpTextCropsPlanted,
		},
		[]string{LabelCrop, LabelSource},
	)

	CropsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsHarvested,
			Help: HelpTextCropsHarvested,
		},
		[]string{LabelCrop, LabelVariant, LabelSource},
	)

	CropsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsSold,
			Help: HelpTextCropsSold,
		},
		[]string{LabelCrop},
	)

	CropsReady = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsReady,
			Help: HelpTextCropsReady,
		},
		[]string{LabelCrop},
	)

	PlotsPurchased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlotsPurchased,
			Help: HelpTextPlotsPurchased,
		},
	)

	FarmerChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFarmerChanges,
			Help: HelpTextFarmerChanges,
		},
		[]string{LabelType},
	)

	FarmTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFarmTicks,
			Help: HelpTextFarmTicks,
		},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	MoneySpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
		[]string{LabelReason},
	)

	FarmMoney = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameFarmMoney,
			Help: HelpTextFarmMoney,
		},
	)

	FarmPlots = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameFarmPlots,
			Help: HelpTextFarmPlots,
		},
	)

	FarmFarmers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameFarmFarmers,
			Help: HelpTextFarmFarmers,
		},
	)
)
