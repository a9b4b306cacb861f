// Package metrics defines Prometheus metrics for mls-comps.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mlscomps"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe succeeded, 0 otherwise.",
	})
)

// Feed sync metrics.
var (
	FeedPropertiesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_properties_total",
		Help:      "Total number of property records ingested from the feed.",
	})

	FeedErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_errors_total",
		Help:      "Total number of feed sync errors.",
	})

	FeedSyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "feed_sync_duration_seconds",
		Help:      "Duration of feed sync cycles in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Feed API metrics.
var (
	FeedAPICallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_api_calls_total",
		Help:      "Total cumulative feed API calls.",
	})

	FeedDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "feed_daily_usage",
		Help:      "Current daily feed API call count within the rolling 24-hour window.",
	})

	FeedDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_daily_limit_hits_total",
		Help:      "Total number of times the daily feed API limit was reached.",
	})
)

// Scoring metrics.
var (
	SimilarityDistribution = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "similarity_distribution",
		Help:      "Distribution of computed similarity scores.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11), // 0, 10, 20, ..., 100
	})

	ComparableSearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "comparable_search_duration_seconds",
		Help:      "Duration of comparable search requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// CMA metrics.
var (
	CMASessionsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cma_sessions_created_total",
		Help:      "Total number of CMA sessions created.",
	})

	CMAValuationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cma_valuations_total",
		Help:      "Total number of CMA valuations computed.",
	})
)

// Market snapshot metrics.
var (
	SnapshotRefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "snapshot_refresh_duration_seconds",
		Help:      "Duration of market snapshot refresh cycles in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	SnapshotErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_errors_total",
		Help:      "Total number of snapshot refresh errors.",
	})
)

// Scheduler metrics.
var (
	SchedulerNextFeedSyncTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_feed_sync_timestamp_seconds",
		Help:      "Unix timestamp of the next scheduled feed sync.",
	})

	SchedulerNextSnapshotTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_snapshot_timestamp_seconds",
		Help:      "Unix timestamp of the next scheduled snapshot refresh.",
	})

	JobRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_runs_total",
		Help:      "Total scheduled job executions by job and status.",
	}, []string{"job", "status"})
)

// Lead metrics.
var (
	LeadsCapturedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_captured_total",
		Help:      "Total number of leads captured.",
	})
)
