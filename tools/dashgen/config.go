package main

import "errors"

// KnownMetrics is the set of metric names exported by mls-comps
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"mlscomps_http_request_duration_seconds": true,
	"mlscomps_http_requests_total":           true,

	// Health metrics.
	"mlscomps_healthz_up": true,
	"mlscomps_readyz_up":  true,

	// Feed replication metrics.
	"mlscomps_feed_properties_total":      true,
	"mlscomps_feed_errors_total":          true,
	"mlscomps_feed_sync_duration_seconds": true,

	// Feed API quota metrics.
	"mlscomps_feed_api_calls_total":        true,
	"mlscomps_feed_daily_usage":            true,
	"mlscomps_feed_daily_limit_hits_total": true,

	// Scoring metrics.
	"mlscomps_similarity_distribution":            true,
	"mlscomps_comparable_search_duration_seconds": true,

	// CMA metrics.
	"mlscomps_cma_sessions_created_total": true,
	"mlscomps_cma_valuations_total":       true,

	// Market snapshot metrics.
	"mlscomps_snapshot_refresh_duration_seconds": true,
	"mlscomps_snapshot_errors_total":             true,

	// Scheduler metrics.
	"mlscomps_scheduler_next_feed_sync_timestamp_seconds": true,
	"mlscomps_scheduler_next_snapshot_timestamp_seconds":  true,
	"mlscomps_job_runs_total":                             true,

	// Lead metrics.
	"mlscomps_leads_captured_total": true,

	// Recording rules.
	"mlscomps:http_requests:rate5m":   true,
	"mlscomps:http_errors:rate5m":     true,
	"mlscomps:feed_properties:rate5m": true,
	"mlscomps:feed_errors:rate5m":     true,
	"mlscomps:feed_api_calls:rate5m":  true,
	"mlscomps:snapshot_errors:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
