package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NextFeedSync returns a stat panel showing time until the next scheduled
// feed sync.
func NextFeedSync() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Next Feed Sync").
		Description("Time until next scheduled RESO feed sync").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`mlscomps_scheduler_next_feed_sync_timestamp_seconds{job="mls-comps"} - time()`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// PropertiesRate returns a timeseries panel showing replicated properties
// per minute.
func PropertiesRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Properties / min").
		Description("Rate of property records replicated per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(6).
		WithTarget(PromQuery(`mlscomps:feed_properties:rate5m * 60`, "properties/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FeedErrors returns a timeseries panel showing feed sync errors per minute.
func FeedErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Errors / min").
		Description("Rate of feed sync errors per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(6).
		WithTarget(PromQuery(`mlscomps:feed_errors:rate5m * 60`, "errors/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SyncDuration returns a timeseries panel showing the p95 feed sync
// duration.
func SyncDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Sync Duration (p95)").
		Description("95th percentile feed sync run duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(6).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(mlscomps_feed_sync_duration_seconds_bucket{job="mls-comps"}[5m])) by (le))`,
			"p95",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
