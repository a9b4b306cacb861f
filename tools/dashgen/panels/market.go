package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NextSnapshot returns a stat panel showing time until the next scheduled
// market snapshot refresh.
func NextSnapshot() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Next Snapshot").
		Description("Time until next scheduled market snapshot refresh").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`mlscomps_scheduler_next_snapshot_timestamp_seconds{job="mls-comps"} - time()`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// SnapshotDuration returns a timeseries panel showing the p95 snapshot
// refresh duration.
func SnapshotDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Refresh Duration (p95)").
		Description("95th percentile market snapshot refresh duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(9).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(mlscomps_snapshot_refresh_duration_seconds_bucket{job="mls-comps"}[5m])) by (le))`,
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

// SnapshotErrors returns a timeseries panel showing snapshot refresh errors
// per hour.
func SnapshotErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Refresh Errors").
		Description("Market snapshot refresh errors per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(9).
		WithTarget(PromQuery(`mlscomps:snapshot_errors:rate5m * 3600`, "errors/h", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
