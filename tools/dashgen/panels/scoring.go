package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SimilarityDistribution returns a bar gauge panel showing the distribution
// of comparable similarity scores across histogram buckets.
func SimilarityDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Similarity Distribution").
		Description("Distribution of comparable similarity scores (0-100)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			`sum(increase(mlscomps_similarity_distribution_bucket{job="mls-comps"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ComparableSearchDuration returns a timeseries panel showing p50 and p95
// comparable search latencies.
func ComparableSearchDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Comparable Search Duration").
		Description("Comparable candidate search and ranking duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(mlscomps_comparable_search_duration_seconds_bucket{job="mls-comps"}[5m])) by (le))`,
			"p50",
			"A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(mlscomps_comparable_search_duration_seconds_bucket{job="mls-comps"}[5m])) by (le))`,
			"p95",
			"B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CMAActivity returns a timeseries panel showing CMA sessions created and
// valuations computed per hour.
func CMAActivity() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("CMA Activity").
		Description("CMA sessions created and valuations computed per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`increase(mlscomps_cma_sessions_created_total{job="mls-comps"}[1h])`,
			"sessions", "A",
		)).
		WithTarget(PromQuery(
			`increase(mlscomps_cma_valuations_total{job="mls-comps"}[1h])`,
			"valuations", "B",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
