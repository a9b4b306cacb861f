package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// JobFailures returns a timeseries panel showing scheduled job failures
// per hour by job name.
func JobFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Job Failures").
		Description("Scheduled job failures per hour by job name").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(mlscomps_job_runs_total{status="failed"}[1h])) by (job)`,
			"{{job}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LeadsRate returns a timeseries panel showing captured leads per hour.
func LeadsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Leads Captured").
		Description("Leads captured per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`increase(mlscomps_leads_captured_total{job="mls-comps"}[1h])`,
			"leads", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
