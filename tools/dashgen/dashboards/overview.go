// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/harborview/mls-comps/tools/dashgen/panels"
)

// BuildOverview constructs the MLS Comps Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("MLS Comps Overview").
		Uid("mls-comps-overview").
		Tags([]string{"mls-comps", "harborview"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Feed API.
	b.WithRow(dashboard.NewRowBuilder("Feed API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	// Row 4: Feed Sync.
	b.WithRow(dashboard.NewRowBuilder("Feed Sync").
		WithPanel(panels.NextFeedSync()).
		WithPanel(panels.PropertiesRate()).
		WithPanel(panels.FeedErrors()).
		WithPanel(panels.SyncDuration()))

	// Row 5: Scoring.
	b.WithRow(dashboard.NewRowBuilder("Scoring").
		WithPanel(panels.SimilarityDistribution()).
		WithPanel(panels.ComparableSearchDuration()).
		WithPanel(panels.CMAActivity()))

	// Row 6: Market Snapshots.
	b.WithRow(dashboard.NewRowBuilder("Market Snapshots").
		WithPanel(panels.NextSnapshot()).
		WithPanel(panels.SnapshotDuration()).
		WithPanel(panels.SnapshotErrors()))

	// Row 7: Leads & Jobs.
	b.WithRow(dashboard.NewRowBuilder("Leads & Jobs").
		WithPanel(panels.LeadsRate()).
		WithPanel(panels.JobFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
