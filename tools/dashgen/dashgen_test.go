package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/harborview/mls-comps/tools/dashgen/dashboards"
	"github.com/harborview/mls-comps/tools/dashgen/rules"
	"github.com/harborview/mls-comps/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	// Verify dashboard metadata.
	require.NotNil(t, dash.Uid)
	assert.Equal(t, "mls-comps-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "MLS Comps Overview", *dash.Title)

	// Verify template variable.
	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	// Verify we have 7 rows.
	assert.Len(t, dash.Panels, 7)

	// Count total inner panels.
	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 22, totalPanels)

	// Validate PromQL and metrics.
	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "mls-comps-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "mls-comps-recording", group.Name)
	require.Len(t, group.Rules, 6)

	expectedRecords := []string{
		"mlscomps:http_requests:rate5m",
		"mlscomps:http_errors:rate5m",
		"mlscomps:feed_properties:rate5m",
		"mlscomps:feed_errors:rate5m",
		"mlscomps:feed_api_calls:rate5m",
		"mlscomps:snapshot_errors:rate5m",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
	}

	// Verify YAML marshaling works.
	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "mls-comps-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "mls-comps-alerts", group.Name)
	require.Len(t, group.Rules, 8)

	expectedAlerts := []string{
		"MlsCompsDown",
		"MlsCompsReadinessDown",
		"MlsCompsHighErrorRate",
		"MlsCompsFeedErrors",
		"MlsCompsSnapshotErrors",
		"MlsCompsFeedQuotaHigh",
		"MlsCompsFeedLimitReached",
		"MlsCompsJobFailures",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Expr)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}
}

func TestValidateRejectsUnknownMetric(t *testing.T) {
	t.Parallel()

	dash, err := dashboards.BuildOverview().Build()
	require.NoError(t, err)

	// An empty known set makes every metric reference an error.
	result := validate.Dashboard(dash, map[string]bool{})
	assert.False(t, result.Ok())
	assert.NotEmpty(t, result.Errors)
}

func TestRunWritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, false))

	// Dashboard JSON round-trips and carries the expected uid.
	dashJSON, err := os.ReadFile(filepath.Join(dir, "grafana", "data", "mls-comps-overview.json"))
	require.NoError(t, err)

	var decoded struct {
		Uid string `json:"uid"`
	}
	require.NoError(t, json.Unmarshal(dashJSON, &decoded))
	assert.Equal(t, "mls-comps-overview", decoded.Uid)

	// Rule files carry the generated header and parse as YAML.
	for _, name := range []string{"mls-comps-recording-rules.yaml", "mls-comps-alerts.yaml"} {
		data, err := os.ReadFile(filepath.Join(dir, "prometheus", name))
		require.NoError(t, err, "could not read generated file %s", name)
		assert.True(t, strings.HasPrefix(string(data), generatedHeader), "%s missing generated header", name)

		var cr rules.PrometheusRule
		require.NoError(t, yaml.Unmarshal(data, &cr))
		assert.Equal(t, "PrometheusRule", cr.Kind)
	}
}

func TestRunValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: dir, DashboardEnabled: true, RulesEnabled: true}
	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
