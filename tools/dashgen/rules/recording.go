package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "mls-comps-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "mls-comps-recording",
					Rules: []Rule{
						{
							Record: "mlscomps:http_requests:rate5m",
							Expr:   `sum(rate(mlscomps_http_requests_total[5m]))`,
						},
						{
							Record: "mlscomps:http_errors:rate5m",
							Expr:   `sum(rate(mlscomps_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "mlscomps:feed_properties:rate5m",
							Expr:   `rate(mlscomps_feed_properties_total[5m])`,
						},
						{
							Record: "mlscomps:feed_errors:rate5m",
							Expr:   `rate(mlscomps_feed_errors_total[5m])`,
						},
						{
							Record: "mlscomps:feed_api_calls:rate5m",
							Expr:   `rate(mlscomps_feed_api_calls_total[5m])`,
						},
						{
							Record: "mlscomps:snapshot_errors:rate5m",
							Expr:   `rate(mlscomps_snapshot_errors_total[5m])`,
						},
					},
				},
			},
		},
	}
}
