package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// mls-comps operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "mls-comps-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "mls-comps-alerts",
					Rules: []Rule{
						{
							Alert: "MlsCompsDown",
							Expr:  `absent(up{job="mls-comps"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "MLS Comps is down",
								"description": "The mls-comps job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "MlsCompsReadinessDown",
							Expr:  `mlscomps_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "MLS Comps readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "MlsCompsHighErrorRate",
							Expr:  `mlscomps:http_errors:rate5m / mlscomps:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on MLS Comps",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "MlsCompsFeedErrors",
							Expr:  `mlscomps:feed_errors:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Feed sync errors detected",
								"description": "The RESO feed replication pipeline has been producing errors for more than 5 minutes.",
							},
						},
						{
							Alert: "MlsCompsSnapshotErrors",
							Expr:  `mlscomps:snapshot_errors:rate5m > 0`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Market snapshot refresh errors detected",
								"description": "Market snapshot refresh has been failing for one or more cities for more than 10 minutes.",
							},
						},
						{
							Alert: "MlsCompsFeedQuotaHigh",
							Expr:  `mlscomps_feed_daily_usage > 8000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Feed API daily usage is above 80% of the quota",
								"description": "Daily feed API usage has exceeded 8000 calls (limit is 10000).",
							},
						},
						{
							Alert: "MlsCompsFeedLimitReached",
							Expr:  `increase(mlscomps_feed_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Feed API daily limit has been reached",
								"description": "The RESO feed API daily quota has been exhausted. Replication is paused until reset.",
							},
						},
						{
							Alert: "MlsCompsJobFailures",
							Expr:  `increase(mlscomps_job_runs_total{status="failed"}[1h]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Scheduled job failures detected",
								"description": "One or more scheduled jobs (feed sync or snapshot refresh) have failed in the last hour.",
							},
						},
					},
				},
			},
		},
	}
}
