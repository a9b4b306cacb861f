package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/harborview/mls-comps/tools/dashgen/dashboards"
	"github.com/harborview/mls-comps/tools/dashgen/rules"
	"github.com/harborview/mls-comps/tools/dashgen/validate"
)

// generatedHeader marks rule files as generated so hand edits stand out
// in review.
const generatedHeader = "# Code generated by tools/dashgen. DO NOT EDIT.\n"

func main() {
	validateOnly := flag.Bool("validate", false, "validate generated artifacts without writing files")
	outputDir := flag.String("output", "", "override output directory")
	flag.Parse()

	cfg := DefaultConfig()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *validateOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, validateOnly bool) error {
	dash, err := dashboards.BuildOverview().Build()
	if err != nil {
		return fmt.Errorf("build overview dashboard: %w", err)
	}

	result := validate.Dashboard(dash, KnownMetrics)
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if !result.Ok() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}
		return fmt.Errorf("dashboard validation failed with %d errors", len(result.Errors))
	}

	if validateOnly {
		fmt.Println("validation passed")
		return nil
	}

	if cfg.DashboardEnabled {
		dashJSON, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal dashboard: %w", err)
		}
		dashJSON = append(dashJSON, '\n')

		path := filepath.Join(cfg.OutputDir, "grafana", "data", "mls-comps-overview.json")
		if err := writeArtifact(path, dashJSON); err != nil {
			return err
		}
	}

	if cfg.RulesEnabled {
		for _, artifact := range []struct {
			name string
			cr   rules.PrometheusRule
		}{
			{"mls-comps-recording-rules.yaml", rules.RecordingRules()},
			{"mls-comps-alerts.yaml", rules.AlertRules()},
		} {
			data, err := yaml.Marshal(artifact.cr)
			if err != nil {
				return fmt.Errorf("marshal %s: %w", artifact.name, err)
			}
			data = append([]byte(generatedHeader), data...)

			path := filepath.Join(cfg.OutputDir, "prometheus", artifact.name)
			if err := writeArtifact(path, data); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
