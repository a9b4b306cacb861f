// Package validate checks generated dashboard definitions for broken
// PromQL and references to metrics the service does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings. Errors indicate queries that would
// be broken in Grafana; Warnings indicate suspicious but renderable panels.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// panelTargets is the subset of a marshaled panel we need for validation.
// Targets are datasource-specific types in the foundation SDK, so they are
// decoded through JSON rather than type-asserted.
type panelTargets struct {
	Targets []struct {
		Expr string `json:"expr"`
	} `json:"targets"`
}

// Dashboard parses every Prometheus target expression in the dashboard and
// verifies each referenced metric name is in known. Histogram series
// suffixes (_bucket, _sum, _count) resolve to their base metric.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result
	for _, p := range dash.Panels {
		switch {
		case p.RowPanel != nil:
			for i := range p.RowPanel.Panels {
				checkPanel(&res, p.RowPanel.Panels[i], known)
			}
		case p.Panel != nil:
			checkPanel(&res, *p.Panel, known)
		}
	}
	return res
}

func checkPanel(res *Result, p dashboard.Panel, known map[string]bool) {
	title := "untitled"
	if p.Title != nil && *p.Title != "" {
		title = *p.Title
	}

	raw, err := json.Marshal(p)
	if err != nil {
		res.errorf("panel %q: marshal: %v", title, err)
		return
	}
	var pt panelTargets
	if err := json.Unmarshal(raw, &pt); err != nil {
		res.errorf("panel %q: decode targets: %v", title, err)
		return
	}
	if len(pt.Targets) == 0 {
		res.warnf("panel %q has no targets", title)
		return
	}

	for _, target := range pt.Targets {
		if target.Expr == "" {
			res.warnf("panel %q has a target with an empty expression", title)
			continue
		}
		checkExpr(res, title, target.Expr, known)
	}
}

func checkExpr(res *Result, title, expr string, known map[string]bool) {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("panel %q: invalid PromQL %q: %v", title, expr, err)
		return
	}

	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !metricKnown(vs.Name, known) {
			res.errorf("panel %q references unknown metric %q", title, vs.Name)
		}
		return nil
	})
}

func metricKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}
