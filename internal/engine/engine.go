// Package engine orchestrates feed synchronization, comparable search,
// CMA valuation, and market snapshot refresh. Handlers and scheduled
// jobs both go through the Engine so the pipeline behaves the same
// regardless of what triggered it.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/harborview/mls-comps/internal/feed"
	"github.com/harborview/mls-comps/internal/metrics"
	"github.com/harborview/mls-comps/internal/store"
	"github.com/harborview/mls-comps/pkg/comps"
	domain "github.com/harborview/mls-comps/pkg/types"
)

const (
	defaultSearchRadiusMiles = 2.0
	defaultPriceBandPct      = 30.0
	defaultMaxComparables    = 25
	defaultMinComparables    = 3
	defaultClosedWindowDays  = 180
)

// ErrNoComparables is returned when a comparable search cannot satisfy
// the minimum comparable count.
var ErrNoComparables = errors.New("not enough comparables")

// ErrFeedDisabled is returned by RunFeedSync when no feed client is
// configured.
var ErrFeedDisabled = errors.New("feed is not configured")

// Engine orchestrates feed sync, comparable scoring, valuation, and
// market snapshots.
type Engine struct {
	store store.Store
	feed  feed.Client
	log   *slog.Logger

	paginator        *feed.Paginator
	gradeWeights     comps.GradeWeights
	heatWeights      comps.HeatWeights
	searchRadius     float64
	priceBandPct     float64
	maxComparables   int
	minComparables   int
	closedWindowDays int
	staggerOffset    time.Duration

	mu       sync.Mutex
	lastSync time.Time
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, fc feed.Client, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:            s,
		feed:             fc,
		log:              slog.Default(),
		gradeWeights:     comps.DefaultGradeWeights(),
		heatWeights:      comps.DefaultHeatWeights(),
		searchRadius:     defaultSearchRadiusMiles,
		priceBandPct:     defaultPriceBandPct,
		maxComparables:   defaultMaxComparables,
		minComparables:   defaultMinComparables,
		closedWindowDays: defaultClosedWindowDays,
		staggerOffset:    time.Second,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithPaginator sets the paginator for multi-page feed pulls.
func WithPaginator(p *feed.Paginator) EngineOption {
	return func(e *Engine) {
		e.paginator = p
	}
}

// WithGradeWeights overrides the default grade weight table.
func WithGradeWeights(w comps.GradeWeights) EngineOption {
	return func(e *Engine) {
		e.gradeWeights = w
	}
}

// WithHeatWeights overrides the default heat component weights.
func WithHeatWeights(w comps.HeatWeights) EngineOption {
	return func(e *Engine) {
		e.heatWeights = w
	}
}

// WithSearchRadius sets the comparable search radius in miles.
func WithSearchRadius(miles float64) EngineOption {
	return func(e *Engine) {
		e.searchRadius = miles
	}
}

// WithPriceBandPct sets the comparable price band as a percentage of
// the subject's effective price.
func WithPriceBandPct(pct float64) EngineOption {
	return func(e *Engine) {
		e.priceBandPct = pct
	}
}

// WithComparableLimits sets the minimum and maximum comparable counts.
func WithComparableLimits(minCount, maxCount int) EngineOption {
	return func(e *Engine) {
		e.minComparables = minCount
		e.maxComparables = maxCount
	}
}

// WithClosedWindowDays sets the lookback window for market aggregates.
func WithClosedWindowDays(days int) EngineOption {
	return func(e *Engine) {
		e.closedWindowDays = days
	}
}

// WithStaggerOffset sets the delay between snapshot refreshes per city.
func WithStaggerOffset(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.staggerOffset = d
	}
}

// WithLastSync seeds the replication watermark, typically from the most
// recent successful feed-sync job run.
func WithLastSync(t time.Time) EngineOption {
	return func(e *Engine) {
		e.lastSync = t
	}
}

// LastSync returns the current replication watermark. Zero means no
// sync has completed yet.
func (eng *Engine) LastSync() time.Time {
	eng.mu.Lock()
	defer eng.mu.Unlock()
	return eng.lastSync
}

// RunFeedSync pulls modified listings from the feed and upserts them.
// The first run replicates everything; later runs filter on the
// modification-timestamp watermark set by the previous run. Returns the
// number of properties written.
func (eng *Engine) RunFeedSync(ctx context.Context) (int, error) {
	if eng.feed == nil && eng.paginator == nil {
		return 0, ErrFeedDisabled
	}

	start := time.Now()
	defer func() {
		metrics.FeedSyncDuration.Observe(time.Since(start).Seconds())
	}()

	eng.mu.Lock()
	since := eng.lastSync
	eng.mu.Unlock()

	q := feed.Query{Resource: "Property"}
	if !since.IsZero() {
		q.ModifiedSince = since.UTC().Format(time.RFC3339)
	}

	properties, result, err := eng.pullProperties(ctx, q)
	if err != nil {
		if errors.Is(err, feed.ErrDailyLimitReached) {
			eng.log.Warn("daily feed quota reached, stopping sync")
			return 0, err
		}
		return 0, fmt.Errorf("pulling feed: %w", err)
	}

	var written int
	for i := range properties {
		if ctx.Err() != nil {
			return written, ctx.Err()
		}

		p := &properties[i]
		if err := eng.store.UpsertProperty(ctx, p); err != nil {
			eng.log.Error("upsert failed", "mls_number", p.MLSNumber, "error", err)
			metrics.FeedErrorsTotal.Inc()
			continue
		}
		metrics.FeedPropertiesTotal.Inc()
		written++
	}

	// Only advance the watermark when every page was consumed; a
	// truncated pull resumes from the old watermark next cycle.
	if result.StoppedAt == "no_more_results" {
		eng.mu.Lock()
		eng.lastSync = start
		eng.mu.Unlock()
	}

	eng.log.Info("feed sync complete",
		"seen", result.TotalSeen,
		"written", written,
		"pages", result.PagesUsed,
		"stopped_at", result.StoppedAt,
	)
	return written, nil
}

func (eng *Engine) pullProperties(
	ctx context.Context,
	q feed.Query,
) ([]domain.Property, *feed.PaginateResult, error) {
	if eng.paginator != nil {
		result, err := eng.paginator.Paginate(ctx, q)
		if err != nil {
			return nil, nil, err
		}
		return result.Properties, result, nil
	}

	page, err := eng.feed.Fetch(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	result := &feed.PaginateResult{
		TotalSeen: len(page.Records),
		PagesUsed: 1,
		StoppedAt: "no_more_results",
	}
	return feed.ToProperties(page.Records), result, nil
}
