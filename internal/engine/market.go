package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/harborview/mls-comps/internal/metrics"
	"github.com/harborview/mls-comps/internal/store"
	"github.com/harborview/mls-comps/pkg/comps"
	domain "github.com/harborview/mls-comps/pkg/types"
)

// RunSnapshotRefresh recomputes the heat index for every city with
// inventory and persists one snapshot per city. Cities that fail are
// logged and skipped so one bad aggregate doesn't starve the rest.
// Returns the number of snapshots written.
func (eng *Engine) RunSnapshotRefresh(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() {
		metrics.SnapshotRefreshDuration.Observe(time.Since(start).Seconds())
	}()

	cities, err := eng.store.ListCities(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing cities: %w", err)
	}

	var written int
	for i, city := range cities {
		if ctx.Err() != nil {
			return written, ctx.Err()
		}

		if err := eng.refreshCity(ctx, city); err != nil {
			eng.log.Error("snapshot refresh failed", "city", city, "error", err)
			metrics.SnapshotErrorsTotal.Inc()
			continue
		}
		written++

		// Stagger between cities to spread the aggregate queries out.
		if i < len(cities)-1 && eng.staggerOffset > 0 {
			select {
			case <-ctx.Done():
				return written, ctx.Err()
			case <-time.After(eng.staggerOffset):
			}
		}
	}

	eng.log.Info("snapshot refresh complete", "cities", len(cities), "written", written)
	return written, nil
}

func (eng *Engine) refreshCity(ctx context.Context, city string) error {
	agg, err := eng.store.MarketAggregates(ctx, city, eng.closedWindowDays)
	if err != nil {
		return fmt.Errorf("aggregating %s: %w", city, err)
	}

	snapshot := buildSnapshot(agg, eng.heatWeights)
	if err := eng.store.InsertMarketSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("inserting snapshot for %s: %w", city, err)
	}

	eng.log.Debug("market snapshot written",
		"city", city,
		"heat_score", snapshot.HeatScore,
		"heat_label", snapshot.HeatLabel,
	)
	return nil
}

// buildSnapshot derives months of supply and absorption rate from the
// raw counts, then scores the heat index. A city with no closes in the
// window gets the supply ceiling rather than a divide-by-zero; a city
// with no actives absorbs everything that closes.
func buildSnapshot(agg *store.MarketAggregates, w comps.HeatWeights) *domain.MarketSnapshot {
	closedPerMonth := float64(agg.ClosedCount) / (float64(agg.WindowDays) / 30.0)

	var monthsSupply float64
	if closedPerMonth > 0 {
		monthsSupply = float64(agg.ActiveCount) / closedPerMonth
	} else if agg.ActiveCount > 0 {
		monthsSupply = 6 // supply ceiling, scores zero
	}

	var absorptionRate float64
	switch {
	case agg.ActiveCount > 0:
		absorptionRate = closedPerMonth / float64(agg.ActiveCount) * 100
	case closedPerMonth > 0:
		absorptionRate = 100
	}

	heat := comps.HeatIndex(comps.HeatInput{
		AvgDOM:         agg.AvgDOM,
		SPLPRatio:      agg.SPLPRatio,
		MonthsSupply:   monthsSupply,
		AbsorptionRate: absorptionRate,
	}, w)

	return &domain.MarketSnapshot{
		City:           agg.City,
		AvgDOM:         agg.AvgDOM,
		SPLPRatio:      agg.SPLPRatio,
		MonthsSupply:   monthsSupply,
		AbsorptionRate: absorptionRate,
		HeatScore:      heat.Score,
		HeatLabel:      heat.Label,
		ActiveCount:    agg.ActiveCount,
		ClosedCount:    agg.ClosedCount,
	}
}
