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

// candidateFetchLimit bounds the raw candidate fetch; ranking trims the
// set down to maxComparables afterwards.
const candidateFetchLimit = 200

// Comparable pairs a stored property with its similarity ranking.
type Comparable struct {
	Property  domain.Property `json:"property"`
	Score     float64         `json:"score"`
	Breakdown comps.Breakdown `json:"breakdown"`
}

// ComparablesResult is the outcome of a comparable search.
type ComparablesResult struct {
	Subject     domain.Property `json:"subject"`
	Comparables []Comparable    `json:"comparables"`
	// CandidateCount is the number of properties considered before
	// ranking and truncation.
	CandidateCount int `json:"candidate_count"`
}

// FindComparables fetches candidates around the subject property,
// scores them against it, and returns the top matches ranked by
// similarity. Returns ErrNoComparables when fewer than the configured
// minimum survive the fetch.
func (eng *Engine) FindComparables(ctx context.Context, subjectID string) (*ComparablesResult, error) {
	start := time.Now()
	defer func() {
		metrics.ComparableSearchDuration.Observe(time.Since(start).Seconds())
	}()

	subject, err := eng.store.GetPropertyByID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("loading subject: %w", err)
	}

	candidates, err := eng.fetchCandidates(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("fetching candidates: %w", err)
	}
	if len(candidates) < eng.minComparables {
		return nil, fmt.Errorf("%w: %d found, %d required",
			ErrNoComparables, len(candidates), eng.minComparables)
	}

	byID := make(map[string]domain.Property, len(candidates))
	data := make([]comps.PropertyData, 0, len(candidates))
	for i := range candidates {
		byID[candidates[i].ID] = candidates[i]
		data = append(data, toPropertyData(&candidates[i]))
	}

	ranked := comps.Rank(toPropertyData(subject), data)
	if len(ranked) > eng.maxComparables {
		ranked = ranked[:eng.maxComparables]
	}

	result := &ComparablesResult{
		Subject:        *subject,
		CandidateCount: len(candidates),
		Comparables:    make([]Comparable, 0, len(ranked)),
	}
	for _, r := range ranked {
		metrics.SimilarityDistribution.Observe(r.Score)
		result.Comparables = append(result.Comparables, Comparable{
			Property:  byID[r.ID],
			Score:     r.Score,
			Breakdown: r.Breakdown,
		})
	}
	return result, nil
}

func (eng *Engine) fetchCandidates(ctx context.Context, subject *domain.Property) ([]domain.Property, error) {
	minLat, maxLat, minLon, maxLon := comps.BoundingBox(
		subject.Latitude, subject.Longitude, eng.searchRadius,
	)

	q := &store.CandidateQuery{
		MinLat:    minLat,
		MaxLat:    maxLat,
		MinLon:    minLon,
		MaxLon:    maxLon,
		Statuses:  []string{string(domain.StatusActive), string(domain.StatusClosed)},
		ExcludeID: subject.ID,
		Limit:     candidateFetchLimit,
	}
	if price := subject.EffectivePrice(); price > 0 {
		band := price * eng.priceBandPct / 100
		q.PriceMin = price - band
		q.PriceMax = price + band
	}
	if subject.PropertySubType != "" {
		q.SubType = &subject.PropertySubType
	}

	return eng.store.ListCandidates(ctx, q)
}

func toPropertyData(p *domain.Property) comps.PropertyData {
	return comps.PropertyData{
		ID:         p.ID,
		Price:      p.EffectivePrice(),
		Beds:       p.Beds,
		Baths:      p.Baths,
		LivingArea: p.LivingArea,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		Waterfront: p.Waterfront,
		EntryLevel: p.EntryLevel,
		SubType:    p.PropertySubType,
	}
}
