// Package comps implements the comparable scoring engine: property
// similarity scoring, grade-weighted CMA valuation, and the market heat
// index. Everything here is a pure function of its inputs; data access
// and persistence live in the caller.
package comps

import (
	"math"
	"sort"
	"strings"
)

// Point budgets per similarity factor. They sum to 100; the condo floor
// adjustment sits outside the budget and the final score is clamped.
const (
	maxSizePoints       = 30.0
	maxBedPoints        = 15.0
	maxBathPoints       = 15.0
	maxPricePoints      = 15.0
	maxDistancePoints   = 15.0
	maxWaterfrontPoints = 10.0

	// Flat credit when either side has no recorded living area.
	unknownSizeCredit = 15.0
)

// PropertyData holds the fields needed for similarity scoring
// (decoupled from the DB model).
type PropertyData struct {
	ID         string
	Price      float64
	Beds       int
	Baths      float64
	LivingArea float64
	Latitude   float64
	Longitude  float64
	Waterfront bool
	EntryLevel int
	SubType    string
}

// IsCondo reports whether the subtype names a condominium.
func (p PropertyData) IsCondo() bool {
	return strings.Contains(strings.ToLower(p.SubType), "condo")
}

// Breakdown shows per-factor similarity scores.
type Breakdown struct {
	Size          float64 `json:"size"`
	Beds          float64 `json:"beds"`
	Baths         float64 `json:"baths"`
	Price         float64 `json:"price"`
	Distance      float64 `json:"distance"`
	Waterfront    float64 `json:"waterfront"`
	FloorAdjust   float64 `json:"floor_adjust"`
	DistanceMiles float64 `json:"distance_miles"`
	Total         float64 `json:"total"`
}

// Similarity computes the 0-100 similarity score of a candidate against
// a subject property. Distance is derived from the coordinates on both
// sides via the haversine formula.
func Similarity(subject, candidate PropertyData) Breakdown {
	dist := DistanceMiles(
		subject.Latitude, subject.Longitude,
		candidate.Latitude, candidate.Longitude,
	)
	return SimilarityAt(subject, candidate, dist)
}

// SimilarityAt is Similarity with a precomputed distance in miles.
func SimilarityAt(subject, candidate PropertyData, distMiles float64) Breakdown {
	b := Breakdown{DistanceMiles: distMiles}

	b.Size = sizeScore(subject.LivingArea, candidate.LivingArea)
	b.Beds = bedScore(subject.Beds, candidate.Beds)
	b.Baths = bathScore(subject.Baths, candidate.Baths)
	b.Price = priceScore(subject.Price, candidate.Price)
	b.Distance = distanceScore(distMiles)
	b.Waterfront = waterfrontScore(subject.Waterfront, candidate.Waterfront)
	b.FloorAdjust = floorAdjustment(subject, candidate)

	total := b.Size + b.Beds + b.Baths + b.Price + b.Distance + b.Waterfront + b.FloorAdjust
	b.Total = clamp(total, 0, 100)

	return b
}

// sizeScore compares living areas. Either side missing a recorded area
// gets flat partial credit rather than a zero, matching how listings
// with unknown square footage are treated in search results.
func sizeScore(subjectArea, candidateArea float64) float64 {
	if subjectArea <= 0 || candidateArea <= 0 {
		return unknownSizeCredit
	}

	diffPct := math.Abs(subjectArea-candidateArea) / subjectArea * 100

	switch {
	case diffPct <= 5:
		return maxSizePoints
	case diffPct <= 10:
		return 26
	case diffPct <= 15:
		return 22
	case diffPct <= 20:
		return 18
	case diffPct <= 25:
		return 14
	case diffPct <= 30:
		return 10
	default:
		return math.Max(0, maxSizePoints-diffPct*0.6)
	}
}

func bedScore(subjectBeds, candidateBeds int) float64 {
	switch diff := abs(subjectBeds - candidateBeds); diff {
	case 0:
		return maxBedPoints
	case 1:
		return 8
	case 2:
		return 3
	default:
		return 0
	}
}

func bathScore(subjectBaths, candidateBaths float64) float64 {
	diff := math.Abs(subjectBaths - candidateBaths)
	switch {
	case diff == 0:
		return maxBathPoints
	case diff <= 0.5:
		return 10
	case diff <= 1:
		return 5
	default:
		return 0
	}
}

// priceScore awards no points when the subject has no price to compare
// against (pre-listing CMA subjects).
func priceScore(subjectPrice, candidatePrice float64) float64 {
	if subjectPrice <= 0 {
		return 0
	}

	diffPct := math.Abs(subjectPrice-candidatePrice) / subjectPrice * 100

	switch {
	case diffPct <= 5:
		return maxPricePoints
	case diffPct <= 10:
		return 12
	case diffPct <= 15:
		return 8
	case diffPct <= 20:
		return 4
	default:
		return 0
	}
}

func distanceScore(miles float64) float64 {
	switch {
	case miles <= 0.1:
		return maxDistancePoints
	case miles <= 0.25:
		return 13
	case miles <= 0.5:
		return 10
	case miles <= 1:
		return 6
	case miles <= 2:
		return 3
	default:
		return 1
	}
}

func waterfrontScore(subjectWF, candidateWF bool) float64 {
	if subjectWF == candidateWF {
		return maxWaterfrontPoints
	}
	return 0
}

// floorAdjustment applies the condo floor-level bonus or penalty. It is
// outside the 100-point budget and only applies when the subject is a
// condo and both sides have a recorded entry level.
func floorAdjustment(subject, candidate PropertyData) float64 {
	if !subject.IsCondo() {
		return 0
	}
	if subject.EntryLevel <= 0 || candidate.EntryLevel <= 0 {
		return 0
	}

	switch diff := abs(subject.EntryLevel - candidate.EntryLevel); {
	case diff == 0:
		return 5
	case diff <= 2:
		return 3
	case diff <= 5:
		return 1
	case diff <= 10:
		return 0
	case diff <= 20:
		return -3
	default:
		return -5
	}
}

// subjectScore is the sentinel assigned when the subject itself appears
// in a ranked batch.
const subjectScore = 100.0

// Ranked is one scored candidate in a ranked batch.
type Ranked struct {
	ID        string    `json:"id"`
	Score     float64   `json:"score"`
	IsSubject bool      `json:"is_subject"`
	Breakdown Breakdown `json:"breakdown"`
}

// Rank scores every candidate against the subject and returns them in
// descending score order. If the subject itself is present in the batch
// (matched by ID) it gets the sentinel score and is pinned first by
// prepend, independent of the sort.
func Rank(subject PropertyData, candidates []PropertyData) []Ranked {
	var subjectEntry *Ranked
	ranked := make([]Ranked, 0, len(candidates))

	for _, c := range candidates {
		if c.ID != "" && c.ID == subject.ID {
			subjectEntry = &Ranked{
				ID:        c.ID,
				Score:     subjectScore,
				IsSubject: true,
			}
			continue
		}
		b := Similarity(subject, c)
		ranked = append(ranked, Ranked{ID: c.ID, Score: b.Total, Breakdown: b})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if subjectEntry != nil {
		ranked = append([]Ranked{*subjectEntry}, ranked...)
	}

	return ranked
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
