package comps

import "math"

// Market heat classification thresholds and labels.
const (
	hotThreshold      = 70
	balancedThreshold = 40

	LabelHot      = "hot"
	LabelBalanced = "balanced"
	LabelCold     = "cold"
)

// Component score domains. Each input maps linearly onto [0,100] over a
// fixed range; DOM and months-of-supply are inverted (lower is hotter).
const (
	domCeilingDays   = 90.0
	spLpFloorPct     = 90.0
	spLpCeilingPct   = 105.0
	supplyCeiling    = 6.0
	absorptionTarget = 20.0
)

// HeatWeights defines the relative importance of each heat component.
type HeatWeights struct {
	DOM        float64
	SPLP       float64
	Inventory  float64
	Absorption float64
}

// DefaultHeatWeights returns the default heat index weights.
func DefaultHeatWeights() HeatWeights {
	return HeatWeights{
		DOM:        0.25,
		SPLP:       0.30,
		Inventory:  0.25,
		Absorption: 0.20,
	}
}

// HeatInput holds the market aggregates feeding the heat index. Inputs
// are assumed finite; callers validate before calling.
type HeatInput struct {
	AvgDOM         float64 // days
	SPLPRatio      float64 // sale-to-list price ratio, percent
	MonthsSupply   float64 // months of inventory
	AbsorptionRate float64 // percent of inventory absorbed per month
}

// HeatBreakdown shows the per-component scores and the classification.
type HeatBreakdown struct {
	DOM        float64 `json:"dom"`
	SPLP       float64 `json:"sp_lp"`
	Inventory  float64 `json:"inventory"`
	Absorption float64 `json:"absorption"`
	Score      int     `json:"score"`
	Label      string  `json:"label"`
}

// HeatIndex computes the 0-100 market heat score and its hot/balanced/
// cold classification from the four market aggregates.
func HeatIndex(in HeatInput, w HeatWeights) HeatBreakdown {
	b := HeatBreakdown{
		DOM:        clampedLerp(in.AvgDOM, domCeilingDays, 0, 0, 100),
		SPLP:       clampedLerp(in.SPLPRatio, spLpFloorPct, spLpCeilingPct, 0, 100),
		Inventory:  clampedLerp(in.MonthsSupply, supplyCeiling, 0, 0, 100),
		Absorption: clampedLerp(in.AbsorptionRate, 0, absorptionTarget, 0, 100),
	}

	total := b.DOM*w.DOM +
		b.SPLP*w.SPLP +
		b.Inventory*w.Inventory +
		b.Absorption*w.Absorption

	b.Score = int(math.Round(total))
	b.Label = Classify(b.Score)

	return b
}

// Classify maps a heat score to its label.
func Classify(score int) string {
	switch {
	case score >= hotThreshold:
		return LabelHot
	case score >= balancedThreshold:
		return LabelBalanced
	default:
		return LabelCold
	}
}

// clampedLerp linearly interpolates val from [minVal,maxVal] onto
// [minScore,maxScore], clamping outside the domain. minVal may exceed
// maxVal for inverted scales.
func clampedLerp(val, minVal, maxVal, minScore, maxScore float64) float64 {
	if maxVal == minVal {
		return minScore
	}
	t := (val - minVal) / (maxVal - minVal)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return minScore + t*(maxScore-minScore)
}
