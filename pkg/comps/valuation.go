package comps

// GradeWeights maps a comparable letter grade to its valuation weight.
type GradeWeights map[string]float64

// DefaultGradeWeights returns the standard grade-to-weight table.
func DefaultGradeWeights() GradeWeights {
	return GradeWeights{
		"A": 2.0,
		"B": 1.5,
		"C": 1.0,
		"D": 0.5,
		"F": 0.25,
	}
}

// CompInput is one comparable entering the valuation: its price, its
// assigned grade, and an optional manual weight override.
type CompInput struct {
	ID              string
	Price           float64
	Grade           string
	UseCustomWeight bool
	CustomWeight    float64
}

// ValuationRow is the per-comparable audit line of a valuation.
type ValuationRow struct {
	ID           string  `json:"id"`
	Price        float64 `json:"price"`
	Grade        string  `json:"grade"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// Valuation is the aggregated estimate across comparables.
type Valuation struct {
	WeightedMid   float64        `json:"weighted_mid"`
	UnweightedMid float64        `json:"unweighted_mid"`
	Low           float64        `json:"low"`
	High          float64        `json:"high"`
	TotalWeight   float64        `json:"total_weight"`
	Rows          []ValuationRow `json:"rows"`
}

// Valuate computes the grade-weighted and unweighted mid estimates from
// a set of comparables. The weight is the manual override when flagged,
// otherwise the grade-table lookup; grades absent from the table weigh
// zero and contribute nothing.
//
// It returns nil when there are no comparables or every weight is zero;
// callers treat nil as "insufficient data". A single comparable is
// valid and yields equal weighted and unweighted mids.
func Valuate(inputs []CompInput, weights GradeWeights) *Valuation {
	if len(inputs) == 0 {
		return nil
	}
	if weights == nil {
		weights = DefaultGradeWeights()
	}

	v := &Valuation{Rows: make([]ValuationRow, 0, len(inputs))}

	var weightedSum, priceSum float64
	for i, in := range inputs {
		w := weights[in.Grade]
		if in.UseCustomWeight {
			w = in.CustomWeight
		}

		contribution := in.Price * w
		weightedSum += contribution
		priceSum += in.Price
		v.TotalWeight += w

		if i == 0 || in.Price < v.Low {
			v.Low = in.Price
		}
		if in.Price > v.High {
			v.High = in.Price
		}

		v.Rows = append(v.Rows, ValuationRow{
			ID:           in.ID,
			Price:        in.Price,
			Grade:        in.Grade,
			Weight:       w,
			Contribution: contribution,
		})
	}

	if v.TotalWeight == 0 {
		return nil
	}

	v.WeightedMid = weightedSum / v.TotalWeight
	v.UnweightedMid = priceSum / float64(len(inputs))

	return v
}
