package model

import (
	"fmt"
	"math"
)

// ValidateSeries checks the input contract shared by the analytics entry
// points: strictly increasing dates, positive finite closes, finite OHLCV
// fields. Returns an *InvalidInputError on the first violation.
func ValidateSeries(prices []PricePoint) error {
	for i, p := range prices {
		if !isFinite(p.Open) || !isFinite(p.High) || !isFinite(p.Low) || !isFinite(p.Close) || !isFinite(p.Volume) {
			return &InvalidInputError{Index: i, Reason: "non-finite value"}
		}
		if p.Close <= 0 {
			return &InvalidInputError{Index: i, Reason: fmt.Sprintf("non-positive close %v", p.Close)}
		}
		if i > 0 && !prices[i-1].Date.Before(p.Date) {
			return &InvalidInputError{Index: i, Reason: "dates not strictly increasing"}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
