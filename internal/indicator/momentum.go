package indicator

import "errors"

// CalculateROC computes the rate of change: the percentage move of the last
// close against the close `period` bars earlier.
func CalculateROC(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(closes) < period+1 {
		return 0, errors.New("not enough data for ROC calculation")
	}
	base := closes[len(closes)-1-period]
	if base == 0 {
		return 0, errors.New("zero base price in ROC calculation")
	}
	return (closes[len(closes)-1]/base - 1) * 100.0, nil
}
