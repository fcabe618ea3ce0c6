package indicator

import (
	"errors"
	"math"

	"TradeScope/internal/model"
)

// CalculateBollinger computes the Bollinger bands: the period SMA plus/minus
// mult population standard deviations. On a flat window the bands collapse
// to the SMA.
func CalculateBollinger(closes []float64, period int, mult float64) (model.BollingerValue, error) {
	if mult < 0 {
		return model.BollingerValue{}, errors.New("stddev multiplier must be non-negative")
	}
	middle, err := CalculateSMA(closes, period)
	if err != nil {
		return model.BollingerValue{}, err
	}

	variance := 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		d := closes[i] - middle
		variance += d * d
	}
	variance /= float64(period)
	band := mult * math.Sqrt(variance)

	return model.BollingerValue{
		Upper:  middle + band,
		Middle: middle,
		Lower:  middle - band,
	}, nil
}
