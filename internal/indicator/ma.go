package indicator

import (
	"errors"

	"TradeScope/internal/model"
)

// CalculateSMA computes the simple moving average of the trailing period.
func CalculateSMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

// CalculateEMA computes the exponential moving average at the last point,
// seeded with the SMA of the first period values.
func CalculateEMA(values []float64, period int) (float64, error) {
	series, err := emaSeries(values, period)
	if err != nil {
		return 0, err
	}
	return series[len(series)-1], nil
}

// emaSeries computes the full EMA series. Entries before index period-1 carry
// no meaning and are left zero; index period-1 holds the SMA seed.
func emaSeries(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(values) < period {
		return nil, errors.New("not enough data for EMA calculation")
	}
	series := make([]float64, len(values))
	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
	}
	series[period-1] = seed / float64(period)

	k := 2.0 / float64(period+1)
	for i := period; i < len(values); i++ {
		series[i] = values[i]*k + series[i-1]*(1-k)
	}
	return series, nil
}

// CalculateMovingAverages returns the short/long SMA pair alongside the
// latest close, for trend-alignment scoring.
func CalculateMovingAverages(closes []float64, short, long int) (model.MovingAverageValue, error) {
	s, err := CalculateSMA(closes, short)
	if err != nil {
		return model.MovingAverageValue{}, err
	}
	l, err := CalculateSMA(closes, long)
	if err != nil {
		return model.MovingAverageValue{}, err
	}
	return model.MovingAverageValue{
		Short: s,
		Long:  l,
		Price: closes[len(closes)-1],
	}, nil
}
