package indicator

import (
	"errors"

	"TradeScope/internal/model"
)

// CalculateStochastic computes the slow stochastic oscillator: %K over the
// trailing period at the last bar, and %D as the smooth-bar average of %K.
// A flat window (high == low) yields the 50 midpoint.
func CalculateStochastic(bars []model.PricePoint, period, smooth int) (model.StochasticValue, error) {
	if period <= 0 || smooth <= 0 {
		return model.StochasticValue{}, errors.New("periods must be positive")
	}
	if len(bars) < period+smooth-1 {
		return model.StochasticValue{}, errors.New("not enough data for stochastic calculation")
	}

	ks := make([]float64, smooth)
	for s := 0; s < smooth; s++ {
		end := len(bars) - smooth + 1 + s
		ks[s] = rawK(bars[end-period : end])
	}

	d := 0.0
	for _, k := range ks {
		d += k
	}
	return model.StochasticValue{
		K: ks[smooth-1],
		D: d / float64(smooth),
	}, nil
}

// rawK computes %K for one window ending at its last bar.
func rawK(window []model.PricePoint) float64 {
	high, low := window[0].High, window[0].Low
	for _, b := range window[1:] {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	if high == low {
		return 50.0
	}
	return (window[len(window)-1].Close - low) / (high - low) * 100.0
}

// CalculateWilliamsR computes Williams %R over the trailing period, a bounded
// [-100, 0] oscillator. A flat window yields the -50 midpoint.
func CalculateWilliamsR(bars []model.PricePoint, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(bars) < period {
		return 0, errors.New("not enough data for Williams %R calculation")
	}

	window := bars[len(bars)-period:]
	high, low := window[0].High, window[0].Low
	for _, b := range window[1:] {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	if high == low {
		return -50.0, nil
	}
	return (high - window[len(window)-1].Close) / (high - low) * -100.0, nil
}
