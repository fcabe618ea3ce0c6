package indicator

import (
	"errors"

	"TradeScope/internal/model"
)

// CalculateMACD computes the MACD line (fast EMA − slow EMA), its signal EMA,
// and the histogram at the last point.
func CalculateMACD(closes []float64, fast, slow, signalPeriod int) (model.MACDValue, error) {
	if fast <= 0 || slow <= 0 || signalPeriod <= 0 {
		return model.MACDValue{}, errors.New("periods must be positive")
	}
	if fast >= slow {
		return model.MACDValue{}, errors.New("fast period must be shorter than slow period")
	}
	if len(closes) < slow+signalPeriod {
		return model.MACDValue{}, errors.New("not enough data for MACD calculation")
	}

	fastSeries, err := emaSeries(closes, fast)
	if err != nil {
		return model.MACDValue{}, err
	}
	slowSeries, err := emaSeries(closes, slow)
	if err != nil {
		return model.MACDValue{}, err
	}

	// MACD line is defined from the first index where the slow EMA exists.
	macdLine := make([]float64, 0, len(closes)-slow+1)
	for i := slow - 1; i < len(closes); i++ {
		macdLine = append(macdLine, fastSeries[i]-slowSeries[i])
	}

	signal, err := CalculateEMA(macdLine, signalPeriod)
	if err != nil {
		return model.MACDValue{}, err
	}

	macd := macdLine[len(macdLine)-1]
	return model.MACDValue{
		MACD:      macd,
		Signal:    signal,
		Histogram: macd - signal,
	}, nil
}
