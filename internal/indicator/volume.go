package indicator

import (
	"errors"

	"TradeScope/internal/model"
)

// CalculateVolumeRatio compares the latest volume against its trailing
// period average. A zero average (no volume data) yields the neutral
// ratio 1.0.
func CalculateVolumeRatio(bars []model.PricePoint, period int) (model.VolumeValue, error) {
	if period <= 0 {
		return model.VolumeValue{}, errors.New("period must be positive")
	}
	if len(bars) < period {
		return model.VolumeValue{}, errors.New("not enough data for volume calculation")
	}

	sum := 0.0
	for i := len(bars) - period; i < len(bars); i++ {
		sum += bars[i].Volume
	}
	avg := sum / float64(period)
	current := bars[len(bars)-1].Volume

	ratio := 1.0
	if avg > 0 {
		ratio = current / avg
	}
	return model.VolumeValue{
		Current: current,
		Average: avg,
		Ratio:   ratio,
	}, nil
}
