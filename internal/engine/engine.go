package engine

import (
	"fmt"

	"TradeScope/internal/indicator"
	"TradeScope/internal/model"
)

// Config holds the indicator periods used by one analysis run.
// Zero-valued fields fall back to the documented defaults.
type Config struct {
	RSIPeriod       int     `yaml:"rsi_period"`
	MACDFast        int     `yaml:"macd_fast"`
	MACDSlow        int     `yaml:"macd_slow"`
	MACDSignal      int     `yaml:"macd_signal"`
	BollingerPeriod int     `yaml:"bollinger_period"`
	BollingerMult   float64 `yaml:"bollinger_mult"`
	ShortMA         int     `yaml:"short_ma"`
	LongMA          int     `yaml:"long_ma"`
	StochPeriod     int     `yaml:"stoch_period"`
	StochSmooth     int     `yaml:"stoch_smooth"`
	WilliamsPeriod  int     `yaml:"williams_period"`
	ROCPeriod       int     `yaml:"roc_period"`
	VolumePeriod    int     `yaml:"volume_period"`
}

// DefaultConfig returns the standard indicator parameters: RSI 14,
// MACD 12/26/9, Bollinger 20/2, moving averages 20/50, stochastic 14/3,
// Williams %R 14, ROC 10, volume average 20.
func DefaultConfig() Config {
	return Config{
		RSIPeriod:       14,
		MACDFast:        12,
		MACDSlow:        26,
		MACDSignal:      9,
		BollingerPeriod: 20,
		BollingerMult:   2.0,
		ShortMA:         20,
		LongMA:          50,
		StochPeriod:     14,
		StochSmooth:     3,
		WilliamsPeriod:  14,
		ROCPeriod:       10,
		VolumePeriod:    20,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.RSIPeriod <= 0 {
		c.RSIPeriod = def.RSIPeriod
	}
	if c.MACDFast <= 0 {
		c.MACDFast = def.MACDFast
	}
	if c.MACDSlow <= 0 {
		c.MACDSlow = def.MACDSlow
	}
	if c.MACDSignal <= 0 {
		c.MACDSignal = def.MACDSignal
	}
	if c.BollingerPeriod <= 0 {
		c.BollingerPeriod = def.BollingerPeriod
	}
	if c.BollingerMult <= 0 {
		c.BollingerMult = def.BollingerMult
	}
	if c.ShortMA <= 0 {
		c.ShortMA = def.ShortMA
	}
	if c.LongMA <= 0 {
		c.LongMA = def.LongMA
	}
	if c.StochPeriod <= 0 {
		c.StochPeriod = def.StochPeriod
	}
	if c.StochSmooth <= 0 {
		c.StochSmooth = def.StochSmooth
	}
	if c.WilliamsPeriod <= 0 {
		c.WilliamsPeriod = def.WilliamsPeriod
	}
	if c.ROCPeriod <= 0 {
		c.ROCPeriod = def.ROCPeriod
	}
	if c.VolumePeriod <= 0 {
		c.VolumePeriod = def.VolumePeriod
	}
	return c
}

// MinRequired returns the number of price points the longest-lookback
// indicator in this configuration needs.
func (c Config) MinRequired() int {
	c = c.withDefaults()
	required := c.LongMA
	for _, n := range []int{
		c.BollingerPeriod,
		c.MACDSlow + c.MACDSignal,
		c.RSIPeriod + 1,
		c.StochPeriod + c.StochSmooth - 1,
		c.WilliamsPeriod,
		c.ROCPeriod + 1,
		c.VolumePeriod,
	} {
		if n > required {
			required = n
		}
	}
	return required
}

// Analyze computes the full indicator battery over the trailing window ending
// at the last price point, converts each reading into a directional signal,
// and aggregates the signal set into a sentiment summary.
//
// The computation is deterministic and side-effect-free: identical input
// yields a bit-identical result.
func Analyze(prices []model.PricePoint, symbol string, cfg Config) (*model.AnalysisResult, error) {
	cfg = cfg.withDefaults()

	if required := cfg.MinRequired(); len(prices) < required {
		return nil, &model.DataInsufficientError{Required: required, Got: len(prices)}
	}
	if err := model.ValidateSeries(prices); err != nil {
		return nil, err
	}

	closes := model.Closes(prices)
	ts := prices[len(prices)-1].Date
	lastClose := closes[len(closes)-1]

	rsi, err := indicator.CalculateRSI(closes, cfg.RSIPeriod)
	if err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}
	macd, err := indicator.CalculateMACD(closes, cfg.MACDFast, cfg.MACDSlow, cfg.MACDSignal)
	if err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}
	bb, err := indicator.CalculateBollinger(closes, cfg.BollingerPeriod, cfg.BollingerMult)
	if err != nil {
		return nil, fmt.Errorf("bollinger: %w", err)
	}
	ma, err := indicator.CalculateMovingAverages(closes, cfg.ShortMA, cfg.LongMA)
	if err != nil {
		return nil, fmt.Errorf("moving averages: %w", err)
	}
	stoch, err := indicator.CalculateStochastic(prices, cfg.StochPeriod, cfg.StochSmooth)
	if err != nil {
		return nil, fmt.Errorf("stochastic: %w", err)
	}
	williams, err := indicator.CalculateWilliamsR(prices, cfg.WilliamsPeriod)
	if err != nil {
		return nil, fmt.Errorf("williams: %w", err)
	}
	roc, err := indicator.CalculateROC(closes, cfg.ROCPeriod)
	if err != nil {
		return nil, fmt.Errorf("roc: %w", err)
	}
	volume, err := indicator.CalculateVolumeRatio(prices, cfg.VolumePeriod)
	if err != nil {
		return nil, fmt.Errorf("volume: %w", err)
	}

	snap := model.IndicatorSnapshot{
		RSI:            rsi,
		MACD:           macd,
		Bollinger:      bb,
		MovingAverages: ma,
		Stochastic:     stoch,
		WilliamsR:      williams,
		ROC:            roc,
		Volume:         volume,
	}

	lastChange := lastClose - closes[len(closes)-2]
	signals := []model.TechnicalSignal{
		rsiSignal(rsi, ts),
		macdSignal(macd, lastClose, ts),
		bollingerSignal(bb, lastClose, ts),
		maSignal(ma, ts),
		stochasticSignal(stoch, ts),
		williamsSignal(williams, ts),
		momentumSignal(roc, ts),
		volumeSignal(volume, lastChange, ts),
	}

	return &model.AnalysisResult{
		Symbol:     symbol,
		Summary:    summarize(signals, snap, closes),
		Indicators: snap,
		Signals:    signals,
	}, nil
}

// StrongSignals filters signals at or above minStrength, preserving the
// original order. It is a pure filter with no recomputation.
func StrongSignals(result *model.AnalysisResult, minStrength float64) []model.TechnicalSignal {
	strong := make([]model.TechnicalSignal, 0, len(result.Signals))
	for _, s := range result.Signals {
		if s.Strength >= minStrength {
			strong = append(strong, s)
		}
	}
	return strong
}
