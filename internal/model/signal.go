package model

import "time"

// SignalType represents a directional trading signal.
type SignalType string

const (
	SignalBuy  SignalType = "buy"
	SignalSell SignalType = "sell"
	SignalHold SignalType = "hold"
)

// Bias represents the overall market sentiment.
type Bias string

const (
	BiasBullish Bias = "bullish"
	BiasBearish Bias = "bearish"
	BiasNeutral Bias = "neutral"
)

// TrendDirection classifies the prevailing price trend.
type TrendDirection string

const (
	TrendUp       TrendDirection = "up"
	TrendDown     TrendDirection = "down"
	TrendSideways TrendDirection = "sideways"
)

// MomentumClass classifies recent price momentum.
type MomentumClass string

const (
	MomentumPositive MomentumClass = "positive"
	MomentumNegative MomentumClass = "negative"
	MomentumNeutral  MomentumClass = "neutral"
)

// VolatilityClass classifies realized volatility.
type VolatilityClass string

const (
	VolatilityLow    VolatilityClass = "low"
	VolatilityMedium VolatilityClass = "medium"
	VolatilityHigh   VolatilityClass = "high"
)

// TechnicalSignal is one indicator's directional reading.
// Strength is in [0,1] and scales with distance past the indicator's threshold.
type TechnicalSignal struct {
	Indicator   string     `json:"indicator"`
	Signal      SignalType `json:"signal"`
	Strength    float64    `json:"strength"`
	Value       float64    `json:"value"`
	Timestamp   time.Time  `json:"timestamp"`
	Description string     `json:"description"`
}

// AnalysisSummary is the aggregate verdict over the full signal set.
type AnalysisSummary struct {
	Overall        Bias            `json:"overall"`
	Strength       float64         `json:"strength"`
	Confidence     float64         `json:"confidence"`
	TrendDirection TrendDirection  `json:"trend_direction"`
	Momentum       MomentumClass   `json:"momentum"`
	Volatility     VolatilityClass `json:"volatility"`
}

// MACDValue holds the MACD line, its signal line, and the histogram.
type MACDValue struct {
	MACD      float64 `json:"macd"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
}

// BollingerValue holds the three Bollinger band levels.
// Invariant: Lower <= Middle <= Upper; on a flat series all three collapse
// to the moving average.
type BollingerValue struct {
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Lower  float64 `json:"lower"`
}

// MovingAverageValue holds the short/long simple moving averages and the
// close they are compared against.
type MovingAverageValue struct {
	Short float64 `json:"short"`
	Long  float64 `json:"long"`
	Price float64 `json:"price"`
}

// StochasticValue holds the slow stochastic oscillator readings.
type StochasticValue struct {
	K float64 `json:"k"`
	D float64 `json:"d"`
}

// VolumeValue compares the latest volume against its trailing average.
type VolumeValue struct {
	Current float64 `json:"current"`
	Average float64 `json:"average"`
	Ratio   float64 `json:"ratio"`
}

// IndicatorSnapshot is the closed set of indicator readings produced by one
// analysis run. Every field is always populated.
type IndicatorSnapshot struct {
	RSI            float64            `json:"rsi"`
	MACD           MACDValue          `json:"macd"`
	Bollinger      BollingerValue     `json:"bollinger"`
	MovingAverages MovingAverageValue `json:"moving_averages"`
	Stochastic     StochasticValue    `json:"stochastic"`
	WilliamsR      float64            `json:"williams_r"`
	ROC            float64            `json:"roc"`
	Volume         VolumeValue        `json:"volume"`
}

// AnalysisResult is the complete, immutable output of one engine invocation.
type AnalysisResult struct {
	Symbol     string            `json:"symbol"`
	Summary    AnalysisSummary   `json:"summary"`
	Indicators IndicatorSnapshot `json:"indicators"`
	Signals    []TechnicalSignal `json:"signals"`
}
