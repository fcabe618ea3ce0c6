package server

import (
	"math"
	"time"

	"TradeScope/internal/model"
)

// Presentation rounding happens here and only here: the core keeps full
// floating-point precision, and every number crossing the HTTP boundary is
// rounded to 2 decimals. The ±Inf sentinels (zero volatility, no downside
// days) serialize as null since JSON has no infinity.

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round2p rounds and maps non-finite sentinels to null.
func round2p(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	r := round2(v)
	return &r
}

type signalDTO struct {
	Indicator   string    `json:"indicator"`
	Signal      string    `json:"signal"`
	Strength    float64   `json:"strength"`
	Value       float64   `json:"value"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

type summaryDTO struct {
	Overall        string  `json:"overall"`
	Strength       float64 `json:"strength"`
	Confidence     float64 `json:"confidence"`
	TrendDirection string  `json:"trend_direction"`
	Momentum       string  `json:"momentum"`
	Volatility     string  `json:"volatility"`
}

type indicatorsDTO struct {
	RSI       float64 `json:"rsi"`
	MACD      struct {
		MACD      float64 `json:"macd"`
		Signal    float64 `json:"signal"`
		Histogram float64 `json:"histogram"`
	} `json:"macd"`
	Bollinger struct {
		Upper  float64 `json:"upper"`
		Middle float64 `json:"middle"`
		Lower  float64 `json:"lower"`
	} `json:"bollinger"`
	MovingAverages struct {
		Short float64 `json:"short"`
		Long  float64 `json:"long"`
		Price float64 `json:"price"`
	} `json:"moving_averages"`
	Stochastic struct {
		K float64 `json:"k"`
		D float64 `json:"d"`
	} `json:"stochastic"`
	WilliamsR   float64 `json:"williams_r"`
	ROC         float64 `json:"roc"`
	VolumeRatio float64 `json:"volume_ratio"`
}

type analysisDTO struct {
	Symbol     string        `json:"symbol"`
	Summary    summaryDTO    `json:"summary"`
	Indicators indicatorsDTO `json:"indicators"`
	Signals    []signalDTO   `json:"signals"`
}

type metricsDTO struct {
	Symbol         string             `json:"symbol"`
	Beta           *float64           `json:"beta"`
	Alpha          *float64           `json:"alpha"`
	SharpeRatio    *float64           `json:"sharpe_ratio"`
	SortinoRatio   *float64           `json:"sortino_ratio"`
	Volatility     *float64           `json:"volatility"`
	ExpectedReturn *float64           `json:"expected_return"`
	MaxDrawdown    *float64           `json:"max_drawdown"`
	ValueAtRisk    *float64           `json:"value_at_risk"`
	ConditionalVaR *float64           `json:"conditional_var"`
	Correlation    map[string]float64 `json:"correlation"`
}

func toSignalDTO(s model.TechnicalSignal) signalDTO {
	return signalDTO{
		Indicator:   s.Indicator,
		Signal:      string(s.Signal),
		Strength:    round2(s.Strength),
		Value:       round2(s.Value),
		Timestamp:   s.Timestamp,
		Description: s.Description,
	}
}

func toAnalysisDTO(res *model.AnalysisResult) analysisDTO {
	dto := analysisDTO{
		Symbol: res.Symbol,
		Summary: summaryDTO{
			Overall:        string(res.Summary.Overall),
			Strength:       round2(res.Summary.Strength),
			Confidence:     round2(res.Summary.Confidence),
			TrendDirection: string(res.Summary.TrendDirection),
			Momentum:       string(res.Summary.Momentum),
			Volatility:     string(res.Summary.Volatility),
		},
		Signals: make([]signalDTO, 0, len(res.Signals)),
	}

	ind := res.Indicators
	dto.Indicators.RSI = round2(ind.RSI)
	dto.Indicators.MACD.MACD = round2(ind.MACD.MACD)
	dto.Indicators.MACD.Signal = round2(ind.MACD.Signal)
	dto.Indicators.MACD.Histogram = round2(ind.MACD.Histogram)
	dto.Indicators.Bollinger.Upper = round2(ind.Bollinger.Upper)
	dto.Indicators.Bollinger.Middle = round2(ind.Bollinger.Middle)
	dto.Indicators.Bollinger.Lower = round2(ind.Bollinger.Lower)
	dto.Indicators.MovingAverages.Short = round2(ind.MovingAverages.Short)
	dto.Indicators.MovingAverages.Long = round2(ind.MovingAverages.Long)
	dto.Indicators.MovingAverages.Price = round2(ind.MovingAverages.Price)
	dto.Indicators.Stochastic.K = round2(ind.Stochastic.K)
	dto.Indicators.Stochastic.D = round2(ind.Stochastic.D)
	dto.Indicators.WilliamsR = round2(ind.WilliamsR)
	dto.Indicators.ROC = round2(ind.ROC)
	dto.Indicators.VolumeRatio = round2(ind.Volume.Ratio)

	for _, s := range res.Signals {
		dto.Signals = append(dto.Signals, toSignalDTO(s))
	}
	return dto
}

func toMetricsDTO(m *model.PortfolioMetrics) metricsDTO {
	correlation := make(map[string]float64, len(m.Correlation))
	for k, v := range m.Correlation {
		correlation[k] = round2(v)
	}
	return metricsDTO{
		Symbol:         m.Symbol,
		Beta:           round2p(m.Beta),
		Alpha:          round2p(m.Alpha),
		SharpeRatio:    round2p(m.SharpeRatio),
		SortinoRatio:   round2p(m.SortinoRatio),
		Volatility:     round2p(m.Volatility),
		ExpectedReturn: round2p(m.ExpectedReturn),
		MaxDrawdown:    round2p(m.MaxDrawdown),
		ValueAtRisk:    round2p(m.ValueAtRisk),
		ConditionalVaR: round2p(m.ConditionalVaR),
		Correlation:    correlation,
	}
}
