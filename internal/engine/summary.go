package engine

import (
	"math"

	"TradeScope/internal/model"
)

// Volatility classification bounds on annualized daily-return volatility.
const (
	volLowBound  = 0.15
	volHighBound = 0.35
)

// Momentum classification bound on the ROC reading, in percent.
const momentumBound = 0.5

// summarize aggregates the signal set into a sentiment summary. Overall bias
// is the strength-weighted majority among non-hold signals; an exact tie is
// neutral. Confidence is agreement (the majority's share of total non-hold
// strength) scaled by n/(n+2), so it degrades when few indicators take a side.
func summarize(signals []model.TechnicalSignal, snap model.IndicatorSnapshot, closes []float64) model.AnalysisSummary {
	var buyScore, sellScore float64
	var directional int
	for _, s := range signals {
		switch s.Signal {
		case model.SignalBuy:
			buyScore += s.Strength
			directional++
		case model.SignalSell:
			sellScore += s.Strength
			directional++
		}
	}

	summary := model.AnalysisSummary{
		Overall:        model.BiasNeutral,
		TrendDirection: classifyTrend(snap.MovingAverages),
		Momentum:       classifyMomentum(snap.ROC),
		Volatility:     classifyVolatility(closes),
	}

	total := buyScore + sellScore
	if total > 0 {
		switch {
		case buyScore > sellScore:
			summary.Overall = model.BiasBullish
		case sellScore > buyScore:
			summary.Overall = model.BiasBearish
		}
		summary.Strength = math.Abs(buyScore-sellScore) / total

		agreement := math.Max(buyScore, sellScore) / total
		n := float64(directional)
		summary.Confidence = agreement * n / (n + 2)
	}
	return summary
}

func classifyTrend(ma model.MovingAverageValue) model.TrendDirection {
	switch {
	case ma.Price > ma.Short && ma.Short > ma.Long:
		return model.TrendUp
	case ma.Price < ma.Short && ma.Short < ma.Long:
		return model.TrendDown
	default:
		return model.TrendSideways
	}
}

func classifyMomentum(roc float64) model.MomentumClass {
	switch {
	case roc > momentumBound:
		return model.MomentumPositive
	case roc < -momentumBound:
		return model.MomentumNegative
	default:
		return model.MomentumNeutral
	}
}

// classifyVolatility buckets the annualized population volatility of daily
// returns over the full window.
func classifyVolatility(closes []float64) model.VolatilityClass {
	if len(closes) < 2 {
		return model.VolatilityLow
	}
	returns := make([]float64, len(closes)-1)
	mean := 0.0
	for i := 1; i < len(closes); i++ {
		returns[i-1] = closes[i]/closes[i-1] - 1
		mean += returns[i-1]
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns))

	annualized := math.Sqrt(variance) * math.Sqrt(252)
	switch {
	case annualized < volLowBound:
		return model.VolatilityLow
	case annualized < volHighBound:
		return model.VolatilityMedium
	default:
		return model.VolatilityHigh
	}
}
