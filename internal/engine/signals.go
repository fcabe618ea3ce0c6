package engine

import (
	"fmt"
	"math"
	"time"

	"TradeScope/internal/model"
)

// Signal thresholds. Buy/sell strength scales continuously with distance
// past the threshold, clipped to [0,1]. Hold strength decays linearly from
// 1 at the neutral midpoint to 0 at the nearest action threshold, so a
// borderline hold reads weaker than a dead-center one.
const (
	rsiOverbought = 70.0
	rsiOversold   = 30.0

	stochOverbought = 80.0
	stochOversold   = 20.0

	williamsOverbought = -20.0
	williamsOversold   = -80.0

	rocThreshold = 2.0 // percent over the ROC period

	volumeSpikeRatio = 1.5

	// MACD histogram magnitude that counts as full strength, as a
	// fraction of the last close.
	macdFullStrength = 0.005
)

func rsiSignal(rsi float64, ts time.Time) model.TechnicalSignal {
	s := model.TechnicalSignal{Indicator: "rsi", Value: rsi, Timestamp: ts}
	switch {
	case rsi > rsiOverbought:
		s.Signal = model.SignalSell
		s.Strength = clamp01((rsi - rsiOverbought) / (100 - rsiOverbought))
		s.Description = fmt.Sprintf("RSI %.1f overbought (>%.0f)", rsi, rsiOverbought)
	case rsi < rsiOversold:
		s.Signal = model.SignalBuy
		s.Strength = clamp01((rsiOversold - rsi) / rsiOversold)
		s.Description = fmt.Sprintf("RSI %.1f oversold (<%.0f)", rsi, rsiOversold)
	default:
		s.Signal = model.SignalHold
		s.Strength = clamp01(1 - math.Abs(rsi-50)/20)
		s.Description = fmt.Sprintf("RSI %.1f neutral", rsi)
	}
	return s
}

func macdSignal(v model.MACDValue, lastClose float64, ts time.Time) model.TechnicalSignal {
	s := model.TechnicalSignal{Indicator: "macd", Value: v.Histogram, Timestamp: ts}
	scale := lastClose * macdFullStrength
	switch {
	case v.Histogram > 0:
		s.Signal = model.SignalBuy
		s.Strength = clamp01(v.Histogram / scale)
		s.Description = fmt.Sprintf("MACD %.3f above signal %.3f", v.MACD, v.Signal)
	case v.Histogram < 0:
		s.Signal = model.SignalSell
		s.Strength = clamp01(-v.Histogram / scale)
		s.Description = fmt.Sprintf("MACD %.3f below signal %.3f", v.MACD, v.Signal)
	default:
		s.Signal = model.SignalHold
		s.Strength = 0
		s.Description = "MACD on signal line"
	}
	return s
}

func bollingerSignal(v model.BollingerValue, lastClose float64, ts time.Time) model.TechnicalSignal {
	s := model.TechnicalSignal{Indicator: "bollinger", Value: lastClose, Timestamp: ts}
	width := v.Upper - v.Lower
	if width == 0 {
		// Flat window: bands collapsed to the SMA.
		s.Signal = model.SignalHold
		s.Strength = 0
		s.Description = fmt.Sprintf("bands collapsed at %.2f", v.Middle)
		return s
	}
	switch {
	case lastClose > v.Upper:
		s.Signal = model.SignalSell
		s.Strength = clamp01((lastClose - v.Upper) / width)
		s.Description = fmt.Sprintf("close %.2f above upper band %.2f", lastClose, v.Upper)
	case lastClose < v.Lower:
		s.Signal = model.SignalBuy
		s.Strength = clamp01((v.Lower - lastClose) / width)
		s.Description = fmt.Sprintf("close %.2f below lower band %.2f", lastClose, v.Lower)
	default:
		pctB := (lastClose - v.Lower) / width
		s.Signal = model.SignalHold
		s.Strength = clamp01(1 - math.Abs(pctB-0.5)*2)
		s.Description = fmt.Sprintf("close %.2f inside bands (%%B %.2f)", lastClose, pctB)
	}
	return s
}

func maSignal(v model.MovingAverageValue, ts time.Time) model.TechnicalSignal {
	s := model.TechnicalSignal{Indicator: "moving_averages", Value: v.Short, Timestamp: ts}
	switch {
	case v.Price > v.Short && v.Short > v.Long:
		s.Signal = model.SignalBuy
		s.Strength = clamp01((v.Price - v.Long) / v.Long * 10)
		s.Description = fmt.Sprintf("bullish alignment: close %.2f above SMA %.2f and %.2f", v.Price, v.Short, v.Long)
	case v.Price < v.Short && v.Short < v.Long:
		s.Signal = model.SignalSell
		s.Strength = clamp01((v.Long - v.Price) / v.Long * 10)
		s.Description = fmt.Sprintf("bearish alignment: close %.2f below both averages", v.Price)
	default:
		// Mixed alignment carries no directional information.
		s.Signal = model.SignalHold
		s.Strength = 0.25
		s.Description = fmt.Sprintf("mixed alignment: close %.2f between averages", v.Price)
	}
	return s
}

func stochasticSignal(v model.StochasticValue, ts time.Time) model.TechnicalSignal {
	s := model.TechnicalSignal{Indicator: "stochastic", Value: v.K, Timestamp: ts}
	switch {
	case v.K > stochOverbought:
		s.Signal = model.SignalSell
		s.Strength = clamp01((v.K - stochOverbought) / (100 - stochOverbought))
		s.Description = fmt.Sprintf("%%K %.1f overbought (%%D %.1f)", v.K, v.D)
	case v.K < stochOversold:
		s.Signal = model.SignalBuy
		s.Strength = clamp01((stochOversold - v.K) / stochOversold)
		s.Description = fmt.Sprintf("%%K %.1f oversold (%%D %.1f)", v.K, v.D)
	default:
		s.Signal = model.SignalHold
		s.Strength = clamp01(1 - math.Abs(v.K-50)/30)
		s.Description = fmt.Sprintf("%%K %.1f neutral (%%D %.1f)", v.K, v.D)
	}
	return s
}

func williamsSignal(wr float64, ts time.Time) model.TechnicalSignal {
	s := model.TechnicalSignal{Indicator: "williams_r", Value: wr, Timestamp: ts}
	switch {
	case wr > williamsOverbought:
		s.Signal = model.SignalSell
		s.Strength = clamp01((wr - williamsOverbought) / 20)
		s.Description = fmt.Sprintf("%%R %.1f overbought", wr)
	case wr < williamsOversold:
		s.Signal = model.SignalBuy
		s.Strength = clamp01((williamsOversold - wr) / 20)
		s.Description = fmt.Sprintf("%%R %.1f oversold", wr)
	default:
		s.Signal = model.SignalHold
		s.Strength = clamp01(1 - math.Abs(wr+50)/30)
		s.Description = fmt.Sprintf("%%R %.1f neutral", wr)
	}
	return s
}

func momentumSignal(roc float64, ts time.Time) model.TechnicalSignal {
	s := model.TechnicalSignal{Indicator: "momentum", Value: roc, Timestamp: ts}
	switch {
	case roc >= rocThreshold:
		s.Signal = model.SignalBuy
		s.Strength = clamp01(roc / 10)
		s.Description = fmt.Sprintf("ROC %+.1f%% positive momentum", roc)
	case roc <= -rocThreshold:
		s.Signal = model.SignalSell
		s.Strength = clamp01(-roc / 10)
		s.Description = fmt.Sprintf("ROC %+.1f%% negative momentum", roc)
	default:
		s.Signal = model.SignalHold
		s.Strength = clamp01(1 - math.Abs(roc)/rocThreshold)
		s.Description = fmt.Sprintf("ROC %+.1f%% flat", roc)
	}
	return s
}

// volumeSignal confirms the latest price move when volume runs well above
// its trailing average; elevated volume alone is not directional.
func volumeSignal(v model.VolumeValue, lastChange float64, ts time.Time) model.TechnicalSignal {
	s := model.TechnicalSignal{Indicator: "volume", Value: v.Ratio, Timestamp: ts}
	if v.Ratio >= volumeSpikeRatio && lastChange != 0 {
		if lastChange > 0 {
			s.Signal = model.SignalBuy
			s.Description = fmt.Sprintf("volume %.1fx average confirms up move", v.Ratio)
		} else {
			s.Signal = model.SignalSell
			s.Description = fmt.Sprintf("volume %.1fx average confirms down move", v.Ratio)
		}
		s.Strength = clamp01((v.Ratio - 1) / 2)
		return s
	}
	s.Signal = model.SignalHold
	s.Strength = clamp01(1 - math.Abs(v.Ratio-1)/(volumeSpikeRatio-1))
	s.Description = fmt.Sprintf("volume %.1fx average", v.Ratio)
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
