package portfolio

import (
	"math"
	"sort"

	"TradeScope/internal/model"
)

// TradingDays is the annualization base for daily statistics.
const TradingDays = 252

// Returns computes simple day-over-day fractional returns from closes.
// An empty or single-element input yields an empty slice.
func Returns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	returns := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		returns[i-1] = closes[i]/closes[i-1] - 1
	}
	return returns
}

// Volatility annualizes the population standard deviation of daily returns.
func Volatility(returns []float64) float64 {
	return math.Sqrt(variance(returns)) * math.Sqrt(TradingDays)
}

// ExpectedReturn annualizes the mean daily return by multiplying by 252.
// This is the simple (non-compounded) convention.
func ExpectedReturn(returns []float64) float64 {
	return mean(returns) * TradingDays
}

// MaxDrawdown computes the maximum peak-to-trough fractional decline across
// the raw price series in one forward pass. Always in [0,1].
func MaxDrawdown(prices []float64) float64 {
	if len(prices) == 0 {
		return 0
	}
	peak := prices[0]
	maxDD := 0.0
	for _, p := range prices {
		if p > peak {
			peak = p
		}
		if peak > 0 {
			if dd := (peak - p) / peak; dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}

// SharpeRatio is the annualized excess return per unit of total volatility.
// Zero volatility propagates as ±Inf following the sign of the excess
// return; zero excess on zero volatility is 0.
func SharpeRatio(annualReturn, annualVolatility, riskFreeRate float64) float64 {
	excess := annualReturn - riskFreeRate
	if annualVolatility == 0 {
		switch {
		case excess > 0:
			return math.Inf(1)
		case excess < 0:
			return math.Inf(-1)
		default:
			return 0
		}
	}
	return excess / annualVolatility
}

// SortinoRatio is like Sharpe but divides by the annualized standard
// deviation of the negative-return days only. No negative-return days means
// no downside risk was observed and the ratio is +Inf.
func SortinoRatio(returns []float64, annualReturn, riskFreeRate float64) float64 {
	var downside []float64
	for _, r := range returns {
		if r < 0 {
			downside = append(downside, r)
		}
	}
	if len(downside) == 0 {
		return math.Inf(1)
	}
	downsideDev := math.Sqrt(variance(downside)) * math.Sqrt(TradingDays)
	return SharpeRatio(annualReturn, downsideDev, riskFreeRate)
}

// Beta is cov(returns, benchmark) / var(benchmark). Paired series must have
// equal length. A zero-variance benchmark yields 1.0 by convention, so a
// flat benchmark window reads as market-neutral rather than failing.
func Beta(returns, benchmark []float64) (float64, error) {
	if len(returns) != len(benchmark) {
		return 0, &model.LengthMismatchError{Len: len(returns), BenchmarkLen: len(benchmark)}
	}
	benchVar := variance(benchmark)
	if benchVar == 0 {
		return 1.0, nil
	}
	return covariance(returns, benchmark) / benchVar, nil
}

// Alpha is the CAPM-style excess return over what beta predicts.
func Alpha(annualReturn, annualBenchmarkReturn, beta, riskFreeRate float64) float64 {
	return annualReturn - riskFreeRate - beta*(annualBenchmarkReturn-riskFreeRate)
}

// Correlation is the Pearson coefficient between two equal-length return
// series, guarded to 0 when either series has zero variance.
func Correlation(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &model.LengthMismatchError{Len: len(a), BenchmarkLen: len(b)}
	}
	varA, varB := variance(a), variance(b)
	if varA == 0 || varB == 0 {
		return 0, nil
	}
	return covariance(a, b) / math.Sqrt(varA*varB), nil
}

// VaR is the historical-simulation Value-at-Risk: the return at the
// confidence quantile of the sorted return distribution. With the default
// 0.05 confidence, 5% of historical days performed worse than the result.
func VaR(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	sorted := append([]float64(nil), returns...)
	sort.Float64s(sorted)
	idx := int(confidence * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// CVaR is the mean of all returns at or below the VaR threshold: the
// expected loss inside the tail. CVaR <= VaR by construction.
func CVaR(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	threshold := VaR(returns, confidence)
	sum, n := 0.0, 0
	for _, r := range returns {
		if r <= threshold {
			sum += r
			n++
		}
	}
	return sum / float64(n)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// variance is the population variance.
func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs))
}

// covariance is the population covariance of equal-length slices.
func covariance(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	ma, mb := mean(a), mean(b)
	sum := 0.0
	for i := range a {
		sum += (a[i] - ma) * (b[i] - mb)
	}
	return sum / float64(len(a))
}
