package portfolio

import (
	"TradeScope/internal/model"
)

// MinDataPoints is the floor below which the statistics here are too
// unstable to report.
const MinDataPoints = 30

// Options configures one metrics run. Zero-valued fields fall back to the
// documented defaults.
type Options struct {
	RiskFreeRate    float64 `yaml:"risk_free_rate"`  // annualized, default 0.02
	VaRConfidence   float64 `yaml:"var_confidence"`  // tail quantile, default 0.05
	BenchmarkSymbol string  `yaml:"benchmark_symbol"`
}

// DefaultOptions returns the documented defaults: 2% risk-free rate and the
// 5% VaR tail.
func DefaultOptions() Options {
	return Options{RiskFreeRate: 0.02, VaRConfidence: 0.05}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.RiskFreeRate == 0 {
		o.RiskFreeRate = def.RiskFreeRate
	}
	if o.VaRConfidence <= 0 || o.VaRConfidence >= 1 {
		o.VaRConfidence = def.VaRConfidence
	}
	return o
}

// CalculateMetrics computes the full risk/return statistics for one symbol
// over one evaluation window. benchmark may be nil; without one, beta
// defaults to the market-neutral 1.0, alpha is 0, and the correlation map
// is empty. With a benchmark, the derived return series must have equal
// length or the call fails with *model.LengthMismatchError.
//
// The computation is deterministic and side-effect-free.
func CalculateMetrics(prices []model.PricePoint, symbol string, benchmark []model.PricePoint, opts Options) (*model.PortfolioMetrics, error) {
	opts = opts.withDefaults()

	if len(prices) < MinDataPoints {
		return nil, &model.DataInsufficientError{Required: MinDataPoints, Got: len(prices)}
	}
	if err := model.ValidateSeries(prices); err != nil {
		return nil, err
	}

	closes := model.Closes(prices)
	returns := Returns(closes)

	volatility := Volatility(returns)
	expected := ExpectedReturn(returns)

	m := &model.PortfolioMetrics{
		Symbol:         symbol,
		Beta:           1.0,
		SharpeRatio:    SharpeRatio(expected, volatility, opts.RiskFreeRate),
		SortinoRatio:   SortinoRatio(returns, expected, opts.RiskFreeRate),
		Volatility:     volatility,
		ExpectedReturn: expected,
		MaxDrawdown:    MaxDrawdown(closes),
		ValueAtRisk:    VaR(returns, opts.VaRConfidence),
		ConditionalVaR: CVaR(returns, opts.VaRConfidence),
		Correlation:    map[string]float64{},
	}

	if len(benchmark) > 0 {
		if err := model.ValidateSeries(benchmark); err != nil {
			return nil, err
		}
		benchReturns := Returns(model.Closes(benchmark))

		beta, err := Beta(returns, benchReturns)
		if err != nil {
			return nil, err
		}
		corr, err := Correlation(returns, benchReturns)
		if err != nil {
			return nil, err
		}

		m.Beta = beta
		m.Alpha = Alpha(expected, ExpectedReturn(benchReturns), beta, opts.RiskFreeRate)
		name := opts.BenchmarkSymbol
		if name == "" {
			name = "benchmark"
		}
		m.Correlation[name] = corr
	}

	return m, nil
}
