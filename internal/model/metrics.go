package model

// PortfolioMetrics holds risk/return statistics for one symbol over one
// evaluation window.
//
// Degenerate inputs produce documented sentinels instead of errors:
// Sharpe is ±Inf when volatility is zero (sign follows the excess return),
// Sortino is +Inf when no negative-return days were observed, Beta is 1.0
// when the benchmark variance is zero, and Correlation entries are 0 when
// either series has zero variance.
type PortfolioMetrics struct {
	Symbol         string             `json:"symbol"`
	Beta           float64            `json:"beta"`
	Alpha          float64            `json:"alpha"`
	SharpeRatio    float64            `json:"sharpe_ratio"`
	SortinoRatio   float64            `json:"sortino_ratio"`
	Volatility     float64            `json:"volatility"`
	ExpectedReturn float64            `json:"expected_return"`
	MaxDrawdown    float64            `json:"max_drawdown"`
	ValueAtRisk    float64            `json:"value_at_risk"`
	ConditionalVaR float64            `json:"conditional_var"`
	Correlation    map[string]float64 `json:"correlation"`
}
