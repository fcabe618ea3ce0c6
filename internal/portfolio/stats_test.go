package portfolio

import (
	"errors"
	"math"
	"testing"

	"TradeScope/internal/model"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestReturns(t *testing.T) {
	got := Returns([]float64{100, 110, 99})
	if len(got) != 2 {
		t.Fatalf("expected 2 returns, got %d", len(got))
	}
	if !almostEqual(got[0], 0.1, 1e-12) || !almostEqual(got[1], -0.1, 1e-12) {
		t.Errorf("unexpected returns %v", got)
	}

	if got := Returns([]float64{100}); got != nil {
		t.Errorf("expected nil for single close, got %v", got)
	}
}

func TestVolatility_Flat(t *testing.T) {
	returns := make([]float64, 39)
	if v := Volatility(returns); v != 0 {
		t.Errorf("expected zero volatility for flat returns, got %v", v)
	}
}

func TestExpectedReturn(t *testing.T) {
	returns := []float64{0.01, 0.01, 0.01, 0.01}
	if got := ExpectedReturn(returns); !almostEqual(got, 0.01*TradingDays, 1e-12) {
		t.Errorf("expected %v, got %v", 0.01*TradingDays, got)
	}
}

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		want   float64
	}{
		{"peak to trough", []float64{100, 120, 60, 80}, 0.5},
		{"monotonic rise", []float64{100, 101, 102, 103}, 0},
		{"monotonic fall", []float64{100, 90, 80}, 0.2},
		{"recovery does not reduce", []float64{100, 50, 200}, 0.5},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxDrawdown(tt.prices)
			if !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("drawdown out of [0,1]: %v", got)
			}
		})
	}
}

func TestSharpeRatio(t *testing.T) {
	if got := SharpeRatio(0.10, 0.20, 0.02); !almostEqual(got, 0.4, 1e-12) {
		t.Errorf("got %v, want 0.4", got)
	}
	if got := SharpeRatio(0.10, 0, 0.02); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf on zero volatility with positive excess, got %v", got)
	}
	if got := SharpeRatio(0.01, 0, 0.02); !math.IsInf(got, -1) {
		t.Errorf("expected -Inf on zero volatility with negative excess, got %v", got)
	}
	if got := SharpeRatio(0.02, 0, 0.02); got != 0 {
		t.Errorf("expected 0 on zero volatility with zero excess, got %v", got)
	}
	// Higher return at fixed volatility never lowers the ratio.
	if SharpeRatio(0.12, 0.20, 0.02) < SharpeRatio(0.10, 0.20, 0.02) {
		t.Error("Sharpe ratio must be monotonic in return at fixed volatility")
	}
}

func TestSortinoRatio_NoDownside(t *testing.T) {
	returns := []float64{0.01, 0.02, 0, 0.01}
	if got := SortinoRatio(returns, 0.10, 0.02); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf with no negative days, got %v", got)
	}
}

func TestSortinoRatio_Finite(t *testing.T) {
	returns := []float64{0.02, -0.01, 0.03, -0.02, 0.01}
	got := SortinoRatio(returns, 0.10, 0.02)
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("expected finite ratio, got %v", got)
	}
	// Downside deviation uses only the two negative days.
	downsideDev := math.Sqrt(variance([]float64{-0.01, -0.02})) * math.Sqrt(TradingDays)
	want := (0.10 - 0.02) / downsideDev
	if !almostEqual(got, want, 1e-12) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBeta(t *testing.T) {
	a := []float64{0.01, -0.02, 0.03, 0.005, -0.01}

	t.Run("against itself", func(t *testing.T) {
		got, err := Beta(a, a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(got, 1.0, 1e-12) {
			t.Errorf("got %v, want 1.0", got)
		}
	})

	t.Run("scaled benchmark", func(t *testing.T) {
		double := make([]float64, len(a))
		for i, r := range a {
			double[i] = 2 * r
		}
		got, err := Beta(double, a)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(got, 2.0, 1e-12) {
			t.Errorf("got %v, want 2.0", got)
		}
	})

	t.Run("flat benchmark", func(t *testing.T) {
		got, err := Beta(a, make([]float64, len(a)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 1.0 {
			t.Errorf("expected neutral 1.0 on zero-variance benchmark, got %v", got)
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := Beta(a, a[:3])
		var lenErr *model.LengthMismatchError
		if !errors.As(err, &lenErr) {
			t.Fatalf("expected LengthMismatchError, got %v", err)
		}
		if lenErr.Len != 5 || lenErr.BenchmarkLen != 3 {
			t.Errorf("unexpected detail: %+v", lenErr)
		}
	})
}

func TestAlpha(t *testing.T) {
	// Beta 1 against an identical benchmark cancels exactly.
	if got := Alpha(0.10, 0.10, 1.0, 0.02); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	if got := Alpha(0.12, 0.08, 0.5, 0.02); !almostEqual(got, 0.07, 1e-12) {
		t.Errorf("got %v, want 0.07", got)
	}
}

func TestCorrelation(t *testing.T) {
	a := []float64{0.01, -0.02, 0.03, 0.005, -0.01}

	t.Run("perfect positive", func(t *testing.T) {
		b := make([]float64, len(a))
		for i, r := range a {
			b[i] = 3*r + 0.001
		}
		got, err := Correlation(a, b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(got, 1.0, 1e-12) {
			t.Errorf("got %v, want 1.0", got)
		}
	})

	t.Run("perfect negative", func(t *testing.T) {
		b := make([]float64, len(a))
		for i, r := range a {
			b[i] = -r
		}
		got, err := Correlation(a, b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(got, -1.0, 1e-12) {
			t.Errorf("got %v, want -1.0", got)
		}
	})

	t.Run("zero variance", func(t *testing.T) {
		got, err := Correlation(a, make([]float64, len(a)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0 {
			t.Errorf("expected 0 on zero-variance input, got %v", got)
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := Correlation(a, a[:2])
		var lenErr *model.LengthMismatchError
		if !errors.As(err, &lenErr) {
			t.Errorf("expected LengthMismatchError, got %v", err)
		}
	})
}

func TestVaRAndCVaR(t *testing.T) {
	// 20 returns. At the 5% tail the index is int(0.05*20) = 1, the second
	// worst day; the tail mean covers the two worst days.
	returns := []float64{
		-0.05, -0.04, -0.03, -0.02, -0.01,
		0.000, 0.002, 0.004, 0.006, 0.008,
		0.010, 0.012, 0.014, 0.016, 0.018,
		0.020, 0.022, 0.024, 0.026, 0.028,
	}

	v := VaR(returns, 0.05)
	if !almostEqual(v, -0.04, 1e-12) {
		t.Errorf("VaR: got %v, want -0.04", v)
	}

	cv := CVaR(returns, 0.05)
	if !almostEqual(cv, -0.045, 1e-12) {
		t.Errorf("CVaR: got %v, want -0.045", cv)
	}
	if cv > v {
		t.Errorf("CVaR %v must not exceed VaR %v", cv, v)
	}
}

func TestVaR_InputUntouched(t *testing.T) {
	returns := []float64{0.03, -0.02, 0.01, -0.04}
	VaR(returns, 0.05)
	if returns[0] != 0.03 || returns[3] != -0.04 {
		t.Errorf("input slice was reordered: %v", returns)
	}
}
