package indicator

import "testing"

func TestCalculateRSI_FlatSeries(t *testing.T) {
	// Zero price change must yield the 50 midpoint, not NaN or a division error.
	flat := make([]float64, 15)
	for i := range flat {
		flat[i] = 100.0
	}
	rsi, err := CalculateRSI(flat, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsi != 50.0 {
		t.Errorf("expected RSI 50 for flat series, got %v", rsi)
	}
}

func TestCalculateRSI_InsufficientDataDefaultsToNeutral(t *testing.T) {
	// 14 closes give only 13 changes for period 14; the neutral default applies.
	closes := make([]float64, 14)
	for i := range closes {
		closes[i] = 250.0
	}
	rsi, err := CalculateRSI(closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsi != 50.0 {
		t.Errorf("expected neutral RSI 50 for insufficient data, got %v", rsi)
	}
}

func TestCalculateRSI_AllGains(t *testing.T) {
	up := make([]float64, 20)
	for i := range up {
		up[i] = 100 + float64(i)
	}
	rsi, err := CalculateRSI(up, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsi != 100.0 {
		t.Errorf("expected RSI 100 with zero losses, got %v", rsi)
	}
}

func TestCalculateRSI_AllLosses(t *testing.T) {
	down := make([]float64, 20)
	for i := range down {
		down[i] = 100 - float64(i)
	}
	rsi, err := CalculateRSI(down, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsi != 0.0 {
		t.Errorf("expected RSI 0 with zero gains, got %v", rsi)
	}
}

func TestCalculateRSI_Bounds(t *testing.T) {
	closes := []float64{
		44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.85, 46.08, 45.89, 46.03,
		46.83, 46.69, 46.45, 46.59, 46.34, 46.82, 47.16, 47.72, 47.25, 47.09,
	}
	rsi, err := CalculateRSI(closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsi < 0 || rsi > 100 {
		t.Errorf("RSI must stay within [0,100], got %v", rsi)
	}
	// Gains dominate this window, so the reading should lean bullish.
	if rsi <= 50 {
		t.Errorf("expected RSI above 50 for a rising window, got %v", rsi)
	}
}

func TestCalculateRSI_InvalidPeriod(t *testing.T) {
	if _, err := CalculateRSI([]float64{1, 2, 3}, 0); err == nil {
		t.Error("expected error for non-positive period")
	}
}
