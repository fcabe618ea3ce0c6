package indicator

import (
	"math"
	"testing"
)

func TestCalculateMACD_ConstantSeries(t *testing.T) {
	flat := make([]float64, 40)
	for i := range flat {
		flat[i] = 100.0
	}
	v, err := CalculateMACD(flat, 12, 26, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(v.MACD) > 1e-9 || math.Abs(v.Signal) > 1e-9 || math.Abs(v.Histogram) > 1e-9 {
		t.Errorf("expected zero MACD on a flat series, got %+v", v)
	}
}

func TestCalculateMACD_Uptrend(t *testing.T) {
	up := make([]float64, 60)
	for i := range up {
		up[i] = 100 + float64(i)
	}
	v, err := CalculateMACD(up, 12, 26, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.MACD <= 0 {
		t.Errorf("expected positive MACD line in a steady uptrend, got %v", v.MACD)
	}
	if math.Abs(v.Histogram-(v.MACD-v.Signal)) > 1e-12 {
		t.Errorf("histogram must equal MACD minus signal: %+v", v)
	}
}

func TestCalculateMACD_Errors(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100.0
	}
	if _, err := CalculateMACD(closes, 12, 26, 9); err == nil {
		t.Error("expected error: 30 closes cannot seed a 26+9 MACD")
	}
	if _, err := CalculateMACD(closes, 26, 12, 9); err == nil {
		t.Error("expected error when fast period is not shorter than slow")
	}
	if _, err := CalculateMACD(closes, 0, 26, 9); err == nil {
		t.Error("expected error for non-positive period")
	}
}
