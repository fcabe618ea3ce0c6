package indicator

import (
	"math"
	"testing"
)

func TestCalculateBollinger_Ordering(t *testing.T) {
	closes := []float64{
		100, 102, 101, 105, 103, 108, 107, 110, 109, 111,
		108, 112, 114, 113, 116, 115, 118, 117, 120, 119,
	}
	v, err := CalculateBollinger(closes, 20, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !(v.Lower <= v.Middle && v.Middle <= v.Upper) {
		t.Errorf("band ordering violated: %+v", v)
	}
	if math.Abs((v.Upper-v.Middle)-(v.Middle-v.Lower)) > 1e-9 {
		t.Errorf("bands must be symmetric around the SMA: %+v", v)
	}
}

func TestCalculateBollinger_FlatSeriesCollapses(t *testing.T) {
	flat := make([]float64, 20)
	for i := range flat {
		flat[i] = 55.5
	}
	v, err := CalculateBollinger(flat, 20, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Upper != 55.5 || v.Middle != 55.5 || v.Lower != 55.5 {
		t.Errorf("expected bands collapsed to the SMA on zero variance, got %+v", v)
	}
}

func TestCalculateBollinger_Errors(t *testing.T) {
	if _, err := CalculateBollinger([]float64{1, 2, 3}, 20, 2.0); err == nil {
		t.Error("expected error for insufficient data")
	}
	if _, err := CalculateBollinger(make([]float64, 20), 20, -1); err == nil {
		t.Error("expected error for negative multiplier")
	}
}
