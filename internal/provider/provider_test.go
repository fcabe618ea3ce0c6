package provider

import (
	"errors"
	"testing"
	"time"

	"TradeScope/internal/model"
)

func TestGenerateBars(t *testing.T) {
	bars := GenerateBars(100, 60)
	if len(bars) != 60 {
		t.Fatalf("expected 60 bars, got %d", len(bars))
	}
	if err := model.ValidateSeries(bars); err != nil {
		t.Errorf("generated series failed validation: %v", err)
	}
	// Reproducible: same input, same output.
	again := GenerateBars(100, 60)
	for i := range bars {
		if bars[i] != again[i] {
			t.Fatalf("bar %d differs between runs", i)
		}
	}
}

func TestDailySeries(t *testing.T) {
	p := New(&MockFetcher{Price: 150}, 60)
	bars, err := p.DailySeries("AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 60 {
		t.Errorf("expected 60 bars, got %d", len(bars))
	}
}

func TestDailySeries_FetchError(t *testing.T) {
	fetchErr := errors.New("upstream unavailable")
	p := New(&MockFetcher{Err: fetchErr}, 60)
	_, err := p.DailySeries("AAPL")
	if !errors.Is(err, fetchErr) {
		t.Errorf("expected wrapped fetch error, got %v", err)
	}
}

func TestDailySeries_InvalidData(t *testing.T) {
	bad := GenerateBars(100, 60)
	bad[10].Close = -5
	p := New(&MockFetcher{Bars: bad}, 60)

	_, err := p.DailySeries("AAPL")
	var inputErr *model.InvalidInputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	if inputErr.Index != 10 {
		t.Errorf("expected offending index 10, got %d", inputErr.Index)
	}
}

func TestDailySeries_UnorderedDates(t *testing.T) {
	bad := GenerateBars(100, 60)
	bad[20].Date = bad[19].Date.Add(-time.Hour)
	p := New(&MockFetcher{Bars: bad}, 60)

	_, err := p.DailySeries("AAPL")
	var inputErr *model.InvalidInputError
	if !errors.As(err, &inputErr) {
		t.Errorf("expected InvalidInputError, got %v", err)
	}
}
