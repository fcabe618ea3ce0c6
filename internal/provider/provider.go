package provider

import (
	"fmt"

	"TradeScope/internal/model"
)

// Provider assembles validated price series for the analytics engine.
// It enforces the input contract at the boundary so the core can trust its
// input: ascending dates, positive finite closes.
type Provider struct {
	Fetcher Fetcher
	MaxBars int
}

// New creates a Provider around a fetcher.
func New(fetcher Fetcher, maxBars int) *Provider {
	return &Provider{Fetcher: fetcher, MaxBars: maxBars}
}

// DailySeries fetches up to MaxBars daily bars for the symbol and validates
// them. Validation failures surface as *model.InvalidInputError.
func (p *Provider) DailySeries(symbol string) ([]model.PricePoint, error) {
	bars, err := p.Fetcher.FetchDailyBars(symbol, p.MaxBars)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars for %s: %w", symbol, err)
	}
	if err := model.ValidateSeries(bars); err != nil {
		return nil, fmt.Errorf("series for %s: %w", symbol, err)
	}
	return bars, nil
}
