package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"TradeScope/internal/engine"
	"TradeScope/internal/model"
	"TradeScope/internal/portfolio"
	"TradeScope/internal/provider"
	"TradeScope/internal/recorder"
	"TradeScope/internal/telemetry"
)

// Scheduler periodically re-analyzes the watchlist and records the results.
type Scheduler struct {
	Cron      *cron.Cron
	Provider  *provider.Provider
	Recorder  recorder.Recorder
	Symbols   []string
	Benchmark string
	Analysis  engine.Config
	Portfolio portfolio.Options

	log zerolog.Logger
}

// New creates a Scheduler.
func New(p *provider.Provider, rec recorder.Recorder, symbols []string, benchmark string,
	analysisCfg engine.Config, portfolioOpts portfolio.Options, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Provider:  p,
		Recorder:  rec,
		Symbols:   symbols,
		Benchmark: benchmark,
		Analysis:  analysisCfg,
		Portfolio: portfolioOpts,
		log:       log,
	}
}

// Register adds the watchlist refresh task.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.RefreshAll); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start begins the cron loop.
func (s *Scheduler) Start() { s.Cron.Start() }

// Stop halts the cron loop, waiting for a running refresh to finish.
func (s *Scheduler) Stop() {
	ctx := s.Cron.Stop()
	<-ctx.Done()
}

// RefreshAll fetches, analyzes, and records every watchlist symbol. The
// benchmark series is fetched once and shared across the metrics runs.
func (s *Scheduler) RefreshAll() {
	benchmark, err := s.Provider.DailySeries(s.Benchmark)
	if err != nil {
		telemetry.FetchErrorsTotal.WithLabelValues(s.Provider.Fetcher.Name()).Inc()
		s.log.Warn().Err(err).Str("symbol", s.Benchmark).Msg("benchmark fetch failed, metrics will run without one")
		benchmark = nil
	}

	for _, symbol := range s.Symbols {
		if err := s.refreshSymbol(symbol, benchmark); err != nil {
			s.log.Error().Err(err).Str("symbol", symbol).Msg("refresh failed")
		}
	}
}

func (s *Scheduler) refreshSymbol(symbol string, benchmark []model.PricePoint) error {
	start := time.Now()
	defer func() {
		telemetry.AnalysisDuration.Observe(time.Since(start).Seconds())
	}()

	prices, err := s.Provider.DailySeries(symbol)
	if err != nil {
		telemetry.FetchErrorsTotal.WithLabelValues(s.Provider.Fetcher.Name()).Inc()
		return err
	}

	result, err := engine.Analyze(prices, symbol, s.Analysis)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", symbol, err)
	}
	telemetry.AnalysesTotal.WithLabelValues(symbol).Inc()

	now := time.Now()
	if err := s.Recorder.RecordAnalysis(&recorder.AnalysisRecord{Symbol: symbol, At: now, Result: result}); err != nil {
		s.log.Warn().Err(err).Str("symbol", symbol).Msg("record analysis failed")
	}

	// Benchmark and symbol windows can differ in length around listings and
	// holidays; trim both to the common tail so the return series pair up.
	bench := benchmark
	if len(bench) > 0 {
		n := len(prices)
		if len(bench) < n {
			n = len(bench)
		}
		prices = prices[len(prices)-n:]
		bench = bench[len(bench)-n:]
	}

	metrics, err := portfolio.CalculateMetrics(prices, symbol, bench, s.Portfolio)
	if err != nil {
		return fmt.Errorf("metrics %s: %w", symbol, err)
	}
	telemetry.MetricsRunsTotal.WithLabelValues(symbol).Inc()

	if err := s.Recorder.RecordMetrics(&recorder.MetricsRecord{At: now, Metrics: metrics}); err != nil {
		s.log.Warn().Err(err).Str("symbol", symbol).Msg("record metrics failed")
	}

	s.log.Info().
		Str("symbol", symbol).
		Str("overall", string(result.Summary.Overall)).
		Float64("confidence", result.Summary.Confidence).
		Msg("refresh complete")
	return nil
}
