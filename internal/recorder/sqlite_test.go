package recorder

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"TradeScope/internal/model"
)

func openTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRecordAnalysis(t *testing.T) {
	r := openTestRecorder(t)

	at := time.Date(2024, 3, 1, 22, 30, 0, 0, time.UTC)
	rec := &AnalysisRecord{
		Symbol: "AAPL",
		At:     at,
		Result: &model.AnalysisResult{
			Symbol: "AAPL",
			Summary: model.AnalysisSummary{
				Overall:        model.BiasBullish,
				Strength:       0.62,
				Confidence:     0.41,
				TrendDirection: model.TrendUp,
				Momentum:       model.MomentumPositive,
				Volatility:     model.VolatilityMedium,
			},
			Indicators: model.IndicatorSnapshot{
				RSI: 58.3,
				MACD: model.MACDValue{
					MACD: 1.2, Signal: 0.9, Histogram: 0.3,
				},
			},
			Signals: []model.TechnicalSignal{
				{Indicator: "rsi", Signal: model.SignalHold, Strength: 0.58, Value: 58.3, Timestamp: at},
			},
		},
	}
	if err := r.RecordAnalysis(rec); err != nil {
		t.Fatalf("record analysis: %v", err)
	}
	if err := r.RecordAnalysis(rec); err != nil {
		t.Fatalf("record analysis again: %v", err)
	}

	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM analysis_runs WHERE symbol = ?`, "AAPL").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 rows, got %d", count)
	}

	var overall string
	var rsi float64
	err := r.db.QueryRow(`SELECT overall, rsi FROM analysis_runs ORDER BY id LIMIT 1`).Scan(&overall, &rsi)
	if err != nil {
		t.Fatalf("read row: %v", err)
	}
	if overall != "bullish" || rsi != 58.3 {
		t.Errorf("unexpected row: overall=%q rsi=%v", overall, rsi)
	}
}

func TestRecordMetrics_InfSentinels(t *testing.T) {
	r := openTestRecorder(t)

	rec := &MetricsRecord{
		At: time.Date(2024, 3, 1, 22, 30, 0, 0, time.UTC),
		Metrics: &model.PortfolioMetrics{
			Symbol:       "FLAT",
			Beta:         1.0,
			SharpeRatio:  math.Inf(-1),
			SortinoRatio: math.Inf(1),
			Correlation:  map[string]float64{"SPY": 0.5},
		},
	}
	if err := r.RecordMetrics(rec); err != nil {
		t.Fatalf("record metrics: %v", err)
	}

	var sharpe, sortino interface{}
	var beta float64
	err := r.db.QueryRow(`SELECT beta, sharpe_ratio, sortino_ratio FROM portfolio_metrics LIMIT 1`).
		Scan(&beta, &sharpe, &sortino)
	if err != nil {
		t.Fatalf("read row: %v", err)
	}
	if beta != 1.0 {
		t.Errorf("unexpected beta %v", beta)
	}
	if sharpe != nil || sortino != nil {
		t.Errorf("expected NULL ratios, got sharpe=%v sortino=%v", sharpe, sortino)
	}
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = &NoopRecorder{}
	if err := r.RecordAnalysis(&AnalysisRecord{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := r.RecordMetrics(&MetricsRecord{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
