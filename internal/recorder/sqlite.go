package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analytics history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	log zerolog.Logger
	mu  sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboard reads while
	// the scheduler writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			symbol         TEXT NOT NULL,
			overall        TEXT,
			strength       REAL,
			confidence     REAL,
			trend          TEXT,
			momentum       TEXT,
			volatility     TEXT,
			rsi            REAL,
			macd           REAL,
			macd_signal    REAL,
			macd_histogram REAL,
			bb_upper       REAL,
			bb_middle      REAL,
			bb_lower       REAL,
			sma_short      REAL,
			sma_long       REAL,
			stoch_k        REAL,
			stoch_d        REAL,
			williams_r     REAL,
			roc            REAL,
			volume_ratio   REAL,
			signals        TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_symbol_ts ON analysis_runs(symbol, timestamp)`,

		`CREATE TABLE IF NOT EXISTS portfolio_metrics (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			symbol          TEXT NOT NULL,
			beta            REAL,
			alpha           REAL,
			sharpe_ratio    REAL,
			sortino_ratio   REAL,
			volatility      REAL,
			expected_return REAL,
			max_drawdown    REAL,
			value_at_risk   REAL,
			conditional_var REAL,
			correlation     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_metrics_symbol_ts ON portfolio_metrics(symbol, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAnalysis(rec *AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := rec.Result
	signals, err := json.Marshal(res.Signals)
	if err != nil {
		return fmt.Errorf("marshal signals: %w", err)
	}

	ind := res.Indicators
	_, err = r.db.Exec(`INSERT INTO analysis_runs
		(timestamp, symbol, overall, strength, confidence, trend, momentum, volatility,
		 rsi, macd, macd_signal, macd_histogram,
		 bb_upper, bb_middle, bb_lower, sma_short, sma_long,
		 stoch_k, stoch_d, williams_r, roc, volume_ratio, signals)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.At.Unix(), rec.Symbol,
		string(res.Summary.Overall), res.Summary.Strength, res.Summary.Confidence,
		string(res.Summary.TrendDirection), string(res.Summary.Momentum), string(res.Summary.Volatility),
		ind.RSI, ind.MACD.MACD, ind.MACD.Signal, ind.MACD.Histogram,
		ind.Bollinger.Upper, ind.Bollinger.Middle, ind.Bollinger.Lower,
		ind.MovingAverages.Short, ind.MovingAverages.Long,
		ind.Stochastic.K, ind.Stochastic.D, ind.WilliamsR, ind.ROC, ind.Volume.Ratio,
		string(signals),
	)
	return err
}

func (r *SQLiteRecorder) RecordMetrics(rec *MetricsRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := rec.Metrics
	correlation, err := json.Marshal(m.Correlation)
	if err != nil {
		return fmt.Errorf("marshal correlation: %w", err)
	}

	_, err = r.db.Exec(`INSERT INTO portfolio_metrics
		(timestamp, symbol, beta, alpha, sharpe_ratio, sortino_ratio,
		 volatility, expected_return, max_drawdown, value_at_risk, conditional_var, correlation)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.At.Unix(), m.Symbol,
		m.Beta, m.Alpha, sqlFloat(m.SharpeRatio), sqlFloat(m.SortinoRatio),
		m.Volatility, m.ExpectedReturn, m.MaxDrawdown, m.ValueAtRisk, m.ConditionalVaR,
		string(correlation),
	)
	return err
}

// sqlFloat maps the ±Inf sentinels (zero volatility, no downside days) to
// NULL: SQLite REAL cannot hold infinities.
func sqlFloat(v float64) interface{} {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return v
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
