package recorder

import (
	"time"

	"TradeScope/internal/model"
)

// AnalysisRecord holds one engine run for persistence.
type AnalysisRecord struct {
	Symbol string
	At     time.Time
	Result *model.AnalysisResult
}

// MetricsRecord holds one portfolio metrics run for persistence.
type MetricsRecord struct {
	At      time.Time
	Metrics *model.PortfolioMetrics
}

// Recorder persists historical analytics output for the dashboard.
type Recorder interface {
	RecordAnalysis(rec *AnalysisRecord) error
	RecordMetrics(rec *MetricsRecord) error
	Close() error
}
