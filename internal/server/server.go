package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"TradeScope/internal/engine"
	"TradeScope/internal/model"
	"TradeScope/internal/portfolio"
	"TradeScope/internal/provider"
	"TradeScope/internal/telemetry"
)

// Server exposes the analytics over a JSON API. Each request is computed
// fresh from the provider; the core is stateless and deterministic, so
// callers may layer caching outside if they need it.
type Server struct {
	httpServer *http.Server
	provider   *provider.Provider
	analysis   engine.Config
	portfolio  portfolio.Options
	benchmark  string
	log        zerolog.Logger
}

// New builds the server and its routes.
func New(addr string, p *provider.Provider, analysisCfg engine.Config,
	portfolioOpts portfolio.Options, benchmark string, log zerolog.Logger) *Server {
	s := &Server{
		provider:  p,
		analysis:  analysisCfg,
		portfolio: portfolioOpts,
		benchmark: benchmark,
		log:       log,
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/analysis/{symbol}", s.handleAnalysis).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/analysis/{symbol}/signals", s.handleStrongSignals).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/portfolio/{symbol}/metrics", s.handleMetrics).Methods(http.MethodGet)
	r.Handle("/metrics", telemetry.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s
}

// Start serves until Shutdown.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.httpServer.Addr).Msg("http server listening")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) analyze(symbol string) (*model.AnalysisResult, error) {
	prices, err := s.provider.DailySeries(symbol)
	if err != nil {
		return nil, err
	}
	result, err := engine.Analyze(prices, symbol, s.analysis)
	if err != nil {
		return nil, err
	}
	telemetry.AnalysesTotal.WithLabelValues(symbol).Inc()
	return result, nil
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]
	result, err := s.analyze(symbol)
	if err != nil {
		s.writeError(w, symbol, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toAnalysisDTO(result))
}

func (s *Server) handleStrongSignals(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	minStrength := 0.6
	if v := r.URL.Query().Get("min_strength"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 1 {
			s.writeJSON(w, http.StatusBadRequest, errorDTO{Error: "min_strength must be a number in [0,1]"})
			return
		}
		minStrength = f
	}

	result, err := s.analyze(symbol)
	if err != nil {
		s.writeError(w, symbol, err)
		return
	}

	strong := engine.StrongSignals(result, minStrength)
	dtos := make([]signalDTO, 0, len(strong))
	for _, sig := range strong {
		dtos = append(dtos, toSignalDTO(sig))
	}
	s.writeJSON(w, http.StatusOK, dtos)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	symbol := mux.Vars(r)["symbol"]

	prices, err := s.provider.DailySeries(symbol)
	if err != nil {
		s.writeError(w, symbol, err)
		return
	}

	var benchmark []model.PricePoint
	if s.benchmark != "" && s.benchmark != symbol {
		benchmark, err = s.provider.DailySeries(s.benchmark)
		if err != nil {
			// The symbol's own statistics are still meaningful.
			s.log.Warn().Err(err).Str("benchmark", s.benchmark).Msg("benchmark fetch failed")
			benchmark = nil
		} else {
			n := len(prices)
			if len(benchmark) < n {
				n = len(benchmark)
			}
			prices = prices[len(prices)-n:]
			benchmark = benchmark[len(benchmark)-n:]
		}
	}

	metrics, err := portfolio.CalculateMetrics(prices, symbol, benchmark, s.portfolio)
	if err != nil {
		s.writeError(w, symbol, err)
		return
	}
	telemetry.MetricsRunsTotal.WithLabelValues(symbol).Inc()
	s.writeJSON(w, http.StatusOK, toMetricsDTO(metrics))
}

type errorDTO struct {
	Error string `json:"error"`
}

// writeError maps the typed core errors onto HTTP statuses: insufficient or
// mismatched data is 422, a bad upstream series is 400, anything else
// (fetch failures) is 502.
func (s *Server) writeError(w http.ResponseWriter, symbol string, err error) {
	var insufficient *model.DataInsufficientError
	var mismatch *model.LengthMismatchError
	var invalid *model.InvalidInputError

	status := http.StatusBadGateway
	switch {
	case errors.As(err, &insufficient), errors.As(err, &mismatch):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &invalid):
		status = http.StatusBadRequest
	}

	s.log.Warn().Err(err).Str("symbol", symbol).Int("status", status).Msg("request failed")
	s.writeJSON(w, status, errorDTO{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}
