package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TradeScope/internal/config"
	"TradeScope/internal/provider"
	"TradeScope/internal/recorder"
	"TradeScope/internal/scheduler"
	"TradeScope/internal/server"
	"TradeScope/internal/util"
)

func main() {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		bootLog := util.NewLogger("info")
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := util.NewLogger(cfg.Log.Level)
	log.Info().Msg("TradeScope starting")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	// Data provider
	fetcher := provider.NewYahooFetcher(cfg.DataSource.Proxy)
	prov := provider.New(fetcher, cfg.DataSource.MaxBars)
	log.Info().Str("source", fetcher.Name()).Int("max_bars", cfg.DataSource.MaxBars).Msg("data provider ready")

	// Recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Scheduler
	sched := scheduler.New(prov, rec, cfg.Watchlist.Symbols, cfg.Watchlist.Benchmark,
		cfg.Analysis, cfg.Portfolio, log)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatal().Err(err).Msg("register refresh task")
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, refreshing watchlist now")
		go sched.RefreshAll()
	}

	// HTTP API
	srv := server.New(cfg.Server.Addr, prov, cfg.Analysis, cfg.Portfolio,
		cfg.Watchlist.Benchmark, log)
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	log.Info().Msg("TradeScope stopped")
}
