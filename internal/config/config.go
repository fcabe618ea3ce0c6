package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"TradeScope/internal/engine"
	"TradeScope/internal/portfolio"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	DataSource struct {
		Proxy   string `yaml:"proxy"`
		MaxBars int    `yaml:"max_bars"`
	} `yaml:"data_source"`
	Watchlist struct {
		Symbols   []string `yaml:"symbols"`
		Benchmark string   `yaml:"benchmark"`
	} `yaml:"watchlist"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Analysis  engine.Config     `yaml:"analysis"`
	Portfolio portfolio.Options `yaml:"portfolio"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides, then fills defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.DataSource.Proxy = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		cfg.Watchlist.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("BENCHMARK"); v != "" {
		cfg.Watchlist.Benchmark = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		var rate float64
		if _, err := fmt.Sscanf(v, "%f", &rate); err == nil {
			cfg.Portfolio.RiskFreeRate = rate
		}
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.DataSource.MaxBars == 0 {
		cfg.DataSource.MaxBars = 300
	}
	if len(cfg.Watchlist.Symbols) == 0 {
		cfg.Watchlist.Symbols = []string{"SPY"}
	}
	if cfg.Watchlist.Benchmark == "" {
		cfg.Watchlist.Benchmark = "SPY"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 30 22 * * 1-5" // after US close, Mon-Fri
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/tradescope.db"
	}
	if cfg.Portfolio.BenchmarkSymbol == "" {
		cfg.Portfolio.BenchmarkSymbol = cfg.Watchlist.Benchmark
	}

	return cfg, nil
}

// Validate checks that all required fields are coherent.
func (c *Config) Validate() error {
	if len(c.Watchlist.Symbols) == 0 {
		return fmt.Errorf("watchlist.symbols must not be empty")
	}
	if c.DataSource.MaxBars < portfolio.MinDataPoints {
		return fmt.Errorf("data_source.max_bars must be at least %d", portfolio.MinDataPoints)
	}
	if required := c.Analysis.MinRequired(); c.DataSource.MaxBars < required {
		return fmt.Errorf("data_source.max_bars must cover the longest indicator lookback (%d)", required)
	}
	return nil
}

func splitSymbols(v string) []string {
	parts := strings.Split(v, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}
