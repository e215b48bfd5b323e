package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"MarketAnalytic/internal/cache"
	"MarketAnalytic/internal/catalog"
	"MarketAnalytic/internal/config"
	"MarketAnalytic/internal/dashboard"
	"MarketAnalytic/internal/logger"
	"MarketAnalytic/internal/metrics"
	"MarketAnalytic/internal/recorder"
)

// app holds the wired collaborators shared by every subcommand.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	catalog  *catalog.Catalog
	metrics  *metrics.Metrics
	recorder recorder.Recorder
	service  *dashboard.Service
	closers  []func() error
}

func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(envPath); err != nil {
		return nil, err
	}
	path := configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.Catalog.Path)
}

// newApp wires the service. serving opens the SQLite recorder and logs to
// the configured output; terminal commands log to stderr instead.
func newApp(serving bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	var log *slog.Logger
	if serving {
		if log, err = logger.Init(cfg.Log); err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
	} else {
		log = logger.NewWithWriter(cfg.Log, os.Stderr)
		slog.SetDefault(log)
	}

	a := &app{cfg: cfg, log: log, metrics: metrics.New()}

	a.catalog, err = loadCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	a.recorder = recorder.NewNoopRecorder()
	if serving && cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn("init sqlite recorder failed, using noop", "error", err)
		} else {
			a.recorder = sr
			a.closers = append(a.closers, sr.Close)
		}
	}

	var seriesCache cache.SeriesCache = cache.NewMemory()
	if cfg.Cache.Backend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		a.closers = append(a.closers, client.Close)
		seriesCache = cache.NewRedis(client, cfg.Cache.Prefix, cfg.Cache.TTL)
		log.Info("using redis series cache", "addr", cfg.Cache.RedisAddr)
	}

	sources := dashboard.ClockSources()
	if cfg.Synth.RandomSeed != nil {
		sources = dashboard.SeededSources(*cfg.Synth.RandomSeed)
		log.Info("deterministic generation enabled", "seed", *cfg.Synth.RandomSeed)
	}

	a.service = dashboard.New(a.catalog,
		dashboard.WithCache(seriesCache),
		dashboard.WithRecorder(a.recorder),
		dashboard.WithMetrics(a.metrics),
		dashboard.WithSources(sources),
		dashboard.WithConcurrency(cfg.Synth.Concurrency),
		dashboard.WithLogger(log),
	)
	return a, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("close failed", "error", err)
		}
	}
}
